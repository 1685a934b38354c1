package models

// Account roles returned by the auth user-details endpoint.
const (
	RoleHR        = "HR"
	RoleExecutive = "EXECUTIVE"
)

// Company is a signup-dropdown entry.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Profile is the remote account record cached per session.
type Profile struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Username string   `json:"username,omitempty"`
	Role     string   `json:"role,omitempty"`
	Company  *Company `json:"company,omitempty"`
	PhotoURL string   `json:"photoUrl,omitempty"`
}

// DisplayName is what screens render while a profile may still be loading.
func (p *Profile) DisplayName() string {
	if p == nil || p.Name == "" {
		return "User"
	}
	return p.Name
}
