package api

import (
	"context"
	"fmt"

	"github.com/careercrafter/crafter/internal/models"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// GenerateToken exchanges credentials for a bearer token.
func (c *Client) GenerateToken(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	if err := c.post(ctx, "/api/auth/token/generate", nil, credentials{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("token-generate returned an empty token")
	}
	return resp.Token, nil
}

// UserDetails resolves the authenticated user's role and identity from the
// current token.
func (c *Client) UserDetails(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.get(ctx, "/api/auth/user/details", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// FetchProfile resolves the role-specific profile endpoint. The server
// derives the account from the bearer token.
func (c *Client) FetchProfile(ctx context.Context, role, username string) (*models.Profile, error) {
	var path string
	switch role {
	case models.RoleHR:
		path = "/api/hr/username"
	case models.RoleExecutive:
		path = "/api/executive/username"
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	var profile models.Profile
	if err := c.get(ctx, path, nil, &profile); err != nil {
		return nil, err
	}
	if profile.Role == "" {
		profile.Role = role
	}
	if profile.Username == "" {
		profile.Username = username
	}
	return &profile, nil
}
