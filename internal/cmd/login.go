package cmd

import (
	"fmt"
	"strings"

	"github.com/careercrafter/crafter/internal/models"
	"github.com/careercrafter/crafter/internal/session"
)

type LoginCmd struct {
	Username string `arg:"" help:"Account username."`
	Password string `help:"Account password." env:"CRAFTER_PASSWORD" required:""`
}

type LogoutCmd struct{}

type WhoamiCmd struct{}

// Run performs the login handshake: token generation, then a user-details
// fetch to resolve the role. Only HR and EXECUTIVE roles are accepted.
func (l *LoginCmd) Run(ctx *Context) error {
	username := strings.TrimSpace(l.Username)
	if username == "" {
		return fmt.Errorf("username cannot be blank")
	}
	if strings.TrimSpace(l.Password) == "" {
		return fmt.Errorf("password cannot be blank")
	}

	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	token, err := client.GenerateToken(runCtx, username, l.Password)
	if err != nil {
		return fmt.Errorf("invalid credentials: %w", err)
	}

	// Persist token+username first so the details call authenticates,
	// mirroring the clear-then-set login sequence.
	if err := ctx.Session.SignIn(session.State{Token: token, Username: username}); err != nil {
		return err
	}

	details, err := client.UserDetails(runCtx)
	if err != nil {
		return err
	}

	switch details.Role {
	case models.RoleHR, models.RoleExecutive:
	default:
		_ = ctx.Session.SignOut()
		return fmt.Errorf("unsupported role %q", details.Role)
	}

	if err := ctx.Session.SignIn(session.State{Token: token, Username: username, Role: details.Role}); err != nil {
		return err
	}

	ctx.UI.Successf("Logged in as %s (%s)", username, details.Role)
	return nil
}

func (l *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Session.SignOut(); err != nil {
		return err
	}
	ctx.UI.Infof("Logged out")
	return nil
}

func (w *WhoamiCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}

	profile, err := ctx.CurrentUser(ctx.RunContext(), client)
	if err != nil {
		return err
	}

	company := "-"
	if profile.Company != nil {
		company = profile.Company.Name
	}
	state := ctx.Session.State()
	fmt.Fprintf(ctx.Out, "username: %s\nname: %s\nrole: %s\ncompany: %s\n", state.Username, profile.DisplayName(), state.Role, company)
	return nil
}
