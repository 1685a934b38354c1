package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/careercrafter/crafter/internal/api"
	"github.com/careercrafter/crafter/internal/config"
	"github.com/careercrafter/crafter/internal/export"
	"github.com/careercrafter/crafter/internal/models"
	"github.com/careercrafter/crafter/internal/session"
	"github.com/careercrafter/crafter/internal/ui"
)

type Context struct {
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Session    *session.Store
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode

	// BaseCtx is the command lifetime; main wires the signal-canceled
	// context here. Nil falls back to Background.
	BaseCtx context.Context

	// NewClient overrides client construction; tests wire a fake
	// transport through it.
	NewClient func(cfg config.Config, tokens api.TokenSource, logger zerolog.Logger) (*api.Client, error)
}

// RunContext returns the lifetime for a command's API calls.
func (c *Context) RunContext() context.Context {
	if c.BaseCtx != nil {
		return c.BaseCtx
	}
	return context.Background()
}

// API builds a client bound to the current session's token.
func (c *Context) API() (*api.Client, error) {
	if c.NewClient != nil {
		return c.NewClient(c.Config, c.Session, c.Logger)
	}
	return api.New(c.Config, c.Session, c.Logger)
}

// CurrentUser resolves the cached-or-refetched profile for the session.
func (c *Context) CurrentUser(ctx context.Context, client *api.Client) (*models.Profile, error) {
	return c.Session.CurrentUser(ctx, client)
}

// RequireHR resolves the session profile and rejects non-HR roles.
func (c *Context) RequireHR(ctx context.Context, client *api.Client) (*models.Profile, error) {
	profile, err := c.CurrentUser(ctx, client)
	if err != nil {
		return nil, err
	}
	if profile.Role != models.RoleHR {
		return nil, fmt.Errorf("this command requires an HR session (current role: %s)", profile.Role)
	}
	return profile, nil
}

// RequireExecutive resolves the session profile and rejects non-executive
// roles.
func (c *Context) RequireExecutive(ctx context.Context, client *api.Client) (*models.Profile, error) {
	profile, err := c.CurrentUser(ctx, client)
	if err != nil {
		return nil, err
	}
	if profile.Role != models.RoleExecutive {
		return nil, fmt.Errorf("this command requires an executive session (current role: %s)", profile.Role)
	}
	return profile, nil
}

// ResolveFormat picks the output format: --json/--plain win, then an
// explicit flag, then table on a TTY and CSV otherwise.
func (c *Context) ResolveFormat(flag string) (export.Format, error) {
	if c.JSONOutput {
		return export.FormatJSON, nil
	}
	if c.PlainText {
		return export.FormatTSV, nil
	}
	if flag != "" {
		return export.ParseFormat(flag)
	}
	if isTTY(c.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func (c *Context) WriteOptions() export.WriteOptions {
	colorEnabled := c.UI != nil && c.UI.ColorEnabled
	return export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   colorEnabled && isTTY(c.Out),
	}
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}
