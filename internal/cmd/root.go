package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version     VersionCmd     `cmd:"" help:"Print version."`
	Config      ConfigCmd      `cmd:"" help:"Manage configuration."`
	Login       LoginCmd       `cmd:"" help:"Log in and store the session."`
	Logout      LogoutCmd      `cmd:"" help:"Clear the stored session."`
	Whoami      WhoamiCmd      `cmd:"" help:"Show the current session's profile."`
	Signup      SignupCmd      `cmd:"" help:"HR account signup."`
	Jobs        JobsCmd        `cmd:"" help:"Manage job postings."`
	Apps        AppsCmd        `cmd:"" help:"Manage applications for a posting."`
	Assessments AssessmentsCmd `cmd:"" help:"Paginated assessment roster."`
	Interviews  InterviewsCmd  `cmd:"" help:"Paginated interview roster."`
	Dashboard   DashboardCmd   `cmd:"" help:"Landing-screen summary."`
}

func NewCLI() *CLI {
	return &CLI{}
}
