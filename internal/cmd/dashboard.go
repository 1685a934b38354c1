package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/careercrafter/crafter/internal/dashboard"
	"github.com/careercrafter/crafter/internal/export"
)

type DashboardCmd struct {
	Limit int `help:"How many recent jobs and upcoming interviews to show." default:"5"`
}

func (d *DashboardCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	profile, err := ctx.RequireHR(runCtx, client)
	if err != nil {
		return err
	}

	summary := dashboard.Load(runCtx, client, profile.ID, d.Limit, ctx.Logger)

	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			TotalJobs          int `json:"totalJobs"`
			TotalHires         int `json:"totalHires"`
			RecentJobs         any `json:"recentJobs"`
			UpcomingInterviews any `json:"upcomingInterviews"`
		}{summary.TotalJobs, summary.TotalHires, summary.RecentJobs, summary.UpcomingInterviews})
	}

	format, err := ctx.ResolveFormat("")
	if err != nil {
		return err
	}
	opts := ctx.WriteOptions()

	fmt.Fprintf(ctx.Out, "Jobs posted: %d\n", summary.TotalJobs)
	fmt.Fprintf(ctx.Out, "Candidates hired: %d\n", summary.TotalHires)

	fmt.Fprintf(ctx.Out, "\nRecent jobs\n")
	if err := export.WriteJobs(ctx.Out, summary.RecentJobs, nil, format, opts); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "\nUpcoming interviews\n")
	return export.WriteInterviews(ctx.Out, summary.UpcomingInterviews, format, opts)
}
