package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/careercrafter/crafter/internal/api"
	"github.com/careercrafter/crafter/internal/export"
	"github.com/careercrafter/crafter/internal/roster"
)

type InterviewsCmd struct {
	List       InterviewsListCmd       `cmd:"" help:"List one page of scheduled interviews."`
	Mine       InterviewsMineCmd       `cmd:"" help:"List interviews assigned to you."`
	Reschedule InterviewsRescheduleCmd `cmd:"" help:"Move an interview to a new date and time."`
	Feedback   InterviewsFeedbackCmd   `cmd:"" help:"Record feedback for an interview you conducted."`
}

type InterviewsListCmd struct {
	Page   int    `help:"Zero-based page." default:"0"`
	Size   int    `help:"Page size; defaults to the configured window."`
	Format string `help:"Output format: table, csv, tsv, json." enum:",table,csv,tsv,json" default:""`
}

type InterviewsMineCmd struct {
	Format string `help:"Output format: table, csv, tsv, json." enum:",table,csv,tsv,json" default:""`
}

type InterviewsRescheduleCmd struct {
	ID   int64  `arg:"" help:"Interview id."`
	Date string `help:"New date, YYYY-MM-DD." required:""`
	Time string `help:"New time, HH:MM." required:""`
	Page int    `help:"Page to refetch afterwards." default:"0"`
	Size int    `help:"Page size; defaults to the configured window."`
}

type InterviewsFeedbackCmd struct {
	ID   int64  `arg:"" help:"Interview id."`
	Text string `arg:"" help:"Feedback text."`
}

func (i *InterviewsListCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	if _, err := ctx.RequireHR(runCtx, client); err != nil {
		return err
	}

	pager := roster.NewPager(pageSize(ctx, i.Size))
	pager.Seek(i.Page)
	return renderInterviewsPage(ctx, runCtx, client, pager, i.Format)
}

func (i *InterviewsMineCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	profile, err := ctx.RequireExecutive(runCtx, client)
	if err != nil {
		return err
	}
	return renderMyInterviews(ctx, runCtx, client, profile.ID, i.Format)
}

func (i *InterviewsRescheduleCmd) Run(ctx *Context) error {
	if strings.TrimSpace(i.Date) == "" || strings.TrimSpace(i.Time) == "" {
		return fmt.Errorf("reschedule needs both a date and a time")
	}

	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	if _, err := ctx.RequireHR(runCtx, client); err != nil {
		return err
	}

	req := api.RescheduleRequest{Date: i.Date, Time: i.Time}
	if err := client.Reschedule(runCtx, i.ID, req); err != nil {
		return fmt.Errorf("reschedule interview: %w", err)
	}
	ctx.UI.Successf("Interview %d moved to %s %s", i.ID, i.Date, i.Time)

	pager := roster.NewPager(pageSize(ctx, i.Size))
	pager.Seek(i.Page)
	return renderInterviewsPage(ctx, runCtx, client, pager, "")
}

func (i *InterviewsFeedbackCmd) Run(ctx *Context) error {
	if strings.TrimSpace(i.Text) == "" {
		return fmt.Errorf("feedback must not be blank")
	}

	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	profile, err := ctx.RequireExecutive(runCtx, client)
	if err != nil {
		return err
	}

	if err := client.AddFeedback(runCtx, i.ID, i.Text); err != nil {
		return fmt.Errorf("add feedback: %w", err)
	}
	ctx.UI.Successf("Feedback recorded for interview %d", i.ID)

	return renderMyInterviews(ctx, runCtx, client, profile.ID, "")
}

func renderInterviewsPage(ctx *Context, runCtx context.Context, client *api.Client, pager *roster.Pager, formatFlag string) error {
	page, err := client.InterviewsPage(runCtx, pager.Page(), pager.Size())
	if err != nil {
		return fmt.Errorf("load interviews: %w", err)
	}
	pager.Observe(len(page))

	format, err := ctx.ResolveFormat(formatFlag)
	if err != nil {
		return err
	}
	if err := export.WriteInterviews(ctx.Out, page, format, ctx.WriteOptions()); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Err, "page=%d size=%d has_more=%t\n", pager.Page(), pager.Size(), pager.HasMore())
	return nil
}

func renderMyInterviews(ctx *Context, runCtx context.Context, client *api.Client, executiveID int64, formatFlag string) error {
	interviews, err := client.InterviewsByExecutive(runCtx, executiveID)
	if err != nil {
		return fmt.Errorf("load interviews: %w", err)
	}

	format, err := ctx.ResolveFormat(formatFlag)
	if err != nil {
		return err
	}
	return export.WriteInterviews(ctx.Out, interviews, format, ctx.WriteOptions())
}
