package cmd

import (
	"context"
	"fmt"

	"github.com/careercrafter/crafter/internal/api"
	"github.com/careercrafter/crafter/internal/export"
	"github.com/careercrafter/crafter/internal/models"
	"github.com/careercrafter/crafter/internal/roster"
)

type AssessmentsCmd struct {
	List  AssessmentsListCmd  `cmd:"" help:"List one page of your assessments."`
	Score AssessmentsScoreCmd `cmd:"" help:"Grade an assessment."`
}

type AssessmentsListCmd struct {
	Page   int    `help:"Zero-based page." default:"0"`
	Size   int    `help:"Page size; defaults to the configured window."`
	Sort   string `help:"Score sort: none, asc, desc." enum:"none,asc,desc" default:"none"`
	Format string `help:"Output format: table, csv, tsv, json." enum:",table,csv,tsv,json" default:""`
}

type AssessmentsScoreCmd struct {
	ID    int64 `arg:"" help:"Assessment id."`
	Score int   `arg:"" help:"Score, 0-100."`
	Page  int   `help:"Page to refetch afterwards." default:"0"`
	Size  int   `help:"Page size; defaults to the configured window."`
}

func (a *AssessmentsListCmd) Run(ctx *Context) error {
	order, err := roster.ParseOrder(a.Sort)
	if err != nil {
		return err
	}

	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	profile, err := ctx.RequireHR(runCtx, client)
	if err != nil {
		return err
	}

	state := roster.NewAssessments(pageSize(ctx, a.Size))
	state.SetSort(order)
	state.Seek(a.Page)

	return renderAssessmentsPage(ctx, runCtx, client, profile, state, a.Format)
}

func (a *AssessmentsScoreCmd) Run(ctx *Context) error {
	if err := models.ValidateScore(a.Score); err != nil {
		return err
	}

	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	profile, err := ctx.RequireHR(runCtx, client)
	if err != nil {
		return err
	}

	if err := client.UpdateAssessmentScore(runCtx, a.ID, a.Score); err != nil {
		return fmt.Errorf("update score: %w", err)
	}
	ctx.UI.Successf("Assessment %d scored %d", a.ID, a.Score)

	// Refetch the current page.
	state := roster.NewAssessments(pageSize(ctx, a.Size))
	state.Seek(a.Page)
	return renderAssessmentsPage(ctx, runCtx, client, profile, state, "")
}

func renderAssessmentsPage(ctx *Context, runCtx context.Context, client *api.Client, profile *models.Profile, state *roster.Assessments, formatFlag string) error {
	page, err := client.AssessmentsPage(runCtx, profile.ID, state.Page(), state.Size())
	if err != nil {
		return fmt.Errorf("load assessments: %w", err)
	}
	state.Observe(len(page))

	sorted := roster.SortScores(page, state.Order())

	format, err := ctx.ResolveFormat(formatFlag)
	if err != nil {
		return err
	}
	if err := export.WriteAssessments(ctx.Out, sorted, format, ctx.WriteOptions()); err != nil {
		return err
	}

	fmt.Fprintf(ctx.Err, "page=%d size=%d sort=%s has_more=%t\n", state.Page(), state.Size(), state.Order(), state.HasMore())
	return nil
}

func pageSize(ctx *Context, flag int) int {
	if flag > 0 {
		return flag
	}
	return ctx.Config.PageSize
}
