package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/careercrafter/crafter/internal/api"
	"github.com/careercrafter/crafter/internal/export"
	"github.com/careercrafter/crafter/internal/models"
	"github.com/careercrafter/crafter/internal/pipeline"
)

type JobsCmd struct {
	List   JobsListCmd   `cmd:"" help:"List your postings with applicant counts."`
	Create JobsCreateCmd `cmd:"" help:"Post a new job."`
	Update JobsUpdateCmd `cmd:"" help:"Edit an existing posting."`
	Delete JobsDeleteCmd `cmd:"" help:"Delete a posting."`
}

type JobsListCmd struct {
	Format string `help:"Output format: table, csv, tsv, json." enum:",table,csv,tsv,json" default:""`
}

// JobFields are the posting form fields shared by create and update.
// Benefits is the only optional one.
type JobFields struct {
	Title        string `help:"Job title."`
	Description  string `help:"Job description."`
	Requirements string `help:"Role requirements."`
	SalaryRange  string `name:"salary-range" help:"Salary range, free text."`
	Location     string `help:"Job location."`
	Department   string `help:"Owning department."`
	Type         string `name:"type" help:"Job type: FULL_TIME, CONTRACT, REMOTE, INTERNSHIP."`
	Status       string `help:"Posting status: DRAFT, PUBLISHED, CLOSED."`
	Deadline     string `help:"Application deadline, echoed as entered."`
	Benefits     string `help:"Benefits, optional."`
}

type JobsCreateCmd struct {
	JobFields
	Format string `help:"Output format for the refetched list." enum:",table,csv,tsv,json" default:""`
}

type JobsUpdateCmd struct {
	ID int64 `arg:"" help:"Job id to edit."`
	JobFields
	Format string `help:"Output format for the refetched list." enum:",table,csv,tsv,json" default:""`
}

type JobsDeleteCmd struct {
	ID     int64  `arg:"" help:"Job id to delete."`
	Yes    bool   `help:"Skip the confirmation prompt."`
	Format string `help:"Output format for the refetched list." enum:",table,csv,tsv,json" default:""`
}

func (f JobFields) job() models.Job {
	return models.Job{
		Title:               f.Title,
		Description:         f.Description,
		Requirements:        f.Requirements,
		SalaryRange:         f.SalaryRange,
		Location:            f.Location,
		Department:          f.Department,
		JobType:             f.Type,
		Status:              f.Status,
		ApplicationDeadline: f.Deadline,
		Benefits:            f.Benefits,
	}
}

// overlay fills the edit form from the existing posting, then applies the
// provided flags on top, matching the pre-filled edit form.
func (f JobFields) overlay(existing models.Job) models.Job {
	job := existing
	if f.Title != "" {
		job.Title = f.Title
	}
	if f.Description != "" {
		job.Description = f.Description
	}
	if f.Requirements != "" {
		job.Requirements = f.Requirements
	}
	if f.SalaryRange != "" {
		job.SalaryRange = f.SalaryRange
	}
	if f.Location != "" {
		job.Location = f.Location
	}
	if f.Department != "" {
		job.Department = f.Department
	}
	if f.Type != "" {
		job.JobType = f.Type
	}
	if f.Status != "" {
		job.Status = f.Status
	}
	if f.Deadline != "" {
		job.ApplicationDeadline = f.Deadline
	}
	if f.Benefits != "" {
		job.Benefits = f.Benefits
	}
	return job
}

func (j *JobsListCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	profile, err := ctx.RequireHR(runCtx, client)
	if err != nil {
		return err
	}
	return listJobs(ctx, runCtx, client, profile, j.Format)
}

func (j *JobsCreateCmd) Run(ctx *Context) error {
	job := j.job()
	// Validation happens before any request goes out.
	if err := job.Validate(); err != nil {
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

	created, err := client.AddJob(runCtx, job)
	if err != nil {
		return fmt.Errorf("post job: %w", err)
	}
	ctx.UI.Successf("Job posted: %d %s", created.ID, created.Title)

	return listJobs(ctx, runCtx, client, profile, j.Format)
}

func (j *JobsUpdateCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	profile, err := ctx.RequireHR(runCtx, client)
	if err != nil {
		return err
	}

	jobs, err := client.JobsByHR(runCtx, profile.ID)
	if err != nil {
		return fmt.Errorf("load postings: %w", err)
	}
	existing, err := findJob(jobs, j.ID)
	if err != nil {
		return err
	}

	job := j.JobFields.overlay(existing)
	if err := job.Validate(); err != nil {
		return err
	}

	if err := client.UpdateJob(runCtx, j.ID, job); err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	ctx.UI.Successf("Job updated: %d %s", j.ID, job.Title)

	return listJobs(ctx, runCtx, client, profile, j.Format)
}

func (j *JobsDeleteCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	profile, err := ctx.RequireHR(runCtx, client)
	if err != nil {
		return err
	}

	if !j.Yes && !ctx.UI.Confirm("Are you sure you want to delete job %d?", j.ID) {
		ctx.UI.Infof("Aborted")
		return nil
	}

	if err := client.DeleteJob(runCtx, j.ID); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	ctx.UI.Successf("Job deleted: %d", j.ID)

	return listJobs(ctx, runCtx, client, profile, j.Format)
}

// listJobs is the shared fetch-and-render: the posting list plus one
// applicant-count fetch per job, failures degrading to zero.
func listJobs(ctx *Context, runCtx context.Context, client *api.Client, profile *models.Profile, formatFlag string) error {
	jobs, err := client.JobsByHR(runCtx, profile.ID)
	if err != nil {
		return fmt.Errorf("load postings: %w", err)
	}

	counts := pipeline.ApplicantCounts(runCtx, client, jobs, ctx.Logger)

	format, err := ctx.ResolveFormat(formatFlag)
	if err != nil {
		return err
	}
	return export.WriteJobs(ctx.Out, jobs, counts, format, ctx.WriteOptions())
}

func findJob(jobs []models.Job, id int64) (models.Job, error) {
	for _, job := range jobs {
		if job.ID == id {
			return job, nil
		}
	}
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, fmt.Sprintf("%d", job.ID))
	}
	return models.Job{}, fmt.Errorf("job %d not found (your postings: %s)", id, strings.Join(ids, ", "))
}
