package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/careercrafter/crafter/internal/api"
	"github.com/careercrafter/crafter/internal/export"
	"github.com/careercrafter/crafter/internal/models"
	"github.com/careercrafter/crafter/internal/pipeline"
)

type AppsCmd struct {
	List           AppsListCmd           `cmd:"" help:"List applications for a posting."`
	SetStatus      AppsSetStatusCmd      `cmd:"" name:"set-status" help:"Set an application's status."`
	SendAssessment AppsSendAssessmentCmd `cmd:"" name:"send-assessment" help:"Send a screening assessment."`
	Schedule       AppsScheduleCmd       `cmd:"" help:"Schedule an interview with an executive."`
	Executives     AppsExecutivesCmd     `cmd:"" help:"List executives for scheduling."`
}

type AppsListCmd struct {
	JobID       int64  `arg:"" name:"job-id" help:"Posting to list applications for."`
	SortApplied bool   `name:"sort-applied" help:"Sort by applied date, newest first."`
	Format      string `help:"Output format: table, csv, tsv, json." enum:",table,csv,tsv,json" default:""`
}

type AppsSetStatusCmd struct {
	ID     int64  `arg:"" help:"Application id."`
	Status string `arg:"" help:"New status."`
	Job    int64  `required:"" help:"Posting id, used to refetch the list."`
	Format string `help:"Output format for the refetched list." enum:",table,csv,tsv,json" default:""`
}

type AppsSendAssessmentCmd struct {
	ID     int64  `arg:"" help:"Application id."`
	Title  string `required:"" help:"Assessment title."`
	Link   string `required:"" help:"Assessment link."`
	Date   string `help:"Sent date; defaults to today."`
	Job    int64  `help:"Posting id; refetches the annotated list when set."`
	Format string `help:"Output format for the refetched list." enum:",table,csv,tsv,json" default:""`
}

type AppsScheduleCmd struct {
	ID        int64  `arg:"" help:"Application id."`
	Executive int64  `required:"" help:"Executive id conducting the interview."`
	Type      string `required:"" help:"Interview type: Video Call, Phone Call, In-Person."`
	Details   string `required:"" help:"Mode details (link, number, or address)."`
	Date      string `required:"" help:"Interview date."`
	Time      string `required:"" help:"Interview time."`
	Job       int64  `required:"" help:"Posting id, used to refetch the list."`
	Format    string `help:"Output format for the refetched list." enum:",table,csv,tsv,json" default:""`
}

type AppsExecutivesCmd struct {
	Format string `help:"Output format: table, csv, tsv, json." enum:",table,csv,tsv,json" default:""`
}

func (a *AppsListCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	if _, err := ctx.RequireHR(runCtx, client); err != nil {
		return err
	}
	return listApplications(ctx, runCtx, client, a.JobID, a.SortApplied, a.Format)
}

func (a *AppsSetStatusCmd) Run(ctx *Context) error {
	status := strings.ToUpper(strings.TrimSpace(a.Status))
	if err := models.ValidStatus(status); err != nil {
		return err
	}

	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	if _, err := ctx.RequireHR(runCtx, client); err != nil {
		return err
	}

	if err := client.UpdateApplicationStatus(runCtx, a.ID, status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	ctx.UI.Successf("Application %d set to %s", a.ID, status)

	// The server record is authoritative; a full refetch shows it.
	return listApplications(ctx, runCtx, client, a.Job, false, a.Format)
}

func (a *AppsSendAssessmentCmd) Run(ctx *Context) error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("assessment title cannot be blank")
	}
	if strings.TrimSpace(a.Link) == "" {
		return fmt.Errorf("assessment link cannot be blank")
	}
	sentDate := a.Date
	if sentDate == "" {
		sentDate = time.Now().Format("2006-01-02")
	}

	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	if _, err := ctx.RequireHR(runCtx, client); err != nil {
		return err
	}

	created, err := client.SendAssessment(runCtx, a.ID, api.SendAssessmentRequest{
		Title:          a.Title,
		AssessmentLink: a.Link,
		SentDate:       sentDate,
	})
	if err != nil {
		return fmt.Errorf("send assessment: %w", err)
	}
	ctx.UI.Successf("Assessment %d sent to application %d", created.ID, a.ID)

	if a.Job == 0 {
		return nil
	}
	return listApplications(ctx, runCtx, client, a.Job, false, a.Format)
}

func (a *AppsScheduleCmd) Run(ctx *Context) error {
	if err := models.ValidInterviewType(a.Type); err != nil {
		return err
	}

	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	if _, err := ctx.RequireHR(runCtx, client); err != nil {
		return err
	}

	err = client.ScheduleInterview(runCtx, a.ID, a.Executive, api.ScheduleInterviewRequest{
		Type:        a.Type,
		ModeDetails: a.Details,
		Date:        a.Date,
		Time:        a.Time,
	})
	if err != nil {
		return fmt.Errorf("schedule interview: %w", err)
	}
	ctx.UI.Successf("Interview scheduled for application %d with executive %d", a.ID, a.Executive)

	return listApplications(ctx, runCtx, client, a.Job, false, a.Format)
}

func (a *AppsExecutivesCmd) Run(ctx *Context) error {
	client, err := ctx.API()
	if err != nil {
		return err
	}
	runCtx := ctx.RunContext()

	if _, err := ctx.RequireHR(runCtx, client); err != nil {
		return err
	}

	executives, err := client.Executives(runCtx)
	if err != nil {
		return fmt.Errorf("load executives: %w", err)
	}

	format, err := ctx.ResolveFormat(a.Format)
	if err != nil {
		return err
	}
	return export.WriteExecutives(ctx.Out, executives, format, ctx.WriteOptions())
}

// listApplications replaces the local snapshot wholesale: the application
// list plus the assessment index for the annotation column. An assessment
// fetch failure degrades to no annotations.
func listApplications(ctx *Context, runCtx context.Context, client *api.Client, jobID int64, sortApplied bool, formatFlag string) error {
	apps, err := client.ApplicationsByJob(runCtx, jobID)
	if err != nil {
		return fmt.Errorf("load applications: %w", err)
	}

	var index map[int64]models.Assessment
	assessments, err := client.AssessmentsByJob(runCtx, jobID)
	if err != nil {
		ctx.Logger.Warn().Int64("job_id", jobID).Err(err).Msg("assessments unavailable; listing without annotations")
	} else {
		index = pipeline.IndexAssessments(assessments)
	}

	if sortApplied {
		apps = pipeline.SortByAppliedDate(apps)
	}

	format, err := ctx.ResolveFormat(formatFlag)
	if err != nil {
		return err
	}
	return export.WriteApplications(ctx.Out, apps, index, format, ctx.WriteOptions())
}
