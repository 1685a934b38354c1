package cmd

import (
	"strings"
	"testing"

	"github.com/careercrafter/crafter/internal/models"
)

func TestJobFieldsOverlayKeepsUnsetFields(t *testing.T) {
	existing := models.Job{
		ID:                  7,
		Title:               "Backend Engineer",
		Description:         "Builds services.",
		Requirements:        "Go, SQL",
		SalaryRange:         "90k-120k",
		Location:            "Berlin",
		Department:          "Engineering",
		JobType:             models.JobTypeFullTime,
		Status:              models.JobStatusPublished,
		ApplicationDeadline: "2026-10-01",
		Benefits:            "Remote fridays",
	}

	fields := JobFields{Status: models.JobStatusClosed, Deadline: "2026-09-01"}
	got := fields.overlay(existing)

	if got.Status != models.JobStatusClosed {
		t.Fatalf("status = %q, want %q", got.Status, models.JobStatusClosed)
	}
	if got.ApplicationDeadline != "2026-09-01" {
		t.Fatalf("deadline = %q", got.ApplicationDeadline)
	}
	if got.ID != 7 || got.Title != "Backend Engineer" || got.Benefits != "Remote fridays" {
		t.Fatalf("unset fields should survive the overlay, got %+v", got)
	}
}

func TestJobFieldsOverlayEmptyFormKeepsEverything(t *testing.T) {
	existing := models.Job{ID: 3, Title: "Designer", Status: models.JobStatusDraft}
	if got := (JobFields{}).overlay(existing); got != existing {
		t.Fatalf("empty form changed the posting: %+v", got)
	}
}

func TestFindJob(t *testing.T) {
	jobs := []models.Job{{ID: 4, Title: "A"}, {ID: 9, Title: "B"}}

	job, err := findJob(jobs, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Title != "B" {
		t.Fatalf("got %+v", job)
	}

	_, err = findJob(jobs, 12)
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !strings.Contains(err.Error(), "4, 9") {
		t.Fatalf("error should list known ids, got: %v", err)
	}
}
