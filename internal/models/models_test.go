package models

import (
	"strings"
	"testing"
	"time"
)

func validJob() Job {
	return Job{
		Title:               "Backend Engineer",
		Description:         "Builds services.",
		Requirements:        "Go, SQL",
		SalaryRange:         "90k-120k",
		Location:            "Berlin",
		Department:          "Engineering",
		JobType:             JobTypeFullTime,
		Status:              JobStatusPublished,
		ApplicationDeadline: "2026-10-01",
	}
}

func TestJobValidateAccepts(t *testing.T) {
	if err := validJob().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	job := validJob()
	job.Benefits = ""
	if err := job.Validate(); err != nil {
		t.Fatalf("benefits should be optional, got: %v", err)
	}
}

func TestJobValidateMissingField(t *testing.T) {
	job := validJob()
	job.SalaryRange = "   "
	err := job.Validate()
	if err == nil {
		t.Fatal("expected error for blank salary range")
	}
	if !strings.Contains(err.Error(), "salary-range") {
		t.Fatalf("error should name the field, got: %v", err)
	}
}

func TestJobValidateRejectsUnknownEnums(t *testing.T) {
	job := validJob()
	job.JobType = "FREELANCE"
	if err := job.Validate(); err == nil {
		t.Fatal("expected error for unknown job type")
	}

	job = validJob()
	job.Status = "published"
	if err := job.Validate(); err == nil {
		t.Fatal("expected error for lowercase status")
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range ApplicationStatuses {
		if err := ValidStatus(status); err != nil {
			t.Fatalf("%s should be valid: %v", status, err)
		}
	}
	if err := ValidStatus("hired"); err == nil {
		t.Fatal("statuses are case sensitive")
	}
	if err := ValidStatus("PENDING"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestValidateScore(t *testing.T) {
	for _, score := range []int{0, 87, 100} {
		if err := ValidateScore(score); err != nil {
			t.Fatalf("score %d should be valid: %v", score, err)
		}
	}
	for _, score := range []int{-1, 101} {
		if err := ValidateScore(score); err == nil {
			t.Fatalf("score %d should be rejected", score)
		}
	}
}

func TestAppliedTimeLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2026-03-05T10:30:00Z", time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)},
		{"2026-03-05T10:30:00", time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)},
		{"2026-03-05", time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := Application{AppliedAt: tc.raw}.AppliedTime()
		if !got.Equal(tc.want) {
			t.Fatalf("AppliedTime(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestAppliedTimeUnparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "yesterday", "05/03/2026"} {
		if got := (Application{AppliedAt: raw}).AppliedTime(); !got.IsZero() {
			t.Fatalf("AppliedTime(%q) = %v, want zero time", raw, got)
		}
	}
}

func TestValidInterviewType(t *testing.T) {
	for _, typ := range InterviewTypes {
		if err := ValidInterviewType(typ); err != nil {
			t.Fatalf("%s should be valid: %v", typ, err)
		}
	}
	if err := ValidInterviewType("video call"); err == nil {
		t.Fatal("interview types are case sensitive")
	}
}

func TestProfileDisplayName(t *testing.T) {
	var missing *Profile
	if got := missing.DisplayName(); got != "User" {
		t.Fatalf("nil profile = %q, want User", got)
	}
	if got := (&Profile{}).DisplayName(); got != "User" {
		t.Fatalf("empty name = %q, want User", got)
	}
	if got := (&Profile{Name: "Dana Cole"}).DisplayName(); got != "Dana Cole" {
		t.Fatalf("got %q", got)
	}
}
