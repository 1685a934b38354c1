package models

import (
	"fmt"
	"strings"
)

// Job types and statuses accepted by the API.
const (
	JobTypeFullTime   = "FULL_TIME"
	JobTypeContract   = "CONTRACT"
	JobTypeRemote     = "REMOTE"
	JobTypeInternship = "INTERNSHIP"

	JobStatusDraft     = "DRAFT"
	JobStatusPublished = "PUBLISHED"
	JobStatusClosed    = "CLOSED"
)

var (
	JobTypes    = []string{JobTypeFullTime, JobTypeContract, JobTypeRemote, JobTypeInternship}
	JobStatuses = []string{JobStatusDraft, JobStatusPublished, JobStatusClosed}
)

// Job is a posting owned by an HR user. The server is the source of truth;
// instances are volatile snapshots.
type Job struct {
	ID                  int64  `json:"id,omitempty"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Requirements        string `json:"requirements"`
	SalaryRange         string `json:"salaryRange"`
	Location            string `json:"location"`
	Department          string `json:"department"`
	JobType             string `json:"jobType"`
	Status              string `json:"status"`
	ApplicationDeadline string `json:"applicationDeadline"`
	Benefits            string `json:"benefits,omitempty"`
}

// Validate checks the required create/update fields before any request is
// sent. Benefits is the only optional field. The deadline is an opaque
// string; the server validates its format.
func (j Job) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", j.Title},
		{"description", j.Description},
		{"requirements", j.Requirements},
		{"salary-range", j.SalaryRange},
		{"location", j.Location},
		{"department", j.Department},
		{"job-type", j.JobType},
		{"status", j.Status},
		{"deadline", j.ApplicationDeadline},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("missing required field: %s", field.name)
		}
	}
	if !contains(JobTypes, j.JobType) {
		return fmt.Errorf("invalid job type %q (valid: %s)", j.JobType, strings.Join(JobTypes, ", "))
	}
	if !contains(JobStatuses, j.Status) {
		return fmt.Errorf("invalid job status %q (valid: %s)", j.Status, strings.Join(JobStatuses, ", "))
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
