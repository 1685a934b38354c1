package models

import (
	"fmt"
	"strings"
	"time"
)

// Application statuses. The API exposes a flat enumeration with no enforced
// transition graph; any value may be set from any other.
const (
	StatusApplied            = "APPLIED"
	StatusShortlisted        = "SHORTLISTED"
	StatusAssessmentSent     = "ASSESSMENT_SENT"
	StatusInterviewScheduled = "INTERVIEW_SCHEDULED"
	StatusHired              = "HIRED"
	StatusRejected           = "REJECTED"
)

var ApplicationStatuses = []string{
	StatusApplied,
	StatusShortlisted,
	StatusAssessmentSent,
	StatusInterviewScheduled,
	StatusHired,
	StatusRejected,
}

// JobSeeker is the candidate embedded in an application. Resume is an opaque
// URL served elsewhere.
type JobSeeker struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Resume string `json:"resume,omitempty"`
}

// Application is a job-seeker's submission against one posting.
type Application struct {
	ID        int64     `json:"id"`
	JobSeeker JobSeeker `json:"jobSeeker"`
	Job       *Job      `json:"job,omitempty"`
	Status    string    `json:"status"`
	AppliedAt string    `json:"appliedAt,omitempty"`
}

// AppliedTime parses the raw applied date. Unparseable values sort last, so
// the zero time is returned without error distinction.
func (a Application) AppliedTime() time.Time {
	value := strings.TrimSpace(a.AppliedAt)
	if value == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// ValidStatus reports whether value is one of the six API statuses.
func ValidStatus(value string) error {
	for _, status := range ApplicationStatuses {
		if status == value {
			return nil
		}
	}
	return fmt.Errorf("invalid status %q (valid: %s)", value, strings.Join(ApplicationStatuses, ", "))
}
