package models

import (
	"fmt"
	"strings"
)

// Interview types accepted by the API.
const (
	InterviewVideo    = "Video Call"
	InterviewPhone    = "Phone Call"
	InterviewInPerson = "In-Person"
)

var InterviewTypes = []string{InterviewVideo, InterviewPhone, InterviewInPerson}

// Interview is a scheduled meeting between an applicant and an executive.
// Feedback stays empty until the executive submits it.
type Interview struct {
	ID          int64        `json:"id"`
	Application *Application `json:"application,omitempty"`
	Executive   *Profile     `json:"executive,omitempty"`
	Type        string       `json:"type"`
	ModeDetails string       `json:"modeDetails"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Feedback    string       `json:"feedback,omitempty"`
}

// ValidInterviewType reports whether value is an accepted meeting type.
func ValidInterviewType(value string) error {
	for _, t := range InterviewTypes {
		if t == value {
			return nil
		}
	}
	return fmt.Errorf("invalid interview type %q (valid: %s)", value, strings.Join(InterviewTypes, ", "))
}
