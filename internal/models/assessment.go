package models

import "fmt"

// Assessment is a scored screening task sent against one application. Score
// is null until the candidate is graded.
type Assessment struct {
	ID             int64  `json:"id"`
	ApplicationID  int64  `json:"applicationId"`
	Title          string `json:"title"`
	AssessmentLink string `json:"assessmentLink"`
	SentDate       string `json:"sentDate,omitempty"`
	Score          *int   `json:"score"`
	Completed      bool   `json:"completed"`
	JobTitle       string `json:"jobTitle,omitempty"`
	CandidateName  string `json:"candidateName,omitempty"`
}

// ValidateScore enforces the [0,100] range before a score update is sent.
func ValidateScore(score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("score %d out of range [0,100]", score)
	}
	return nil
}
