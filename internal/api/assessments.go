package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/careercrafter/crafter/internal/models"
)

// SendAssessmentRequest is the payload for sending a screening task.
type SendAssessmentRequest struct {
	Title          string `json:"title"`
	AssessmentLink string `json:"assessmentLink"`
	SentDate       string `json:"sentDate,omitempty"`
}

// AssessmentsByJob lists assessments for one posting, used to annotate the
// application pipeline.
func (c *Client) AssessmentsByJob(ctx context.Context, jobID int64) ([]models.Assessment, error) {
	var assessments []models.Assessment
	if err := c.get(ctx, fmt.Sprintf("/api/assessment/job/%d", jobID), nil, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// AssessmentsPage fetches one page of an HR user's assessments.
func (c *Client) AssessmentsPage(ctx context.Context, hrID int64, page, size int) ([]models.Assessment, error) {
	query := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
	var assessments []models.Assessment
	if err := c.get(ctx, fmt.Sprintf("/api/assessment/all/hr/%d", hrID), query, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

// SendAssessment posts a screening task against one application and returns
// the created record.
func (c *Client) SendAssessment(ctx context.Context, applicationID int64, req SendAssessmentRequest) (*models.Assessment, error) {
	var created models.Assessment
	if err := c.post(ctx, fmt.Sprintf("/api/assessment/send/%d", applicationID), nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAssessmentScore grades an assessment. Score travels as a query
// parameter with an empty body.
func (c *Client) UpdateAssessmentScore(ctx context.Context, id int64, score int) error {
	query := url.Values{"score": {strconv.Itoa(score)}}
	return c.put(ctx, fmt.Sprintf("/api/assessment/update-score/%d", id), query, nil, nil)
}
