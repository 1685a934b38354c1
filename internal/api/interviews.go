package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/careercrafter/crafter/internal/models"
)

// ScheduleInterviewRequest is the payload for booking an interview.
type ScheduleInterviewRequest struct {
	Type        string `json:"type"`
	ModeDetails string `json:"modeDetails"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// RescheduleRequest carries the new slot for an existing interview.
type RescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// InterviewsPage fetches one page of interviews.
func (c *Client) InterviewsPage(ctx context.Context, page, size int) ([]models.Interview, error) {
	query := url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
	var interviews []models.Interview
	if err := c.get(ctx, "/api/interview/all", query, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

// InterviewsByExecutive lists the interviews assigned to one executive.
func (c *Client) InterviewsByExecutive(ctx context.Context, executiveID int64) ([]models.Interview, error) {
	var interviews []models.Interview
	if err := c.get(ctx, fmt.Sprintf("/api/interview/executive/%d", executiveID), nil, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

// ScheduleInterview books an interview between an application and an
// executive.
func (c *Client) ScheduleInterview(ctx context.Context, applicationID, executiveID int64, req ScheduleInterviewRequest) error {
	return c.post(ctx, fmt.Sprintf("/api/interview/schedule/%d/%d", applicationID, executiveID), nil, req, nil)
}

// AddFeedback submits executive feedback. Feedback travels as a query
// parameter with an empty body.
func (c *Client) AddFeedback(ctx context.Context, id int64, feedback string) error {
	query := url.Values{"feedback": {feedback}}
	return c.put(ctx, fmt.Sprintf("/api/interview/addFeedback/%d", id), query, nil, nil)
}

// Reschedule moves an interview to a new slot.
func (c *Client) Reschedule(ctx context.Context, id int64, req RescheduleRequest) error {
	return c.put(ctx, fmt.Sprintf("/api/interview/reschedule/%d", id), nil, req, nil)
}
