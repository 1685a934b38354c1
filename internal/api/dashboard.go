package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/careercrafter/crafter/internal/models"
)

// TotalJobs returns the HR user's posting count.
func (c *Client) TotalJobs(ctx context.Context, hrID int64) (int, error) {
	var count int
	if err := c.get(ctx, fmt.Sprintf("/api/job/hr/%d/count", hrID), nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// TotalHires returns the HR user's hired-application count.
func (c *Client) TotalHires(ctx context.Context, hrID int64) (int, error) {
	var count int
	if err := c.get(ctx, fmt.Sprintf("/api/application/hr/%d/hired-count", hrID), nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// RecentJobs returns the HR user's most recent postings, bounded by limit.
func (c *Client) RecentJobs(ctx context.Context, hrID int64, limit int) ([]models.Job, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	var jobs []models.Job
	if err := c.get(ctx, fmt.Sprintf("/api/job/hr/%d/recent", hrID), query, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpcomingInterviews returns the HR user's nearest interviews, bounded by
// limit.
func (c *Client) UpcomingInterviews(ctx context.Context, hrID int64, limit int) ([]models.Interview, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	var interviews []models.Interview
	if err := c.get(ctx, fmt.Sprintf("/api/interview/hr/%d/upcoming", hrID), query, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}
