package api

import (
	"context"
	"fmt"

	"github.com/careercrafter/crafter/internal/models"
)

// JobsByHR lists the postings owned by one HR user.
func (c *Client) JobsByHR(ctx context.Context, hrID int64) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.get(ctx, fmt.Sprintf("/api/job/hr/%d", hrID), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ApplicantCount returns the applicant total for one job.
func (c *Client) ApplicantCount(ctx context.Context, jobID int64) (int, error) {
	var count int
	if err := c.get(ctx, fmt.Sprintf("/api/job/%d/applicant-count", jobID), nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// AddJob creates a posting and returns the server's record.
func (c *Client) AddJob(ctx context.Context, job models.Job) (*models.Job, error) {
	var created models.Job
	if err := c.post(ctx, "/api/job/add", nil, job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateJob replaces a posting with the same payload shape as AddJob.
func (c *Client) UpdateJob(ctx context.Context, id int64, job models.Job) error {
	return c.put(ctx, fmt.Sprintf("/api/job/update/%d", id), nil, job, nil)
}

// DeleteJob removes a posting.
func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/job/delete/%d", id))
}
