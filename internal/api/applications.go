package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/careercrafter/crafter/internal/models"
)

// ApplicationsByJob lists applications for one posting. Callers replace
// their local list wholesale; there is no merge.
func (c *Client) ApplicationsByJob(ctx context.Context, jobID int64) ([]models.Application, error) {
	var apps []models.Application
	if err := c.get(ctx, fmt.Sprintf("/api/application/job/%d/applications", jobID), nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus sets an application's status. The status travels
// as a query parameter with an empty body; that is the canonical contract.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id int64, status string) error {
	query := url.Values{"status": {status}}
	return c.put(ctx, fmt.Sprintf("/api/application/update-status/%d", id), query, nil, nil)
}

// Executives lists all executives, used as the interview-scheduling pick
// list.
func (c *Client) Executives(ctx context.Context) ([]models.Profile, error) {
	var executives []models.Profile
	if err := c.get(ctx, "/api/executive/all", nil, &executives); err != nil {
		return nil, err
	}
	return executives, nil
}
