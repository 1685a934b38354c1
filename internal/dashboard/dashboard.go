// Package dashboard aggregates the landing-screen panels. The four fetches
// are independent and unordered; any panel that fails degrades to its zero
// value so the rest of the screen still renders.
package dashboard

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/careercrafter/crafter/internal/models"
)

// DefaultLimit bounds the recent/upcoming lists.
const DefaultLimit = 5

// Fetcher supplies the four panel sources.
type Fetcher interface {
	TotalJobs(ctx context.Context, hrID int64) (int, error)
	TotalHires(ctx context.Context, hrID int64) (int, error)
	RecentJobs(ctx context.Context, hrID int64, limit int) ([]models.Job, error)
	UpcomingInterviews(ctx context.Context, hrID int64, limit int) ([]models.Interview, error)
}

// Summary is one rendering of the landing screen.
type Summary struct {
	TotalJobs          int
	TotalHires         int
	RecentJobs         []models.Job
	UpcomingInterviews []models.Interview
}

// Load fetches all panels concurrently for one HR user.
func Load(ctx context.Context, fetcher Fetcher, hrID int64, limit int, logger zerolog.Logger) Summary {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var (
		summary Summary
		wg      sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		count, err := fetcher.TotalJobs(ctx, hrID)
		if err != nil {
			logger.Warn().Err(err).Msg("total jobs unavailable")
			return
		}
		summary.TotalJobs = count
	}()
	go func() {
		defer wg.Done()
		count, err := fetcher.TotalHires(ctx, hrID)
		if err != nil {
			logger.Warn().Err(err).Msg("total hires unavailable")
			return
		}
		summary.TotalHires = count
	}()
	go func() {
		defer wg.Done()
		jobs, err := fetcher.RecentJobs(ctx, hrID, limit)
		if err != nil {
			logger.Warn().Err(err).Msg("recent jobs unavailable")
			return
		}
		summary.RecentJobs = jobs
	}()
	go func() {
		defer wg.Done()
		interviews, err := fetcher.UpcomingInterviews(ctx, hrID, limit)
		if err != nil {
			logger.Warn().Err(err).Msg("upcoming interviews unavailable")
			return
		}
		summary.UpcomingInterviews = interviews
	}()

	wg.Wait()
	return summary
}
