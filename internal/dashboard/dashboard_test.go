package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careercrafter/crafter/internal/models"
)

type fakeFetcher struct {
	jobs       int
	hires      int
	recent     []models.Job
	upcoming   []models.Interview
	failJobs   bool
	failHires  bool
	failRecent bool
}

func (f *fakeFetcher) TotalJobs(_ context.Context, _ int64) (int, error) {
	if f.failJobs {
		return 0, errors.New("unavailable")
	}
	return f.jobs, nil
}

func (f *fakeFetcher) TotalHires(_ context.Context, _ int64) (int, error) {
	if f.failHires {
		return 0, errors.New("unavailable")
	}
	return f.hires, nil
}

func (f *fakeFetcher) RecentJobs(_ context.Context, _ int64, limit int) ([]models.Job, error) {
	if f.failRecent {
		return nil, errors.New("unavailable")
	}
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeFetcher) UpcomingInterviews(_ context.Context, _ int64, limit int) ([]models.Interview, error) {
	if len(f.upcoming) > limit {
		return f.upcoming[:limit], nil
	}
	return f.upcoming, nil
}

func TestLoadAllPanels(t *testing.T) {
	fetcher := &fakeFetcher{
		jobs:     12,
		hires:    4,
		recent:   []models.Job{{ID: 1, Title: "Backend Engineer"}},
		upcoming: []models.Interview{{ID: 9, Type: models.InterviewVideo}},
	}

	summary := Load(context.Background(), fetcher, 7, DefaultLimit, zerolog.Nop())
	if summary.TotalJobs != 12 || summary.TotalHires != 4 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if len(summary.RecentJobs) != 1 || len(summary.UpcomingInterviews) != 1 {
		t.Fatalf("unexpected lists: %+v", summary)
	}
}

func TestLoadDegradesFailedPanels(t *testing.T) {
	fetcher := &fakeFetcher{
		jobs:       12,
		hires:      4,
		recent:     []models.Job{{ID: 1}},
		upcoming:   []models.Interview{{ID: 9}},
		failJobs:   true,
		failRecent: true,
	}

	summary := Load(context.Background(), fetcher, 7, DefaultLimit, zerolog.Nop())
	if summary.TotalJobs != 0 {
		t.Fatalf("expected failed panel to default to zero, got %d", summary.TotalJobs)
	}
	if summary.RecentJobs != nil {
		t.Fatalf("expected failed panel to default to empty, got %+v", summary.RecentJobs)
	}
	// The other panels still load.
	if summary.TotalHires != 4 || len(summary.UpcomingInterviews) != 1 {
		t.Fatalf("independent panels must not be affected: %+v", summary)
	}
}

func TestLoadBoundsLists(t *testing.T) {
	fetcher := &fakeFetcher{
		recent: []models.Job{{ID: 1}, {ID: 2}, {ID: 3}},
	}
	summary := Load(context.Background(), fetcher, 7, 2, zerolog.Nop())
	if len(summary.RecentJobs) != 2 {
		t.Fatalf("expected bounded list of 2, got %d", len(summary.RecentJobs))
	}
}
