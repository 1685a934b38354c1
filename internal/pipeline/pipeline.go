// Package pipeline holds the derived state of the application-management
// screen: per-job applicant counts, the assessment annotation index, and the
// applied-date ordering. Everything here is computed from fresh server
// snapshots; nothing is persisted.
package pipeline

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/careercrafter/crafter/internal/models"
)

// CountFetcher fetches one job's applicant total.
type CountFetcher interface {
	ApplicantCount(ctx context.Context, jobID int64) (int, error)
}

type countResult struct {
	jobID int64
	count int
	err   error
}

// ApplicantCounts fans out one fetch per job and collects totals keyed by
// job id. Fan-out equals job count. A per-job failure is logged and recorded
// as zero rather than failing the listing.
func ApplicantCounts(ctx context.Context, fetcher CountFetcher, jobs []models.Job, logger zerolog.Logger) map[int64]int {
	counts := make(map[int64]int, len(jobs))
	if len(jobs) == 0 {
		return counts
	}

	var wg sync.WaitGroup
	results := make(chan countResult, len(jobs))

	for _, job := range jobs {
		wg.Add(1)
		go func(jobID int64) {
			defer wg.Done()
			count, err := fetcher.ApplicantCount(ctx, jobID)
			results <- countResult{jobID: jobID, count: count, err: err}
		}(job.ID)
	}

	wg.Wait()
	close(results)

	for res := range results {
		if res.err != nil {
			logger.Warn().Int64("job_id", res.jobID).Err(res.err).Msg("applicant count failed; recording zero")
			counts[res.jobID] = 0
			continue
		}
		counts[res.jobID] = res.count
	}
	return counts
}

// IndexAssessments keys assessments by application id. The index is a
// read-only annotation: the application list's own status field stays
// authoritative and is never patched from it.
func IndexAssessments(assessments []models.Assessment) map[int64]models.Assessment {
	index := make(map[int64]models.Assessment, len(assessments))
	for _, assessment := range assessments {
		index[assessment.ApplicationID] = assessment
	}
	return index
}

// SortByAppliedDate returns applications ordered newest first. Unparseable
// dates sort last; the sort is stable for equal timestamps. Prior ordering
// is discarded; there is no toggle.
func SortByAppliedDate(applications []models.Application) []models.Application {
	out := make([]models.Application, len(applications))
	copy(out, applications)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedTime().After(out[j].AppliedTime())
	})
	return out
}
