// Package seedrunner processes catalog-seeding jobs: for every requirement
// in the catalog not yet assessed by the job's org, it inserts one default
// assessment. Jobs are queued rows claimed by a polling dispatcher.
package seedrunner

import (
	"context"
	"log/slog"
	"time"

	"aigov/internal/catalog"
	"aigov/internal/domain"
	"aigov/internal/ports"
)

// SeedProcessor performs the seeding work for a claimed job.
type SeedProcessor interface {
	Process(ctx context.Context, job ports.SeedJob) (inserted int, err error)
}

// CatalogSeeder seeds framework by framework, reporting progress after each
// one. Seeding is idempotent: pairs already assessed are left untouched.
type CatalogSeeder struct {
	Assessments ports.AssessmentRepository
	Jobs        ports.SeedJobRepository
	Catalog     *catalog.Catalog
	Default     domain.ComplianceStatus
}

func (c CatalogSeeder) Process(ctx context.Context, job ports.SeedJob) (int, error) {
	status := c.Default
	if status == "" {
		status = domain.StatusNotApplicable
	}
	frameworks := domain.Frameworks()
	total := 0
	for i, fw := range frameworks {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}
		n, err := c.Assessments.SeedDefaults(ctx, job.OrgID, c.Catalog.Requirements(fw), status)
		if err != nil {
			return total, err
		}
		total += n
		if err := c.Jobs.UpdateSeedProgress(ctx, job.ID, float64(i+1)/float64(len(frameworks))); err != nil {
			return total, err
		}
	}
	return total, nil
}

// Run starts worker goroutines that claim jobs and process them.
func Run(ctx context.Context, repo ports.SeedJobRepository, processor SeedProcessor, concurrency int, pollInterval time.Duration) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.SeedJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(jobsCh)
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						slog.Error("seed job claim failed", "error", err)
						break
					}
					if !found {
						break
					}
					jobsCh <- job
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				inserted, err := processor.Process(ctx, job)
				if err != nil {
					_ = repo.MarkFailed(ctx, job.ID, err.Error())
					slog.Error("seed job failed", "worker", idx, "job", job.ID, "org", job.OrgID, "error", err)
					continue
				}
				if err := repo.MarkCompleted(ctx, job.ID, inserted); err != nil {
					slog.Error("seed job completion failed", "worker", idx, "job", job.ID, "error", err)
					continue
				}
				slog.Info("seed job completed", "worker", idx, "job", job.ID, "org", job.OrgID, "inserted", inserted)
			}
		}(i)
	}
}

// ProcessInline claims and processes the queued seed job of a specific org
// synchronously, using the same processor logic as the background workers.
func ProcessInline(ctx context.Context, repo ports.SeedJobRepository, processor SeedProcessor, orgID string) (int, error) {
	jobID, err := repo.StartJobForOrg(ctx, orgID)
	if err != nil {
		return 0, err
	}
	inserted, err := processor.Process(ctx, ports.SeedJob{ID: jobID, OrgID: orgID})
	if err != nil {
		_ = repo.MarkFailed(ctx, jobID, err.Error())
		return 0, err
	}
	return inserted, repo.MarkCompleted(ctx, jobID, inserted)
}
