package ports

import "context"

type SeedJob struct {
	ID    string
	OrgID string
}

// SeedJobRepository supports claiming and updating catalog-seeding jobs.
type SeedJobRepository interface {
	EnqueueSeed(ctx context.Context, orgID string) (jobID string, err error)
	ClaimNext(ctx context.Context) (job SeedJob, found bool, err error)
	UpdateSeedProgress(ctx context.Context, jobID string, progress float64) error
	MarkCompleted(ctx context.Context, jobID string, inserted int) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	StartJobForOrg(ctx context.Context, orgID string) (jobID string, err error)
	SeedStatus(ctx context.Context, orgID, jobID string) (status string, progress float64, err error)
}
