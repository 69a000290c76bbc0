package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"aigov/internal/ports"
)

// EnqueueSeed queues a catalog-seeding job for the org and returns its id.
func (db *DB) EnqueueSeed(ctx context.Context, orgID string) (string, error) {
	jobID := uuid.NewString()
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO seed_jobs (id, org_id, status, queued_at)
        VALUES ($1, $2, 'queued', now())
    `, jobID, orgID)
	if err != nil {
		return "", err
	}
	return jobID, nil
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.SeedJob, found bool, err error) {
	// Use explicit transaction to safely lock and transition state
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id, org_id FROM seed_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.OrgID)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
        UPDATE seed_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) UpdateSeedProgress(ctx context.Context, jobID string, progress float64) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	_, err := db.Pool.Exec(ctx, `UPDATE seed_jobs SET progress=$2 WHERE id=$1`, jobID, progress)
	return err
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string, inserted int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE seed_jobs SET status='completed', progress=1, inserted=$2, finished_at=now() WHERE id=$1
    `, jobID, inserted)
	return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE seed_jobs SET status='failed', reason=$2, finished_at=now() WHERE id=$1
    `, jobID, reason)
	return err
}

// StartJobForOrg marks the queued job for a specific org as running and
// returns the job id. Used by the synchronous seeding path.
func (db *DB) StartJobForOrg(ctx context.Context, orgID string) (string, error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var jobID string
	err = tx.QueryRow(ctx, `
        SELECT id FROM seed_jobs
        WHERE org_id = $1 AND status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `, orgID).Scan(&jobID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ports.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if _, err = tx.Exec(ctx, `
        UPDATE seed_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, jobID); err != nil {
		return "", err
	}
	return jobID, nil
}

func (db *DB) SeedStatus(ctx context.Context, orgID, jobID string) (string, float64, error) {
	var (
		status   string
		progress float64
	)
	err := db.Pool.QueryRow(ctx, `
        SELECT status, progress FROM seed_jobs WHERE org_id = $1 AND id = $2
    `, orgID, jobID).Scan(&status, &progress)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", 0, ports.ErrNotFound
	}
	return status, progress, err
}
