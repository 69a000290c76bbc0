package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"aigov/internal/domain"
)

// AssessmentRepository

const assessmentColumns = `
    id, org_id, framework, requirement_code, status, notes, last_verified_at, updated_at`

func scanAssessment(row pgx.Row) (domain.Assessment, error) {
	var a domain.Assessment
	err := row.Scan(&a.ID, &a.OrgID, &a.Framework, &a.RequirementCode,
		&a.Status, &a.Notes, &a.LastVerifiedAt, &a.UpdatedAt)
	return a, err
}

func (db *DB) ListAssessments(ctx context.Context, orgID string) ([]domain.Assessment, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT `+assessmentColumns+`
        FROM assessments WHERE org_id = $1
        ORDER BY framework, requirement_code
    `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssessments(rows)
}

func (db *DB) ListAssessmentsByFramework(ctx context.Context, orgID string, fw domain.Framework) ([]domain.Assessment, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT `+assessmentColumns+`
        FROM assessments WHERE org_id = $1 AND framework = $2
        ORDER BY requirement_code
    `, orgID, fw)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssessments(rows)
}

func collectAssessments(rows pgx.Rows) ([]domain.Assessment, error) {
	var out []domain.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpsertAssessment creates the row on first evaluation and mutates it in
// place afterwards, keyed by (org, framework, requirement).
func (db *DB) UpsertAssessment(ctx context.Context, a domain.Assessment) (domain.Assessment, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	row := db.Pool.QueryRow(ctx, `
        INSERT INTO assessments
            (id, org_id, framework, requirement_code, status, notes, last_verified_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (org_id, framework, requirement_code) DO UPDATE SET
            status = EXCLUDED.status,
            notes = EXCLUDED.notes,
            last_verified_at = EXCLUDED.last_verified_at,
            updated_at = EXCLUDED.updated_at
        RETURNING `+assessmentColumns+`
    `, a.ID, a.OrgID, a.Framework, a.RequirementCode, a.Status, a.Notes, a.LastVerifiedAt, a.UpdatedAt)
	return scanAssessment(row)
}

// SeedDefaults inserts one default assessment per requirement not already
// assessed by the org. ON CONFLICT DO NOTHING makes re-seeding a no-op for
// covered pairs.
func (db *DB) SeedDefaults(ctx context.Context, orgID string, reqs []domain.Requirement, status domain.ComplianceStatus) (int, error) {
	if len(reqs) == 0 {
		return 0, nil
	}
	batch := &pgx.Batch{}
	for _, r := range reqs {
		batch.Queue(`
            INSERT INTO assessments (id, org_id, framework, requirement_code, status, updated_at)
            VALUES ($1, $2, $3, $4, $5, now())
            ON CONFLICT (org_id, framework, requirement_code) DO NOTHING
        `, uuid.NewString(), orgID, r.Framework, r.Code, status)
	}
	results := db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range reqs {
		tag, err := results.Exec()
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
