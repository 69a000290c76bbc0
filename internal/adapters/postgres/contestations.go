package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

const contestationColumns = `id, org_id, system_ref, subject, description, status, assigned_to, decision, received_at, closed_at`

func scanContestation(row pgx.Row) (domain.Contestation, error) {
	var c domain.Contestation
	err := row.Scan(&c.ID, &c.OrgID, &c.SystemRef, &c.Subject, &c.Description, &c.Status, &c.AssignedTo, &c.Decision, &c.ReceivedAt, &c.ClosedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, ports.ErrNotFound
	}
	return c, err
}

func (db *DB) CreateContestation(ctx context.Context, c domain.Contestation) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO contestations (`+contestationColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `, c.ID, c.OrgID, c.SystemRef, c.Subject, c.Description, c.Status, c.AssignedTo, c.Decision, c.ReceivedAt, c.ClosedAt)
	return err
}

func (db *DB) GetContestation(ctx context.Context, orgID, id string) (domain.Contestation, error) {
	row := db.Pool.QueryRow(ctx, `
        SELECT `+contestationColumns+` FROM contestations WHERE org_id = $1 AND id = $2
    `, orgID, id)
	return scanContestation(row)
}

func (db *DB) ListContestations(ctx context.Context, orgID string) ([]domain.Contestation, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT `+contestationColumns+` FROM contestations
        WHERE org_id = $1 ORDER BY received_at DESC
    `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Contestation
	for rows.Next() {
		c, err := scanContestation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (db *DB) UpdateContestation(ctx context.Context, c domain.Contestation) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE contestations
        SET subject=$3, description=$4, status=$5, assigned_to=$6, decision=$7, closed_at=$8
        WHERE org_id = $1 AND id = $2
    `, c.OrgID, c.ID, c.Subject, c.Description, c.Status, c.AssignedTo, c.Decision, c.ClosedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
