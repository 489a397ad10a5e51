package repositories

import (
	"context"

	"github.com/culturiq/engine/internal/domain/unlock"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

type grantRepo struct {
	log      logging.Logger
	executor queryExecutor
}

func (r *grantRepo) ListByRespondent(ctx context.Context, respondentID string) ([]unlock.Grant, error) {
	query := `
		SELECT kind, grant_key FROM grants
		WHERE respondent_id = $1
		ORDER BY granted_at, kind, grant_key
	`
	rows, err := r.executor.QueryContext(ctx, query, respondentID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list grants")
	}
	defer rows.Close()

	var grants []unlock.Grant
	for rows.Next() {
		var g unlock.Grant
		if err := rows.Scan(&g.Kind, &g.Key); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan grant row")
		}
		grants = append(grants, g)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate grant rows")
	}
	return grants, nil
}

func (r *grantRepo) Add(ctx context.Context, respondentID string, grants []unlock.Grant) error {
	if len(grants) == 0 {
		return nil
	}

	// ON CONFLICT keeps the insert idempotent across replays.
	query := `
		INSERT INTO grants (respondent_id, kind, grant_key)
		VALUES ($1, $2, $3)
		ON CONFLICT (respondent_id, kind, grant_key) DO NOTHING
	`
	for _, g := range grants {
		if _, err := r.executor.ExecContext(ctx, query, respondentID, g.Kind, g.Key); err != nil {
			return errors.Wrap(err, errors.ErrCodeGrantFailed, "failed to insert grant")
		}
	}
	return nil
}

func (r *grantRepo) Has(ctx context.Context, respondentID string, grant unlock.Grant) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM grants
			WHERE respondent_id = $1 AND kind = $2 AND grant_key = $3
		)
	`
	var exists bool
	err := r.executor.QueryRowContext(ctx, query, respondentID, grant.Kind, grant.Key).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to check grant")
	}
	return exists, nil
}
