package repositories

import (
	"context"
	"database/sql"

	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

type creditRepo struct {
	log      logging.Logger
	executor queryExecutor
}

func (r *creditRepo) Balance(ctx context.Context, respondentID string) (int, error) {
	return r.balance(ctx, respondentID, false)
}

// BalanceForUpdate takes a row lock so a concurrent submission serializes
// behind this transaction instead of double-spending.
func (r *creditRepo) BalanceForUpdate(ctx context.Context, respondentID string) (int, error) {
	return r.balance(ctx, respondentID, true)
}

func (r *creditRepo) balance(ctx context.Context, respondentID string, forUpdate bool) (int, error) {
	query := `SELECT balance FROM respondent_credits WHERE respondent_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var balance int
	err := r.executor.QueryRowContext(ctx, query, respondentID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, errors.New(errors.ErrCodeNotFound, "credit account not found").
			WithDetail(respondentID)
	}
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load credit balance")
	}
	return balance, nil
}

func (r *creditRepo) Deduct(ctx context.Context, respondentID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, errors.InvalidParam("deduction amount must be positive")
	}

	// The balance check is part of the statement so the guard holds even
	// without a prior FOR UPDATE read.
	query := `
		UPDATE respondent_credits
		SET balance = balance - $2, updated_at = NOW()
		WHERE respondent_id = $1 AND balance >= $2
		RETURNING balance
	`
	var balance int
	err := r.executor.QueryRowContext(ctx, query, respondentID, amount).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, errors.New(errors.ErrCodeInsufficientCredits, "insufficient credits").
			WithDetail(respondentID)
	}
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to deduct credits")
	}
	return balance, nil
}

func (r *creditRepo) EnsureAccount(ctx context.Context, respondentID string, initial int) error {
	query := `
		INSERT INTO respondent_credits (respondent_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (respondent_id) DO NOTHING
	`
	if _, err := r.executor.ExecContext(ctx, query, respondentID, initial); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to ensure credit account")
	}
	return nil
}
