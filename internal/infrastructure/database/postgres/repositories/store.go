package repositories

import (
	"context"

	appasmt "github.com/culturiq/engine/internal/application/assessment"
	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/domain/unlock"
	"github.com/culturiq/engine/internal/infrastructure/database/postgres"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

// Store bundles the three repositories the submission flow spans and lets
// them share one transaction.
type Store struct {
	conn     *postgres.Connection
	log      logging.Logger
	executor queryExecutor
}

// NewStore builds a store running against the pooled connection.
func NewStore(conn *postgres.Connection, log logging.Logger) *Store {
	return &Store{conn: conn, log: log, executor: conn.DB()}
}

// Results returns the result repository bound to the store's executor.
func (s *Store) Results() assessment.ResultRepository {
	return &resultRepo{log: s.log, executor: s.executor}
}

// Grants returns the grant repository bound to the store's executor.
func (s *Store) Grants() unlock.GrantRepository {
	return &grantRepo{log: s.log, executor: s.executor}
}

// Credits returns the credit repository bound to the store's executor.
func (s *Store) Credits() unlock.CreditRepository {
	return &creditRepo{log: s.log, executor: s.executor}
}

// WithTx runs fn against a store whose repositories share one transaction.
// Any error from fn rolls everything back.
func (s *Store) WithTx(ctx context.Context, fn func(appasmt.Store) error) error {
	tx, err := s.conn.DB().BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to begin transaction")
	}

	txStore := &Store{conn: s.conn, log: s.log, executor: tx}
	if err := fn(txStore); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to commit transaction")
	}
	return nil
}
