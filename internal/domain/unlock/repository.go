package unlock

import "context"

// GrantRepository persists the entitlements a respondent holds.  Add must be
// idempotent: inserting a grant the respondent already holds is a no-op, not
// an error.
type GrantRepository interface {
	ListByRespondent(ctx context.Context, respondentID string) ([]Grant, error)
	Add(ctx context.Context, respondentID string, grants []Grant) error
	Has(ctx context.Context, respondentID string, grant Grant) (bool, error)
}

// CreditRepository manages the respondent's credit balance.  BalanceForUpdate
// must take a row lock so a concurrent submission cannot double-spend; it is
// only meaningful inside a transaction.
type CreditRepository interface {
	Balance(ctx context.Context, respondentID string) (int, error)
	BalanceForUpdate(ctx context.Context, respondentID string) (int, error)
	// Deduct subtracts amount and returns the new balance.
	Deduct(ctx context.Context, respondentID string, amount int) (int, error)
	// EnsureAccount creates the credit row with an initial balance if the
	// respondent has none yet.
	EnsureAccount(ctx context.Context, respondentID string, initial int) error
}
