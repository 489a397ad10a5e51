package assessment

import "context"

// ResultRepository persists scored results.  Results are append-only; a
// retake inserts a new row.
type ResultRepository interface {
	Create(ctx context.Context, result *Result) error
	GetByID(ctx context.Context, id string) (*Result, error)
	ListByRespondent(ctx context.Context, respondentID string) ([]*Result, error)
	// LatestByType returns the most recent result of one assessment type for
	// a respondent, or a not-found error when none exists.
	LatestByType(ctx context.Context, respondentID string, t Type) (*Result, error)
}
