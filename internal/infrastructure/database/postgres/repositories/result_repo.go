package repositories

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/culturiq/engine/internal/domain/assessment"
	"github.com/culturiq/engine/internal/infrastructure/monitoring/logging"
	"github.com/culturiq/engine/pkg/errors"
)

type resultRepo struct {
	log      logging.Logger
	executor queryExecutor
}

const resultColumns = `id, respondent_id, assessment_type, overall_score,
	section_scores, construct_scores, synergy_bonus, active_synergies,
	interpretation, submitted_at`

func (r *resultRepo) Create(ctx context.Context, result *assessment.Result) error {
	if err := result.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrCodeValidation, "invalid result")
	}

	sectionJSON, _ := json.Marshal(result.SectionScores)
	constructJSON, _ := json.Marshal(result.ConstructScores)
	synergiesJSON, _ := json.Marshal(result.ActiveSynergies)
	interpJSON, _ := json.Marshal(result.Interpretation)

	query := `
		INSERT INTO assessment_results (` + resultColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.executor.ExecContext(ctx, query,
		result.ID, result.RespondentID, result.Type, result.OverallScore,
		sectionJSON, constructJSON, result.SynergyBonus, synergiesJSON,
		interpJSON, result.SubmittedAt,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to insert result")
	}
	return nil
}

func (r *resultRepo) GetByID(ctx context.Context, id string) (*assessment.Result, error) {
	query := `SELECT ` + resultColumns + ` FROM assessment_results WHERE id = $1`
	result, err := scanResult(r.executor.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.ErrCodeResultNotFound, "assessment result not found").WithDetail(id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load result")
	}
	return result, nil
}

func (r *resultRepo) ListByRespondent(ctx context.Context, respondentID string) ([]*assessment.Result, error) {
	query := `
		SELECT ` + resultColumns + ` FROM assessment_results
		WHERE respondent_id = $1
		ORDER BY submitted_at DESC
	`
	rows, err := r.executor.QueryContext(ctx, query, respondentID)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list results")
	}
	defer rows.Close()

	var results []*assessment.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan result row")
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate result rows")
	}
	return results, nil
}

func (r *resultRepo) LatestByType(ctx context.Context, respondentID string, t assessment.Type) (*assessment.Result, error) {
	query := `
		SELECT ` + resultColumns + ` FROM assessment_results
		WHERE respondent_id = $1 AND assessment_type = $2
		ORDER BY submitted_at DESC
		LIMIT 1
	`
	result, err := scanResult(r.executor.QueryRowContext(ctx, query, respondentID, t))
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.ErrCodeResultNotFound, "assessment result not found").
			WithDetail(string(t))
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to load latest result")
	}
	return result, nil
}

func scanResult(s scanner) (*assessment.Result, error) {
	var (
		result        assessment.Result
		sectionJSON   []byte
		constructJSON []byte
		synergiesJSON []byte
		interpJSON    []byte
	)
	err := s.Scan(
		&result.ID, &result.RespondentID, &result.Type, &result.OverallScore,
		&sectionJSON, &constructJSON, &result.SynergyBonus, &synergiesJSON,
		&interpJSON, &result.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(sectionJSON, &result.SectionScores); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(constructJSON, &result.ConstructScores); err != nil {
		return nil, err
	}
	if len(synergiesJSON) > 0 {
		if err := json.Unmarshal(synergiesJSON, &result.ActiveSynergies); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal(interpJSON, &result.Interpretation); err != nil {
		return nil, err
	}
	return &result, nil
}
