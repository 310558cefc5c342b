package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zapponejosh/wuyun-api/internal/wuyun"
)

const seasonalStepColumns = `step, name, start_term, end_term, main_qi`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeasonalStep(row rowScanner) (*SeasonalStep, error) {
	var s SeasonalStep
	var mainQi string
	if err := row.Scan(&s.Step, &s.Name, &s.StartTerm, &s.EndTerm, &mainQi); err != nil {
		return nil, err
	}

	qi, ok := wuyun.ParseQi(mainQi)
	if !ok {
		return nil, fmt.Errorf("step %d: unknown main qi %q", s.Step, mainQi)
	}
	s.MainQi = qi

	return &s, nil
}

// ListSeasonalSteps returns the six steps ordered by step number.
func (db *DB) ListSeasonalSteps(ctx context.Context) ([]SeasonalStep, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+seasonalStepColumns+` FROM seasonal_steps ORDER BY step`)
	if err != nil {
		return nil, fmt.Errorf("query seasonal steps: %w", err)
	}
	defer rows.Close()

	var steps []SeasonalStep
	for rows.Next() {
		s, err := scanSeasonalStep(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seasonal step: %w", err)
		}
		steps = append(steps, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seasonal steps: %w", err)
	}

	return steps, nil
}

// GetSeasonalStep returns a single step. Returns ErrNotFound for an unknown step.
func (db *DB) GetSeasonalStep(ctx context.Context, step int) (*SeasonalStep, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+seasonalStepColumns+` FROM seasonal_steps WHERE step = ?`, step)

	s, err := scanSeasonalStep(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query seasonal step %d: %w", step, err)
	}

	return s, nil
}
