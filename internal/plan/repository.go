package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fitweek/fitweek/internal/contexthelpers"
	"github.com/fitweek/fitweek/internal/sqlite"
)

// ErrNotFound is returned when no plan has been stored for the week.
var ErrNotFound = errors.New("plan not found")

// sqliteRepository stores delivered plans per user and week. Plans are
// persisted as JSON documents; the pipeline never queries inside them.
type sqliteRepository struct {
	db *sqlite.Database
}

func newSQLiteRepository(db *sqlite.Database) *sqliteRepository {
	return &sqliteRepository{db: db}
}

// Get returns the stored plan and its warnings for the week starting on
// weekStart.
func (r *sqliteRepository) Get(ctx context.Context, weekStart time.Time) (*WeeklyPlan, []string, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var planJSON, warningsJSON []byte
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT plan_json, warnings_json
		FROM weekly_plans
		WHERE user_id = ? AND week_start = ?`,
		userID, weekStart.Format(time.DateOnly)).Scan(&planJSON, &warningsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query weekly plan: %w", err)
	}

	var plan WeeklyPlan
	if err := json.Unmarshal(planJSON, &plan); err != nil {
		return nil, nil, fmt.Errorf("decode stored plan: %w", err)
	}
	var warnings []string
	if len(warningsJSON) > 0 {
		if err := json.Unmarshal(warningsJSON, &warnings); err != nil {
			return nil, nil, fmt.Errorf("decode stored plan warnings: %w", err)
		}
	}
	return &plan, warnings, nil
}

// Set stores the plan for the week starting on weekStart, replacing any
// previously generated plan for that week.
func (r *sqliteRepository) Set(ctx context.Context, weekStart time.Time, plan *WeeklyPlan, warnings []string) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	warningsJSON, err := json.Marshal(warnings)
	if err != nil {
		return fmt.Errorf("encode plan warnings: %w", err)
	}

	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO weekly_plans (user_id, week_start, plan_json, warnings_json)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			plan_json = excluded.plan_json,
			warnings_json = excluded.warnings_json`,
		userID, weekStart.Format(time.DateOnly), planJSON, warningsJSON,
	)
	if err != nil {
		return fmt.Errorf("save weekly plan: %w", err)
	}
	return nil
}
