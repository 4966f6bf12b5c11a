package nutrition

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fitweek/fitweek/internal/contexthelpers"
	"github.com/fitweek/fitweek/internal/sqlite"
)

// ErrNotFound is returned when a food entry does not exist for the user.
var ErrNotFound = errors.New("food entry not found")

type sqliteRepository struct {
	db *sqlite.Database
}

func newSQLiteRepository(db *sqlite.Database) *sqliteRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Insert(ctx context.Context, entry FoodEntry) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO food_entries (id, user_id, entry_date, name, calories, protein, carbs, fat)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, userID, entry.Date.Format(time.DateOnly), entry.Name,
		entry.Calories, entry.Protein, entry.Carbs, entry.Fat,
	)
	if err != nil {
		return fmt.Errorf("insert food entry: %w", err)
	}
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id string) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	result, err := r.db.ReadWrite.ExecContext(ctx,
		"DELETE FROM food_entries WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete food entry rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) ListByDate(ctx context.Context, date time.Time) ([]FoodEntry, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, entry_date, name, calories, protein, carbs, fat
		FROM food_entries
		WHERE user_id = ? AND entry_date = ?
		ORDER BY created_at`, userID, date.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("query food entries: %w", err)
	}
	defer rows.Close()

	var entries []FoodEntry
	for rows.Next() {
		var (
			entry     FoodEntry
			entryDate string
		)
		if err := rows.Scan(&entry.ID, &entryDate, &entry.Name,
			&entry.Calories, &entry.Protein, &entry.Carbs, &entry.Fat); err != nil {
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		entry.Date, err = time.Parse(time.DateOnly, entryDate)
		if err != nil {
			return nil, fmt.Errorf("parse food entry date: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food entries: %w", err)
	}
	return entries, nil
}

func (r *sqliteRepository) GetGoals(ctx context.Context) (Goals, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var g Goals
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT calories, protein, carbs, fat
		FROM nutrition_goals
		WHERE user_id = ?`, userID).Scan(&g.Calories, &g.Protein, &g.Carbs, &g.Fat)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultGoals(), nil
	}
	if err != nil {
		return Goals{}, fmt.Errorf("query nutrition goals: %w", err)
	}
	return g, nil
}

func (r *sqliteRepository) SetGoals(ctx context.Context, g Goals) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO nutrition_goals (user_id, calories, protein, carbs, fat)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			calories = excluded.calories,
			protein = excluded.protein,
			carbs = excluded.carbs,
			fat = excluded.fat`,
		userID, g.Calories, g.Protein, g.Carbs, g.Fat,
	)
	if err != nil {
		return fmt.Errorf("save nutrition goals: %w", err)
	}
	return nil
}
