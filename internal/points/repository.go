package points

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fitweek/fitweek/internal/contexthelpers"
	"github.com/fitweek/fitweek/internal/sqlite"
)

// ErrNotFound is returned when no points record exists for the user yet.
var ErrNotFound = errors.New("points record not found")

// Record is a user's persistent score state. TodayPoints is rewritten on
// every recomputation; TotalPoints only grows, at day rollover.
type Record struct {
	UserID          int       `json:"-"`
	TodayPoints     int       `json:"todayPoints"`
	TotalPoints     int       `json:"totalPoints"`
	LastUpdatedDate time.Time `json:"lastUpdatedDate"`
}

type sqliteRepository struct {
	db *sqlite.Database
}

func newSQLiteRepository(db *sqlite.Database) *sqliteRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Get(ctx context.Context) (Record, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var (
		record      Record
		updatedDate string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT today_points, total_points, last_updated_date
		FROM points
		WHERE user_id = ?`, userID).Scan(
		&record.TodayPoints, &record.TotalPoints, &updatedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("query points record: %w", err)
	}

	record.UserID = userID
	record.LastUpdatedDate, err = time.Parse(time.DateOnly, updatedDate)
	if err != nil {
		return Record{}, fmt.Errorf("parse points record date: %w", err)
	}
	return record, nil
}

// Set upserts the record keyed by its own UserID rather than the context, so
// the debounced background write works outside a request.
func (r *sqliteRepository) Set(ctx context.Context, record Record) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO points (user_id, today_points, total_points, last_updated_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			today_points = excluded.today_points,
			total_points = excluded.total_points,
			last_updated_date = excluded.last_updated_date`,
		record.UserID, record.TodayPoints, record.TotalPoints,
		record.LastUpdatedDate.Format(time.DateOnly),
	)
	if err != nil {
		return fmt.Errorf("save points record: %w", err)
	}
	return nil
}

// RolloverAll accumulates yesterday's points into the running totals for
// every record that has not been touched today. Run by the nightly sweep.
func (r *sqliteRepository) RolloverAll(ctx context.Context, today time.Time) (int64, error) {
	date := today.Format(time.DateOnly)
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE points
		SET total_points = total_points + today_points,
			today_points = 0,
			last_updated_date = ?
		WHERE last_updated_date <> ?`, date, date)
	if err != nil {
		return 0, fmt.Errorf("roll over points records: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("roll over points rows affected: %w", err)
	}
	return affected, nil
}
