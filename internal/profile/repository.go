package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fitweek/fitweek/internal/contexthelpers"
	"github.com/fitweek/fitweek/internal/sqlite"
)

// ErrNotFound is returned when no profile has been stored for the user.
var ErrNotFound = errors.New("profile not found")

// sqliteRepository handles database operations for fitness profiles.
type sqliteRepository struct {
	db *sqlite.Database
}

func newSQLiteRepository(db *sqlite.Database) *sqliteRepository {
	return &sqliteRepository{db: db}
}

// Get retrieves the fitness profile for the authenticated user.
func (r *sqliteRepository) Get(ctx context.Context) (Profile, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	var (
		p                   Profile
		weightKg            sql.NullFloat64
		age                 sql.NullInt64
		activityLevel       sql.NullString
		fitnessGoal         sql.NullString
		preferFewerRestDays bool
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT weight_kg, age, activity_level, fitness_goal, prefer_fewer_rest_days
		FROM fitness_profiles
		WHERE user_id = ?`, userID).Scan(
		&weightKg, &age, &activityLevel, &fitnessGoal, &preferFewerRestDays,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query fitness profile: %w", err)
	}

	p.WeightKg = weightKg.Float64
	p.Age = int(age.Int64)
	p.ActivityLevel = ActivityLevel(activityLevel.String)
	p.FitnessGoal = Goal(fitnessGoal.String)
	p.PreferFewerRestDays = preferFewerRestDays
	return p, nil
}

// Set saves the fitness profile for the authenticated user. Partial profiles
// are allowed; completeness is only enforced when a plan is requested.
func (r *sqliteRepository) Set(ctx context.Context, p Profile) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO fitness_profiles (
			user_id, weight_kg, age, activity_level, fitness_goal, prefer_fewer_rest_days
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			weight_kg = excluded.weight_kg,
			age = excluded.age,
			activity_level = excluded.activity_level,
			fitness_goal = excluded.fitness_goal,
			prefer_fewer_rest_days = excluded.prefer_fewer_rest_days`,
		userID, p.WeightKg, p.Age, string(p.ActivityLevel), string(p.FitnessGoal), p.PreferFewerRestDays,
	)
	if err != nil {
		return fmt.Errorf("save fitness profile: %w", err)
	}
	return nil
}
