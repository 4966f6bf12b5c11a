package nutrition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitweek/fitweek/internal/sqlite"
)

// Service handles the business logic for food logging and macro goals.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
}

// NewService creates a new nutrition service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db),
		logger: logger,
	}
}

// Add logs a food entry for the given date and returns it with its assigned
// id.
func (s *Service) Add(ctx context.Context, entry FoodEntry) (FoodEntry, error) {
	entry.ID = uuid.NewString()
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.Name == "" {
		return FoodEntry{}, fmt.Errorf("food entry name is required")
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return FoodEntry{}, fmt.Errorf("add food entry: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "food entry logged",
		slog.String("id", entry.ID),
		slog.Bool("unhealthy", IsUnhealthy(entry.Name)))
	return entry, nil
}

// Remove deletes a logged entry by id.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove food entry: %w", err)
	}
	return nil
}

// EntriesFor returns the entries logged on the given date in log order.
func (s *Service) EntriesFor(ctx context.Context, date time.Time) ([]FoodEntry, error) {
	entries, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list food entries: %w", err)
	}
	return entries, nil
}

// Goals returns the user's macro targets, falling back to the defaults.
func (s *Service) Goals(ctx context.Context) (Goals, error) {
	goals, err := s.repo.GetGoals(ctx)
	if err != nil {
		return Goals{}, fmt.Errorf("get nutrition goals: %w", err)
	}
	return goals, nil
}

// SaveGoals stores the user's macro targets.
func (s *Service) SaveGoals(ctx context.Context, g Goals) error {
	if err := s.repo.SetGoals(ctx, g); err != nil {
		return fmt.Errorf("save nutrition goals: %w", err)
	}
	return nil
}

// ProgressFor derives the day's totals, goals and unhealthy-entry count for
// the score engine.
func (s *Service) ProgressFor(ctx context.Context, date time.Time) (Progress, error) {
	entries, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return Progress{}, fmt.Errorf("list food entries: %w", err)
	}
	goals, err := s.repo.GetGoals(ctx)
	if err != nil {
		return Progress{}, fmt.Errorf("get nutrition goals: %w", err)
	}

	progress := Progress{Goals: goals}
	for _, entry := range entries {
		progress.Totals.Calories += entry.Calories
		progress.Totals.Protein += entry.Protein
		progress.Totals.Carbs += entry.Carbs
		progress.Totals.Fat += entry.Fat
		if IsUnhealthy(entry.Name) {
			progress.UnhealthyCount++
		}
	}
	return progress, nil
}
