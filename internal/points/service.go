package points

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitweek/fitweek/internal/contexthelpers"
	"github.com/fitweek/fitweek/internal/errors"
	"github.com/fitweek/fitweek/internal/nutrition"
	"github.com/fitweek/fitweek/internal/sqlite"
)

const backgroundWriteTimeout = 5 * time.Second

// Service recomputes and persists daily scores. Persistence is debounced so
// a burst of food-log edits results in a single write.
type Service struct {
	repo      *sqliteRepository
	nutrition *nutrition.Service
	writer    *debouncedWriter
	logger    *slog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewService creates the points service. debounce is the quiescence window
// before a recomputed score is written; zero writes synchronously.
func NewService(db *sqlite.Database, nutritionSvc *nutrition.Service, debounce time.Duration, logger *slog.Logger) *Service {
	s := &Service{
		repo:      newSQLiteRepository(db),
		nutrition: nutritionSvc,
		logger:    logger,
		now:       time.Now,
	}
	s.writer = newDebouncedWriter(debounce, s.persist)
	return s
}

func (s *Service) persist(record Record) {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundWriteTimeout)
	defer cancel()

	if err := s.repo.Set(ctx, record); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "persist points record",
			slog.Int("user_id", record.UserID),
			errors.SlogError(err))
	}
}

// Get returns the user's current record with any pending day rollover
// applied.
func (s *Service) Get(ctx context.Context) (Record, error) {
	record, err := s.load(ctx)
	if err != nil {
		return Record{}, err
	}
	if s.rollover(&record) {
		s.writer.Schedule(record)
	}
	return record, nil
}

// Recompute rescores today from the logged food entries and schedules the
// result for persistence. Called whenever the day's food log changes.
func (s *Service) Recompute(ctx context.Context) (Record, error) {
	record, err := s.load(ctx)
	if err != nil {
		return Record{}, err
	}
	s.rollover(&record)

	today := dateOf(s.now())
	progress, err := s.nutrition.ProgressFor(ctx, today)
	if err != nil {
		return Record{}, fmt.Errorf("load nutrition progress: %w", err)
	}

	record.TodayPoints = Score(progress)
	record.LastUpdatedDate = today
	s.writer.Schedule(record)

	s.logger.LogAttrs(ctx, slog.LevelDebug, "score recomputed",
		slog.Int("today_points", record.TodayPoints),
		slog.Int("unhealthy_entries", progress.UnhealthyCount))
	return record, nil
}

// Flush writes any pending record immediately. Called on shutdown.
func (s *Service) Flush() {
	s.writer.Flush()
}

// RolloverSweep accumulates stale today-scores into the totals for all users
// at once. Run nightly so totals stay fresh even for users who never log in.
func (s *Service) RolloverSweep(ctx context.Context) error {
	rolled, err := s.repo.RolloverAll(ctx, dateOf(s.now()))
	if err != nil {
		return fmt.Errorf("points rollover sweep: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "points rollover sweep",
		slog.Int64("records", rolled))
	return nil
}

func (s *Service) load(ctx context.Context) (Record, error) {
	record, err := s.repo.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return Record{
			UserID:          contexthelpers.AuthenticatedUserID(ctx),
			LastUpdatedDate: dateOf(s.now()),
		}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("load points record: %w", err)
	}
	return record, nil
}

// rollover moves today's points into the total when the stored date has
// fallen behind. Reports whether the record changed.
func (s *Service) rollover(record *Record) bool {
	today := dateOf(s.now())
	if record.LastUpdatedDate.Equal(today) {
		return false
	}
	record.TotalPoints += record.TodayPoints
	record.TodayPoints = 0
	record.LastUpdatedDate = today
	return true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
