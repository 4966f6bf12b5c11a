package plan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitweek/fitweek/internal/errors"
	"github.com/fitweek/fitweek/internal/profile"
	"github.com/fitweek/fitweek/internal/sqlite"
)

// ErrGenerationUnavailable is returned when no completion service has been
// configured for this deployment.
var ErrGenerationUnavailable = errors.NewSentinel("plan generation is not configured")

// CandidateGenerator is the external collaborator boundary. Production wires
// the OpenAI Generator; tests inject a fake.
type CandidateGenerator interface {
	Generate(ctx context.Context, prof profile.Profile) (*WeeklyPlan, error)
}

// Service runs the full plan pipeline: validate the profile, request a
// candidate from the generator, normalize it, check it, persist it.
type Service struct {
	generator CandidateGenerator
	checker   *Checker
	repo      *sqliteRepository
	profiles  *profile.Service
	logger    *slog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewService creates the plan service. A nil generator disables generation
// while leaving stored plans readable.
func NewService(db *sqlite.Database, profiles *profile.Service, gen *Generator, catalog *Catalog, logger *slog.Logger) *Service {
	if gen == nil {
		return NewServiceWithGenerator(db, profiles, nil, catalog, logger)
	}
	return NewServiceWithGenerator(db, profiles, gen, catalog, logger)
}

// NewServiceWithGenerator is NewService with the collaborator boundary left
// open for a custom generator implementation.
func NewServiceWithGenerator(db *sqlite.Database, profiles *profile.Service, gen CandidateGenerator, catalog *Catalog, logger *slog.Logger) *Service {
	return &Service{
		generator: gen,
		checker:   NewChecker(catalog),
		repo:      newSQLiteRepository(db),
		profiles:  profiles,
		logger:    logger,
		now:       time.Now,
	}
}

// Current returns the stored plan for the ongoing week, or ErrNotFound when
// none has been generated yet.
func (s *Service) Current(ctx context.Context) (*WeeklyPlan, []string, error) {
	plan, warnings, err := s.repo.Get(ctx, mondayOf(s.now()))
	if err != nil {
		return nil, nil, fmt.Errorf("get current plan: %w", err)
	}
	return plan, warnings, nil
}

// Generate runs the pipeline once for the authenticated user and stores the
// delivered plan for the ongoing week. Soft anomalies come back as warnings;
// contract violations abort with an error and nothing is stored.
func (s *Service) Generate(ctx context.Context) (*WeeklyPlan, []string, error) {
	prof, err := s.profiles.Get(ctx)
	if errors.Is(err, profile.ErrNotFound) {
		prof = profile.Profile{}
	} else if err != nil {
		return nil, nil, fmt.Errorf("load profile: %w", err)
	}
	if err := profile.Validate(prof); err != nil {
		return nil, nil, err
	}

	if s.generator == nil {
		return nil, nil, ErrGenerationUnavailable
	}

	candidate, err := s.generator.Generate(ctx, prof)
	if err != nil {
		return nil, nil, fmt.Errorf("generate plan: %w", err)
	}

	Normalize(candidate)

	warnings, err := s.checker.Check(candidate, prof)
	if err != nil {
		return nil, nil, fmt.Errorf("check plan: %w", err)
	}
	for _, warning := range warnings {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "plan anomaly", slog.String("warning", warning))
	}

	weekStart := mondayOf(s.now())
	if err := s.repo.Set(ctx, weekStart, candidate, warnings); err != nil {
		return nil, nil, fmt.Errorf("store plan: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "plan delivered",
		slog.String("week_start", weekStart.Format(time.DateOnly)),
		slog.Int("warnings", len(warnings)))

	return candidate, warnings, nil
}

// mondayOf returns midnight on the Monday of t's week.
func mondayOf(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -daysSinceMonday).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
