package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fitweek/fitweek/internal/sqlite"
)

// Service handles the business logic for fitness profiles.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
}

// NewService creates a new profile service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db),
		logger: logger,
	}
}

// Get retrieves the fitness profile for the authenticated user.
func (s *Service) Get(ctx context.Context) (Profile, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// Save stores the fitness profile for the authenticated user.
func (s *Service) Save(ctx context.Context, p Profile) error {
	if err := s.repo.Set(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
