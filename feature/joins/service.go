package joins

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

const (
	// DefaultLimit is used when no positive limit is requested.
	DefaultLimit = 50
	// MaxLimit caps the number of rows a single request returns.
	MaxLimit = 500
)

// ErrNoDatabase is returned when the join log has no database.
var ErrNoDatabase = errors.New("join log database is not configured")

// Service reads the join log.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a join log service. repo may be nil.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the latest joins of a guild.
func (s *Service) List(ctx context.Context, guildID string, limit int) ([]JoinRecord, error) {
	if s.repo == nil {
		return nil, ErrNoDatabase
	}
	return s.repo.ListByGuild(ctx, guildID, clampLimit(limit))
}

// Leaderboard returns the inviters of a guild ranked by joins.
func (s *Service) Leaderboard(ctx context.Context, guildID string, limit int) ([]LeaderboardEntry, error) {
	if s.repo == nil {
		return nil, ErrNoDatabase
	}
	return s.repo.Leaderboard(ctx, guildID, clampLimit(limit))
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
