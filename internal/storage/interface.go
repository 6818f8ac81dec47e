package storage

import (
	"context"

	"github.com/goserg/hostelcup/internal/domain"
)

type TeamStorage interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

type MatchStorage interface {
	ListMatches(ctx context.Context) ([]domain.Match, error)
}

// Importer replaces the stored tournament with the given records.
type Importer interface {
	Import(ctx context.Context, teams []domain.Team, matches []domain.Match) error
}
