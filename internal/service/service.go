package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/goserg/hostelcup/internal/cache/mem"
	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/normalize"
	"github.com/goserg/hostelcup/internal/rating"
	"github.com/goserg/hostelcup/internal/stats"
	"github.com/goserg/hostelcup/internal/storage"
)

var ErrNotLoaded = errors.New("tournament data is not loaded")

// TournamentService serves the statistics of one tournament. The data is
// read once by Load and never changes afterwards, so every method is safe for
// concurrent use once Load has returned. Returned slices are shared and must
// not be modified.
type TournamentService struct {
	teamStorage  storage.TeamStorage
	matchStorage storage.MatchStorage
	cache        *mem.Cache
	log          *logrus.Entry

	once    sync.Once
	loadErr error
	loaded  atomic.Bool
	teams   []domain.Team
	matches []domain.Match
	ratings []domain.TeamRating
}

func New(teamStorage storage.TeamStorage, matchStorage storage.MatchStorage, log *logrus.Entry) *TournamentService {
	return &TournamentService{
		teamStorage:  teamStorage,
		matchStorage: matchStorage,
		cache:        mem.New(),
		log:          log,
	}
}

// Load reads and validates the tournament. Only the first call does any
// work; later calls return its result.
func (s *TournamentService) Load(ctx context.Context) error {
	s.once.Do(func() {
		s.loadErr = s.load(ctx)
	})
	return s.loadErr
}

func (s *TournamentService) load(ctx context.Context) error {
	teams, err := s.teamStorage.ListTeams(ctx)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}
	matches, err := s.matchStorage.ListMatches(ctx)
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if err := stats.Validate(teams, matches); err != nil {
		return fmt.Errorf("validate tournament: %w", err)
	}
	report, err := stats.BuildReport(teams, matches)
	if err != nil {
		return err
	}
	s.teams = teams
	s.matches = matches
	s.ratings = rating.Compute(teams, matches)
	s.cache.Update(report)
	s.loaded.Store(true)
	s.log.WithFields(logrus.Fields{
		"teams":    len(teams),
		"matches":  len(matches),
		"champion": report.Summary.Champion,
	}).Info("tournament loaded")
	return nil
}

// Report returns every derived view. A cache miss recomputes the report
// from the loaded records.
func (s *TournamentService) Report() (domain.Report, error) {
	if !s.loaded.Load() {
		return domain.Report{}, ErrNotLoaded
	}
	if report, ok := s.cache.Report(); ok {
		return report, nil
	}
	s.log.Debug("report cache miss")
	report, err := stats.BuildReport(s.teams, s.matches)
	if err != nil {
		return domain.Report{}, err
	}
	s.cache.Update(report)
	return report, nil
}

func (s *TournamentService) Summary() (domain.Summary, error) {
	report, err := s.Report()
	if err != nil {
		return domain.Summary{}, err
	}
	return report.Summary, nil
}

func (s *TournamentService) Standings() ([]domain.Standing, error) {
	report, err := s.Report()
	if err != nil {
		return nil, err
	}
	return report.Standings, nil
}

// Team looks a team up by hostel code, ignoring case and surrounding spaces.
func (s *TournamentService) Team(code string) (domain.TeamDetail, error) {
	if _, err := s.Report(); err != nil {
		return domain.TeamDetail{}, err
	}
	if detail, ok := s.cache.GetTeam(code); ok {
		return detail, nil
	}
	return domain.TeamDetail{}, fmt.Errorf("%w: %q", stats.ErrTeamNotFound, normalize.Code(code))
}

func (s *TournamentService) TeamHistory(code string) (domain.TeamMatchHistory, error) {
	detail, err := s.Team(code)
	if err != nil {
		return domain.TeamMatchHistory{}, err
	}
	return detail.History, nil
}

func (s *TournamentService) WinRate(code string) (domain.NullFloat, error) {
	detail, err := s.Team(code)
	if err != nil {
		return domain.NullFloat{}, err
	}
	return detail.Standing.WinRate, nil
}

func (s *TournamentService) Ratings() ([]domain.TeamRating, error) {
	if !s.loaded.Load() {
		return nil, ErrNotLoaded
	}
	return s.ratings, nil
}
