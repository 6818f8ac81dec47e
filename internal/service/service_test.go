package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/stats"
	"github.com/goserg/hostelcup/internal/storage/fixture"
)

type fakeStorage struct {
	teams    []domain.Team
	matches  []domain.Match
	err      error
	listings int
}

func (f *fakeStorage) ListTeams(context.Context) ([]domain.Team, error) {
	f.listings++
	return f.teams, f.err
}

func (f *fakeStorage) ListMatches(context.Context) ([]domain.Match, error) {
	return f.matches, f.err
}

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("name", "service")
}

func newLoaded(t *testing.T) *TournamentService {
	t.Helper()
	s := New(fixture.New(), fixture.New(), testLog())
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestTournamentService_NotLoaded(t *testing.T) {
	s := New(fixture.New(), fixture.New(), testLog())
	_, err := s.Summary()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = s.Team("H7")
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = s.Ratings()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestTournamentService_LoadOnce(t *testing.T) {
	f := &fakeStorage{teams: fixture.Teams(), matches: fixture.Matches()}
	s := New(f, f, testLog())
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, 1, f.listings)
}

func TestTournamentService_ConcurrentLoadAndRead(t *testing.T) {
	s := New(fixture.New(), fixture.New(), testLog())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Load(context.Background()))
		}()
		go func() {
			defer wg.Done()
			if _, err := s.Report(); err != nil {
				assert.ErrorIs(t, err, ErrNotLoaded)
			}
		}()
	}
	wg.Wait()
	summary, err := s.Summary()
	require.NoError(t, err)
	assert.Equal(t, "H10A", summary.Champion)
}

func TestTournamentService_LoadErrors(t *testing.T) {
	broken := fixture.Teams()
	broken[0].Wins = 0
	tests := []struct {
		name      string
		storage   *fakeStorage
		integrity bool
	}{
		{name: "storage failure", storage: &fakeStorage{err: errors.New("disk on fire")}},
		{name: "invariant violated", storage: &fakeStorage{teams: broken, matches: fixture.Matches()}, integrity: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.storage, tt.storage, testLog())
			err := s.Load(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.integrity, errors.Is(err, stats.ErrIntegrity))
			_, err = s.Report()
			assert.ErrorIs(t, err, ErrNotLoaded)
		})
	}
}

func TestTournamentService_CaseCollidingCodes(t *testing.T) {
	teams := []domain.Team{
		{ID: 1, HostelCode: "H1", Pool: "A", FinalPosition: 1, MatchesPlayed: 1, Wins: 1, GamesWon: 3},
		{ID: 2, HostelCode: "h1", Pool: "A", FinalPosition: 2, MatchesPlayed: 1, Losses: 1, GamesLost: 3},
	}
	matches := []domain.Match{
		{ID: 1, Stage: domain.StagePool, Pool: "A", Team1Code: "H1", Team2Code: "h1", Score1: 3},
	}
	f := &fakeStorage{teams: teams, matches: matches}
	s := New(f, f, testLog())
	err := s.Load(context.Background())
	assert.ErrorIs(t, err, stats.ErrIntegrity)
	_, err = s.Team("H1")
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestTournamentService_Summary(t *testing.T) {
	s := newLoaded(t)
	summary, err := s.Summary()
	require.NoError(t, err)
	assert.Equal(t, 6, summary.TotalTeams)
	assert.Equal(t, 10, summary.TotalMatches)
	assert.Equal(t, 2, summary.CloseMatches)
	assert.Equal(t, "H10A", summary.Champion)
}

func TestTournamentService_Team(t *testing.T) {
	s := newLoaded(t)

	detail, err := s.Team(" h7")
	require.NoError(t, err)
	assert.Equal(t, "H7", detail.Standing.Team.HostelCode)
	assert.Len(t, detail.History.Entries, 4)

	rate, err := s.WinRate("H1")
	require.NoError(t, err)
	assert.Equal(t, "50%", rate.Percent())

	history, err := s.TeamHistory("H10A")
	require.NoError(t, err)
	assert.Len(t, history.Entries, 4)

	_, err = s.Team("H99")
	assert.ErrorIs(t, err, stats.ErrTeamNotFound)
	_, err = s.TeamHistory("H99")
	assert.ErrorIs(t, err, stats.ErrTeamNotFound)
	_, err = s.WinRate("H99")
	assert.ErrorIs(t, err, stats.ErrTeamNotFound)
}

func TestTournamentService_CacheDoesNotChangeOutput(t *testing.T) {
	s := newLoaded(t)
	cached, err := s.Report()
	require.NoError(t, err)

	s.cache.Invalidate()
	recomputed, err := s.Report()
	require.NoError(t, err)
	assert.Equal(t, cached, recomputed)

	direct, err := stats.BuildReport(fixture.Teams(), fixture.Matches())
	require.NoError(t, err)
	assert.Equal(t, direct, recomputed)
}

func TestTournamentService_Ratings(t *testing.T) {
	s := newLoaded(t)
	ratings, err := s.Ratings()
	require.NoError(t, err)
	require.Len(t, ratings, 6)
	assert.Equal(t, 1, ratings[0].Rank)
}
