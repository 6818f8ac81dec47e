// Package fixture holds the Inter-Hostel Badminton Tournament 2025 results
// compiled into the binary.
package fixture

import (
	"context"
	"time"

	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/storage"
)

var teams = []domain.Team{
	{ID: 1, HostelCode: "H10A", CaptainName: "Vaibhav Kataria", Pool: "B", FinalPosition: 1, MatchesPlayed: 5, Wins: 5, Losses: 0, GamesWon: 14, GamesLost: 3},
	{ID: 2, HostelCode: "H7", CaptainName: "Dev Dixit", Pool: "A", FinalPosition: 2, MatchesPlayed: 5, Wins: 3, Losses: 2, GamesWon: 10, GamesLost: 4},
	{ID: 3, HostelCode: "H10B", CaptainName: "Hitesh", Pool: "A", FinalPosition: 3, MatchesPlayed: 5, Wins: 3, Losses: 2, GamesWon: 10, GamesLost: 6},
	{ID: 4, HostelCode: "H8", CaptainName: "Shivpriya", Pool: "B", FinalPosition: 4, MatchesPlayed: 4, Wins: 1, Losses: 3, GamesWon: 5, GamesLost: 10},
	{ID: 5, HostelCode: "H1", CaptainName: "Ambaram Patel", Pool: "A", FinalPosition: 5, MatchesPlayed: 2, Wins: 1, Losses: 1, GamesWon: 3, GamesLost: 5},
	{ID: 6, HostelCode: "H5", CaptainName: "Khwnasat Nazary", Pool: "B", FinalPosition: 6, MatchesPlayed: 2, Wins: 0, Losses: 2, GamesWon: 1, GamesLost: 6},
}

var matches = []domain.Match{
	{ID: 1, Date: day(11), Stage: domain.StagePool, Team1Code: "H7", Team2Code: "H1", Score1: 3, Score2: 0, Pool: "A"},
	{ID: 2, Date: day(11), Stage: domain.StagePool, Team1Code: "H10A", Team2Code: "H8", Score1: 3, Score2: 1, Pool: "B"},
	{ID: 3, Date: day(11), Stage: domain.StagePool, Team1Code: "H10A", Team2Code: "H5", Score1: 3, Score2: 0, Pool: "B"},
	{ID: 4, Date: day(12), Stage: domain.StagePool, Team1Code: "H8", Team2Code: "H5", Score1: 3, Score2: 1, Pool: "B"},
	{ID: 5, Date: day(12), Stage: domain.StagePool, Team1Code: "H1", Team2Code: "H10B", Score1: 3, Score2: 2, Pool: "A"},
	{ID: 6, Date: day(13), Stage: domain.StagePool, Team1Code: "H10B", Team2Code: "H7", Score1: 3, Score2: 1, Pool: "A"},
	{ID: 7, Date: day(13), Stage: domain.StageSemiFinal, Team1Code: "H7", Team2Code: "H8", Score1: 3, Score2: 0},
	{ID: 8, Date: day(13), Stage: domain.StageSemiFinal, Team1Code: "H10A", Team2Code: "H10B", Score1: 3, Score2: 0},
	{ID: 9, Date: day(14), Stage: domain.StageThirdPlace, Team1Code: "H10B", Team2Code: "H8", Score1: 3, Score2: 0},
	{ID: 10, Date: day(14), Stage: domain.StageFinal, Team1Code: "H7", Team2Code: "H10A", Score1: 2, Score2: 3},
}

func day(d int) time.Time {
	return time.Date(2025, time.April, d, 0, 0, 0, 0, time.UTC)
}

// Teams returns a fresh copy of the tournament's teams.
func Teams() []domain.Team {
	out := make([]domain.Team, len(teams))
	copy(out, teams)
	return out
}

// Matches returns a fresh copy of the tournament's matches in play order.
func Matches() []domain.Match {
	out := make([]domain.Match, len(matches))
	copy(out, matches)
	return out
}

type Storage struct{}

var _ storage.TeamStorage = Storage{}
var _ storage.MatchStorage = Storage{}

func New() Storage {
	return Storage{}
}

func (Storage) ListTeams(context.Context) ([]domain.Team, error) {
	return Teams(), nil
}

func (Storage) ListMatches(context.Context) ([]domain.Match, error) {
	return Matches(), nil
}
