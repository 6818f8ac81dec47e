package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/storage/fixture"
)

func TestValidate_Fixture(t *testing.T) {
	teams := fixture.Teams()
	assert.NoError(t, Validate(teams, fixture.Matches()))
	for _, team := range teams {
		assert.Equal(t, team.MatchesPlayed, team.Wins+team.Losses, team.HostelCode)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		teams   func([]domain.Team) []domain.Team
		matches func([]domain.Match) []domain.Match
		wantErr string
	}{
		{
			name: "wins and losses do not add up",
			teams: func(tt []domain.Team) []domain.Team {
				tt[1].Wins = 4
				return tt
			},
			wantErr: "team H7: wins 4 + losses 2 != matches played 5",
		},
		{
			name: "duplicate final position",
			teams: func(tt []domain.Team) []domain.Team {
				tt[2].FinalPosition = 2
				return tt
			},
			wantErr: "duplicate final position 2 (H10B)",
		},
		{
			name: "gap in final positions",
			teams: func(tt []domain.Team) []domain.Team {
				tt[5].FinalPosition = 9
				return tt
			},
			wantErr: "final position 6 is not held by any team",
		},
		{
			name: "missing champion",
			teams: func(tt []domain.Team) []domain.Team {
				tt[0].FinalPosition = 7
				return tt
			},
			wantErr: "no unique champion",
		},
		{
			name: "duplicate hostel code",
			teams: func(tt []domain.Team) []domain.Team {
				tt[3].HostelCode = "H7"
				return tt
			},
			wantErr: "duplicate hostel code H7",
		},
		{
			name: "hostel codes differ only in case",
			teams: func(tt []domain.Team) []domain.Team {
				tt[4].HostelCode = "h10a"
				return tt
			},
			wantErr: "duplicate hostel code h10a",
		},
		{
			name: "unknown hostel code",
			matches: func(mm []domain.Match) []domain.Match {
				mm[0].Team2Code = "H99"
				return mm
			},
			wantErr: `match 1 references unknown hostel code "H99"`,
		},
		{
			name: "draw",
			matches: func(mm []domain.Match) []domain.Match {
				mm[3].Score2 = 3
				return mm
			},
			wantErr: "match 4 is a draw 3-3",
		},
		{
			name: "knockout match with pool",
			matches: func(mm []domain.Match) []domain.Match {
				mm[9].Pool = "A"
				return mm
			},
			wantErr: "Final match 10 carries pool A",
		},
		{
			name: "pool match across pools",
			matches: func(mm []domain.Match) []domain.Match {
				mm[0].Team2Code = "H5"
				return mm
			},
			wantErr: "match 1 in pool A involves H5 from pool B",
		},
		{
			name: "duplicate match id",
			matches: func(mm []domain.Match) []domain.Match {
				mm[1].ID = 1
				return mm
			},
			wantErr: "duplicate match id 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams, matches := fixture.Teams(), fixture.Matches()
			if tt.teams != nil {
				teams = tt.teams(teams)
			}
			if tt.matches != nil {
				matches = tt.matches(matches)
			}
			err := Validate(teams, matches)
			assert.ErrorIs(t, err, ErrIntegrity)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	assert.NoError(t, Validate(nil, nil))
}
