package stats

import (
	"fmt"
	"strconv"

	"github.com/goserg/hostelcup/internal/domain"
)

// TeamMatchHistory lists the matches of team in input order, each seen from
// the team's side: own score first, then the opponent's.
// A team without matches gets an empty, non-nil list.
func TeamMatchHistory(team domain.Team, matches []domain.Match) domain.TeamMatchHistory {
	history := domain.TeamMatchHistory{
		HostelCode: team.HostelCode,
		Entries:    make([]domain.HistoryEntry, 0),
	}
	for _, m := range matches {
		if !m.Involves(team.HostelCode) {
			continue
		}
		own, other, opponent := m.Score1, m.Score2, m.Team2Code
		if m.Team1Code != team.HostelCode {
			own, other, opponent = m.Score2, m.Score1, m.Team1Code
		}
		result := domain.ResultLoss
		if own > other {
			result = domain.ResultWin
		}
		history.Entries = append(history.Entries, domain.HistoryEntry{
			MatchID:       m.ID,
			Date:          m.Date,
			OpponentCode:  opponent,
			Result:        result,
			ScoreDisplay:  strconv.Itoa(own) + "-" + strconv.Itoa(other),
			Stage:         m.Stage,
			OwnScore:      own,
			OpponentScore: other,
		})
	}
	return history
}

// TeamMatchHistoryByCode resolves code against teams first and fails with
// ErrTeamNotFound when no team carries it.
func TeamMatchHistoryByCode(teams []domain.Team, matches []domain.Match, code string) (domain.TeamMatchHistory, error) {
	team, err := FindTeam(teams, code)
	if err != nil {
		return domain.TeamMatchHistory{}, err
	}
	return TeamMatchHistory(team, matches), nil
}

func FindTeam(teams []domain.Team, code string) (domain.Team, error) {
	for _, t := range teams {
		if t.HostelCode == code {
			return t, nil
		}
	}
	return domain.Team{}, fmt.Errorf("%w: %q", ErrTeamNotFound, code)
}

// RequireMatches is for callers that treat an empty history as an error.
func RequireMatches(history domain.TeamMatchHistory) error {
	if len(history.Entries) == 0 {
		return fmt.Errorf("%w: %s", ErrNoMatches, history.HostelCode)
	}
	return nil
}
