// Package stats turns raw team and match records into the aggregate figures
// and chart series shown on the dashboard.
//
// Every function is pure: inputs are never mutated and the same input always
// yields the same output.
package stats

import (
	"fmt"
	"math"

	"github.com/goserg/hostelcup/internal/domain"
)

// closeMargin is the largest game-score margin of a close match.
const closeMargin = 1

// Summary computes the headline counters of the tournament.
// The average is left invalid when there are no matches; the champion must
// be the one team holding final position 1, anything else is ErrNoChampion.
func Summary(teams []domain.Team, matches []domain.Match) (domain.Summary, error) {
	champion, err := Champion(teams)
	if err != nil {
		return domain.Summary{}, err
	}
	var closeMatches, games int
	for _, m := range matches {
		if m.Margin() <= closeMargin {
			closeMatches++
		}
		games += m.Games()
	}
	return domain.Summary{
		TotalTeams:       len(teams),
		TotalMatches:     len(matches),
		CloseMatches:     closeMatches,
		AvgGamesPerMatch: ratio(games, len(matches), 1, 1),
		Champion:         champion.HostelCode,
	}, nil
}

func Champion(teams []domain.Team) (domain.Team, error) {
	var (
		champion domain.Team
		found    int
	)
	for _, t := range teams {
		if t.FinalPosition == 1 {
			champion = t
			found++
		}
	}
	if found != 1 {
		return domain.Team{}, fmt.Errorf("%w: %d teams hold final position 1", ErrNoChampion, found)
	}
	return champion, nil
}

// WinRate is wins / matches played as a percentage rounded to a whole number.
// A team that played no matches has no rate.
func WinRate(team domain.Team) domain.NullFloat {
	return ratio(team.Wins, team.MatchesPlayed, 100, 0)
}

// ratio returns num*scale/den rounded half away from zero to the given
// number of decimal places, or an invalid value when den is zero.
func ratio(num, den int, scale float64, places int) domain.NullFloat {
	if den == 0 {
		return domain.NullFloat{}
	}
	return domain.NullFloat{
		Float64: round(float64(num)*scale/float64(den), places),
		Valid:   true,
	}
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
