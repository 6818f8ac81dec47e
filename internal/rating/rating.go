// Package rating ranks teams by playing strength derived from match results,
// independent of the bracket that decided the final positions.
package rating

import (
	"math"
	"sort"

	glicko "github.com/zelenin/go-glicko2"

	"github.com/goserg/hostelcup/internal/domain"
)

const (
	initialRating     = 1500
	initialDeviation  = 350
	initialVolatility = 0.06
)

// Compute rates every team from matches. All matches form a single Glicko-2
// rating period; Elo is replayed match by match in input order. Matches that
// reference unknown teams or carry no winner are skipped.
// The result is ordered by Glicko-2 rating, best first; ties keep final
// position order.
func Compute(teams []domain.Team, matches []domain.Match) []domain.TeamRating {
	sorted := make([]domain.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FinalPosition < sorted[j].FinalPosition
	})

	players := make(map[string]*glicko.Player, len(sorted))
	elo := make(map[string]int, len(sorted))
	played := make(map[string]int, len(sorted))
	for _, t := range sorted {
		players[t.HostelCode] = glicko.NewPlayer(glicko.NewRating(initialRating, initialDeviation, initialVolatility))
		elo[t.HostelCode] = initialElo
	}

	period := glicko.NewRatingPeriod()
	for _, m := range matches {
		winner := m.Winner()
		loser := m.Team1Code
		if winner == m.Team1Code {
			loser = m.Team2Code
		}
		w, okW := players[winner]
		l, okL := players[loser]
		if winner == "" || !okW || !okL {
			continue
		}
		period.AddMatch(w, l, glicko.MATCH_RESULT_WIN)

		rw, rl := elo[winner], elo[loser]
		elo[winner] = eloUpdate(rw, rl, kFactor(played[winner], rw), win)
		elo[loser] = eloUpdate(rl, rw, kFactor(played[loser], rl), lose)
		played[winner]++
		played[loser]++
	}
	period.Calculate()

	ratings := make([]domain.TeamRating, 0, len(sorted))
	for _, t := range sorted {
		r := players[t.HostelCode].Rating()
		ratings = append(ratings, domain.TeamRating{
			HostelCode: t.HostelCode,
			Rating:     round(r.R()),
			Deviation:  round(r.Rd()),
			Volatility: r.Sigma(),
			Interval: domain.Interval{
				Min: round(r.R() - 2*r.Rd()),
				Max: round(r.R() + 2*r.Rd()),
			},
			Elo: elo[t.HostelCode],
		})
	}
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].Rating > ratings[j].Rating
	})
	for i := range ratings {
		ratings[i].Rank = i + 1
	}
	return ratings
}

func round(x float64) float64 {
	return math.Round(x*10) / 10
}
