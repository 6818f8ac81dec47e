package stats

import (
	"sort"

	"github.com/goserg/hostelcup/internal/domain"
)

// byPosition returns a copy of teams stably sorted by final position.
func byPosition(teams []domain.Team) []domain.Team {
	sorted := make([]domain.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FinalPosition < sorted[j].FinalPosition
	})
	return sorted
}

func WinLossSeries(teams []domain.Team) []domain.TeamSeriesPoint {
	sorted := byPosition(teams)
	series := make([]domain.TeamSeriesPoint, 0, len(sorted))
	for _, t := range sorted {
		series = append(series, domain.TeamSeriesPoint{
			HostelCode:    t.HostelCode,
			Wins:          t.Wins,
			Losses:        t.Losses,
			FinalPosition: t.FinalPosition,
		})
	}
	return series
}

func GameDifferentialSeries(teams []domain.Team) []domain.GameDifferentialPoint {
	sorted := byPosition(teams)
	series := make([]domain.GameDifferentialPoint, 0, len(sorted))
	for _, t := range sorted {
		series = append(series, domain.GameDifferentialPoint{
			HostelCode:       t.HostelCode,
			GameDifferential: t.GameDifferential(),
			FinalPosition:    t.FinalPosition,
		})
	}
	return series
}

// BestGameDifferential returns the team with the highest game differential.
// On a tie the better final position wins. ok is false for no teams.
func BestGameDifferential(teams []domain.Team) (best domain.GameDifferentialPoint, ok bool) {
	for i, p := range GameDifferentialSeries(teams) {
		if i == 0 || p.GameDifferential > best.GameDifferential {
			best = p
		}
	}
	return best, len(teams) > 0
}

// MatchTypeDistribution counts matches per stage. Stages appear in the order
// of their first occurrence in matches.
func MatchTypeDistribution(matches []domain.Match) []domain.MatchTypeCount {
	index := make(map[domain.Stage]int)
	var counts []domain.MatchTypeCount
	for _, m := range matches {
		i, ok := index[m.Stage]
		if !ok {
			i = len(counts)
			index[m.Stage] = i
			counts = append(counts, domain.MatchTypeCount{Stage: m.Stage})
		}
		counts[i].Count++
	}
	return counts
}

func Standings(teams []domain.Team) []domain.Standing {
	sorted := byPosition(teams)
	standings := make([]domain.Standing, 0, len(sorted))
	for _, t := range sorted {
		standings = append(standings, domain.Standing{
			Team:             t,
			WinRate:          WinRate(t),
			GameDifferential: t.GameDifferential(),
		})
	}
	return standings
}

// PoolStandings groups the standings by pool. Pools are ordered by label,
// teams inside a pool by final position.
func PoolStandings(teams []domain.Team) []domain.PoolStanding {
	index := make(map[string]int)
	var pools []domain.PoolStanding
	for _, s := range Standings(teams) {
		i, ok := index[s.Team.Pool]
		if !ok {
			i = len(pools)
			index[s.Team.Pool] = i
			pools = append(pools, domain.PoolStanding{Pool: s.Team.Pool})
		}
		pools[i].Teams = append(pools[i].Teams, s)
	}
	sort.SliceStable(pools, func(i, j int) bool {
		return pools[i].Pool < pools[j].Pool
	})
	return pools
}
