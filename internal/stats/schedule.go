package stats

import (
	"sort"
	"time"

	"github.com/goserg/hostelcup/internal/domain"
)

// DailyMatchCounts counts matches per calendar day, earliest day first.
func DailyMatchCounts(matches []domain.Match) []domain.DailyCount {
	index := make(map[string]int)
	var days []domain.DailyCount
	for _, m := range matches {
		key := m.Date.Format(domain.DateLayout)
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			y, mo, d := m.Date.Date()
			days = append(days, domain.DailyCount{Date: time.Date(y, mo, d, 0, 0, 0, 0, m.Date.Location())})
		}
		days[i].Matches++
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

// ScoreMarginDistribution counts matches per game-score margin, smallest
// margin first.
func ScoreMarginDistribution(matches []domain.Match) []domain.MarginCount {
	counts := make(map[int]int)
	for _, m := range matches {
		counts[m.Margin()]++
	}
	dist := make([]domain.MarginCount, 0, len(counts))
	for margin, n := range counts {
		dist = append(dist, domain.MarginCount{Margin: margin, Matches: n})
	}
	sort.Slice(dist, func(i, j int) bool {
		return dist[i].Margin < dist[j].Margin
	})
	return dist
}

// MostCommonMargin is the modal score margin. The smallest margin wins a tie.
func MostCommonMargin(matches []domain.Match) (margin int, ok bool) {
	best := 0
	for _, c := range ScoreMarginDistribution(matches) {
		if c.Matches > best {
			margin, best = c.Margin, c.Matches
		}
	}
	return margin, best > 0
}

// PerformanceFromMatches recomputes every team's record from the match
// results, ordered by final position.
func PerformanceFromMatches(teams []domain.Team, matches []domain.Match) []domain.Performance {
	sorted := byPosition(teams)
	perf := make([]domain.Performance, 0, len(sorted))
	for _, t := range sorted {
		p := domain.Performance{
			HostelCode:    t.HostelCode,
			FinalPosition: t.FinalPosition,
		}
		for _, e := range TeamMatchHistory(t, matches).Entries {
			p.MatchesPlayed++
			if e.Result == domain.ResultWin {
				p.Wins++
			} else {
				p.Losses++
			}
			p.GamesWon += e.OwnScore
			p.GamesLost += e.OpponentScore
		}
		p.GameDifferential = p.GamesWon - p.GamesLost
		p.WinRate = ratio(p.Wins, p.MatchesPlayed, 100, 0)
		perf = append(perf, p)
	}
	return perf
}
