package stats

import (
	"strconv"

	"github.com/goserg/hostelcup/internal/domain"
)

const (
	CategoryTournament = "Tournament Statistics"
	CategoryMatches    = "Match Statistics"
	CategoryTeams      = "Team Performance"
)

// MatchDetails resolves every match to its winner and margin, in input order.
func MatchDetails(matches []domain.Match) []domain.MatchDetail {
	details := make([]domain.MatchDetail, 0, len(matches))
	for _, m := range matches {
		details = append(details, domain.MatchDetail{
			MatchID:    m.ID,
			Date:       m.Date,
			Stage:      m.Stage,
			Pool:       m.Pool,
			Team1Code:  m.Team1Code,
			Team2Code:  m.Team2Code,
			Score1:     m.Score1,
			Score2:     m.Score2,
			WinnerCode: m.Winner(),
			Margin:     m.Margin(),
		})
	}
	return details
}

// StatisticsReport flattens the headline figures of a report into
// category/metric/value rows. Best team and best game difference come from
// the performance recomputed from matches, not from the declared totals.
func StatisticsReport(report domain.Report) []domain.StatisticRow {
	margin := domain.NoData
	if len(report.Margins) > 0 {
		margin = strconv.Itoa(report.MostCommonMargin)
	}
	bestTeam, bestDiff := domain.NoData, domain.NoData
	if len(report.Performance) > 0 {
		bestTeam = report.Performance[0].HostelCode
		diff := report.Performance[0].GameDifferential
		for _, p := range report.Performance[1:] {
			if p.GameDifferential > diff {
				diff = p.GameDifferential
			}
		}
		bestDiff = strconv.Itoa(diff)
	}
	return []domain.StatisticRow{
		{Category: CategoryTournament, Metric: "Total Teams", Value: strconv.Itoa(report.Summary.TotalTeams)},
		{Category: CategoryTournament, Metric: "Total Matches", Value: strconv.Itoa(report.Summary.TotalMatches)},
		{Category: CategoryMatches, Metric: "Most Common Score Margin", Value: margin},
		{Category: CategoryMatches, Metric: "Close Matches (≤1)", Value: strconv.Itoa(report.Summary.CloseMatches)},
		{Category: CategoryTeams, Metric: "Best Team", Value: bestTeam},
		{Category: CategoryTeams, Metric: "Best Game Difference", Value: bestDiff},
	}
}
