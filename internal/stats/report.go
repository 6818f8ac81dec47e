package stats

import "github.com/goserg/hostelcup/internal/domain"

// BuildReport computes every derived view in one pass over the inputs.
func BuildReport(teams []domain.Team, matches []domain.Match) (domain.Report, error) {
	summary, err := Summary(teams, matches)
	if err != nil {
		return domain.Report{}, err
	}
	sorted := byPosition(teams)
	histories := make([]domain.TeamMatchHistory, 0, len(sorted))
	for _, t := range sorted {
		histories = append(histories, TeamMatchHistory(t, matches))
	}
	margin, _ := MostCommonMargin(matches)
	best, _ := BestGameDifferential(teams)
	report := domain.Report{
		Summary:              summary,
		Standings:            Standings(teams),
		Pools:                PoolStandings(teams),
		WinLoss:              WinLossSeries(teams),
		GameDifferential:     GameDifferentialSeries(teams),
		MatchTypes:           MatchTypeDistribution(matches),
		Daily:                DailyMatchCounts(matches),
		Margins:              ScoreMarginDistribution(matches),
		MostCommonMargin:     margin,
		BestGameDifferential: best,
		Performance:          PerformanceFromMatches(teams, matches),
		Histories:            histories,
		Matches:              MatchDetails(matches),
	}
	report.Statistics = StatisticsReport(report)
	return report, nil
}
