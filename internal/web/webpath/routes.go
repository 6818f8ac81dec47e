package webpath

const (
	Home  = "/"
	Teams = "/teams/:code"

	Api                       = "/api"
	ApiSummary                = Api + "/summary"
	ApiStandings              = Api + "/standings"
	ApiPools                  = Api + "/pools"
	ApiSeriesWinLoss          = Api + "/series/win-loss"
	ApiSeriesGameDifferential = Api + "/series/game-differential"
	ApiMatchTypes             = Api + "/match-types"
	ApiDaily                  = Api + "/daily"
	ApiMargins                = Api + "/margins"
	ApiRatings                = Api + "/ratings"
	ApiTeam                   = Api + "/teams/:code"
	ApiExportPerformance      = Api + "/export/performance.csv"
	ApiExportMatches          = Api + "/export/matches.csv"
	ApiExportStatistics       = Api + "/export/statistics.csv"
)

// Team returns the drill-down page of one team.
func Team(code string) string {
	return "/teams/" + code
}

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Api":        Api,
		"ApiSummary": ApiSummary,
		"ApiRatings": ApiRatings,
	}
}
