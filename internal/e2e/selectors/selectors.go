//go:build e2e

package sel

const (
	Logo = ".brand-logo"

	SummaryTeams    = "#summary-teams"
	SummaryMatches  = "#summary-matches"
	SummaryChampion = "#summary-champion"
	SummaryAvg      = "#summary-avg"

	StandingsRow     = "#standings-row"
	StandingsRowCode = "#standings-row-code"
	StandingsRowLink = StandingsRowCode + " a"

	TeamCode         = "#team-code"
	TeamRecord       = "#team-record"
	TeamWinRate      = "#team-win-rate"
	HistoryRow       = "#history-row"
	HistoryRowResult = "#history-row-result"

	ErrorStatus = "#error-status"
)
