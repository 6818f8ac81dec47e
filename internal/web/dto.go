package web

import (
	"github.com/goserg/hostelcup/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type summaryResponse struct {
	domain.Summary
	AvgGamesDisplay string `json:"avgGamesDisplay"`
}

type standingResponse struct {
	Position         string           `json:"position"`
	HostelCode       string           `json:"hostelCode"`
	CaptainName      string           `json:"captainName"`
	Pool             string           `json:"pool"`
	MatchesPlayed    int              `json:"matchesPlayed"`
	Wins             int              `json:"wins"`
	Losses           int              `json:"losses"`
	GameDifferential int              `json:"gameDifferential"`
	WinRate          domain.NullFloat `json:"winRate"`
	WinRateDisplay   string           `json:"winRateDisplay"`
}

type poolResponse struct {
	Pool  string             `json:"pool"`
	Teams []standingResponse `json:"teams"`
}

type teamResponse struct {
	standingResponse
	GamesWon  int                   `json:"gamesWon"`
	GamesLost int                   `json:"gamesLost"`
	History   []domain.HistoryEntry `json:"history"`
}

func convertSummary(s domain.Summary) summaryResponse {
	return summaryResponse{
		Summary:         s,
		AvgGamesDisplay: s.AvgGamesPerMatch.Format(1),
	}
}

func convertStanding(s domain.Standing) standingResponse {
	return standingResponse{
		Position:         s.Label(),
		HostelCode:       s.Team.HostelCode,
		CaptainName:      s.Team.CaptainName,
		Pool:             s.Team.Pool,
		MatchesPlayed:    s.Team.MatchesPlayed,
		Wins:             s.Team.Wins,
		Losses:           s.Team.Losses,
		GameDifferential: s.GameDifferential,
		WinRate:          s.WinRate,
		WinRateDisplay:   s.WinRate.Percent(),
	}
}

func convertStandings(standings []domain.Standing) []standingResponse {
	converted := make([]standingResponse, 0, len(standings))
	for _, s := range standings {
		converted = append(converted, convertStanding(s))
	}
	return converted
}

func convertPools(pools []domain.PoolStanding) []poolResponse {
	converted := make([]poolResponse, 0, len(pools))
	for _, p := range pools {
		converted = append(converted, poolResponse{
			Pool:  p.Pool,
			Teams: convertStandings(p.Teams),
		})
	}
	return converted
}

func convertTeam(d domain.TeamDetail) teamResponse {
	return teamResponse{
		standingResponse: convertStanding(d.Standing),
		GamesWon:         d.Standing.Team.GamesWon,
		GamesLost:        d.Standing.Team.GamesLost,
		History:          d.History.Entries,
	}
}
