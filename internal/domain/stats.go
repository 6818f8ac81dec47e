package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

const NoData = "n/a"

// NullFloat is a derived figure which is undefined for degenerate input
// (zero matches, zero games). Valid is false in that case.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

func (n NullFloat) Format(places int) string {
	if !n.Valid {
		return NoData
	}
	return strconv.FormatFloat(n.Float64, 'f', places, 64)
}

func (n NullFloat) Percent() string {
	if !n.Valid {
		return NoData
	}
	return n.Format(0) + "%"
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

type Summary struct {
	TotalTeams       int       `json:"totalTeams"`
	TotalMatches     int       `json:"totalMatches"`
	CloseMatches     int       `json:"closeMatches"`
	AvgGamesPerMatch NullFloat `json:"avgGamesPerMatch"`
	Champion         string    `json:"champion"`
}

type TeamSeriesPoint struct {
	HostelCode    string `json:"hostelCode"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	FinalPosition int    `json:"finalPosition"`
}

type GameDifferentialPoint struct {
	HostelCode       string `json:"hostelCode"`
	GameDifferential int    `json:"gameDifferential"`
	FinalPosition    int    `json:"finalPosition"`
}

type MatchTypeCount struct {
	Stage Stage `json:"stage"`
	Count int   `json:"count"`
}

type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
)

type HistoryEntry struct {
	MatchID       int       `json:"matchId"`
	Date          time.Time `json:"date"`
	OpponentCode  string    `json:"opponentCode"`
	Result        Result    `json:"result"`
	ScoreDisplay  string    `json:"scoreDisplay"`
	Stage         Stage     `json:"stage"`
	OwnScore      int       `json:"ownScore"`
	OpponentScore int       `json:"opponentScore"`
}

type TeamMatchHistory struct {
	HostelCode string         `json:"hostelCode"`
	Entries    []HistoryEntry `json:"entries"`
}

type DailyCount struct {
	Date    time.Time `json:"date"`
	Matches int       `json:"matches"`
}

type MarginCount struct {
	Margin  int `json:"margin"`
	Matches int `json:"matches"`
}

type Standing struct {
	Team             Team      `json:"team"`
	WinRate          NullFloat `json:"winRate"`
	GameDifferential int       `json:"gameDifferential"`
}

func (s Standing) Label() string {
	return PositionLabel(s.Team.FinalPosition)
}

type PoolStanding struct {
	Pool  string     `json:"pool"`
	Teams []Standing `json:"teams"`
}

// Performance is a team's record recomputed from match results rather than
// taken from the declared team totals.
type Performance struct {
	HostelCode       string    `json:"hostelCode"`
	FinalPosition    int       `json:"finalPosition"`
	MatchesPlayed    int       `json:"matchesPlayed"`
	Wins             int       `json:"wins"`
	Losses           int       `json:"losses"`
	GamesWon         int       `json:"gamesWon"`
	GamesLost        int       `json:"gamesLost"`
	GameDifferential int       `json:"gameDifferential"`
	WinRate          NullFloat `json:"winRate"`
}

// MatchDetail is one match resolved to its winner and score margin.
type MatchDetail struct {
	MatchID    int       `json:"matchId"`
	Date       time.Time `json:"date"`
	Stage      Stage     `json:"stage"`
	Pool       string    `json:"pool,omitempty"`
	Team1Code  string    `json:"team1Code"`
	Team2Code  string    `json:"team2Code"`
	Score1     int       `json:"score1"`
	Score2     int       `json:"score2"`
	WinnerCode string    `json:"winnerCode"`
	Margin     int       `json:"margin"`
}

type StatisticRow struct {
	Category string `json:"category"`
	Metric   string `json:"metric"`
	Value    string `json:"value"`
}

type Interval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TeamRating is a Glicko-2 rating with its 95% interval, plus the Elo rating
// reached by replaying the matches in order.
type TeamRating struct {
	Rank       int      `json:"rank"`
	HostelCode string   `json:"hostelCode"`
	Rating     float64  `json:"rating"`
	Deviation  float64  `json:"deviation"`
	Volatility float64  `json:"volatility"`
	Interval   Interval `json:"interval"`
	Elo        int      `json:"elo"`
}

// Report holds every derived view of one tournament.
type Report struct {
	Summary              Summary                 `json:"summary"`
	Standings            []Standing              `json:"standings"`
	Pools                []PoolStanding          `json:"pools"`
	WinLoss              []TeamSeriesPoint       `json:"winLoss"`
	GameDifferential     []GameDifferentialPoint `json:"gameDifferential"`
	MatchTypes           []MatchTypeCount        `json:"matchTypes"`
	Daily                []DailyCount            `json:"daily"`
	Margins              []MarginCount           `json:"margins"`
	MostCommonMargin     int                     `json:"mostCommonMargin"`
	BestGameDifferential GameDifferentialPoint   `json:"bestGameDifferential"`
	Performance          []Performance           `json:"performance"`
	Histories            []TeamMatchHistory      `json:"histories"`
	Matches              []MatchDetail           `json:"matches"`
	Statistics           []StatisticRow          `json:"statistics"`
}

type TeamDetail struct {
	Standing Standing         `json:"standing"`
	History  TeamMatchHistory `json:"history"`
}
