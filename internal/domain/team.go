package domain

import "strconv"

type Team struct {
	ID            int    `json:"id"`
	HostelCode    string `json:"hostelCode"`
	CaptainName   string `json:"captainName"`
	Pool          string `json:"pool"`
	FinalPosition int    `json:"finalPosition"`
	MatchesPlayed int    `json:"matchesPlayed"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	GamesWon      int    `json:"gamesWon"`
	GamesLost     int    `json:"gamesLost"`
}

// GameDifferential is games won minus games lost. May be negative.
func (t Team) GameDifferential() int {
	return t.GamesWon - t.GamesLost
}

// PositionLabel renders a final position the way the standings list shows it.
func PositionLabel(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return "#" + strconv.Itoa(position)
}
