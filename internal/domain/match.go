package domain

import "time"

// Stage is the round type of a match. The set is open-ended.
type Stage string

const (
	StagePool       Stage = "Pool"
	StageSemiFinal  Stage = "Semi-Final"
	StageThirdPlace Stage = "3rd Place"
	StageFinal      Stage = "Final"
)

const DateLayout = "2006-01-02"

type Match struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	Stage     Stage     `json:"stage"`
	Team1Code string    `json:"team1Code"`
	Team2Code string    `json:"team2Code"`
	Score1    int       `json:"score1"`
	Score2    int       `json:"score2"`
	// Pool is empty unless Stage is StagePool.
	Pool string `json:"pool,omitempty"`
}

// Margin is the absolute game-score difference.
func (m Match) Margin() int {
	if m.Score1 > m.Score2 {
		return m.Score1 - m.Score2
	}
	return m.Score2 - m.Score1
}

// Games is the total number of games played in the match.
func (m Match) Games() int {
	return m.Score1 + m.Score2
}

func (m Match) Involves(code string) bool {
	return m.Team1Code == code || m.Team2Code == code
}

// Winner returns the hostel code of the side with the higher score, or an
// empty string for a drawn record.
func (m Match) Winner() string {
	switch {
	case m.Score1 > m.Score2:
		return m.Team1Code
	case m.Score2 > m.Score1:
		return m.Team2Code
	}
	return ""
}
