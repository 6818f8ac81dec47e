package tgbot

import (
	"strconv"
	"strings"

	"github.com/goserg/hostelcup/internal/service"
)

type SummaryCommand struct {
	service *service.TournamentService
}

func (c *SummaryCommand) Run(string) (string, error) {
	summary, err := c.service.Summary()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("Teams: ")
	b.WriteString(strconv.Itoa(summary.TotalTeams))
	b.WriteString("\nMatches: ")
	b.WriteString(strconv.Itoa(summary.TotalMatches))
	b.WriteString("\nClose matches: ")
	b.WriteString(strconv.Itoa(summary.CloseMatches))
	b.WriteString("\nAvg games per match: ")
	b.WriteString(summary.AvgGamesPerMatch.Format(1))
	b.WriteString("\nChampion: 🏆 ")
	b.WriteString(summary.Champion)
	return b.String(), nil
}

func (c *SummaryCommand) Help() string {
	return "Tournament overview: teams, matches, close matches and the champion"
}
