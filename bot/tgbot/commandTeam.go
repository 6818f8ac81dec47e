package tgbot

import (
	"errors"
	"strings"

	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/service"
)

type TeamCommand struct {
	service *service.TournamentService
}

func (c *TeamCommand) Run(args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) < 1 {
		return "", errors.New(`put the hostel code in the same message, e.g. "/team H7"`)
	}
	detail, err := c.service.Team(fields[0])
	if err != nil {
		return "", err
	}
	return printTeam(detail), nil
}

func (c *TeamCommand) Help() string {
	return "Team card and match history. Usage: /team and a hostel code"
}

func printTeam(detail domain.TeamDetail) string {
	var b strings.Builder
	b.WriteString(printStanding(detail.Standing))
	b.WriteString("\nCaptain: ")
	b.WriteString(detail.Standing.Team.CaptainName)
	b.WriteString("\nPool: ")
	b.WriteString(detail.Standing.Team.Pool)
	if len(detail.History.Entries) == 0 {
		b.WriteString("\nNo matches recorded")
		return b.String()
	}
	for _, e := range detail.History.Entries {
		b.WriteString("\n")
		b.WriteString(e.Date.Format(domain.DateLayout))
		b.WriteString(" ")
		b.WriteString(string(e.Stage))
		b.WriteString(" vs ")
		b.WriteString(e.OpponentCode)
		b.WriteString(" ")
		b.WriteString(string(e.Result))
		b.WriteString(" ")
		b.WriteString(e.ScoreDisplay)
	}
	return b.String()
}
