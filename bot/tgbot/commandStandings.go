package tgbot

import (
	"fmt"
	"strings"

	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/service"
)

type StandingsCommand struct {
	service *service.TournamentService
}

func (c *StandingsCommand) Run(string) (string, error) {
	standings, err := c.service.Standings()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(standings))
	for _, s := range standings {
		lines = append(lines, printStanding(s))
	}
	return strings.Join(lines, "\n"), nil
}

func (c *StandingsCommand) Help() string {
	return "Final standings with record, game differential and win rate"
}

func printStanding(s domain.Standing) string {
	return fmt.Sprintf("%s %s %d-%d (%+d) %s",
		s.Label(), s.Team.HostelCode, s.Team.Wins, s.Team.Losses, s.GameDifferential, s.WinRate.Percent())
}
