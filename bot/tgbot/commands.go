package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/hostelcup/internal/service"
)

type Command interface {
	Run(args string) (string, error)
	Help() string
}

type Commands struct {
	list map[string]Command
	// hidden commands work but are left out of /help
	hidden mapset.Set[string]
}

func NewCommands(ts *service.TournamentService) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":      hc,
			"start":     hc,
			"summary":   &SummaryCommand{service: ts},
			"standings": &StandingsCommand{service: ts},
			"team":      &TeamCommand{service: ts},
			"rating":    &RatingCommand{service: ts},
		},
		hidden: mapset.NewSet[string]("start"),
	}
	hc.commands = &uc
	return &uc
}

func (uc *Commands) RunCommand(cmd string, args string) (string, error) {
	command, ok := uc.list[cmd]
	if !ok {
		return "", ErrBadRequest
	}
	return command.Run(args)
}
