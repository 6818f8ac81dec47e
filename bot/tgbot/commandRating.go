package tgbot

import (
	"strconv"
	"strings"

	"github.com/goserg/hostelcup/internal/service"
)

type RatingCommand struct {
	service *service.TournamentService
}

func (c *RatingCommand) Run(string) (string, error) {
	ratings, err := c.service.Ratings()
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	for i := range ratings {
		buffer.WriteString(strconv.Itoa(ratings[i].Rank))
		buffer.WriteString(". ")
		buffer.WriteString(ratings[i].HostelCode)
		buffer.WriteString(" - ")
		buffer.WriteString(strconv.Itoa(int(ratings[i].Rating)))
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(int(ratings[i].Interval.Min)))
		buffer.WriteString("-")
		buffer.WriteString(strconv.Itoa(int(ratings[i].Interval.Max)))
		buffer.WriteString(") Elo ")
		buffer.WriteString(strconv.Itoa(ratings[i].Elo))
		buffer.WriteString("\n")
	}
	return strings.TrimSuffix(buffer.String(), "\n"), nil
}

func (c *RatingCommand) Help() string {
	return "Glicko-2 rating with its 95% interval, and the Elo rating"
}
