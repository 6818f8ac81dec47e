package sqlite

import (
	"fmt"
	"time"

	"github.com/goserg/hostelcup/gen/model"
	"github.com/goserg/hostelcup/internal/domain"
)

func convertTeamsToDomain(teams []model.Teams) []domain.Team {
	converted := make([]domain.Team, 0, len(teams))
	for _, team := range teams {
		converted = append(converted, domain.Team{
			ID:            int(team.ID),
			HostelCode:    team.HostelCode,
			CaptainName:   team.CaptainName,
			Pool:          team.Pool,
			FinalPosition: int(team.FinalPosition),
			MatchesPlayed: int(team.MatchesPlayed),
			Wins:          int(team.Wins),
			Losses:        int(team.Losses),
			GamesWon:      int(team.GamesWon),
			GamesLost:     int(team.GamesLost),
		})
	}
	return converted
}

func convertTeamsFromDomain(teams []domain.Team) []model.Teams {
	converted := make([]model.Teams, 0, len(teams))
	for _, team := range teams {
		converted = append(converted, model.Teams{
			ID:            int32(team.ID),
			HostelCode:    team.HostelCode,
			CaptainName:   team.CaptainName,
			Pool:          team.Pool,
			FinalPosition: int32(team.FinalPosition),
			MatchesPlayed: int32(team.MatchesPlayed),
			Wins:          int32(team.Wins),
			Losses:        int32(team.Losses),
			GamesWon:      int32(team.GamesWon),
			GamesLost:     int32(team.GamesLost),
		})
	}
	return converted
}

func convertMatchesToDomain(matches []model.Matches) ([]domain.Match, error) {
	converted := make([]domain.Match, 0, len(matches))
	for _, match := range matches {
		date, err := time.Parse(domain.DateLayout, match.PlayedOn)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", match.ID, err)
		}
		var pool string
		if match.Pool != nil {
			pool = *match.Pool
		}
		converted = append(converted, domain.Match{
			ID:        int(match.ID),
			Date:      date,
			Stage:     domain.Stage(match.Stage),
			Team1Code: match.Team1Code,
			Team2Code: match.Team2Code,
			Score1:    int(match.Score1),
			Score2:    int(match.Score2),
			Pool:      pool,
		})
	}
	return converted, nil
}

func convertMatchesFromDomain(matches []domain.Match) []model.Matches {
	converted := make([]model.Matches, 0, len(matches))
	for _, match := range matches {
		var pool *string
		if match.Pool != "" {
			p := match.Pool
			pool = &p
		}
		converted = append(converted, model.Matches{
			ID:        int32(match.ID),
			PlayedOn:  match.Date.Format(domain.DateLayout),
			Stage:     string(match.Stage),
			Team1Code: match.Team1Code,
			Team2Code: match.Team2Code,
			Score1:    int32(match.Score1),
			Score2:    int32(match.Score2),
			Pool:      pool,
		})
	}
	return converted
}
