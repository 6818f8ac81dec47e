// Package export writes the analysis tables as CSV.
package export

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goserg/hostelcup/internal/domain"
)

const (
	PerformanceFile = "team_performance_summary.csv"
	MatchesFile     = "match_details.csv"
	StatisticsFile  = "tournament_statistics.csv"
)

var (
	performanceHeader = []string{"hostel", "matches_played", "wins", "losses", "win_rate_pct", "games_won", "games_lost", "game_diff", "final_position"}
	matchesHeader     = []string{"match_id", "match_date", "stage", "pool", "team1_code", "team2_code", "team1_score", "team2_score", "winner_code", "score_margin"}
	statisticsHeader  = []string{"Category", "Metric", "Value"}
)

func WritePerformance(w io.Writer, perf []domain.Performance) error {
	records := make([][]string, 0, len(perf)+1)
	records = append(records, performanceHeader)
	for _, p := range perf {
		records = append(records, []string{
			p.HostelCode,
			strconv.Itoa(p.MatchesPlayed),
			strconv.Itoa(p.Wins),
			strconv.Itoa(p.Losses),
			p.WinRate.Format(0),
			strconv.Itoa(p.GamesWon),
			strconv.Itoa(p.GamesLost),
			strconv.Itoa(p.GameDifferential),
			strconv.Itoa(p.FinalPosition),
		})
	}
	return csv.NewWriter(w).WriteAll(records)
}

func WriteMatches(w io.Writer, details []domain.MatchDetail) error {
	records := make([][]string, 0, len(details)+1)
	records = append(records, matchesHeader)
	for _, d := range details {
		records = append(records, []string{
			strconv.Itoa(d.MatchID),
			d.Date.Format(domain.DateLayout),
			string(d.Stage),
			d.Pool,
			d.Team1Code,
			d.Team2Code,
			strconv.Itoa(d.Score1),
			strconv.Itoa(d.Score2),
			d.WinnerCode,
			strconv.Itoa(d.Margin),
		})
	}
	return csv.NewWriter(w).WriteAll(records)
}

func WriteStatistics(w io.Writer, rows []domain.StatisticRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, statisticsHeader)
	for _, r := range rows {
		records = append(records, []string{r.Category, r.Metric, r.Value})
	}
	return csv.NewWriter(w).WriteAll(records)
}

// WriteFiles writes all three tables of the report into dir.
func WriteFiles(dir string, report domain.Report) error {
	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{name: PerformanceFile, write: func(w io.Writer) error { return WritePerformance(w, report.Performance) }},
		{name: MatchesFile, write: func(w io.Writer) error { return WriteMatches(w, report.Matches) }},
		{name: StatisticsFile, write: func(w io.Writer) error { return WriteStatistics(w, report.Statistics) }},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return errors.Join(write(file), file.Close())
}
