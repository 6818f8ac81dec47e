package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/storage/fixture"
)

func TestDailyMatchCounts(t *testing.T) {
	got := DailyMatchCounts(fixture.Matches())
	require.Len(t, got, 4)
	want := []int{3, 2, 3, 2}
	for i, d := range got {
		assert.Equal(t, time.Date(2025, time.April, 11+i, 0, 0, 0, 0, time.UTC), d.Date)
		assert.Equal(t, want[i], d.Matches)
	}
}

func TestDailyMatchCounts_SortsDays(t *testing.T) {
	late := time.Date(2025, time.April, 14, 18, 30, 0, 0, time.UTC)
	early := time.Date(2025, time.April, 11, 9, 0, 0, 0, time.UTC)
	got := DailyMatchCounts([]domain.Match{{Date: late}, {Date: early}, {Date: late.Add(time.Hour)}})
	assert.Equal(t, []domain.DailyCount{
		{Date: time.Date(2025, time.April, 11, 0, 0, 0, 0, time.UTC), Matches: 1},
		{Date: time.Date(2025, time.April, 14, 0, 0, 0, 0, time.UTC), Matches: 2},
	}, got)
}

func TestScoreMarginDistribution(t *testing.T) {
	got := ScoreMarginDistribution(fixture.Matches())
	assert.Equal(t, []domain.MarginCount{
		{Margin: 1, Matches: 2},
		{Margin: 2, Matches: 3},
		{Margin: 3, Matches: 5},
	}, got)
}

func TestMostCommonMargin(t *testing.T) {
	tests := []struct {
		name    string
		matches []domain.Match
		want    int
		wantOk  bool
	}{
		{name: "fixture", matches: fixture.Matches(), want: 3, wantOk: true},
		{
			name:    "tie goes to the smaller margin",
			matches: []domain.Match{{Score1: 3, Score2: 0}, {Score1: 3, Score2: 2}},
			want:    1,
			wantOk:  true,
		},
		{name: "no matches", matches: nil, want: 0, wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MostCommonMargin(tt.matches)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPerformanceFromMatches(t *testing.T) {
	got := PerformanceFromMatches(fixture.Teams(), fixture.Matches())
	require.Len(t, got, 6)
	byCode := make(map[string]domain.Performance)
	for _, p := range got {
		byCode[p.HostelCode] = p
	}

	h10a := byCode["H10A"]
	assert.Equal(t, 4, h10a.MatchesPlayed)
	assert.Equal(t, 4, h10a.Wins)
	assert.Equal(t, 12, h10a.GamesWon)
	assert.Equal(t, 3, h10a.GamesLost)
	assert.Equal(t, 9, h10a.GameDifferential)
	assert.Equal(t, "100%", h10a.WinRate.Percent())

	h8 := byCode["H8"]
	assert.Equal(t, 1, h8.Wins)
	assert.Equal(t, 3, h8.Losses)
	assert.Equal(t, -6, h8.GameDifferential)
	assert.Equal(t, "25%", h8.WinRate.Percent())

	assert.Equal(t, "H10A", got[0].HostelCode)
	assert.Equal(t, "H5", got[5].HostelCode)
}

func TestPerformanceFromMatches_TeamWithoutMatches(t *testing.T) {
	got := PerformanceFromMatches([]domain.Team{{HostelCode: "H3", FinalPosition: 1}}, fixture.Matches())
	require.Len(t, got, 1)
	assert.Zero(t, got[0].MatchesPlayed)
	assert.False(t, got[0].WinRate.Valid)
}

func TestStandings(t *testing.T) {
	got := Standings(fixture.Teams())
	require.Len(t, got, 6)
	rates := make([]string, 0, len(got))
	for _, s := range got {
		rates = append(rates, s.WinRate.Percent())
	}
	assert.Equal(t, []string{"100%", "60%", "60%", "25%", "50%", "0%"}, rates)
	assert.Equal(t, "🥇", got[0].Label())
	assert.Equal(t, "#4", got[3].Label())
}

func TestPoolStandings(t *testing.T) {
	got := PoolStandings(fixture.Teams())
	require.Len(t, got, 2)
	codes := func(p domain.PoolStanding) []string {
		var out []string
		for _, s := range p.Teams {
			out = append(out, s.Team.HostelCode)
		}
		return out
	}
	assert.Equal(t, "A", got[0].Pool)
	assert.Equal(t, []string{"H7", "H10B", "H1"}, codes(got[0]))
	assert.Equal(t, "B", got[1].Pool)
	assert.Equal(t, []string{"H10A", "H8", "H5"}, codes(got[1]))
}

func TestBuildReport(t *testing.T) {
	report, err := BuildReport(fixture.Teams(), fixture.Matches())
	require.NoError(t, err)
	assert.Equal(t, "H10A", report.Summary.Champion)
	assert.Equal(t, 3, report.MostCommonMargin)
	assert.Equal(t, "H10A", report.BestGameDifferential.HostelCode)
	require.Len(t, report.Histories, 6)
	assert.Equal(t, "H7", report.Histories[1].HostelCode)
	assert.Len(t, report.Histories[1].Entries, 4)
	assert.Len(t, report.MatchTypes, 4)
	assert.Len(t, report.Daily, 4)
}

func TestBuildReport_NoChampion(t *testing.T) {
	_, err := BuildReport(nil, fixture.Matches())
	assert.ErrorIs(t, err, ErrNoChampion)
}
