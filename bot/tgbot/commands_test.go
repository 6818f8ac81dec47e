package tgbot

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/hostelcup/internal/service"
	"github.com/goserg/hostelcup/internal/stats"
	"github.com/goserg/hostelcup/internal/storage/fixture"
)

func newCommands(t *testing.T) *Commands {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	ts := service.New(fixture.New(), fixture.New(), l.WithField("name", "service"))
	require.NoError(t, ts.Load(context.Background()))
	return NewCommands(ts)
}

func TestCommands_Help(t *testing.T) {
	c := newCommands(t)

	text, err := c.RunCommand("help", "")
	require.NoError(t, err)
	assert.Equal(t, "Available commands:\n/help\n/rating\n/standings\n/summary\n/team\nSend /help and a command name for details", text)

	start, err := c.RunCommand("start", "")
	require.NoError(t, err)
	assert.Equal(t, text, start)

	text, err = c.RunCommand("help", "/team")
	require.NoError(t, err)
	assert.Equal(t, (&TeamCommand{}).Help(), text)
}

func TestCommands_Summary(t *testing.T) {
	c := newCommands(t)
	text, err := c.RunCommand("summary", "")
	require.NoError(t, err)
	assert.Equal(t, "Teams: 6\nMatches: 10\nClose matches: 2\nAvg games per match: 3.7\nChampion: 🏆 H10A", text)
}

func TestCommands_Standings(t *testing.T) {
	c := newCommands(t)
	text, err := c.RunCommand("standings", "")
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "🥇 H10A 5-0 (+11) 100%", lines[0])
	assert.Equal(t, "#6 H5 0-2 (-5) 0%", lines[5])
}

func TestCommands_Team(t *testing.T) {
	c := newCommands(t)
	tests := []struct {
		name    string
		args    string
		want    []string
		wantErr error
	}{
		{
			name: "runner-up",
			args: "h7",
			want: []string{
				"🥈 H7 3-2 (+6) 60%",
				"Captain: Dev Dixit",
				"2025-04-11 Pool vs H1 W 3-0",
				"2025-04-14 Final vs H10A L 2-3",
			},
		},
		{name: "unknown", args: "H99", wantErr: stats.ErrTeamNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := c.RunCommand("team", tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, line := range tt.want {
				assert.Contains(t, text, line)
			}
		})
	}

	_, err := c.RunCommand("team", "  ")
	assert.Error(t, err)
}

func TestCommands_Rating(t *testing.T) {
	c := newCommands(t)
	text, err := c.RunCommand("rating", "")
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "1. "))
}

func TestCommands_Unknown(t *testing.T) {
	c := newCommands(t)
	_, err := c.RunCommand("game", "")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestCommands_NotLoaded(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	c := NewCommands(service.New(fixture.New(), fixture.New(), l.WithField("name", "service")))
	_, err := c.RunCommand("summary", "")
	assert.ErrorIs(t, err, service.ErrNotLoaded)
}
