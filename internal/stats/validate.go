package stats

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/normalize"
)

// Validate checks every data-model invariant of teams and matches and
// returns all violations joined, each wrapping ErrIntegrity.
func Validate(teams []domain.Team, matches []domain.Match) error {
	err := validateTeams(teams)
	return errors.Join(err, validateMatches(teams, matches))
}

func validateTeams(teams []domain.Team) error {
	var err error
	ids := mapset.NewThreadUnsafeSet[int]()
	codes := mapset.NewThreadUnsafeSet[string]()
	positions := mapset.NewThreadUnsafeSet[int]()
	for _, t := range teams {
		if !ids.Add(t.ID) {
			err = errors.Join(err, integrityf("duplicate team id %d", t.ID))
		}
		if t.HostelCode == "" {
			err = errors.Join(err, integrityf("team %d has no hostel code", t.ID))
		} else if !codes.Add(normalize.Code(t.HostelCode)) {
			// codes compare after normalisation: H1 and h1 collide
			err = errors.Join(err, integrityf("duplicate hostel code %s", t.HostelCode))
		}
		if !positions.Add(t.FinalPosition) {
			err = errors.Join(err, integrityf("duplicate final position %d (%s)", t.FinalPosition, t.HostelCode))
		}
		if t.MatchesPlayed < 0 || t.Wins < 0 || t.Losses < 0 || t.GamesWon < 0 || t.GamesLost < 0 {
			err = errors.Join(err, integrityf("team %s has a negative counter", t.HostelCode))
		}
		if t.Wins+t.Losses != t.MatchesPlayed {
			err = errors.Join(err, integrityf("team %s: wins %d + losses %d != matches played %d",
				t.HostelCode, t.Wins, t.Losses, t.MatchesPlayed))
		}
	}
	for p := 1; p <= len(teams); p++ {
		if !positions.Contains(p) {
			err = errors.Join(err, integrityf("final position %d is not held by any team", p))
		}
	}
	if len(teams) > 0 {
		if _, cerr := Champion(teams); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}
	return err
}

func validateMatches(teams []domain.Team, matches []domain.Match) error {
	var err error
	pools := make(map[string]string, len(teams))
	for _, t := range teams {
		pools[t.HostelCode] = t.Pool
	}
	ids := mapset.NewThreadUnsafeSet[int]()
	for _, m := range matches {
		if !ids.Add(m.ID) {
			err = errors.Join(err, integrityf("duplicate match id %d", m.ID))
		}
		for _, code := range []string{m.Team1Code, m.Team2Code} {
			if _, ok := pools[code]; !ok {
				err = errors.Join(err, integrityf("match %d references unknown hostel code %q", m.ID, code))
			}
		}
		if m.Team1Code == m.Team2Code {
			err = errors.Join(err, integrityf("match %d: %s plays itself", m.ID, m.Team1Code))
		}
		if m.Score1 < 0 || m.Score2 < 0 {
			err = errors.Join(err, integrityf("match %d has a negative score", m.ID))
		}
		if m.Score1 == m.Score2 {
			err = errors.Join(err, integrityf("match %d is a draw %d-%d", m.ID, m.Score1, m.Score2))
		}
		switch {
		case m.Stage == domain.StagePool && m.Pool == "":
			err = errors.Join(err, integrityf("pool match %d has no pool", m.ID))
		case m.Stage == domain.StagePool:
			for _, code := range []string{m.Team1Code, m.Team2Code} {
				if pool, ok := pools[code]; ok && pool != m.Pool {
					err = errors.Join(err, integrityf("match %d in pool %s involves %s from pool %s", m.ID, m.Pool, code, pool))
				}
			}
		case m.Pool != "":
			err = errors.Join(err, integrityf("%s match %d carries pool %s", m.Stage, m.ID, m.Pool))
		}
	}
	return err
}
