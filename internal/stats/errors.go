package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrIntegrity marks input that violates a data-model invariant.
	ErrIntegrity    = errors.New("data integrity violation")
	ErrNoChampion   = fmt.Errorf("%w: no unique champion", ErrIntegrity)
	ErrTeamNotFound = errors.New("team not found")
	ErrNoMatches    = errors.New("team has no recorded matches")
)

func integrityf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIntegrity}, args...)...)
}
