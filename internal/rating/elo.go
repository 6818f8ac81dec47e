package rating

import "math"

type points float64

const (
	win  points = 1
	lose points = 0
)

const initialElo = 1000

// eloUpdate returns the new rating of a side rated ra after a match against
// a side rated rb.
// k - coefficient, see kFactor.
// sa - 1 for a win, 0 for a loss.
func eloUpdate(ra, rb, k int, sa points) int {
	a := float64(ra)
	b := float64(rb)

	expected := 1.0 / (1.0 + math.Pow(10, (b-a)/400.0))
	return int(math.Round(a + float64(k)*(float64(sa)-expected)))
}

// kFactor is 40 for the first 30 matches, then 10 at 2400 and above, else 20.
func kFactor(played, rating int) int {
	if played <= 30 {
		return 40
	}
	if rating >= 2400 {
		return 10
	}
	return 20
}
