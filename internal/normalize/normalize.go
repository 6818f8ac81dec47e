package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Code brings a user-typed hostel code ("h10a ", "H10a") to its stored form.
// A Caser is stateful, so one is built per call.
func Code(code string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(code))
}
