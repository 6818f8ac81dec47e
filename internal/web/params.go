package web

import (
	"errors"
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/goserg/hostelcup/internal/normalize"
)

var errBadRequest = errors.New("bad request")

var hostelCodeRegexp = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)

func parseTeamCode(ctx *fiber.Ctx) (string, error) {
	code := ctx.Params("code")
	if err := validateHostelCode(code); err != nil {
		return "", err
	}
	return normalize.Code(code), nil
}

func validateHostelCode(code string) error {
	var err error
	if code == "" {
		err = errors.Join(err, errors.New("hostel code must not be empty"))
	}
	if !hostelCodeRegexp.MatchString(code) {
		err = errors.Join(err, errors.New("hostel code must be 1 to 8 latin letters or digits"))
	}
	if err != nil {
		return errors.Join(errBadRequest, err)
	}
	return nil
}
