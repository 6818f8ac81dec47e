//go:build e2e

package e2e

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"

	sel "github.com/goserg/hostelcup/internal/e2e/selectors"
)

const baseURL = "http://127.0.0.1:3000"

var (
	binaryPath string
	configPath string
)

func init() {
	flag.StringVar(&binaryPath, "binary", "../../bin/hostelcup", "path to the server binary")
	flag.StringVar(&configPath, "config", "../../configs/server.toml", "path to server configs")
}

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

func TestPages(t *testing.T) {
	suite.Run(t, &PagesSuite{})
}

type PagesSuite struct {
	suite.Suite
	process *Process
}

func (s *PagesSuite) SetupSuite() {
	p := NewProcess(context.Background(), binaryPath, "-config", configPath)
	s.process = p
	s.Require().NoError(p.Start(context.Background()), "cant start process")

	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("unable to start app: %v\n%s", err, p.Output())
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get(baseURL + "/")
			if r != nil {
				_ = r.Body.Close()
				if r.StatusCode == http.StatusOK {
					return nil
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *PagesSuite) TearDownSuite() {
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *PagesSuite) browser() (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*10)
	ctx, cancel := chromedp.NewContext(ctx)
	return ctx, func() {
		cancel()
		cancelTimeout()
	}
}

func (s *PagesSuite) TestStatuses() {
	ctx, cancel := s.browser()
	defer cancel()

	err := chromedp.Run(ctx,
		s.checkStatus(baseURL+"/", http.StatusOK),
		s.checkStatus(baseURL+"/teams/H7", http.StatusOK),
		s.checkStatus(baseURL+"/teams/H99", http.StatusNotFound),
		s.checkStatus(baseURL+"/api/summary", http.StatusOK),
		s.checkStatus(baseURL+"/api/teams/H_7", http.StatusBadRequest),
	)
	s.Require().NoError(err)
}

func (s *PagesSuite) TestStandings() {
	ctx, cancel := s.browser()
	defer cancel()

	var logo, teams, matches, champion, avg string
	var rows int
	err := chromedp.Run(ctx,
		chromedp.Navigate(baseURL+"/"),
		chromedp.Text(sel.Logo, &logo),
		chromedp.Text(sel.SummaryTeams, &teams),
		chromedp.Text(sel.SummaryMatches, &matches),
		chromedp.Text(sel.SummaryChampion, &champion),
		chromedp.Text(sel.SummaryAvg, &avg),
		chromedp.Evaluate(`document.querySelectorAll("`+sel.StandingsRow+`").length`, &rows),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if logo != "Hostel Cup" {
				err := errors.New("invalid logo text: " + logo)
				var screenShot []byte
				_ = chromedp.FullScreenshot(&screenShot, 80).Do(ctx)
				if errW := os.WriteFile("invalid_logo.png", screenShot, 0o644); errW != nil {
					return errors.Join(errW, err)
				}
				return err
			}
			return nil
		}),
	)
	s.Require().NoError(err)
	s.Equal("6", teams)
	s.Equal("10", matches)
	s.Equal("H10A", champion)
	s.Equal("3.7", avg)
	s.Equal(6, rows)
}

func (s *PagesSuite) TestTeamDrillDown() {
	ctx, cancel := s.browser()
	defer cancel()

	var code, record, winRate, lastResult string
	var rows int
	err := chromedp.Run(ctx,
		chromedp.Navigate(baseURL+"/"),
		chromedp.Click(sel.StandingsRowLink, chromedp.NodeVisible),
		chromedp.WaitVisible(sel.TeamCode),
		chromedp.Text(sel.TeamCode, &code),
		chromedp.Text(sel.TeamRecord, &record),
		chromedp.Text(sel.TeamWinRate, &winRate),
		chromedp.Evaluate(`document.querySelectorAll("`+sel.HistoryRow+`").length`, &rows),
		chromedp.Evaluate(`Array.from(document.querySelectorAll("`+sel.HistoryRowResult+`")).pop().textContent`, &lastResult),
	)
	s.Require().NoError(err)
	s.Contains(code, "H10A")
	s.Equal("5-0", record)
	s.Equal("100%", winRate)
	s.Equal(4, rows)
	s.Equal("W", lastResult)
}

func (s *PagesSuite) checkStatus(url string, status int) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx, chromedp.Navigate(url))
			if err != nil {
				return err
			}
			if resp.Status != int64(status) {
				s.T().Errorf("%s must answer with status %d, got %d", url, status, resp.Status)
			}
			return nil
		}),
	}
}
