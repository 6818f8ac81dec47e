package web

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	embedded "github.com/goserg/hostelcup"
	"github.com/goserg/hostelcup/internal/config"
	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/export"
	"github.com/goserg/hostelcup/internal/service"
	"github.com/goserg/hostelcup/internal/stats"
	"github.com/goserg/hostelcup/internal/web/webpath"
)

const title = "Hostel Cup"

type Server struct {
	service *service.TournamentService
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

func New(ts *service.TournamentService, cfg config.Server, log *logrus.Entry) (*Server, error) {
	server := Server{
		service: ts,
		cfg:     cfg,
		log:     log,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("PositionLabel", domain.PositionLabel)
	engine.AddFunc("TeamPath", webpath.Team)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          server.handleError,
		DisableStartupMessage: true,
	})
	app.Use(server.requestLogger)

	app.Get(webpath.Home, server.handleMain)
	app.Get(webpath.Teams, server.handleTeamPage)

	app.Get(webpath.Api, server.handleReport)
	app.Get(webpath.ApiSummary, server.handleSummary)
	app.Get(webpath.ApiStandings, server.handleStandings)
	app.Get(webpath.ApiPools, server.handlePools)
	app.Get(webpath.ApiSeriesWinLoss, server.handleWinLoss)
	app.Get(webpath.ApiSeriesGameDifferential, server.handleGameDifferential)
	app.Get(webpath.ApiMatchTypes, server.handleMatchTypes)
	app.Get(webpath.ApiDaily, server.handleDaily)
	app.Get(webpath.ApiMargins, server.handleMargins)
	app.Get(webpath.ApiRatings, server.handleRatings)
	app.Get(webpath.ApiTeam, server.handleTeam)
	app.Get(webpath.ApiExportPerformance, server.handleExport(export.PerformanceFile, func(w io.Writer, r domain.Report) error {
		return export.WritePerformance(w, r.Performance)
	}))
	app.Get(webpath.ApiExportMatches, server.handleExport(export.MatchesFile, func(w io.Writer, r domain.Report) error {
		return export.WriteMatches(w, r.Matches)
	}))
	app.Get(webpath.ApiExportStatistics, server.handleExport(export.StatisticsFile, func(w io.Writer, r domain.Report) error {
		return export.WriteStatistics(w, r.Statistics)
	}))
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) requestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	requestID := uuid.NewString()
	ctx.Set(fiber.HeaderXRequestID, requestID)

	chainErr := ctx.Next()
	if chainErr != nil {
		if err := s.handleError(ctx, chainErr); err != nil {
			return err
		}
	}

	entry := s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     ctx.Method(),
		"path":       ctx.Path(),
		"status":     ctx.Response().StatusCode(),
		"duration":   time.Since(start).String(),
	})
	if chainErr != nil {
		entry.WithError(chainErr).Warn("request failed")
		return nil
	}
	entry.Debug("request")
	return nil
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, stats.ErrTeamNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, errBadRequest):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotLoaded):
		status = fiber.StatusServiceUnavailable
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	}
	if status == fiber.StatusInternalServerError {
		s.log.WithError(err).Error("internal error")
	}

	ctx.Status(status)
	if strings.HasPrefix(ctx.Path(), webpath.Api) {
		return ctx.JSON(errorResponse{Error: err.Error()})
	}
	return ctx.Render("error", newData(http.StatusText(status)).
		WithStatus(status).
		WithErrors(err), "layouts/main")
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	report, err := s.service.Report()
	if err != nil {
		return err
	}
	ratings, err := s.service.Ratings()
	if err != nil {
		return err
	}
	return ctx.Render("index", newData(title).
		With("Report", report).
		With("Ratings", ratings), "layouts/main")
}

func (s *Server) handleTeamPage(ctx *fiber.Ctx) error {
	code, err := parseTeamCode(ctx)
	if err != nil {
		return err
	}
	detail, err := s.service.Team(code)
	if err != nil {
		return err
	}
	return ctx.Render("team", newData(title+" | "+detail.Standing.Team.HostelCode).
		With("Team", detail.Standing.Team).
		With("Standing", convertStanding(detail.Standing)).
		With("History", detail.History), "layouts/main")
}

func (s *Server) handleReport(ctx *fiber.Ctx) error {
	report, err := s.service.Report()
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}

func (s *Server) handleSummary(ctx *fiber.Ctx) error {
	summary, err := s.service.Summary()
	if err != nil {
		return err
	}
	return ctx.JSON(convertSummary(summary))
}

func (s *Server) handleStandings(ctx *fiber.Ctx) error {
	standings, err := s.service.Standings()
	if err != nil {
		return err
	}
	return ctx.JSON(convertStandings(standings))
}

func (s *Server) handlePools(ctx *fiber.Ctx) error {
	report, err := s.service.Report()
	if err != nil {
		return err
	}
	return ctx.JSON(convertPools(report.Pools))
}

func (s *Server) handleWinLoss(ctx *fiber.Ctx) error {
	report, err := s.service.Report()
	if err != nil {
		return err
	}
	return ctx.JSON(report.WinLoss)
}

func (s *Server) handleGameDifferential(ctx *fiber.Ctx) error {
	report, err := s.service.Report()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"series": report.GameDifferential,
		"best":   report.BestGameDifferential,
	})
}

func (s *Server) handleMatchTypes(ctx *fiber.Ctx) error {
	report, err := s.service.Report()
	if err != nil {
		return err
	}
	return ctx.JSON(report.MatchTypes)
}

func (s *Server) handleDaily(ctx *fiber.Ctx) error {
	report, err := s.service.Report()
	if err != nil {
		return err
	}
	return ctx.JSON(report.Daily)
}

func (s *Server) handleMargins(ctx *fiber.Ctx) error {
	report, err := s.service.Report()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"margins":          report.Margins,
		"mostCommonMargin": report.MostCommonMargin,
	})
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	ratings, err := s.service.Ratings()
	if err != nil {
		return err
	}
	return ctx.JSON(ratings)
}

func (s *Server) handleTeam(ctx *fiber.Ctx) error {
	code, err := parseTeamCode(ctx)
	if err != nil {
		return err
	}
	detail, err := s.service.Team(code)
	if err != nil {
		return err
	}
	return ctx.JSON(convertTeam(detail))
}

func (s *Server) handleExport(filename string, write func(io.Writer, domain.Report) error) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		report, err := s.service.Report()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := write(&buf, report); err != nil {
			return err
		}
		ctx.Attachment(filename)
		ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}
