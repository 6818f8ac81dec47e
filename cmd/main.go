package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/goserg/hostelcup/bot/tgbot"
	"github.com/goserg/hostelcup/internal/config"
	"github.com/goserg/hostelcup/internal/export"
	"github.com/goserg/hostelcup/internal/logger"
	"github.com/goserg/hostelcup/internal/service"
	"github.com/goserg/hostelcup/internal/storage"
	"github.com/goserg/hostelcup/internal/storage/fixture"
	"github.com/goserg/hostelcup/internal/storage/sqlite"
	"github.com/goserg/hostelcup/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

type source interface {
	storage.TeamStorage
	storage.MatchStorage
}

func run() error {
	configPath := flag.String("config", "configs/server.toml", "path to server configs")
	exportDir := flag.String("export", "", "write the analysis tables as CSV into this directory and exit")
	flag.Parse()

	cfg, err := config.New(*configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logger.New(os.Stdout, cfg.Server.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closer, err := openSource(ctx, cfg.Data, log)
	if err != nil {
		return err
	}
	defer closer.Close()

	tournament := service.New(src, src, log.WithField("name", "service"))
	if err := tournament.Load(ctx); err != nil {
		return fmt.Errorf("load tournament: %w", err)
	}

	if *exportDir != "" {
		report, err := tournament.Report()
		if err != nil {
			return err
		}
		if err := export.WriteFiles(*exportDir, report); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		log.WithField("dir", *exportDir).Info("analysis exported")
		return nil
	}

	server, err := web.New(tournament, cfg.Server, log.WithField("name", "web"))
	if err != nil {
		return err
	}

	if cfg.TgBot.Enabled {
		bot, err := tgbot.New(tournament, cfg.TgBot, cfg.Server.Debug, log)
		if err != nil {
			return err
		}
		go bot.Run(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve()
	}()
	log.WithFields(logrus.Fields{
		"host":   cfg.Server.Host,
		"port":   cfg.Server.Port,
		"source": cfg.Data.Source,
	}).Info("server started")

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	return server.Shutdown()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openSource(ctx context.Context, cfg config.Data, log *logrus.Logger) (source, io.Closer, error) {
	switch cfg.Source {
	case config.SourceFixture:
		return fixture.New(), nopCloser{}, nil
	case config.SourceSqlite:
		db, err := sqlite.New(cfg.SqliteFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", cfg.SqliteFile, err)
		}
		if cfg.Seed {
			if err := seed(ctx, db, log); err != nil {
				return nil, nil, errors.Join(err, db.Close())
			}
		}
		return db, db, nil
	}
	return nil, nil, fmt.Errorf("unknown data source %q", cfg.Source)
}

func seed(ctx context.Context, db *sqlite.Storage, log *logrus.Logger) error {
	empty, err := db.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	log.Info("seeding empty database with the built-in tournament")
	return db.Import(ctx, fixture.Teams(), fixture.Matches())
}
