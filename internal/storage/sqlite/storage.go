package sqlite

import (
	"context"
	"database/sql"

	jet "github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"

	"github.com/goserg/hostelcup/gen/model"
	"github.com/goserg/hostelcup/gen/table"
	"github.com/goserg/hostelcup/internal/domain"
	"github.com/goserg/hostelcup/internal/migrate"
	"github.com/goserg/hostelcup/internal/storage"
)

type Storage struct {
	db *sql.DB
}

var _ storage.TeamStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)
var _ storage.Importer = (*Storage)(nil)

// New opens the database file and migrates it to the latest schema.
func New(file string) (*Storage, error) {
	db, err := sql.Open("sqlite3", "file:"+file+"?cache=shared&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	err = migrate.Up(db)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListTeams(ctx context.Context) ([]domain.Team, error) {
	var teams []model.Teams
	err := jet.SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		ORDER_BY(table.Teams.ID.ASC()).
		QueryContext(ctx, s.db, &teams)
	if err != nil {
		return nil, err
	}
	return convertTeamsToDomain(teams), nil
}

func (s *Storage) ListMatches(ctx context.Context) ([]domain.Match, error) {
	var matches []model.Matches
	err := jet.SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.ID.ASC()).
		QueryContext(ctx, s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertMatchesToDomain(matches)
}

// Import replaces all stored teams and matches in one transaction.
func (s *Storage) Import(ctx context.Context, teams []domain.Team, matches []domain.Match) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = table.Matches.DELETE().WHERE(jet.Bool(true)).ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	_, err = table.Teams.DELETE().WHERE(jet.Bool(true)).ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	if len(teams) > 0 {
		_, err = table.Teams.
			INSERT(table.Teams.AllColumns).
			MODELS(convertTeamsFromDomain(teams)).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	if len(matches) > 0 {
		_, err = table.Matches.
			INSERT(table.Matches.AllColumns).
			MODELS(convertMatchesFromDomain(matches)).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Empty reports whether no team has been stored yet.
func (s *Storage) Empty(ctx context.Context) (bool, error) {
	query, args := jet.SELECT(jet.COUNT(jet.STAR)).
		FROM(table.Teams).
		Sql()
	var count int64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
