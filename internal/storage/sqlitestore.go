package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/guilhermegouw/leaguebook/internal/db"
	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

const savedAtKey = "saved_at"

var (
	playerColumns  = []string{"position", "name", "role", "age", "salary", "goals", "assists", "team", "country", "jersey", "appearances", "health", "tags"}
	teamColumns    = []string{"position", "name", "country", "sponsor", "wins", "draws", "losses", "tags"}
	matchColumns   = []string{"position", "date", "home", "away", "tags"}
	financeColumns = []string{"position", "team", "income", "payroll"}
)

// SQLiteStore keeps the league in a SQLite database, one table per entity
// kind. Row order is kept in the position column.
type SQLiteStore struct {
	db   *db.DB
	opts options
}

// NewSQLiteStore creates a store on an open database.
func NewSQLiteStore(database *db.DB, opts ...Option) *SQLiteStore {
	return &SQLiteStore{db: database, opts: newOptions(opts)}
}

// OpenSQLiteStore opens (and migrates) the database at path.
func OpenSQLiteStore(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	database, err := db.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(database, opts...), nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.db.Path()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save replaces every row in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, league *record.League) error {
	start := time.Now()
	doc := Encode(league)

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"players", "teams", "matches", "finances"} {
			if err := execBuilder(ctx, tx, squirrel.Delete(table)); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}

		if len(doc.Players) > 0 {
			insert := squirrel.Insert("players").Columns(playerColumns...)
			for i, p := range doc.Players {
				insert = insert.Values(i, p.Name, p.Position, p.Age, p.Salary, p.Goals, p.Assists,
					p.Team, p.Country, p.Jersey, p.Appearances, p.Health, encodeTags(p.Tags))
			}
			if err := execBuilder(ctx, tx, insert); err != nil {
				return fmt.Errorf("inserting players: %w", err)
			}
		}
		if len(doc.Teams) > 0 {
			insert := squirrel.Insert("teams").Columns(teamColumns...)
			for i, t := range doc.Teams {
				insert = insert.Values(i, t.Name, t.Country, t.Sponsor, t.Wins, t.Draws, t.Losses, encodeTags(t.Tags))
			}
			if err := execBuilder(ctx, tx, insert); err != nil {
				return fmt.Errorf("inserting teams: %w", err)
			}
		}
		if len(doc.Matches) > 0 {
			insert := squirrel.Insert("matches").Columns(matchColumns...)
			for i, m := range doc.Matches {
				insert = insert.Values(i, m.Date, m.Home, m.Away, encodeTags(m.Tags))
			}
			if err := execBuilder(ctx, tx, insert); err != nil {
				return fmt.Errorf("inserting matches: %w", err)
			}
		}
		if len(doc.Finances) > 0 {
			insert := squirrel.Insert("finances").Columns(financeColumns...)
			for i, f := range doc.Finances {
				insert = insert.Values(i, f.Team, f.Income, f.Payroll)
			}
			if err := execBuilder(ctx, tx, insert); err != nil {
				return fmt.Errorf("inserting finances: %w", err)
			}
		}

		meta := squirrel.Insert("league_meta").
			Columns("key", "value").
			Values(savedAtKey, strconv.FormatInt(time.Now().Unix(), 10)).
			Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value")
		return execBuilder(ctx, tx, meta)
	})
	if err != nil {
		return fmt.Errorf("saving league: %w", err)
	}

	s.opts.publish(pubsub.EventSaved, events.NewStoreSavedEvent(BackendSQLite, s.Path(), time.Since(start)))
	return nil
}

// Load reads every table back in position order and validates the rows.
func (s *SQLiteStore) Load(ctx context.Context) (*record.League, error) {
	start := time.Now()

	var savedAt string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM league_meta WHERE key = ?", savedAtKey).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("reading league metadata: %w", err)
	}

	var doc Document
	if doc.Players, err = queryRows(ctx, s.db, "players", playerColumns, scanPlayer); err != nil {
		return nil, err
	}
	if doc.Teams, err = queryRows(ctx, s.db, "teams", teamColumns, scanTeam); err != nil {
		return nil, err
	}
	if doc.Matches, err = queryRows(ctx, s.db, "matches", matchColumns, scanMatch); err != nil {
		return nil, err
	}
	if doc.Finances, err = queryRows(ctx, s.db, "finances", financeColumns, scanFinance); err != nil {
		return nil, err
	}

	league, err := Decode(doc)
	if err != nil {
		return nil, err
	}

	s.opts.publish(pubsub.EventLoaded, events.NewStoreLoadedEvent(BackendSQLite, s.Path(), time.Since(start)))
	return league, nil
}

func execBuilder(ctx context.Context, tx *sql.Tx, b squirrel.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func queryRows[T any](ctx context.Context, database *db.DB, table string, columns []string, scan func(scanner) (T, error)) ([]T, error) {
	query, args, err := squirrel.Select(columns...).From(table).OrderBy("position").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building %s query: %w", table, err)
	}

	rows, err := database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck // Read-only query

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return out, nil
}

func scanPlayer(row scanner) (PlayerRecord, error) {
	var (
		r        PlayerRecord
		position int
		tags     string
	)
	err := row.Scan(&position, &r.Name, &r.Position, &r.Age, &r.Salary, &r.Goals, &r.Assists,
		&r.Team, &r.Country, &r.Jersey, &r.Appearances, &r.Health, &tags)
	if err != nil {
		return r, err
	}
	r.Tags, err = decodeTags(tags)
	return r, err
}

func scanTeam(row scanner) (TeamRecord, error) {
	var (
		r        TeamRecord
		position int
		tags     string
	)
	if err := row.Scan(&position, &r.Name, &r.Country, &r.Sponsor, &r.Wins, &r.Draws, &r.Losses, &tags); err != nil {
		return r, err
	}
	var err error
	r.Tags, err = decodeTags(tags)
	return r, err
}

func scanMatch(row scanner) (MatchRecord, error) {
	var (
		r        MatchRecord
		position int
		tags     string
	)
	if err := row.Scan(&position, &r.Date, &r.Home, &r.Away, &tags); err != nil {
		return r, err
	}
	var err error
	r.Tags, err = decodeTags(tags)
	return r, err
}

func scanFinance(row scanner) (FinanceRecord, error) {
	var (
		r        FinanceRecord
		position int
	)
	err := row.Scan(&position, &r.Team, &r.Income, &r.Payroll)
	return r, err
}

func encodeTags(tags []string) string {
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeTags(raw string) ([]string, error) {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("%w: malformed tags %q", ErrInvalidData, raw)
	}
	return tags, nil
}
