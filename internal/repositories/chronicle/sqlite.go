package chronicle

import (
	"context"

	"github.com/jmoiron/sqlx"
	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/clock"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS battles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	encounter_id TEXT NOT NULL,
	outcome TEXT NOT NULL,
	dimension TEXT NOT NULL,
	terrain TEXT NOT NULL,
	enemy_level INTEGER NOT NULL,
	rounds INTEGER NOT NULL,
	xp INTEGER NOT NULL,
	gold INTEGER NOT NULL,
	recorded_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_battles_session ON battles(session_id, id);
`

// SQLiteConfig configures the sqlite chronicle
type SQLiteConfig struct {
	// Path is a file path or MemoryPath
	Path string
	// Clock is optional and defaults to the real clock
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// SQLite is a Repository backed by a sqlite database
type SQLite struct {
	db    *sqlx.DB
	clock clock.Clock
}

var _ Repository = (*SQLite)(nil)

// NewSQLite opens the database and applies the schema
func NewSQLite(cfg *SQLiteConfig) (*SQLite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := cfg.Path
	if dsn != MemoryPath {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open chronicle")
	}
	// each connection to :memory: would be its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to migrate chronicle")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &SQLite{db: db, clock: c}, nil
}

// Close releases the database
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Append(ctx context.Context, input *AppendInput) (*AppendOutput, error) {
	if input == nil || input.Entry == nil {
		return nil, errors.InvalidArgument("entry cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if input.Entry.SessionID == "" {
		vb.RequiredField("SessionID")
	}
	if input.Entry.Outcome == entities.OutcomeNone {
		vb.RequiredField("Outcome")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	entry := *input.Entry
	entry.RecordedAt = s.clock.Now().UTC()

	res, err := s.db.NamedExecContext(ctx, `INSERT INTO battles
		(session_id, encounter_id, outcome, dimension, terrain, enemy_level, rounds, xp, gold, recorded_at)
		VALUES (:session_id, :encounter_id, :outcome, :dimension, :terrain, :enemy_level, :rounds, :xp, :gold, :recorded_at)`,
		&entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to append chronicle entry")
	}
	if entry.ID, err = res.LastInsertId(); err != nil {
		return nil, errors.Wrap(err, "failed to read chronicle entry id")
	}

	return &AppendOutput{Entry: &entry}, nil
}

func (s *SQLite) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}

	query := `SELECT * FROM battles WHERE session_id = ? ORDER BY id DESC`
	args := []interface{}{input.SessionID}
	if input.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, input.Limit)
	}

	var entries []*Entry
	if err := s.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list chronicle")
	}
	return &ListOutput{Entries: entries}, nil
}
