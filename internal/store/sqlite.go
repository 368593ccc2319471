package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"horsemanager/internal/domain"
	"horsemanager/internal/util"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// Compile-time interface checks.
var _ Ledger = (*SQLiteStore)(nil)
var _ SnapshotStore = (*SQLiteStore)(nil)

// SQLiteStore implements Ledger and SnapshotStore backed by a SQLite
// database.
type SQLiteStore struct {
	db *sql.DB
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS player (
		id      INTEGER PRIMARY KEY CHECK (id = 1),
		name    TEXT    NOT NULL,
		balance INTEGER NOT NULL,
		day     TEXT    NOT NULL,
		seed    INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id         TEXT PRIMARY KEY,
		type       TEXT    NOT NULL,
		catalog    TEXT    NOT NULL,
		position   INTEGER NOT NULL,
		name       TEXT    NOT NULL,
		rarity     INTEGER NOT NULL,
		energy     INTEGER NOT NULL DEFAULT 0,
		resistance INTEGER NOT NULL DEFAULT 0,
		speed      INTEGER NOT NULL DEFAULT 0,
		skill      INTEGER NOT NULL DEFAULT 0,
		age        INTEGER NOT NULL DEFAULT 0,
		price      INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trades (
		id            TEXT PRIMARY KEY,
		day           TEXT    NOT NULL,
		ts            INTEGER NOT NULL,
		direction     TEXT    NOT NULL,
		item_id       TEXT    NOT NULL,
		item_type     TEXT    NOT NULL,
		item_name     TEXT    NOT NULL,
		canonical     INTEGER NOT NULL,
		price         INTEGER NOT NULL,
		event         TEXT    NOT NULL,
		balance_after INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS trades_day ON trades (day, ts)`,
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath, runs the
// migrations and returns a ready-to-use SQLiteStore.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// One connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `PRAGMA busy_timeout = 2000`); err != nil {
		return fmt.Errorf("sqlite pragma: %w", err)
	}
	for i, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("sqlite migration %d: %w", i, err)
		}
	}
	return nil
}

// isBusy reports whether err is a transient lock conflict with another
// process holding the database.
func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func (s *SQLiteStore) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return util.RetryIf(ctx, 3, 50*time.Millisecond, isBusy, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit()
	})
}

// ---------------------------------------------------------------------------
// SnapshotStore implementation
// ---------------------------------------------------------------------------

// SaveSnapshot replaces the player row and every item in one transaction.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap *Snapshot) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO player (id, name, balance, day, seed) VALUES (1, ?, ?, ?, ?)`,
			snap.Player.Name, snap.Player.Balance, snap.Player.Date.Format(DayLayout), int64(snap.Player.Seed))
		if err != nil {
			return fmt.Errorf("saving player: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
			return fmt.Errorf("clearing items: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO items
			(id, type, catalog, position, name, rarity, energy, resistance, speed, skill, age, price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range snap.Items {
			_, err := stmt.ExecContext(ctx, r.ID, r.Type, string(r.Catalog), r.Position, r.Name, int(r.Rarity),
				r.Energy, r.Resistance, r.Speed, r.Skill, r.Age, r.Price)
			if err != nil {
				return fmt.Errorf("saving item %s: %w", r.ID, err)
			}
		}
		return nil
	})
}

// LoadSnapshot reads the saved game. Items come back ordered by catalog and
// position.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	var (
		snap Snapshot
		day  string
		seed int64
	)
	err := s.db.QueryRowContext(ctx, `SELECT name, balance, day, seed FROM player WHERE id = 1`).
		Scan(&snap.Player.Name, &snap.Player.Balance, &day, &seed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("loading player: %w", err)
	}
	snap.Player.Seed = uint64(seed)
	if snap.Player.Date, err = time.Parse(DayLayout, day); err != nil {
		return nil, fmt.Errorf("loading player: bad day %q: %w", day, err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, type, catalog, position, name, rarity,
		energy, resistance, speed, skill, age, price
		FROM items ORDER BY catalog, position`)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			r       ItemRecord
			catalog string
			rarity  int
		)
		if err := rows.Scan(&r.ID, &r.Type, &catalog, &r.Position, &r.Name, &rarity,
			&r.Energy, &r.Resistance, &r.Speed, &r.Skill, &r.Age, &r.Price); err != nil {
			return nil, fmt.Errorf("loading items: %w", err)
		}
		r.Catalog = domain.CatalogKind(catalog)
		r.Rarity = domain.Rarity(rarity)
		snap.Items = append(snap.Items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	return &snap, nil
}

// ---------------------------------------------------------------------------
// Ledger implementation
// ---------------------------------------------------------------------------

// AppendTrade inserts a trade. Re-inserting the same ID is an error.
func (s *SQLiteStore) AppendTrade(ctx context.Context, t TradeRecord) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO trades
			(id, day, ts, direction, item_id, item_type, item_name, canonical, price, event, balance_after)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Day, t.Timestamp, t.Direction, t.ItemID, t.ItemType, t.ItemName,
			t.Canonical, t.Price, t.Event, t.BalanceAfter)
		if err != nil {
			return fmt.Errorf("appending trade %s: %w", t.ID, err)
		}
		return nil
	})
}

// ListTrades returns trades in the order they were made.
func (s *SQLiteStore) ListTrades(ctx context.Context, day string) ([]TradeRecord, error) {
	query := `SELECT id, day, ts, direction, item_id, item_type, item_name, canonical, price, event, balance_after
		FROM trades`
	var args []any
	if day != "" {
		query += ` WHERE day = ?`
		args = append(args, day)
	}
	query += ` ORDER BY day, ts, rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing trades: %w", err)
	}
	defer rows.Close()

	var trades []TradeRecord
	for rows.Next() {
		var t TradeRecord
		if err := rows.Scan(&t.ID, &t.Day, &t.Timestamp, &t.Direction, &t.ItemID, &t.ItemType,
			&t.ItemName, &t.Canonical, &t.Price, &t.Event, &t.BalanceAfter); err != nil {
			return nil, fmt.Errorf("listing trades: %w", err)
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}
