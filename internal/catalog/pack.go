// internal/catalog/pack.go
//
// Pack is a Catalog reading puzzles out of a SQLite "puzzle pack"
// file. A pack is a single table:
//
//   CREATE TABLE puzzles (
//       id    TEXT PRIMARY KEY,  -- catalog id, e.g. "heart"
//       cells TEXT NOT NULL      -- puzzle source, same format Parse reads
//   );
//
// The game only ever reads packs; building them is up to whoever
// distributes the puzzles.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/GrgurDuj/nono-game/internal/game"
)

// Pack is a Catalog over a SQLite puzzle pack.
type Pack struct {
	db *sql.DB
}

// OpenPack opens an existing puzzle pack file. Opening never creates
// the file: a missing pack is an error, not an empty catalog.
func OpenPack(path string) (*Pack, error) {
	// sql.Open would happily create an empty database here.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("puzzle pack: %w", err)
	}

	// Open DB with busy timeout and WAL journaling.
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open pack %s: %w", path, err)
	}
	return &Pack{db: db}, nil
}

// Close releases the underlying database handle.
func (p *Pack) Close() error { return p.db.Close() }

// List returns every puzzle id in the pack in display order.
func (p *Pack) List(ctx context.Context) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT id FROM puzzles`)
	if err != nil {
		return nil, fmt.Errorf("list pack puzzles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sortIDs(ids)
	return ids, nil
}

// Load fetches and parses one puzzle from the pack.
func (p *Pack) Load(ctx context.Context, id string) (game.Grid, error) {
	var cells string
	err := p.db.QueryRowContext(ctx,
		`SELECT cells FROM puzzles WHERE id=?`, id,
	).Scan(&cells)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Grid{}, ErrNotFound
	}
	if err != nil {
		return game.Grid{}, fmt.Errorf("load pack puzzle %s: %w", id, err)
	}

	g, err := Parse(strings.NewReader(cells))
	if err != nil {
		return game.Grid{}, fmt.Errorf("puzzle %s: %w", id, err)
	}
	return g, nil
}
