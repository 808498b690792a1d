package catalog

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPack writes a throwaway pack database and opens it as a
// catalog.
func newTestPack(t *testing.T, puzzles map[string]string) *Pack {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.pack")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)

	_, err = db.Exec(`CREATE TABLE puzzles (id TEXT PRIMARY KEY, cells TEXT NOT NULL);`)
	require.NoError(t, err)
	for id, cells := range puzzles {
		_, err = db.Exec(`INSERT INTO puzzles(id, cells) VALUES (?, ?)`, id, cells)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	p, err := OpenPack(path)
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestPack(t *testing.T) {
	p := newTestPack(t, map[string]string{
		"puzzle_2":  "1 1\n1 1\n",
		"puzzle_10": "1\n",
		"diag":      "1 0\n0 1\n",
		"broken":    "1 0\n0\n",
	})
	ctx := context.Background()

	t.Run("list is sorted", func(t *testing.T) {
		ids, err := p.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"broken", "diag", "puzzle_2", "puzzle_10"}, ids)
	})

	t.Run("load parses cells", func(t *testing.T) {
		g, err := p.Load(ctx, "diag")
		require.NoError(t, err)
		assert.Equal(t, 2, g.Rows())
		assert.True(t, g.Filled(0, 0))
		assert.False(t, g.Filled(0, 1))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := p.Load(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed cells keep their typed error", func(t *testing.T) {
		_, err := p.Load(ctx, "broken")
		require.Error(t, err)
		var mpe *MalformedPuzzleError
		assert.True(t, errors.As(err, &mpe))
	})
}

func TestOpenPackMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.pack")
	_, err := OpenPack(path)
	require.Error(t, err)

	// Opening must not have created the file.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
