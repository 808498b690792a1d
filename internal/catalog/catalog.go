// internal/catalog/catalog.go
//
// Puzzle catalogs: where the game finds its puzzles.
//
// Responsibilities:
//   - Catalog: the read-only lookup interface the console plays from.
//   - FS: a catalog over any fs.FS holding *.txt puzzle files, with a
//     cache of parsed grids.
//   - Stable display order: ids with a shared prefix and a numeric
//     suffix sort numerically (puzzle_2 before puzzle_10).
//
// Backends:
//   - assets.Puzzles()   embedded defaults, always available
//   - os.DirFS(dir)      a directory of *.txt files (PUZZLE_DIR)
//   - OpenPack(path)     a SQLite puzzle pack (see pack.go)

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/GrgurDuj/nono-game/internal/game"
)

// ErrNotFound is returned by Load for an id the catalog does not have.
var ErrNotFound = errors.New("puzzle not found")

// Catalog is a read-only source of puzzles.
// Implementations may be backed by embedded files, a directory, or a
// pack database.
type Catalog interface {
	// List returns the available puzzle ids in display order.
	List(ctx context.Context) ([]string, error)

	// Load parses the puzzle with the given id.
	// Returns ErrNotFound if the catalog has no such id.
	Load(ctx context.Context, id string) (game.Grid, error)
}

// FS is a Catalog over a filesystem: every *.txt file at the root is a
// puzzle, its id the filename without the extension. Parsed grids are
// cached; grids are immutable, so handing the same value out twice is
// safe.
type FS struct {
	fsys fs.FS

	mu    sync.RWMutex         // guards cache
	cache map[string]game.Grid // keyed by puzzle id
}

// NewFS wraps a filesystem as a catalog.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys, cache: make(map[string]game.Grid)}
}

// List scans the filesystem root for *.txt puzzle files.
func (c *FS) List(ctx context.Context) ([]string, error) {
	entries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sortIDs(ids)
	return ids, nil
}

// Load reads and parses one puzzle file, serving repeats from cache.
func (c *FS) Load(ctx context.Context, id string) (game.Grid, error) {
	c.mu.RLock()
	g, ok := c.cache[id]
	c.mu.RUnlock()
	if ok {
		return g, nil
	}

	f, err := c.fsys.Open(id + ".txt")
	if errors.Is(err, fs.ErrNotExist) {
		return game.Grid{}, ErrNotFound
	}
	if err != nil {
		return game.Grid{}, fmt.Errorf("open puzzle %s: %w", id, err)
	}
	defer f.Close()

	g, err = Parse(f)
	if err != nil {
		return game.Grid{}, fmt.Errorf("puzzle %s: %w", id, err)
	}

	c.mu.Lock()
	c.cache[id] = g
	c.mu.Unlock()
	return g, nil
}

// sortIDs orders puzzle ids for display. Ids that share a prefix and
// end in digits compare by the number, everything else is plain
// lexicographic.
func sortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return lessID(ids[i], ids[j]) })
}

func lessID(a, b string) bool {
	ap, an, aok := splitNumericSuffix(a)
	bp, bn, bok := splitNumericSuffix(b)
	if aok && bok && ap == bp {
		return an < bn
	}
	return a < b
}

// splitNumericSuffix splits "puzzle_12" into ("puzzle_", 12, true).
// ok is false when the id has no trailing digits or the number does
// not fit an int.
func splitNumericSuffix(id string) (prefix string, n int, ok bool) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return id, 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0, false
	}
	return id[:i], n, true
}
