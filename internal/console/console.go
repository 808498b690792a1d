// internal/console/console.go
//
// Terminal front end for the nonogram engine.
// Responsibilities:
//   - Command loop: read a line, parse it, apply it, redraw the board.
//   - Puzzle switching through the catalog (by id or list position).
//   - Player feedback on mistakes, wins, and losses.
//
// Commands (coordinates are 1-based, row first):
//   fill R C | f R C   toggle a fill mark on a cell
//   x R C | mark R C   toggle an x mark on a cell
//   restart | r        start the current puzzle over
//   puzzles | ls       list what the catalog offers
//   play ID|N | p ...  switch to a puzzle by id or list position
//   daily              play the puzzle of the day
//   help | h           command summary
//   quit | q           leave the game
//
// Notes:
//   - Coordinates outside the board are caught here with a message;
//     the engine would ignore them silently.
//   - Reader and writer are injected so tests can script a session.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GrgurDuj/nono-game/internal/catalog"
	"github.com/GrgurDuj/nono-game/internal/config"
	"github.com/GrgurDuj/nono-game/internal/game"
)

// Console runs interactive play over a line-based reader/writer pair.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog catalog.Catalog
	cfg     config.Config

	session *game.Session
	current string   // id of the loaded puzzle
	ids     []string // catalog listing, capped at cfg.NumberOfPuzzles
}

// New wires a console to its input, output, and puzzle source.
func New(in io.Reader, out io.Writer, cat catalog.Catalog, cfg config.Config) *Console {
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: cat,
		cfg:     cfg,
	}
}

// Run plays until quit or end of input. The first catalog puzzle is
// loaded up front; failing to load it is fatal, unlike mid-session
// load failures which only print a message.
func (c *Console) Run(ctx context.Context) error {
	if err := c.refreshIDs(ctx); err != nil {
		return err
	}
	if len(c.ids) == 0 {
		return errors.New("console: catalog has no puzzles")
	}

	fmt.Fprintln(c.out, "N O N O G R A M")
	c.printHelp()
	if err := c.switchPuzzle(ctx, c.ids[0]); err != nil {
		return err
	}

	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		if quit := c.dispatch(ctx, line); quit {
			return nil
		}
	}
}

// dispatch runs one command line. Returns true on quit.
func (c *Console) dispatch(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	cmd := strings.ToLower(args[0])

	switch cmd {
	case "fill", "f":
		c.applyCell(args, game.PlaceFill)
	case "x", "mark":
		c.applyCell(args, game.PlaceX)
	case "restart", "r":
		c.session.Restart()
		log.Info().Str("puzzle", c.current).Msg("restarted")
		c.draw()
	case "puzzles", "ls":
		c.printPuzzles(ctx)
	case "play", "p":
		if len(args) != 2 {
			fmt.Fprintln(c.out, `usage: play <id> (ids from "puzzles")`)
			return false
		}
		c.play(ctx, args[1])
	case "daily":
		if len(c.ids) == 0 {
			fmt.Fprintln(c.out, "the catalog is empty")
			return false
		}
		id := c.ids[catalog.PuzzleIndex(time.Now(), c.cfg.DailySalt, len(c.ids))]
		fmt.Fprintf(c.out, "Puzzle of the day: %s\n", id)
		c.play(ctx, id)
	case "help", "h", "?":
		c.printHelp()
	case "quit", "q", "exit":
		fmt.Fprintln(c.out, "Bye!")
		return true
	default:
		fmt.Fprintf(c.out, "unknown command %q, try \"help\"\n", cmd)
	}
	return false
}

// applyCell parses coordinates and feeds one action to the session.
func (c *Console) applyCell(args []string, action game.Action) {
	row, col, ok := parseCell(args)
	if !ok {
		fmt.Fprintf(c.out, "usage: %s <row> <col>\n", strings.ToLower(args[0]))
		return
	}
	if row < 1 || row > c.session.Rows() || col < 1 || col > c.session.Cols() {
		fmt.Fprintf(c.out, "cell %d %d is outside the %dx%d board\n",
			row, col, c.session.Rows(), c.session.Cols())
		return
	}

	out, status := c.session.Apply(row-1, col-1, action)
	if !out.Changed {
		// Only a finished session ignores an in-bounds action.
		fmt.Fprintln(c.out, `the puzzle is finished: "restart" or "play" another`)
		return
	}

	c.draw()
	switch {
	case status == game.Won:
		log.Info().Str("puzzle", c.current).Int("mistakes", c.session.Mistakes()).Msg("solved")
		fmt.Fprintln(c.out, "You solved it!")
	case status == game.Lost:
		log.Info().Str("puzzle", c.current).Msg("out of tries")
		fmt.Fprintln(c.out, `Out of tries! "restart" to take another run at it.`)
	case out.Mistake:
		fmt.Fprintf(c.out, "That cell is wrong. %d tries left.\n", c.session.TriesLeft())
	}
}

// play switches puzzles by id, or by 1-based list position when the
// argument is a number.
func (c *Console) play(ctx context.Context, arg string) {
	id := arg
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(c.ids) {
			fmt.Fprintf(c.out, "no puzzle %d, the list has %d\n", n, len(c.ids))
			return
		}
		id = c.ids[n-1]
	}
	if err := c.switchPuzzle(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			fmt.Fprintf(c.out, "no puzzle named %q, try \"puzzles\"\n", id)
			return
		}
		log.Error().Err(err).Str("puzzle", id).Msg("load failed")
		fmt.Fprintf(c.out, "could not load %q: %v\n", id, err)
	}
}

// switchPuzzle loads a puzzle and starts a fresh session on it.
func (c *Console) switchPuzzle(ctx context.Context, id string) error {
	g, err := c.catalog.Load(ctx, id)
	if err != nil {
		return err
	}
	c.session = game.NewSession(g, c.cfg.MaxTries)
	c.current = id
	log.Info().Str("puzzle", id).Int("rows", g.Rows()).Int("cols", g.Cols()).Msg("puzzle loaded")
	fmt.Fprintf(c.out, "\nPlaying %s (%dx%d)\n", id, g.Rows(), g.Cols())
	c.draw()
	return nil
}

// refreshIDs re-reads the catalog listing, honoring the configured cap.
func (c *Console) refreshIDs(ctx context.Context) error {
	ids, err := c.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("list puzzles: %w", err)
	}
	if n := c.cfg.NumberOfPuzzles; n > 0 && n < len(ids) {
		ids = ids[:n]
	}
	c.ids = ids
	return nil
}

func (c *Console) printPuzzles(ctx context.Context) {
	if err := c.refreshIDs(ctx); err != nil {
		log.Warn().Err(err).Msg("refresh listing")
		fmt.Fprintf(c.out, "could not refresh the list: %v\n", err)
	}
	for i, id := range c.ids {
		marker := " "
		if id == c.current {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %2d. %s\n", marker, i+1, id)
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `
  fill R C   toggle a filled square (also: f)
  x R C      toggle an x mark
  restart    start the puzzle over (also: r)
  puzzles    list available puzzles (also: ls)
  play ID    switch puzzle, by id or list number (also: p)
  daily      play the puzzle of the day
  help       show this again (also: h)
  quit       leave the game (also: q)
`)
}

func (c *Console) draw() {
	fmt.Fprintln(c.out)
	renderBoard(c.out, c.session, c.cfg.Display)
}

// parseCell reads 1-based "R C" coordinates from command arguments.
func parseCell(args []string) (row, col int, ok bool) {
	if len(args) != 3 {
		return 0, 0, false
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, false
	}
	col, err = strconv.Atoi(args[2])
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}
