// internal/config/config.go
//
// Runtime configuration, read from the environment (godotenv loads a
// local .env first, see main.go).
//
// Variables:
//   MAX_TRIES          wrong fills allowed before losing (default 3)
//   NUMBER_OF_PUZZLES  how many catalog entries to offer, 0 = all
//   PUZZLE_DIR         directory of *.txt puzzles (overrides embedded)
//   PUZZLE_PACK        path to a SQLite puzzle pack (overrides PUZZLE_DIR)
//   DAILY_SALT         salt for the puzzle-of-the-day selection
//   LOG_LEVEL          zerolog level name (default "info")
//   LOG_FILE           write logs there instead of stderr
//   SQUARE_COLOR       filled cell color (default "cyan")
//   X_COLOR            x mark color (default "red")
//   LINE_COLOR         board frame color (default terminal color)
//   CELL_WIDTH         characters per cell on screen (default 2)

package config

import (
	"os"
	"strconv"
)

// Config carries everything main wires into the game at startup.
type Config struct {
	MaxTries        int
	NumberOfPuzzles int
	PuzzleDir       string
	PuzzlePack      string
	DailySalt       string
	LogLevel        string
	LogFile         string
	Display         Display
}

// Display groups the purely cosmetic knobs the board renderer uses.
type Display struct {
	SquareColor string
	XColor      string
	LineColor   string
	CellWidth   int
}

// FromEnv reads the configuration, falling back to defaults for unset
// or unparsable values.
func FromEnv() Config {
	return Config{
		MaxTries:        getInt("MAX_TRIES", 3),
		NumberOfPuzzles: getInt("NUMBER_OF_PUZZLES", 0),
		PuzzleDir:       os.Getenv("PUZZLE_DIR"),
		PuzzlePack:      os.Getenv("PUZZLE_PACK"),
		DailySalt:       getEnv("DAILY_SALT", "local_dev_salt"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		Display: Display{
			SquareColor: getEnv("SQUARE_COLOR", "cyan"),
			XColor:      getEnv("X_COLOR", "red"),
			LineColor:   os.Getenv("LINE_COLOR"),
			CellWidth:   getInt("CELL_WIDTH", 2),
		},
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
