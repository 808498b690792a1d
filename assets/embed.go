package assets

import (
	"embed"
	"io/fs"
)

//go:embed puzzles/*.txt
var FS embed.FS

// Puzzles returns the embedded default puzzles as a flat filesystem of
// *.txt files, ready to hand to catalog.NewFS. The files ship inside
// the binary, so the game always has something to play.
func Puzzles() (fs.FS, error) {
	return fs.Sub(FS, "puzzles")
}
