package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GrgurDuj/nono-game/assets"
	"github.com/GrgurDuj/nono-game/internal/catalog"
	"github.com/GrgurDuj/nono-game/internal/config"
	"github.com/GrgurDuj/nono-game/internal/console"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open log file")
		}
		defer f.Close()
		log.Logger = log.Output(f)
	} else {
		// Logs share the terminal with the board, so keep them readable.
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cat, closeCat, err := openCatalog(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open puzzle catalog")
	}
	if closeCat != nil {
		defer func() { _ = closeCat() }()
	}

	log.Info().Int("maxTries", cfg.MaxTries).Msg("starting nonogram")
	c := console.New(os.Stdin, os.Stdout, cat, cfg)
	if err := c.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

// openCatalog picks the puzzle source: a pack file wins over a puzzle
// directory, which wins over the embedded defaults.
func openCatalog(cfg config.Config) (catalog.Catalog, func() error, error) {
	switch {
	case cfg.PuzzlePack != "":
		p, err := catalog.OpenPack(cfg.PuzzlePack)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("pack", cfg.PuzzlePack).Msg("using puzzle pack")
		return p, p.Close, nil
	case cfg.PuzzleDir != "":
		log.Info().Str("dir", cfg.PuzzleDir).Msg("using puzzle directory")
		return catalog.NewFS(os.DirFS(cfg.PuzzleDir)), nil, nil
	default:
		fsys, err := assets.Puzzles()
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewFS(fsys), nil, nil
	}
}
