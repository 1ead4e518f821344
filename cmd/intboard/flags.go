// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/intboard-go/internal/config"
	"github.com/lgbarn/intboard-go/internal/fen"
)

var (
	// Position options
	fenString = flag.String("fen", fen.InitialFEN, "Starting position in FEN or Shredder-FEN")
	moveList  = flag.String("moves", "", "Moves to replay in coordinate notation (e.g. 'e2e4,e7e5')")

	// Verification options
	depth          = flag.Int("depth", 0, "Differential perft depth (0 = no perft)")
	workers        = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	trackPositions = flag.Bool("track", false, "Count distinct leaf positions by Zobrist key")
	maxPositions   = flag.Int("maxpositions", 0, "Maximum tracked positions (0 = unlimited)")

	// Display options
	show     = flag.Bool("show", false, "Print the board after the moves are replayed")
	noColour = flag.Bool("nocolor", false, "Disable ANSI colours in board output")
	shredder = flag.Bool("shredder", false, "Write castling rights as rook files")

	// Profiling
	profileMode = flag.String("profile", "", "Record a runtime profile: cpu or mem")
	profileDir  = flag.String("profiledir", ".", "Directory for profile output")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=summary, 2=per root move")
	logFile   = flag.String("l", "", "Write diagnostics to log file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)
	applyDisplayFlags(cfg)

	cfg.Profile = config.ProfileMode(*profileMode)
	cfg.Verbosity = *verbosity
}

// applyPositionFlags sets the starting position and the replayed moves.
func applyPositionFlags(cfg *config.Config) {
	cfg.FEN = *fenString
	cfg.Moves = splitMoves(*moveList)
}

// applyPerftFlags configures the differential perft run.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.TrackPositions = *trackPositions
	cfg.Perft.MaxPositions = *maxPositions
}

// applyDisplayFlags configures board output.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Show = *show
	cfg.Display.Colour = !*noColour
	cfg.Display.Shredder = *shredder
}

// splitMoves splits a move list on commas and whitespace.
func splitMoves(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
