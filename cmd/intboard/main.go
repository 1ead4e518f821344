// intboard replays moves on a packed chess position and checks make/undo
// against a reference move generator with differential perft.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/profile"

	"github.com/lgbarn/intboard-go/internal/config"
	"github.com/lgbarn/intboard-go/internal/display"
	"github.com/lgbarn/intboard-go/internal/verify"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(execute())
}

// execute runs the program from the parsed flags and returns the exit
// code. Deferred cleanup has run by the time it returns.
func execute() int {
	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("intboard version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if stop := startProfile(cfg.Profile, *profileDir); stop != nil {
		defer stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// run loads the position, prints it if asked and runs perft.
func run(ctx context.Context, cfg *config.Config) error {
	p, ref, err := verify.Load(cfg.FEN, cfg.Moves)
	if err != nil {
		return err
	}
	cfg.Logf(2, "loaded %s after %d moves\n", p.FEN(), len(cfg.Moves))

	if cfg.Display.Show {
		if err := display.NewRenderer(cfg.Display).Render(cfg.OutputFile, p); err != nil {
			return err
		}
	}

	if cfg.Perft.Depth == 0 {
		return nil
	}
	result, err := verify.Run(ctx, p, ref, cfg)
	if err != nil {
		return err
	}
	reportResult(cfg.OutputFile, result)
	return nil
}

// reportResult writes the per-root divide and the totals.
func reportResult(w io.Writer, result *verify.Result) {
	for _, root := range result.Roots {
		fmt.Fprintf(w, "%v: %d\n", root.Move, root.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", result.Nodes)
	if result.Unique > 0 {
		fmt.Fprintf(w, "Unique positions: %d (%d duplicates)\n", result.Unique, result.Duplicates)
	}
}

// startProfile starts the requested profile, written to dir, and returns
// its stop function.
func startProfile(mode config.ProfileMode, dir string) func() {
	opts := []func(*profile.Profile){profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet}
	switch mode {
	case config.CPUProfile:
		return profile.Start(append(opts, profile.CPUProfile)...).Stop
	case config.MemProfile:
		return profile.Start(append(opts, profile.MemProfile)...).Stop
	}
	return nil
}

// setupLogFile configures the log file based on command-line flags and
// returns the function that closes it.
func setupLogFile(cfg *config.Config) (func(), error) {
	if *logFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
	}
	cfg.LogFile = file
	return func() { _ = file.Close() }, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: intboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays moves on a packed chess position and verifies make/undo\n")
	fmt.Fprintf(os.Stderr, "against a reference move generator.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  intboard -show -moves e2e4,e7e5\n")
	fmt.Fprintf(os.Stderr, "  intboard -fen '%s' -depth 4 -v 2\n", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
}
