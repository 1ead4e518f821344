package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/intboard-go/internal/config"
	inerrors "github.com/lgbarn/intboard-go/internal/errors"
	"github.com/lgbarn/intboard-go/internal/testutil"
)

func testConfig(out, log *bytes.Buffer) *config.ConfigBuilder {
	return config.NewConfigBuilder().
		WithOutput(out).
		WithLogFile(log).
		WithColour(false).
		WithWorkers(2)
}

func TestRunShow(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).WithMoves("e2e4", "e7e5").WithShow(true).Build()

	testutil.AssertNoError(t, run(context.Background(), cfg))
	testutil.AssertContains(t, out.String(), "FEN: rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	testutil.AssertContains(t, out.String(), " 4 |   |   |   |   | P |   |   |   |")
}

func TestRunPerft(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).WithDepth(2).WithPositionTracking(true, 0).Build()

	testutil.AssertNoError(t, run(context.Background(), cfg))
	testutil.AssertContains(t, out.String(), "e2e4: 20\n")
	testutil.AssertContains(t, out.String(), "Nodes searched: 400\n")
	testutil.AssertContains(t, out.String(), "Unique positions: 400 (0 duplicates)")
	testutil.AssertContains(t, log.String(), "perft 2: 400 nodes")
	if got := strings.Count(out.String(), ": 20\n"); got != 20 {
		t.Errorf("found %d root lines; want 20", got)
	}
}

func TestRunQuiet(t *testing.T) {
	var out, log bytes.Buffer
	cfg := testConfig(&out, &log).WithMoves("g1f3").Build()

	testutil.AssertNoError(t, run(context.Background(), cfg))
	testutil.AssertEqual(t, out.String(), "")
}

func TestRunErrors(t *testing.T) {
	var out, log bytes.Buffer

	cfg := testConfig(&out, &log).WithMoves("e2e5").Build()
	testutil.AssertErrorIs(t, run(context.Background(), cfg), inerrors.ErrUnknownMove)

	cfg = testConfig(&out, &log).WithFEN("8/8/8 w - - 0 1").Build()
	testutil.AssertErrorIs(t, run(context.Background(), cfg), inerrors.ErrInvalidFEN)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg = testConfig(&out, &log).WithDepth(3).Build()
	testutil.AssertErrorIs(t, run(ctx, cfg), context.Canceled)
}

func TestStartProfileNone(t *testing.T) {
	if stop := startProfile(config.NoProfile, t.TempDir()); stop != nil {
		t.Error("startProfile(NoProfile) returned a stop function")
	}
}

func TestExecute(t *testing.T) {
	t.Run("success writes and closes the log", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "intboard.log")
		defer saveRestoreString(logFile, path)()
		defer saveRestoreString(moveList, "e2e4")()
		defer saveRestoreInt(verbosity, 2)()

		testutil.AssertEqual(t, execute(), 0)
		data, err := os.ReadFile(path)
		testutil.AssertNoError(t, err)
		testutil.AssertContains(t, string(data), "loaded ")
	})

	t.Run("failed run still writes the profile", func(t *testing.T) {
		dir := t.TempDir()
		defer saveRestoreString(profileDir, dir)()
		defer saveRestoreString(profileMode, "cpu")()
		defer saveRestoreString(moveList, "e2e5")()

		testutil.AssertEqual(t, execute(), 1)
		_, err := os.Stat(filepath.Join(dir, "cpu.pprof"))
		testutil.AssertNoError(t, err, "cpu profile missing after a failed run")
	})

	t.Run("invalid config", func(t *testing.T) {
		defer saveRestoreInt(depth, config.MaxDepth+1)()
		testutil.AssertEqual(t, execute(), 2)
	})

	t.Run("unwritable log", func(t *testing.T) {
		defer saveRestoreString(logFile, filepath.Join(t.TempDir(), "missing", "intboard.log"))()
		testutil.AssertEqual(t, execute(), 1)
	})
}

func TestSetupLogFileClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intboard.log")
	defer saveRestoreString(logFile, path)()

	cfg := config.NewConfig()
	closeLog, err := setupLogFile(cfg)
	testutil.AssertNoError(t, err)
	cfg.Logf(1, "hello\n")
	closeLog()

	_, err = cfg.LogFile.Write([]byte("after close"))
	testutil.AssertErrorIs(t, err, os.ErrClosed)
}
