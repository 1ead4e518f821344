package verify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/lgbarn/intboard-go/internal/config"
	inerrors "github.com/lgbarn/intboard-go/internal/errors"
	"github.com/lgbarn/intboard-go/internal/packed"
	"github.com/lgbarn/intboard-go/internal/testutil"
)

// Published perft counts.
var perftTests = []struct {
	name  string
	fen   string
	depth int
	nodes uint64
}{
	{"start depth 1", testutil.StartFEN, 1, 20},
	{"start depth 2", testutil.StartFEN, 2, 400},
	{"start depth 3", testutil.StartFEN, 3, 8902},
	{"kiwipete depth 1", testutil.KiwipeteFEN, 1, 48},
	{"kiwipete depth 2", testutil.KiwipeteFEN, 2, 2039},
	{"endgame depth 3", testutil.EndgameFEN, 3, 2812},
	{"promotions depth 2", testutil.PromotionsFEN, 2, 496},
	{"position 4 depth 2", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
	{"position 5 depth 2", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftTests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.nodes > 5000 {
				t.Skip("skipping deep perft in short mode")
			}
			p, ref, err := Load(tt.fen, nil)
			testutil.AssertNoError(t, err)
			before := p.Clone()

			nodes, err := Perft(context.Background(), p, ref, tt.depth)
			testutil.AssertNoError(t, err)
			if nodes != tt.nodes {
				t.Errorf("Perft(%d) = %d; want %d", tt.depth, nodes, tt.nodes)
			}
			testutil.AssertTrue(t, p.Equal(before), "position changed by perft")
			testutil.AssertEqual(t, p.Key(), before.Key())
			testutil.AssertEqual(t, p.Depth(), 0)
		})
	}
}

func TestRun(t *testing.T) {
	for _, tt := range perftTests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.nodes > 5000 {
				t.Skip("skipping deep perft in short mode")
			}
			p, ref, err := Load(tt.fen, nil)
			testutil.AssertNoError(t, err)

			cfg := config.NewConfigBuilder().
				WithDepth(tt.depth).
				WithWorkers(4).
				WithVerbosity(0).
				Build()
			result, err := Run(context.Background(), p, ref, cfg)
			testutil.AssertNoError(t, err)
			if result.Nodes != tt.nodes {
				t.Errorf("Run() nodes = %d; want %d", result.Nodes, tt.nodes)
			}

			var sum uint64
			for _, root := range result.Roots {
				sum += root.Nodes
			}
			testutil.AssertEqual(t, sum, result.Nodes)
			testutil.AssertEqual(t, p.Depth(), 0)
		})
	}
}

func TestRunRootCounts(t *testing.T) {
	p, ref, err := Load(testutil.KiwipeteFEN, nil)
	testutil.AssertNoError(t, err)

	cfg := config.NewConfigBuilder().WithDepth(2).WithWorkers(3).WithVerbosity(0).Build()
	result, err := Run(context.Background(), p, ref, cfg)
	testutil.AssertNoError(t, err)

	for _, root := range result.Roots {
		child := p.Clone()
		child.MakeMove(root.Move)
		if n := leafCount(t, child); n != root.Nodes {
			t.Errorf("%v: %d nodes; want %d", root.Move, root.Nodes, n)
		}
	}
}

// leafCount runs a one ply perft on p against a fresh reference.
func leafCount(t *testing.T, p *packed.Position) uint64 {
	t.Helper()
	_, ref, err := Load(p.FEN(), nil)
	testutil.AssertNoError(t, err)
	nodes, err := Perft(context.Background(), p, ref, 1)
	testutil.AssertNoError(t, err)
	return nodes
}

func TestRunTracksPositions(t *testing.T) {
	p, ref, err := Load(testutil.StartFEN, nil)
	testutil.AssertNoError(t, err)

	cfg := config.NewConfigBuilder().
		WithDepth(2).
		WithWorkers(2).
		WithPositionTracking(true, 0).
		WithVerbosity(0).
		Build()
	result, err := Run(context.Background(), p, ref, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, result.Unique, 400)
	testutil.AssertEqual(t, result.Duplicates, 0)
}

func TestRunDepthZero(t *testing.T) {
	p, ref, err := Load(testutil.StartFEN, nil)
	testutil.AssertNoError(t, err)

	result, err := Run(context.Background(), p, ref, config.NewConfig())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, result.Nodes, uint64(1))
	testutil.AssertEqual(t, len(result.Roots), 0)
}

func TestRunLogs(t *testing.T) {
	p, ref, err := Load(testutil.StartFEN, nil)
	testutil.AssertNoError(t, err)

	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithDepth(1).
		WithWorkers(2).
		WithVerbosity(2).
		WithLogFile(log).
		Build()
	_, err = Run(context.Background(), p, ref, cfg)
	testutil.AssertNoError(t, err)

	testutil.AssertContains(t, log.String(), "perft 1: 20 nodes")
	testutil.AssertContains(t, log.String(), "(2 workers)\n")
	testutil.AssertContains(t, log.String(), "e2e4: 1\n")
}

func TestRunPositionTableFull(t *testing.T) {
	p, ref, err := Load(testutil.StartFEN, nil)
	testutil.AssertNoError(t, err)

	log := &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithDepth(2).
		WithWorkers(2).
		WithPositionTracking(true, 50).
		WithLogFile(log).
		Build()
	result, err := Run(context.Background(), p, ref, cfg)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, result.Nodes, uint64(400))
	testutil.AssertEqual(t, result.Unique, 50)
	testutil.AssertContains(t, log.String(), "position table full at 50 keys")
}

func TestRunCancelled(t *testing.T) {
	p, ref, err := Load(testutil.StartFEN, nil)
	testutil.AssertNoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.NewConfigBuilder().WithDepth(4).WithWorkers(2).WithVerbosity(0).Build()
	_, err = Run(ctx, p, ref, cfg)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestMismatchReported(t *testing.T) {
	_, ref, err := Load(testutil.CastlingFEN, nil)
	testutil.AssertNoError(t, err)
	// Same pieces, but the packed side has lost every castling right.
	p := packed.MustFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")

	_, err = Perft(context.Background(), p, ref, 1)
	testutil.AssertErrorIs(t, err, inerrors.ErrMismatch)

	var mismatch *inerrors.MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error %v is not a MismatchError", err)
	}
	testutil.AssertEqual(t, mismatch.Stage, "make")
	testutil.AssertTrue(t, mismatch.Path != "", "mismatch path is empty")

	cfg := config.NewConfigBuilder().WithDepth(2).WithWorkers(2).WithVerbosity(0).Build()
	_, err = Run(context.Background(), packed.MustFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1"), ref, cfg)
	testutil.AssertErrorIs(t, err, inerrors.ErrMismatch)
}

func TestLoad(t *testing.T) {
	p, _, err := Load(testutil.StartFEN, []string{"e2e4", "e7e5", "g1f3"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, p.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
	testutil.AssertEqual(t, p.Depth(), 3)

	_, _, err = Load(testutil.StartFEN, []string{"e2e4", "e2e4"})
	testutil.AssertErrorIs(t, err, inerrors.ErrUnknownMove)

	_, _, err = Load("bad", nil)
	testutil.AssertErrorIs(t, err, inerrors.ErrInvalidFEN)
}
