// Package verify checks a packed Position against a reference move
// generator. Every legal move is made and undone; after each step the
// position must match the reference and obey the clock, en-passant and
// key invariants.
package verify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/notnil/chess"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/intboard-go/internal/config"
	"github.com/lgbarn/intboard-go/internal/errors"
	"github.com/lgbarn/intboard-go/internal/hashing"
	"github.com/lgbarn/intboard-go/internal/oracle"
	"github.com/lgbarn/intboard-go/internal/packed"
	"github.com/lgbarn/intboard-go/internal/worker"
)

// RootCount is the number of leaves below one root move.
type RootCount struct {
	Move  packed.Move
	Nodes uint64
}

// Result summarises a perft run.
type Result struct {
	Depth      int
	Nodes      uint64
	Roots      []RootCount
	Unique     int // distinct leaf keys, 0 unless tracked
	Duplicates int
	Elapsed    time.Duration
}

// Load builds the packed and reference positions for fen and replays
// moves, given in coordinate notation, on both.
func Load(fen string, moves []string) (*packed.Position, *chess.Position, error) {
	p, err := packed.FromFEN(fen)
	if err != nil {
		return nil, nil, err
	}
	ref, err := oracle.Load(fen)
	if err != nil {
		return nil, nil, err
	}
	if err := oracle.Compare(p, ref); err != nil {
		return nil, nil, &errors.MismatchError{Err: err, Want: ref.String(), Got: p.FEN(), Stage: "load"}
	}

	for i, text := range moves {
		pair, err := oracle.Find(ref, text)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "move %d", i+1)
		}
		p.MakeMove(pair.Move)
		ref = ref.Update(pair.Ref)
		if err := oracle.Compare(p, ref); err != nil {
			path := strings.Join(moves[:i+1], " ")
			return nil, nil, &errors.MismatchError{Err: err, Path: path, Want: ref.String(), Got: p.FEN(), Stage: "make"}
		}
	}
	return p, ref, nil
}

// Perft counts the leaves depth plies below p, checking every step. It
// runs on the calling goroutine. On success p is left as it was found.
func Perft(ctx context.Context, p *packed.Position, ref *chess.Position, depth int) (uint64, error) {
	w := &walker{ctx: ctx, pos: p}
	return w.walk(ref, depth)
}

// Run splits the search at the root: each root move is searched by a pool
// worker on its own clone of p. The first failure cancels the rest.
func Run(ctx context.Context, p *packed.Position, ref *chess.Position, cfg *config.Config) (*Result, error) {
	start := time.Now()
	depth := cfg.Perft.Depth
	result := &Result{Depth: depth}
	if depth == 0 {
		result.Nodes = 1
		return result, nil
	}

	pairs, err := oracle.Moves(ref)
	if err != nil {
		return nil, err
	}

	var seen *hashing.ThreadSafePositionSet
	if cfg.Perft.TrackPositions {
		seen = hashing.NewThreadSafePositionSet(cfg.Perft.MaxPositions)
	}

	g, gctx := errgroup.WithContext(ctx)
	wctx, cancel := context.WithCancel(gctx)
	defer cancel()

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		w := &walker{ctx: wctx, pos: item.Position, seen: seen}
		nodes, err := w.step(ref, pairs[item.Index], item.Depth)
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: nodes, Err: err}
	}, worker.WithWorkers(cfg.Perft.Workers), worker.WithBufferSize(len(pairs)))
	pool.Start()

	g.Go(func() error {
		defer pool.Close()
		for i, pair := range pairs {
			item := worker.WorkItem{Position: p.Clone(), Move: pair.Move, Depth: depth - 1, Index: i}
			if pool.SubmitContext(wctx, item) != nil {
				break
			}
		}
		return nil
	})

	result.Roots = make([]RootCount, len(pairs))
	g.Go(func() error {
		var first error
		for r := range pool.Results() {
			if r.Err != nil {
				if first == nil {
					first = r.Err
					pool.Stop()
					cancel()
				}
				continue
			}
			result.Roots[r.Index] = RootCount{Move: r.Move, Nodes: r.Nodes}
			cfg.Logf(2, "%v: %d\n", r.Move, r.Nodes)
		}
		return first
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, root := range result.Roots {
		result.Nodes += root.Nodes
	}
	if seen != nil {
		result.Unique = seen.UniqueCount()
		result.Duplicates = seen.DuplicateCount()
		if seen.IsFull() {
			cfg.Logf(1, "position table full at %d keys\n", result.Unique)
		}
	}
	result.Elapsed = time.Since(start)
	cfg.Logf(1, "perft %d: %d nodes in %v (%d workers)\n", depth, result.Nodes, result.Elapsed, pool.NumWorkers())
	return result, nil
}

// walker holds the state of one depth-first walk. It owns pos.
type walker struct {
	ctx  context.Context
	pos  *packed.Position
	path []packed.Move
	seen *hashing.ThreadSafePositionSet
}

func (w *walker) walk(ref *chess.Position, depth int) (uint64, error) {
	if depth == 0 {
		if w.seen != nil {
			w.seen.CheckAndAdd(w.pos.Key())
		}
		return 1, nil
	}
	if err := w.ctx.Err(); err != nil {
		return 0, err
	}

	pairs, err := oracle.Moves(ref)
	if err != nil {
		return 0, err
	}
	var nodes uint64
	for _, pair := range pairs {
		n, err := w.step(ref, pair, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// step makes pair, walks depth plies below it and undoes it.
func (w *walker) step(ref *chess.Position, pair oracle.Pair, depth int) (uint64, error) {
	p := w.pos
	m := pair.Move
	mover := p.ActiveColour()
	key, half, full := p.Key(), p.HalfMoveClock(), p.FullMoveNumber()

	p.MakeMove(m)
	w.path = append(w.path, m)
	child := ref.Update(pair.Ref)

	if err := w.checkMade(child, m, mover, half, full); err != nil {
		return 0, w.fail("make", child, err)
	}

	nodes, err := w.walk(child, depth)
	if err != nil {
		return 0, err
	}

	p.UndoMove(m)
	if err := w.checkUndone(ref, key, half, full); err != nil {
		return 0, w.fail("undo", ref, err)
	}
	w.path = w.path[:len(w.path)-1]
	return nodes, nil
}

func (w *walker) checkMade(ref *chess.Position, m packed.Move, mover packed.Colour, half, full int) error {
	p := w.pos
	if err := oracle.Compare(p, ref); err != nil {
		return err
	}
	if p.Key() != p.ComputeKey() {
		return invariant("incremental key %#x, computed %#x", p.Key(), p.ComputeKey())
	}

	wantHalf := half + 1
	if m.Piece().Type() == packed.Pawn || m.IsCapture() {
		wantHalf = 0
	}
	if p.HalfMoveClock() != wantHalf {
		return invariant("half-move clock %d, want %d", p.HalfMoveClock(), wantHalf)
	}
	wantFull := full
	if mover == packed.Black {
		wantFull++
	}
	if p.FullMoveNumber() != wantFull {
		return invariant("full-move number %d, want %d", p.FullMoveNumber(), wantFull)
	}

	_, hasEP := p.EnPassant()
	if hasEP != (m.Type() == packed.MovePawnDouble) {
		return invariant("en passant set %v after %v move", hasEP, m.Type())
	}
	return nil
}

func (w *walker) checkUndone(ref *chess.Position, key uint64, half, full int) error {
	p := w.pos
	if err := oracle.Compare(p, ref); err != nil {
		return err
	}
	if p.Key() != key {
		return invariant("key %#x after undo, want %#x", p.Key(), key)
	}
	if p.HalfMoveClock() != half || p.FullMoveNumber() != full {
		return invariant("clocks %d/%d after undo, want %d/%d", p.HalfMoveClock(), p.FullMoveNumber(), half, full)
	}
	return nil
}

func (w *walker) fail(stage string, ref *chess.Position, err error) error {
	moves := make([]string, len(w.path))
	for i, m := range w.path {
		moves[i] = m.String()
	}
	return &errors.MismatchError{
		Err:   err,
		Path:  strings.Join(moves, " "),
		Want:  ref.String(),
		Got:   w.pos.FEN(),
		Stage: stage,
	}
}

func invariant(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrMismatch)
}
