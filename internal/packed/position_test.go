package packed

import (
	"testing"

	"github.com/lgbarn/intboard-go/internal/testutil"
)

// step describes a move by its squares; the pieces are read off the board.
type step struct {
	typ       MoveType
	from, to  Square
	promotion PieceType
}

func buildMove(t *testing.T, p *Position, s step) Move {
	t.Helper()
	if s.typ == MoveNull {
		return NullMove
	}
	piece, ok := p.PieceAt(s.from)
	if !ok {
		t.Fatalf("no piece on %v in %s", s.from, p.FEN())
	}
	captured := NoPiece
	switch s.typ {
	case MoveNormal, MovePromotion:
		captured = p.board[s.to]
	case MoveEnPassant:
		captured = p.board[NewSquare(s.to.File(), s.from.Rank())]
	}
	promotion := s.promotion
	if promotion == 0 {
		promotion = NoPieceType
	}
	m, err := NewMove(s.typ, s.from, s.to, piece, captured, promotion)
	if err != nil {
		t.Fatalf("NewMove(%v %v-%v) error = %v", s.typ, s.from, s.to, err)
	}
	return m
}

func TestMakeUndoScenarios(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		steps []step
		want  string
	}{
		{
			name:  "a2a3 leaves clock at zero",
			fen:   testutil.StartFEN,
			steps: []step{{typ: MoveNormal, from: A2, to: A3}},
			want:  "rnbqkbnr/pppppppp/8/8/8/P7/1PPPPPPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name: "b7b6 returns the move to White",
			fen:  testutil.StartFEN,
			steps: []step{
				{typ: MoveNormal, from: A2, to: A3},
				{typ: MoveNormal, from: B7, to: B6},
			},
			want: "rnbqkbnr/p1pppppp/1p6/8/8/P7/1PPPPPPP/RNBQKBNR w KQkq - 0 2",
		},
		{
			name: "knight move increments clock",
			fen:  testutil.StartFEN,
			steps: []step{
				{typ: MoveNormal, from: A2, to: A3},
				{typ: MoveNormal, from: B7, to: B6},
				{typ: MoveNormal, from: B1, to: C3},
			},
			want: "rnbqkbnr/p1pppppp/1p6/8/8/P1N5/1PPPPPPP/R1BQKBNR b KQkq - 1 2",
		},
		{
			name:  "double push sets en passant",
			fen:   testutil.StartFEN,
			steps: []step{{typ: MovePawnDouble, from: A2, to: A4}},
			want:  "rnbqkbnr/pppppppp/8/8/P7/8/1PPPPPPP/RNBQKBNR b KQkq a3 0 1",
		},
		{
			name: "en passant cleared by next move",
			fen:  testutil.StartFEN,
			steps: []step{
				{typ: MovePawnDouble, from: A2, to: A4},
				{typ: MoveNormal, from: G8, to: F6},
			},
			want: "rnbqkb1r/pppppppp/5n2/8/P7/8/1PPPPPPP/RNBQKBNR w KQkq - 1 2",
		},
		{
			name:  "queenside castle",
			fen:   testutil.CastlingFEN,
			steps: []step{{typ: MoveCastling, from: E1, to: C1}},
			want:  "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name:  "kingside castle",
			fen:   testutil.CastlingFEN,
			steps: []step{{typ: MoveCastling, from: E1, to: G1}},
			want:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name: "black castles after white",
			fen:  testutil.CastlingFEN,
			steps: []step{
				{typ: MoveCastling, from: E1, to: G1},
				{typ: MoveCastling, from: E8, to: C8},
			},
			want: "2kr3r/8/8/8/8/8/8/R4RK1 w - - 2 2",
		},
		{
			name:  "rook move revokes one right",
			fen:   testutil.CastlingFEN,
			steps: []step{{typ: MoveNormal, from: A1, to: A2}},
			want:  "r3k2r/8/8/8/8/8/R7/4K2R b Kkq - 1 1",
		},
		{
			name:  "rook capture revokes both sides' rights",
			fen:   testutil.CastlingFEN,
			steps: []step{{typ: MoveNormal, from: H1, to: H8}},
			want:  "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1",
		},
		{
			name:  "king move revokes both rights",
			fen:   testutil.CastlingFEN,
			steps: []step{{typ: MoveNormal, from: E1, to: E2}},
			want:  "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
		},
		{
			name:  "promotion to queen",
			fen:   testutil.PromotionFEN,
			steps: []step{{typ: MovePromotion, from: A7, to: A8, promotion: Queen}},
			want:  "Q7/6k1/8/8/2K5/8/8/8 b - - 0 1",
		},
		{
			name:  "capturing underpromotion",
			fen:   testutil.PromotionsFEN,
			steps: []step{{typ: MovePromotion, from: G2, to: H1, promotion: Knight}},
			want:  "n1n5/PPPk4/8/8/8/8/4Kp1p/5N1n w - - 0 2",
		},
		{
			name:  "en passant capture",
			fen:   testutil.EnPassantFEN,
			steps: []step{{typ: MoveEnPassant, from: E4, to: D3}},
			want:  "5k2/8/8/8/8/3p4/8/3K4 w - - 0 2",
		},
		{
			name:  "chess960 kingside castle onto the rook square",
			fen:   testutil.Chess960FEN,
			steps: []step{{typ: MoveCastling, from: E1, to: G1}},
			want:  "1r2k1r1/pppppppp/8/8/8/8/PPPPPPPP/1R3RK1 b kq - 1 1",
		},
		{
			name:  "chess960 queenside castle",
			fen:   testutil.Chess960FEN,
			steps: []step{{typ: MoveCastling, from: E1, to: C1}},
			want:  "1r2k1r1/pppppppp/8/8/8/8/PPPPPPPP/2KR2R1 b kq - 1 1",
		},
		{
			name: "null move",
			fen:  testutil.StartFEN,
			steps: []step{
				{typ: MovePawnDouble, from: E2, to: E4},
				{typ: MoveNull},
			},
			want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustFEN(tt.fen)
			original := p.Clone()
			before := []*Position{}
			moves := []Move{}

			for _, s := range tt.steps {
				before = append(before, p.Clone())
				m := buildMove(t, p, s)
				p.MakeMove(m)
				moves = append(moves, m)
				if got, want := p.Key(), p.ComputeKey(); got != want {
					t.Fatalf("after %v: Key() = %#x; want %#x", m, got, want)
				}
			}

			if got := p.FEN(); got != tt.want {
				t.Errorf("FEN() = %q; want %q", got, tt.want)
			}
			if got := p.Depth(); got != len(tt.steps) {
				t.Errorf("Depth() = %d; want %d", got, len(tt.steps))
			}

			for i := len(moves) - 1; i >= 0; i-- {
				p.UndoMove(moves[i])
				if !p.Equal(before[i]) {
					t.Errorf("after undo of %v: %s; want %s", moves[i], p.FEN(), before[i].FEN())
				}
				if p.Key() != before[i].Key() {
					t.Errorf("after undo of %v: Key() = %#x; want %#x", moves[i], p.Key(), before[i].Key())
				}
			}
			testutil.AssertEqual(t, p.ToBoard(), original.ToBoard(), "board after undoing all moves")
			testutil.AssertEqual(t, p.Depth(), 0)
		})
	}
}

func TestMakeMoveQueries(t *testing.T) {
	t.Run("active colour and clocks", func(t *testing.T) {
		p := MustFEN(testutil.StartFEN)

		p.MakeMove(buildMove(t, p, step{typ: MoveNormal, from: A2, to: A3}))
		if p.ActiveColour() != Black || p.HalfMoveClock() != 0 {
			t.Errorf("after a2a3: colour %v clock %d; want Black 0", p.ActiveColour(), p.HalfMoveClock())
		}

		p.MakeMove(buildMove(t, p, step{typ: MoveNormal, from: B7, to: B6}))
		if p.ActiveColour() != White || p.FullMoveNumber() != 2 {
			t.Errorf("after b7b6: colour %v move %d; want White 2", p.ActiveColour(), p.FullMoveNumber())
		}

		p.MakeMove(buildMove(t, p, step{typ: MoveNormal, from: B1, to: C3}))
		if p.HalfMoveClock() != 1 {
			t.Errorf("after Nb1c3: clock %d; want 1", p.HalfMoveClock())
		}
	})

	t.Run("en passant set and cleared by undo", func(t *testing.T) {
		p := MustFEN(testutil.StartFEN)
		m := buildMove(t, p, step{typ: MovePawnDouble, from: A2, to: A4})

		p.MakeMove(m)
		if sq, ok := p.EnPassant(); !ok || sq != A3 {
			t.Errorf("EnPassant() = (%v, %v); want (a3, true)", sq, ok)
		}

		p.UndoMove(m)
		if sq, ok := p.EnPassant(); ok {
			t.Errorf("EnPassant() after undo = (%v, %v); want none", sq, ok)
		}
	})

	t.Run("queenside castle rights", func(t *testing.T) {
		p := MustFEN(testutil.CastlingFEN)
		m := buildMove(t, p, step{typ: MoveCastling, from: E1, to: C1})

		p.MakeMove(m)
		if f, ok := p.CastlingFile(White, Queenside); ok {
			t.Errorf("CastlingFile(White, Queenside) = %v after castling; want none", f)
		}
		if f, ok := p.CastlingFile(Black, Queenside); !ok || f != FileA {
			t.Errorf("CastlingFile(Black, Queenside) = (%v, %v); want (a, true)", f, ok)
		}

		p.UndoMove(m)
		for _, colour := range Colours {
			for _, side := range Castlings {
				want := FileH
				if side == Queenside {
					want = FileA
				}
				if f, ok := p.CastlingFile(colour, side); !ok || f != want {
					t.Errorf("CastlingFile(%v, %v) after undo = (%v, %v); want (%v, true)", colour, side, f, ok, want)
				}
			}
		}
	})

	t.Run("promotion places and removes queen", func(t *testing.T) {
		p := MustFEN(testutil.PromotionFEN)
		m := buildMove(t, p, step{typ: MovePromotion, from: A7, to: A8, promotion: Queen})

		p.MakeMove(m)
		if piece, ok := p.PieceAt(A8); !ok || piece != WhiteQueen {
			t.Errorf("PieceAt(a8) = (%v, %v); want (Q, true)", piece, ok)
		}

		p.UndoMove(m)
		if piece, ok := p.PieceAt(A7); !ok || piece != WhitePawn {
			t.Errorf("PieceAt(a7) after undo = (%v, %v); want (P, true)", piece, ok)
		}
		if piece, ok := p.PieceAt(A8); ok {
			t.Errorf("PieceAt(a8) after undo = %v; want empty", piece)
		}
	})

	t.Run("en passant removes the passed pawn", func(t *testing.T) {
		p := MustFEN(testutil.EnPassantFEN)
		m := buildMove(t, p, step{typ: MoveEnPassant, from: E4, to: D3})
		testutil.AssertEqual(t, m.Captured(), WhitePawn)

		p.MakeMove(m)
		if piece, ok := p.PieceAt(D4); ok {
			t.Errorf("PieceAt(d4) = %v; want empty", piece)
		}
		if piece, _ := p.PieceAt(D3); piece != BlackPawn {
			t.Errorf("PieceAt(d3) = %v; want p", piece)
		}

		p.UndoMove(m)
		if piece, _ := p.PieceAt(D4); piece != WhitePawn {
			t.Errorf("PieceAt(d4) after undo = %v; want P", piece)
		}
		if sq, ok := p.EnPassant(); !ok || sq != D3 {
			t.Errorf("EnPassant() after undo = (%v, %v); want (d3, true)", sq, ok)
		}
	})
}

func TestPositionAccessorsOffBoard(t *testing.T) {
	p := NewPosition()
	if _, ok := p.PieceAt(NoSquare); ok {
		t.Error("PieceAt(NoSquare) reported a piece")
	}
	if _, ok := p.CastlingFile(NoColour, Kingside); ok {
		t.Error("CastlingFile(NoColour) reported a right")
	}
	if _, ok := p.CastlingFile(White, NoCastling); ok {
		t.Error("CastlingFile(NoCastling) reported a right")
	}
	testutil.AssertEqual(t, p.FEN(), "8/8/8/8/8/8/8/8 w - - 0 1")
}

func TestClone(t *testing.T) {
	p := MustFEN(testutil.StartFEN)
	m := buildMove(t, p, step{typ: MovePawnDouble, from: E2, to: E4})
	p.MakeMove(m)

	c := p.Clone()
	c.UndoMove(m)

	if p.Depth() != 1 || c.Depth() != 0 {
		t.Errorf("Depth() = (%d, %d); want (1, 0)", p.Depth(), c.Depth())
	}
	if p.Equal(c) {
		t.Error("undo on clone changed the original")
	}
	if _, ok := p.EnPassant(); !ok {
		t.Error("original lost its en-passant square")
	}
}

func BenchmarkMakeUndo(b *testing.B) {
	benchmarks := []struct {
		name string
		fen  string
		from Square
		to   Square
		typ  MoveType
	}{
		{"quiet", testutil.StartFEN, G1, F3, MoveNormal},
		{"double push", testutil.StartFEN, E2, E4, MovePawnDouble},
		{"castle", testutil.CastlingFEN, E1, G1, MoveCastling},
		{"capture", testutil.CastlingFEN, H1, H8, MoveNormal},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			p := MustFEN(bm.fen)
			piece, _ := p.PieceAt(bm.from)
			captured := NoPiece
			if bm.typ == MoveNormal {
				captured = p.board[bm.to]
			}
			m := MustMove(bm.typ, bm.from, bm.to, piece, captured, NoPieceType)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.MakeMove(m)
				p.UndoMove(m)
			}
		})
	}
}
