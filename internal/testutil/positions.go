package testutil

import (
	"testing"

	"github.com/lgbarn/intboard-go/internal/chess"
	"github.com/lgbarn/intboard-go/internal/fen"
)

// Well-known positions used across packages.
const (
	StartFEN      = fen.InitialFEN
	KiwipeteFEN   = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	CastlingFEN   = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	PromotionFEN  = "8/P5k1/8/8/2K5/8/8/8 w - - 0 1"
	EnPassantFEN  = "5k2/8/8/8/3Pp3/8/8/3K4 b - d3 0 1"
	Chess960FEN   = "1r2k1r1/pppppppp/8/8/8/8/PPPPPPPP/1R2K1R1 w KQkq - 0 1"
	EndgameFEN    = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	PromotionsFEN = "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
)

// Positions maps fixture names to FEN strings.
var Positions = map[string]string{
	"start":      StartFEN,
	"kiwipete":   KiwipeteFEN,
	"castling":   CastlingFEN,
	"promotion":  PromotionFEN,
	"en passant": EnPassantFEN,
	"chess960":   Chess960FEN,
	"endgame":    EndgameFEN,
	"promotions": PromotionsFEN,
}

// MustBoard parses a FEN string, calling t.Fatal on failure.
func MustBoard(t testing.TB, fenStr string) *chess.Board {
	t.Helper()
	board, err := fen.NewBoardFromFEN(fenStr)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fenStr, err)
	}
	return board
}
