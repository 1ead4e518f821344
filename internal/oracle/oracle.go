// Package oracle adapts github.com/notnil/chess as a reference move
// generator. It produces packed moves from the reference's legal moves and
// checks a packed position against the reference position.
package oracle

import (
	"fmt"

	"github.com/notnil/chess"

	"github.com/lgbarn/intboard-go/internal/errors"
	"github.com/lgbarn/intboard-go/internal/packed"
)

// Load parses a FEN string into a reference position.
func Load(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "reference: %v", err)
	}
	return chess.NewGame(opt).Position(), nil
}

// Pair is a legal move in both encodings.
type Pair struct {
	Move packed.Move
	Ref  *chess.Move
}

// Moves returns the legal moves of ref translated to packed moves.
func Moves(ref *chess.Position) ([]Pair, error) {
	valid := ref.ValidMoves()
	pairs := make([]Pair, 0, len(valid))
	for _, m := range valid {
		pm, err := Translate(ref, m)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Move: pm, Ref: m})
	}
	return pairs, nil
}

// Find resolves coordinate notation such as "e7e8q" against the legal
// moves of ref.
func Find(ref *chess.Position, text string) (Pair, error) {
	pairs, err := Moves(ref)
	if err != nil {
		return Pair{}, err
	}
	for _, pair := range pairs {
		if pair.Move.String() == text {
			return pair, nil
		}
	}
	return Pair{}, errors.Wrapf(errors.ErrUnknownMove, "%q", text)
}

// Translate encodes a reference move played from ref.
func Translate(ref *chess.Position, m *chess.Move) (packed.Move, error) {
	board := ref.Board()
	from, to := packed.Square(m.S1()), packed.Square(m.S2())

	piece, ok := pieceOf(board.Piece(m.S1()))
	if !ok {
		return packed.NoMove, errors.Wrapf(errors.ErrInvalidArgument, "reference move %v from empty square", m)
	}
	captured, _ := pieceOf(board.Piece(m.S2()))

	switch {
	case m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle):
		return packed.NewMove(packed.MoveCastling, from, to, piece, packed.NoPiece, packed.NoPieceType)
	case m.HasTag(chess.EnPassant):
		victim := packed.MakePiece(piece.Colour().Opposite(), packed.Pawn)
		return packed.NewMove(packed.MoveEnPassant, from, to, piece, victim, packed.NoPieceType)
	case m.Promo() != chess.NoPieceType:
		promotion, ok := pieceTypeOf(m.Promo())
		if !ok {
			return packed.NoMove, errors.Wrapf(errors.ErrInvalidArgument, "reference promotion %v", m.Promo())
		}
		return packed.NewMove(packed.MovePromotion, from, to, piece, captured, promotion)
	case piece.Type() == packed.Pawn && (to.Rank()-from.Rank() == 2 || from.Rank()-to.Rank() == 2):
		return packed.NewMove(packed.MovePawnDouble, from, to, piece, packed.NoPiece, packed.NoPieceType)
	}
	return packed.NewMove(packed.MoveNormal, from, to, piece, captured, packed.NoPieceType)
}

// Compare reports the first difference between p and ref as an
// ErrMismatch. Clocks are not compared.
func Compare(p *packed.Position, ref *chess.Position) error {
	board := ref.Board()
	for sq := packed.A1; sq <= packed.H8; sq++ {
		want, _ := pieceOf(board.Piece(chess.Square(sq)))
		got, _ := p.PieceAt(sq)
		if got != want {
			return mismatch("square %v holds %v, reference %v", sq, got, want)
		}
	}

	if got, want := p.ActiveColour(), colourOf(ref.Turn()); got != want {
		return mismatch("side to move %v, reference %v", got, want)
	}

	rights := ref.CastleRights()
	for _, colour := range packed.Colours {
		for _, side := range packed.Castlings {
			_, got := p.CastlingFile(colour, side)
			want := rights.CanCastle(refColour(colour), refSide(side))
			if got != want {
				return mismatch("%v %v castling %v, reference %v", colour, side, got, want)
			}
		}
	}

	// The reference may drop an en-passant square no pawn can use, so only
	// a square it does report is checked.
	if want := ref.EnPassantSquare(); want != chess.NoSquare {
		if got, _ := p.EnPassant(); got != packed.Square(want) {
			return mismatch("en passant %v, reference %v", got, packed.Square(want))
		}
	}
	return nil
}

func mismatch(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrMismatch)
}

var pieceTypes = map[chess.PieceType]packed.PieceType{
	chess.Pawn:   packed.Pawn,
	chess.Knight: packed.Knight,
	chess.Bishop: packed.Bishop,
	chess.Rook:   packed.Rook,
	chess.Queen:  packed.Queen,
	chess.King:   packed.King,
}

func pieceTypeOf(t chess.PieceType) (packed.PieceType, bool) {
	pt, ok := pieceTypes[t]
	return pt, ok
}

func pieceOf(p chess.Piece) (packed.Piece, bool) {
	if p == chess.NoPiece {
		return packed.NoPiece, false
	}
	t, ok := pieceTypeOf(p.Type())
	if !ok {
		return packed.NoPiece, false
	}
	return packed.MakePiece(colourOf(p.Color()), t), true
}

func colourOf(c chess.Color) packed.Colour {
	switch c {
	case chess.White:
		return packed.White
	case chess.Black:
		return packed.Black
	}
	return packed.NoColour
}

func refColour(c packed.Colour) chess.Color {
	if c == packed.White {
		return chess.White
	}
	return chess.Black
}

func refSide(s packed.Castling) chess.Side {
	if s == packed.Kingside {
		return chess.KingSide
	}
	return chess.QueenSide
}
