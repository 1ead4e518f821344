package packed

import (
	"github.com/lgbarn/intboard-go/internal/errors"
)

// MoveType discriminates the kinds of move a Move encodes.
type MoveType uint8

// Move types.
const (
	MoveNormal MoveType = iota
	MovePawnDouble
	MovePromotion
	MoveEnPassant
	MoveCastling
	MoveNull
	NoMoveType
)

func (t MoveType) String() string {
	switch t {
	case MoveNormal:
		return "Normal"
	case MovePawnDouble:
		return "PawnDouble"
	case MovePromotion:
		return "Promotion"
	case MoveEnPassant:
		return "EnPassant"
	case MoveCastling:
		return "Castling"
	case MoveNull:
		return "Null"
	}
	return "NoMoveType"
}

// Move packs a move into one integer:
//
//	bits  0-2   move type
//	bits  3-9   origin square
//	bits 10-16  destination square
//	bits 17-21  moving piece
//	bits 22-26  captured piece, NoPiece if none
//	bits 27-29  promotion type, NoPieceType if none
//
// For castling the destination is the square the king lands on.
type Move uint32

const (
	moveTypeShift  = 0
	moveFromShift  = 3
	moveToShift    = 10
	movePieceShift = 17
	moveCapShift   = 22
	movePromoShift = 27

	moveTypeMask   = 0x7
	moveSquareMask = 0x7f
	movePieceMask  = 0x1f
	movePromoMask  = 0x7
)

func pack(t MoveType, from, to Square, piece, captured Piece, promotion PieceType) Move {
	return Move(t)<<moveTypeShift |
		Move(from)<<moveFromShift |
		Move(to)<<moveToShift |
		Move(piece)<<movePieceShift |
		Move(captured)<<moveCapShift |
		Move(promotion)<<movePromoShift
}

// Sentinel moves.
const (
	NoMove = Move(NoMoveType)<<moveTypeShift |
		Move(NoSquare)<<moveFromShift |
		Move(NoSquare)<<moveToShift |
		Move(NoPiece)<<movePieceShift |
		Move(NoPiece)<<moveCapShift |
		Move(NoPieceType)<<movePromoShift

	// NullMove passes the turn without moving a piece.
	NullMove = Move(MoveNull)<<moveTypeShift |
		Move(NoSquare)<<moveFromShift |
		Move(NoSquare)<<moveToShift |
		Move(NoPiece)<<movePieceShift |
		Move(NoPiece)<<moveCapShift |
		Move(NoPieceType)<<movePromoShift
)

// NewMove builds a move after checking that every field is in range and
// consistent with the move type. It does not check legality.
func NewMove(t MoveType, from, to Square, piece, captured Piece, promotion PieceType) (Move, error) {
	if t == MoveNull {
		if from != NoSquare || to != NoSquare || piece != NoPiece || captured != NoPiece || promotion != NoPieceType {
			return NoMove, moveError("null move with payload")
		}
		return NullMove, nil
	}
	if t >= NoMoveType {
		return NoMove, moveError("move type %d", t)
	}
	if !from.IsValid() || !to.IsValid() || from == to && t != MoveCastling {
		return NoMove, moveError("squares %v-%v", from, to)
	}
	if !piece.IsValid() {
		return NoMove, moveError("moving piece %d", piece)
	}
	if captured != NoPiece {
		if !captured.IsValid() || captured.Colour() == piece.Colour() || captured.Type() == King {
			return NoMove, moveError("captured piece %d", captured)
		}
	}
	if t == MovePromotion && !promotion.IsValidPromotion() || t != MovePromotion && promotion != NoPieceType {
		return NoMove, moveError("promotion %v on %v move", promotion, t)
	}

	switch t {
	case MovePawnDouble, MovePromotion:
		if piece.Type() != Pawn {
			return NoMove, moveError("%v move by %v", t, piece)
		}
		if t == MovePawnDouble && captured != NoPiece {
			return NoMove, moveError("capture on %v move", t)
		}
	case MoveEnPassant:
		if piece.Type() != Pawn || captured != MakePiece(piece.Colour().Opposite(), Pawn) {
			return NoMove, moveError("en passant %v takes %v", piece, captured)
		}
	case MoveCastling:
		if piece.Type() != King || captured != NoPiece || from.Rank() != to.Rank() {
			return NoMove, moveError("castling by %v to %v", piece, to)
		}
		if f := to.File(); f != Kingside.kingTarget() && f != Queenside.kingTarget() {
			return NoMove, moveError("castling to %v", to)
		}
	}

	return pack(t, from, to, piece, captured, promotion), nil
}

// MustMove is like NewMove but panics on error.
func MustMove(t MoveType, from, to Square, piece, captured Piece, promotion PieceType) Move {
	m, err := NewMove(t, from, to, piece, captured, promotion)
	if err != nil {
		panic(err)
	}
	return m
}

func moveError(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrInvalidArgument, "move: "+format, args...)
}

// Type returns the move type.
func (m Move) Type() MoveType {
	return MoveType(m >> moveTypeShift & moveTypeMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m >> moveFromShift & moveSquareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m >> moveToShift & moveSquareMask)
}

// Piece returns the moving piece.
func (m Move) Piece() Piece {
	return Piece(m >> movePieceShift & movePieceMask)
}

// Captured returns the captured piece, NoPiece if none.
func (m Move) Captured() Piece {
	return Piece(m >> moveCapShift & movePieceMask)
}

// Promotion returns the promotion type, NoPieceType if none.
func (m Move) Promotion() PieceType {
	return PieceType(m >> movePromoShift & movePromoMask)
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	return m.Captured() != NoPiece
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type() == MovePromotion
}

// String returns coordinate notation, e.g. "e7e8q". The null move is "0000".
func (m Move) String() string {
	switch m.Type() {
	case MoveNull:
		return "0000"
	case NoMoveType:
		return "-"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Letter())
	}
	return s
}
