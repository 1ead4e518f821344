// Package packed implements a reversible, integer-encoded chess position.
//
// Colours, piece types, pieces, files, castling sides, squares and moves
// are small integers with in-band sentinel values so the board array stays
// dense. Position applies and exactly undoes moves through an explicit
// history stack. Conversions to and from the descriptive model in package
// chess happen only at the boundary and report ErrInvalidArgument when
// handed an absent or out-of-domain value.
package packed

import (
	"github.com/lgbarn/intboard-go/internal/chess"
	"github.com/lgbarn/intboard-go/internal/errors"
)

// PieceType is a 3-bit piece type code.
type PieceType uint8

// Piece type codes. NoPieceType shares the bit width but is never a valid
// type. Sliding pieces are exactly the codes with bit 2 set.
const (
	Pawn        PieceType = 1
	Knight      PieceType = 2
	King        PieceType = 3
	NoPieceType PieceType = 4
	Bishop      PieceType = 5
	Rook        PieceType = 6
	Queen       PieceType = 7
)

// TypeMask extracts the piece type bits from a Piece.
const TypeMask = 0x7

// PieceTypes lists the valid piece types in ordinal order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// Promotions lists the piece types a pawn may promote to.
var Promotions = [...]PieceType{Knight, Bishop, Rook, Queen}

var pieceTypeOrdinals = [8]int{-1, 0, 1, 5, -1, 2, 3, 4}

var pieceTypeToChess = [8]chess.Piece{
	chess.Off, chess.Pawn, chess.Knight, chess.King,
	chess.Off, chess.Bishop, chess.Rook, chess.Queen,
}

// PieceTypeOf returns the code for a descriptive piece type.
func PieceTypeOf(piece chess.Piece) (PieceType, error) {
	switch piece {
	case chess.Pawn:
		return Pawn, nil
	case chess.Knight:
		return Knight, nil
	case chess.Bishop:
		return Bishop, nil
	case chess.Rook:
		return Rook, nil
	case chess.Queen:
		return Queen, nil
	case chess.King:
		return King, nil
	}
	return NoPieceType, errors.Wrapf(errors.ErrInvalidArgument, "piece type %v", piece)
}

// PromotionOf is like PieceTypeOf but accepts only knight, bishop, rook
// and queen.
func PromotionOf(piece chess.Piece) (PieceType, error) {
	t, err := PieceTypeOf(piece)
	if err != nil {
		return NoPieceType, err
	}
	if !t.IsValidPromotion() {
		return NoPieceType, errors.Wrapf(errors.ErrInvalidArgument, "promotion to %v", piece)
	}
	return t, nil
}

// ToChess returns the descriptive piece type.
func (t PieceType) ToChess() (chess.Piece, error) {
	if !t.IsValid() {
		return chess.Off, errors.Wrapf(errors.ErrInvalidArgument, "piece type code %d", t)
	}
	return pieceTypeToChess[t], nil
}

// Ordinal returns the dense index of t, following the order of
// chess.PieceTypes. It panics if t is not a valid piece type.
func (t PieceType) Ordinal() int {
	if !t.IsValid() {
		panic(errors.Wrapf(errors.ErrInvalidArgument, "ordinal of piece type code %d", t))
	}
	return pieceTypeOrdinals[t]
}

// IsValid reports whether t is one of the six piece types.
func (t PieceType) IsValid() bool {
	return t != 0 && t != NoPieceType && t <= Queen
}

// IsValidPromotion reports whether a pawn may promote to t.
func (t PieceType) IsValidPromotion() bool {
	switch t {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// IsSliding reports whether t moves along rays: bishop, rook or queen.
func (t PieceType) IsSliding() bool {
	return t.IsValid() && t&0x4 != 0
}

// Letter returns the lower-case letter of t, '-' for NoPieceType.
func (t PieceType) Letter() byte {
	if !t.IsValid() {
		return '-'
	}
	return "?pnk?brq"[t]
}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case NoPieceType:
		return "NoPieceType"
	}
	return "Unknown"
}
