package packed

import (
	"github.com/lgbarn/intboard-go/internal/chess"
	"github.com/lgbarn/intboard-go/internal/errors"
)

// Castling is a castling side code.
type Castling uint8

// Castling side codes.
const (
	Kingside Castling = iota
	Queenside
	NoCastling
)

// Castlings lists the valid castling sides in ordinal order.
var Castlings = [...]Castling{Kingside, Queenside}

// CastlingOf returns the code for a descriptive castling side.
func CastlingOf(side chess.CastlingSide) (Castling, error) {
	switch side {
	case chess.Kingside:
		return Kingside, nil
	case chess.Queenside:
		return Queenside, nil
	}
	return NoCastling, errors.Wrapf(errors.ErrInvalidArgument, "castling side %d", int(side))
}

// ToChess returns the descriptive castling side.
func (c Castling) ToChess() (chess.CastlingSide, error) {
	switch c {
	case Kingside:
		return chess.Kingside, nil
	case Queenside:
		return chess.Queenside, nil
	}
	return chess.Kingside, errors.Wrapf(errors.ErrInvalidArgument, "castling code %d", c)
}

// Ordinal returns 0 for Kingside and 1 for Queenside. It panics on NoCastling.
func (c Castling) Ordinal() int {
	if !c.IsValid() {
		panic(errors.Wrapf(errors.ErrInvalidArgument, "ordinal of castling code %d", c))
	}
	return int(c)
}

// IsValid reports whether c is Kingside or Queenside.
func (c Castling) IsValid() bool {
	return c < NoCastling
}

// rookTarget is the file the rook lands on.
func (c Castling) rookTarget() File {
	if c == Kingside {
		return FileF
	}
	return FileD
}

// kingTarget is the file the king lands on.
func (c Castling) kingTarget() File {
	if c == Kingside {
		return FileG
	}
	return FileC
}

func (c Castling) String() string {
	switch c {
	case Kingside:
		return "Kingside"
	case Queenside:
		return "Queenside"
	}
	return "NoCastling"
}
