package packed

import (
	"github.com/lgbarn/intboard-go/internal/chess"
	"github.com/lgbarn/intboard-go/internal/errors"
)

// Square is a board cell code, rank*8 + file.
type Square uint8

// Square codes. NoSquare is the sentinel.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare
)

// NewSquare returns the square on file f and 0-based rank.
func NewSquare(f File, rank int) Square {
	return Square(rank<<3 | int(f))
}

// SquareOf returns the code for descriptive coordinates.
func SquareOf(col chess.Col, rank chess.Rank) (Square, error) {
	f, err := FileOf(col)
	if err != nil {
		return NoSquare, err
	}
	if !rank.Valid() {
		return NoSquare, errors.Wrapf(errors.ErrInvalidArgument, "rank %q", byte(rank))
	}
	return NewSquare(f, chess.RankIndex(rank)), nil
}

// ParseSquare parses coordinate notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidArgument, "square %q", s)
	}
	return SquareOf(chess.Col(s[0]), chess.Rank(s[1]))
}

// ToChess returns the descriptive coordinates of sq.
func (sq Square) ToChess() (chess.Col, chess.Rank, error) {
	if !sq.IsValid() {
		return 0, 0, errors.Wrapf(errors.ErrInvalidArgument, "square code %d", sq)
	}
	return chess.ToCol(int(sq.File())), chess.ToRank(sq.Rank()), nil
}

// Ordinal returns the index of sq. It panics on NoSquare.
func (sq Square) Ordinal() int {
	if !sq.IsValid() {
		panic(errors.Wrapf(errors.ErrInvalidArgument, "ordinal of square code %d", sq))
	}
	return int(sq)
}

// IsValid reports whether sq is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// File returns the file of sq.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the 0-based rank of sq.
func (sq Square) Rank() int {
	return int(sq >> 3)
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.File().String() + string(rune('1'+sq.Rank()))
}
