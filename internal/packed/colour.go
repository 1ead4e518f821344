package packed

import (
	"github.com/lgbarn/intboard-go/internal/chess"
	"github.com/lgbarn/intboard-go/internal/errors"
)

// Colour is a side code.
type Colour uint8

// Colour codes.
const (
	White Colour = iota
	Black
	NoColour
)

// Colours lists the valid colours in ordinal order.
var Colours = [...]Colour{White, Black}

// ColourOf returns the code for a descriptive colour.
func ColourOf(colour chess.Colour) (Colour, error) {
	switch colour {
	case chess.White:
		return White, nil
	case chess.Black:
		return Black, nil
	}
	return NoColour, errors.Wrapf(errors.ErrInvalidArgument, "colour %d", int(colour))
}

// ToChess returns the descriptive colour.
func (c Colour) ToChess() (chess.Colour, error) {
	switch c {
	case White:
		return chess.White, nil
	case Black:
		return chess.Black, nil
	}
	return chess.White, errors.Wrapf(errors.ErrInvalidArgument, "colour code %d", c)
}

// Ordinal returns 0 for White and 1 for Black. It panics on NoColour.
func (c Colour) Ordinal() int {
	if !c.IsValid() {
		panic(errors.Wrapf(errors.ErrInvalidArgument, "ordinal of colour code %d", c))
	}
	return int(c)
}

// IsValid reports whether c is White or Black.
func (c Colour) IsValid() bool {
	return c < NoColour
}

// Opposite returns the other colour. Only defined for valid colours.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "NoColour"
}
