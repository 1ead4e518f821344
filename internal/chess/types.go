// Package chess provides the descriptive chess model: colours, pieces,
// files, ranks and a square-addressable board. It is the interchange form
// that the packed position converts to and from.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists the colours in model order.
var Colours = []Colour{White, Black}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	Off   Piece = iota // Not a square on the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// PieceTypes lists the piece types in model order.
var PieceTypes = []Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// Promotions lists the piece types a pawn may promote to.
var Promotions = []Piece{Knight, Bishop, Rook, Queen}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsLegalPromotion reports whether a pawn may promote to p.
func (p Piece) IsLegalPromotion() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// CastlingSide names the side of the board a castling move goes to.
type CastlingSide int

const (
	Kingside CastlingSide = iota
	Queenside
)

// CastlingSides lists the castling sides in model order.
var CastlingSides = []CastlingSide{Kingside, Queenside}

// String returns the string representation of a castling side.
func (s CastlingSide) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// Valid reports whether r is one of '1'..'8'.
func (r Rank) Valid() bool {
	return r >= FirstRank && r <= LastRank
}

// Valid reports whether c is one of 'a'..'h'.
func (c Col) Valid() bool {
	return c >= FirstCol && c <= LastCol
}

// RankIndex converts a rank character to a 0-based index, or -1.
func RankIndex(rank Rank) int {
	if rank.Valid() {
		return int(rank - RankBase)
	}
	return -1
}

// ColIndex converts a column character to a 0-based index, or -1.
func ColIndex(col Col) int {
	if col.Valid() {
		return int(col - ColBase)
	}
	return -1
}

// ToRank converts a 0-based index back to a rank character.
func ToRank(r int) Rank {
	return Rank(r + int(RankBase))
}

// ToCol converts a 0-based index back to a column character.
func ToCol(c int) Col {
	return Col(c + int(ColBase))
}

// HomeRank returns the back rank of a colour.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return FirstRank
	}
	return LastRank
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}
