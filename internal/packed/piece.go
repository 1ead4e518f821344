package packed

import (
	"github.com/lgbarn/intboard-go/internal/chess"
	"github.com/lgbarn/intboard-go/internal/errors"
)

// Piece packs a colour and a piece type as colour<<3 | type.
type Piece uint8

const colourShift = 3

// Piece codes. NoPiece carries NoColour and NoPieceType so that its
// accessors yield the sentinels of those encodings.
const (
	WhitePawn   = Piece(White)<<colourShift | Piece(Pawn)
	WhiteKnight = Piece(White)<<colourShift | Piece(Knight)
	WhiteBishop = Piece(White)<<colourShift | Piece(Bishop)
	WhiteRook   = Piece(White)<<colourShift | Piece(Rook)
	WhiteQueen  = Piece(White)<<colourShift | Piece(Queen)
	WhiteKing   = Piece(White)<<colourShift | Piece(King)
	BlackPawn   = Piece(Black)<<colourShift | Piece(Pawn)
	BlackKnight = Piece(Black)<<colourShift | Piece(Knight)
	BlackBishop = Piece(Black)<<colourShift | Piece(Bishop)
	BlackRook   = Piece(Black)<<colourShift | Piece(Rook)
	BlackQueen  = Piece(Black)<<colourShift | Piece(Queen)
	BlackKing   = Piece(Black)<<colourShift | Piece(King)

	NoPiece = Piece(NoColour)<<colourShift | Piece(NoPieceType)
)

// Pieces lists the valid pieces in ordinal order.
var Pieces = [...]Piece{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}

// MakePiece combines a colour and a piece type.
func MakePiece(colour Colour, t PieceType) Piece {
	return Piece(colour)<<colourShift | Piece(t)
}

// PieceOf returns the code for a descriptive coloured piece.
// chess.Empty and chess.Off are absent values and fail.
func PieceOf(piece chess.Piece) (Piece, error) {
	colour := chess.ExtractColour(piece)
	bare := chess.ExtractPiece(piece)
	if chess.MakeColouredPiece(colour, bare) != piece {
		return NoPiece, errors.Wrapf(errors.ErrInvalidArgument, "piece %d", int(piece))
	}
	t, err := PieceTypeOf(bare)
	if err != nil {
		return NoPiece, err
	}
	c, err := ColourOf(colour)
	if err != nil {
		return NoPiece, err
	}
	return MakePiece(c, t), nil
}

// ToChess returns the descriptive coloured piece.
func (p Piece) ToChess() (chess.Piece, error) {
	if !p.IsValid() {
		return chess.Off, errors.Wrapf(errors.ErrInvalidArgument, "piece code %d", p)
	}
	return p.toChess(), nil
}

func (p Piece) toChess() chess.Piece {
	colour := chess.White
	if p.Colour() == Black {
		colour = chess.Black
	}
	return chess.MakeColouredPiece(colour, pieceTypeToChess[p.Type()])
}

// Type returns the piece type bits of p.
func (p Piece) Type() PieceType {
	return PieceType(p & TypeMask)
}

// Colour returns the colour bits of p.
func (p Piece) Colour() Colour {
	return Colour(p >> colourShift)
}

// Ordinal returns colour*6 + type ordinal. It panics on invalid pieces.
func (p Piece) Ordinal() int {
	if !p.IsValid() {
		panic(errors.Wrapf(errors.ErrInvalidArgument, "ordinal of piece code %d", p))
	}
	return p.Colour().Ordinal()*len(PieceTypes) + p.Type().Ordinal()
}

// IsValid reports whether p is one of the twelve pieces.
func (p Piece) IsValid() bool {
	return p.Colour().IsValid() && p.Type().IsValid()
}

// IsSliding reports whether p is a bishop, rook or queen.
func (p Piece) IsSliding() bool {
	return p.IsValid() && p.Type().IsSliding()
}

// Letter returns the FEN letter of p, '-' for invalid pieces.
func (p Piece) Letter() byte {
	if !p.IsValid() {
		return '-'
	}
	letter := p.Type().Letter()
	if p.Colour() == White {
		letter -= 'a' - 'A'
	}
	return letter
}

func (p Piece) String() string {
	return string(p.Letter())
}
