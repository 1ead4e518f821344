package packed

import (
	"github.com/lgbarn/intboard-go/internal/chess"
	"github.com/lgbarn/intboard-go/internal/errors"
	"github.com/lgbarn/intboard-go/internal/fen"
)

// FromBoard builds a Position from a descriptive board.
func FromBoard(b *chess.Board) (*Position, error) {
	if b == nil {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "nil board")
	}
	p := NewPosition()

	for col := 0; col < chess.BoardSize; col++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			cp := b.Squares[col][rank]
			if cp == chess.Empty {
				continue
			}
			piece, err := PieceOf(cp)
			if err != nil {
				return nil, errors.Wrapf(err, "square %c%c", chess.ToCol(col), chess.ToRank(rank))
			}
			p.board[NewSquare(File(col), rank)] = piece
		}
	}

	for _, colour := range chess.Colours {
		for _, side := range chess.CastlingSides {
			col := b.CastlingCol(colour, side)
			if col == 0 {
				continue
			}
			f, err := FileOf(col)
			if err != nil {
				return nil, errors.Wrapf(err, "%v %v castling", colour, side)
			}
			c, _ := ColourOf(colour)
			s, _ := CastlingOf(side)
			p.castling[c][s] = f
		}
	}

	if b.EnPassant {
		sq, err := SquareOf(b.EPCol, b.EPRank)
		if err != nil {
			return nil, errors.Wrap(err, "en passant")
		}
		p.enPassant = sq
	}

	active, err := ColourOf(b.ToMove)
	if err != nil {
		return nil, errors.Wrap(err, "side to move")
	}
	p.activeColour = active

	if b.MoveNumber == 0 {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "move number 0")
	}
	p.halfMoveClock = int(b.HalfmoveClock)
	p.fullMoveNumber = int(b.MoveNumber)

	p.key = p.ComputeKey()
	return p, nil
}

// ToBoard returns the descriptive form of p. FromBoard(p.ToBoard()) is
// Equal to p.
func (p *Position) ToBoard() *chess.Board {
	b := chess.NewBoard()

	for sq, piece := range p.board {
		if piece == NoPiece {
			continue
		}
		s := Square(sq)
		b.Squares[s.File()][s.Rank()] = piece.toChess()
	}

	for c, sides := range p.castling {
		colour := chess.White
		if Colour(c) == Black {
			colour = chess.Black
		}
		for side, f := range sides {
			if f == NoFile {
				continue
			}
			chessSide := chess.Kingside
			if Castling(side) == Queenside {
				chessSide = chess.Queenside
			}
			b.SetCastlingCol(colour, chessSide, chess.ToCol(int(f)))
		}
	}

	if p.enPassant != NoSquare {
		b.EnPassant = true
		b.EPCol = chess.ToCol(int(p.enPassant.File()))
		b.EPRank = chess.ToRank(p.enPassant.Rank())
	}

	b.ToMove = chess.White
	if p.activeColour == Black {
		b.ToMove = chess.Black
	}
	b.HalfmoveClock = uint(p.halfMoveClock)
	b.MoveNumber = uint(p.fullMoveNumber)
	return b
}

// FromFEN parses a FEN string into a Position.
func FromFEN(s string) (*Position, error) {
	b, err := fen.NewBoardFromFEN(s)
	if err != nil {
		return nil, err
	}
	return FromBoard(b)
}

// MustFEN is like FromFEN but panics on error.
func MustFEN(s string) *Position {
	p, err := FromFEN(s)
	if err != nil {
		panic(err)
	}
	return p
}

// FEN returns the FEN string of p.
func (p *Position) FEN() string {
	return fen.BoardToFEN(p.ToBoard())
}

// String returns the FEN string of p.
func (p *Position) String() string {
	return p.FEN()
}
