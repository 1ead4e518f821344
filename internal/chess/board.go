package chess

// Board is a descriptive snapshot of a chess position.
type Board struct {
	// The board squares, Squares[col][rank] with 0-based indices.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// Rook starting columns for the 4 castling options, 0 when the
	// right is gone. Non-standard columns are allowed.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Is EnPassant capture possible? If so then EPRank and EPCol have
	// the square on which this can be made.
	EnPassant bool
	EPRank    Rank
	EPCol     Col

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	b.Clear()
	return b
}

// Clear empties every square.
func (b *Board) Clear() {
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][0] = W(backRank[col])
		b.Squares[col][1] = W(Pawn)
		b.Squares[col][6] = B(Pawn)
		b.Squares[col][7] = B(backRank[col])
	}

	b.WKingCastle = 'h'
	b.WQueenCastle = 'a'
	b.BKingCastle = 'h'
	b.BQueenCastle = 'a'

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPCol, b.EPRank = 0, 0
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
// Coordinates off the board yield Off.
func (b *Board) Get(col Col, rank Rank) Piece {
	c, r := ColIndex(col), RankIndex(rank)
	if c < 0 || r < 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates. Off-board coordinates are ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c, r := ColIndex(col), RankIndex(rank)
	if c >= 0 && r >= 0 {
		b.Squares[c][r] = piece
	}
}

// CastlingCol returns the rook column for a castling option, 0 if the right is gone.
func (b *Board) CastlingCol(colour Colour, side CastlingSide) Col {
	switch {
	case colour == White && side == Kingside:
		return b.WKingCastle
	case colour == White:
		return b.WQueenCastle
	case side == Kingside:
		return b.BKingCastle
	default:
		return b.BQueenCastle
	}
}

// SetCastlingCol records the rook column for a castling option; 0 removes the right.
func (b *Board) SetCastlingCol(colour Colour, side CastlingSide, col Col) {
	switch {
	case colour == White && side == Kingside:
		b.WKingCastle = col
	case colour == White:
		b.WQueenCastle = col
	case side == Kingside:
		b.BKingCastle = col
	default:
		b.BQueenCastle = col
	}
}

// KingSquare locates the king of the given colour.
func (b *Board) KingSquare(colour Colour) (Col, Rank, bool) {
	king := MakeColouredPiece(colour, King)
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[col][rank] == king {
				return ToCol(col), ToRank(rank), true
			}
		}
	}
	return 0, 0, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
