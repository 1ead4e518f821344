package packed

import (
	"github.com/lgbarn/intboard-go/internal/hashing"
)

// historyCapacity is the undo stack preallocated for a new Position,
// deep enough for a search without growing.
const historyCapacity = 256

// state holds what MakeMove overwrites and UndoMove needs back.
type state struct {
	captured      Piece
	castling      [2][2]File
	enPassant     Square
	halfMoveClock int
	key           uint64
}

// Position is a mutable chess position with exact undo.
//
// A Position is owned by one goroutine. Workers that need their own copy
// use Clone.
type Position struct {
	board          [64]Piece
	castling       [2][2]File // rook file per colour and side, NoFile when lost
	enPassant      Square
	activeColour   Colour
	halfMoveClock  int
	fullMoveNumber int
	key            uint64

	history []state
}

// NewPosition returns an empty board with White to move, no castling
// rights and move number 1.
func NewPosition() *Position {
	p := &Position{
		enPassant:      NoSquare,
		activeColour:   White,
		fullMoveNumber: 1,
		history:        make([]state, 0, historyCapacity),
	}
	for sq := range p.board {
		p.board[sq] = NoPiece
	}
	for c := range p.castling {
		p.castling[c] = [2]File{NoFile, NoFile}
	}
	p.key = p.ComputeKey()
	return p
}

// PieceAt returns the piece on sq, false when sq is empty or off the board.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return NoPiece, false
	}
	piece := p.board[sq]
	return piece, piece != NoPiece
}

// EnPassant returns the en-passant target square, false when there is none.
func (p *Position) EnPassant() (Square, bool) {
	return p.enPassant, p.enPassant != NoSquare
}

// CastlingFile returns the rook file of a castling right, false when the
// right is gone.
func (p *Position) CastlingFile(colour Colour, side Castling) (File, bool) {
	if !colour.IsValid() || !side.IsValid() {
		return NoFile, false
	}
	f := p.castling[colour][side]
	return f, f != NoFile
}

// ActiveColour returns the side to move.
func (p *Position) ActiveColour() Colour {
	return p.activeColour
}

// HalfMoveClock returns the plies since the last capture or pawn move.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the move number, incremented after Black moves.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// Key returns the Zobrist key of the position.
func (p *Position) Key() uint64 {
	return p.key
}

// Depth returns the number of moves that can be undone.
func (p *Position) Depth() int {
	return len(p.history)
}

// Clone returns a deep copy, including the undo history.
func (p *Position) Clone() *Position {
	c := *p
	c.history = make([]state, len(p.history), cap(p.history))
	copy(c.history, p.history)
	return &c
}

// Equal reports whether p and other have the same squares, castling
// rights, en-passant target, side to move and clocks. The key and the
// undo history are not compared.
func (p *Position) Equal(other *Position) bool {
	return p.board == other.board &&
		p.castling == other.castling &&
		p.enPassant == other.enPassant &&
		p.activeColour == other.activeColour &&
		p.halfMoveClock == other.halfMoveClock &&
		p.fullMoveNumber == other.fullMoveNumber
}

// MakeMove applies m. The move is trusted: legality and consistency with
// the board are the caller's responsibility.
func (p *Position) MakeMove(m Move) {
	p.history = append(p.history, state{
		castling:      p.castling,
		enPassant:     p.enPassant,
		halfMoveClock: p.halfMoveClock,
		key:           p.key,
	})
	entry := &p.history[len(p.history)-1]

	p.key ^= p.castlingKey() ^ hashing.EnPassant(int(p.enPassant))
	p.enPassant = NoSquare

	mover := p.activeColour
	from, to := m.From(), m.To()
	piece := m.Piece()
	captured := NoPiece

	switch m.Type() {
	case MoveNormal:
		captured = p.remove(to)
		p.remove(from)
		p.put(to, piece)
	case MovePawnDouble:
		p.remove(from)
		p.put(to, piece)
		p.enPassant = NewSquare(from.File(), (from.Rank()+to.Rank())/2)
	case MovePromotion:
		captured = p.remove(to)
		p.remove(from)
		p.put(to, MakePiece(mover, m.Promotion()))
	case MoveEnPassant:
		p.remove(from)
		p.put(to, piece)
		captured = p.remove(NewSquare(to.File(), from.Rank()))
	case MoveCastling:
		side := castlingSide(to)
		rookFrom := NewSquare(p.castling[mover][side], from.Rank())
		rookTo := NewSquare(side.rookTarget(), from.Rank())
		// Chess960 squares may overlap, so lift both before placing.
		rook := p.remove(rookFrom)
		p.remove(from)
		p.put(to, piece)
		p.put(rookTo, rook)
	}
	entry.captured = captured

	switch piece.Type() {
	case King:
		p.castling[mover] = [2]File{NoFile, NoFile}
	case Rook:
		p.revokeRook(mover, from)
	}
	if captured.Type() == Rook {
		p.revokeRook(captured.Colour(), to)
	}

	if piece.Type() == Pawn || captured != NoPiece {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if mover == Black {
		p.fullMoveNumber++
	}
	p.activeColour = mover.Opposite()

	p.key ^= hashing.Black() ^ p.castlingKey() ^ hashing.EnPassant(int(p.enPassant))
}

// UndoMove reverts m, which must be the last move applied and not yet
// undone.
func (p *Position) UndoMove(m Move) {
	last := len(p.history) - 1
	entry := p.history[last]
	p.history = p.history[:last]

	p.activeColour = p.activeColour.Opposite()
	mover := p.activeColour
	if mover == Black {
		p.fullMoveNumber--
	}

	from, to := m.From(), m.To()
	switch m.Type() {
	case MoveNormal, MovePawnDouble, MovePromotion:
		p.board[to] = entry.captured
		p.board[from] = m.Piece()
	case MoveEnPassant:
		p.board[to] = NoPiece
		p.board[NewSquare(to.File(), from.Rank())] = entry.captured
		p.board[from] = m.Piece()
	case MoveCastling:
		side := castlingSide(to)
		rookFrom := NewSquare(entry.castling[mover][side], from.Rank())
		rookTo := NewSquare(side.rookTarget(), from.Rank())
		p.board[to] = NoPiece
		p.board[rookTo] = NoPiece
		p.board[rookFrom] = MakePiece(mover, Rook)
		p.board[from] = m.Piece()
	}

	p.castling = entry.castling
	p.enPassant = entry.enPassant
	p.halfMoveClock = entry.halfMoveClock
	p.key = entry.key
}

// castlingSide infers the side from the king's destination.
func castlingSide(kingTo Square) Castling {
	if kingTo.File() == Kingside.kingTarget() {
		return Kingside
	}
	return Queenside
}

// revokeRook drops the castling right whose rook stands on sq.
func (p *Position) revokeRook(colour Colour, sq Square) {
	if sq.Rank() != homeRank(colour) {
		return
	}
	for _, side := range Castlings {
		if p.castling[colour][side] == sq.File() {
			p.castling[colour][side] = NoFile
		}
	}
}

func homeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return 7
}

// remove empties sq and returns what stood there.
func (p *Position) remove(sq Square) Piece {
	piece := p.board[sq]
	if piece != NoPiece {
		p.board[sq] = NoPiece
		p.key ^= hashing.Piece(int(piece), int(sq))
	}
	return piece
}

// put places piece on an empty square.
func (p *Position) put(sq Square, piece Piece) {
	p.board[sq] = piece
	p.key ^= hashing.Piece(int(piece), int(sq))
}

func (p *Position) castlingKey() uint64 {
	var k uint64
	for c := range p.castling {
		for side, f := range p.castling[c] {
			k ^= hashing.Castling(c, side, int(f))
		}
	}
	return k
}

// ComputeKey derives the Zobrist key from scratch. It equals Key() for
// any position reached through FromBoard, MakeMove and UndoMove.
func (p *Position) ComputeKey() uint64 {
	var k uint64
	for sq, piece := range p.board {
		if piece != NoPiece {
			k ^= hashing.Piece(int(piece), sq)
		}
	}
	k ^= p.castlingKey()
	k ^= hashing.EnPassant(int(p.enPassant))
	if p.activeColour == Black {
		k ^= hashing.Black()
	}
	return k
}
