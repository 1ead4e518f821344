// Package fen converts between FEN strings and chess.Board snapshots.
package fen

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/intboard-go/internal/chess"
	"github.com/lgbarn/intboard-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// SANPieceLetter returns the SAN letter for a piece.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToSANLetter returns the FEN letter for a coloured piece.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	letter := SANPieceLetter(chess.ExtractPiece(colouredPiece))
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

func fenError(field, value string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: field, Value: value}
}

// NewBoardFromFEN creates a board from a FEN string. Missing trailing
// fields default to "w - - 0 1".
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fenError("", fen)
	}
	if len(parts) > 6 {
		return nil, fenError("trailing", strings.Join(parts[6:], " "))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// MustBoard is like NewBoardFromFEN but panics on error.
func MustBoard(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("board", positions)
	}

	for i, row := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col('a')
		for _, c := range row {
			if c > unicode.MaxASCII {
				return fenError("board", row)
			}
			switch {
			case c >= '1' && c <= '8':
				col += chess.Col(c - '0')
			default:
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return fenError("board", string(c))
				}
				if !col.Valid() {
					return fenError("board", row)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(col, rank, chess.MakeColouredPiece(colour, piece))
				col++
			}
			if col > chess.LastCol+1 {
				return fenError("board", row)
			}
		}
		if col != chess.LastCol+1 {
			return fenError("board", row)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError("side to move", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Both the
// KQkq form and Shredder/X-FEN file letters are accepted.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.WKingCastle = 0
	board.WQueenCastle = 0
	board.BKingCastle = 0
	board.BQueenCastle = 0

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		if c > unicode.MaxASCII {
			return fenError("castling", parts[2])
		}
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		switch c {
		case 'K', 'k':
			board.SetCastlingCol(colour, chess.Kingside, outermostRook(board, colour, chess.Kingside))
		case 'Q', 'q':
			board.SetCastlingCol(colour, chess.Queenside, outermostRook(board, colour, chess.Queenside))
		default:
			col := chess.Col(unicode.ToLower(c))
			if !col.Valid() {
				return fenError("castling", parts[2])
			}
			side := chess.Queenside
			if col > kingCol(board, colour) {
				side = chess.Kingside
			}
			board.SetCastlingCol(colour, side, col)
		}
	}
	return nil
}

// kingCol returns the column of the king on its home rank, 'e' if it is elsewhere.
func kingCol(board *chess.Board, colour chess.Colour) chess.Col {
	col, rank, ok := board.KingSquare(colour)
	if !ok || rank != chess.HomeRank(colour) {
		return 'e'
	}
	return col
}

// outermostRook finds the rook furthest from the king on the given side,
// falling back to the corner column.
func outermostRook(board *chess.Board, colour chess.Colour, side chess.CastlingSide) chess.Col {
	rank := chess.HomeRank(colour)
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	king := kingCol(board, colour)
	if side == chess.Kingside {
		for col := chess.Col(chess.LastCol); col > king; col-- {
			if board.Get(col, rank) == rook {
				return col
			}
		}
		return chess.LastCol
	}
	for col := chess.Col(chess.FirstCol); col < king; col++ {
		if board.Get(col, rank) == rook {
			return col
		}
	}
	return chess.FirstCol
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	ep := parts[3]
	if len(ep) != 2 || !chess.Col(ep[0]).Valid() || (ep[1] != '3' && ep[1] != '6') {
		return fenError("en passant", ep)
	}
	board.EnPassant = true
	board.EPCol = chess.Col(ep[0])
	board.EPRank = chess.Rank(ep[1])
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fenError("halfmove clock", parts[4])
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fenError("fullmove number", parts[5])
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string. Castling rights use KQkq
// when the rook is the outermost one on its side and file letters otherwise.
func BoardToFEN(board *chess.Board) string {
	return boardToFEN(board, false)
}

// BoardToShredderFEN converts a board to a FEN string using Shredder
// notation (rook file letters) for castling.
func BoardToShredderFEN(board *chess.Board) string {
	return boardToFEN(board, true)
}

func boardToFEN(board *chess.Board, shredder bool) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board, shredder)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.HalfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(board.MoveNumber), 10))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board, shredder bool) {
	hasCastling := false
	for _, colour := range chess.Colours {
		for _, side := range chess.CastlingSides {
			col := board.CastlingCol(colour, side)
			if col == 0 {
				continue
			}
			hasCastling = true
			letter := byte(col)
			if !shredder && col == outermostRook(board, colour, side) {
				letter = 'k'
				if side == chess.Queenside {
					letter = 'q'
				}
			}
			if colour == chess.White {
				letter = byte(unicode.ToUpper(rune(letter)))
			}
			sb.WriteByte(letter)
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteByte(byte(board.EPCol))
		sb.WriteByte(byte(board.EPRank))
	} else {
		sb.WriteByte('-')
	}
}

// IsChess960Position returns true if the board has non-standard castling columns.
func IsChess960Position(board *chess.Board) bool {
	for _, colour := range chess.Colours {
		if board.CastlingCol(colour, chess.Kingside) == 0 && board.CastlingCol(colour, chess.Queenside) == 0 {
			continue
		}
		if kingCol(board, colour) != 'e' {
			return true
		}
		if col := board.CastlingCol(colour, chess.Kingside); col != 0 && col != 'h' {
			return true
		}
		if col := board.CastlingCol(colour, chess.Queenside); col != 0 && col != 'a' {
			return true
		}
	}
	return false
}
