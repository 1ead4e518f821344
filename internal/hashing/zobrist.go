// Package hashing provides Zobrist keys for packed positions and sets of
// seen keys for transposition and duplicate counting.
package hashing

import "math/rand"

// Table dimensions. Indices follow the packed encodings: pieces are
// colour<<3|type, files 0-7 with 8 meaning "no file", squares 0-63 with 64
// meaning "no square".
const (
	pieceCodes  = 16
	squareCodes = 64 + 1
	fileCodes   = 8 + 1
)

var (
	zobristPiece     [pieceCodes][squareCodes]uint64
	zobristCastling  [2][2][fileCodes]uint64
	zobristEnPassant [squareCodes]uint64
	zobristBlack     uint64
)

func init() {
	initZobrist()
}

// initZobrist fills the key tables from a fixed seed so keys are stable
// across runs. Sentinel slots stay zero.
func initZobrist() {
	r := rand.New(rand.NewSource(7))
	for piece := 0; piece < pieceCodes; piece++ {
		for sq := 0; sq < squareCodes-1; sq++ {
			zobristPiece[piece][sq] = r.Uint64()
		}
	}
	for colour := 0; colour < 2; colour++ {
		for side := 0; side < 2; side++ {
			for file := 0; file < fileCodes-1; file++ {
				zobristCastling[colour][side][file] = r.Uint64()
			}
		}
	}
	for sq := 0; sq < squareCodes-1; sq++ {
		zobristEnPassant[sq] = r.Uint64()
	}
	zobristBlack = r.Uint64()
}

// Piece returns the key of a packed piece standing on a square.
func Piece(piece, square int) uint64 {
	return zobristPiece[piece&(pieceCodes-1)][square]
}

// Castling returns the key of a castling right held with the given rook file.
func Castling(colour, side, file int) uint64 {
	return zobristCastling[colour][side][file]
}

// EnPassant returns the key of an en-passant target square.
func EnPassant(square int) uint64 {
	return zobristEnPassant[square]
}

// Black returns the key toggled when Black is to move.
func Black() uint64 {
	return zobristBlack
}
