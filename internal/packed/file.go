package packed

import (
	"github.com/lgbarn/intboard-go/internal/chess"
	"github.com/lgbarn/intboard-go/internal/errors"
)

// File is a board column code, a to h.
type File uint8

// File codes.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	NoFile
)

// Files lists the valid files in ordinal order.
var Files = [...]File{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// FileOf returns the code for a descriptive column.
func FileOf(col chess.Col) (File, error) {
	if !col.Valid() {
		return NoFile, errors.Wrapf(errors.ErrInvalidArgument, "file %q", byte(col))
	}
	return File(chess.ColIndex(col)), nil
}

// ToChess returns the descriptive column.
func (f File) ToChess() (chess.Col, error) {
	if !f.IsValid() {
		return 0, errors.Wrapf(errors.ErrInvalidArgument, "file code %d", f)
	}
	return chess.ToCol(int(f)), nil
}

// Ordinal returns the index of f. It panics on NoFile.
func (f File) Ordinal() int {
	if !f.IsValid() {
		panic(errors.Wrapf(errors.ErrInvalidArgument, "ordinal of file code %d", f))
	}
	return int(f)
}

// IsValid reports whether f is one of a to h.
func (f File) IsValid() bool {
	return f < NoFile
}

func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + f))
}
