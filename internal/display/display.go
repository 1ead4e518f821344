// Package display renders packed positions as text diagrams.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/intboard-go/internal/config"
	"github.com/lgbarn/intboard-go/internal/fen"
	"github.com/lgbarn/intboard-go/internal/packed"
)

const divider = "   +---+---+---+---+---+---+---+---+\n"

// Renderer draws a Position as an 8x8 grid followed by its FEN and key.
// Chess960 positions always get Shredder-FEN castling.
type Renderer struct {
	white    *color.Color
	black    *color.Color
	marker   *color.Color
	shredder bool
}

// NewRenderer creates a Renderer for the given display settings.
func NewRenderer(cfg *config.DisplayConfig) *Renderer {
	r := &Renderer{
		white:    color.New(color.FgHiWhite, color.Bold),
		black:    color.New(color.FgHiRed, color.Bold),
		marker:   color.New(color.FgYellow),
		shredder: cfg.Shredder,
	}
	for _, c := range []*color.Color{r.white, r.black, r.marker} {
		if cfg.Colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes the diagram of p to w.
func (r *Renderer) Render(w io.Writer, p *packed.Position) error {
	_, err := io.WriteString(w, r.String(p))
	return err
}

// String returns the diagram of p.
func (r *Renderer) String(p *packed.Position) string {
	var sb strings.Builder
	ep, hasEP := p.EnPassant()

	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(divider)
		fmt.Fprintf(&sb, " %d |", rank+1)
		for _, f := range packed.Files {
			sq := packed.NewSquare(f, rank)
			piece, ok := p.PieceAt(sq)
			switch {
			case ok:
				fmt.Fprintf(&sb, " %s |", r.piece(piece))
			case hasEP && sq == ep:
				fmt.Fprintf(&sb, " %s |", r.marker.Sprint("*"))
			default:
				sb.WriteString("   |")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(divider)
	sb.WriteString("   ")
	for _, f := range packed.Files {
		fmt.Fprintf(&sb, "  %s ", f)
	}
	sb.WriteByte('\n')

	board := p.ToBoard()
	if r.shredder || fen.IsChess960Position(board) {
		fmt.Fprintf(&sb, "FEN: %s\n", fen.BoardToShredderFEN(board))
	} else {
		fmt.Fprintf(&sb, "FEN: %s\n", fen.BoardToFEN(board))
	}
	fmt.Fprintf(&sb, "Key: %016x\n", p.Key())
	return sb.String()
}

func (r *Renderer) piece(piece packed.Piece) string {
	letter := string(piece.Letter())
	if piece.Colour() == packed.White {
		return r.white.Sprint(letter)
	}
	return r.black.Sprint(letter)
}
