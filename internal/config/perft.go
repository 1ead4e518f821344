package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/intboard-go/internal/errors"
)

// MaxDepth bounds the verification depth.
const MaxDepth = 10

// PerftConfig holds settings for differential perft runs.
type PerftConfig struct {
	// Depth is the number of plies to walk; 0 disables the run.
	Depth int

	// Workers is the number of goroutines searching root moves.
	Workers int

	// TrackPositions counts distinct leaf positions by Zobrist key.
	TrackPositions bool

	// MaxPositions limits the distinct keys kept (0 = unlimited).
	MaxPositions int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside 0..%d: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.MaxPositions < 0 {
		return fmt.Errorf("max positions %d: %w", p.MaxPositions, errors.ErrInvalidConfig)
	}
	return nil
}
