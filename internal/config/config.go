// Package config provides configuration for the intboard tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/intboard-go/internal/errors"
	"github.com/lgbarn/intboard-go/internal/fen"
)

// ProfileMode selects a runtime profile to record.
type ProfileMode string

const (
	NoProfile  ProfileMode = ""
	CPUProfile ProfileMode = "cpu"
	MemProfile ProfileMode = "mem"
)

// Config holds all program configuration.
type Config struct {
	// Starting position and moves replayed from it, in coordinate notation.
	FEN   string
	Moves []string

	Verbosity int // 0=nothing, 1=summary, 2=per root move

	Profile ProfileMode

	Perft   *PerftConfig
	Display *DisplayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		FEN:        fen.InitialFEN,
		Verbosity:  1,
		Perft:      NewPerftConfig(),
		Display:    NewDisplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a log line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks the configuration and its sub-configs.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	switch c.Profile {
	case NoProfile, CPUProfile, MemProfile:
	default:
		return fmt.Errorf("profile mode %q: %w", c.Profile, errors.ErrInvalidConfig)
	}
	if _, err := fen.NewBoardFromFEN(c.FEN); err != nil {
		return fmt.Errorf("starting position: %v: %w", err, errors.ErrInvalidConfig)
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return nil
}
