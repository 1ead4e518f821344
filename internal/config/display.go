package config

// DisplayConfig holds settings for printing positions.
type DisplayConfig struct {
	// Show prints the board diagram after the moves are replayed
	Show bool

	// Colour enables ANSI colours in the diagram
	Colour bool

	// Shredder writes castling rights as rook files
	Shredder bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour: true,
	}
}
