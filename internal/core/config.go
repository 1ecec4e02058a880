package core

// RuntimeConfig contains the launch parameters passed from the command line
// to the host. Zero values leave the file configuration in charge.
type RuntimeConfig struct {
	Cols        int     // Terminal width in characters
	Rows        int     // Terminal height in characters
	RefreshRate float64 // Target frames per second, 0 keeps the configured rate
	Seed        int64   // RNG seed for exit selection, 0 seeds from the clock
	ShowStats   bool    // Start with the stats overlay visible
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Cols: 80,
		Rows: 24,
	}
}

// Size returns the terminal size, falling back to 80x24 for unset values.
func (c RuntimeConfig) Size() (cols, rows int) {
	cols, rows = c.Cols, c.Rows
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	return cols, rows
}
