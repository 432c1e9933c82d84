package layout

import "github.com/matzehuels/gatexray/pkg/errors"

const (
	DefaultCellSize = 40.0
	DefaultMargin   = 8.0
)

// Metrics is the grid geometry: the side of one cell and the gaps between
// adjacent cells.
type Metrics struct {
	CellSize float64 `json:"cell_size" toml:"cell_size"`
	MarginX  float64 `json:"margin_x" toml:"margin_x"`
	MarginY  float64 `json:"margin_y" toml:"margin_y"`
}

// DefaultMetrics returns the stock 40px cell with 8px gaps.
func DefaultMetrics() Metrics {
	return Metrics{CellSize: DefaultCellSize, MarginX: DefaultMargin, MarginY: DefaultMargin}
}

// WithDefaults fills a zero cell size with the default. Zero margins are
// legal and kept.
func (m Metrics) WithDefaults() Metrics {
	if m.CellSize == 0 {
		m.CellSize = DefaultCellSize
	}
	return m
}

// Validate rejects negative or zero cell sizes and negative margins.
func (m Metrics) Validate() error {
	if m.CellSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cell size must be > 0 (got %g)", m.CellSize)
	}
	if m.MarginX < 0 || m.MarginY < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "margins must be >= 0 (got %g, %g)", m.MarginX, m.MarginY)
	}
	return nil
}

// Span returns the pixel length of n cells with the gaps between them.
func Span(n int, cell, margin float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*cell + float64(n-1)*margin
}

// StepX is the horizontal pitch between adjacent cell origins.
func (m Metrics) StepX() float64 { return m.CellSize + m.MarginX }

// StepY is the vertical pitch between adjacent cell origins.
func (m Metrics) StepY() float64 { return m.CellSize + m.MarginY }
