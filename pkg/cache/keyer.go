package cache

import "fmt"

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey addresses the pixel layout of an operator in one mode.
	LayoutKey(operatorHash string, opts LayoutKeyOpts) string
	// ArtifactKey addresses one rendered output file.
	ArtifactKey(operatorHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds every option that changes a layout.
type LayoutKeyOpts struct {
	Mode     string  `json:"mode"`
	CellSize float64 `json:"cell_size"`
	MarginX  float64 `json:"margin_x"`
	MarginY  float64 `json:"margin_y"`
}

// ArtifactKeyOpts holds every option that changes rendered bytes.
type ArtifactKeyOpts struct {
	LayoutKeyOpts
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Seed   uint64  `json:"seed,omitempty"`
	Scale  float64 `json:"scale,omitempty"`
	Title  bool    `json:"title,omitempty"`
}

// DefaultKeyer produces "layout:<sha256>" and "artifact:<format>:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the stock keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) LayoutKey(operatorHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", operatorHash, opts)
}

// ArtifactKey keeps the format readable so `cache` listings can tell SVGs
// from PNGs.
func (DefaultKeyer) ArtifactKey(operatorHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), operatorHash, opts)
}
