// Package pipeline runs the derive → layout → render pipeline for one
// operator.
//
// The CLI and the API server share this package so both produce identical
// artifacts for identical inputs, and so caching lives in one place.
//
// # Stages
//
//  1. Derive: pick the display mode and resolve the render plan
//     ([view.Derive]). Never cached; it is cheap and pure.
//  2. Layout: turn the frame into pixel geometry ([layout.FromFrame]).
//     Cached as JSON under [cache.Keyer.LayoutKey].
//  3. Render: produce each requested format. Cached per format under
//     [cache.Keyer.ArtifactKey].
//
// Cache keys hash the operator together with the catalog entries it
// references, so editing a gate's fill invalidates every operator that uses
// that gate and nothing else.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, op, circuit.Builtin(), pipeline.Options{
//	    Mode:    view.Exploded,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := res.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gatexray/pkg/cache"
	"github.com/matzehuels/gatexray/pkg/errors"
	"github.com/matzehuels/gatexray/pkg/render/xray/layout"
	"github.com/matzehuels/gatexray/pkg/render/xray/sink"
	"github.com/matzehuels/gatexray/pkg/render/xray/styles"
	"github.com/matzehuels/gatexray/pkg/view"
)

const (
	// DefaultSeed drives the hand-drawn wobble.
	DefaultSeed = uint64(42)

	// DefaultStyle is the visual style used when none is given.
	DefaultStyle = styles.StyleSimple

	// DefaultScale is the PNG pixel density.
	DefaultScale = sink.DefaultPNGScale
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	// FormatDOT is the overlap graph as Graphviz source.
	FormatDOT = "dot"
	// FormatGraph is the overlap graph laid out by Graphviz, as SVG.
	FormatGraph = "graph"
)

// Formats lists every supported output format.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatGraph}

// Options configures one pipeline run. It is JSON-decodable so API callers
// can post it directly.
type Options struct {
	Mode    view.Mode      `json:"mode"`
	Formats []string       `json:"formats,omitempty"`
	Style   string         `json:"style,omitempty"`
	Seed    uint64         `json:"seed,omitempty"`
	Metrics layout.Metrics `json:"metrics"`
	Title   bool           `json:"title,omitempty"`
	Scale   float64        `json:"scale,omitempty"`
	Refresh bool           `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result holds the outputs of a pipeline run.
type Result struct {
	Frame        view.Frame
	Layout       layout.Layout
	OperatorHash string
	Artifacts    map[string][]byte
	Stats        Stats
	CacheInfo    CacheInfo
}

// Stats holds timing and size information.
type Stats struct {
	Components int
	Blocks     int
	Skipped    int
	Overlap    bool
	DeriveTime time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which stages were served from the cache.
type CacheInfo struct {
	LayoutHit bool // layout came from cache
	RenderHit bool // every artifact came from cache
}

// ValidateFormat checks that format is supported. Matching is
// case-sensitive.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, Formats...)
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that style names a known style.
func ValidateStyle(style string) error {
	return styles.ValidateName(style)
}

// SetDefaults fills zero values. It is idempotent.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Metrics == (layout.Metrics{}) {
		o.Metrics = layout.DefaultMetrics()
	} else {
		o.Metrics = o.Metrics.WithDefaults()
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks formats, style, metrics and scale.
func (o *Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := o.Metrics.Validate(); err != nil {
		return err
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be > 0 (got %g)", o.Scale)
	}
	return nil
}

// LayoutKeyOpts returns cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Mode:     o.Mode.String(),
		CellSize: o.Metrics.CellSize,
		MarginX:  o.Metrics.MarginX,
		MarginY:  o.Metrics.MarginY,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		LayoutKeyOpts: o.LayoutKeyOpts(),
		Format:        format,
		Style:         o.Style,
		Title:         o.Title,
	}
	// Only the hand-drawn style depends on the seed.
	if o.Style == styles.StyleHanddrawn {
		k.Seed = o.Seed
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
