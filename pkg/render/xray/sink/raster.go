package sink

import (
	"context"

	"github.com/matzehuels/gatexray/pkg/render"
	"github.com/matzehuels/gatexray/pkg/render/xray/layout"
)

// DefaultPNGScale renders PNGs at twice the SVG pixel size.
const DefaultPNGScale = 2.0

// RenderPNG draws l as SVG and rasterizes it at scale. A scale <= 0 means
// [DefaultPNGScale].
func RenderPNG(ctx context.Context, l layout.Layout, scale float64, opts ...SVGOption) ([]byte, error) {
	if scale <= 0 {
		scale = DefaultPNGScale
	}
	return render.ToPNG(ctx, RenderSVG(l, opts...), scale)
}

// RenderPDF draws l as SVG and converts it to a single-page PDF.
func RenderPDF(ctx context.Context, l layout.Layout, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(l, opts...))
}
