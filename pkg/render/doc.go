// Package render provides format conversion and the operator renderers.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # X-Ray Rendering
//
// The xray subpackages turn a derived operator frame into output:
//   - [xray/layout]: pixel geometry of blocks, background and overlay
//   - [xray/styles]: visual styles (simple, handdrawn)
//   - [xray/sink]: output formats (SVG, JSON, PNG, PDF, terminal, conflict graph)
//
// [xray/layout]: github.com/matzehuels/gatexray/pkg/render/xray/layout
// [xray/styles]: github.com/matzehuels/gatexray/pkg/render/xray/styles
// [xray/sink]: github.com/matzehuels/gatexray/pkg/render/xray/sink
package render
