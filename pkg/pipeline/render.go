package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
	"github.com/matzehuels/gatexray/pkg/render/xray/layout"
	"github.com/matzehuels/gatexray/pkg/render/xray/sink"
	"github.com/matzehuels/gatexray/pkg/view"
)

// Render generates artifacts for every format in opts.Formats. The overlap
// graph formats work from the operator's components and ignore the mode.
func Render(ctx context.Context, l layout.Layout, frame view.Frame, cat grid.Catalog, opts Options) (map[string][]byte, error) {
	style, err := sink.StyleByName(opts.Style, opts.Seed)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Title {
		svgOpts = append(svgOpts, sink.WithTitle())
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(opts.Style), sink.WithJSONSeed(opts.Seed))
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, l, opts.Scale, svgOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, l, svgOpts...)
		case FormatDOT:
			var dot string
			if dot, err = conflictDOT(frame.Operator.Components, cat); err == nil {
				data = []byte(dot)
			}
		case FormatGraph:
			var dot string
			if dot, err = conflictDOT(frame.Operator.Components, cat); err == nil {
				data, err = sink.RenderConflictSVG(ctx, dot)
			}
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// conflictDOT checks comps with [grid.Bounds] first. Compact frames never
// ran them through the resolver.
func conflictDOT(comps []circuit.Component, cat grid.Catalog) (string, error) {
	if len(comps) > 0 {
		if _, err := grid.Bounds(comps); err != nil {
			return "", err
		}
	}
	return sink.ConflictDOT(comps, cat), nil
}
