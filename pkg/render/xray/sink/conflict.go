package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
)

// ConflictDOT builds an undirected Graphviz graph with one node per
// component and one edge per overlapping pair. Components that overlap
// nothing are drawn dashed so clean layouts still show every part.
func ConflictDOT(comps []circuit.Component, cat grid.Catalog) string {
	pairs := grid.OverlappingPairs(comps)
	involved := make(map[int]bool, len(pairs)*2)
	for _, p := range pairs {
		involved[p[0]] = true
		involved[p[1]] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [color=\"#e11d48\", penwidth=2];\n")
	buf.WriteString("\n")

	for i, c := range comps {
		fill := circuit.DefaultFill
		if cat != nil {
			if g, ok := cat.Lookup(c.GateID); ok {
				fill = g.Fill
			}
		}
		attrs := fmt.Sprintf("label=%q, fillcolor=%q", c.String(), fill)
		if involved[i] {
			attrs += `, color="#e11d48", penwidth=2`
		} else {
			attrs += `, style="rounded,filled,dashed"`
		}
		fmt.Fprintf(&buf, "  c%d [%s];\n", i, attrs)
	}

	buf.WriteString("\n")
	for _, p := range pairs {
		fmt.Fprintf(&buf, "  c%d -- c%d;\n", p[0], p[1])
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderConflictSVG renders a DOT graph to SVG using Graphviz.
func RenderConflictSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based root element with a plain
// pixel one so the diagram scales like the other sinks' output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
