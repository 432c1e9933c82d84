package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gatexray/pkg/pipeline"
	"github.com/matzehuels/gatexray/pkg/view"
)

const halfAdderJSON = `{
  "title": "Half adder",
  "height": 2,
  "custom": true,
  "components": [
    {"gateId": "XOR", "x": 0, "y": 0},
    {"gateId": "AND", "x": 0, "y": 1}
  ]
}`

func writeOperator(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adder.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces trimmed", "svg, dot", []string{"svg", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid graph", []string{"graph"}, false},
		{"valid all", pipeline.Formats, false},
		{"invalid format", []string{"invalid"}, true},
		{"mixed valid invalid", []string{"svg", "invalid"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "ops/adder.json", "ops/adder"},
		{"out/adder", "adder.json", "out/adder"},
		{"out/adder.svg", "adder.json", "out/adder"},
		{"out/adder.v2", "adder.json", "out/adder.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	paths := outputPaths("", "adder.json", []string{"svg", "graph", "dot"})
	want := map[string]string{
		"svg":   "adder.svg",
		"graph": "adder.graph.svg",
		"dot":   "adder.dot",
	}
	for f, p := range want {
		if paths[f] != p {
			t.Errorf("outputPaths[%s] = %q, want %q", f, paths[f], p)
		}
	}

	single := outputPaths("x.out", "adder.json", []string{"png"})
	if single["png"] != "x.out" {
		t.Errorf("single format output = %q, want x.out", single["png"])
	}
}

func TestPipelineOptions(t *testing.T) {
	o := &renderOpts{mode: "xray", formats: []string{"svg"}, style: "handdrawn", seed: 3, cell: 20, marginX: 2}
	opts, err := o.pipelineOptions()
	if err != nil {
		t.Fatalf("pipelineOptions: %v", err)
	}
	if opts.Mode != view.Exploded {
		t.Errorf("Mode = %v, want xray", opts.Mode)
	}
	if opts.Metrics.CellSize != 20 || opts.Metrics.MarginX != 2 {
		t.Errorf("Metrics = %+v", opts.Metrics)
	}

	o.mode = "sideways"
	if _, err := o.pipelineOptions(); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestApplyConfig(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.Config.Style = "handdrawn"
	c.Config.CellSize = 64

	var opts renderOpts
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&opts.style, "style", "simple", "")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 42, "")
	cmd.Flags().Float64Var(&opts.cell, "cell", 0, "")
	cmd.Flags().Float64Var(&opts.marginX, "margin-x", 0, "")
	cmd.Flags().Float64Var(&opts.marginY, "margin-y", 0, "")
	if err := cmd.Flags().Set("cell", "10"); err != nil {
		t.Fatal(err)
	}

	c.applyConfig(cmd, &opts)
	if opts.style != "handdrawn" {
		t.Errorf("style = %q, want config value", opts.style)
	}
	if opts.cell != 10 {
		t.Errorf("cell = %v, want flag value 10", opts.cell)
	}
}

func TestRunRender(t *testing.T) {
	input := writeOperator(t, halfAdderJSON)
	out := filepath.Join(t.TempDir(), "out", "adder")

	c := New(io.Discard, log.InfoLevel)
	c.Config.Cache.Backend = cacheBackendNone
	opts := &renderOpts{
		output:  out,
		formats: []string{"svg", "json", "dot"},
		mode:    "xray",
		style:   "simple",
	}
	if err := c.runRender(context.Background(), input, opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	svg, err := os.ReadFile(out + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("svg output missing <svg")
	}
	if _, err := os.Stat(out + ".json"); err != nil {
		t.Errorf("json output: %v", err)
	}
	if _, err := os.Stat(out + ".dot"); err != nil {
		t.Errorf("dot output: %v", err)
	}
}

func TestRunRenderMissingInput(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.Config.Cache.Backend = cacheBackendNone
	opts := &renderOpts{formats: []string{"svg"}, mode: "compact", style: "simple"}
	if err := c.runRender(context.Background(), filepath.Join(t.TempDir(), "nope.json"), opts); err == nil {
		t.Error("expected error for missing input")
	}
}
