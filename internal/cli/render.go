package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gatexray/pkg/pipeline"
	"github.com/matzehuels/gatexray/pkg/render/xray/styles"
	"github.com/matzehuels/gatexray/pkg/view"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string
	formats []string
	mode    string
	style   string
	seed    uint64
	cell    float64
	marginX float64
	marginY float64
	scale   float64
	catalog string
	title   bool
	noCache bool
	refresh bool
}

// fileSuffix maps formats to output file suffixes.
var fileSuffix = map[string]string{
	pipeline.FormatGraph: ".graph.svg",
}

func suffixFor(format string) string {
	if s, ok := fileSuffix[format]; ok {
		return s
	}
	return "." + format
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [operator.json]",
		Short: "Render an operator to SVG, PNG, PDF, JSON or an overlap graph",
		Long: `Render an operator document in compact or x-ray mode.

Operators that are not custom have no x-ray view and always render compact.
Overlapping components are still drawn, with a red overlay and a ✗ marker.`,
		Example: `  gatexray render adder.json --mode xray
  gatexray render adder.json -f svg,png -o out/adder
  gatexray render adder.json -f dot -o - | dot -Tpng > overlaps.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if writesStdout(opts.output) && len(opts.formats) > 1 {
				return fmt.Errorf("-o - needs exactly one format (got %s)", strings.Join(opts.formats, ","))
			}
			c.applyConfig(cmd, &opts)
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single format, - for stdout) or base path (multiple)")
	f.StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, graph (comma-separated)")
	f.StringVarP(&opts.mode, "mode", "m", "compact", "display mode: compact, xray")
	f.StringVar(&opts.style, "style", pipeline.DefaultStyle, "visual style: simple, handdrawn")
	f.Uint64Var(&opts.seed, "seed", pipeline.DefaultSeed, "seed for the handdrawn style")
	f.Float64Var(&opts.cell, "cell", 0, "cell size in pixels (default from config, else 40)")
	f.Float64Var(&opts.marginX, "margin-x", 0, "horizontal gap between cells (default from config, else 8)")
	f.Float64Var(&opts.marginY, "margin-y", 0, "vertical gap between cells (default from config, else 8)")
	f.Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	f.StringVar(&opts.catalog, "catalog", "", "gate catalog file (.toml or .yaml)")
	f.BoolVar(&opts.title, "title", false, "embed the operator title as <title>")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	f.BoolVar(&opts.refresh, "refresh", false, "re-render and overwrite cached results")

	registerEnumCompletions(cmd, map[string][]string{
		"format": pipeline.Formats,
		"mode":   {"compact", "xray"},
		"style":  styles.Names,
	})
	return cmd
}

// applyConfig fills options the user did not set on the command line.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *renderOpts) {
	f := cmd.Flags()
	if !f.Changed("style") {
		opts.style = c.Config.Style
	}
	if !f.Changed("seed") {
		opts.seed = c.Config.Seed
	}
	if !f.Changed("cell") {
		opts.cell = c.Config.CellSize
	}
	if !f.Changed("margin-x") {
		opts.marginX = c.Config.MarginX
	}
	if !f.Changed("margin-y") {
		opts.marginY = c.Config.MarginY
	}
}

// pipelineOptions converts flags into pipeline options.
func (o *renderOpts) pipelineOptions() (pipeline.Options, error) {
	mode, err := view.ParseMode(o.mode)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		Mode:    mode,
		Formats: o.formats,
		Style:   o.style,
		Seed:    o.seed,
		Title:   o.title,
		Scale:   o.scale,
		Refresh: o.refresh,
	}
	opts.Metrics.CellSize = o.cell
	opts.Metrics.MarginX = o.marginX
	opts.Metrics.MarginY = o.marginY
	return opts, nil
}

// basePath derives the base output path. Without an output it strips the
// input's extension; a known format extension on output is stripped too.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if slices.Contains(pipeline.Formats, ext) {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

// outputPaths returns where each format is written.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + suffixFor(f)
	}
	return paths
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	popts, err := opts.pipelineOptions()
	if err != nil {
		return err
	}
	op, err := importOperator(input)
	if err != nil {
		return err
	}
	cat, err := c.loadCatalog(opts.catalog)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spin *Spinner
	if needsConverter(popts.Formats) && !writesStdout(opts.output) {
		spin = newSpinner(ctx, "Converting "+strings.Join(popts.Formats, ", "))
		spin.Start()
	}
	res, err := runner.Execute(ctx, op, cat, popts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, input, popts.Formats)
	for _, format := range popts.Formats {
		if err := writeOutput(paths[format], res.Artifacts[format]); err != nil {
			return err
		}
	}
	if writesStdout(opts.output) {
		return nil
	}

	prog.done("rendered", "operator", op.Title, "mode", res.Frame.Mode)
	printSuccess("Rendered %s", StyleValue.Render(op.Title))
	fmt.Println(statsLine(res))
	for _, format := range popts.Formats {
		printFile(paths[format])
	}
	if res.Stats.Overlap {
		printWarning("components overlap; the layout is drawn with a warning overlay")
		printNextStep("See which cells clash", fmt.Sprintf("%s inspect %s", appName, input))
	}
	return nil
}

func needsConverter(formats []string) bool {
	for _, f := range formats {
		switch f {
		case pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatGraph:
			return true
		}
	}
	return false
}

func writesStdout(output string) bool { return output == "-" }

// writeOutput writes data to path, creating parent directories. "-" means
// stdout.
func writeOutput(path string, data []byte) error {
	if writesStdout(path) {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
