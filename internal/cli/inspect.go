package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
	"github.com/matzehuels/gatexray/pkg/io"
	"github.com/matzehuels/gatexray/pkg/observability"
	"github.com/matzehuels/gatexray/pkg/render/xray/sink"
	"github.com/matzehuels/gatexray/pkg/view"
)

// importOperator reads an operator file, or stdin for "-".
func importOperator(path string) (circuit.Operator, error) {
	if path == "-" {
		return io.ReadOperator(os.Stdin)
	}
	return io.ImportOperator(path)
}

// inspectCommand prints an operator's grid diagnostics and a terminal
// preview.
func (c *CLI) inspectCommand() *cobra.Command {
	var catalogPath, mode string

	cmd := &cobra.Command{
		Use:   "inspect [operator.json]",
		Short: "Show an operator's grid, overlaps and unknown gates in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := view.ParseMode(mode)
			if err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), args[0], catalogPath, m)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "gate catalog file (.toml or .yaml)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "xray", "display mode: compact, xray")
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input, catalogPath string, mode view.Mode) error {
	op, err := importOperator(input)
	if err != nil {
		return err
	}
	cat, err := c.loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	hooks := observability.Pipeline()
	hooks.OnResolveStart(ctx, op.Title, len(op.Components))
	frame, err := view.Derive(op, mode, cat)
	hooks.OnResolveComplete(ctx, op.Title, frame.Mode.String(), frame.Overlap(), 0, err)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(op.Title))
	printKeyValue("custom", strconv.FormatBool(op.Custom))
	printKeyValue("rows", strconv.Itoa(op.Rows()))
	printKeyValue("components", strconv.Itoa(len(op.Components)))
	printKeyValue("mode", frame.Mode.String())

	if frame.Plan != nil {
		describePlan(op, *frame.Plan, cat)
	} else if mode == view.Exploded && !op.Explodable() {
		printInfo("not a custom operator; showing the compact symbol")
	} else if mode == view.Exploded {
		printInfo("no components; the x-ray view is empty")
	}

	if preview := sink.TerminalFrame(frame); preview != "" {
		fmt.Println()
		fmt.Println(preview)
	}
	return nil
}

func describePlan(op circuit.Operator, plan grid.Plan, cat *circuit.Catalog) {
	printKeyValue("grid", fmt.Sprintf("%dx%d from %s", plan.Box.Cols(), plan.Box.Rows(),
		grid.Cell{X: plan.Box.MinX, Y: plan.Box.MinY}))
	printKeyValue("drawn", strconv.Itoa(len(plan.Entries)))

	if missing := cat.Missing(op.Components); len(missing) > 0 {
		printWarning("unknown gate types: %s", strings.Join(missing, ", "))
	}
	for _, s := range plan.Skipped {
		printDetail("skipped #%d %s", s.Index, op.Components[s.Index])
	}

	if !plan.Overlap {
		printSuccess("no overlapping components")
		return
	}
	cells := make([]string, len(plan.Conflicts))
	for i, cell := range plan.Conflicts {
		cells[i] = cell.String()
	}
	printError("overlap in %d cell(s): %s", len(plan.Conflicts), strings.Join(cells, " "))
	for _, p := range grid.OverlappingPairs(op.Components) {
		printDetail("%s %s %s", op.Components[p[0]], iconError, op.Components[p[1]])
	}
}
