package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/errors"
)

// catalogCommand creates the catalog command group.
func (c *CLI) catalogCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List, check and export gate catalogs",
	}
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "gate catalog file (.toml or .yaml, default builtin)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List gate types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			fmt.Println(catalogTable(cat))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check [operator.json...]",
		Short: "Report gate ids the catalog does not know",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			failed := 0
			for _, path := range args {
				op, err := importOperator(path)
				if err != nil {
					printError("%s: %s", path, errors.UserMessage(err))
					failed++
					continue
				}
				if missing := cat.Missing(op.Components); len(missing) > 0 {
					printError("%s: unknown gate types %s", path, strings.Join(missing, ", "))
					failed++
					continue
				}
				printSuccess("%s", path)
			}
			if failed > 0 {
				return errors.New(errors.ErrCodeUnknownGateType, "%d of %d operator(s) failed the check", failed, len(args))
			}
			return nil
		},
	})

	var exportPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as TOML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			if exportPath == "" || exportPath == "-" {
				return circuit.WriteCatalog(os.Stdout, cat, circuit.FormatTOML)
			}
			format, err := circuit.FormatFromPath(exportPath)
			if err != nil {
				return err
			}
			f, err := os.Create(exportPath)
			if err != nil {
				return err
			}
			if err := circuit.WriteCatalog(f, cat, format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			printSuccess("Exported %d gate types", cat.Len())
			printFile(exportPath)
			return nil
		},
	}
	export.Flags().StringVarP(&exportPath, "output", "o", "", "output file (.toml, .yaml or .yml; default TOML on stdout)")
	cmd.AddCommand(export)

	return cmd
}

// catalogTable renders cat with each fill shown as a color swatch.
func catalogTable(cat *circuit.Catalog) string {
	entries := cat.Entries()
	rows := make([][]string, 0, len(entries))
	for _, g := range entries {
		icon := g.Icon
		if g.IconIsMarkup() {
			icon = "<svg>"
		}
		rows = append(rows, []string{g.ID, g.Title, icon, g.Fill, ""})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Title", "Icon", "Fill", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 0:
				return base.Bold(true).Foreground(colorCyan)
			case 3:
				return base.Foreground(colorGray)
			case 4:
				if row >= 0 && row < len(entries) {
					return base.Background(lipgloss.Color(entries[row].Fill)).Width(4)
				}
			}
			return base
		}).
		Render()
}
