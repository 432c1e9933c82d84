package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/grid"
	"github.com/matzehuels/gatexray/pkg/render/xray/sink"
	"github.com/matzehuels/gatexray/pkg/view"
)

// Toggle button styles
var (
	toggleOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorCyan).Padding(0, 1)
	toggleOffStyle = lipgloss.NewStyle().Foreground(colorGray).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(colorDim)
	viewDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	viewErrStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// headerLines is the number of lines View draws above the operator.
const headerLines = 3

// ViewModel is the bubbletea model for interactively toggling one operator
// between its compact and x-ray views.
type ViewModel struct {
	Operator circuit.Operator
	Catalog  grid.Catalog

	state  *view.State
	toggle *view.Toggle
	frame  view.Frame
	hover  bool
	err    error

	// drawn size of the operator preview, used for hover hit-testing
	width, height int
}

// NewViewModel creates a view model for op, starting in compact mode.
func NewViewModel(op circuit.Operator, cat grid.Catalog) ViewModel {
	state := view.NewState(op)
	m := ViewModel{
		Operator: op,
		Catalog:  cat,
		state:    state,
		toggle:   view.NewToggle(state),
	}
	m.refresh()
	return m
}

// Mode returns the mode currently shown.
func (m ViewModel) Mode() view.Mode { return m.frame.Mode }

// Err returns the last derivation error, if any.
func (m ViewModel) Err() error { return m.err }

func (m *ViewModel) refresh() {
	frame, err := view.DeriveState(m.Operator, m.state, m.Catalog)
	m.err = err
	if err != nil {
		return
	}
	m.frame = frame
	preview := sink.TerminalFrame(frame)
	m.width, m.height = lipgloss.Width(preview), lipgloss.Height(preview)
	if preview == "" {
		m.width, m.height = 0, 0
	}
}

// click routes a pointer event to the toggle. The operator body never sees
// an event the toggle consumed.
func (m *ViewModel) click() {
	ev := &view.Event{}
	if m.toggle.HandleClick(ev) {
		m.refresh()
	}
}

func (m ViewModel) Init() tea.Cmd {
	return nil
}

func (m ViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "x", " ", "enter":
			m.click()
		}
	case tea.MouseMsg:
		m.hover = m.over(msg.X, msg.Y)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.onButton(msg.Y) {
			m.click()
		}
	}
	return m, nil
}

func (m ViewModel) over(x, y int) bool {
	top := headerLines
	return x >= 0 && x < max(m.width, 1) && y >= top && y <= top+m.height
}

// onButton reports whether row y is the toggle line below the preview.
func (m ViewModel) onButton(y int) bool {
	return m.toggle.Visible(m.hover) && y == headerLines+m.height
}

func (m ViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Operator.Title))
	b.WriteString("\n")
	help := "q quit"
	if m.toggle != nil {
		help = "x/space toggle  hover to reveal  q quit"
	}
	b.WriteString(viewDimStyle.Render(help))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(viewErrStyle.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if preview := sink.TerminalFrame(m.frame); preview != "" {
		b.WriteString(preview)
		b.WriteString("\n")
	} else {
		b.WriteString(viewDimStyle.Render("(empty)"))
		b.WriteString("\n")
	}

	if m.toggle.Visible(m.hover) {
		if m.toggle.Active() {
			b.WriteString(toggleOnStyle.Render("◉ " + view.ToggleLabel))
		} else {
			b.WriteString(toggleOffStyle.Render("○ " + view.ToggleLabel))
		}
		b.WriteString("\n")
	}

	if m.frame.Overlap() {
		b.WriteString(viewErrStyle.Render(fmt.Sprintf("%s overlapping components", iconError)))
		b.WriteString("\n")
	}
	return b.String()
}

// viewCommand creates the interactive view command.
func (c *CLI) viewCommand() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "view [operator.json]",
		Short: "Interactively toggle an operator between compact and x-ray",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := importOperator(args[0])
			if err != nil {
				return err
			}
			cat, err := c.loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			if !op.Explodable() {
				printInfo("%s is not a custom operator; there is no x-ray view", op.Title)
			}

			p := tea.NewProgram(NewViewModel(op, cat),
				tea.WithContext(cmd.Context()),
				tea.WithMouseAllMotion(),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(ViewModel); ok && m.Err() != nil {
				return m.Err()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "gate catalog file (.toml or .yaml)")
	return cmd
}
