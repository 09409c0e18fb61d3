package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rohitraj29/big-data-stack/inventory"
	"github.com/rohitraj29/big-data-stack/logger"
	"github.com/rohitraj29/big-data-stack/topology"
)

var interactiveOutputDir string

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build the cluster inventory interactively",
	Long: `Assemble a cluster definition in a terminal UI: enter the cluster name
and the node addresses, preview the exact output the run would produce, then
write it on confirmation.

In this mode the membership listing is saved to <inventory-dir>/inventory
instead of standard output, next to the host_vars directory.

Keyboard shortcuts:
  Enter - accept input / add address / (on the preview) write and finish
  Esc   - go back one step
  Q     - quit without writing (preview screen)

Examples:
  big-data-stack interactive
  big-data-stack interactive -o ./deploy`,
	Run: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().StringVarP(&interactiveOutputDir, "inventory-dir", "o", topology.DefaultOutputDir, "Output root for the inventory and host_vars files")
}

type buildStep int

const (
	stepClusterName buildStep = iota
	stepAddresses
	stepPreview
	stepDone
)

type builderModel struct {
	step      buildStep
	nameInput textinput.Model
	addrInput textinput.Model
	addresses []string
	preview   viewport.Model
	config    *topology.Config
	inv       *inventory.Inventory
	logBuffer *logger.LogBuffer
	err       error
	savedTo   string
	width     int
	height    int
}

func initialBuilder(outputDir string) builderModel {
	// Initialize logger for interactive mode (no stderr, only log buffer):
	// warnings show up in the UI instead of corrupting it
	logBuffer := logger.GetGlobalLogBuffer()
	logger.Init("", false)
	logger.AddOutput(logger.NewLogBufferWriter(logBuffer))

	name := textinput.New()
	name.Placeholder = topology.DefaultClusterName
	name.CharLimit = 64
	name.Focus()

	addr := textinput.New()
	addr.Placeholder = "10.0.0.1"
	addr.CharLimit = 64

	config := topology.DefaultConfig()
	config.OutputDir = outputDir

	return builderModel{
		step:      stepClusterName,
		nameInput: name,
		addrInput: addr,
		preview:   viewport.New(80, 20),
		config:    config,
		logBuffer: logBuffer,
	}
}

func (m builderModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m builderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.step {
		case stepClusterName:
			return m.handleClusterName(msg)
		case stepAddresses:
			return m.handleAddresses(msg)
		case stepPreview:
			return m.handlePreview(msg)
		case stepDone:
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = msg.Width - 6
		if m.preview.Width < 20 {
			m.preview.Width = 20
		}
		m.preview.Height = msg.Height - 14
		if m.preview.Height < 5 {
			m.preview.Height = 5
		}
		return m, nil
	}

	return m, nil
}

func (m builderModel) handleClusterName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			name = topology.DefaultClusterName
		}
		m.config.ClusterName = name
		m.err = nil
		m.step = stepAddresses
		m.nameInput.Blur()
		return m, m.addrInput.Focus()

	case "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m builderModel) handleAddresses(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.addrInput.Value())
		if text != "" {
			m.addresses = append(m.addresses, text)
			m.addrInput.SetValue("")
			m.err = nil
			return m, nil
		}
		if len(m.addresses) == 0 {
			m.err = fmt.Errorf("at least one address is required")
			return m, nil
		}
		return m.buildPreview()

	case "esc":
		m.err = nil
		m.step = stepClusterName
		m.addrInput.Blur()
		return m, m.nameInput.Focus()
	}

	var cmd tea.Cmd
	m.addrInput, cmd = m.addrInput.Update(msg)
	return m, cmd
}

// buildPreview runs the assignment on the collected input and fills the
// preview pane. The buffer is cleared first so warnings from a previous
// preview of the same session do not linger.
func (m builderModel) buildPreview() (tea.Model, tea.Cmd) {
	m.logBuffer.Clear()
	m.config.Addresses = m.addresses

	engine, err := topology.New(m.config, logger.Warnf)
	if err != nil {
		m.err = err
		return m, nil
	}
	inv, err := engine.Build()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.inv = inv
	m.preview.SetContent(previewContent(inv))
	m.preview.GotoTop()
	m.step = stepPreview
	m.addrInput.Blur()
	return m, nil
}

func (m builderModel) handlePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "w":
		if err := m.write(); err != nil {
			logger.Errorf("write failed: %v", err)
			m.err = err
			return m, nil
		}
		m.err = nil
		m.step = stepDone
		return m, nil

	case "esc":
		m.err = nil
		m.step = stepAddresses
		return m, m.addrInput.Focus()

	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// write emits both outputs below the resolved root: the host_vars files and
// the membership listing as <root>/inventory.
func (m *builderModel) write() error {
	hostVarsDir, err := m.config.HostVarsDir()
	if err != nil {
		return err
	}
	if err := m.inv.WriteHostVars(hostVarsDir); err != nil {
		return err
	}

	root, err := m.config.ResolveOutputDir()
	if err != nil {
		return err
	}
	path := filepath.Join(root, topology.InventoryFileName)
	if _, err := os.Stat(path); err == nil {
		logger.Warnf("overwriting existing inventory file %s", path)
	}
	if err := os.WriteFile(path, []byte(m.inv.Membership()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	m.savedTo = root
	return nil
}

// previewContent renders exactly what a write would produce: the membership
// listing followed by every host vars document.
func previewContent(inv *inventory.Inventory) string {
	var b strings.Builder
	b.WriteString(inv.Membership())
	b.WriteString("# host_vars\n")
	for _, n := range inv.AllNodes() {
		data, err := n.MarshalVars()
		if err != nil {
			fmt.Fprintf(&b, "--- %s\nerror: %v\n", n.Name(), err)
			continue
		}
		fmt.Fprintf(&b, "--- %s\n%s", n.Name(), data)
	}
	return b.String()
}

func (m builderModel) View() string {
	var s strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 2)
	s.WriteString(titleStyle.Render("Cluster Inventory Builder"))
	s.WriteString("\n\n")

	// Status
	if m.err != nil {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\n")
	}

	switch m.step {
	case stepClusterName:
		s.WriteString("Cluster name (node names are <name><ordinal>):\n\n")
		s.WriteString("  " + m.nameInput.View())
		s.WriteString("\n")

	case stepAddresses:
		fmt.Fprintf(&s, "Cluster %q, %d address(es):\n\n", m.config.ClusterName, len(m.addresses))
		for i, addr := range m.addresses {
			fmt.Fprintf(&s, "  %s%d  %s\n", m.config.ClusterName, i, addr)
		}
		s.WriteString("\n  " + m.addrInput.View())
		s.WriteString("\n")

	case stepPreview:
		boxStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		s.WriteString(boxStyle.Render(m.preview.View()))
		s.WriteString("\n")
		s.WriteString(m.renderWarnings())

	case stepDone:
		fmt.Fprintf(&s, "Wrote inventory and %d host vars file(s) to %s\n", len(m.inv.AllNodes()), m.savedTo)
		s.WriteString(m.renderWarnings())
	}

	// Instructions
	instructionsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		PaddingTop(1)

	var help string
	switch m.step {
	case stepClusterName:
		help = "Enter to accept | Esc to quit"
	case stepAddresses:
		help = "Enter to add an address | empty Enter to preview | Esc to go back"
	case stepPreview:
		help = "Enter to write | ↑/↓ to scroll | Esc to go back | Q to quit without writing"
	case stepDone:
		help = "Press any key to exit"
	}
	s.WriteString(instructionsStyle.Render(help))
	s.WriteString("\n")

	return s.String()
}

// renderWarnings shows the most recent warning lines under the preview. The
// buffer also receives info and error lines; the pane counts and shows only
// the warnings, errors are already surfaced through the status line.
func (m builderModel) renderWarnings() string {
	var warnings []logger.LogEntry
	for _, entry := range m.logBuffer.GetAll() {
		if entry.Level == "WARN" {
			warnings = append(warnings, entry)
		}
	}
	if len(warnings) == 0 {
		return "\nNo warnings.\n"
	}

	var s strings.Builder
	fmt.Fprintf(&s, "\n%d warning(s):\n", len(warnings))
	recent := warnings
	if len(recent) > 6 {
		recent = recent[len(recent)-6:]
	}
	for _, entry := range recent {
		s.WriteString("  " + logger.FormatLogEntry(entry) + "\n")
	}
	return s.String()
}

func runInteractive(cmd *cobra.Command, args []string) {
	p := tea.NewProgram(initialBuilder(interactiveOutputDir))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running interactive mode: %v\n", err)
	}
}
