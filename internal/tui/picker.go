package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RespectNoodles/HelpBox/pkg/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205"))

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("250"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// PickerModel is the built-in tool picker used when fzf is not installed.
type PickerModel struct {
	catalog  *registry.Registry
	filter   textinput.Model
	matches  []registry.ToolRecord
	cursor   int
	height   int
	selected string
	quitting bool
}

// NewPicker builds a picker over tools in registry order.
func NewPicker(tools []registry.ToolRecord) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 64
	ti.Width = 30
	ti.Focus()

	m := PickerModel{
		catalog: registry.New(tools),
		filter:  ti,
		height:  15,
	}
	m.matches = m.catalog.Tools()
	return m
}

// Selected is the chosen tool name, empty when the picker was cancelled.
func (m PickerModel) Selected() string { return m.selected }

// Matches are the records visible under the current filter.
func (m PickerModel) Matches() []registry.ToolRecord { return m.matches }

func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 3 {
			m.height = 3
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.matches) > 0 {
				m.selected = m.matches[m.cursor].Name
			}
			m.quitting = true
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN:
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m *PickerModel) applyFilter() {
	m.matches = m.catalog.Search(m.filter.Value())
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("toolbox"))
	b.WriteString(" ")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("    no matching tools"))
		b.WriteString("\n")
	}

	start := 0
	if m.cursor >= m.height {
		start = m.cursor - m.height + 1
	}
	end := start + m.height
	if end > len(m.matches) {
		end = len(m.matches)
	}
	for i := start; i < end; i++ {
		t := m.matches[i]
		line := fmt.Sprintf("%s %s %s", t.Name, categoryStyle.Render("["+t.Category+"]"), dimStyle.Render(t.Description))
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(unselectedItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  ↑/↓ move • enter select • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Pick runs the picker on the given terminal streams and returns the chosen
// tool name; ok is false when the operator cancelled.
func Pick(tools []registry.ToolRecord, in io.Reader, out io.Writer) (string, bool, error) {
	p := tea.NewProgram(NewPicker(tools), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("picker failed: %w", err)
	}
	m, ok := final.(PickerModel)
	if !ok || m.Selected() == "" {
		return "", false, nil
	}
	return m.Selected(), true, nil
}
