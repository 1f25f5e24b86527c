package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pask/internal/session"
)

type styles struct {
	title     lipgloss.Style
	inputBox  lipgloss.Style
	activeBox lipgloss.Style
	tasksBox  lipgloss.Style
	label     lipgloss.Style
	selected  lipgloss.Style
	empty     lipgloss.Style
	modeBadge lipgloss.Style
}

// borderWidth is the width lipgloss adds outside a style's Width.
const borderWidth = 2

func defaultStyles() styles {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		inputBox:  box.BorderForeground(lipgloss.Color("4")),
		activeBox: box.BorderForeground(lipgloss.Color("12")),
		tasksBox:  box,
		label:     lipgloss.NewStyle().Faint(true),
		selected:  lipgloss.NewStyle().Reverse(true),
		empty:     lipgloss.NewStyle().Faint(true).Italic(true),
		modeBadge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// Model drives a session.Machine from bubbletea key messages.
type Model struct {
	machine *session.Machine
	input   textinput.Model
	help    help.Model
	styles  styles
	width   int
}

func NewModel(machine *session.Machine) Model {
	ti := textinput.New()
	ti.Placeholder = "Task description"
	ti.Prompt = ""
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		machine: machine,
		input:   ti,
		help:    help.New(),
		styles:  defaultStyles(),
	}
	m.syncInput(machine.View())
	return m
}

// Run starts the program on the alternate screen. bubbletea puts the
// terminal back into its original mode on every exit path.
func Run(machine *session.Machine, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(NewModel(machine), opts...).Run(); err != nil {
		return fmt.Errorf("%w: %w", session.ErrTerminal, err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-10, 10)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.machine.Mode()
	v := m.machine.View()
	for _, ev := range keyEvents(msg) {
		v = m.machine.Step(ev)
	}
	if v.Mode != before {
		log.Printf("session mode %s -> %s", before, v.Mode)
	}
	cmd := m.syncInput(v)
	if v.Quit {
		return m, tea.Quit
	}
	return m, cmd
}

// syncInput mirrors the draft into the text input, which only draws it.
func (m *Model) syncInput(v session.View) tea.Cmd {
	m.input.SetValue(v.Draft)
	if v.Mode == session.Insert {
		cmd := m.input.Focus()
		m.input.CursorEnd()
		return cmd
	}
	m.input.Blur()
	return nil
}

// keyEvents translates a bubbletea key message. Pasted text arrives as
// one message holding many runes.
func keyEvents(msg tea.KeyMsg) []session.KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return []session.KeyEvent{session.Key(session.KeyOther)}
		}
		return session.Runes(string(msg.Runes))
	case tea.KeySpace:
		return []session.KeyEvent{session.Rune(' ')}
	case tea.KeyEnter:
		return []session.KeyEvent{session.Key(session.KeyEnter)}
	case tea.KeyEsc:
		return []session.KeyEvent{session.Key(session.KeyEsc)}
	case tea.KeyBackspace:
		return []session.KeyEvent{session.Key(session.KeyBackspace)}
	case tea.KeyUp:
		return []session.KeyEvent{session.Key(session.KeyUp)}
	case tea.KeyDown:
		return []session.KeyEvent{session.Key(session.KeyDown)}
	default:
		return []session.KeyEvent{session.Key(session.KeyOther)}
	}
}

func (m Model) View() string {
	v := m.machine.View()
	var b strings.Builder

	b.WriteString(m.styles.title.Render("pask"))
	b.WriteString("  ")
	b.WriteString(m.styles.modeBadge.Render(strings.ToUpper(v.Mode.String())))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(v.Help))
	b.WriteString("\n\n")

	b.WriteString(m.styles.label.Render("Enter Task"))
	b.WriteString("\n")
	box := m.styles.inputBox
	if v.Mode == session.Insert {
		box = m.styles.activeBox
	}
	b.WriteString(m.sized(box).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.styles.label.Render("Tasks"))
	b.WriteString("\n")
	b.WriteString(m.sized(m.styles.tasksBox).Render(m.renderTaskList(v)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTaskList(v session.View) string {
	if len(v.Tasks) == 0 {
		return m.styles.empty.Render("No tasks yet.")
	}
	row := -1
	if v.Cursor != nil && v.Cursor.Region == session.RegionTasks {
		row = v.Cursor.Row
	}
	lines := make([]string, 0, len(v.Tasks))
	for i, line := range v.Tasks {
		if i == row {
			lines = append(lines, "> "+m.styles.selected.Render(line))
			continue
		}
		lines = append(lines, "  "+line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) sized(s lipgloss.Style) lipgloss.Style {
	if m.width <= borderWidth {
		return s
	}
	return s.Width(m.width - borderWidth)
}
