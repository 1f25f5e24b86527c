package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Region is the part of the screen a caret belongs to.
type Region int

const (
	RegionInput Region = iota
	RegionTasks
)

// Cursor places the caret: Col is a display column on the input line,
// Row a line of the task list.
type Cursor struct {
	Region Region
	Row    int
	Col    int
}

// View is everything a driver needs to draw one frame.
type View struct {
	Mode   Mode
	Help   []key.Binding
	Draft  string
	Tasks  []string
	Cursor *Cursor
	Quit   bool
}

// HelpText renders the help bindings as plain text.
func (v View) HelpText() string {
	parts := make([]string, 0, len(v.Help))
	for _, b := range v.Help {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func (m *Machine) View() View {
	v := View{
		Mode:  m.mode,
		Help:  m.keys.help(m.mode),
		Draft: m.draft.Desc,
		Tasks: m.tasks.Lines(),
		Quit:  m.quit,
	}
	switch m.mode {
	case Insert:
		v.Cursor = &Cursor{Region: RegionInput, Col: lipgloss.Width(m.draft.Desc)}
	case Edit:
		v.Cursor = &Cursor{Region: RegionTasks, Row: m.cursor}
	}
	return v
}
