// Package session turns key events into edits of a task list. It owns no
// terminal: drivers feed it KeyEvents and draw the View it returns.
package session

import (
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"pask/internal/task"
)

type Mode int

const (
	Normal Mode = iota
	Insert
	Edit
)

func (m Mode) String() string {
	switch m {
	case Insert:
		return "insert"
	case Edit:
		return "edit"
	default:
		return "normal"
	}
}

// Machine is the interactive session over one task list. The cursor is only
// meaningful in Edit mode and stays within the list while it is non-empty.
type Machine struct {
	tasks  *task.List
	keys   Keymap
	mode   Mode
	draft  task.Task
	cursor int
	quit   bool
}

func New(tasks *task.List, keys Keymap) *Machine {
	return &Machine{tasks: tasks, keys: keys, mode: Normal}
}

func (m *Machine) Mode() Mode        { return m.mode }
func (m *Machine) Cursor() int       { return m.cursor }
func (m *Machine) Draft() string     { return m.draft.Desc }
func (m *Machine) Tasks() *task.List { return m.tasks }

// Quitting reports whether quit was requested from Normal mode. Drivers must
// check it before blocking on the next key.
func (m *Machine) Quitting() bool { return m.quit }

// Step applies one key event and returns the view to draw. Keys with no
// meaning in the current mode are ignored.
func (m *Machine) Step(ev KeyEvent) View {
	if m.quit {
		return m.View()
	}
	switch m.mode {
	case Insert:
		m.stepInsert(ev)
	case Edit:
		m.stepEdit(ev)
	default:
		m.stepNormal(ev)
	}
	return m.View()
}

func (m *Machine) stepNormal(ev KeyEvent) {
	switch {
	case key.Matches(ev, m.keys.Insert):
		m.mode = Insert
	case key.Matches(ev, m.keys.Edit):
		m.mode = Edit
	case key.Matches(ev, m.keys.Quit):
		m.quit = true
	}
}

func (m *Machine) stepInsert(ev KeyEvent) {
	switch {
	case key.Matches(ev, m.keys.Cancel):
		m.mode = Normal
	case key.Matches(ev, m.keys.Confirm):
		m.tasks.Add(m.draft)
		m.draft = task.Task{}
	case key.Matches(ev, m.keys.Backspace):
		if _, size := utf8.DecodeLastRuneInString(m.draft.Desc); size > 0 {
			m.draft.Desc = m.draft.Desc[:len(m.draft.Desc)-size]
		}
	case ev.Type == KeyRune && unicode.IsPrint(ev.Rune):
		m.draft.Desc += string(ev.Rune)
	}
}

func (m *Machine) stepEdit(ev KeyEvent) {
	switch {
	case key.Matches(ev, m.keys.Cancel):
		m.mode = Normal
		m.cursor = 0
	case key.Matches(ev, m.keys.Delete):
		if m.tasks.Len() > 0 {
			m.tasks.DeleteAt(m.cursor)
			if m.cursor > 0 {
				m.cursor--
			}
		}
	case key.Matches(ev, m.keys.Confirm):
		if m.tasks.Len() > 0 {
			m.tasks.ToggleAt(m.cursor)
		}
	case key.Matches(ev, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(ev, m.keys.Down):
		if m.cursor+1 < m.tasks.Len() {
			m.cursor++
		}
	}
}
