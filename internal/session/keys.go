package session

import (
	"github.com/charmbracelet/bubbles/key"

	"pask/internal/config"
)

type KeyType int

const (
	KeyRune KeyType = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyUp
	KeyDown
	KeyOther
)

// KeyEvent is one key press delivered by a terminal driver.
type KeyEvent struct {
	Type KeyType
	Rune rune
}

func Rune(r rune) KeyEvent {
	return KeyEvent{Type: KeyRune, Rune: r}
}

func Key(t KeyType) KeyEvent {
	return KeyEvent{Type: t}
}

// Runes turns s into one KeyRune event per rune.
func Runes(s string) []KeyEvent {
	events := make([]KeyEvent, 0, len(s))
	for _, r := range s {
		events = append(events, Rune(r))
	}
	return events
}

// String names the key the way key bindings refer to it.
func (k KeyEvent) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return ""
	}
}

// Keymap holds the bindings the machine reacts to. Confirm commits the
// draft in Insert mode and toggles completion in Edit mode; Cancel leaves
// either mode.
type Keymap struct {
	Insert    key.Binding
	Edit      key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Up        key.Binding
	Down      key.Binding
	Delete    key.Binding
}

func NewKeymap(k config.Keymap) Keymap {
	return Keymap{
		Insert:    key.NewBinding(key.WithKeys(k.Insert), key.WithHelp(k.Insert, "insert a task")),
		Edit:      key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(k.Edit, "edit tasks")),
		Quit:      key.NewBinding(key.WithKeys(k.Quit), key.WithHelp(k.Quit, "exit")),
		Confirm:   key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "confirm")),
		Cancel:    key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "back")),
		Backspace: key.NewBinding(key.WithKeys(k.Backspace), key.WithHelp(k.Backspace, "erase")),
		Up:        key.NewBinding(key.WithKeys("up", k.Up), key.WithHelp("↑/"+k.Up, "up")),
		Down:      key.NewBinding(key.WithKeys("down", k.Down), key.WithHelp("↓/"+k.Down, "down")),
		Delete:    key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete task")),
	}
}

func DefaultKeymap() Keymap {
	return NewKeymap(config.DefaultKeymap())
}

// help returns the bindings shown for mode, described for that mode.
func (km Keymap) help(mode Mode) []key.Binding {
	switch mode {
	case Insert:
		return []key.Binding{
			described(km.Cancel, "stop inserting"),
			described(km.Confirm, "record the task"),
		}
	case Edit:
		return []key.Binding{
			described(km.Cancel, "stop editing"),
			described(km.Up, "move up"),
			described(km.Down, "move down"),
			described(km.Confirm, "complete / uncomplete"),
			km.Delete,
		}
	default:
		return []key.Binding{km.Quit, km.Insert, km.Edit}
	}
}

func described(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
