package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pask/internal/session"
	"pask/internal/task"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func newTestModel(t *testing.T, tasks ...task.Task) (Model, *task.List) {
	t.Helper()
	list := task.NewList(tasks...)
	return NewModel(session.New(list, session.DefaultKeymap())), list
}

func TestModelInsertsTask(t *testing.T) {
	m, list := newTestModel(t)
	_, cmd := send(t, m,
		runes("i"),
		runes("call"),
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		runes("mom"),
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	if cmd != nil {
		t.Fatalf("unexpected command %v", cmd)
	}
	if list.String() != "[ ] call mom" {
		t.Fatalf("list = %q", list.String())
	}
}

func TestModelQuitReturnsQuitCmd(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := send(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestModelIgnoresCtrlC(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd != nil {
		t.Fatal("ctrl+c is not a quit key")
	}
}

func TestModelViewShowsTasksAndMode(t *testing.T) {
	gym, err := task.New("gym", "7:00", "8:00")
	if err != nil {
		t.Fatal(err)
	}
	read, err := task.New("read", "", "")
	if err != nil {
		t.Fatal(err)
	}
	m, _ := newTestModel(t, gym, read)
	out, _ := send(t, m,
		tea.WindowSizeMsg{Width: 120, Height: 24},
		runes("e"),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	view := out.View()
	for _, want := range []string{"EDIT", "[ ] gym 07:00 - 08:00", "[x] read", "Enter Task", "delete task"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelEmptyList(t *testing.T) {
	m, _ := newTestModel(t)
	if view := m.View(); !strings.Contains(view, "No tasks yet.") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want []session.KeyEvent
	}{
		{runes("j"), []session.KeyEvent{session.Rune('j')}},
		{runes("ab"), []session.KeyEvent{session.Rune('a'), session.Rune('b')}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q"), Alt: true}, []session.KeyEvent{session.Key(session.KeyOther)}},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []session.KeyEvent{session.Rune(' ')}},
		{tea.KeyMsg{Type: tea.KeyBackspace}, []session.KeyEvent{session.Key(session.KeyBackspace)}},
		{tea.KeyMsg{Type: tea.KeyUp}, []session.KeyEvent{session.Key(session.KeyUp)}},
		{tea.KeyMsg{Type: tea.KeyTab}, []session.KeyEvent{session.Key(session.KeyOther)}},
	}
	for _, tt := range tests {
		got := keyEvents(tt.msg)
		if len(got) != len(tt.want) {
			t.Fatalf("keyEvents(%v) = %v", tt.msg, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("keyEvents(%v)[%d] = %+v, want %+v", tt.msg, i, got[i], tt.want[i])
			}
		}
	}
}
