package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"pask/internal/session"
)

const (
	keyEsc       = 0x1b
	keyDelete    = 0x7f
	keyBackspace = 0x08
)

// Plain is a session.Terminal over a byte stream. It is used when stdin is
// not a terminal, so a session can be scripted:
//
//	printf 'igym\r\x1bq' | pask day tui --plain
type Plain struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPlain(r io.Reader, w io.Writer) *Plain {
	return &Plain{in: bufio.NewReader(r), out: w}
}

func (p *Plain) Enter() error { return nil }
func (p *Plain) Leave() error { return nil }

// ReadKey decodes one key. "\r\n" counts as a single enter and the ANSI
// arrow sequences ESC [ A and ESC [ B map to up and down when already
// buffered.
func (p *Plain) ReadKey() (session.KeyEvent, error) {
	r, _, err := p.in.ReadRune()
	if err != nil {
		return session.KeyEvent{}, err
	}
	switch r {
	case '\r':
		if next, err := p.in.Peek(1); err == nil && next[0] == '\n' {
			_, _ = p.in.Discard(1)
		}
		return session.Key(session.KeyEnter), nil
	case '\n':
		return session.Key(session.KeyEnter), nil
	case keyDelete, keyBackspace:
		return session.Key(session.KeyBackspace), nil
	case keyEsc:
		return p.readEscape(), nil
	}
	if unicode.IsPrint(r) {
		return session.Rune(r), nil
	}
	return session.Key(session.KeyOther), nil
}

func (p *Plain) readEscape() session.KeyEvent {
	if p.in.Buffered() < 2 {
		return session.Key(session.KeyEsc)
	}
	seq, err := p.in.Peek(2)
	if err != nil || seq[0] != '[' {
		return session.Key(session.KeyEsc)
	}
	switch seq[1] {
	case 'A':
		p.in.Discard(2)
		return session.Key(session.KeyUp)
	case 'B':
		p.in.Discard(2)
		return session.Key(session.KeyDown)
	}
	return session.Key(session.KeyEsc)
}

func (p *Plain) Render(v session.View) error {
	_, err := io.WriteString(p.out, RenderPlain(v))
	return err
}

// RenderPlain draws a frame without styling. The caret is "_" on the input
// line in Insert mode and ">" on the selected task in Edit mode.
func RenderPlain(v session.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- %s --\n", v.Mode)
	b.WriteString(v.HelpText())
	b.WriteString("\n")

	b.WriteString("Enter Task: ")
	b.WriteString(v.Draft)
	if v.Cursor != nil && v.Cursor.Region == session.RegionInput {
		b.WriteString("_")
	}
	b.WriteString("\n")

	row := -1
	if v.Cursor != nil && v.Cursor.Region == session.RegionTasks {
		row = v.Cursor.Row
	}
	for i, line := range v.Tasks {
		marker := "  "
		if i == row {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
