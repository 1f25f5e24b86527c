package session

import (
	"errors"
	"fmt"
)

var ErrTerminal = errors.New("terminal")

// Terminal is the capability a driver provides to Loop. Leave must undo
// whatever Enter managed to set up, even after a partial Enter.
type Terminal interface {
	Enter() error
	Leave() error
	ReadKey() (KeyEvent, error)
	Render(View) error
}

// Loop runs the read-eval-render cycle until the machine quits. Leave runs
// on every return path; terminal failures are wrapped in ErrTerminal.
func Loop(t Terminal, m *Machine) (err error) {
	defer func() {
		if lerr := t.Leave(); lerr != nil && err == nil {
			err = fmt.Errorf("%w: leave session: %w", ErrTerminal, lerr)
		}
	}()
	if err := t.Enter(); err != nil {
		return fmt.Errorf("%w: enter session: %w", ErrTerminal, err)
	}
	for {
		if err := t.Render(m.View()); err != nil {
			return fmt.Errorf("%w: render: %w", ErrTerminal, err)
		}
		if m.Quitting() {
			return nil
		}
		ev, err := t.ReadKey()
		if err != nil {
			return fmt.Errorf("%w: read key: %w", ErrTerminal, err)
		}
		m.Step(ev)
	}
}
