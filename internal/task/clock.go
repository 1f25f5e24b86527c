package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedFormat   = errors.New("time should be in format hour:minute")
	ErrInvalidDigitCount = errors.New("number of digits is incorrect")
	ErrNotANumber        = errors.New("does not contain all numbers")
)

// TimeParseError describes why a "HH:MM" string was rejected. Part is
// "hour" or "minute" when the failure is specific to one side.
type TimeParseError struct {
	Input string
	Part  string
	Err   error
}

func (e *TimeParseError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("parse time %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse time %q: %s %v", e.Input, e.Part, e.Err)
}

func (e *TimeParseError) Unwrap() error {
	return e.Err
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   uint8
	Minute uint8
}

// ParseClock converts "H:MM" or "HH:MM" into a Clock. Only the syntax is
// checked; "25:99" is accepted, see Valid.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Clock{}, &TimeParseError{Input: s, Err: ErrMalformedFormat}
	}
	hour, err := parsePart(s, "hour", parts[0])
	if err != nil {
		return Clock{}, err
	}
	minute, err := parsePart(s, "minute", parts[1])
	if err != nil {
		return Clock{}, err
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

func parsePart(input, name, v string) (uint8, error) {
	if len(v) != 1 && len(v) != 2 {
		return 0, &TimeParseError{Input: input, Part: name, Err: ErrInvalidDigitCount}
	}
	// A single leading plus sign is part of the unsigned number syntax.
	n, err := strconv.ParseUint(strings.TrimPrefix(v, "+"), 10, 8)
	if err != nil {
		return 0, &TimeParseError{Input: input, Part: name, Err: ErrNotANumber}
	}
	return uint8(n), nil
}

// Valid reports whether c is a real time of day.
func (c Clock) Valid() bool {
	return c.Hour <= 23 && c.Minute <= 59
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Compare orders clocks by hour, then minute.
func (c Clock) Compare(o Clock) int {
	switch {
	case c.Hour != o.Hour:
		return int(c.Hour) - int(o.Hour)
	default:
		return int(c.Minute) - int(o.Minute)
	}
}

// MarshalJSON encodes the clock as a two element [hour, minute] array.
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]uint8{c.Hour, c.Minute})
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("time %s: want [hour, minute], got %d elements", data, len(pair))
	}
	var hour, minute uint8
	if err := json.Unmarshal(pair[0], &hour); err != nil {
		return fmt.Errorf("time %s: hour: %w", data, err)
	}
	if err := json.Unmarshal(pair[1], &minute); err != nil {
		return fmt.Errorf("time %s: minute: %w", data, err)
	}
	c.Hour, c.Minute = hour, minute
	return nil
}
