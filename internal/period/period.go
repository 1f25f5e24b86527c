// Package period maps a list period to the store entry that holds its tasks.
package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Kind int

const (
	Goals Kind = iota
	Day
	Week
	Month
)

var ErrUnknownKind = errors.New("unknown list")

var kindNames = []string{"goals", "day", "week", "month"}

// Kinds lists every period in display order.
func Kinds() []Kind {
	return []Kind{Goals, Day, Week, Month}
}

func Parse(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnknownKind, s, strings.Join(kindNames, ", "))
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// EntryName returns the store entry for k at the given moment. Day, month
// and year use no zero padding. The week entry is named after the Sunday
// that starts the week but keeps the month and year of now.
func EntryName(k Kind, now time.Time) string {
	day, month, year := now.Day(), int(now.Month()), now.Year()
	switch k {
	case Day:
		return fmt.Sprintf("%d-%d-%d-day.json", day, month, year)
	case Week:
		sunday := now.AddDate(0, 0, -int(now.Weekday()))
		return fmt.Sprintf("%d-%d-%d-week.json", sunday.Day(), month, year)
	case Month:
		return fmt.Sprintf("%d-month.json", month)
	default:
		return "goals.json"
	}
}

// Owns reports whether the store entry name was produced by EntryName for k.
func Owns(k Kind, name string) bool {
	if k == Goals {
		return name == "goals.json"
	}
	return strings.HasSuffix(name, "-"+k.String()+".json")
}
