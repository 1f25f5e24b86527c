package task

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want Clock
	}{
		{"9:5", Clock{9, 5}},
		{"09:05", Clock{9, 5}},
		{"23:59", Clock{23, 59}},
		{"0:0", Clock{0, 0}},
		{"25:99", Clock{25, 99}},
		{"+9:05", Clock{9, 5}},
		{"12:+5", Clock{12, 5}},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseClockErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
		part string
	}{
		{"", ErrMalformedFormat, ""},
		{"930", ErrMalformedFormat, ""},
		{"1:2:3", ErrMalformedFormat, ""},
		{"123:00", ErrInvalidDigitCount, "hour"},
		{":30", ErrInvalidDigitCount, "hour"},
		{"12:", ErrInvalidDigitCount, "minute"},
		{"12:345", ErrInvalidDigitCount, "minute"},
		{"ab:00", ErrNotANumber, "hour"},
		{"12:x1", ErrNotANumber, "minute"},
		{"-1:00", ErrNotANumber, "hour"},
		{"+:00", ErrNotANumber, "hour"},
		{"++:00", ErrNotANumber, "hour"},
	}
	for _, tt := range tests {
		_, err := ParseClock(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseClock(%q) error = %v, want %v", tt.in, err, tt.want)
			continue
		}
		var perr *TimeParseError
		if !errors.As(err, &perr) {
			t.Fatalf("ParseClock(%q) error is %T, want *TimeParseError", tt.in, err)
		}
		if perr.Part != tt.part {
			t.Errorf("ParseClock(%q) part = %q, want %q", tt.in, perr.Part, tt.part)
		}
	}
}

func TestClockString(t *testing.T) {
	c, err := ParseClock("9:5")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.String(); got != "09:05" {
		t.Fatalf("String() = %q, want %q", got, "09:05")
	}
}

func TestClockValid(t *testing.T) {
	if !(Clock{23, 59}).Valid() {
		t.Error("23:59 should be valid")
	}
	if (Clock{24, 0}).Valid() {
		t.Error("24:00 should be invalid")
	}
	if (Clock{12, 60}).Valid() {
		t.Error("12:60 should be invalid")
	}
}

func TestClockJSON(t *testing.T) {
	data, err := json.Marshal(Clock{7, 30})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[7,30]" {
		t.Fatalf("Marshal = %s, want [7,30]", data)
	}
	var c Clock
	if err := json.Unmarshal([]byte("[18,5]"), &c); err != nil {
		t.Fatal(err)
	}
	if c != (Clock{18, 5}) {
		t.Fatalf("Unmarshal = %+v", c)
	}
}

func TestClockJSONRejectsBadPairs(t *testing.T) {
	for _, in := range []string{`[7]`, `[7,1,9]`, `[]`, `[7,256]`, `[-1,0]`, `"07:00"`, `{}`} {
		var c Clock
		if err := json.Unmarshal([]byte(in), &c); err == nil {
			t.Errorf("Unmarshal(%s) = %+v, want error", in, c)
		}
	}
}
