package task

import "fmt"

// Task is one actionable item. Desc is the lookup key inside a List, while
// Start is what tasks are compared and ordered by.
type Task struct {
	Desc      string `json:"desc"`
	Start     *Clock `json:"start_time"`
	End       *Clock `json:"end_time"`
	Completed bool   `json:"completed"`
}

// New builds a task from raw user input. An empty start or end means the
// time is absent.
func New(desc, start, end string) (Task, error) {
	t := Task{Desc: desc}
	if start != "" {
		c, err := ParseClock(start)
		if err != nil {
			return Task{}, err
		}
		t.Start = &c
	}
	if end != "" {
		c, err := ParseClock(end)
		if err != nil {
			return Task{}, err
		}
		t.End = &c
	}
	return t, nil
}

func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// Equal reports whether both tasks share the same start time. Two untimed
// tasks are always equal, whatever their descriptions.
func (t Task) Equal(o Task) bool {
	return Compare(t, o) == 0
}

// Compare orders timed tasks before untimed ones, then by start time.
func Compare(a, b Task) int {
	switch {
	case a.Start != nil && b.Start != nil:
		return a.Start.Compare(*b.Start)
	case a.Start != nil:
		return -1
	case b.Start != nil:
		return 1
	default:
		return 0
	}
}

func (t Task) String() string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}
	switch {
	case t.Start != nil && t.End != nil:
		return fmt.Sprintf("%s %s %s - %s", checkbox, t.Desc, t.Start, t.End)
	case t.Start != nil:
		return fmt.Sprintf("%s %s %s", checkbox, t.Desc, t.Start)
	default:
		return fmt.Sprintf("%s %s", checkbox, t.Desc)
	}
}
