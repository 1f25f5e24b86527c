package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

var (
	ErrCorrupt        = errors.New("task list is corrupt")
	ErrEncodingFailed = errors.New("encoding task list failed")
	ErrWriteFailed    = errors.New("writing task list failed")
)

// Source reads a named store entry. A missing entry is reported with an
// error wrapping fs.ErrNotExist.
type Source interface {
	Read(name string) ([]byte, error)
}

// Sink replaces the content of a named store entry.
type Sink interface {
	Write(name string, data []byte) error
}

// List is the ordered set of tasks for one period. It is kept sorted by
// Compare after every insertion.
type List struct {
	tasks []Task
}

type document struct {
	Tasks []Task `json:"tasks"`
}

// stored is the decoding side of document. A null body or a missing task
// array leaves a nil pointer.
type stored struct {
	Tasks *[]Task `json:"tasks"`
}

func NewList(tasks ...Task) *List {
	l := &List{}
	for _, t := range tasks {
		l.Add(t)
	}
	return l
}

// Load reads the list stored under name. A missing entry yields an empty
// list; undecodable content is an ErrCorrupt failure, never an empty list.
// Stored order is not trusted, the tasks are sorted again.
func Load(src Source, name string) (*List, error) {
	data, err := src.Read(name)
	if errors.Is(err, fs.ErrNotExist) {
		return &List{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var doc *stored
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, name, err)
	}
	if doc == nil || doc.Tasks == nil {
		return nil, fmt.Errorf("%w: %s: no task array", ErrCorrupt, name)
	}
	tasks := *doc.Tasks
	slices.SortStableFunc(tasks, Compare)
	return &List{tasks: tasks}, nil
}

// Save overwrites the entry under name with the full list in its current order.
func (l *List) Save(dst Sink, name string) error {
	tasks := l.tasks
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(document{Tasks: tasks})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}
	if err := dst.Write(name, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, name, err)
	}
	return nil
}

// Add inserts t and restores the ordering. Duplicate descriptions are allowed.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
	slices.SortStableFunc(l.tasks, Compare)
}

// DeleteByDesc removes the last task whose description is desc.
func (l *List) DeleteByDesc(desc string) bool {
	i := l.lastIndex(desc)
	if i < 0 {
		return false
	}
	return l.DeleteAt(i)
}

// DeleteAt removes the task at position i. Out of range positions are ignored.
func (l *List) DeleteAt(i int) bool {
	if i < 0 || i >= len(l.tasks) {
		return false
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return true
}

// CompleteByDesc marks the last task named desc as completed. It sets the
// flag rather than toggling it.
func (l *List) CompleteByDesc(desc string) bool {
	return l.setCompleted(desc, true)
}

// IncompleteByDesc clears the completed flag of the last task named desc.
func (l *List) IncompleteByDesc(desc string) bool {
	return l.setCompleted(desc, false)
}

// ToggleAt flips the completed flag of the task at position i.
func (l *List) ToggleAt(i int) bool {
	if i < 0 || i >= len(l.tasks) {
		return false
	}
	l.tasks[i].Toggle()
	return true
}

func (l *List) setCompleted(desc string, done bool) bool {
	i := l.lastIndex(desc)
	if i < 0 {
		return false
	}
	l.tasks[i].Completed = done
	return true
}

// lastIndex scans every entry so that, with duplicates, the last one wins.
func (l *List) lastIndex(desc string) int {
	idx := -1
	for i, t := range l.tasks {
		if t.Desc == desc {
			idx = i
		}
	}
	return idx
}

func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) At(i int) Task {
	return l.tasks[i]
}

// Tasks returns a copy of the tasks in order.
func (l *List) Tasks() []Task {
	return slices.Clone(l.tasks)
}

// Lines renders every task, one string per task.
func (l *List) Lines() []string {
	lines := make([]string, 0, len(l.tasks))
	for _, t := range l.tasks {
		lines = append(lines, t.String())
	}
	return lines
}

func (l *List) String() string {
	return strings.Join(l.Lines(), "\n")
}
