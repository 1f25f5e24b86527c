package storage

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Dir stores every list as a JSON file under a root directory.
type Dir struct {
	root string
}

func OpenDir(root string) (*Dir, error) {
	if root == "" {
		return nil, errors.New("storage root is empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	return &Dir{root: root}, nil
}

// Read returns the file content; os.ReadFile already wraps fs.ErrNotExist.
func (d *Dir) Read(name string) ([]byte, error) {
	return os.ReadFile(d.path(name))
}

func (d *Dir) Write(name string, data []byte) error {
	return os.WriteFile(d.path(name), data, 0o644)
}

func (d *Dir) Names() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

func (d *Dir) Close() error {
	return nil
}

func (d *Dir) path(name string) string {
	return filepath.Join(d.root, filepath.Base(name))
}
