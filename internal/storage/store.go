package storage

import (
	"errors"
	"fmt"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Store holds one entry per task list, keyed by name. Read reports a
// missing entry with an error wrapping fs.ErrNotExist.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Names() ([]string, error)
	Close() error
}

// Open returns the store for backend. root is the directory used by the
// json backend and dbPath the database file used by the sqlite backend.
func Open(backend, root, dbPath string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return OpenDir(root)
	case BackendSQLite:
		return OpenSQLite(dbPath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
