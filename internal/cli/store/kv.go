package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// KV is the durable key-value collaborator the combination store persists
// through. Implementations must be safe for use from a single goroutine;
// the store serializes its own writes.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// ErrStorage marks infrastructure failures of a KV backend, as opposed to
// a missing key. Callers may retry persistence on it.
var ErrStorage = errors.New("durable storage unavailable")

// FileKV keeps each key in its own file under a base directory.
type FileKV struct {
	dir string
}

// NewFileKV creates the base directory if needed and returns a FileKV.
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		return nil, errors.New("empty base dir for file kv")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads the file for key. A missing file is not an error.
func (f *FileKV) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return string(b), true, nil
}

// Set writes the value through a temp file so a crash mid-write never
// leaves a truncated blob behind.
func (f *FileKV) Set(key, value string) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
