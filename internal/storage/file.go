package storage

import (
	"context"
	"os"
	"path/filepath"
)

// fileStorage implements SessionStorage as a single JSON blob on local disk.
// This is the default backend and the closest analog to the browser-local
// storage the client used.
type fileStorage struct {
	path string
}

// NewFileStorage creates a file-backed session storage at the given path.
// Parent directories are created on demand.
func NewFileStorage(path string) (SessionStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &fileStorage{path: path}, nil
}

func (f *fileStorage) Get(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *fileStorage) Set(_ context.Context, data []byte) error {
	// Write-then-rename so a crash mid-write never leaves a torn blob.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *fileStorage) Remove(_ context.Context) error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
