package slot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File persists the session payload as <dir>/currentUser.json.
type File struct {
	path string
}

// NewFile builds a file-backed slot rooted at dir, creating dir as needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("session dir: %w", err)
	}
	return &File{path: filepath.Join(dir, Key+".json")}, nil
}

func (f *File) Load(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session slot: %w", err)
	}
	return payload, nil
}

func (f *File) Save(_ context.Context, payload []byte) error {
	if err := os.WriteFile(f.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}
	return nil
}

func (f *File) Clear(_ context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}
