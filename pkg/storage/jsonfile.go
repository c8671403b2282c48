package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a whole-file JSON collection on disk. Every operation reads or
// writes the entire file; writes are serialized so the store behaves as a
// single-writer resource within this process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the whole file into v. A missing file is not an error, v is
// left untouched (callers start from their zero collection).
func (fs *FileStore) Load(v any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.load(v)
}

// Save replaces the whole file with the JSON encoding of v
func (fs *FileStore) Save(v any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.save(v)
}

// Update applies fn to the decoded collection and writes the result back,
// all under one lock, so read-modify-write callers cannot interleave.
func (fs *FileStore) Update(v any, fn func() error) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.load(v); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return fs.save(v)
}

func (fs *FileStore) load(v any) error {
	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", fs.path, err)
	}

	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", fs.path, err)
	}
	return nil
}

func (fs *FileStore) save(v any) error {
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", fs.path, err)
	}

	if err := os.WriteFile(fs.path, raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", fs.path, err)
	}
	return nil
}
