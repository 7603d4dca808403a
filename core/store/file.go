package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"outfit-picker/core/fault"
	"outfit-picker/core/rotation"
	"outfit-picker/core/snapshot"
)

// FileConfigStore persists the closet configuration as a JSON file.
type FileConfigStore struct {
	path string
}

// NewFileConfigStore creates a config store backed by the given file path.
func NewFileConfigStore(path string) *FileConfigStore {
	return &FileConfigStore{path: path}
}

func (s *FileConfigStore) Load(_ context.Context) (*snapshot.Config, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, fault.Newf(fault.KindConfig, "closet not configured: %s missing", s.path)
	}
	if err != nil {
		return nil, fault.Wrap(fault.KindConfig, fmt.Errorf("failed to read config: %w", err))
	}

	var cfg snapshot.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fault.Wrap(fault.KindConfig, fmt.Errorf("failed to decode config %s: %w", s.path, err))
	}
	return &cfg, nil
}

func (s *FileConfigStore) Save(_ context.Context, cfg *snapshot.Config) error {
	if err := writeJSONAtomic(s.path, cfg); err != nil {
		return fault.Wrap(fault.KindConfig, err)
	}
	return nil
}

// FileStateStore persists rotation state as a JSON file.
type FileStateStore struct {
	path string
	now  func() time.Time
}

// NewFileStateStore creates a state store backed by the given file path.
func NewFileStateStore(path string) *FileStateStore {
	return &FileStateStore{path: path, now: time.Now}
}

func (s *FileStateStore) Load(_ context.Context) (*rotation.StateFile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		// First run: no history to lose yet.
		return rotation.NewStateFile(s.now()), nil
	}
	if err != nil {
		return nil, fault.Wrap(fault.KindCache, fmt.Errorf("failed to read rotation state: %w", err))
	}

	var state rotation.StateFile
	if err := json.Unmarshal(data, &state); err != nil {
		// Corrupt state is never treated as empty.
		return nil, fault.Wrap(fault.KindCache, fmt.Errorf("failed to decode rotation state %s: %w", s.path, err))
	}
	if state.Categories == nil {
		state.Categories = make(map[string]rotation.CategoryState)
	}
	return &state, nil
}

func (s *FileStateStore) Save(_ context.Context, state *rotation.StateFile) error {
	if err := writeJSONAtomic(s.path, state); err != nil {
		return fault.Wrap(fault.KindCache, err)
	}
	return nil
}

// writeJSONAtomic writes v as indented JSON via a temp file in the target
// directory followed by a rename, so readers never observe a partial write.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
