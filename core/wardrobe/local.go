package wardrobe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LocalLister lists directories on the local filesystem.
type LocalLister struct{}

// NewLocalLister creates a lister over the local disk.
func NewLocalLister() *LocalLister {
	return &LocalLister{}
}

func (l *LocalLister) ListDir(_ context.Context, dir string) ([]Entry, error) {
	native := filepath.FromSlash(dir)

	entries, err := os.ReadDir(native)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{Name: e.Name(), Dir: e.IsDir()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
