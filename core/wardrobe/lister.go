package wardrobe

import (
	"context"
	"errors"
)

// ErrNotFound is returned by ListDir when the directory does not exist.
// Services map it to a category-not-found fault when the missing directory
// is a category, and to a filesystem fault when it is the root.
var ErrNotFound = errors.New("directory not found")

// Entry is one name in a directory listing.
type Entry struct {
	// Name is the base name of the entry.
	Name string
	// Dir reports whether the entry is a directory (or, for object
	// storage, a common prefix).
	Dir bool
}

// Lister enumerates a directory one level deep. Paths are slash-separated;
// implementations translate to their native form.
type Lister interface {
	ListDir(ctx context.Context, dir string) ([]Entry, error)
}
