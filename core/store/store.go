package store

import (
	"context"

	"outfit-picker/core/rotation"
	"outfit-picker/core/snapshot"
)

// ConfigStore persists the closet configuration. Save writes a single
// complete replacement value; implementations never patch incrementally.
type ConfigStore interface {
	// Load returns the persisted configuration. A closet that was never set
	// up is a config fault, not an empty value.
	Load(ctx context.Context) (*snapshot.Config, error)

	// Save persists a complete configuration exactly once.
	Save(ctx context.Context, cfg *snapshot.Config) error
}

// StateStore persists the rotation state. A decode failure on Load must
// propagate as a cache fault: silently treating corrupt state as empty
// would discard rotation history and break the at-most-once guarantee.
type StateStore interface {
	// Load returns the persisted rotation state, or a fresh empty state on
	// first run.
	Load(ctx context.Context) (*rotation.StateFile, error)

	// Save persists a complete state file exactly once.
	Save(ctx context.Context, state *rotation.StateFile) error
}
