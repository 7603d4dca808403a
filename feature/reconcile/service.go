package reconcile

import (
	"context"
	"sync"
	"time"

	"outfit-picker/core/fault"
	"outfit-picker/core/snapshot"
	"outfit-picker/core/store"
	"outfit-picker/core/wardrobe"

	"go.uber.org/zap"
)

// Service reconciles the recorded closet shape with the live one.
//
// Detection and commitment are separate operations so a caller can inspect
// a ChangeSet before deciding to apply it. Neither operation retries;
// failures surface to the caller, who owns retry policy.
type Service struct {
	cfg    store.ConfigStore
	state  store.StateStore
	lister wardrobe.Lister
	ext    string
	logger *zap.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewService creates a new reconcile service.
func NewService(cfg store.ConfigStore, state store.StateStore, lister wardrobe.Lister, ext string, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		state:  state,
		lister: lister,
		ext:    ext,
		logger: logger,
		now:    time.Now,
	}
}

// DetectChanges diffs the recorded closet shape against the live
// filesystem. It mutates nothing: calling it twice with no closet change in
// between yields an empty ChangeSet both times.
func (s *Service) DetectChanges(ctx context.Context) (*snapshot.ChangeSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, cats, files, err := s.loadAndScan(ctx)
	if err != nil {
		return nil, err
	}

	cs := snapshot.Diff(cfg.KnownCategories, cfg.KnownCategoryFiles, cats, files)
	if !cs.IsEmpty() {
		s.logger.Info("closet changes detected",
			zap.Int("new_categories", len(cs.NewCategories)),
			zap.Int("deleted_categories", len(cs.DeletedCategories)),
			zap.Int("changed_categories", len(cs.ChangedCategories)))
	}
	return cs, nil
}

// UpdateConfig commits a previously detected ChangeSet. The live shape is
// re-derived here rather than trusted from the caller; only the supplied
// DeletedCategories gate the rotation reset. The new configuration is
// persisted exactly once with the live shape recorded and root, language
// and exclusions preserved.
//
// When categories were deleted, the rotation state is reset: deleted
// entries are removed, every surviving entry's worn set is cleared with its
// recorded total preserved, and the state is persisted exactly once.
// Deletions are the one change class that can silently shift category
// identity under the bookkeeping, so a full reset is the conservative safe
// choice. Without deletions the state store is not touched at all,
// preserving in-progress rotations and avoiding spurious writes.
func (s *Service) UpdateConfig(ctx context.Context, cs *snapshot.ChangeSet) (*snapshot.Config, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cs == nil {
		return nil, false, fault.New(fault.KindInvalidInput, "change set must not be nil")
	}

	cfg, cats, files, err := s.loadAndScan(ctx)
	if err != nil {
		return nil, false, err
	}

	cfg.SetShape(cats, files)
	if err := s.cfg.Save(ctx, cfg); err != nil {
		return nil, false, err
	}

	if len(cs.DeletedCategories) == 0 {
		return cfg, false, nil
	}

	state, err := s.state.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, cat := range cs.DeletedCategories {
		state.Remove(cat)
	}
	state.ResetAll(s.now())
	if err := s.state.Save(ctx, state); err != nil {
		return nil, false, err
	}

	s.logger.Warn("rotation state reset after category deletions",
		zap.Strings("deleted", cs.DeletedCategories))
	return cfg, true, nil
}

// loadAndScan loads the configuration and enumerates the live closet shape.
func (s *Service) loadAndScan(ctx context.Context) (*snapshot.Config, []string, map[string][]string, error) {
	cfg, err := s.cfg.Load(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.Root == "" {
		return nil, nil, nil, fault.New(fault.KindConfig, "closet root is not set")
	}

	cats, files, err := wardrobe.Scan(ctx, s.lister, cfg.Root, s.ext, cfg.IsExcluded)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, cats, files, nil
}
