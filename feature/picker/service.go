package picker

import (
	"context"
	"math/rand/v2"
	"path"
	"strings"
	"sync"
	"time"

	"outfit-picker/core/fault"
	"outfit-picker/core/rotation"
	"outfit-picker/core/snapshot"
	"outfit-picker/core/store"
	"outfit-picker/core/wardrobe"

	"go.uber.org/zap"
)

// Pick is one selected outfit.
type Pick struct {
	// FileName is the outfit file name within its category.
	FileName string `json:"file_name"`
	// Category is the owning category name.
	Category string `json:"category"`
	// Path is the outfit's slash path under the closet root.
	Path string `json:"path"`
	// Remaining counts the other outfits still unworn this cycle.
	Remaining int `json:"remaining"`
}

// WearResult reports the outcome of marking an outfit worn. CycleCompleted
// distinguishes the wear that finished a rotation cycle from an ordinary
// one, so callers can surface completion instead of a silent success.
type WearResult struct {
	Category       string `json:"category"`
	FileName       string `json:"file_name"`
	CycleCompleted bool   `json:"cycle_completed"`
}

// Service is the rotation engine: it picks unworn outfits uniformly at
// random and records wears, resetting a category's cycle when the last
// outfit is consumed.
//
// The rotation state is the single source of truth for "already worn" and is
// consulted fresh on every call; nothing is cached across calls. Operations
// are serialized by an internal mutex, so one Service per state store is the
// expected deployment.
type Service struct {
	cfg    store.ConfigStore
	state  store.StateStore
	lister wardrobe.Lister
	ext    string
	logger *zap.Logger

	mu   sync.Mutex
	intN func(n int) int
	now  func() time.Time
}

// NewService creates a new picker service.
func NewService(cfg store.ConfigStore, state store.StateStore, lister wardrobe.Lister, ext string, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		state:  state,
		lister: lister,
		ext:    ext,
		logger: logger,
		intN:   rand.IntN,
		now:    time.Now,
	}
}

// Next picks one unworn outfit from the category, uniformly at random among
// the outfits not yet worn this cycle. A nil Pick with nil error means no
// outfit is available right now: either the category is empty or the cycle
// is complete and awaiting its completing wear. That is a normal outcome,
// not an error.
func (s *Service) Next(ctx context.Context, category string) (*Pick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, live, err := s.listCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	state, err := s.state.Load(ctx)
	if err != nil {
		return nil, err
	}

	entry, known := state.Category(category)
	if known && entry.TotalCount != len(live) {
		// The closet changed under the recorded count. Selection proceeds
		// against live data; correcting the stored count belongs to the
		// reconciler, not here.
		s.logger.Debug("recorded outfit count is stale",
			zap.String("category", category),
			zap.Int("recorded", entry.TotalCount),
			zap.Int("live", len(live)))
	}

	available := make([]string, 0, len(live))
	for _, name := range live {
		if !entry.HasWorn(name) {
			available = append(available, name)
		}
	}
	if len(available) == 0 {
		return nil, nil
	}

	name := available[s.intN(len(available))]
	return &Pick{
		FileName:  name,
		Category:  category,
		Path:      path.Join(category, name),
		Remaining: len(available) - 1,
	}, nil
}

// MarkWorn records an outfit as worn this cycle. When the wear consumes the
// last live outfit, the category's cycle resets to fresh in the same
// operation (worn set cleared, recorded total untouched) and the result
// carries CycleCompleted. The rotation state is persisted exactly once per
// call on both branches.
func (s *Service) MarkWorn(ctx context.Context, category, fileName string) (*WearResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateFileName(fileName, s.ext); err != nil {
		return nil, err
	}

	_, live, err := s.listCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if !contains(live, fileName) {
		return nil, fault.Newf(fault.KindInvalidInput, "outfit %s not found in category %s", fileName, category)
	}

	state, err := s.state.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry, known := state.Category(category)
	if !known {
		entry = rotation.NewCategoryState(len(live), now)
	}
	entry.MarkWorn(fileName, now)

	completed := entry.IsComplete(len(live))
	if completed {
		entry.Reset(now)
		s.logger.Info("rotation cycle completed",
			zap.String("category", category),
			zap.Int("outfits", len(live)))
	}
	state.Put(category, entry)

	if err := s.state.Save(ctx, state); err != nil {
		return nil, err
	}

	return &WearResult{
		Category:       category,
		FileName:       fileName,
		CycleCompleted: completed,
	}, nil
}

// listCategory loads the configuration and lists the category's live
// outfits, applying exclusions.
func (s *Service) listCategory(ctx context.Context, category string) (*snapshot.Config, []string, error) {
	if category == "" {
		return nil, nil, fault.New(fault.KindInvalidInput, "category must not be empty")
	}

	cfg, err := s.cfg.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Root == "" {
		return nil, nil, fault.New(fault.KindConfig, "closet root is not set")
	}
	if cfg.IsExcluded(category) {
		return nil, nil, fault.Newf(fault.KindCategoryNotFound, "category %s is excluded", category)
	}

	live, err := wardrobe.ListOutfits(ctx, s.lister, cfg.Root, category, s.ext)
	if err != nil {
		return nil, nil, err
	}
	return cfg, live, nil
}

func validateFileName(fileName, ext string) error {
	if fileName == "" {
		return fault.New(fault.KindInvalidInput, "outfit file name must not be empty")
	}
	if strings.ContainsAny(fileName, `/\`) {
		return fault.Newf(fault.KindInvalidInput, "outfit file name %s must not contain path separators", fileName)
	}
	if !strings.HasSuffix(strings.ToLower(fileName), strings.ToLower(ext)) {
		return fault.Newf(fault.KindInvalidInput, "outfit file name %s must end in %s", fileName, ext)
	}
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
