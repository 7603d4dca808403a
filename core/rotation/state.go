package rotation

import (
	"sort"
	"time"
)

// FormatVersion is the current on-disk rotation state format.
const FormatVersion = 1

// CategoryState records rotation progress for one category. Worn holds the
// outfit names consumed in the current cycle; TotalCount is the item count
// observed when the entry was last established. Worn entries are not
// validated against the live closet at read time: staleness is tolerated and
// resolved lazily by the picker against fresh listings.
type CategoryState struct {
	Worn        map[string]struct{}
	TotalCount  int
	LastUpdated time.Time
}

// NewCategoryState establishes a fresh entry for a category holding total
// live items.
func NewCategoryState(total int, now time.Time) CategoryState {
	return CategoryState{
		Worn:        make(map[string]struct{}),
		TotalCount:  total,
		LastUpdated: now,
	}
}

// MarkWorn records one outfit as consumed in the current cycle.
func (s *CategoryState) MarkWorn(name string, now time.Time) {
	if s.Worn == nil {
		s.Worn = make(map[string]struct{})
	}
	s.Worn[name] = struct{}{}
	s.LastUpdated = now
}

// Reset clears the worn set and starts a new cycle. TotalCount is preserved;
// re-establishing it is the reconciler's job, not the picker's.
func (s *CategoryState) Reset(now time.Time) {
	s.Worn = make(map[string]struct{})
	s.LastUpdated = now
}

// IsComplete reports whether every one of liveCount currently-known outfits
// has been worn this cycle.
func (s *CategoryState) IsComplete(liveCount int) bool {
	return liveCount > 0 && len(s.Worn) >= liveCount
}

// HasWorn reports whether the named outfit was consumed this cycle.
func (s *CategoryState) HasWorn(name string) bool {
	_, ok := s.Worn[name]
	return ok
}

// WornNames returns the consumed outfit names in sorted order.
func (s *CategoryState) WornNames() []string {
	names := make([]string, 0, len(s.Worn))
	for name := range s.Worn {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy.
func (s CategoryState) Clone() CategoryState {
	worn := make(map[string]struct{}, len(s.Worn))
	for name := range s.Worn {
		worn[name] = struct{}{}
	}
	return CategoryState{Worn: worn, TotalCount: s.TotalCount, LastUpdated: s.LastUpdated}
}

// StateFile is the aggregate rotation record persisted by a StateStore,
// keyed by category identifier (the category's relative path under the
// closet root, stable across renames of sibling categories).
type StateFile struct {
	Categories map[string]CategoryState `json:"categories"`
	Version    int                      `json:"version"`
	CreatedAt  time.Time                `json:"created_at"`
}

// NewStateFile creates an empty state file at the current format version.
func NewStateFile(now time.Time) *StateFile {
	return &StateFile{
		Categories: make(map[string]CategoryState),
		Version:    FormatVersion,
		CreatedAt:  now,
	}
}

// Category returns a deep copy of the entry for the named category and
// whether it exists. Mutations go through Put, never through the copy.
func (f *StateFile) Category(name string) (CategoryState, bool) {
	s, ok := f.Categories[name]
	if !ok {
		return CategoryState{}, false
	}
	return s.Clone(), true
}

// Put replaces the entry for a category.
func (f *StateFile) Put(name string, s CategoryState) {
	if f.Categories == nil {
		f.Categories = make(map[string]CategoryState)
	}
	f.Categories[name] = s
}

// Remove deletes the entry for a category.
func (f *StateFile) Remove(name string) {
	delete(f.Categories, name)
}

// ResetAll clears the worn set of every entry while preserving each entry's
// TotalCount. Used by the reconciler when category deletions make per-cycle
// bookkeeping untrustworthy.
func (f *StateFile) ResetAll(now time.Time) {
	for name, s := range f.Categories {
		s = s.Clone()
		s.Reset(now)
		f.Categories[name] = s
	}
}

// Clone returns a deep copy of the whole state file. Stores hand out clones
// so no two operations share a mutable map.
func (f *StateFile) Clone() *StateFile {
	out := &StateFile{
		Categories: make(map[string]CategoryState, len(f.Categories)),
		Version:    f.Version,
		CreatedAt:  f.CreatedAt,
	}
	for name, s := range f.Categories {
		out.Categories[name] = s.Clone()
	}
	return out
}
