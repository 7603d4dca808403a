package snapshot

// ChangeSet is the structured result of diffing a recorded closet shape
// against the live one. All slices are sorted; file maps only carry
// non-empty entries.
type ChangeSet struct {
	// NewCategories are categories present live but not in the snapshot.
	NewCategories []string `json:"new_categories"`

	// DeletedCategories are categories recorded in the snapshot but gone
	// from the live closet.
	DeletedCategories []string `json:"deleted_categories"`

	// ChangedCategories are surviving categories whose file set differs
	// from the snapshot. Never overlaps NewCategories.
	ChangedCategories []string `json:"changed_categories"`

	// AddedFiles maps a changed category to files present live but not
	// recorded.
	AddedFiles map[string][]string `json:"added_files"`

	// DeletedFiles maps a changed category to files recorded but gone.
	DeletedFiles map[string][]string `json:"deleted_files"`
}

// IsEmpty reports whether the diff found no changes at all.
func (cs *ChangeSet) IsEmpty() bool {
	return len(cs.NewCategories) == 0 &&
		len(cs.DeletedCategories) == 0 &&
		len(cs.ChangedCategories) == 0 &&
		len(cs.AddedFiles) == 0 &&
		len(cs.DeletedFiles) == 0
}
