package snapshot

import "sort"

// Diff computes the ChangeSet between a recorded closet shape and the live
// one. It is a pure function of its four arguments and keeps no memory
// beyond them: a category that disappears and reappears between two calls is
// reported as deleted by the first and new by the second.
//
// prevFiles may lack an entry for a category in prevCats. That happens when
// the snapshot predates file-level tracking; the category's previous file
// set is then treated as empty, so every live file is reported as added and
// the category lands in ChangedCategories. This lets file tracking bootstrap
// from a coarser legacy snapshot without the caller special-casing it.
func Diff(prevCats []string, prevFiles map[string][]string, curCats []string, curFiles map[string][]string) *ChangeSet {
	prev := toSet(prevCats)
	cur := toSet(curCats)

	cs := &ChangeSet{
		NewCategories:     sortedDifference(cur, prev),
		DeletedCategories: sortedDifference(prev, cur),
		AddedFiles:        make(map[string][]string),
		DeletedFiles:      make(map[string][]string),
	}

	// File-level diff for surviving categories. A deleted category is fully
	// captured by DeletedCategories; a new one by NewCategories.
	for cat := range cur {
		if _, survived := prev[cat]; !survived {
			continue
		}

		prevSet := toSet(prevFiles[cat])
		curSet := toSet(curFiles[cat])

		added := sortedDifference(curSet, prevSet)
		deleted := sortedDifference(prevSet, curSet)
		if len(added) == 0 && len(deleted) == 0 {
			continue
		}

		cs.ChangedCategories = append(cs.ChangedCategories, cat)
		if len(added) > 0 {
			cs.AddedFiles[cat] = added
		}
		if len(deleted) > 0 {
			cs.DeletedFiles[cat] = deleted
		}
	}
	sort.Strings(cs.ChangedCategories)

	return cs
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// sortedDifference returns a \ b as a sorted slice.
func sortedDifference(a, b map[string]struct{}) []string {
	var out []string
	for n := range a {
		if _, ok := b[n]; !ok {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
