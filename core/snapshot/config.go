package snapshot

import "sort"

// Config is the persisted closet configuration: the validated root, optional
// language, exclusions, and the last-known filesystem shape the reconciler
// diffs against.
type Config struct {
	// Root is the closet root directory. Must have passed pathcheck before
	// being persisted.
	Root string `json:"root"`

	// Language is the optional display language. Empty means unset; when
	// set it must be in the supported allow-list.
	Language string `json:"language,omitempty"`

	// ExcludedCategories are category names skipped by scanning, picking
	// and reconciliation.
	ExcludedCategories []string `json:"excluded_categories"`

	// KnownCategories is the category list recorded at the last
	// reconciliation (or setup).
	KnownCategories []string `json:"known_categories"`

	// KnownCategoryFiles maps each known category to its recorded outfit
	// files. May be missing entries for categories recorded by an older
	// format that tracked categories only; the differ treats those as
	// empty (see Diff).
	KnownCategoryFiles map[string][]string `json:"known_category_files"`
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := &Config{
		Root:               c.Root,
		Language:           c.Language,
		ExcludedCategories: append([]string(nil), c.ExcludedCategories...),
		KnownCategories:    append([]string(nil), c.KnownCategories...),
		KnownCategoryFiles: make(map[string][]string, len(c.KnownCategoryFiles)),
	}
	for cat, files := range c.KnownCategoryFiles {
		out.KnownCategoryFiles[cat] = append([]string(nil), files...)
	}
	return out
}

// IsExcluded reports whether the category is on the exclusion list.
func (c *Config) IsExcluded(category string) bool {
	for _, e := range c.ExcludedCategories {
		if e == category {
			return true
		}
	}
	return false
}

// SetShape replaces the known filesystem shape with the given live one,
// leaving root, language and exclusions untouched. Slices are copied and
// sorted so persisted output is deterministic.
func (c *Config) SetShape(categories []string, files map[string][]string) {
	c.KnownCategories = append([]string(nil), categories...)
	sort.Strings(c.KnownCategories)

	c.KnownCategoryFiles = make(map[string][]string, len(files))
	for cat, names := range files {
		cp := append([]string(nil), names...)
		sort.Strings(cp)
		c.KnownCategoryFiles[cat] = cp
	}
}

// SupportedLanguages is the static language allow-list.
var SupportedLanguages = []string{
	"da", "de", "en", "es", "fr", "it", "ja", "nl", "no", "pt", "sv",
}

// IsSupportedLanguage reports whether lang is on the allow-list.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
