package wardrobe

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"outfit-picker/core/fault"
)

// Scan enumerates the closet one level deep: subdirectories of root are
// categories (excluded ones skipped), files inside each category with the
// outfit extension are its outfits. Stray files at the root and files with
// other extensions are ignored. A category directory with no matching files
// still appears, with an empty file list.
func Scan(ctx context.Context, l Lister, root, ext string, excluded func(string) bool) ([]string, map[string][]string, error) {
	rootEntries, err := l.ListDir(ctx, root)
	if err != nil {
		return nil, nil, fault.Wrap(fault.KindFilesystem, fmt.Errorf("failed to scan closet root: %w", err))
	}

	var categories []string
	files := make(map[string][]string)

	for _, e := range rootEntries {
		if !e.Dir {
			continue
		}
		if excluded != nil && excluded(e.Name) {
			continue
		}

		outfits, err := ListOutfits(ctx, l, root, e.Name, ext)
		if err != nil {
			return nil, nil, err
		}
		categories = append(categories, e.Name)
		files[e.Name] = outfits
	}

	sort.Strings(categories)
	return categories, files, nil
}

// ListOutfits lists the outfit files of one category, filtered by the
// recognized extension. A missing category directory is a
// category-not-found fault; any other failure is a filesystem fault.
func ListOutfits(ctx context.Context, l Lister, root, category, ext string) ([]string, error) {
	entries, err := l.ListDir(ctx, path.Join(root, category))
	if errors.Is(err, ErrNotFound) {
		return nil, fault.Wrap(fault.KindCategoryNotFound, fmt.Errorf("category %s: %w", category, err))
	}
	if err != nil {
		return nil, fault.Wrap(fault.KindFilesystem, fmt.Errorf("failed to list category %s: %w", category, err))
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Dir {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name), strings.ToLower(ext)) {
			continue
		}
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names, nil
}
