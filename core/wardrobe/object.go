package wardrobe

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"outfit-picker/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectLister lists "directories" in an object storage bucket. Categories
// are first-level common prefixes under the closet root prefix; outfits are
// the objects below them. Non-recursive listing keeps one call per level,
// the same way the asset tree is browsed in the storage console.
type ObjectLister struct {
	client storage.Client
	bucket string
}

// NewObjectLister creates a lister over the given bucket.
func NewObjectLister(client storage.Client, bucket string) *ObjectLister {
	return &ObjectLister{client: client, bucket: bucket}
}

func (l *ObjectLister) ListDir(ctx context.Context, dir string) ([]Entry, error) {
	prefix := strings.TrimSuffix(dir, "/") + "/"

	found := false
	var out []Entry
	for info := range l.client.ListObjects(ctx, l.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dir, info.Err)
		}
		found = true

		name := strings.TrimPrefix(info.Key, prefix)
		if name == "" {
			// The prefix marker object itself.
			continue
		}
		if strings.HasSuffix(name, "/") {
			out = append(out, Entry{Name: strings.TrimSuffix(name, "/"), Dir: true})
			continue
		}
		out = append(out, Entry{Name: name, Dir: false})
	}

	// Object storage has no empty directories: an unknown prefix and a
	// missing one are indistinguishable, both list nothing.
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
