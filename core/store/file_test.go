package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"outfit-picker/core/fault"
	"outfit-picker/core/rotation"
	"outfit-picker/core/snapshot"
	"outfit-picker/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileConfigStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closet.json")
	s := store.NewFileConfigStore(path)
	ctx := context.Background()

	cfg := &snapshot.Config{
		Root:               "/home/user/outfits",
		Language:           "en",
		ExcludedCategories: []string{"archive"},
	}
	cfg.SetShape([]string{"tops"}, map[string][]string{"tops": {"a.png"}})

	require.NoError(t, s.Save(ctx, cfg))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestFileConfigStore_MissingFileIsConfigFault(t *testing.T) {
	s := store.NewFileConfigStore(filepath.Join(t.TempDir(), "absent.json"))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindConfig))
}

func TestFileConfigStore_CorruptFilePropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closet.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.NewFileConfigStore(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindConfig))
}

func TestFileStateStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotation.json")
	s := store.NewFileStateStore(path)
	ctx := context.Background()

	state := rotation.NewStateFile(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	entry := rotation.NewCategoryState(2, state.CreatedAt)
	entry.MarkWorn("a.png", state.CreatedAt)
	state.Put("tops", entry)

	require.NoError(t, s.Save(ctx, state))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	stored, ok := got.Category("tops")
	require.True(t, ok)
	assert.True(t, stored.HasWorn("a.png"))
	assert.Equal(t, 2, stored.TotalCount)
	assert.Equal(t, rotation.FormatVersion, got.Version)
}

func TestFileStateStore_MissingFileIsFreshState(t *testing.T) {
	s := store.NewFileStateStore(filepath.Join(t.TempDir(), "absent.json"))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Categories)
	assert.Equal(t, rotation.FormatVersion, got.Version)
}

func TestFileStateStore_CorruptFileIsCacheFault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotation.json")
	require.NoError(t, os.WriteFile(path, []byte("####"), 0o644))

	_, err := store.NewFileStateStore(path).Load(context.Background())
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindCache))
}

func TestFileStateStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStateStore(filepath.Join(dir, "rotation.json"))

	require.NoError(t, s.Save(context.Background(), rotation.NewStateFile(time.Now())))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rotation.json", entries[0].Name())
}
