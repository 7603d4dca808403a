package reconcile

import (
	"context"
	"fmt"
	"path"
	"strings"
	"testing"
	"time"

	"outfit-picker/core/fault"
	"outfit-picker/core/rotation"
	"outfit-picker/core/snapshot"
	"outfit-picker/core/wardrobe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memConfigStore is an in-memory ConfigStore counting persistence calls.
type memConfigStore struct {
	cfg   *snapshot.Config
	saves int
}

func (m *memConfigStore) Load(context.Context) (*snapshot.Config, error) {
	if m.cfg == nil {
		return nil, fault.New(fault.KindConfig, "closet not configured")
	}
	return m.cfg.Clone(), nil
}

func (m *memConfigStore) Save(_ context.Context, cfg *snapshot.Config) error {
	m.cfg = cfg.Clone()
	m.saves++
	return nil
}

// memStateStore is an in-memory StateStore counting persistence calls.
type memStateStore struct {
	state *rotation.StateFile
	saves int
}

func (m *memStateStore) Load(context.Context) (*rotation.StateFile, error) {
	if m.state == nil {
		return rotation.NewStateFile(time.Now()), nil
	}
	return m.state.Clone(), nil
}

func (m *memStateStore) Save(_ context.Context, state *rotation.StateFile) error {
	m.state = state.Clone()
	m.saves++
	return nil
}

// fakeLister serves a closet shape from memory.
type fakeLister struct {
	root  string
	shape map[string][]string
}

func (f *fakeLister) ListDir(_ context.Context, dir string) ([]wardrobe.Entry, error) {
	if dir == f.root {
		var out []wardrobe.Entry
		for cat := range f.shape {
			out = append(out, wardrobe.Entry{Name: cat, Dir: true})
		}
		return out, nil
	}
	if !strings.HasPrefix(dir, f.root+"/") {
		return nil, fmt.Errorf("%w: %s", wardrobe.ErrNotFound, dir)
	}
	files, ok := f.shape[path.Base(dir)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", wardrobe.ErrNotFound, dir)
	}
	out := make([]wardrobe.Entry, 0, len(files))
	for _, name := range files {
		out = append(out, wardrobe.Entry{Name: name, Dir: false})
	}
	return out, nil
}

func setupService(cfg *snapshot.Config, shape map[string][]string) (*Service, *memConfigStore, *memStateStore) {
	configs := &memConfigStore{cfg: cfg}
	states := &memStateStore{}
	svc := NewService(configs, states, &fakeLister{root: "/closet", shape: shape}, ".png", zap.NewNop())
	return svc, configs, states
}

func recordedConfig() *snapshot.Config {
	cfg := &snapshot.Config{Root: "/closet", Language: "en", ExcludedCategories: []string{"archive"}}
	cfg.SetShape(
		[]string{"shoes", "tops"},
		map[string][]string{
			"tops":  {"a.png", "b.png"},
			"shoes": {"x.png"},
		},
	)
	return cfg
}

func TestDetectChanges_IdempotentWhenUnchanged(t *testing.T) {
	svc, _, _ := setupService(recordedConfig(), map[string][]string{
		"tops":  {"a.png", "b.png"},
		"shoes": {"x.png"},
	})
	ctx := context.Background()

	first, err := svc.DetectChanges(ctx)
	require.NoError(t, err)
	assert.True(t, first.IsEmpty())

	second, err := svc.DetectChanges(ctx)
	require.NoError(t, err)
	assert.True(t, second.IsEmpty())
}

func TestDetectChanges_ReportsDiff(t *testing.T) {
	// B deleted, A changed (w added, x deleted) relative to the record.
	cfg := &snapshot.Config{Root: "/closet"}
	cfg.SetShape([]string{"A", "B"}, map[string][]string{
		"A": {"x.png", "y.png"},
		"B": {"z.png"},
	})
	svc, _, _ := setupService(cfg, map[string][]string{
		"A": {"y.png", "w.png"},
	})

	cs, err := svc.DetectChanges(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, cs.DeletedCategories)
	assert.Equal(t, []string{"A"}, cs.ChangedCategories)
	assert.Equal(t, map[string][]string{"A": {"w.png"}}, cs.AddedFiles)
	assert.Equal(t, map[string][]string{"A": {"x.png"}}, cs.DeletedFiles)
}

func TestDetectChanges_SkipsExcludedCategories(t *testing.T) {
	svc, _, _ := setupService(recordedConfig(), map[string][]string{
		"tops":    {"a.png", "b.png"},
		"shoes":   {"x.png"},
		"archive": {"old.png"},
	})

	cs, err := svc.DetectChanges(context.Background())
	require.NoError(t, err)
	assert.True(t, cs.IsEmpty())
}

func TestDetectChanges_Unconfigured(t *testing.T) {
	svc, _, _ := setupService(nil, nil)

	_, err := svc.DetectChanges(context.Background())
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindConfig))
}

func TestUpdateConfig_NoDeletionsLeavesStateUntouched(t *testing.T) {
	live := map[string][]string{
		"tops":  {"a.png", "b.png", "new.png"},
		"shoes": {"x.png"},
		"hats":  {"cap.png"},
	}
	svc, configs, states := setupService(recordedConfig(), live)

	seed := rotation.NewStateFile(time.Now())
	entry := rotation.NewCategoryState(2, time.Now())
	entry.MarkWorn("a.png", time.Now())
	seed.Put("tops", entry)
	states.state = seed.Clone()

	cs, err := svc.DetectChanges(context.Background())
	require.NoError(t, err)
	require.Empty(t, cs.DeletedCategories)

	cfg, reset, err := svc.UpdateConfig(context.Background(), cs)
	require.NoError(t, err)

	assert.False(t, reset)
	// Zero state saves: in-progress rotations survive additions untouched.
	assert.Zero(t, states.saves)
	got, _ := states.state.Category("tops")
	assert.True(t, got.HasWorn("a.png"))

	// Config persisted exactly once with the live shape, settings preserved.
	assert.Equal(t, 1, configs.saves)
	assert.Equal(t, []string{"hats", "shoes", "tops"}, cfg.KnownCategories)
	assert.Equal(t, []string{"a.png", "b.png", "new.png"}, cfg.KnownCategoryFiles["tops"])
	assert.Equal(t, "/closet", cfg.Root)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, []string{"archive"}, cfg.ExcludedCategories)
}

func TestUpdateConfig_DeletionsResetRotationState(t *testing.T) {
	// shoes deleted from the live closet.
	live := map[string][]string{
		"tops": {"a.png", "b.png"},
	}
	svc, _, states := setupService(recordedConfig(), live)

	seed := rotation.NewStateFile(time.Now())
	tops := rotation.NewCategoryState(2, time.Now())
	tops.MarkWorn("a.png", time.Now())
	seed.Put("tops", tops)
	shoes := rotation.NewCategoryState(1, time.Now())
	shoes.MarkWorn("x.png", time.Now())
	seed.Put("shoes", shoes)
	states.state = seed.Clone()

	cs, err := svc.DetectChanges(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"shoes"}, cs.DeletedCategories)

	_, reset, err := svc.UpdateConfig(context.Background(), cs)
	require.NoError(t, err)

	assert.True(t, reset)
	assert.Equal(t, 1, states.saves)

	// The deleted category's entry is gone.
	_, ok := states.state.Category("shoes")
	assert.False(t, ok)

	// Survivors are cleared with their recorded totals preserved.
	got, ok := states.state.Category("tops")
	require.True(t, ok)
	assert.Empty(t, got.WornNames())
	assert.Equal(t, 2, got.TotalCount)
}

func TestUpdateConfig_NilChangeSet(t *testing.T) {
	svc, _, _ := setupService(recordedConfig(), map[string][]string{"tops": {"a.png"}})

	_, _, err := svc.UpdateConfig(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindInvalidInput))
}

func TestReconcileLoop_DetectApplyDetect(t *testing.T) {
	live := map[string][]string{
		"tops": {"a.png"},
		"hats": {"cap.png"},
	}
	svc, _, _ := setupService(recordedConfig(), live)
	ctx := context.Background()

	cs, err := svc.DetectChanges(ctx)
	require.NoError(t, err)
	require.False(t, cs.IsEmpty())

	_, _, err = svc.UpdateConfig(ctx, cs)
	require.NoError(t, err)

	after, err := svc.DetectChanges(ctx)
	require.NoError(t, err)
	assert.True(t, after.IsEmpty())
}

func TestDetectChanges_LegacySnapshotBootstrap(t *testing.T) {
	// Known categories without file history: the differ reports every live
	// file as added so file tracking can bootstrap.
	cfg := &snapshot.Config{
		Root:            "/closet",
		KnownCategories: []string{"A", "B"},
	}
	svc, _, _ := setupService(cfg, map[string][]string{
		"A": {"a1.png"},
		"B": {"b1.png"},
		"C": {"c1.png"},
	})

	cs, err := svc.DetectChanges(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"C"}, cs.NewCategories)
	assert.Equal(t, []string{"A", "B"}, cs.ChangedCategories)
	assert.Equal(t, map[string][]string{"A": {"a1.png"}, "B": {"b1.png"}}, cs.AddedFiles)
}
