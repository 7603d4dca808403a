package pathcheck_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"outfit-picker/core/pathcheck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"ValidHome", "/home/user/outfits", nil},
		{"ValidRelative", "closet/outfits", nil},
		{"ControlCharacter", "/home/user/out\x07fits", pathcheck.ErrInvalidChars},
		{"NonASCII", "/home/user/garderoß", pathcheck.ErrInvalidChars},
		{"TooLong", "/" + strings.Repeat("a", 5000), pathcheck.ErrTooLong},
		{"DotDot", "/home/user/../etc", pathcheck.ErrTraversal},
		{"DisguisedTraversal", "/home/./././user/./././outfits", pathcheck.ErrTraversal},
		{"Etc", "/etc/foo", pathcheck.ErrRestricted},
		{"EtcExact", "/etc", pathcheck.ErrRestricted},
		{"Tmp", "/tmp/closet", pathcheck.ErrRestricted},
		{"Var", "/var/lib/closet", pathcheck.ErrRestricted},
		{"UpperCasedRestricted", "/Etc/foo", pathcheck.ErrRestricted},
		{"EtcLookalike", "/etcetera/foo", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pathcheck.Validate(tt.path, pathcheck.Options{SkipSymlinkCheck: true})
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CheckOrder(t *testing.T) {
	// A path that violates several policies must report the first check
	// in order: invalid characters before length, traversal, or prefix.
	path := "/etc/../" + strings.Repeat("\x01", 5000)
	err := pathcheck.Validate(path, pathcheck.Options{SkipSymlinkCheck: true})
	assert.ErrorIs(t, err, pathcheck.ErrInvalidChars)
}

func TestValidate_Symlink(t *testing.T) {
	// The fixture stays on relative paths. An absolute temp dir can land
	// under a restricted prefix (/tmp on Linux, /private/var on macOS) and
	// trip the prefix check before the symlink check ever runs.
	base, err := os.MkdirTemp(".", "symfix-")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(base) })

	target := filepath.Join(base, "real")
	require.NoError(t, os.Mkdir(target, 0o755))

	// Relative link target keeps the resolved path relative too.
	link := filepath.Join(base, "link")
	if err := os.Symlink("real", link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	assert.NoError(t, pathcheck.Validate(target, pathcheck.Options{}))

	err = pathcheck.Validate(link, pathcheck.Options{})
	assert.ErrorIs(t, err, pathcheck.ErrSymlink)

	// Escape hatch lets the symlinked path through.
	assert.NoError(t, pathcheck.Validate(link, pathcheck.Options{SkipSymlinkCheck: true}))
}

func TestValidate_NonexistentPathPassesSymlinkCheck(t *testing.T) {
	err := pathcheck.Validate("/home/nobody/definitely-missing-closet", pathcheck.Options{})
	assert.NoError(t, err)
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		pathcheck.ErrInvalidChars,
		pathcheck.ErrTooLong,
		pathcheck.ErrTraversal,
		pathcheck.ErrRestricted,
		pathcheck.ErrSymlink,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b))
			}
		}
	}
}
