package pathcheck

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// MaxPathLength is the longest root path accepted.
const MaxPathLength = 4096

// Sentinel errors, one per check. Callers match with errors.Is.
var (
	ErrInvalidChars = errors.New("path contains non-printable or non-ASCII characters")
	ErrTooLong      = errors.New("path exceeds maximum length")
	ErrTraversal    = errors.New("path contains directory traversal")
	ErrRestricted   = errors.New("path is inside a restricted system directory")
	ErrSymlink      = errors.New("path resolves through a symlink")
)

// restrictedPrefixes lists system directories that must never be used as a
// closet root. Compared against the lower-cased path.
var restrictedPrefixes = func() []string {
	if runtime.GOOS == "windows" {
		return []string{
			`c:\windows`,
			`c:\program files`,
			`c:\program files (x86)`,
			`c:\programdata`,
		}
	}
	return []string{
		"/etc", "/usr", "/bin", "/sbin",
		"/system", "/private", "/var", "/tmp", "/root",
	}
}()

// Options controls optional validation behavior.
type Options struct {
	// SkipSymlinkCheck disables the symlink resolution check. Intended for
	// test environments where temp directories live behind symlinks
	// (e.g. /tmp on macOS). Must be opted into explicitly; never default-on.
	SkipSymlinkCheck bool
}

// Validate checks a candidate closet root against the security policy.
// Checks run in a fixed order and short-circuit on the first failure:
// character set, length, traversal, restricted prefix, symlink resolution.
// Each failure wraps a distinct sentinel error.
func Validate(path string, opts Options) error {
	if err := checkCharacters(path); err != nil {
		return err
	}
	if len(path) > MaxPathLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrTooLong, len(path), MaxPathLength)
	}
	if err := checkTraversal(path); err != nil {
		return err
	}
	if err := checkRestricted(path); err != nil {
		return err
	}
	if !opts.SkipSymlinkCheck {
		if err := checkSymlink(path); err != nil {
			return err
		}
	}
	return nil
}

// checkCharacters rejects any byte outside printable ASCII (32-126).
// Byte-wise on purpose: multi-byte UTF-8 sequences fail here too.
func checkCharacters(path string) error {
	for i := 0; i < len(path); i++ {
		if path[i] < 32 || path[i] > 126 {
			return fmt.Errorf("%w: byte 0x%02x at position %d", ErrInvalidChars, path[i], i)
		}
	}
	return nil
}

// checkTraversal rejects literal ".." segments, and additionally rejects
// paths whose raw component count exceeds the cleaned path's component count
// by more than 2. The second check catches traversal disguised through
// redundant separators or "." segments that filepath.Clean would collapse.
func checkTraversal(path string) error {
	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains '..'", ErrTraversal)
	}

	raw := countComponents(path)
	cleaned := countComponents(filepath.Clean(path))
	if raw-cleaned > 2 {
		return fmt.Errorf("%w: %d raw components collapse to %d", ErrTraversal, raw, cleaned)
	}
	return nil
}

func countComponents(path string) int {
	n := 0
	for _, part := range strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	}) {
		if part != "" {
			n++
		}
	}
	return n
}

func checkRestricted(path string) error {
	lower := strings.ToLower(filepath.Clean(path))
	for _, prefix := range restrictedPrefixes {
		if lower == prefix || strings.HasPrefix(lower, prefix+string(filepath.Separator)) || strings.HasPrefix(lower, prefix+"/") {
			return fmt.Errorf("%w: %s", ErrRestricted, prefix)
		}
	}
	return nil
}

// checkSymlink resolves symlinks and requires the result to match the
// cleaned path. A path that does not exist yet passes: there is nothing to
// resolve, and existence is not this package's concern.
func checkSymlink(path string) error {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		// Nonexistent paths cannot hide symlinks.
		return nil
	}
	if resolved != filepath.Clean(path) {
		return fmt.Errorf("%w: %s resolves to %s", ErrSymlink, path, resolved)
	}
	return nil
}
