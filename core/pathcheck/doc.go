// Package pathcheck validates candidate closet root paths against the
// security policy.
//
// Validation is a pure predicate over the path string plus the filesystem's
// symlink-resolution oracle; it performs no writes and caches nothing. The
// checks run in a fixed order (characters, length, traversal, restricted
// prefix, symlink) and each failure carries a distinct sentinel error so the
// caller can report the exact policy violated.
//
// The symlink check can be skipped through Options.SkipSymlinkCheck for test
// environments whose temp directories sit behind symlinks. The skip is
// opt-in only.
package pathcheck
