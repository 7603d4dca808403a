// Package snapshot holds the persisted closet configuration and the pure
// diff over recorded vs live closet shapes.
//
// Config is the baseline the reconciler works against: the validated root,
// optional language, exclusions, and the categories/files recorded at the
// last reconciliation. Diff compares two such shapes and produces a
// ChangeSet; it is side-effect free and safe to call speculatively, which is
// what lets the reconciler expose detection and commitment as separate
// operations.
package snapshot
