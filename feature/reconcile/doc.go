// Package reconcile merges closet changes into the persisted configuration.
//
// DetectChanges diffs the recorded categories and files against the live
// closet and returns a ChangeSet; UpdateConfig commits one, replacing the
// recorded shape with the live one while preserving root, language and
// exclusions.
//
// Rotation state is only touched when categories were deleted: deletions
// can invalidate per-cycle bookkeeping for categories whose identity may
// have shifted, so the service removes the deleted entries and restarts
// every remaining cycle rather than attempting fine-grained repair. Pure
// additions and file renames leave in-progress rotations alone.
package reconcile
