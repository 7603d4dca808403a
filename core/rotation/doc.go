// Package rotation holds the per-category rotation records and the aggregate
// state file persisted between operations.
//
// The model is a plain value object: stores hand out deep copies, operations
// mutate the copy, and persistence writes a whole replacement value. Nothing
// in this package touches the filesystem or the store; it only tracks which
// outfits have been worn in the current cycle and when an entry was last
// established.
//
// Worn names may be stale relative to the live closet. That is deliberate:
// the picker resolves staleness against fresh listings on every call, and
// the reconciler owns correcting recorded totals.
package rotation
