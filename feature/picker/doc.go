// Package picker implements the rotation engine.
//
// Next picks one outfit uniformly at random among the outfits of a category
// not yet worn in the current cycle; MarkWorn records a wear and, when the
// last live outfit is consumed, resets the cycle in the same operation and
// reports completion distinctly.
//
// The guarantee is at-most-once per cycle: with no closet changes in
// between, no outfit is picked twice until every outfit in the category has
// been worn once. The rotation state store is the single source of truth
// for "already worn" and is read fresh on every call; the live closet is
// listed fresh too, so edits to the closet take effect immediately while
// stored totals are left to the reconciler.
package picker
