// Package wardrobe abstracts closet enumeration.
//
// A closet is one directory level of categories below a root, each category
// holding outfit files with a recognized extension. The Lister interface
// hides where the closet lives: LocalLister walks the local disk,
// ObjectLister walks a storage bucket where categories are common prefixes.
//
// Scan and ListOutfits are the only entry points the engine uses; both
// return fault-classified errors so services can pass them through their
// boundary unchanged.
package wardrobe
