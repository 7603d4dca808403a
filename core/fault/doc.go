// Package fault defines the stable error taxonomy exposed by public
// operations.
//
// Internally, components wrap errors freely with fmt.Errorf and %w. At the
// boundary of every public operation the error is classified into one of a
// small set of kinds (config, category-not-found, filesystem, cache,
// invalid-input) so that callers and HTTP handlers can react without
// unwrapping.
//
// "No outfit available" is deliberately not a kind: an empty-but-valid
// category is an expected state and is modeled as a normal return value,
// whereas a missing category is a caller error (KindCategoryNotFound).
package fault
