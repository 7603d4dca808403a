// Package store persists the closet configuration and rotation state.
//
// Two interfaces, ConfigStore and StateStore, decouple the engine from where
// the blobs live. The default implementation writes indented JSON files with
// an atomic temp-file-and-rename replace. An alternative StateStore keeps
// rotation state in MySQL through gorm for deployments where the closet is
// served from object storage and state must be shared.
//
// Both stores follow a whole-value model: Load returns a deep-copyable value
// object, Save writes one complete replacement. There are no incremental
// patches, so a failed operation leaves the previously persisted state
// untouched.
//
// A decode failure on load always propagates. Treating a corrupt state blob
// as empty would silently restart every rotation cycle.
package store
