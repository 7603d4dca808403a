// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so closets can live in a bucket instead of on
// local disk. Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface exposes only what the closet needs (bucket liveness
// and listing), which keeps storage interactions easy to mock for unit
// testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "closet")
package storage
