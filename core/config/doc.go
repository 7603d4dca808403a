// Package config loads the application configuration.
//
// Configuration comes from environment variables, optionally seeded by a
// .env file, and is unmarshaled into partial config structs owned by the
// packages they configure (server, closet, store, storage, log, database).
// Defaults live in 'default' struct tags and are bound into viper through
// reflection, so adding a setting means adding one tagged field.
//
// Environment keys map onto nested config keys with underscores, e.g.
// SERVER_PORT -> server.port, CLOSET_EXTENSION -> closet.extension.
//
// Note this is deployment configuration only. The closet's own persisted
// configuration (root, language, known shape) lives in the store package and
// is managed by the setup and reconcile flows.
package config
