// Package store ships the vault.Service implementations bundled with the
// module: an in-memory service for tests and ephemeral use, and a SQL
// service running on either SQLite or PostgreSQL with optional at-rest
// encryption of stored payloads.
//
// Open selects and wires a backend from a config.Config, running schema
// migrations where the backend needs them.
package store
