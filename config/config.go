// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/base64"

	"github.com/MKhiriev/go-secret-vault/models"
)

// Config is the top-level configuration container. It covers the two
// concerns the module has: the identity triple a vault handle is built
// from, and the storage backend the handle runs against.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - json      — field name in the optional JSON overlay file.
type Config struct {
	// Vault holds the handle identity settings.
	Vault Vault `envPrefix:"VAULT_" json:"vault"`

	// Storage holds the backend selection and its connection settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables.
	JSONFilePath string `env:"VAULT_CONFIG" json:"-"`
}

// Vault holds the identity triple frozen into a handle's query template.
type Vault struct {
	// Service is the application identity stored items belong to.
	Service string `env:"SERVICE" json:"service"`

	// TeamID is the sharing-group authority; the access group becomes
	// "<TeamID>.<Service>".
	TeamID string `env:"TEAM_ID" json:"team_id"`

	// Accessibility is the accessibility-policy token. Empty selects the
	// default (after-first-unlock). See models.ParseAccessibility.
	Accessibility string `env:"ACCESSIBILITY" json:"accessibility"`
}

// Storage selects and configures a vault backend.
type Storage struct {
	// Backend is one of "memory", "sqlite" or "postgres". Defaults to
	// "memory" when left unset everywhere.
	Backend string `env:"BACKEND" json:"backend"`

	// DSN is the connection string for the SQL backends. Unused by the
	// memory backend.
	DSN string `env:"DSN" json:"dsn"`

	// Passphrase, when non-empty, enables at-rest encryption of stored
	// payloads on the SQL backends.
	Passphrase string `env:"PASSPHRASE" json:"passphrase"`

	// EncryptionSalt is the base64-encoded 16-byte key-derivation salt.
	// Required whenever Passphrase is set; must stay stable for the
	// lifetime of the store or existing payloads become unreadable.
	EncryptionSalt string `env:"ENCRYPTION_SALT" json:"encryption_salt"`
}

// Supported Storage.Backend values.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Policy parses the configured accessibility token. An empty token yields
// the default policy; validation has already rejected unknown tokens by
// the time a [Config] leaves [GetConfig].
func (v Vault) Policy() (models.Accessibility, error) {
	return models.ParseAccessibility(v.Accessibility)
}

// Salt decodes the configured key-derivation salt.
func (s Storage) Salt() ([]byte, error) {
	return base64.StdEncoding.DecodeString(s.EncryptionSalt)
}

// GetConfig assembles, merges and validates the module configuration from
// the environment and the optional JSON overlay.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		build()
}
