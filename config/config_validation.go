// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
)

// validate checks that the final merged [Config] satisfies the module
// invariants before it is used to open a store or build a handle.
//
// Identity strings themselves are deliberately not validated: an odd
// service or team string only produces backend-rejected queries later,
// never a construction failure.
func (cfg *Config) validate() error {
	if _, err := cfg.Vault.Policy(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVaultConfigs, err)
	}

	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: backend %q requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Storage.Passphrase != "" {
		salt, err := cfg.Storage.Salt()
		if err != nil {
			return fmt.Errorf("%w: undecodable encryption salt: %w", ErrInvalidStorageConfigs, err)
		}
		if len(salt) != crypto.SaltLen {
			return fmt.Errorf("%w: encryption salt must decode to %d bytes", ErrInvalidStorageConfigs, crypto.SaltLen)
		}
	}

	return nil
}
