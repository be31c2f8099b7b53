// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates invalid handle identity settings
	// (for example, an unknown accessibility token).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an unsupported backend, a SQL backend without a DSN, or a
	// passphrase without a usable encryption salt).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
