// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver "pgx"

	"github.com/MKhiriev/go-secret-vault/config"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/migrations"
	"github.com/MKhiriev/go-secret-vault/vault"
)

// Open wires a [vault.Service] from a validated configuration: backend
// selection, connection setup, schema migration and the optional at-rest
// cipher. SQL backends are returned as *[SQLService], whose Close releases
// the connection; the memory backend needs no teardown.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (vault.Service, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendSQLite:
		return openSQL(ctx, cfg, DriverSQLite, log)
	case config.BackendPostgres:
		return openSQL(ctx, cfg, DriverPostgres, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func openSQL(ctx context.Context, cfg *config.Config, driver Driver, log *logger.Logger) (*SQLService, error) {
	// establish connection
	conn, err := sql.Open(string(driver), cfg.Storage.DSN)
	if err != nil {
		log.Err(err).Str("func", "openSQL").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openSQL").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "openSQL").Msg("connected to database successfully")

	if err = migrations.Migrate(conn, string(driver)); err != nil {
		conn.Close()
		return nil, err
	}

	opts := []SQLOption{WithSQLLogger(log)}
	if cfg.Storage.Passphrase != "" {
		salt, err := cfg.Storage.Salt()
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("decode encryption salt: %w", err)
		}
		cipher, err := crypto.NewCipher(cfg.Storage.Passphrase, salt)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("build value cipher: %w", err)
		}
		opts = append(opts, WithCipher(cipher))
	}

	return NewSQL(conn, driver, opts...), nil
}
