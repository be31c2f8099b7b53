// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/MKhiriev/go-secret-vault/vault"
)

// Driver selects the SQL dialect of a [SQLService]. The value doubles as
// the database/sql driver name used by [Open].
type Driver string

const (
	// DriverSQLite runs the service on mattn/go-sqlite3.
	DriverSQLite Driver = "sqlite3"

	// DriverPostgres runs the service on the pgx stdlib driver.
	DriverPostgres Driver = "pgx"
)

const itemsTable = "vault_items"

// SQLService is a [vault.Service] persisting items in a relational table,
// one row per service/access-group/account triple (enforced by the table's
// primary key, which is what turns a concurrent double-add into a
// duplicate-item status instead of a corrupt store).
//
// With a cipher attached, payloads are sealed before INSERT/UPDATE and
// opened after SELECT; a payload that fails to open is reported as
// [models.StatusDecode].
type SQLService struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	cipher  *crypto.Cipher
	logger  *logger.Logger
}

// SQLOption customises a [SQLService] at construction time.
type SQLOption func(*SQLService)

// WithCipher enables at-rest encryption of stored payloads.
func WithCipher(c *crypto.Cipher) SQLOption {
	return func(s *SQLService) { s.cipher = c }
}

// WithSQLLogger attaches a logger for debug-level statement tracing.
func WithSQLLogger(log *logger.Logger) SQLOption {
	return func(s *SQLService) { s.logger = log }
}

// NewSQL constructs a [SQLService] over an open database handle. The
// caller owns db; the vault_items table must exist (see the migrations
// package). driver picks the placeholder dialect.
func NewSQL(db *sql.DB, driver Driver, opts ...SQLOption) *SQLService {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == DriverPostgres {
		placeholder = sq.Dollar
	}

	s := &SQLService{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// identity extracts the WHERE-clause attributes of query. Account is
// mandatory; service and access group default to empty strings, which
// still match consistently because the same template produced them.
func identity(query models.Query) (sq.Eq, bool) {
	account := query.Account()
	if account == "" {
		return nil, false
	}
	service, _ := query[models.AttrService].(string)
	group, _ := query[models.AttrAccessGroup].(string)
	return sq.Eq{
		"service":      service,
		"access_group": group,
		"account":      account,
	}, true
}

// seal applies the optional cipher to an outgoing payload.
func (s *SQLService) seal(data []byte) ([]byte, models.Status) {
	if s.cipher == nil {
		return data, models.StatusSuccess
	}
	sealed, err := s.cipher.Seal(data)
	if err != nil {
		s.logger.Err(err).Str("func", "*SQLService.seal").Msg("sealing payload failed")
		return nil, models.StatusIO
	}
	return sealed, models.StatusSuccess
}

// Add implements [vault.Service].
//
// Error handling:
//   - PostgreSQL unique_violation (23505) and SQLite constraint-unique /
//     constraint-primary-key → [models.StatusDuplicateItem].
//   - Any other driver-level error → [models.StatusIO].
func (s *SQLService) Add(ctx context.Context, query models.Query) models.Status {
	where, ok := identity(query)
	if !ok || query.ValueData() == nil {
		return models.StatusParam
	}

	data, status := s.seal(query.ValueData())
	if !status.OK() {
		return status
	}

	accessible, _ := query[models.AttrAccessible].(string)
	class, _ := query[models.AttrClass].(string)

	stmt, args, err := s.builder.
		Insert(itemsTable).
		SetMap(map[string]any{
			"service":      where["service"],
			"access_group": where["access_group"],
			"account":      where["account"],
			"class":        class,
			"accessible":   accessible,
			"value":        data,
		}).
		ToSql()
	if err != nil {
		return models.StatusParam
	}

	if _, err = s.db.ExecContext(ctx, stmt, args...); err != nil {
		if isDuplicate(err) {
			return models.StatusDuplicateItem
		}
		s.logger.Err(err).Str("func", "*SQLService.Add").Msg("insert failed")
		return models.StatusIO
	}
	return models.StatusSuccess
}

// Update implements [vault.Service]. Zero affected rows means the item the
// caller expected to exist is gone → [models.StatusItemNotFound].
func (s *SQLService) Update(ctx context.Context, query models.Query, attrs models.Query) models.Status {
	where, ok := identity(query)
	if !ok || attrs.ValueData() == nil {
		return models.StatusParam
	}

	data, status := s.seal(attrs.ValueData())
	if !status.OK() {
		return status
	}

	stmt, args, err := s.builder.
		Update(itemsTable).
		Set("value", data).
		Set("updated_at", time.Now().UTC()).
		Where(where).
		ToSql()
	if err != nil {
		return models.StatusParam
	}

	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "*SQLService.Update").Msg("update failed")
		return models.StatusIO
	}
	if affected, err := res.RowsAffected(); err != nil || affected == 0 {
		return models.StatusItemNotFound
	}
	return models.StatusSuccess
}

// Delete implements [vault.Service]. Zero affected rows →
// [models.StatusItemNotFound]; the facade treats that as success.
func (s *SQLService) Delete(ctx context.Context, query models.Query) models.Status {
	where, ok := identity(query)
	if !ok {
		return models.StatusParam
	}

	stmt, args, err := s.builder.
		Delete(itemsTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.StatusParam
	}

	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "*SQLService.Delete").Msg("delete failed")
		return models.StatusIO
	}
	if affected, err := res.RowsAffected(); err != nil || affected == 0 {
		return models.StatusItemNotFound
	}
	return models.StatusSuccess
}

// CopyMatching implements [vault.Service].
//
// Error handling:
//   - sql.ErrNoRows → [models.StatusItemNotFound].
//   - cipher failure on a sealed payload → [models.StatusDecode].
//   - Any other driver-level error → [models.StatusIO].
func (s *SQLService) CopyMatching(ctx context.Context, query models.Query) ([]byte, models.Status) {
	where, ok := identity(query)
	if !ok {
		return nil, models.StatusParam
	}

	stmt, args, err := s.builder.
		Select("value").
		From(itemsTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, models.StatusParam
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, stmt, args...).Scan(&data)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, models.StatusItemNotFound
	case err != nil:
		s.logger.Err(err).Str("func", "*SQLService.CopyMatching").Msg("select failed")
		return nil, models.StatusIO
	}

	if s.cipher != nil {
		data, err = s.cipher.Open(data)
		if err != nil {
			s.logger.Err(err).Str("func", "*SQLService.CopyMatching").Msg("opening payload failed")
			return nil, models.StatusDecode
		}
	}

	// Preserve presence: an empty stored payload is still a found item.
	if data == nil {
		data = []byte{}
	}
	return data, models.StatusSuccess
}

// Close releases the underlying database handle.
func (s *SQLService) Close() error {
	return s.db.Close()
}

// isDuplicate reports whether err is the driver's unique-constraint
// violation for the items table's primary key.
func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

var _ vault.Service = (*SQLService)(nil)
