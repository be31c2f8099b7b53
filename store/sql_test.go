// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/models"
)

func newTestSQLService(t *testing.T, driver Driver, opts ...SQLOption) (*SQLService, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewSQL(db, driver, opts...), mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteUniqueError() error {
	return sqlite3.Error{
		Code:         sqlite3.ErrConstraint,
		ExtendedCode: sqlite3.ErrConstraintUnique,
	}
}

func TestSQLAdd_Success(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault_items").
		WillReturnResult(sqlmock.NewResult(0, 1))

	status := svc.Add(context.Background(), withValue(testQuery("k"), []byte("v")))
	if !status.OK() {
		t.Fatalf("Add status = %v, want success", status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLAdd_PostgresUniqueViolation(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault_items").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	status := svc.Add(context.Background(), withValue(testQuery("k"), []byte("v")))
	if status != models.StatusDuplicateItem {
		t.Fatalf("Add status = %v, want duplicate item", status)
	}
}

func TestSQLAdd_SQLiteUniqueViolation(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverSQLite)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault_items").
		WillReturnError(sqliteUniqueError())

	status := svc.Add(context.Background(), withValue(testQuery("k"), []byte("v")))
	if status != models.StatusDuplicateItem {
		t.Fatalf("Add status = %v, want duplicate item", status)
	}
}

func TestSQLAdd_UnexpectedDBError(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO vault_items").
		WillReturnError(errors.New("db network error"))

	status := svc.Add(context.Background(), withValue(testQuery("k"), []byte("v")))
	if status != models.StatusIO {
		t.Fatalf("Add status = %v, want storage I/O failure", status)
	}
}

func TestSQLAdd_MissingAccountIsParamError(t *testing.T) {
	svc, _, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	status := svc.Add(context.Background(), withValue(testQuery(""), []byte("v")))
	if status != models.StatusParam {
		t.Fatalf("Add status = %v, want param error", status)
	}
}

func TestSQLUpdate_Success(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	mock.ExpectExec("UPDATE vault_items").
		WillReturnResult(sqlmock.NewResult(0, 1))

	status := svc.Update(context.Background(), testQuery("k"), models.Query{models.AttrValueData: []byte("new")})
	if !status.OK() {
		t.Fatalf("Update status = %v, want success", status)
	}
}

func TestSQLUpdate_ZeroRowsIsItemNotFound(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	mock.ExpectExec("UPDATE vault_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	status := svc.Update(context.Background(), testQuery("ghost"), models.Query{models.AttrValueData: []byte("v")})
	if status != models.StatusItemNotFound {
		t.Fatalf("Update status = %v, want item not found", status)
	}
}

func TestSQLDelete_Success(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	mock.ExpectExec("DELETE FROM vault_items").
		WillReturnResult(sqlmock.NewResult(0, 1))

	status := svc.Delete(context.Background(), testQuery("k"))
	if !status.OK() {
		t.Fatalf("Delete status = %v, want success", status)
	}
}

func TestSQLDelete_ZeroRowsIsItemNotFound(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	mock.ExpectExec("DELETE FROM vault_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	status := svc.Delete(context.Background(), testQuery("ghost"))
	if status != models.StatusItemNotFound {
		t.Fatalf("Delete status = %v, want item not found", status)
	}
}

func TestSQLCopyMatching_Found(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte("v"))
	mock.ExpectQuery("SELECT value FROM vault_items").
		WithArgs("team.app", "k", "app").
		WillReturnRows(rows)

	data, status := svc.CopyMatching(context.Background(), testQuery("k"))
	if !status.OK() {
		t.Fatalf("CopyMatching status = %v, want success", status)
	}
	if !bytes.Equal(data, []byte("v")) {
		t.Errorf("CopyMatching data = %q, want %q", data, "v")
	}
}

func TestSQLCopyMatching_NoRowsIsItemNotFound(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM vault_items").
		WillReturnError(sql.ErrNoRows)

	_, status := svc.CopyMatching(context.Background(), testQuery("ghost"))
	if status != models.StatusItemNotFound {
		t.Fatalf("CopyMatching status = %v, want item not found", status)
	}
}

func TestSQLCopyMatching_DBErrorIsIO(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM vault_items").
		WillReturnError(errors.New("connection reset"))

	_, status := svc.CopyMatching(context.Background(), testQuery("k"))
	if status != models.StatusIO {
		t.Fatalf("CopyMatching status = %v, want storage I/O failure", status)
	}
}

func testCipher(t *testing.T) *crypto.Cipher {
	t.Helper()
	salt := bytes.Repeat([]byte{0xAB}, crypto.SaltLen)
	c, err := crypto.NewCipher("passphrase", salt)
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}
	return c
}

func TestSQLCopyMatching_WithCipher_RoundTrip(t *testing.T) {
	cipher := testCipher(t)
	svc, mock, db := newTestSQLService(t, DriverPostgres, WithCipher(cipher))
	defer db.Close()

	sealed, err := cipher.Seal([]byte("plain"))
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	rows := sqlmock.NewRows([]string{"value"}).AddRow(sealed)
	mock.ExpectQuery("SELECT value FROM vault_items").WillReturnRows(rows)

	data, status := svc.CopyMatching(context.Background(), testQuery("k"))
	if !status.OK() {
		t.Fatalf("CopyMatching status = %v, want success", status)
	}
	if !bytes.Equal(data, []byte("plain")) {
		t.Errorf("CopyMatching data = %q, want %q", data, "plain")
	}
}

func TestSQLCopyMatching_WithCipher_GarbageIsDecodeFailure(t *testing.T) {
	svc, mock, db := newTestSQLService(t, DriverPostgres, WithCipher(testCipher(t)))
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte("not-a-sealed-blob"))
	mock.ExpectQuery("SELECT value FROM vault_items").WillReturnRows(rows)

	_, status := svc.CopyMatching(context.Background(), testQuery("k"))
	if status != models.StatusDecode {
		t.Fatalf("CopyMatching status = %v, want decode failure", status)
	}
}
