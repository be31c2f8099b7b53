// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/vault_service_mock.go -package=mock

package vault

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// Service is the contract a vault backend must satisfy. Each method is one
// primitive exchange: the backend receives an attribute query and answers
// with a status code from the [models.Status] vocabulary. The facade only
// distinguishes success, duplicate-item and item-not-found; every other
// status is surfaced to the caller untouched.
//
// Each individual call must be atomic with respect to concurrent calls for
// the same item. Nothing beyond that is assumed: the facade's
// add-else-update write pattern is deliberately not transactional across
// two calls.
type Service interface {
	// Add inserts a new item described by query. Returns
	// [models.StatusDuplicateItem] if an item with the same
	// service/access-group/account triple already exists.
	Add(ctx context.Context, query models.Query) models.Status

	// Update replaces the payload of the item matched by query with the
	// attributes in attrs. Returns [models.StatusItemNotFound] if no item
	// matches.
	Update(ctx context.Context, query models.Query, attrs models.Query) models.Status

	// Delete removes the item matched by query. Returns
	// [models.StatusItemNotFound] if no item matches.
	Delete(ctx context.Context, query models.Query) models.Status

	// CopyMatching returns the payload of the single item matched by
	// query. The data result is meaningful only when the status is
	// [models.StatusSuccess]; a stored empty payload comes back as a
	// non-nil empty slice.
	CopyMatching(ctx context.Context, query models.Query) ([]byte, models.Status)
}
