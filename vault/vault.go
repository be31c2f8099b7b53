// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

// Handle is an immutable facade over one service/access-group slice of a
// vault. Construction freezes the query template; after that the handle
// holds no mutable state, so one handle may be shared by any number of
// goroutines without locking. Correctness of concurrent writes to the same
// key is bounded by the backend's per-call atomicity (see [Service]).
type Handle struct {
	service  Service
	template models.Query
	logger   *logger.Logger
}

// Option customises a [Handle] at construction time.
type Option func(*options)

type options struct {
	accessibility models.Accessibility
	logger        *logger.Logger
}

// WithAccessibility sets the accessibility policy written into the query
// template. The default is [models.AccessibleAfterFirstUnlock].
func WithAccessibility(a models.Accessibility) Option {
	return func(o *options) { o.accessibility = a }
}

// WithLogger attaches a logger for debug-level operation tracing. Stored
// values are never logged, only account keys and status codes.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.logger = log }
}

// New builds a [Handle] over svc for the given application and team
// identities. It never fails: identity strings are not validated here, a
// nonsensical identity simply produces backend-rejected queries later.
//
// The frozen template describes a generic-password item in the
// data-protection store, shared under the access group "<team>.<app>".
func New(svc Service, appID, teamID string, opts ...Option) *Handle {
	o := options{
		accessibility: models.AccessibleAfterFirstUnlock,
		logger:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	template := models.Query{
		models.AttrClass:          models.ClassGenericPassword,
		models.AttrService:        appID,
		models.AttrAccessGroup:    teamID + "." + appID,
		models.AttrAccessible:     o.accessibility.Token(),
		models.AttrDataProtection: true,
	}

	return &Handle{
		service:  svc,
		template: template,
		logger:   o.logger,
	}
}

// Read fetches the raw payload stored under key. Absence is not an error:
// a key that was never written (or was deleted) yields (nil, nil). A stored
// empty payload yields a non-nil empty slice. Any backend status other than
// success or item-not-found is returned as a *[ReadError].
func (h *Handle) Read(ctx context.Context, key string) ([]byte, error) {
	query := h.template.
		With(models.AttrAccount, key).
		With(models.AttrMatchLimit, models.MatchLimitOne).
		With(models.AttrReturnData, true)

	data, status := h.service.CopyMatching(ctx, query)
	switch status {
	case models.StatusSuccess:
		return data, nil
	case models.StatusItemNotFound:
		return nil, nil
	default:
		h.logger.Debug().Str("account", key).Stringer("status", status).Msg("vault read failed")
		return nil, &ReadError{Status: status}
	}
}

// Write stores data under key, or deletes the item when data is nil.
//
// A non-nil payload is written add-first: the insert is attempted without
// any existence pre-check, and a duplicate-item answer triggers a retry as
// an update of the existing item. Collapsing check-then-write this way
// avoids a read/write race against the backend at the cost of always
// paying for the insert attempt. Two concurrent writers to one key may
// both hit the duplicate branch; last write wins, nothing corrupts, and no
// ordering is promised.
//
// A nil payload issues a delete. Deleting an absent key is success: the
// net effect — value absent — already holds.
func (h *Handle) Write(ctx context.Context, key string, data []byte) error {
	if data == nil {
		return h.delete(ctx, key)
	}

	addQuery := h.template.
		With(models.AttrAccount, key).
		With(models.AttrValueData, data)

	status := h.service.Add(ctx, addQuery)
	if status == models.StatusDuplicateItem {
		updateQuery := h.template.With(models.AttrAccount, key)
		attrs := models.Query{models.AttrValueData: data}
		status = h.service.Update(ctx, updateQuery, attrs)
	}

	if !status.OK() {
		h.logger.Debug().Str("account", key).Stringer("status", status).Msg("vault write failed")
		return &WriteError{Status: status}
	}
	return nil
}

func (h *Handle) delete(ctx context.Context, key string) error {
	query := h.template.With(models.AttrAccount, key)

	status := h.service.Delete(ctx, query)
	switch status {
	case models.StatusSuccess, models.StatusItemNotFound:
		return nil
	default:
		h.logger.Debug().Str("account", key).Stringer("status", status).Msg("vault delete failed")
		return &WriteError{Status: status}
	}
}
