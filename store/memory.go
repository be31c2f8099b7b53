// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/MKhiriev/go-secret-vault/vault"
)

// itemKey is the identity triple of one stored item. Accessibility is an
// attribute of the item, not part of its identity.
type itemKey struct {
	service     string
	accessGroup string
	account     string
}

// memoryService is a process-local [vault.Service] backed by a mutex-guarded
// map. It is the reference implementation of the status semantics and the
// default backend for tests.
type memoryService struct {
	mu    sync.RWMutex
	items map[itemKey][]byte
}

// NewMemory constructs an empty in-memory [vault.Service]. Safe for
// concurrent use; each call is atomic under the internal lock.
func NewMemory() vault.Service {
	return &memoryService{
		items: make(map[itemKey][]byte),
	}
}

func keyOf(query models.Query) (itemKey, bool) {
	service, _ := query[models.AttrService].(string)
	group, _ := query[models.AttrAccessGroup].(string)
	account := query.Account()
	if account == "" {
		return itemKey{}, false
	}
	return itemKey{service: service, accessGroup: group, account: account}, true
}

// Add implements [vault.Service].
func (s *memoryService) Add(_ context.Context, query models.Query) models.Status {
	key, ok := keyOf(query)
	if !ok {
		return models.StatusParam
	}
	data := query.ValueData()
	if data == nil {
		return models.StatusParam
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[key]; exists {
		return models.StatusDuplicateItem
	}
	s.items[key] = cloneBytes(data)
	return models.StatusSuccess
}

// Update implements [vault.Service].
func (s *memoryService) Update(_ context.Context, query models.Query, attrs models.Query) models.Status {
	key, ok := keyOf(query)
	if !ok {
		return models.StatusParam
	}
	data := attrs.ValueData()
	if data == nil {
		return models.StatusParam
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[key]; !exists {
		return models.StatusItemNotFound
	}
	s.items[key] = cloneBytes(data)
	return models.StatusSuccess
}

// Delete implements [vault.Service].
func (s *memoryService) Delete(_ context.Context, query models.Query) models.Status {
	key, ok := keyOf(query)
	if !ok {
		return models.StatusParam
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[key]; !exists {
		return models.StatusItemNotFound
	}
	delete(s.items, key)
	return models.StatusSuccess
}

// CopyMatching implements [vault.Service]. The returned slice is a copy;
// a stored empty payload comes back non-nil.
func (s *memoryService) CopyMatching(_ context.Context, query models.Query) ([]byte, models.Status) {
	key, ok := keyOf(query)
	if !ok {
		return nil, models.StatusParam
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.items[key]
	if !exists {
		return nil, models.StatusItemNotFound
	}
	return cloneBytes(data), models.StatusSuccess
}

// cloneBytes copies b, preserving the non-nil-but-empty case.
func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
