// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-secret-vault/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

func TestOpen_MemoryBackend(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{Backend: config.BackendMemory}}

	svc, err := Open(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	status := svc.Add(context.Background(), withValue(testQuery("k"), []byte("v")))
	if status != models.StatusSuccess {
		t.Fatalf("Add status = %v, want success", status)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{Backend: "redis"}}

	if _, err := Open(context.Background(), cfg, logger.Nop()); err == nil {
		t.Fatal("expected error for unknown backend, got nil")
	}
}
