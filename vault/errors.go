// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"fmt"

	"github.com/MKhiriev/go-secret-vault/models"
)

// The facade's error taxonomy is exactly two kinds, each carrying the
// backend's native status code. Callers match them with [errors.As].
// "Item not found" is never an error: reads report it as absence and
// deletes treat it as success.

// ReadError is returned by [Handle.Read] when the backend answers with any
// status other than success or item-not-found.
type ReadError struct {
	Status models.Status
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("vault read failed: %s", e.Status)
}

// WriteError is returned by [Handle.Write] when an add, update or delete
// answers with a status the write path cannot absorb.
type WriteError struct {
	Status models.Status
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("vault write failed: %s", e.Status)
}
