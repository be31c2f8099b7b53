// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "context"

// Codec is the conversion contract between an application type T and the
// raw byte payload the vault stores. Both methods are pure and never fail
// loudly:
//
//   - Encode may return nil to signal "nothing meaningful to store";
//     [Set] interprets that as a delete.
//   - Decode must return (zero, false) when data is nil, and must absorb
//     unparseable input the same way — a corrupted or foreign-format
//     payload is indistinguishable from "never stored". Only vault I/O
//     produces errors; conversion never does.
//
// A nil slice and a present-but-empty slice are distinct inputs to Decode.
type Codec[T any] interface {
	Encode(value T) []byte
	Decode(data []byte) (T, bool)
}

// Get reads the value stored under key through codec c. The bool result is
// false when the key is absent or the stored payload does not decode as T.
// A vault-level failure is returned as the error from [Handle.Read]; the
// caller must inspect it.
func Get[T any](ctx context.Context, h *Handle, c Codec[T], key string) (T, bool, error) {
	data, err := h.Read(ctx, key)
	if err != nil {
		var zero T
		return zero, false, err
	}
	value, ok := c.Decode(data)
	return value, ok, nil
}

// Set stores value under key through codec c. A codec that encodes the
// value to nil causes the key to be deleted, mirroring the source
// convention that "nothing to store" means removal.
func Set[T any](ctx context.Context, h *Handle, c Codec[T], key string, value T) error {
	return h.Write(ctx, key, c.Encode(value))
}

// MustGet is [Get] with the unrecoverable-fault escalation policy: any
// vault-level failure panics. It exists for callers that consider a broken
// credential store exceptional and not worth handling inline; everyone
// else should call [Get].
func MustGet[T any](ctx context.Context, h *Handle, c Codec[T], key string) (T, bool) {
	value, ok, err := Get(ctx, h, c, key)
	if err != nil {
		panic(err)
	}
	return value, ok
}

// MustSet is [Set] with the same escalation policy as [MustGet].
func MustSet[T any](ctx context.Context, h *Handle, c Codec[T], key string, value T) {
	if err := Set(ctx, h, c, key, value); err != nil {
		panic(err)
	}
}

// Remove deletes the value stored under key. Equivalent to a nil-payload
// [Handle.Write]; removing an absent key is success.
func Remove(ctx context.Context, h *Handle, key string) error {
	return h.Write(ctx, key, nil)
}
