// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "context"

// Accessor binds one handle, one codec and one key into a reusable typed
// credential slot — the explicit-object replacement for declarative
// property syntax. The zero value is not usable; build one with
// [NewAccessor] and keep it for the lifetime of the credential.
type Accessor[T any] struct {
	handle *Handle
	codec  Codec[T]
	key    string
}

// NewAccessor builds an [Accessor] for key on h using codec c.
func NewAccessor[T any](h *Handle, c Codec[T], key string) *Accessor[T] {
	return &Accessor[T]{handle: h, codec: c, key: key}
}

// Get reads the slot. ok is false when the slot is empty or holds bytes
// the codec cannot decode.
func (a *Accessor[T]) Get(ctx context.Context) (value T, ok bool, err error) {
	return Get(ctx, a.handle, a.codec, a.key)
}

// Set writes the slot.
func (a *Accessor[T]) Set(ctx context.Context, value T) error {
	return Set(ctx, a.handle, a.codec, a.key, value)
}

// Clear empties the slot. Clearing an already-empty slot is success.
func (a *Accessor[T]) Clear(ctx context.Context) error {
	return Remove(ctx, a.handle, a.key)
}

// MustGet is [Accessor.Get] with vault failures escalated to a panic.
func (a *Accessor[T]) MustGet(ctx context.Context) (T, bool) {
	return MustGet(ctx, a.handle, a.codec, a.key)
}

// MustSet is [Accessor.Set] with vault failures escalated to a panic.
func (a *Accessor[T]) MustSet(ctx context.Context, value T) {
	MustSet(ctx, a.handle, a.codec, a.key, value)
}

// DefaultedAccessor is the second sugar flavor: a slot declared with a
// fallback value, so reads always yield a usable T. Absence and undecodable
// payloads both collapse to the fallback.
type DefaultedAccessor[T any] struct {
	Accessor[T]
	fallback T
}

// NewDefaultedAccessor builds a [DefaultedAccessor] for key on h using
// codec c, yielding fallback whenever the slot has no decodable value.
func NewDefaultedAccessor[T any](h *Handle, c Codec[T], key string, fallback T) *DefaultedAccessor[T] {
	return &DefaultedAccessor[T]{
		Accessor: Accessor[T]{handle: h, codec: c, key: key},
		fallback: fallback,
	}
}

// Get reads the slot, substituting the declared fallback for absence.
func (a *DefaultedAccessor[T]) Get(ctx context.Context) (T, error) {
	value, ok, err := Get(ctx, a.handle, a.codec, a.key)
	if err != nil {
		return a.fallback, err
	}
	if !ok {
		return a.fallback, nil
	}
	return value, nil
}

// MustGet is [DefaultedAccessor.Get] with vault failures escalated to a
// panic.
func (a *DefaultedAccessor[T]) MustGet(ctx context.Context) T {
	value, err := a.Get(ctx)
	if err != nil {
		panic(err)
	}
	return value
}
