// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"strconv"
	"time"
	"unicode/utf8"
)

// textCodec derives a [Codec] for any type that round-trips losslessly
// through its textual rendering: Encode renders the value and emits the
// UTF-8 bytes, Decode validates UTF-8 and re-parses. A parse failure or
// invalid UTF-8 collapses to absence, per the codec contract.
type textCodec[T any] struct {
	format func(T) string
	parse  func(string) (T, error)
}

func (c textCodec[T]) Encode(value T) []byte {
	return []byte(c.format(value))
}

func (c textCodec[T]) Decode(data []byte) (T, bool) {
	var zero T
	if data == nil || !utf8.Valid(data) {
		return zero, false
	}
	value, err := c.parse(string(data))
	if err != nil {
		return zero, false
	}
	return value, true
}

// NewTextCodec builds a string-derived [Codec] from a render function and
// its inverse. format must produce text that parse reconstructs exactly;
// parse reports failure by returning an error, which the codec absorbs
// into absence.
func NewTextCodec[T any](format func(T) string, parse func(string) (T, error)) Codec[T] {
	return textCodec[T]{format: format, parse: parse}
}

// Built-in codecs for the scalar types the source system supports out of
// the box. Numeric formatting uses strconv's shortest round-tripping
// representation, so stored bytes are the plain decimal text of the value
// (the integer 42 is stored as the two bytes "42").
var (
	// StringCodec stores text as its UTF-8 bytes. Decode still rejects
	// invalid UTF-8: a foreign binary payload reads back as absent, not
	// as a garbled string.
	StringCodec Codec[string] = textCodec[string]{
		format: func(s string) string { return s },
		parse:  func(s string) (string, error) { return s, nil },
	}

	// BoolCodec stores "true" or "false".
	BoolCodec Codec[bool] = textCodec[bool]{
		format: strconv.FormatBool,
		parse:  strconv.ParseBool,
	}

	// IntCodec stores the decimal rendering of an int.
	IntCodec Codec[int] = textCodec[int]{
		format: strconv.Itoa,
		parse:  strconv.Atoi,
	}

	// Int64Codec stores the decimal rendering of an int64.
	Int64Codec Codec[int64] = textCodec[int64]{
		format: func(v int64) string { return strconv.FormatInt(v, 10) },
		parse:  func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
	}

	// Float32Codec stores the shortest decimal text that round-trips the
	// float32 exactly.
	Float32Codec Codec[float32] = textCodec[float32]{
		format: func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) },
		parse: func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		},
	}

	// Float64Codec stores the shortest decimal text that round-trips the
	// float64 exactly.
	Float64Codec Codec[float64] = textCodec[float64]{
		format: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
		parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	}
)

// BytesCodec is the identity codec for raw payloads: no transformation on
// either side. Encoding a nil slice yields nil, which [Set] treats as a
// delete.
var BytesCodec Codec[[]byte] = bytesCodec{}

type bytesCodec struct{}

func (bytesCodec) Encode(value []byte) []byte { return value }

func (bytesCodec) Decode(data []byte) ([]byte, bool) {
	if data == nil {
		return nil, false
	}
	return data, true
}

// ReferenceEpoch is the fixed reference point for [TimeCodec]:
// 2001-01-01T00:00:00Z, the reference date of the platform store this
// module fronts. Both encode and decode measure against this instant, so
// any two parties using this codec agree on the stored text.
var ReferenceEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// TimeCodec stores an instant as the decimal text of its offset from
// [ReferenceEpoch] in seconds (float64). Round-trip accuracy is bounded by
// float64 precision, which keeps sub-microsecond fidelity for any instant
// within a few centuries of the epoch.
var TimeCodec Codec[time.Time] = textCodec[time.Time]{
	format: func(t time.Time) string {
		seconds := t.Sub(ReferenceEpoch).Seconds()
		return strconv.FormatFloat(seconds, 'g', -1, 64)
	},
	parse: func(s string) (time.Time, error) {
		seconds, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, err
		}
		return ReferenceEpoch.Add(time.Duration(seconds * float64(time.Second))), nil
	},
}
