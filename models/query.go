// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "maps"

// Attribute names understood by a vault service. A [Query] maps these names
// to values; which attributes are meaningful depends on the operation
// (add, update, delete, copy-matching).
const (
	// AttrClass selects the item class. The only class this module stores
	// is [ClassGenericPassword].
	AttrClass = "class"

	// AttrService is the application identity the item belongs to.
	AttrService = "service"

	// AttrAccessGroup is the sharing-group identity, in the form
	// "<team>.<app>". Applications signed by the same authority and
	// declaring the same group see each other's items.
	AttrAccessGroup = "access-group"

	// AttrAccessible carries the accessibility token of an
	// [Accessibility] policy.
	AttrAccessible = "accessible"

	// AttrAccount is the per-item key supplied by the caller.
	AttrAccount = "account"

	// AttrValueData is the stored byte payload. Present on add and update
	// queries only.
	AttrValueData = "value-data"

	// AttrMatchLimit bounds how many items a copy-matching query may
	// return. This module always sets [MatchLimitOne].
	AttrMatchLimit = "match-limit"

	// AttrReturnData requests the item payload (not just its attributes)
	// from a copy-matching query.
	AttrReturnData = "return-data"

	// AttrDataProtection marks the query as targeting the data-protection
	// store rather than any legacy file-based store.
	AttrDataProtection = "use-data-protection"
)

// Well-known attribute values.
const (
	// ClassGenericPassword is the item class for opaque keyed secrets.
	ClassGenericPassword = "generic-password"

	// MatchLimitOne limits a copy-matching query to a single item.
	MatchLimitOne = "one"
)

// Query is an attribute-value mapping describing a single vault operation.
// The facade builds one immutable template per handle and derives per-call
// queries from it; a vault service treats the query as opaque input.
//
// Values are deliberately loose (any): most attributes are strings, but
// [AttrValueData] carries []byte and the boolean flags carry bool.
type Query map[string]any

// Clone returns an independent shallow copy of q. Attribute values are not
// copied; callers must not mutate a []byte value reachable from a template.
func (q Query) Clone() Query {
	return maps.Clone(q)
}

// With returns a copy of q with the given attribute set. The receiver is
// never modified, so templates can be shared freely between goroutines.
func (q Query) With(attr string, value any) Query {
	c := q.Clone()
	c[attr] = value
	return c
}

// Account returns the per-item key carried by the query, or "" if the
// query has none.
func (q Query) Account() string {
	s, _ := q[AttrAccount].(string)
	return s
}

// ValueData returns the byte payload carried by the query, or nil if the
// query has none.
func (q Query) ValueData() []byte {
	b, _ := q[AttrValueData].([]byte)
	return b
}
