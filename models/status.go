// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Status is a vault service result code. The vocabulary mirrors the status
// codes of the platform credential store the module fronts: a small set of
// named codes the facade distinguishes, plus an open set of other failures
// that are all treated alike (reported, never interpreted).
type Status int32

const (
	// StatusSuccess indicates the operation achieved its net effect.
	StatusSuccess Status = 0

	// StatusParam indicates a malformed or self-contradictory query.
	StatusParam Status = -50

	// StatusIO indicates an underlying storage failure.
	StatusIO Status = -36

	// StatusNotAvailable indicates no vault backend is reachable.
	StatusNotAvailable Status = -25291

	// StatusAuthFailed indicates the caller may not touch the item under
	// the current lock state or access-group policy.
	StatusAuthFailed Status = -25293

	// StatusDuplicateItem indicates an add collided with an existing item
	// for the same service/group/account triple.
	StatusDuplicateItem Status = -25299

	// StatusItemNotFound indicates no item matched the query. The facade
	// treats this as success-with-absence on reads and deletes.
	StatusItemNotFound Status = -25300

	// StatusInteractionNotAllowed indicates the operation would require
	// user interaction that the calling context forbids.
	StatusInteractionNotAllowed Status = -25308

	// StatusDecode indicates the stored payload could not be decoded or
	// decrypted by the backend.
	StatusDecode Status = -26275
)

// statusText is the human-readable lookup used by [Status.String]. Codes
// outside the map render as the bare number.
var statusText = map[Status]string{
	StatusSuccess:               "success",
	StatusParam:                 "invalid query parameters",
	StatusIO:                    "storage I/O failure",
	StatusNotAvailable:          "vault not available",
	StatusAuthFailed:            "authorization failed",
	StatusDuplicateItem:         "duplicate item",
	StatusItemNotFound:          "item not found",
	StatusInteractionNotAllowed: "interaction not allowed",
	StatusDecode:                "unable to decode stored data",
}

// String renders the status as "<text> (<code>)" when the code is part of
// the named vocabulary, or just the numeric code otherwise.
func (s Status) String() string {
	if text, ok := statusText[s]; ok {
		return text + " (" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return "status " + strconv.FormatInt(int64(s), 10)
}

// OK reports whether the status is [StatusSuccess].
func (s Status) OK() bool {
	return s == StatusSuccess
}
