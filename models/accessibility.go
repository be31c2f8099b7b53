// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Accessibility controls when the vault may release a stored value relative
// to the device lock state and passcode presence. It is pure configuration:
// the facade maps each variant 1:1 to a vault-defined token and never
// interprets it further. There is no ordering between variants.
type Accessibility int

const (
	// AccessibleAfterFirstUnlock releases the value once the device has
	// been unlocked at least once since boot, even while backgrounded,
	// on any device sharing the access group. This is the widest option
	// and the default when a handle is built without an explicit policy.
	AccessibleAfterFirstUnlock Accessibility = iota

	// AccessibleWhenUnlocked releases the value only while the device is
	// unlocked.
	AccessibleWhenUnlocked

	// AccessibleWhenUnlockedThisDeviceOnly behaves like
	// [AccessibleWhenUnlocked] and additionally pins the item to the
	// device it was stored on (never migrated or synced).
	AccessibleWhenUnlockedThisDeviceOnly

	// AccessibleAfterFirstUnlockThisDeviceOnly behaves like
	// [AccessibleAfterFirstUnlock] with the same device pinning.
	AccessibleAfterFirstUnlockThisDeviceOnly

	// AccessibleWhenPasscodeSetThisDeviceOnly requires a passcode to be
	// configured; removing the passcode destroys the item.
	AccessibleWhenPasscodeSetThisDeviceOnly
)

// accessibilityToken maps each variant to the token written into the query
// template under [AttrAccessible].
var accessibilityToken = map[Accessibility]string{
	AccessibleAfterFirstUnlock:               "after-first-unlock",
	AccessibleWhenUnlocked:                   "when-unlocked",
	AccessibleWhenUnlockedThisDeviceOnly:     "when-unlocked-this-device-only",
	AccessibleAfterFirstUnlockThisDeviceOnly: "after-first-unlock-this-device-only",
	AccessibleWhenPasscodeSetThisDeviceOnly:  "when-passcode-set-this-device-only",
}

// Token returns the vault token for the variant. Unknown variants fall back
// to the default policy's token rather than producing an empty attribute.
func (a Accessibility) Token() string {
	if token, ok := accessibilityToken[a]; ok {
		return token
	}
	return accessibilityToken[AccessibleAfterFirstUnlock]
}

// String returns the same token form used in queries and configuration.
func (a Accessibility) String() string {
	return a.Token()
}

// ParseAccessibility converts a token (as found in configuration files or
// environment variables) back into an [Accessibility] variant. An empty
// token selects the default policy.
func ParseAccessibility(token string) (Accessibility, error) {
	if token == "" {
		return AccessibleAfterFirstUnlock, nil
	}
	for a, t := range accessibilityToken {
		if t == token {
			return a, nil
		}
	}
	return AccessibleAfterFirstUnlock, fmt.Errorf("unknown accessibility token %q", token)
}
