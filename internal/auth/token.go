// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package auth

import "github.com/google/uuid"

// GenerateToken creates a fresh opaque session token. Tokens carry no
// claims and no expiry; they stay valid until logout clears them.
func GenerateToken() string {
	return uuid.NewString()
}
