// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SetTokenRequest asks for the token of the primary sandbox to be replaced.
type SetTokenRequest struct {
	// Token is the new bearer token. It must not be empty.
	Token string

	// URL overrides the sandbox URL. Empty keeps the stored value, or
	// DefaultSandboxURL when the sandbox entry is created.
	URL string

	// Name overrides the sandbox name with the same rules as URL.
	Name string
}
