// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintSize is the digest length in bytes; 8 bytes render as 16 hex
// characters.
const fingerprintSize = 8

// Fingerprint returns a short, non-reversible identifier of a secret so that
// log entries can tell tokens apart without containing them.
//
// The value is the hex-encoded 64-bit BLAKE2b digest of secret. An empty
// secret yields an empty fingerprint.
//
// Example usage:
//
//	log.Info().Str("token_fingerprint", utils.Fingerprint(token)).Msg("token updated")
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}

	h, err := blake2b.New(fingerprintSize, nil)
	if err != nil {
		// only reachable with an invalid size or key
		panic(err)
	}
	h.Write([]byte(secret))

	return hex.EncodeToString(h.Sum(nil))
}
