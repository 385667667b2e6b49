// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// tokenBytes is the amount of randomness behind a generated token (256 bits).
// Unpadded URL-safe base64 turns it into 43 characters.
const tokenBytes = 32

type tokenGenerator struct {
	random io.Reader
}

func NewTokenGenerator() TokenGenerator {
	return &tokenGenerator{random: rand.Reader}
}

func (g *tokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingToken, err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
