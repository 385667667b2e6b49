// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/sandbox-token/models"
)

// SandboxConfigService reads and updates the sandbox list of the
// submission config.
type SandboxConfigService interface {
	// Show returns the submission config. A missing config is reported
	// through ShowResult.Found, not as an error.
	Show(ctx context.Context) (models.ShowResult, error)

	// SetToken replaces the token of the primary sandbox, creating the
	// submission config when it does not exist yet.
	SetToken(ctx context.Context, req models.SetTokenRequest) (models.SetTokenResult, error)
}

// TokenGenerator produces fresh sandbox tokens.
type TokenGenerator interface {
	Generate() (string, error)
}

// SandboxProber checks that a sandbox answers at its URL.
type SandboxProber interface {
	Probe(ctx context.Context, instance models.SandboxInstance) (models.ProbeResult, error)
}

// SandboxConfigServiceWrapper defines middleware composition for
// SandboxConfigService. Implementations wrap an existing service to add
// behavior such as validation.
type SandboxConfigServiceWrapper interface {
	Wrap(SandboxConfigService) SandboxConfigService
}
