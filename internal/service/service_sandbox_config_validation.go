// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sandbox-token/internal/validators"
	"github.com/MKhiriev/sandbox-token/models"
)

type SandboxConfigValidationService struct {
	inner     SandboxConfigService
	validator validators.Validator
}

func NewSandboxConfigValidationService() SandboxConfigServiceWrapper {
	return &SandboxConfigValidationService{
		validator: validators.NewSandboxValidator(),
	}
}

func (v *SandboxConfigValidationService) Wrap(inner SandboxConfigService) SandboxConfigService {
	return &SandboxConfigValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *SandboxConfigValidationService) Show(ctx context.Context) (models.ShowResult, error) {
	return v.inner.Show(ctx)
}

func (v *SandboxConfigValidationService) SetToken(ctx context.Context, req models.SetTokenRequest) (models.SetTokenResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SetTokenResult{}, fmt.Errorf("%w: %w", ErrEmptyToken, err)
	}

	return v.inner.SetToken(ctx, req)
}
