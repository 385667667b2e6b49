// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sandbox-token/internal/logger"
	"github.com/MKhiriev/sandbox-token/internal/utils"
	"github.com/MKhiriev/sandbox-token/internal/validators"
	"github.com/MKhiriev/sandbox-token/models"
)

type sandboxProber struct {
	client    *utils.HTTPClient
	validator validators.Validator

	logger *logger.Logger
}

func NewSandboxProber(client *utils.HTTPClient, logger *logger.Logger) SandboxProber {
	return &sandboxProber{
		client:    client,
		validator: validators.NewSandboxValidator(),
		logger:    logger,
	}
}

// Probe sends GET to the sandbox URL with the token as a bearer credential.
// Any HTTP answer counts as a result; only transport failures are errors.
func (p *sandboxProber) Probe(ctx context.Context, instance models.SandboxInstance) (models.ProbeResult, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, instance, validators.FieldURL); err != nil {
		return models.ProbeResult{}, fmt.Errorf("%w: %w", ErrNoSandboxURL, err)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(instance.Token).
		Get(instance.URL)
	if err != nil {
		log.Err(err).Str("func", "*sandboxProber.Probe").Str("url", instance.URL).Msg("error probing sandbox")
		return models.ProbeResult{URL: instance.URL}, fmt.Errorf("%w: %w", ErrSandboxUnreachable, err)
	}

	result := models.ProbeResult{
		URL:        instance.URL,
		StatusCode: resp.StatusCode(),
		Latency:    resp.Time(),
		Reachable:  resp.StatusCode() < 400,
	}
	log.Debug().
		Str("url", result.URL).
		Int("status", result.StatusCode).
		Dur("latency", result.Latency).
		Msg("sandbox probed")

	return result, nil
}
