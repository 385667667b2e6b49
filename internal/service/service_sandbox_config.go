// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sandbox-token/internal/logger"
	"github.com/MKhiriev/sandbox-token/internal/store"
	"github.com/MKhiriev/sandbox-token/internal/utils"
	"github.com/MKhiriev/sandbox-token/models"
)

type sandboxConfigService struct {
	configRepository store.SubmissionConfigRepository

	logger *logger.Logger
}

func NewSandboxConfigService(configRepository store.SubmissionConfigRepository, logger *logger.Logger) SandboxConfigService {
	return &sandboxConfigService{
		configRepository: configRepository,
		logger:           logger,
	}
}

func (s *sandboxConfigService) Show(ctx context.Context) (models.ShowResult, error) {
	cfg, found, err := s.configRepository.FindSubmissionConfig(ctx)
	if err != nil {
		return models.ShowResult{}, fmt.Errorf("%w: %w", ErrFindingConfig, err)
	}

	return models.ShowResult{Found: found, Config: cfg}, nil
}

// SetToken looks the config up and then writes it in a second call. The two
// calls are not atomic: a concurrent invocation between them can be
// overwritten.
func (s *sandboxConfigService) SetToken(ctx context.Context, req models.SetTokenRequest) (models.SetTokenResult, error) {
	log := logger.FromContext(ctx)

	reported := models.NewSandboxInstance(req.Token, req.URL, req.Name)

	cfg, found, err := s.configRepository.FindSubmissionConfig(ctx)
	if err != nil {
		return models.SetTokenResult{}, fmt.Errorf("%w: %w", ErrFindingConfig, err)
	}

	if !found {
		cfg = models.NewSubmissionConfig(reported)
		if err = s.configRepository.InsertSubmissionConfig(ctx, cfg); err != nil {
			log.Err(err).Str("func", "*sandboxConfigService.SetToken").Msg("error inserting submission config")
			return models.SetTokenResult{}, fmt.Errorf("%w: %w", ErrSavingConfig, err)
		}

		log.Info().
			Str("sandbox", reported.Name).
			Str("token_fingerprint", utils.Fingerprint(req.Token)).
			Msg("submission config created")
		return models.SetTokenResult{Created: true, Instance: reported, Reported: reported}, nil
	}

	cfg.ApplyToken(req.Token, req.URL, req.Name)
	if err = s.configRepository.SetSandboxInstances(ctx, cfg.SandboxInstances); err != nil {
		log.Err(err).Str("func", "*sandboxConfigService.SetToken").Msg("error updating sandbox instances")
		return models.SetTokenResult{}, fmt.Errorf("%w: %w", ErrSavingConfig, err)
	}

	instance, _ := cfg.PrimarySandbox()
	log.Info().
		Str("sandbox", instance.Name).
		Int("sandboxes", len(cfg.SandboxInstances)).
		Str("token_fingerprint", utils.Fingerprint(req.Token)).
		Msg("sandbox token updated")

	return models.SetTokenResult{Instance: instance, Reported: reported}, nil
}
