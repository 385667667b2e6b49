// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/sandbox-token/internal/config"
	"github.com/MKhiriev/sandbox-token/internal/logger"
	"github.com/MKhiriev/sandbox-token/internal/store"
	"github.com/MKhiriev/sandbox-token/internal/utils"
)

type Services struct {
	SandboxConfigService SandboxConfigService
	TokenGenerator       TokenGenerator
	SandboxProber        SandboxProber
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		SandboxConfigService: NewSandboxConfigValidationService().Wrap(
			NewSandboxConfigService(storages.SubmissionConfigRepository, logger),
		),
		TokenGenerator: NewTokenGenerator(),
		SandboxProber:  NewSandboxProber(utils.NewHTTPClient(cfg.Probe.Timeout), logger),
	}
}
