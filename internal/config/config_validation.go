// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable before
// any connection is attempted.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinels from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendMongo:
		if err := cfg.Storage.Mongo.validate(); err != nil {
			return err
		}
	case BackendPostgres, BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Storage.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
		}
	}

	if cfg.Command.Action() == ActionSetToken && cfg.Command.Token == "" {
		return fmt.Errorf("%w: --token requires a non-empty value", ErrInvalidInvocation)
	}

	return nil
}

func (m Mongo) validate() error {
	if m.Database == "" || m.Collection == "" {
		return fmt.Errorf("%w: database and collection are required", ErrInvalidMongoConfigs)
	}

	if m.URI != "" {
		return nil
	}

	if m.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidMongoConfigs)
	}

	if m.Port < 1 || m.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidMongoConfigs, m.Port)
	}

	return nil
}
