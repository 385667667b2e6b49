// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sandbox-token/internal/config"
	"github.com/MKhiriev/sandbox-token/internal/logger"
)

// Storages groups the repositories of one database session together with
// the function releasing its connection.
type Storages struct {
	// SubmissionConfigRepository reads and writes the submission config.
	SubmissionConfigRepository SubmissionConfigRepository

	closeFn func(ctx context.Context) error
}

// NewStorages opens the backend selected by cfg.Backend:
//   - mongo:    [NewConnectMongo] + [NewMongoConfigRepository]
//   - postgres: [NewConnectPostgres], migrations, [NewSQLConfigRepository]
//   - sqlite:   [NewConnectSQLite], migrations, [NewSQLConfigRepository]
//
// The caller owns the returned value and must call [Storages.Close].
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Str("backend", cfg.Backend).Msg("creating new storages...")

	switch cfg.Backend {
	case config.BackendMongo:
		db, err := NewConnectMongo(ctx, cfg.Mongo, cfg.Timeout, logger)
		if err != nil {
			return nil, err
		}
		return &Storages{
			SubmissionConfigRepository: NewMongoConfigRepository(db, logger),
			closeFn:                    db.Close,
		}, nil

	case config.BackendPostgres, config.BackendSQLite:
		connect := NewConnectPostgres
		if cfg.Backend == config.BackendSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.DB, logger)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &Storages{
			SubmissionConfigRepository: NewSQLConfigRepository(db, logger),
			closeFn:                    db.Close,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// NewStoragesWithRepository wraps an existing repository; Close is a no-op.
func NewStoragesWithRepository(repo SubmissionConfigRepository) *Storages {
	return &Storages{SubmissionConfigRepository: repo}
}

// Close releases the database connection. It is safe to call on a nil
// receiver and more than once.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.closeFn == nil {
		return nil
	}

	closeFn := s.closeFn
	s.closeFn = nil
	return closeFn(ctx)
}
