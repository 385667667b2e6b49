// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/sandbox-token/internal/logger"
	"github.com/MKhiriev/sandbox-token/models"
)

// sqlConfigRepository is the [SubmissionConfigRepository] for the postgres
// and sqlite backends. Documents are stored as JSON text in the config table,
// keyed by their discriminator; the primary key keeps at most one document per
// discriminator.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type sqlConfigRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLConfigRepository constructs a [SubmissionConfigRepository] backed by
// the provided database connection.
func NewSQLConfigRepository(db *DB, logger *logger.Logger) SubmissionConfigRepository {
	logger.Debug().Msg("creating sql submission config repository")
	return &sqlConfigRepository{
		db:     db,
		logger: logger,
	}
}

// FindSubmissionConfig loads and decodes the stored document.
// sql.ErrNoRows maps to found == false.
func (r *sqlConfigRepository) FindSubmissionConfig(ctx context.Context) (models.SubmissionConfig, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := findDocumentQuery(r.db.builder, models.SubmissionConfigCls)
	if err != nil {
		return models.SubmissionConfig{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var document string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SubmissionConfig{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.FindSubmissionConfig").Msg("error selecting config document")
		return models.SubmissionConfig{}, false, r.mapError(ErrExecutingQuery, err)
	}

	var cfg models.SubmissionConfig
	if err = json.Unmarshal([]byte(document), &cfg); err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.FindSubmissionConfig").Msg("error decoding config document")
		return models.SubmissionConfig{}, false, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return cfg, true, nil
}

// InsertSubmissionConfig stores cfg as a new row. A primary key violation
// maps to [ErrConfigAlreadyExists].
func (r *sqlConfigRepository) InsertSubmissionConfig(ctx context.Context, cfg models.SubmissionConfig) error {
	log := logger.FromContext(ctx)

	document, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := insertDocumentQuery(r.db.builder, models.SubmissionConfigCls, string(document))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.InsertSubmissionConfig").Msg("error inserting config document")
		return r.mapError(ErrExecutingStatement, err)
	}

	return nil
}

// SetSandboxInstances rewrites the "sandboxInstances" key of the stored
// document inside a transaction. Keys this tool does not know about are kept
// verbatim.
func (r *sqlConfigRepository) SetSandboxInstances(ctx context.Context, instances []models.SandboxInstance) error {
	log := logger.FromContext(ctx)

	if instances == nil {
		instances = []models.SandboxInstance{}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.SetSandboxInstances").Msg("error beginning transaction")
		return r.mapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := lockDocumentQuery(r.db.builder, r.db.dialect, models.SubmissionConfigCls)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().Str("func", "*sqlConfigRepository.SetSandboxInstances").Msg("no submission config to update")
		return ErrConfigNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.SetSandboxInstances").Msg("error selecting config document")
		return r.mapError(ErrExecutingQuery, err)
	}

	document, err := replaceSandboxInstances(stored, instances)
	if err != nil {
		return err
	}

	query, args, err = updateDocumentQuery(r.db.builder, models.SubmissionConfigCls, document)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.SetSandboxInstances").Msg("error updating config document")
		return r.mapError(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlConfigRepository.SetSandboxInstances").Msg("error committing transaction")
		return r.mapError(ErrCommitingTransaction, err)
	}

	return nil
}

// mapError converts a driver error to the repository sentinels, falling back
// to wrapping it with op.
func (r *sqlConfigRepository) mapError(op, err error) error {
	switch r.db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return ErrConfigAlreadyExists
	case ConnectionFailure:
		return fmt.Errorf("%w: %w", ErrConnection, err)
	default:
		return fmt.Errorf("%w: %w", op, err)
	}
}

// replaceSandboxInstances returns stored with its sandbox list replaced.
func replaceSandboxInstances(stored string, instances []models.SandboxInstance) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stored), &fields); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage)
	}

	encoded, err := json.Marshal(instances)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	fields["sandboxInstances"] = encoded

	document, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return string(document), nil
}
