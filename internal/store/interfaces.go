// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/sandbox-token/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SubmissionConfigRepository reads and writes the single submission config
// document, identified by its discriminator [models.SubmissionConfigCls].
//
// Lookup and update are separate calls; a read-modify-write built on top of
// them is not atomic and two concurrent writers can lose an update.
type SubmissionConfigRepository interface {
	// FindSubmissionConfig returns the submission config. found is false,
	// with a nil error, when no document exists.
	FindSubmissionConfig(ctx context.Context) (cfg models.SubmissionConfig, found bool, err error)

	// InsertSubmissionConfig stores a new document. Returns
	// [ErrConfigAlreadyExists] if one is already stored.
	InsertSubmissionConfig(ctx context.Context, cfg models.SubmissionConfig) error

	// SetSandboxInstances replaces the sandbox list of the stored document,
	// leaving every other field untouched. Returns [ErrConfigNotFound] if
	// there is no document.
	SetSandboxInstances(ctx context.Context, instances []models.SandboxInstance) error
}
