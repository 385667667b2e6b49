// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConnection is returned when the database cannot be reached or
	// rejects the connection (unreachable host, failed ping, auth failure).
	ErrConnection = errors.New("database connection failed")

	// ErrUnknownBackend is returned by [NewStorages] for a backend name it
	// does not implement.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrConfigAlreadyExists is returned when inserting a submission config
	// while another document with the same discriminator is stored, e.g.
	// because a concurrent invocation created it first.
	ErrConfigAlreadyExists = errors.New("submission config already exists")

	// ErrConfigNotFound is returned when an update targets a submission
	// config that does not exist.
	ErrConfigNotFound = errors.New("submission config was not found")
)

// Low-level database operation errors. These are wrapped by repository
// methods when an operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into a submission config.
	ErrDecodingDocument = errors.New("failed to decode config document")

	// ErrEncodingDocument is returned when a submission config cannot be
	// encoded for storage.
	ErrEncodingDocument = errors.New("failed to encode config document")
)
