// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sandbox-token/internal/config"
	"github.com/MKhiriev/sandbox-token/internal/logger"
)

func TestNewStorages_UnknownBackend(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{Backend: "redis"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewStorages_MongoUnreachable(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{
		Backend: config.BackendMongo,
		Timeout: 300 * time.Millisecond,
		Mongo: config.Mongo{
			Host:       "127.0.0.1",
			Port:       1,
			Database:   "normal-oj",
			Collection: "config",
		},
	}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrConnection)
}

func TestNewStorages_SQLiteBadPath(t *testing.T) {
	dir := t.TempDir()

	// a directory cannot be opened as a database file
	s, err := NewStorages(context.Background(), config.Storage{
		Backend: config.BackendSQLite,
		DB:      config.DB{DSN: dir},
	}, logger.Nop())

	assert.Nil(t, s)
	assert.Error(t, err)
}

func TestStorages_CloseOnce(t *testing.T) {
	calls := 0
	s := &Storages{closeFn: func(context.Context) error {
		calls++
		return errors.New("closed")
	}}

	assert.Error(t, s.Close(context.Background()))
	assert.NoError(t, s.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close(context.Background()))
	assert.NoError(t, NewStoragesWithRepository(nil).Close(context.Background()))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Unclassified, c.Classify(nil))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))
	assert.Equal(t, UniqueViolation, c.Classify(pgError("23505")))
	assert.Equal(t, ConnectionFailure, c.Classify(pgError("08006")))
	assert.Equal(t, ConnectionFailure, c.Classify(pgError("57P03")))
	assert.Equal(t, Unclassified, c.Classify(pgError("42P01")))
}

func TestSQLiteErrorClassifier_NonSQLiteError(t *testing.T) {
	require.Equal(t, Unclassified, NewSQLiteErrorClassifier().Classify(errors.New("plain")))
}
