// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sandbox-token/internal/config"
	"github.com/MKhiriev/sandbox-token/internal/logger"
	"github.com/MKhiriev/sandbox-token/models"
)

func newTestSQLRepo(t *testing.T) (SubmissionConfigRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := NewSQLConfigRepository(&DB{
		DB:                 db,
		dialect:            "pgx",
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             l,
	}, l)
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// documentArg matches a JSON document argument against a check function.
type documentArg func(doc map[string]any) bool

func (m documentArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return false
	}
	return m(doc)
}

// ── FindSubmissionConfig ─────────────────────────────────────────────────────

func TestSQLFindSubmissionConfig_Found(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	stored := `{"_cls":"SubmissionConfig","name":"submission","rateLimit":3,
		"sandboxInstances":[{"name":"X","url":"http://old:1","token":"t0"}]}`
	mock.ExpectQuery(`SELECT document FROM config WHERE cls = \$1`).
		WithArgs(models.SubmissionConfigCls).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(stored))

	cfg, found, err := repo.FindSubmissionConfig(context.Background())

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(3), cfg.RateLimit)
	assert.Equal(t, []models.SandboxInstance{{Name: "X", URL: "http://old:1", Token: "t0"}}, cfg.SandboxInstances)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLFindSubmissionConfig_NotFound(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectQuery(`SELECT document FROM config`).
		WithArgs(models.SubmissionConfigCls).
		WillReturnError(sql.ErrNoRows)

	cfg, found, err := repo.FindSubmissionConfig(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.SubmissionConfig{}, cfg)
}

func TestSQLFindSubmissionConfig_CorruptDocument(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectQuery(`SELECT document FROM config`).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow("{broken"))

	_, _, err := repo.FindSubmissionConfig(context.Background())

	assert.ErrorIs(t, err, ErrDecodingDocument)
}

func TestSQLFindSubmissionConfig_ConnectionLost(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectQuery(`SELECT document FROM config`).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, _, err := repo.FindSubmissionConfig(context.Background())

	assert.ErrorIs(t, err, ErrConnection)
}

// ── InsertSubmissionConfig ───────────────────────────────────────────────────

func TestSQLInsertSubmissionConfig_Success(t *testing.T) {
	repo, mock := newTestSQLRepo(t)
	cfg := models.NewSubmissionConfig(models.NewSandboxInstance("abc123", "", ""))

	mock.ExpectExec(`INSERT INTO config \(cls,document\) VALUES \(\$1,\$2\)`).
		WithArgs(models.SubmissionConfigCls, documentArg(func(doc map[string]any) bool {
			instances, ok := doc["sandboxInstances"].([]any)
			return ok && len(instances) == 1 && doc["_cls"] == "SubmissionConfig"
		})).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.InsertSubmissionConfig(context.Background(), cfg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLInsertSubmissionConfig_UniqueViolation(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectExec(`INSERT INTO config`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.InsertSubmissionConfig(context.Background(), models.SubmissionConfig{})

	assert.ErrorIs(t, err, ErrConfigAlreadyExists)
}

func TestSQLInsertSubmissionConfig_OtherError(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectExec(`INSERT INTO config`).
		WillReturnError(errors.New("disk full"))

	err := repo.InsertSubmissionConfig(context.Background(), models.SubmissionConfig{})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "disk full")
}

// ── SetSandboxInstances ──────────────────────────────────────────────────────

func TestSQLSetSandboxInstances_PreservesOtherFields(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	stored := `{"_cls":"SubmissionConfig","name":"submission","rateLimit":5,"extra":"keep",
		"sandboxInstances":[{"name":"X","url":"http://old:1","token":"t0"}]}`

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT document FROM config WHERE cls = \$1 FOR UPDATE`).
		WithArgs(models.SubmissionConfigCls).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(stored))
	mock.ExpectExec(`UPDATE config SET document = \$1 WHERE cls = \$2`).
		WithArgs(documentArg(func(doc map[string]any) bool {
			instances, ok := doc["sandboxInstances"].([]any)
			if !ok || len(instances) != 1 {
				return false
			}
			first := instances[0].(map[string]any)
			return first["token"] == "new" &&
				first["name"] == "X" &&
				doc["extra"] == "keep" &&
				doc["rateLimit"] == float64(5)
		}), models.SubmissionConfigCls).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SetSandboxInstances(context.Background(), []models.SandboxInstance{
		{Name: "X", URL: "http://old:1", Token: "new"},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSetSandboxInstances_NotFound(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT document FROM config`).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.SetSandboxInstances(context.Background(), []models.SandboxInstance{{Token: "x"}})

	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSetSandboxInstances_BeginError(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("busy"))

	err := repo.SetSandboxInstances(context.Background(), nil)

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSQLSetSandboxInstances_UpdateError(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT document FROM config`).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(`{"_cls":"SubmissionConfig"}`))
	mock.ExpectExec(`UPDATE config`).WillReturnError(errors.New("read only"))
	mock.ExpectRollback()

	err := repo.SetSandboxInstances(context.Background(), []models.SandboxInstance{{Token: "x"}})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSetSandboxInstances_CommitError(t *testing.T) {
	repo, mock := newTestSQLRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT document FROM config`).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(`{}`))
	mock.ExpectExec(`UPDATE config`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.SetSandboxInstances(context.Background(), []models.SandboxInstance{{Token: "x"}})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── replaceSandboxInstances ──────────────────────────────────────────────────

func TestReplaceSandboxInstances(t *testing.T) {
	out, err := replaceSandboxInstances(`{"name":"submission","sandboxInstances":[]}`,
		[]models.SandboxInstance{{Name: "a", URL: "b", Token: "c"}})
	require.NoError(t, err)

	var cfg models.SubmissionConfig
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "submission", cfg.Name)
	assert.Equal(t, []models.SandboxInstance{{Name: "a", URL: "b", Token: "c"}}, cfg.SandboxInstances)

	_, err = replaceSandboxInstances(`[1,2]`, nil)
	assert.ErrorIs(t, err, ErrDecodingDocument)
}

// ── sqlite round trip ────────────────────────────────────────────────────────

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "config.db")

	storages, err := NewStorages(ctx, config.Storage{
		Backend: config.BackendSQLite,
		DB:      config.DB{DSN: dsn},
	}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close(ctx)

	repo := storages.SubmissionConfigRepository

	_, found, err := repo.FindSubmissionConfig(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	err = repo.SetSandboxInstances(ctx, []models.SandboxInstance{{Token: "x"}})
	assert.ErrorIs(t, err, ErrConfigNotFound)

	cfg := models.NewSubmissionConfig(models.NewSandboxInstance("abc123", "", ""))
	require.NoError(t, repo.InsertSubmissionConfig(ctx, cfg))
	assert.ErrorIs(t, repo.InsertSubmissionConfig(ctx, cfg), ErrConfigAlreadyExists)

	updated := []models.SandboxInstance{
		{Name: "Sandbox-0", URL: "http://sandbox:1450", Token: "new"},
		{Name: "Sandbox-1", URL: "http://sandbox-1:1450", Token: "t1"},
	}
	require.NoError(t, repo.SetSandboxInstances(ctx, updated))

	got, found, err := repo.FindSubmissionConfig(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.SubmissionConfigCls, got.Cls)
	assert.Equal(t, "submission", got.Name)
	assert.Equal(t, updated, got.SandboxInstances)
}
