// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/MKhiriev/sandbox-token/internal/app"
	"github.com/MKhiriev/sandbox-token/internal/config"
	"github.com/MKhiriev/sandbox-token/internal/logger"
	"github.com/MKhiriev/sandbox-token/internal/service"
	"github.com/MKhiriev/sandbox-token/internal/store"
	"github.com/MKhiriev/sandbox-token/internal/utils"
	"github.com/MKhiriev/sandbox-token/models"
)

// Process exit statuses returned by [App.Run].
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// servicesOpener connects to storage and builds the services on top of it.
// The returned close function releases the connection.
type servicesOpener func(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*service.Services, func(context.Context) error, error)

type App struct {
	cfg       config.StructuredConfig
	buildInfo models.AppBuildInfo

	openServices servicesOpener
	clipboard    Clipboard
	runIDs       *utils.UUIDGenerator
	out          io.Writer

	logger *logger.Logger
}

func NewApp(cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		cfg:          cfg,
		buildInfo:    buildInfo,
		openServices: openStorageServices,
		clipboard:    NewSystemClipboard(),
		runIDs:       utils.NewUUIDGenerator(),
		out:          os.Stdout,
		logger:       logger,
	}
}

// Run performs the action selected on the command line and returns the
// process exit status. The storage connection lives for this one call and
// is always released.
func (a *App) Run(ctx context.Context) int {
	runID := a.runIDs.Generate()
	log := a.logger.WithRunID(runID)
	ctx = utils.WithRunID(log.WithContext(ctx), runID)

	v := newView(a.out)
	v.banner(a.buildInfo)

	action := a.cfg.Command.Action()
	if action == config.ActionSetToken && a.cfg.Command.Token == "" {
		v.failure(app.MsgInvalidInvocation, service.ErrEmptyToken, "")
		return ExitUsage
	}

	if a.cfg.Storage.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Storage.Timeout)
		defer cancel()
	}

	log.Debug().Int("action", int(action)).Str("backend", a.cfg.Storage.Backend).Msg("running action")

	services, closeServices, err := a.openServices(ctx, a.cfg, log)
	if err != nil {
		log.Err(err).Str("func", "*App.Run").Msg("error opening storage")
		v.failure("error", err, app.MsgDatabaseHint)
		return ExitFailure
	}
	defer func() {
		if err := closeServices(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("error closing storage")
		}
	}()

	switch action {
	case config.ActionShow:
		return a.show(ctx, v, services)

	case config.ActionGenerate:
		token, err := services.TokenGenerator.Generate()
		if err != nil {
			log.Err(err).Str("func", "*App.Run").Msg("error generating token")
			v.failure("error", err, "")
			return ExitFailure
		}
		v.generated(token)
		return a.setToken(ctx, v, services, token)

	case config.ActionSetToken:
		return a.setToken(ctx, v, services, a.cfg.Command.Token)

	default:
		code := a.show(ctx, v, services)
		v.helpHint()
		return code
	}
}

func (a *App) show(ctx context.Context, v *view, services *service.Services) int {
	result, err := services.SandboxConfigService.Show(ctx)
	if err != nil {
		v.failure("error", err, app.MsgDatabaseHint)
		return ExitFailure
	}

	v.config(result)
	if !result.Found {
		return ExitOK
	}

	primary, ok := result.Config.PrimarySandbox()
	if a.cfg.Command.Copy && ok {
		v.copied(a.clipboard.WriteAll(primary.Token))
	}

	return a.check(ctx, v, services, primary, ok)
}

func (a *App) setToken(ctx context.Context, v *view, services *service.Services, token string) int {
	log := logger.FromContext(ctx)

	result, err := services.SandboxConfigService.SetToken(ctx, models.SetTokenRequest{
		Token: token,
		URL:   a.cfg.Command.URL,
		Name:  a.cfg.Command.Name,
	})
	if errors.Is(err, service.ErrEmptyToken) {
		v.failure(app.MsgInvalidInvocation, err, "")
		return ExitUsage
	}
	if err != nil {
		v.failure("error", err, app.MsgDatabaseHint)
		return ExitFailure
	}

	if result.Reported != result.Instance {
		log.Debug().
			Str("stored_name", result.Instance.Name).
			Str("stored_url", result.Instance.URL).
			Msg("kept stored sandbox name and url")
	}

	v.updated(result, a.cfg.App)
	if a.cfg.Command.Copy {
		v.copied(a.clipboard.WriteAll(result.Instance.Token))
	}

	return a.check(ctx, v, services, result.Instance, true)
}

// check probes the sandbox when --check was given. A sandbox answering with
// an HTTP error still counts as success of the check itself.
func (a *App) check(ctx context.Context, v *view, services *service.Services, instance models.SandboxInstance, ok bool) int {
	if !a.cfg.Command.Check {
		return ExitOK
	}
	if !ok {
		v.failure(app.MsgNothingToProbe, nil, "")
		return ExitFailure
	}

	result, err := services.SandboxProber.Probe(ctx, instance)
	if err != nil {
		v.failure(app.MsgProbeFailed, err, "")
		return ExitFailure
	}

	v.probe(result)
	return ExitOK
}

func openStorageServices(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*service.Services, func(context.Context) error, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, err
	}

	return service.NewServices(storages, cfg, log), storages.Close, nil
}
