// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sandbox-token/internal/cli"
	"github.com/MKhiriev/sandbox-token/internal/config"
	"github.com/MKhiriev/sandbox-token/internal/logger"
	"github.com/MKhiriev/sandbox-token/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	cfg, err := config.GetStructuredConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return cli.ExitOK
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return cli.ExitUsage
	}

	log := logger.NewLogger("sandbox-token", cfg.LogLevel)
	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("mongo_database", cfg.Storage.Mongo.Database).
		Dur("timeout", cfg.Storage.Timeout).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	return cli.NewApp(*cfg, buildInfo, log).Run(ctx)
}
