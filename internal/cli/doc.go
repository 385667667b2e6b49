// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the console layer of sandbox-token.
//
// [App] resolves the action selected on the command line, opens the storage
// backend for the duration of that one action, calls the services and
// renders the outcome on stdout with lipgloss. Diagnostics go to the
// zerolog logger on stderr.
//
// Run returns the process exit status:
//   - [ExitOK] on success, including a show that finds no config;
//   - [ExitFailure] when storage, token generation or the probe fail;
//   - [ExitUsage] for a malformed invocation.
package cli
