// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ShowResult is the outcome of reading the submission config.
type ShowResult struct {
	// Found is false when no submission config exists yet. Config is the
	// zero value in that case.
	Found  bool
	Config SubmissionConfig
}

// SetTokenResult describes what a token update wrote.
type SetTokenResult struct {
	// Created is true when the submission config did not exist and was
	// inserted by this update.
	Created bool

	// Instance is the primary sandbox as stored after the write.
	Instance SandboxInstance

	// Reported is the sandbox built from the request with defaults applied
	// to omitted overrides. It differs from Instance when only the token was
	// given and the stored sandbox has a custom name or URL.
	Reported SandboxInstance
}

// ProbeResult is the outcome of contacting a sandbox.
type ProbeResult struct {
	URL        string
	StatusCode int
	Latency    time.Duration

	// Reachable is true for any 2xx or 3xx answer.
	Reachable bool
}
