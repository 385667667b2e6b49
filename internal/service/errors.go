// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyToken = errors.New("token must not be empty")

	ErrFindingConfig = errors.New("error finding submission config")
	ErrSavingConfig  = errors.New("error saving submission config")

	ErrGeneratingToken = errors.New("error generating token")

	ErrNoSandboxURL       = errors.New("sandbox has no url")
	ErrSandboxUnreachable = errors.New("sandbox is unreachable")
)
