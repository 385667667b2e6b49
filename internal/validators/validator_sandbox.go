// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sandbox-token/models"
)

const (
	FieldToken = "token"
	FieldURL   = "url"
)

type SandboxValidator struct {
}

func NewSandboxValidator() Validator {
	return &SandboxValidator{}
}

// Validate checks a [models.SetTokenRequest] or a [models.SandboxInstance].
// Without fields every field the type requires is checked.
func (v *SandboxValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SetTokenRequest:
		return v.validateFields(value.Token, "", withDefault(fields, FieldToken)...)
	case *models.SetTokenRequest:
		return v.validateFields(value.Token, "", withDefault(fields, FieldToken)...)

	case models.SandboxInstance:
		return v.validateFields(value.Token, value.URL, withDefault(fields, FieldURL)...)
	case *models.SandboxInstance:
		return v.validateFields(value.Token, value.URL, withDefault(fields, FieldURL)...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SandboxValidator) validateFields(token, url string, fields ...string) error {
	for _, field := range fields {
		switch field {
		case FieldToken:
			if token == "" {
				return ErrEmptyToken
			}
		case FieldURL:
			if url == "" {
				return ErrEmptyURL
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func withDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
