// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// SubmissionConfigCls is the discriminator value stored in the "_cls"
	// field. It identifies the submission config among the other documents
	// sharing the config collection.
	SubmissionConfigCls = "SubmissionConfig"

	// SubmissionConfigName is the constant "name" of a submission config.
	SubmissionConfigName = "submission"

	// DefaultSandboxName is used when a sandbox entry is created without
	// an explicit name.
	DefaultSandboxName = "Sandbox-0"

	// DefaultSandboxURL is used when a sandbox entry is created without
	// an explicit URL.
	DefaultSandboxURL = "http://sandbox:1450"
)

// SubmissionConfig is the configuration document that governs submission
// handling, including the sandboxes submissions are dispatched to.
type SubmissionConfig struct {
	Cls              string            `bson:"_cls" json:"_cls"`
	Name             string            `bson:"name" json:"name"`
	RateLimit        int64             `bson:"rateLimit" json:"rateLimit"`
	SandboxInstances []SandboxInstance `bson:"sandboxInstances" json:"sandboxInstances"`
}

// SandboxInstance describes one sandbox: a code-execution service reached at
// URL and authenticated with a bearer Token.
type SandboxInstance struct {
	Name  string `bson:"name" json:"name"`
	URL   string `bson:"url" json:"url"`
	Token string `bson:"token" json:"token"`
}

// NewSandboxInstance builds a sandbox entry for token. Empty url or name fall
// back to DefaultSandboxURL and DefaultSandboxName.
func NewSandboxInstance(token, url, name string) SandboxInstance {
	return SandboxInstance{
		Name:  valueOrDefault(name, DefaultSandboxName),
		URL:   valueOrDefault(url, DefaultSandboxURL),
		Token: token,
	}
}

// NewSubmissionConfig returns a fresh document holding a single sandbox.
func NewSubmissionConfig(instance SandboxInstance) SubmissionConfig {
	return SubmissionConfig{
		Cls:              SubmissionConfigCls,
		Name:             SubmissionConfigName,
		RateLimit:        0,
		SandboxInstances: []SandboxInstance{instance},
	}
}

// ApplyToken updates the first sandbox of the config.
//
// The token is always replaced; url and name only when non-empty, so omitted
// overrides keep the stored values. An empty sandbox list is replaced by a
// single entry built with [NewSandboxInstance], which does apply defaults.
func (c *SubmissionConfig) ApplyToken(token, url, name string) {
	if len(c.SandboxInstances) == 0 {
		c.SandboxInstances = []SandboxInstance{NewSandboxInstance(token, url, name)}
		return
	}

	first := &c.SandboxInstances[0]
	first.Token = token
	if url != "" {
		first.URL = url
	}
	if name != "" {
		first.Name = name
	}
}

// PrimarySandbox returns the sandbox updates are applied to.
// ok is false when the config has no sandboxes.
func (c SubmissionConfig) PrimarySandbox() (SandboxInstance, bool) {
	if len(c.SandboxInstances) == 0 {
		return SandboxInstance{}, false
	}
	return c.SandboxInstances[0], true
}

func valueOrDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
