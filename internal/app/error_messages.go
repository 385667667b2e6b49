// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the operator-facing message strings of the
// sandbox-token tool.
//
// All Msg* constants are printed to stdout by the console layer. Keeping them
// in one place ensures consistent wording across the show, update and probe
// paths.
package app

const (
	// MsgConfigNotFound is printed when no submission config exists yet,
	// typically on a first deployment.
	MsgConfigNotFound = "SubmissionConfig not found, this may be a first deployment"

	// MsgConfigNotFoundHint tells the operator how the defaults get created.
	MsgConfigNotFoundHint = "start the backend once so it can create the defaults"

	// MsgNoSandboxes is printed for a config whose sandbox list is empty.
	MsgNoSandboxes = "(no sandboxes configured)"

	// MsgConfigMissingCreating announces the first-run creation path.
	MsgConfigMissingCreating = "no existing config found, creating a new one..."

	// MsgConfigCreated confirms that a new submission config was inserted.
	MsgConfigCreated = "created a new SubmissionConfig"

	// MsgTokenUpdated confirms that the token of the primary sandbox was
	// replaced.
	MsgTokenUpdated = "sandbox token updated"

	// MsgDatabaseHint is the one-line remediation printed under every
	// storage failure.
	MsgDatabaseHint = "confirm the database is running"

	// MsgInvalidInvocation prefixes command-line errors.
	MsgInvalidInvocation = "invalid invocation"

	// MsgHelpHint follows the default show when no action flag was given.
	MsgHelpHint = "use --help to see more options"

	// MsgClipboardFailed is printed when the token could not be copied.
	// The action itself still succeeded.
	MsgClipboardFailed = "could not copy the token to the clipboard"

	// MsgTokenCopied confirms the clipboard copy.
	MsgTokenCopied = "token copied to the clipboard"

	// MsgProbeFailed is printed when the sandbox did not answer at all.
	MsgProbeFailed = "sandbox did not answer"

	// MsgNothingToProbe is printed by --check when there is no sandbox.
	MsgNothingToProbe = "no sandbox to check"
)
