// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

package cli

import "github.com/atotto/clipboard"

// Clipboard receives the token when --copy is given.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// NewSystemClipboard returns the clipboard of the desktop session. It fails
// on headless hosts without xclip, xsel or wl-clipboard.
func NewSystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
