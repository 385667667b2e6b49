// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
