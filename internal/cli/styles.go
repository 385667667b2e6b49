// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "══════════════════════════════════════════════════"

// styles are bound to one output so that colors are dropped when it is not
// a terminal.
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	token   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	error   lipgloss.Style
	help    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true),
		section: r.NewStyle().Bold(true).MarginTop(1),
		label:   r.NewStyle().Faint(true),
		token:   r.NewStyle().Foreground(lipgloss.Color("14")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		help:    r.NewStyle().Faint(true),
	}
}
