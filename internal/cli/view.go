// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/sandbox-token/internal/app"
	"github.com/MKhiriev/sandbox-token/internal/config"
	"github.com/MKhiriev/sandbox-token/models"
)

const bannerTitle = "Normal-OJ Sandbox Token Tool"

// view renders operator output. Write errors are ignored: there is nowhere
// left to report them.
type view struct {
	w  io.Writer
	st styles
}

func newView(w io.Writer) *view {
	return &view{w: w, st: newStyles(w)}
}

func (v *view) println(s string) {
	fmt.Fprintln(v.w, s)
}

func (v *view) banner(info models.AppBuildInfo) {
	v.println("")
	v.println(v.st.title.Render(bannerTitle) + " " + v.st.help.Render("("+info.String()+")"))
	v.println(uiDivider)
}

func (v *view) config(result models.ShowResult) {
	if !result.Found {
		v.println(v.st.error.Render("✗ " + app.MsgConfigNotFound))
		v.println("  " + app.MsgConfigNotFoundHint)
		return
	}

	v.println(v.st.section.Render("Current sandbox configuration:"))
	v.println(uiDivider)

	if len(result.Config.SandboxInstances) == 0 {
		v.println("  " + app.MsgNoSandboxes)
	}
	for i, sb := range result.Config.SandboxInstances {
		v.println("")
		v.println(fmt.Sprintf("  Sandbox #%d:", i))
		v.instance(sb)
	}

	v.println("")
	v.println(uiDivider)
}

func (v *view) instance(sb models.SandboxInstance) {
	v.println("  ├── " + v.st.label.Render("Name: ") + " " + orNA(sb.Name))
	v.println("  ├── " + v.st.label.Render("URL:  ") + " " + orNA(sb.URL))
	v.println("  └── " + v.st.label.Render("Token:") + " " + v.st.token.Render(orNA(sb.Token)))
}

func (v *view) generated(token string) {
	v.println("Generated token: " + v.st.token.Render(token))
}

func (v *view) updated(result models.SetTokenResult, settings config.App) {
	if result.Created {
		v.println(v.st.warning.Render("! " + app.MsgConfigMissingCreating))
		v.println(v.st.success.Render("✓ " + app.MsgConfigCreated))
	} else {
		v.println(v.st.success.Render("✓ " + app.MsgTokenUpdated))
	}

	v.println(v.st.section.Render("Updated configuration:"))
	v.instance(result.Instance)

	v.println(v.st.section.Render(v.st.warning.Render("Important:")))
	v.println("  update SANDBOX_TOKEN in " + settings.SecretFile + ":")
	v.println("  SANDBOX_TOKEN=" + result.Instance.Token)
	v.println("")
	v.println("  then restart the sandbox container:")
	v.println("  " + settings.RestartCommand)
}

func (v *view) failure(msg string, err error, hint string) {
	line := msg
	if err != nil {
		line += ": " + err.Error()
	}

	v.println(v.st.error.Render("✗ " + line))
	if hint != "" {
		v.println("  " + hint)
	}
}

func (v *view) copied(err error) {
	if err != nil {
		v.println(v.st.warning.Render("! " + app.MsgClipboardFailed + ": " + err.Error()))
		return
	}
	v.println(v.st.success.Render("✓ " + app.MsgTokenCopied))
}

func (v *view) probe(result models.ProbeResult) {
	status := fmt.Sprintf("%d %s", result.StatusCode, http.StatusText(result.StatusCode))
	line := fmt.Sprintf("sandbox %s answered %s in %s", result.URL, strings.TrimSpace(status), result.Latency.Round(time.Millisecond))

	if result.Reachable {
		v.println(v.st.success.Render("✓ " + line))
		return
	}
	v.println(v.st.warning.Render("! " + line))
}

func (v *view) helpHint() {
	v.println("")
	v.println(v.st.help.Render(app.MsgHelpHint))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
