// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-chat-cipher/models"
)

func renderBuildInfoWindow(client models.AppBuildInfo, server *models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-chat-cipher\n\n")
	writeBuildInfo(&b, "Client", client)
	b.WriteString("\n\n")
	if server != nil {
		writeBuildInfo(&b, "Server", *server)
	} else {
		b.WriteString("Server: loading...")
	}

	return renderPage(titleStyle.Render("BUILD INFO"), b.String(), "esc: back")
}

func writeBuildInfo(b *strings.Builder, title string, info models.AppBuildInfo) {
	b.WriteString(title)
	b.WriteString("\n  Version: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n  Date: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n  Commit: ")
	b.WriteString(valueOrNA(info.Commit))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
