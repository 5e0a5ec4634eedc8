// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-emp-docs/models"
)

func renderBuildInfoLine(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("go-emp-docs ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString(" (")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString(", ")
	b.WriteString(fitText(valueOrNA(info.BuildCommit()), 12))
	b.WriteString(")")

	return helpStyle.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
