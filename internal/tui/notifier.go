// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-emp-docs/models"
	"github.com/charmbracelet/lipgloss"
)

// ConsoleNotifier prints notices to a writer, one per line. It is the
// notifier of headless runs.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer

	success lipgloss.Style
	alert   lipgloss.Style
}

// NewConsoleNotifier creates a [ConsoleNotifier]. Colours are only emitted
// when out is a terminal.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	r := lipgloss.NewRenderer(out)
	return &ConsoleNotifier{
		out:     out,
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		alert:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Notify implements service.Notifier.
func (n *ConsoleNotifier) Notify(notice models.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if notice.Kind == models.NoticeSuccess {
		fmt.Fprintln(n.out, n.success.Render("OK")+" "+notice.Text)
		return
	}
	fmt.Fprintln(n.out, n.alert.Render("ALERT")+" "+notice.Text)
}
