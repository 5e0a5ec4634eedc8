// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type alertOverlayModel struct {
	message string
}

func (m alertOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}
