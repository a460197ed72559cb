package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/marquee/internal/ui"
)

// showAlert shows the blocking alert and pushes focus to it
func (m *Model) showAlert(title, message string) {
	m.ui.Alert.Show(title, message)
	if !m.ui.Focus.Has(ui.FocusAlert) {
		m.ui.Focus.Push(ui.FocusAlert)
	}
}

// hideAlert pops focus from the dismissed alert
func (m *Model) hideAlert() {
	m.ui.Focus.Remove(ui.FocusAlert)
}

// showHelp shows the help dialog and pushes focus to it
func (m *Model) showHelp() {
	m.ui.Focus.Push(ui.FocusHelp)
}

// hideHelp hides the help dialog and pops focus
func (m *Model) hideHelp() {
	m.ui.Focus.Remove(ui.FocusHelp)
}

// joinWithSeparator joins non-empty parts with sep
func joinWithSeparator(parts []string, sep string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// placeOverlay places an overlay string at the specified x,y position on the background
func placeOverlay(x, y int, overlay, background string) string {
	bgLines := strings.Split(background, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}

		// Keep the background up to x, pad when it is shorter
		left := truncateToWidth(bgLines[bgIdx], x)
		if w := lipgloss.Width(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		bgLines[bgIdx] = left + overlayLine
	}

	return strings.Join(bgLines, "\n")
}

// truncateToWidth truncates a string (which may contain ANSI codes) to the given visual width
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
