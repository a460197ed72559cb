package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// RenderMessage renders a panel message line. Empty messages render nothing.
func RenderMessage(msg string) string {
	if msg == "" {
		return ""
	}
	if strings.HasSuffix(msg, "correctamente") {
		return SuccessStyle.Render(msg)
	}
	return ErrorStyle.Render(msg)
}

// fitWidth truncates s (which may contain ANSI codes) to width cells and
// pads it with spaces to exactly width cells
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// singleLine collapses newlines so a value renders on one table row
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
