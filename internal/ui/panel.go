package ui

import (
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/marquee/internal/catalog"
)

// Panel is one of the mutually exclusive views hosted by the shell. A panel
// owns its snapshot and talks to its resource client through tea.Cmds.
type Panel interface {
	// Init starts the mount fetch
	Init() tea.Cmd
	// Update handles results addressed to the panel
	Update(msg tea.Msg) tea.Cmd
	// HandleKey handles a key press. handled is false when the shell may
	// act on the key instead.
	HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool)
	View() string
	SetSize(width, height int)
	// CapturesInput reports whether a text input or form owns the keyboard
	CapturesInput() bool
	// Overlay returns the dialog drawn over the panel, if one is open
	Overlay() (string, bool)
	// Refresh fetches the panel data again
	Refresh() tea.Cmd
}

// AlertMsg asks the shell to raise the blocking alert dialog
type AlertMsg struct {
	Title   string
	Message string
}

// CopyRequestMsg asks the shell to copy text to the clipboard
type CopyRequestMsg struct {
	Text string
}

const alertTitle = "Aviso"

func raiseAlert(message string) tea.Cmd {
	return func() tea.Msg {
		return AlertMsg{Title: alertTitle, Message: message}
	}
}

func requestCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return CopyRequestMsg{Text: text}
	}
}

// generation identifies a mounted panel instance. Results tagged with the
// generation of an unmounted panel are dropped by the panel that replaced it.
var generation atomic.Uint64

func nextGeneration() uint64 {
	return generation.Add(1)
}

// reportFailure logs a failed operation and surfaces it the way the
// operation's policy asks. Inline failures are passed to inline.
func reportFailure(logger *slog.Logger, op catalog.Operation, err error, inline func(string)) tea.Cmd {
	policy := catalog.PolicyFor(op)
	logger.Error("request failed", "operation", string(op), "error", err)

	switch policy.Surface {
	case catalog.SurfaceAlert:
		return raiseAlert(policy.Fallback)
	case catalog.SurfaceInline:
		inline(catalog.ServerMessage(err, policy.Fallback))
	}
	return nil
}
