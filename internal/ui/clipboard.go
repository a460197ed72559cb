package ui

import (
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// Clipboard writes text to the user's clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard and falls back to the OSC 52
// terminal escape when no clipboard utility is available (for example over SSH).
type SystemClipboard struct {
	out *termenv.Output
}

// NewSystemClipboard creates a clipboard writing OSC 52 sequences to stdout
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{out: termenv.NewOutput(os.Stdout)}
}

func (c *SystemClipboard) WriteAll(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	c.out.Copy(text)
	return nil
}

// CopiedToClipboardMsg is sent after text is copied to the clipboard
type CopiedToClipboardMsg struct {
	Text string
	Err  error
}

// CopyToClipboardCmd returns a command to copy text to the clipboard
func CopyToClipboardCmd(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedToClipboardMsg{Text: text, Err: cb.WriteAll(text)}
	}
}

// FakeClipboard records copied text for tests
type FakeClipboard struct {
	Copied []string
	Err    error
}

func (f *FakeClipboard) WriteAll(text string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Copied = append(f.Copied, text)
	return nil
}
