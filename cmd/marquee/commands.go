package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/rfhold/marquee/internal/ui"
)

// openURL opens url in the default browser
func (m *Model) openURL(url string) tea.Cmd {
	open := m.deps.OpenURL
	if open == nil {
		open = browser.OpenURL
	}
	return func() tea.Msg {
		return urlOpenedMsg{url: url, err: open(url)}
	}
}

// copyText copies text to the clipboard
func (m *Model) copyText(text string) tea.Cmd {
	return ui.CopyToClipboardCmd(m.deps.Clipboard, text)
}
