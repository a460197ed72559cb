package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/marquee/internal/ui"
)

// handleMessage handles shell requests raised by the panels and forwards
// everything else to them
func (m Model) handleMessage(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.AlertMsg:
		m.showAlert(msg.Title, msg.Message)
		return m, nil

	case ui.CopyRequestMsg:
		return m, m.copyText(msg.Text)

	case ui.CopiedToClipboardMsg:
		if msg.Err != nil {
			m.deps.Logger.Warn("copy to clipboard failed", "error", msg.Err)
			return m, m.ui.Toast.Show("No se pudo copiar al portapapeles")
		}
		return m, m.ui.Toast.Show("Copiado: " + msg.Text)

	case ui.ToastHideMsg:
		m.ui.Toast.HandleHide(msg)
		return m, nil

	case urlOpenedMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("open in browser failed", "url", msg.url, "error", msg.err)
			return m, m.ui.Toast.Show("No se pudo abrir " + msg.url)
		}
		m.deps.Logger.Debug("opened in browser", "url", msg.url)
		return m, nil
	}

	// The movie list stays mounted, so its results land even while another
	// panel is shown. Panels ignore messages addressed to other instances.
	cmds := []tea.Cmd{m.ui.Movies.Update(msg)}
	if m.ui.Active != ui.Panel(m.ui.Movies) {
		cmds = append(cmds, m.ui.Active.Update(msg))
	}
	return m, tea.Batch(cmds...)
}
