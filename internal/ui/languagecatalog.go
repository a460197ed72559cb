package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/marquee/internal/catalog"
)

type catalogFetchedMsg struct {
	gen       uint64
	languages []catalog.ExternalLanguage
	err       error
}

// LanguageCatalog is a read-only view of the external language catalog with
// copy actions for code and name
type LanguageCatalog struct {
	ListBase

	ctx    context.Context
	svc    catalog.LanguageService
	logger *slog.Logger
	gen    uint64

	languages []catalog.ExternalLanguage
	failed    bool
	table     *Table
}

// NewLanguageCatalog creates the passthrough panel
func NewLanguageCatalog(ctx context.Context, svc catalog.LanguageService, logger *slog.Logger) *LanguageCatalog {
	table := NewTable(
		Column{Title: "Código", Width: 10},
		Column{Title: "Nombre"},
	)
	table.SetEmptyText("Cargando...")

	p := &LanguageCatalog{
		ctx:    ctx,
		svc:    svc,
		logger: orDiscard(logger),
		gen:    nextGeneration(),
		table:  table,
	}
	p.InitSpinner()
	return p
}

// Init fetches the catalog once
func (p *LanguageCatalog) Init() tea.Cmd {
	return tea.Batch(p.StartLoading("Cargando..."), p.fetch())
}

// Refresh fetches the catalog again
func (p *LanguageCatalog) Refresh() tea.Cmd {
	tick := p.StartLoading("Cargando...")
	p.syncRows()
	return tea.Batch(tick, p.fetch())
}

// Languages returns the current snapshot
func (p *LanguageCatalog) Languages() []catalog.ExternalLanguage {
	return p.languages
}

// Failed reports whether the last fetch failed
func (p *LanguageCatalog) Failed() bool {
	return p.failed
}

func (p *LanguageCatalog) fetch() tea.Cmd {
	ctx, svc, gen := p.ctx, p.svc, p.gen
	return func() tea.Msg {
		languages, err := svc.ListExternal(ctx)
		return catalogFetchedMsg{gen: gen, languages: languages, err: err}
	}
}

// Update handles the fetch result and spinner ticks
func (p *LanguageCatalog) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case catalogFetchedMsg:
		if msg.gen != p.gen {
			return nil
		}
		p.StopLoading()
		if msg.err != nil {
			p.failed = true
			p.languages = nil
			p.syncRows()
			return reportFailure(p.logger, catalog.OpLanguageListCatalog, msg.err, func(string) {})
		}
		p.failed = false
		p.languages = msg.languages
		p.syncRows()
		return nil

	case spinner.TickMsg:
		return p.UpdateSpinner(msg)
	}
	return nil
}

func (p *LanguageCatalog) syncRows() {
	switch {
	case p.IsLoading():
		p.table.SetEmptyText("Cargando...")
	case p.failed:
		p.table.SetEmptyText("No se pudo obtener la lista de lenguajes")
	default:
		p.table.SetEmptyText("No hay lenguajes")
	}

	rows := make([][]string, len(p.languages))
	for i, l := range p.languages {
		rows[i] = []string{singleLine(l.CodeText()), singleLine(l.NameText())}
	}
	p.table.SetRows(rows)
}

// CapturesInput is always false, the catalog has no inputs
func (p *LanguageCatalog) CapturesInput() bool {
	return false
}

// HandleKey handles a key press
func (p *LanguageCatalog) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, Keys.Copy), key.Matches(msg, Keys.CopyAlt):
		i := p.table.Cursor()
		if i < 0 || i >= len(p.languages) {
			return nil, true
		}
		if key.Matches(msg, Keys.Copy) {
			return requestCopy(p.languages[i].CodeText()), true
		}
		return requestCopy(p.languages[i].NameText()), true
	}
	return nil, p.table.HandleKey(msg)
}

// SetSize sets the panel dimensions
func (p *LanguageCatalog) SetSize(width, height int) {
	p.ListBase.SetSize(width, height)
	p.table.SetSize(width, max(height-3, 3))
}

// Overlay is always empty
func (p *LanguageCatalog) Overlay() (string, bool) {
	return "", false
}

// View renders the title and the catalog table
func (p *LanguageCatalog) View() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(TitleStyle.Render("Lenguajes Disponibles en Netflix"))
	if p.IsLoading() {
		b.WriteString("   ")
		b.WriteString(p.Spinner().View())
	}
	b.WriteString("\n  ")
	b.WriteString(DimStyle.Render("c Copiar Código  C Copiar Nombre"))
	b.WriteString("\n")
	b.WriteString(p.table.View())
	return b.String()
}
