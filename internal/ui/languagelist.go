package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/marquee/internal/catalog"
)

type languagesFetchedMsg struct {
	gen       uint64
	seq       int
	languages []catalog.Language
	err       error
}

type languageStatusChangedMsg struct {
	gen    uint64
	id     string
	status catalog.Status
	err    error
}

type languageSavedMsg struct {
	gen      uint64
	op       catalog.Operation
	language catalog.Language
	err      error
}

// Form field order of the language dialog
const (
	langFieldCode = iota
	langFieldName
	langFieldNativeName
	langFieldRegion
)

// LanguageList manages the locally stored languages. Saves refetch the whole
// list while status toggles patch the snapshot.
type LanguageList struct {
	ListBase

	ctx    context.Context
	svc    catalog.LanguageService
	logger *slog.Logger
	gen    uint64

	languages []catalog.Language
	table     *Table
	form      *FormModal
	editing   *catalog.Language
	message   string

	fetchSeq int
}

// NewLanguageList creates the language management panel
func NewLanguageList(ctx context.Context, svc catalog.LanguageService, logger *slog.Logger) *LanguageList {
	form := NewFormModal(
		FormField{Label: "Código"},
		FormField{Label: "Idioma"},
		FormField{Label: "Nombre Nativo"},
		FormField{Label: "Región"},
	)
	form.SetButtons("Cancelar", "Guardar")

	table := NewTable(
		Column{Title: "Código", Width: 8},
		Column{Title: "Idioma"},
		Column{Title: "Nombre Nativo"},
		Column{Title: "Región"},
		Column{Title: "Estado", Width: 8},
	)
	table.SetEmptyText("Cargando...")

	p := &LanguageList{
		ctx:    ctx,
		svc:    svc,
		logger: orDiscard(logger),
		gen:    nextGeneration(),
		table:  table,
		form:   form,
	}
	p.InitSpinner()
	return p
}

// Init starts the mount fetch
func (p *LanguageList) Init() tea.Cmd {
	return tea.Batch(p.StartLoading("Cargando..."), p.fetch())
}

// Refresh fetches the list again
func (p *LanguageList) Refresh() tea.Cmd {
	return p.fetch()
}

// Languages returns the current snapshot
func (p *LanguageList) Languages() []catalog.Language {
	return p.languages
}

// Message returns the message line
func (p *LanguageList) Message() string {
	return p.message
}

// Editing returns the language being edited, nil when creating
func (p *LanguageList) Editing() *catalog.Language {
	return p.editing
}

// FormOpen reports whether the create/edit dialog is open
func (p *LanguageList) FormOpen() bool {
	return p.form.Visible()
}

// Selected returns the language under the cursor
func (p *LanguageList) Selected() (catalog.Language, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.languages) {
		return catalog.Language{}, false
	}
	return p.languages[i], true
}

func (p *LanguageList) fetch() tea.Cmd {
	p.fetchSeq++
	seq := p.fetchSeq
	ctx, svc, gen := p.ctx, p.svc, p.gen
	return func() tea.Msg {
		languages, err := svc.List(ctx)
		return languagesFetchedMsg{gen: gen, seq: seq, languages: languages, err: err}
	}
}

func (p *LanguageList) changeStatus(id string, status catalog.Status) tea.Cmd {
	ctx, svc, gen := p.ctx, p.svc, p.gen
	return func() tea.Msg {
		err := svc.ChangeStatus(ctx, id, status)
		return languageStatusChangedMsg{gen: gen, id: id, status: status, err: err}
	}
}

func (p *LanguageList) save(in catalog.LanguageInput) tea.Cmd {
	ctx, svc, gen := p.ctx, p.svc, p.gen
	if p.editing != nil {
		id := p.editing.ID
		return func() tea.Msg {
			language, err := svc.Update(ctx, id, in)
			return languageSavedMsg{gen: gen, op: catalog.OpLanguageUpdate, language: language, err: err}
		}
	}
	return func() tea.Msg {
		language, err := svc.CreateFromExternal(ctx, in)
		return languageSavedMsg{gen: gen, op: catalog.OpLanguageCreate, language: language, err: err}
	}
}

func (p *LanguageList) setMessage(msg string) {
	p.message = msg
	p.form.SetMessage(msg)
}

func (p *LanguageList) syncRows() {
	rows := make([][]string, len(p.languages))
	for i, l := range p.languages {
		rows[i] = []string{
			singleLine(l.Code),
			singleLine(l.Name),
			singleLine(l.NativeName),
			singleLine(l.Region),
			RenderStatus(l.Status),
		}
	}
	p.table.SetRows(rows)
}

// Update handles request results and forwards everything else to the open form
func (p *LanguageList) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case languagesFetchedMsg:
		if msg.gen != p.gen || msg.seq != p.fetchSeq {
			return nil
		}
		p.StopLoading()
		p.table.SetEmptyText("No hay idiomas disponibles")
		if msg.err != nil {
			p.logger.Error("request failed", "operation", string(catalog.OpLanguageList), "error", msg.err)
			// The load failure message is fixed, the server's is not shown
			p.setMessage(catalog.PolicyFor(catalog.OpLanguageList).Fallback)
			return nil
		}
		p.languages = msg.languages
		p.syncRows()
		return nil

	case languageStatusChangedMsg:
		if msg.gen != p.gen {
			return nil
		}
		if msg.err != nil {
			return reportFailure(p.logger, catalog.OpLanguageStatus, msg.err, p.setMessage)
		}
		if catalog.PolicyFor(catalog.OpLanguageStatus).Sync == catalog.SyncRefetch {
			return p.fetch()
		}
		for i := range p.languages {
			if p.languages[i].ID == msg.id {
				p.languages[i].Status = msg.status
			}
		}
		p.syncRows()
		return nil

	case languageSavedMsg:
		if msg.gen != p.gen {
			return nil
		}
		return p.handleSaved(msg)

	case spinner.TickMsg:
		return p.UpdateSpinner(msg)
	}

	if p.form.Visible() {
		_, cmd := p.form.Update(msg)
		return cmd
	}
	return nil
}

func (p *LanguageList) handleSaved(msg languageSavedMsg) tea.Cmd {
	if msg.err != nil {
		return reportFailure(p.logger, msg.op, msg.err, p.setMessage)
	}

	verb := "creado"
	if msg.op == catalog.OpLanguageUpdate {
		verb = "actualizado"
	}
	p.logger.Info("language saved", "operation", string(msg.op), "id", msg.language.ID, "code", msg.language.Code)
	p.setMessage(fmt.Sprintf("Idioma \"%s\" %s correctamente", msg.language.Name, verb))

	p.form.Hide()
	p.editing = nil
	p.form.Clear()

	if catalog.PolicyFor(msg.op).Sync == catalog.SyncRefetch {
		return p.fetch()
	}
	return nil
}

// CapturesInput reports whether the form is open
func (p *LanguageList) CapturesInput() bool {
	return p.form.Visible()
}

// OpenCreate opens an empty form
func (p *LanguageList) OpenCreate() tea.Cmd {
	p.editing = nil
	p.form.Clear()
	p.setMessage("")
	p.form.SetTitle("Nuevo Idioma")
	return p.form.Show()
}

// OpenEdit opens the form filled with the selected language
func (p *LanguageList) OpenEdit() tea.Cmd {
	language, ok := p.Selected()
	if !ok {
		return nil
	}
	p.editing = &language
	p.form.SetValues(language.Code, language.Name, language.NativeName, language.Region)
	p.setMessage("")
	p.form.SetTitle("Editar Idioma")
	return p.form.Show()
}

// HandleKey handles a key press
func (p *LanguageList) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.form.Visible() {
		return p.handleForm(msg), true
	}

	switch {
	case key.Matches(msg, Keys.New):
		return p.OpenCreate(), true

	case key.Matches(msg, Keys.Edit):
		return p.OpenEdit(), true

	case key.Matches(msg, Keys.ToggleStatus):
		language, ok := p.Selected()
		if !ok {
			return nil, true
		}
		return p.changeStatus(language.ID, language.Status.Toggle()), true
	}

	return nil, p.table.HandleKey(msg)
}

func (p *LanguageList) handleForm(msg tea.KeyMsg) tea.Cmd {
	action, cmd := p.form.Update(msg)
	switch action {
	case FormCancel:
		p.form.Hide()
	case FormSubmit:
		in := catalog.LanguageInput{
			Code:       p.form.Value(langFieldCode),
			Name:       p.form.Value(langFieldName),
			NativeName: p.form.Value(langFieldNativeName),
			Region:     p.form.Value(langFieldRegion),
		}
		if in.Code == "" || in.Name == "" {
			p.setMessage("El código y el nombre son obligatorios")
			return nil
		}
		return p.save(in)
	}
	return cmd
}

// SetSize sets the panel dimensions
func (p *LanguageList) SetSize(width, height int) {
	p.ListBase.SetSize(width, height)
	p.table.SetSize(width, max(height-4, 3))
	p.form.SetSize(width, height)
}

// Overlay returns the open form
func (p *LanguageList) Overlay() (string, bool) {
	if p.form.Visible() {
		return p.form.Dialog(), true
	}
	return "", false
}

// View renders the toolbar, the table and the message line
func (p *LanguageList) View() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(NavKeyStyle.Render("n"))
	b.WriteString(" ")
	b.WriteString(NavLabelStyle.Render("+ Nuevo Idioma"))
	if p.IsLoading() {
		b.WriteString("   ")
		b.WriteString(p.Spinner().View())
	}
	b.WriteString("\n\n")
	b.WriteString(p.table.View())
	if msg := p.MessageLine(p.message); msg != "" {
		b.WriteString("\n\n  ")
		b.WriteString(msg)
	}
	return b.String()
}
