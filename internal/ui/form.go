package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormAction is the outcome of a key press in a form
type FormAction int

const (
	FormNone FormAction = iota
	FormSubmit
	FormCancel
)

// FormField describes one text input of a form
type FormField struct {
	Label       string
	Placeholder string
}

// FormModal is a dialog of labeled text inputs with cancel and save buttons.
// The field values survive Hide so a closed form reopens with its draft.
type FormModal struct {
	ModalBase

	title       string
	cancelLabel string
	submitLabel string
	message     string

	labels []string
	inputs []textinput.Model
	focus  int
}

// NewFormModal creates a form with one input per field
func NewFormModal(fields ...FormField) *FormModal {
	f := &FormModal{
		cancelLabel: "Cerrar",
		submitLabel: "Guardar",
	}
	for _, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.Placeholder
		ti.Width = DefaultInputWidth
		ti.Prompt = ""
		f.labels = append(f.labels, field.Label)
		f.inputs = append(f.inputs, ti)
	}
	return f
}

// SetTitle sets the dialog title
func (f *FormModal) SetTitle(title string) {
	f.title = title
}

// Title returns the dialog title
func (f *FormModal) Title() string {
	return f.title
}

// SetButtons sets the cancel and submit labels
func (f *FormModal) SetButtons(cancel, submit string) {
	f.cancelLabel = cancel
	f.submitLabel = submit
}

// Show opens the form with the first field focused
func (f *FormModal) Show() tea.Cmd {
	f.ModalBase.Show()
	return f.focusField(0)
}

// Hide closes the form and blurs its inputs
func (f *FormModal) Hide() {
	f.ModalBase.Hide()
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Value returns the text of field i
func (f *FormModal) Value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return f.inputs[i].Value()
}

// SetValues fills the fields in order. Missing values clear the field.
func (f *FormModal) SetValues(values ...string) {
	for i := range f.inputs {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		f.inputs[i].SetValue(v)
	}
}

// Clear empties every field
func (f *FormModal) Clear() {
	f.SetValues()
}

// SetMessage sets the message line shown inside the form
func (f *FormModal) SetMessage(msg string) {
	f.message = msg
}

// Focused returns the index of the focused field
func (f *FormModal) Focused() int {
	return f.focus
}

func (f *FormModal) focusField(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[f.focus].Focus()
}

// Update handles a message while the form is visible
func (f *FormModal) Update(msg tea.Msg) (FormAction, tea.Cmd) {
	if !f.Visible() {
		return FormNone, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, Keys.Escape):
			return FormCancel, nil
		case key.Matches(keyMsg, Keys.Submit):
			return FormSubmit, nil
		case key.Matches(keyMsg, Keys.NextField):
			return FormNone, f.focusField(f.focus + 1)
		case key.Matches(keyMsg, Keys.PrevField):
			return FormNone, f.focusField(f.focus - 1)
		}
	}

	if len(f.inputs) == 0 {
		return FormNone, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return FormNone, cmd
}

// Dialog renders the bordered form without centering
func (f *FormModal) Dialog() string {
	labelWidth := 0
	for _, l := range f.labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	var rows []string
	for i, input := range f.inputs {
		label := LabelStyle.Width(labelWidth).Render(f.labels[i])
		marker := "  "
		if i == f.focus {
			marker = CursorStyle.Render("▸ ")
		}
		rows = append(rows, marker+label+"  "+input.View())
	}

	parts := []string{DialogTitleStyle.Render(f.title), strings.Join(rows, "\n")}
	if msg := RenderMessage(f.message); msg != "" {
		parts = append(parts, "", msg)
	}
	parts = append(parts, "", DimStyle.Render("esc "+f.cancelLabel+"  enter "+f.submitLabel))

	return DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// View renders the form centered on screen
func (f *FormModal) View() string {
	return f.CenterDialog(f.Dialog())
}
