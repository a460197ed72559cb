package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Column is a table column. A zero Width shares the space left by fixed columns.
type Column struct {
	Title string
	Width int
}

const (
	cursorGutter = 2
	columnGap    = 2
)

// Table renders rows of cells with a scrolling cursor
type Table struct {
	columns []Column
	rows    [][]string
	empty   string

	cursor int
	offset int
	width  int
	height int
}

// NewTable creates a table with the given columns
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// SetRows replaces the rows and keeps the cursor in range
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	t.clamp()
}

// SetEmptyText sets the text shown when there are no rows
func (t *Table) SetEmptyText(text string) {
	t.empty = text
}

// EmptyText returns the text shown when there are no rows
func (t *Table) EmptyText() string {
	return t.empty
}

// SetSize sets the table dimensions, including the header lines
func (t *Table) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.clamp()
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Cursor returns the selected row index, -1 when the table is empty
func (t *Table) Cursor() int {
	if len(t.rows) == 0 {
		return -1
	}
	return t.cursor
}

// SetCursor moves the cursor to row i
func (t *Table) SetCursor(i int) {
	t.cursor = i
	t.clamp()
}

// visibleRows is the number of body rows that fit under the header
func (t *Table) visibleRows() int {
	return max(t.height-2, 1)
}

func (t *Table) clamp() {
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	visible := t.visibleRows()
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+visible {
		t.offset = t.cursor - visible + 1
	}
	if maxOffset := max(len(t.rows)-visible, 0); t.offset > maxOffset {
		t.offset = maxOffset
	}
}

// HandleKey moves the cursor. Returns true if the key was consumed.
func (t *Table) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, Keys.Up):
		t.cursor--
	case key.Matches(msg, Keys.Down):
		t.cursor++
	case key.Matches(msg, Keys.PageUp):
		t.cursor -= t.visibleRows()
	case key.Matches(msg, Keys.PageDown):
		t.cursor += t.visibleRows()
	case key.Matches(msg, Keys.Home):
		t.cursor = 0
	case key.Matches(msg, Keys.End):
		t.cursor = len(t.rows) - 1
	default:
		return false
	}
	t.clamp()
	return true
}

// columnWidths resolves flexible columns against the table width
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))
	available := t.width - cursorGutter - columnGap*(len(t.columns)-1)
	flexible := 0
	for i, c := range t.columns {
		if c.Width > 0 {
			widths[i] = c.Width
			available -= c.Width
		} else {
			flexible++
		}
	}
	if flexible > 0 {
		share := max(available/flexible, 8)
		for i, c := range t.columns {
			if c.Width == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

func (t *Table) renderRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fitWidth(cell, w)
	}
	return strings.Join(parts, strings.Repeat(" ", columnGap))
}

// View renders the header, a rule and the visible rows
func (t *Table) View() string {
	widths := t.columnWidths()

	titles := make([]string, len(t.columns))
	for i, c := range t.columns {
		titles[i] = TableHeaderStyle.Render(c.Title)
	}

	total := cursorGutter
	for _, w := range widths {
		total += w
	}
	total += columnGap * (len(widths) - 1)

	lines := []string{
		strings.Repeat(" ", cursorGutter) + t.renderRow(titles, widths),
		DimStyle.Render(strings.Repeat("─", max(total, 0))),
	}

	if len(t.rows) == 0 {
		lines = append(lines, strings.Repeat(" ", cursorGutter)+DimStyle.Render(t.empty))
		return strings.Join(lines, "\n")
	}

	end := min(t.offset+t.visibleRows(), len(t.rows))
	for i := t.offset; i < end; i++ {
		row := t.renderRow(t.rows[i], widths)
		if i == t.cursor {
			lines = append(lines, CursorStyle.Render("▸ ")+SelectionStyle.Render(row))
		} else {
			lines = append(lines, strings.Repeat(" ", cursorGutter)+row)
		}
	}

	if t.offset > 0 || end < len(t.rows) {
		lines = append(lines, DimStyle.Render(strings.Repeat(" ", cursorGutter)+
			scrollInfo(t.offset+1, end, len(t.rows))))
	}

	return strings.Join(lines, "\n")
}

func scrollInfo(from, to, total int) string {
	return fmt.Sprintf("[%d-%d/%d]", from, to, total)
}
