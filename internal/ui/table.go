package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mattn/go-runewidth"

	"vocabsearch/internal/search"
	"vocabsearch/internal/ui/views"
)

// Table is the scrollable result area. It receives rows from the widget
// controller and shows them one line each in a viewport.
type Table struct {
	rows     []string
	viewport viewport.Model
	renderer *views.Renderer
}

// NewTable creates an empty table
func NewTable(renderer *views.Renderer) *Table {
	vp := viewport.New(0, 0)
	// only keys that do not collide with typing in the search input
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
	vp.MouseWheelEnabled = true
	return &Table{viewport: vp, renderer: renderer}
}

// ReplaceRows discards the shown rows and scrolls back to the top
func (t *Table) ReplaceRows(rows []string) {
	t.rows = append([]string(nil), rows...)
	t.refresh()
	t.viewport.GotoTop()
}

// AppendRows adds rows below the shown ones, keeping the scroll position
func (t *Table) AppendRows(rows []string) {
	t.rows = append(t.rows, rows...)
	t.refresh()
}

// SetSize resizes the visible area
func (t *Table) SetSize(width, height int) {
	t.viewport.Width = max(width, 1)
	t.viewport.Height = max(height, 1)
	t.refresh()
}

// Len returns the number of rows in the table
func (t *Table) Len() int {
	return len(t.rows)
}

// VisibleRange returns the first and last row indexes in view
func (t *Table) VisibleRange() (int, int) {
	first := t.viewport.YOffset
	last := min(first+t.viewport.Height, len(t.rows)) - 1
	return first, last
}

// View renders the visible rows
func (t *Table) View() string {
	return t.viewport.View()
}

func (t *Table) refresh() {
	width := t.viewport.Width
	lines := make([]string, len(t.rows))
	for i, row := range t.rows {
		if width > 0 {
			row = runewidth.Truncate(row, width, "…")
		}
		lines[i] = t.renderer.RenderRow(row, search.ColumnSeparator)
	}
	t.viewport.SetContent(strings.Join(lines, "\n"))
}
