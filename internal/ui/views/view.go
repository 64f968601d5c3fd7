package views

import (
	"strings"

	"vocabsearch/internal/domain"
)

// Title is shown on the first line of the screen
const Title = "sanasto"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Status       domain.Status
	Input        string
	InputEnabled bool
	Table        string
	Help         string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render lays out title, status line, search input, table and help
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(Title))
	b.WriteString("\n")
	b.WriteString(r.renderStatus(state.Status, state.Width))
	b.WriteString("\n")
	if state.InputEnabled {
		b.WriteString(state.Input)
	} else {
		b.WriteString(r.styles.Disabled.Render(state.Input))
	}
	b.WriteString("\n")
	b.WriteString(state.Table)
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render(state.Help))
	return b.String()
}

func (r *Renderer) renderStatus(status domain.Status, width int) string {
	style := r.styles.Status
	if status.IsError() {
		style = r.styles.StatusError
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(status.Text)
}

// ChromeHeight is the number of lines around the table: title, status,
// input and help
const ChromeHeight = 4

// RenderRow styles a terminal row built by search.TerminalRow. Rows are
// already cut to the screen width, so styling only adds escape codes.
func (r *Renderer) RenderRow(row, separator string) string {
	word, def, ok := strings.Cut(row, separator)
	if !ok {
		return row
	}
	return r.styles.Word.Render(word) + r.styles.Separator.Render(separator) + def
}
