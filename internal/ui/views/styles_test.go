package views

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"vocabsearch/internal/domain"
)

func TestRenderLayout(t *testing.T) {
	r := NewRenderer(NewStyles())
	out := r.Render(ViewState{
		Width:        80,
		Status:       domain.Status{Text: "ladattu 2 alkiota"},
		Input:        "> ca",
		InputEnabled: true,
		Table:        "cat │ feline",
		Help:         "esc quit",
	})

	assert.Contains(t, out, Title)
	assert.Contains(t, out, "ladattu 2 alkiota")
	assert.Contains(t, out, "> ca")
	assert.Contains(t, out, "cat │ feline")
	assert.Contains(t, out, "esc quit")
	assert.Equal(t, ChromeHeight+1, lipgloss.Height(out))
}

func TestRenderRowKeepsText(t *testing.T) {
	r := NewRenderer(NewStyles())

	row := r.RenderRow("cat    │ feline", " │ ")
	assert.Contains(t, row, "cat")
	assert.Contains(t, row, "feline")
	assert.Equal(t, "plain", r.RenderRow("plain", " │ "))
}
