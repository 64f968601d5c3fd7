package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// helpSection groups bindings under a heading on the help page
type helpSection struct {
	title    string
	bindings []key.Binding
}

// renderHelpContent renders the full help page shown with f1
func renderHelpContent(k keyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	exampleStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	sections := []helpSection{
		{"Selaus", []key.Binding{k.Scroll, k.Page}},
		{"Osumat", []key.Binding{k.Pager}},
		{"Muut", []key.Binding{k.Help, k.Quit}},
	}

	width := 0
	for _, s := range sections {
		for _, b := range s.bindings {
			width = max(width, lipgloss.Width(b.Help().Key))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("Sanaston ohje"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Haku"))
	help.WriteString("\n")
	help.WriteString("  Kirjoita säännöllinen lauseke. Haku kohdistuu vain sanaan,\n")
	help.WriteString("  kirjainkoolla ei ole väliä ja osumat päivittyvät kirjoitustauon jälkeen.\n")
	help.WriteString(exampleStyle.Render("  Esimerkkejä: ^kis, a$, ^(koira|kissa)$, t.l"))
	help.WriteString("\n")

	for _, s := range sections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			h := b.Help()
			pad := strings.Repeat(" ", width-lipgloss.Width(h.Key))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(h.Key), pad, descStyle.Render(h.Desc)))
		}
	}
	return help.String()
}
