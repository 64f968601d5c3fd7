package search

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"vocabsearch/internal/domain"
)

// HTMLRow is the two-cell table row used by the web page. Word and
// definition are inserted verbatim: the payload is same-origin static
// content, not user input.
func HTMLRow(e domain.Entry) string {
	return "<tr><td>" + e.Word + "<td><p>" + e.Definition
}

// ColumnSeparator sits between the word and definition cells of a terminal row
const ColumnSeparator = " │ "

// TerminalRow returns a single-line row template whose word cell is padded
// or cut to wordWidth display columns.
func TerminalRow(wordWidth int) RowTemplate {
	if wordWidth < 1 {
		wordWidth = 1
	}
	return func(e domain.Entry) string {
		word := runewidth.FillRight(runewidth.Truncate(flatten(e.Word), wordWidth, "…"), wordWidth)
		return word + ColumnSeparator + flatten(e.Definition)
	}
}

var flattener = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// flatten keeps a cell on one terminal line. The CR of a CRLF payload line
// is dropped for display only.
func flatten(s string) string {
	return flattener.Replace(strings.TrimSuffix(s, "\r"))
}
