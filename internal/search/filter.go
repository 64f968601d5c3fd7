// Package search is the filter engine: it compiles the search text and
// reduces the vocabulary to the rows that match it.
package search

import (
	"vocabsearch/internal/domain"
)

// Filter keeps every entry whose word matches query, in vocabulary order,
// rendered through tmpl. An empty query clears the search and scans nothing.
// Definitions are never consulted.
func Filter(entries []domain.Entry, query string, tmpl RowTemplate) (MatchList, error) {
	if query == "" {
		return MatchList{}, nil
	}

	pattern, err := Compile(query)
	if err != nil {
		return MatchList{query: query}, err
	}

	var rows []string
	for _, e := range entries {
		ok, err := pattern.MatchWord(e.Word)
		if err != nil {
			return MatchList{query: query}, err
		}
		if ok {
			rows = append(rows, tmpl(e))
		}
	}
	return MatchList{query: query, rows: rows}, nil
}
