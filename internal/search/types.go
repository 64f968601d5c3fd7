package search

import "vocabsearch/internal/domain"

// RowTemplate turns a matching entry into a render-ready row fragment
type RowTemplate func(domain.Entry) string

// MatchList is the ordered set of row fragments produced by one filter pass.
// It is never mutated after construction; a new pass builds a new list.
type MatchList struct {
	query string
	rows  []string
}

// Query returns the search text the list was built for
func (l MatchList) Query() string {
	return l.query
}

// Len returns the number of matching rows
func (l MatchList) Len() int {
	return len(l.rows)
}

// Slice returns rows [from, to), clamped to the list bounds
func (l MatchList) Slice(from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(l.rows) {
		to = len(l.rows)
	}
	if from >= to {
		return nil
	}
	out := make([]string, to-from)
	copy(out, l.rows[from:to])
	return out
}

// Rows returns a copy of every row
func (l MatchList) Rows() []string {
	return l.Slice(0, len(l.rows))
}

// NewMatchList wraps already rendered rows
func NewMatchList(query string, rows []string) MatchList {
	return MatchList{query: query, rows: append([]string(nil), rows...)}
}
