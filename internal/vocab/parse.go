// Package vocab reads and writes the vocabulary payload: a text blob whose
// lines alternate word, definition, word, definition.
package vocab

import (
	"errors"
	"fmt"
	"strings"

	"vocabsearch/internal/domain"
)

// ErrEmbeddedNewline is returned by Encode when a field would break the
// line pairing of the payload format.
var ErrEmbeddedNewline = errors.New("vocab: field contains a line break")

// Parse splits a payload into entries formed from consecutive line pairs.
// Fields keep the exact bytes of their lines. A trailing unpaired line is
// dropped, and a single terminating newline does not count as an extra line.
func Parse(payload string) []domain.Entry {
	payload = strings.TrimSuffix(payload, "\n")
	if payload == "" {
		return []domain.Entry{}
	}

	lines := strings.Split(payload, "\n")
	entries := make([]domain.Entry, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		entries = append(entries, domain.Entry{
			Word:       lines[i],
			Definition: lines[i+1],
		})
	}
	return entries
}

// Encode is the inverse of Parse.
func Encode(entries []domain.Entry) (string, error) {
	var b strings.Builder
	for i, e := range entries {
		if strings.ContainsAny(e.Word, "\r\n") || strings.ContainsAny(e.Definition, "\r\n") {
			return "", fmt.Errorf("entry %d (%q): %w", i, e.Word, ErrEmbeddedNewline)
		}
		b.WriteString(e.Word)
		b.WriteByte('\n')
		b.WriteString(e.Definition)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
