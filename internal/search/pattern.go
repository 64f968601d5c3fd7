package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"
)

// MatchTimeout bounds a single word match so a pathological pattern cannot
// freeze the widget.
const MatchTimeout = 250 * time.Millisecond

// ErrInvalidPattern wraps syntax errors of the search text
var ErrInvalidPattern = errors.New("invalid search pattern")

// Pattern is a compiled, case-insensitive search expression. The dialect is
// regexp2's ECMAScript mode, which is close to the web page's RegExp but not
// identical: inline option groups such as (?i) are rejected here as they are
// in JavaScript, while \p{...} still means a Unicode class instead of the
// literal text JavaScript reads without the u flag.
//
// Query and words are compared in Unicode NFC, so precomposed and decomposed
// umlauts match each other. A CR left by CRLF payloads is ignored.
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// Compile compiles the raw search text
func Compile(query string) (*Pattern, error) {
	if err := checkGroups(query); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	re, err := regexp2.Compile(norm.NFC.String(query), regexp2.ECMAScript|regexp2.IgnoreCase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	re.MatchTimeout = MatchTimeout
	return &Pattern{source: query, re: re}, nil
}

// MatchWord reports whether the pattern occurs anywhere in word
func (p *Pattern) MatchWord(word string) (bool, error) {
	ok, err := p.re.MatchString(norm.NFC.String(strings.TrimSuffix(word, "\r")))
	if err != nil {
		return false, fmt.Errorf("matching %q against %q: %w", word, p.source, err)
	}
	return ok, nil
}

// checkGroups rejects "(?" constructs that JavaScript does not know:
// everything but (?:, (?=, (?!, (?<=, (?<! and (?<name>.
func checkGroups(query string) error {
	inClass := false
	for i := 0; i < len(query); i++ {
		switch c := query[i]; {
		case c == '\\':
			i++
		case inClass:
			inClass = c != ']'
		case c == '[':
			inClass = true
		case c == '(' && strings.HasPrefix(query[i+1:], "?"):
			rest := query[i+2:]
			if rest == "" || !strings.ContainsRune(":=!<", rune(rest[0])) {
				return fmt.Errorf("unsupported group at offset %d", i)
			}
		}
	}
	return nil
}
