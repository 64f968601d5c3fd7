package loader

import (
	"context"
	"fmt"

	"vocabsearch/internal/domain"
	"vocabsearch/internal/vocab"
)

// Load fetches the payload from src and parses it. Every failure, including
// a panic while parsing, comes back as an error.
func Load(ctx context.Context, src Source) (entries []domain.Entry, err error) {
	payload, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			entries, err = nil, fmt.Errorf("failed to parse vocabulary: %v", r)
		}
	}()
	return vocab.Parse(payload), nil
}
