package ui

import "vocabsearch/internal/domain"

// vocabLoadedMsg carries the parsed vocabulary from the startup load
type vocabLoadedMsg struct {
	entries []domain.Entry
}

// vocabFailedMsg reports a failed startup load
type vocabFailedMsg struct {
	err error
}

// pagerClosedMsg is sent when the full-screen pager returns
type pagerClosedMsg struct {
	err error
}
