// Package widget holds the state of the incremental search widget: the
// vocabulary, the status line, the current match list and its renderer.
// Everything here runs on the UI goroutine and needs no locking.
package widget

import (
	"errors"
	"fmt"

	"vocabsearch/internal/domain"
	"vocabsearch/internal/eventbus"
	"vocabsearch/internal/paging"
	"vocabsearch/internal/search"
)

// Fixed user-facing strings of the status line
const (
	loadedFormat      = "ladattu %d alkiota"
	loadFailedFormat  = "virhe ladattaessa sisältöä: %v"
	progressFormat    = "näytetään %d/%d osumaa"
	badPatternFormat  = "virheellinen hakulauseke: %v"
	loadingStatusText = "ladataan sanastoa…"
)

var (
	// ErrInputDisabled is returned by Search before the vocabulary is loaded
	ErrInputDisabled = errors.New("search input is disabled")
	// ErrAlreadyLoaded is returned when a second vocabulary is handed in
	ErrAlreadyLoaded = errors.New("vocabulary already loaded")
)

// Table is the element the rows are painted into
type Table interface {
	ReplaceRows(rows []string)
	AppendRows(rows []string)
}

// Controller owns all mutable widget state
type Controller struct {
	bus      eventbus.EventBus
	table    Table
	tmpl     search.RowTemplate
	renderer *paging.Renderer

	vocab   []domain.Entry
	loaded  bool
	enabled bool
	loadErr error
	status  domain.Status
}

// NewController creates a controller painting rows built by tmpl into
// table. bus may be nil.
func NewController(table Table, tmpl search.RowTemplate, bus eventbus.EventBus) *Controller {
	c := &Controller{
		bus:    bus,
		table:  table,
		tmpl:   tmpl,
		status: domain.Status{Text: loadingStatusText},
	}
	c.renderer = paging.NewRenderer(display{c})
	return c
}

// Loaded installs the vocabulary and enables the search input
func (c *Controller) Loaded(entries []domain.Entry) error {
	if c.loaded {
		return ErrAlreadyLoaded
	}
	c.vocab = entries
	c.loaded = true
	c.enabled = true
	c.status = domain.Status{Text: fmt.Sprintf(loadedFormat, len(entries))}
	c.publish(domain.VocabLoadedEvent{Count: len(entries)})
	return nil
}

// LoadFailed records a startup failure. The input stays disabled for the
// rest of the session and the error is kept for the host process.
func (c *Controller) LoadFailed(err error) {
	c.loadErr = err
	c.enabled = false
	c.status = domain.Status{Text: fmt.Sprintf(loadFailedFormat, err), Kind: domain.StatusError}
	c.publish(domain.VocabLoadFailedEvent{Err: err})
}

// Search replaces the match list with the entries matching query and
// restarts paging from the first page. A malformed pattern clears the table
// and is reported in the status line; the error is returned as well.
func (c *Controller) Search(query string) error {
	if !c.enabled {
		return ErrInputDisabled
	}

	list, err := search.Filter(c.vocab, query, c.tmpl)
	if err != nil {
		c.renderer.Reset(search.MatchList{})
		c.status = domain.Status{Text: fmt.Sprintf(badPatternFormat, err), Kind: domain.StatusError}
		c.publish(domain.SearchFailedEvent{Query: query, Err: err})
		return err
	}

	c.renderer.Reset(list)
	c.publish(domain.SearchCompletedEvent{Query: query, Matches: list.Len()})
	return nil
}

// Visible forwards the visible row range to the renderer and reports
// whether another page was appended.
func (c *Controller) Visible(first, last int) bool {
	return c.renderer.Visible(first, last)
}

// Status returns the status line
func (c *Controller) Status() domain.Status {
	return c.status
}

// InputEnabled reports whether the search input accepts text
func (c *Controller) InputEnabled() bool {
	return c.enabled
}

// Err returns the load error, if the startup load failed
func (c *Controller) Err() error {
	return c.loadErr
}

// VocabSize returns the number of loaded entries
func (c *Controller) VocabSize() int {
	return len(c.vocab)
}

// Matches returns the current match list
func (c *Controller) Matches() search.MatchList {
	return c.renderer.List()
}

// Shown returns the number of rows painted so far
func (c *Controller) Shown() int {
	return c.renderer.Shown()
}

// PagingState returns the renderer's state
func (c *Controller) PagingState() paging.State {
	return c.renderer.State()
}

func (c *Controller) publish(event domain.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}

// display adapts the controller to paging.Display: rows go to the table,
// progress goes to the status line.
type display struct {
	c *Controller
}

func (d display) ReplaceRows(rows []string) {
	d.c.table.ReplaceRows(rows)
}

func (d display) AppendRows(rows []string) {
	d.c.table.AppendRows(rows)
}

func (d display) SetProgress(shown, total int) {
	d.c.status = domain.Status{Text: fmt.Sprintf(progressFormat, shown, total)}
	d.c.publish(domain.PageRenderedEvent{Shown: shown, Total: total})
}
