// Package paging paints a match list in fixed-size pages, appending the next
// page when the last painted row scrolls into view.
package paging

import (
	"vocabsearch/internal/search"
)

// Renderer owns the pagination cursor and the single sentinel of the
// current match list.
type Renderer struct {
	display  Display
	list     search.MatchList
	cursor   int
	sentinel Sentinel
	state    State
}

// NewRenderer creates a renderer painting into display
func NewRenderer(display Display) *Renderer {
	return &Renderer{display: display}
}

// Reset starts a fresh paging sequence for list: any pending watch is
// dropped and the first page replaces the display contents.
func (r *Renderer) Reset(list search.MatchList) {
	r.sentinel.Disconnect()
	r.list = list
	r.cursor = 0
	r.state = Idle
	r.render()
}

// Visible is called with the range of rows currently in view. When the
// sentinel row is among them the next page is appended and true returned.
func (r *Renderer) Visible(first, last int) bool {
	if !r.sentinel.Fire(first, last) {
		return false
	}
	r.render()
	return true
}

func (r *Renderer) render() {
	from := r.cursor
	to := min(from+PageSize, r.list.Len())
	rows := r.list.Slice(from, to)

	if from == 0 {
		r.display.ReplaceRows(rows)
	} else {
		r.display.AppendRows(rows)
	}
	r.cursor = to
	r.display.SetProgress(r.cursor, r.list.Len())

	if r.cursor < r.list.Len() {
		r.sentinel.Arm(r.cursor - 1)
		r.state = MorePending
	} else {
		r.state = Complete
	}
}

// State returns where the paging sequence stands
func (r *Renderer) State() State {
	return r.state
}

// Shown returns the number of rows painted so far
func (r *Renderer) Shown() int {
	return r.cursor
}

// Total returns the size of the current match list
func (r *Renderer) Total() int {
	return r.list.Len()
}

// Sentinel returns the watched row, if a watch is live
func (r *Renderer) Sentinel() (int, bool) {
	return r.sentinel.Armed()
}

// List returns the current match list
func (r *Renderer) List() search.MatchList {
	return r.list
}
