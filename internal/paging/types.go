package paging

// PageSize is the number of rows painted per page
const PageSize = 500

// State of the renderer's paging sequence
type State int

const (
	// Idle means no page has been painted for the current list yet
	Idle State = iota
	// MorePending means a page is painted and the sentinel is armed
	MorePending
	// Complete means every row of the list is painted
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case MorePending:
		return "page-rendered-more-pending"
	case Complete:
		return "page-rendered-complete"
	default:
		return "unknown"
	}
}

// Display receives the rendered rows and paging progress
type Display interface {
	// ReplaceRows discards everything shown and shows rows instead
	ReplaceRows(rows []string)
	// AppendRows adds rows after the ones already shown
	AppendRows(rows []string)
	// SetProgress reports how many of total rows are painted
	SetProgress(shown, total int)
}
