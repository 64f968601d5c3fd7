package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventVocabLoaded     EventType = "VocabLoaded"
	EventVocabLoadFailed EventType = "VocabLoadFailed"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventPageRendered    EventType = "PageRendered"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// VocabLoadedEvent is emitted once the vocabulary has been fetched and parsed
type VocabLoadedEvent struct {
	Count int
}

func (e VocabLoadedEvent) Type() EventType { return EventVocabLoaded }

// VocabLoadFailedEvent is emitted when the startup load fails
type VocabLoadFailedEvent struct {
	Err error
}

func (e VocabLoadFailedEvent) Type() EventType { return EventVocabLoadFailed }

// SearchCompletedEvent is emitted after every accepted filter pass
type SearchCompletedEvent struct {
	Query   string
	Matches int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the query is not a valid pattern
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// PageRenderedEvent is emitted each time the renderer paints a page
type PageRenderedEvent struct {
	Shown int
	Total int
}

func (e PageRenderedEvent) Type() EventType { return EventPageRendered }
