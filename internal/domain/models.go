package domain

// Entry represents one vocabulary item: a word and its definition.
// Words are not unique; the vocabulary may hold several entries per word.
type Entry struct {
	Word       string
	Definition string
}

// StatusKind tells how the status line should be styled
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusError
)

// Status is the text shown in the widget's status line
type Status struct {
	Text string
	Kind StatusKind
}

// IsError reports whether the status should be shown in the error style
func (s Status) IsError() bool {
	return s.Kind == StatusError
}
