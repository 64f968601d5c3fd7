package paging

// Sentinel is a one-shot visibility watch on a single row. Once it fires it
// is disconnected and must be armed again.
type Sentinel struct {
	row   int
	armed bool
}

// Arm watches row, replacing any previous watch
func (s *Sentinel) Arm(row int) {
	s.row = row
	s.armed = true
}

// Disconnect drops the watch, if any
func (s *Sentinel) Disconnect() {
	s.armed = false
}

// Armed returns the watched row and whether a watch is live
func (s *Sentinel) Armed() (int, bool) {
	return s.row, s.armed
}

// Fire disconnects and returns true when the watched row lies within the
// visible range [first, last].
func (s *Sentinel) Fire(first, last int) bool {
	if !s.armed || s.row < first || s.row > last {
		return false
	}
	s.armed = false
	return true
}
