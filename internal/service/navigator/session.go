package navigator

import "github.com/heartmarshall/myreader-engine/internal/domain"

// Session is the explicit reading-cursor state for one open text. The
// position indexes the filtered list of visible words; -1 means no word is
// marked. Hover tracks the token position under the pointer so status keys
// work without a marker.
type Session struct {
	position int
	hover    int
	filter   map[domain.Status]bool
}

// NewSession starts with no marker, no hover and no status filter.
func NewSession() *Session {
	return &Session{position: -1}
}

// Reset clears the marker and the hover.
func (s *Session) Reset() {
	s.position = -1
	s.hover = 0
}

// Position returns the current marker index, -1 when none.
func (s *Session) Position() int { return s.position }

// SetHover records the token position under the pointer.
func (s *Session) SetHover(position int) { s.hover = position }

// ClearHover forgets the hovered token.
func (s *Session) ClearHover() { s.hover = 0 }

// SetStatusFilter restricts navigation to words in the given statuses.
// Calling it with no arguments removes the filter.
func (s *Session) SetStatusFilter(statuses ...domain.Status) {
	if len(statuses) == 0 {
		s.filter = nil
		return
	}
	s.filter = make(map[domain.Status]bool, len(statuses))
	for _, st := range statuses {
		s.filter[st] = true
	}
	s.position = -1
}

func (s *Session) allows(status domain.Status) bool {
	return s.filter == nil || s.filter[status]
}
