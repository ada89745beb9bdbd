package domain

import "strconv"

// Status represents a token's learning state. The numeric values are part of
// the wire and markup contract (status{N} CSS classes, API payloads) and must
// not be renumbered.
type Status int

const (
	StatusUnknown   Status = 0
	StatusLearning1 Status = 1
	StatusLearning2 Status = 2
	StatusLearning3 Status = 3
	StatusLearning4 Status = 4
	StatusLearning5 Status = 5
	StatusIgnored   Status = 98
	StatusWellKnown Status = 99
)

func (s Status) String() string { return strconv.Itoa(int(s)) }

func (s Status) IsValid() bool {
	switch {
	case s >= StatusUnknown && s <= StatusLearning5:
		return true
	case s == StatusIgnored, s == StatusWellKnown:
		return true
	}
	return false
}

// IsLearning reports whether the status is one of the five learning levels.
func (s Status) IsLearning() bool {
	return s >= StatusLearning1 && s <= StatusLearning5
}

// IsKnown reports whether the token has any saved state at all: a learning
// level, ignored, or well-known. Unknown tokens have no vocabulary entry.
func (s Status) IsKnown() bool {
	return s != StatusUnknown && s.IsValid()
}

// Label returns the fixed display label for the status.
func (s Status) Label() string {
	switch {
	case s >= StatusLearning1 && s <= StatusLearning4:
		return "Level " + strconv.Itoa(int(s)) + " (Learning)"
	case s == StatusLearning5:
		return "Level 5 (Learned)"
	case s == StatusIgnored:
		return "Ignored"
	case s == StatusWellKnown:
		return "Well-known"
	}
	return "Unknown"
}

// CSSClass returns the status class emitted into rendered markup, e.g.
// "status3" or "status98". Downstream selectors depend on this exact form.
func (s Status) CSSClass() string { return "status" + strconv.Itoa(int(s)) }

// Bump moves a learning level one step up or down, clamped to [1, 5].
// Non-learning statuses are returned unchanged.
func (s Status) Bump(up bool) Status {
	if !s.IsLearning() {
		return s
	}
	if up {
		if s == StatusLearning5 {
			return StatusLearning5
		}
		return s + 1
	}
	if s == StatusLearning1 {
		return StatusLearning1
	}
	return s - 1
}
