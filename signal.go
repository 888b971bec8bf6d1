package traversal

import "strings"

// Signal is a control request returned by a visitor for the element it was just given.
// Signals are flags: Remove|Stop removes the current element, then ends the traversal.
type Signal uint8

const (
	// Continue moves on to the next element
	Continue Signal = 0
	// Remove deletes the current element from the underlying collection, then continues
	Remove Signal = 1
	// Stop ends the traversal without visiting further elements
	Stop Signal = 2
)

// IsRemove returns true if removal of the current element was requested
func (s Signal) IsRemove() bool {
	return s&Remove != 0
}

// IsStop returns true if the traversal has to end
func (s Signal) IsStop() bool {
	return s&Stop != 0
}

func (s Signal) String() string {
	if s == Continue {
		return "continue"
	}
	if s&^(Remove|Stop) != 0 {
		return "unknown"
	}
	var parts []string
	if s.IsRemove() {
		parts = append(parts, "remove")
	}
	if s.IsStop() {
		parts = append(parts, "stop")
	}
	return strings.Join(parts, "|")
}

// Outcome reports how a traversal ended
type Outcome int

const (
	// Completed means every element was offered to the visitor, or a stop was absorbed by the Tolerant policy
	Completed Outcome = iota
	// StoppedEarly means the visitor returned Stop under the Strict policy
	StoppedEarly
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case StoppedEarly:
		return "stopped early"
	}
	return "unknown"
}
