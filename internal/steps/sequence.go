package steps

import (
	"fmt"
	"slices"
	"sort"
)

// sequence holds the ordered intake steps with indices.
type sequence struct {
	ordered []Step
	byID    map[string]int // step ID -> index into ordered
}

// seq is the package-level sequence singleton, set by init() in seed.go.
var seq *sequence

func buildSequence(steps []Step) *sequence {
	ordered := slices.Clone(steps)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	s := &sequence{
		ordered: ordered,
		byID:    make(map[string]int, len(ordered)),
	}
	for i := range s.ordered {
		s.byID[s.ordered[i].ID] = i
	}
	return s
}

// Get returns a step by ID, or an error if not found.
func Get(id string) (Step, error) {
	i, ok := seq.byID[id]
	if !ok {
		return Step{}, fmt.Errorf("step not found: %q", id)
	}
	return seq.ordered[i], nil
}

// First returns the first step of the intake.
func First() Step {
	return seq.ordered[0]
}

// Next returns the step following id, or false when id is the last step.
func Next(id string) (Step, bool) {
	i, ok := seq.byID[id]
	if !ok || i+1 >= len(seq.ordered) {
		return Step{}, false
	}
	return seq.ordered[i+1], true
}

// Prev returns the step preceding id, or false when id is the first step.
func Prev(id string) (Step, bool) {
	i, ok := seq.byID[id]
	if !ok || i == 0 {
		return Step{}, false
	}
	return seq.ordered[i-1], true
}

// Index returns the zero-based position of a step in the sequence,
// or -1 for an unknown ID.
func Index(id string) int {
	i, ok := seq.byID[id]
	if !ok {
		return -1
	}
	return i
}

// All returns the full intake sequence in order.
func All() []Step {
	return slices.Clone(seq.ordered)
}

// Count returns the number of steps in the intake.
func Count() int {
	return len(seq.ordered)
}

// EstimatedMinutes returns the summed estimate for the whole intake.
func EstimatedMinutes() int {
	total := 0
	for _, s := range seq.ordered {
		total += s.EstimatedMins
	}
	return total
}
