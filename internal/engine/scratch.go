// Package engine simulates inserting stacks into a slot container without
// touching it. A planning pass reads the container once into a Scratch and
// then probe-inserts candidates against that copy, calibrating declared slot
// limits with simulate-mode test inserts.
package engine

import (
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/errors"
	"github.com/KirkDiggler/logistics-api/internal/inventory"
)

// Scratch is the per-pass simulated view of a container. It is not safe for
// concurrent use and must not outlive the pass that created it.
type Scratch struct {
	occupants []items.Stack
	counts    []int
	limits    []int
	seeded    []int
}

// NewScratch seeds a scratch from one read of every slot
func NewScratch(container inventory.Container) (*Scratch, error) {
	if container == nil {
		return nil, errors.InvalidArgument("container is required")
	}

	n := container.SlotCount()
	s := &Scratch{
		occupants: make([]items.Stack, n),
		counts:    make([]int, n),
		limits:    make([]int, n),
		seeded:    make([]int, n),
	}
	for slot := range n {
		s.limits[slot] = max(container.DeclaredLimit(slot), 0)

		occupant := container.Occupant(slot)
		if occupant.IsEmpty() {
			s.occupants[slot] = items.Empty
			continue
		}
		s.occupants[slot] = occupant.WithCount(1)
		s.counts[slot] = occupant.Count
		s.seeded[slot] = occupant.Count
	}
	return s, nil
}

// Len returns the number of slots
func (s *Scratch) Len() int {
	return len(s.counts)
}

// Stack returns the simulated contents of a slot
func (s *Scratch) Stack(slot int) items.Stack {
	if !s.valid(slot) || s.counts[slot] == 0 {
		return items.Empty
	}
	return s.occupants[slot].WithCount(s.counts[slot])
}

// Quantity returns the simulated quantity held by a slot
func (s *Scratch) Quantity(slot int) int {
	if !s.valid(slot) {
		return 0
	}
	return s.counts[slot]
}

// Limit returns the working limit of a slot, which only shrinks during a pass
func (s *Scratch) Limit(slot int) int {
	if !s.valid(slot) {
		return 0
	}
	return s.limits[slot]
}

// Delta returns how many units the pass has placed into a slot so far
func (s *Scratch) Delta(slot int) int {
	if !s.valid(slot) {
		return 0
	}
	return s.counts[slot] - s.seeded[slot]
}

// Placed returns the total number of units placed by the pass
func (s *Scratch) Placed() int {
	total := 0
	for slot := range s.counts {
		total += s.counts[slot] - s.seeded[slot]
	}
	return total
}

// Quantities returns a copy of every slot's simulated quantity
func (s *Scratch) Quantities() []int {
	out := make([]int, len(s.counts))
	copy(out, s.counts)
	return out
}

func (s *Scratch) valid(slot int) bool {
	return slot >= 0 && slot < len(s.counts)
}

// narrow lowers a working limit. It never raises one and never drops below
// what the scratch already holds.
func (s *Scratch) narrow(slot, limit int) int {
	limit = max(limit, s.counts[slot])
	s.limits[slot] = min(s.limits[slot], limit)
	return s.limits[slot]
}
