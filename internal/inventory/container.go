// Package inventory defines the slot container contract consumed by the
// planner, plus the adapters that implement it.
package inventory

//go:generate mockgen -destination=mock/mock_container.go -package=inventorymock github.com/KirkDiggler/logistics-api/internal/inventory Container,Store

import (
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
)

// Container is the capability set a slot-based storage exposes to the planner.
// Slots are indexed 0..SlotCount()-1.
type Container interface {
	// SlotCount returns the number of slots
	SlotCount() int

	// DeclaredLimit returns the advertised capacity of a slot. It may be wrong
	// and is treated as an upper bound to calibrate against.
	DeclaredLimit(slot int) int

	// Accepts is a static filter check. It never mutates the container.
	Accepts(slot int, stack items.Stack) bool

	// Occupant returns a copy of what is currently stored in the slot
	Occupant(slot int) items.Stack

	// TestInsert reports how many units of stack the slot would accept right
	// now. It must not mutate the container.
	TestInsert(slot int, stack items.Stack) int

	// Insert stores up to stack.Count units in the slot and returns the number
	// accepted. The planner never calls it during simulation.
	Insert(slot int, stack items.Stack) int
}

// Extractor is implemented by containers that support removing units
type Extractor interface {
	// Extract removes up to amount units from the slot and returns them.
	// With simulate set the container is left untouched.
	Extract(slot int, amount int, simulate bool) items.Stack
}

// Store is a container that also supports extraction
type Store interface {
	Container
	Extractor
}

// ExtractStack pulls up to want.Count units fungible with want from source,
// scanning slots in order. The returned stack holds the amount obtained.
func ExtractStack(source Store, want items.Stack, simulate bool) items.Stack {
	if source == nil || want.IsEmpty() {
		return items.Empty
	}

	remaining := want.Count
	gotten := 0
	for slot := 0; slot < source.SlotCount() && remaining > 0; slot++ {
		occupant := source.Occupant(slot)
		if !items.CanStack(occupant, want) {
			continue
		}
		taken := source.Extract(slot, min(remaining, occupant.Count), simulate)
		gotten += taken.Count
		remaining -= taken.Count
	}

	return want.WithCount(gotten)
}

// ExtractMatching pulls a single unit of the first occupant matching the predicate
func ExtractMatching(source Store, match func(items.Stack) bool, simulate bool) items.Stack {
	if source == nil || match == nil {
		return items.Empty
	}

	for slot := 0; slot < source.SlotCount(); slot++ {
		occupant := source.Occupant(slot)
		if occupant.IsEmpty() || !match(occupant) {
			continue
		}
		return source.Extract(slot, 1, simulate)
	}
	return items.Empty
}
