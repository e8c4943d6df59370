package engine

import (
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/inventory"
)

// ProbeInsert simulates placing count units fungible with sample into the
// container, committing the result to scratch, and returns the units that did
// not fit. The container only ever sees Accepts and TestInsert calls.
//
// Slots are visited in index order. A slot's working limit starts at its
// declared limit and is narrowed whenever a test insert accepts less than was
// offered. An empty slot is always probed before it is claimed. A non-empty
// slot is probed when the merge could overflow the natural stack limit of a
// slot that declares more than that, or, for quantities not in flight, to
// confirm the container still takes more.
func ProbeInsert(container inventory.Container, scratch *Scratch, sample items.Stack, count int, inFlight bool) int {
	if count <= 0 || sample.IsEmpty() {
		return 0
	}
	if container == nil || scratch == nil {
		return count
	}

	natural := sample.MaxStack()
	slots := min(scratch.Len(), container.SlotCount())

	for slot := 0; slot < slots && count > 0; slot++ {
		limit := scratch.limits[slot]
		if limit <= 0 || !container.Accepts(slot, sample) {
			continue
		}

		dest := scratch.counts[slot]
		probe := 0
		if dest > 0 {
			if !items.AreStackable(sample, scratch.occupants[slot]) || dest >= limit {
				continue
			}
			switch {
			case limit > natural && count+dest > natural:
				probe = calibrationSize(count, natural)
			case !inFlight:
				probe = min(count, limit-dest)
			}
		} else {
			probe = min(count, limit)
		}

		if probe > 0 {
			accepted := container.TestInsert(slot, sample.WithCount(probe))
			if accepted <= 0 {
				continue
			}
			if accepted < probe {
				limit = scratch.narrow(slot, scratch.seeded[slot]+accepted)
			}
			if dest == 0 {
				scratch.occupants[slot] = sample.WithCount(1)
			}
		}

		merged := count + dest
		if merged > limit {
			scratch.counts[slot] = limit
			count = merged - limit
			continue
		}
		scratch.counts[slot] = merged
		return 0
	}

	return count
}

// calibrationSize is one more than a full natural stack so a container that
// caps below its declared limit has to show it. Unstackable kinds use a
// single unit.
func calibrationSize(count, natural int) int {
	if natural <= 1 {
		return 1
	}
	return min(count, natural) + 1
}
