package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/logistics-api/internal/engine"
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/inventory"
	"github.com/KirkDiggler/logistics-api/internal/testutils/builders"
)

func TestNewScratchSeedsFromContainer(t *testing.T) {
	container := inventory.NewMemory(
		inventory.SlotConfig{Declared: 64, Stack: items.New(cobble, 12)},
		inventory.SlotConfig{Declared: -4},
		inventory.SlotConfig{Declared: 999, Ceiling: 10},
	)

	scratch, err := engine.NewScratch(container)
	require.NoError(t, err)

	assert.Equal(t, 3, scratch.Len())
	assert.Equal(t, 12, scratch.Quantity(0))
	assert.Equal(t, items.New(cobble, 12), scratch.Stack(0))
	assert.Equal(t, 0, scratch.Limit(1), "negative declared limits are treated as non-storage")
	assert.Equal(t, 999, scratch.Limit(2), "working limit starts at the declared limit")
	assert.Equal(t, 0, scratch.Placed())
	assert.Equal(t, 0, scratch.Delta(7))
	assert.True(t, scratch.Stack(-1).IsEmpty())
}

func TestProbeInsertConservesUnits(t *testing.T) {
	layouts := map[string][]inventory.SlotConfig{
		"uniform chest": {
			{Declared: 64}, {Declared: 64}, {Declared: 64},
		},
		"lying drawer": {
			{Declared: 999, Ceiling: 10}, {Declared: 999, Ceiling: 200},
		},
		"partly full": {
			{Declared: 64, Stack: items.New(cobble, 60)},
			{Declared: 64, Stack: items.New(sand, 1)},
			{Declared: 32},
		},
		"filtered": {
			{Declared: 64, Allow: []string{sand.ID}},
			{Declared: 0},
			{Declared: 64, Refusing: true},
			{Declared: 16},
		},
	}

	for name, slots := range layouts {
		t.Run(name, func(t *testing.T) {
			for _, count := range []int{1, 7, 64, 65, 150, 500} {
				container := inventory.NewMemory(slots...)
				scratch, err := engine.NewScratch(container)
				require.NoError(t, err)

				placed := 0
				leftover := 0
				for _, c := range []int{count, count / 2} {
					before := scratch.Placed()
					left := engine.ProbeInsert(container, scratch, items.New(cobble, 1), c, false)
					placed += scratch.Placed() - before
					leftover += left
					assert.Equal(t, c, scratch.Placed()-before+left, "placed + leftover")
				}
				assert.Equal(t, count+count/2, placed+leftover)

				for slot := range scratch.Len() {
					assert.LessOrEqual(t, scratch.Quantity(slot), max(scratch.Limit(slot), container.Occupant(slot).Count))
				}
				for slot, st := range container.Snapshot() {
					assert.Equal(t, slots[slot].Stack.Count, st.Count, "container untouched")
				}
			}
		})
	}
}

func TestProbeInsertSaturated(t *testing.T) {
	container := inventory.NewMemory(
		inventory.SlotConfig{Declared: 64, Stack: items.New(cobble, 64)},
		inventory.SlotConfig{Declared: 64, Stack: items.New(cobble, 64)},
	)
	scratch, err := engine.NewScratch(container)
	require.NoError(t, err)

	assert.Equal(t, 30, engine.ProbeInsert(container, scratch, items.New(cobble, 1), 30, false))
	assert.Equal(t, 0, scratch.Placed())
}

func TestPlaceholderClaimsSlotForKind(t *testing.T) {
	container := inventory.NewUniform(2, 64)
	scratch, err := engine.NewScratch(container)
	require.NoError(t, err)

	require.Equal(t, 0, engine.ProbeInsert(container, scratch, items.New(cobble, 1), 10, false))
	require.Equal(t, 0, engine.ProbeInsert(container, scratch, items.New(sand, 1), 10, false))

	assert.Equal(t, cobble, scratch.Stack(0).Kind)
	assert.Equal(t, 10, scratch.Delta(0))
	assert.Equal(t, sand, scratch.Stack(1).Kind)
	assert.Equal(t, 10, scratch.Delta(1))
}

func TestMetadataSplitsSlots(t *testing.T) {
	container := builders.NewContainerBuilder().WithEmptySlots(2, 64).Build()
	scratch, err := engine.NewScratch(container)
	require.NoError(t, err)

	plain := builders.NewStackBuilder(cobble.ID).Build()
	named := builders.NewStackBuilder(cobble.ID).WithMeta("name", "Rocky").Build()
	require.Equal(t, 0, engine.ProbeInsert(container, scratch, plain, 5, true))
	require.Equal(t, 0, engine.ProbeInsert(container, scratch, named, 5, true))

	assert.Nil(t, scratch.Stack(0).Meta)
	assert.Equal(t, "Rocky", scratch.Stack(1).Meta["name"])
}

func TestLyingSlotNarrowsToAcceptedProbe(t *testing.T) {
	container := builders.NewContainerBuilder().
		WithSlot(64, builders.NewStackBuilder(cobble.ID).WithCount(20).Build()).
		WithLyingSlot(999, 30).
		Build()
	scratch, err := engine.NewScratch(container)
	require.NoError(t, err)

	leftover := engine.ProbeInsert(container, scratch, builders.NewStackBuilder(cobble.ID).Build(), 100, false)

	assert.Equal(t, 26, leftover)
	assert.Equal(t, 44, scratch.Delta(0))
	assert.Equal(t, 30, scratch.Delta(1))
	assert.Equal(t, 30, scratch.Limit(1))
}
