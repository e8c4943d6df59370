// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	inventorymock "github.com/KirkDiggler/logistics-api/internal/inventory/mock"
)

// ExpectScratchSeed sets up the single read per slot that seeding a scratch performs
func ExpectScratchSeed(mockContainer *inventorymock.MockContainer, declared []int, occupants []items.Stack) {
	mockContainer.EXPECT().SlotCount().Return(len(declared)).AnyTimes()
	for slot, limit := range declared {
		occupant := items.Empty
		if slot < len(occupants) && !occupants[slot].IsEmpty() {
			occupant = occupants[slot]
		}
		mockContainer.EXPECT().DeclaredLimit(slot).Return(limit)
		mockContainer.EXPECT().Occupant(slot).Return(occupant)
	}
}

// ExpectAcceptsAll makes every static filter check pass
func ExpectAcceptsAll(mockContainer *inventorymock.MockContainer) {
	mockContainer.EXPECT().Accepts(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
}

// ExpectNoMutation fails the test if the container is really inserted into
func ExpectNoMutation(mockContainer *inventorymock.MockContainer) {
	mockContainer.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
}
