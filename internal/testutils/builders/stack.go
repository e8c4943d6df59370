// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/inventory"
)

// StackBuilder provides a fluent interface for building test stacks
type StackBuilder struct {
	stack items.Stack
}

// NewStackBuilder creates a builder for one unit of a natural-64 kind
func NewStackBuilder(kindID string) *StackBuilder {
	return &StackBuilder{
		stack: items.Stack{
			Kind:  items.Kind{ID: kindID, MaxStackSize: items.DefaultMaxStackSize},
			Count: 1,
		},
	}
}

// WithCount sets the quantity
func (b *StackBuilder) WithCount(count int) *StackBuilder {
	b.stack.Count = count
	return b
}

// WithMaxStack sets the natural stack limit
func (b *StackBuilder) WithMaxStack(maxStack int) *StackBuilder {
	b.stack.Kind.MaxStackSize = maxStack
	return b
}

// WithMeta adds a metadata entry
func (b *StackBuilder) WithMeta(key, value string) *StackBuilder {
	if b.stack.Meta == nil {
		b.stack.Meta = items.Metadata{}
	}
	b.stack.Meta[key] = value
	return b
}

// Build returns a copy of the stack
func (b *StackBuilder) Build() items.Stack {
	return b.stack.Copy()
}

// ContainerBuilder assembles an in-memory container slot by slot
type ContainerBuilder struct {
	slots []inventory.SlotConfig
}

// NewContainerBuilder creates an empty container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{}
}

// WithEmptySlots appends n empty slots with the given declared limit
func (b *ContainerBuilder) WithEmptySlots(n, declared int) *ContainerBuilder {
	for range n {
		b.slots = append(b.slots, inventory.SlotConfig{Declared: declared})
	}
	return b
}

// WithSlot appends a holding slot
func (b *ContainerBuilder) WithSlot(declared int, stack items.Stack) *ContainerBuilder {
	b.slots = append(b.slots, inventory.SlotConfig{Declared: declared, Stack: stack})
	return b
}

// WithLyingSlot appends a slot that declares more than it really holds
func (b *ContainerBuilder) WithLyingSlot(declared, ceiling int) *ContainerBuilder {
	b.slots = append(b.slots, inventory.SlotConfig{Declared: declared, Ceiling: ceiling})
	return b
}

// WithConfig appends an arbitrary slot
func (b *ContainerBuilder) WithConfig(cfg inventory.SlotConfig) *ContainerBuilder {
	b.slots = append(b.slots, cfg)
	return b
}

// Build creates the container
func (b *ContainerBuilder) Build() *inventory.Memory {
	return inventory.NewMemory(b.slots...)
}
