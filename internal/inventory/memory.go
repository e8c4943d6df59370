package inventory

import (
	"slices"
	"sync"

	"github.com/KirkDiggler/logistics-api/internal/entities/items"
)

// SlotConfig describes one slot of a Memory container
type SlotConfig struct {
	// Declared is the capacity reported by DeclaredLimit. Zero marks a non-storage slot.
	Declared int

	// Ceiling is the capacity the slot really enforces. Zero means Declared and
	// values above Declared are ignored. A ceiling below Declared models a
	// container that over-reports its space.
	Ceiling int

	// Allow restricts the slot to the listed kind ids. Empty allows any kind.
	Allow []string

	// StackCapped additionally caps the slot at the natural stack limit of
	// whatever it holds, the way a plain chest slot behaves.
	StackCapped bool

	// Refusing makes the slot accept nothing while still reporting free space
	Refusing bool

	// Stack is the initial occupant
	Stack items.Stack
}

type memorySlot struct {
	cfg   SlotConfig
	stack items.Stack
}

// Memory is an in-memory Container. It is safe for concurrent use, although a
// planning pass against it is only meaningful while nothing else inserts.
type Memory struct {
	mu    sync.Mutex
	slots []memorySlot
}

// Ensure Memory implements Store
var _ Store = (*Memory)(nil)

// NewMemory creates a container with one slot per config
func NewMemory(slots ...SlotConfig) *Memory {
	m := &Memory{slots: make([]memorySlot, len(slots))}
	for i, cfg := range slots {
		cfg.Allow = slices.Clone(cfg.Allow)
		m.slots[i] = memorySlot{cfg: cfg, stack: cfg.Stack.Copy()}
		if m.slots[i].stack.IsEmpty() {
			m.slots[i].stack = items.Empty
		}
	}
	return m
}

// NewUniform creates a container of n empty slots with the same declared limit
func NewUniform(n, declared int) *Memory {
	slots := make([]SlotConfig, n)
	for i := range slots {
		slots[i] = SlotConfig{Declared: declared}
	}
	return NewMemory(slots...)
}

// SlotCount returns the number of slots
func (m *Memory) SlotCount() int {
	return len(m.slots)
}

// DeclaredLimit returns the advertised capacity of the slot
func (m *Memory) DeclaredLimit(slot int) int {
	if !m.valid(slot) {
		return 0
	}
	return m.slots[slot].cfg.Declared
}

// Accepts applies the slot's kind allow-list
func (m *Memory) Accepts(slot int, stack items.Stack) bool {
	if !m.valid(slot) {
		return false
	}
	allow := m.slots[slot].cfg.Allow
	return len(allow) == 0 || slices.Contains(allow, stack.Kind.ID)
}

// Occupant returns a copy of the slot's contents
func (m *Memory) Occupant(slot int) items.Stack {
	if !m.valid(slot) {
		return items.Empty
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.slots[slot].stack.Copy()
}

// TestInsert reports how many units the slot would accept
func (m *Memory) TestInsert(slot int, stack items.Stack) int {
	if !m.valid(slot) {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.acceptable(slot, stack)
}

// Insert stores as much of stack as the slot accepts and returns the amount
func (m *Memory) Insert(slot int, stack items.Stack) int {
	if !m.valid(slot) {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	accepted := m.acceptable(slot, stack)
	if accepted == 0 {
		return 0
	}

	s := &m.slots[slot]
	if s.stack.IsEmpty() {
		s.stack = stack.WithCount(accepted)
	} else {
		s.stack.Grow(accepted)
	}
	return accepted
}

// Extract removes up to amount units from the slot
func (m *Memory) Extract(slot int, amount int, simulate bool) items.Stack {
	if !m.valid(slot) || amount <= 0 {
		return items.Empty
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := &m.slots[slot]
	if s.stack.IsEmpty() {
		return items.Empty
	}
	if simulate {
		return s.stack.WithCount(min(amount, s.stack.Count))
	}

	taken := s.stack.Split(amount)
	if s.stack.IsEmpty() {
		s.stack = items.Empty
	}
	return taken
}

// Snapshot returns copies of every slot's contents
func (m *Memory) Snapshot() []items.Stack {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]items.Stack, len(m.slots))
	for i, s := range m.slots {
		out[i] = s.stack.Copy()
	}
	return out
}

// acceptable must be called with m.mu held
func (m *Memory) acceptable(slot int, stack items.Stack) int {
	s := m.slots[slot]
	if stack.IsEmpty() || s.cfg.Refusing || s.cfg.Declared <= 0 {
		return 0
	}
	if !m.Accepts(slot, stack) {
		return 0
	}
	if !s.stack.IsEmpty() && !items.CanStack(s.stack, stack) {
		return 0
	}

	capacity := s.cfg.Declared
	if s.cfg.Ceiling > 0 {
		capacity = min(capacity, s.cfg.Ceiling)
	}
	if s.cfg.StackCapped {
		capacity = min(capacity, stack.MaxStack())
	}

	held := 0
	if !s.stack.IsEmpty() {
		held = s.stack.Count
	}
	space := capacity - held
	if space <= 0 {
		return 0
	}
	return min(stack.Count, space)
}

func (m *Memory) valid(slot int) bool {
	return slot >= 0 && slot < len(m.slots)
}
