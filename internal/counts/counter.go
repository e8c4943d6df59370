// Package counts aggregates the stacks held by one or more containers into
// per-kind buckets with a running total. A Counter is either built fresh from
// container reads or rehydrated from persisted records, and is then adjusted
// incrementally as routing decisions commit.
package counts

import (
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
)

// Source is the read side of a container
type Source interface {
	SlotCount() int
	Occupant(slot int) items.Stack
}

// Bucket is one group of mutually fungible units
type Bucket struct {
	// Sample is a single-unit representative carrying the full metadata
	Sample items.Stack
	Count  int
}

type bucket struct {
	sample items.Stack
	count  int
}

// Counter maps kinds to ordered buckets. It is not safe for concurrent use;
// callers serialize access per instance.
type Counter struct {
	buckets map[string][]*bucket
	order   []string
	total   int
}

// New creates an empty counter
func New() *Counter {
	return &Counter{buckets: make(map[string][]*bucket)}
}

// FromContainer counts every non-empty slot
func FromContainer(src Source) *Counter {
	c := New()
	c.AddContainer(src)
	return c
}

// FromContainerFiltered counts the non-empty slots whose contents satisfy keep
func FromContainerFiltered(src Source, keep func(items.Stack) bool) *Counter {
	c := New()
	c.AddContainerFiltered(src, keep)
	return c
}

// AddContainer adds every non-empty slot of src
func (c *Counter) AddContainer(src Source) {
	c.AddContainerFiltered(src, nil)
}

// AddContainerFiltered adds the non-empty slots of src accepted by keep. A nil
// keep accepts everything.
func (c *Counter) AddContainerFiltered(src Source, keep func(items.Stack) bool) {
	if src == nil {
		return
	}
	for slot := range src.SlotCount() {
		stack := src.Occupant(slot)
		if stack.IsEmpty() {
			continue
		}
		if keep != nil && !keep(stack) {
			continue
		}
		c.Add(stack, stack.Count)
	}
}

// Add grows the first bucket fungible with sample, or starts a new one
func (c *Counter) Add(sample items.Stack, quantity int) {
	key := sample.WithCount(1)
	if quantity <= 0 || key.IsEmpty() {
		return
	}

	if b := c.find(key); b != nil {
		b.count += quantity
		c.total += quantity
		return
	}

	id := key.Kind.ID
	if _, ok := c.buckets[id]; !ok {
		c.order = append(c.order, id)
	}
	c.buckets[id] = append(c.buckets[id], &bucket{sample: key, count: quantity})
	c.total += quantity
}

// Remove takes up to quantity units from the first bucket fungible with
// sample. Fewer units than requested, possibly none, means stock ran short.
func (c *Counter) Remove(sample items.Stack, quantity int) items.Stack {
	key := sample.WithCount(1)
	if quantity <= 0 || key.IsEmpty() {
		return items.Empty
	}

	id := key.Kind.ID
	list := c.buckets[id]
	for i, b := range list {
		if !items.CanStack(b.sample, key) {
			continue
		}

		taken := min(quantity, b.count)
		b.count -= taken
		c.total -= taken
		if b.count == 0 {
			c.drop(id, i)
		}
		return b.sample.WithCount(taken)
	}
	return items.Empty
}

// Count returns the quantity of the first bucket fungible with sample. Other
// buckets of the same kind with different metadata are not included.
func (c *Counter) Count(sample items.Stack) int {
	if b := c.find(sample.WithCount(1)); b != nil {
		return b.count
	}
	return 0
}

// Total returns the number of units across all buckets
func (c *Counter) Total() int {
	return c.total
}

// Len returns the number of buckets
func (c *Counter) Len() int {
	n := 0
	for _, list := range c.buckets {
		n += len(list)
	}
	return n
}

// Buckets returns copies of all buckets, kinds in first-seen order
func (c *Counter) Buckets() []Bucket {
	out := make([]Bucket, 0, c.Len())
	for _, id := range c.order {
		for _, b := range c.buckets[id] {
			out = append(out, Bucket{Sample: b.sample.Copy(), Count: b.count})
		}
	}
	return out
}

func (c *Counter) find(key items.Stack) *bucket {
	if key.IsEmpty() {
		return nil
	}
	for _, b := range c.buckets[key.Kind.ID] {
		if items.CanStack(b.sample, key) {
			return b
		}
	}
	return nil
}

func (c *Counter) drop(id string, i int) {
	list := append(c.buckets[id][:i], c.buckets[id][i+1:]...)
	if len(list) > 0 {
		c.buckets[id] = list
		return
	}

	delete(c.buckets, id)
	for j, kind := range c.order {
		if kind == id {
			c.order = append(c.order[:j], c.order[j+1:]...)
			break
		}
	}
}
