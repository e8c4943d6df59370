// Package items defines the kinds and stacks moved between containers
package items

import (
	"maps"
	"slices"
	"strings"
)

// DefaultMaxStackSize is the natural stack limit assumed when a kind does not declare one
const DefaultMaxStackSize = 64

// Kind identifies what a stack is made of. Two stacks of the same Kind are only
// fungible when their metadata also matches, see CanStack.
type Kind struct {
	ID           string `json:"id" yaml:"id"`
	MaxStackSize int    `json:"max_stack" yaml:"max_stack"`
	// Tags are lower-case group names such as "forge:ores". They describe the
	// kind and take no part in fungibility.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// MaxStack returns the natural stack limit for the kind. Kinds that do not
// declare a positive limit are treated as unstackable.
func (k Kind) MaxStack() int {
	if k.MaxStackSize < 1 {
		return 1
	}
	return k.MaxStackSize
}

// HasTag reports whether the kind carries tag, ignoring case
func (k Kind) HasTag(tag string) bool {
	tag = NormalizeTag(tag)
	return tag != "" && slices.Contains(k.Tags, tag)
}

// NormalizeTag trims and lower-cases a tag name
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizeTags returns the distinct non-empty tags, normalized and sorted.
// It returns nil when nothing is left.
func NormalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t = NormalizeTag(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Metadata carries the distinguishing, non-identity data of a stack
// (durability, enchantments, custom names...)
type Metadata map[string]string

// Stack is a quantity of a kind together with its metadata
type Stack struct {
	Kind  Kind     `json:"kind" yaml:"kind"`
	Meta  Metadata `json:"meta,omitempty" yaml:"meta,omitempty"`
	Count int      `json:"count" yaml:"count"`
}

// Empty is the canonical empty stack
var Empty = Stack{}

// New creates a stack of count units of kind
func New(kind Kind, count int) Stack {
	return Stack{Kind: kind, Count: count}
}

// IsEmpty reports whether the stack holds nothing
func (s Stack) IsEmpty() bool {
	return s.Kind.ID == "" || s.Count <= 0
}

// MaxStack returns the natural stack limit of the stack's kind
func (s Stack) MaxStack() int {
	return s.Kind.MaxStack()
}

// Copy returns a deep copy of the stack
func (s Stack) Copy() Stack {
	out := s
	if s.Meta != nil {
		out.Meta = maps.Clone(s.Meta)
	}
	if s.Kind.Tags != nil {
		out.Kind.Tags = slices.Clone(s.Kind.Tags)
	}
	return out
}

// WithCount returns a copy of the stack resized to count.
// A non-positive count or an empty stack yields Empty.
func (s Stack) WithCount(count int) Stack {
	if count <= 0 || s.Kind.ID == "" {
		return Empty
	}
	out := s.Copy()
	out.Count = count
	return out
}

// Grow adds n units to the stack
func (s *Stack) Grow(n int) {
	s.Count += n
}

// Split removes up to n units from the stack and returns them as a new stack
func (s *Stack) Split(n int) Stack {
	if n <= 0 || s.IsEmpty() {
		return Empty
	}
	taken := min(n, s.Count)
	out := s.WithCount(taken)
	s.Count -= taken
	return out
}

// CanStack reports whether a and b may merge into one stack. Both stacks must
// be non-empty, of the same kind and carry identical metadata.
func CanStack(a, b Stack) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	if a.Kind.ID != b.Kind.ID || a.Kind.MaxStack() != b.Kind.MaxStack() {
		return false
	}
	return maps.Equal(a.Meta, b.Meta)
}

// AreStackable is the lenient form of CanStack used when matching against slot
// occupants: an empty side is compatible with anything.
func AreStackable(toInsert, inSlot Stack) bool {
	if toInsert.IsEmpty() || inSlot.IsEmpty() {
		return true
	}
	return CanStack(inSlot, toInsert)
}
