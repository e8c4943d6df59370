// Package filter holds filter cards, the per-node rules deciding which stacks
// a logistics node extracts, stocks or counts.
package filter

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/logistics-api/internal/entities/items"
)

// Mode selects how a card's listed stacks are interpreted
type Mode string

const (
	// ModeWhitelist admits only the listed kinds
	ModeWhitelist Mode = "whitelist"

	// ModeBlacklist admits every kind except the listed ones
	ModeBlacklist Mode = "blacklist"
)

// Card is a configured filter. A stack is listed when a listed stack has its
// kind, or when its kind carries any of the card's tags.
type Card struct {
	Mode      Mode          `json:"mode"`
	MatchMeta bool          `json:"match_meta"`
	Stacks    []items.Stack `json:"stacks"`
	Tags      []string      `json:"tags,omitempty"`
}

// Lister is the slice of a container needed to learn from it
type Lister interface {
	SlotCount() int
	Occupant(slot int) items.Stack
}

// Valid reports whether the mode is known. The zero mode counts as whitelist.
func (m Mode) Valid() bool {
	return m == "" || m == ModeWhitelist || m == ModeBlacklist
}

// Matches reports whether the card admits stack. Empty stacks never match.
func (c *Card) Matches(stack items.Stack) bool {
	if stack.IsEmpty() {
		return false
	}
	if c == nil {
		return true
	}

	listed := c.lists(stack)
	if c.Mode == ModeBlacklist {
		return !listed
	}
	return listed
}

func (c *Card) lists(stack items.Stack) bool {
	for _, tag := range c.Tags {
		if stack.Kind.HasTag(tag) {
			return true
		}
	}
	for _, entry := range c.Stacks {
		if entry.Kind.ID != stack.Kind.ID {
			continue
		}
		if !c.MatchMeta || maps.Equal(entry.Meta, stack.Meta) {
			return true
		}
	}
	return false
}

// Learn appends one single-unit representative of each kind held by the
// container that the card does not already list. It returns how many entries
// were added.
func (c *Card) Learn(container Lister) int {
	if container == nil {
		return 0
	}

	added := 0
	for slot := range container.SlotCount() {
		occupant := container.Occupant(slot)
		if occupant.IsEmpty() || c.lists(occupant) {
			continue
		}
		c.Stacks = append(c.Stacks, occupant.WithCount(1))
		added++
	}
	return added
}

// AddTag lists a tag. It reports false when the tag is blank or already listed.
func (c *Card) AddTag(tag string) bool {
	tag = items.NormalizeTag(tag)
	if tag == "" || slices.Contains(c.Tags, tag) {
		return false
	}
	c.Tags = append(c.Tags, tag)
	return true
}

// RemoveTag unlists a tag. It reports whether the tag was listed.
func (c *Card) RemoveTag(tag string) bool {
	tag = items.NormalizeTag(tag)
	idx := slices.Index(c.Tags, tag)
	if idx < 0 {
		return false
	}
	c.Tags = slices.Delete(c.Tags, idx, idx+1)
	return true
}

// Clear removes every listed stack and tag. The mode is kept.
func (c *Card) Clear() {
	c.Stacks = nil
	c.Tags = nil
}
