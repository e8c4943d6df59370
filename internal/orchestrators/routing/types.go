package routing

import (
	"time"

	"github.com/KirkDiggler/logistics-api/internal/counts"
	"github.com/KirkDiggler/logistics-api/internal/entities/filter"
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	countsrepo "github.com/KirkDiggler/logistics-api/internal/repositories/counts"
)

// Candidate is a stack offered to a container. Stack.Count is the quantity.
type Candidate struct {
	Stack items.Stack
	// InFlight marks a quantity still travelling from an earlier decision
	InFlight bool
}

// CandidateResult reports what happened to one candidate
type CandidateResult struct {
	Stack    items.Stack
	Accepted int
	Leftover int
}

// Placement is a simulated slot assignment for one candidate
type Placement struct {
	Candidate int
	Slot      int
	Count     int
}

// PlanInsertInput defines the request for a simulated insert
type PlanInsertInput struct {
	ContainerID string
	Candidates  []Candidate
}

// PlanInsertOutput defines the response for a simulated insert
type PlanInsertOutput struct {
	PlanID     string
	Results    []CandidateResult
	Placements []Placement
}

// CommitInsertInput defines the request for planning and then inserting
type CommitInsertInput struct {
	ContainerID string
	Candidates  []Candidate
}

// CommitInsertOutput reports both the plan and what the container really took
type CommitInsertOutput struct {
	PlanID    string
	Planned   []CandidateResult
	Committed []CandidateResult
}

// CountInventoryInput defines the request for counting containers
type CountInventoryInput struct {
	ContainerIDs []string
	// Filter restricts counting to admitted stacks. Nil counts everything.
	Filter *filter.Card
}

// CountInventoryOutput defines the response for counting containers
type CountInventoryOutput struct {
	Buckets []counts.Bucket
	Total   int
}

// SnapshotCountsInput defines the request for counting and persisting a node's stock
type SnapshotCountsInput struct {
	NodeID       string
	ContainerIDs []string
	Filter       *filter.Card
}

// SnapshotCountsOutput defines the response for a stored snapshot
type SnapshotCountsOutput struct {
	Snapshot *countsrepo.Snapshot
	Buckets  []counts.Bucket
}

// GetCountsInput defines the request for a node's persisted stock
type GetCountsInput struct {
	NodeID string
}

// GetCountsOutput defines the response for a node's persisted stock
type GetCountsOutput struct {
	Buckets   []counts.Bucket
	Total     int
	UpdatedAt time.Time
}

// ReserveStockInput defines the request for taking units out of a node's stock
type ReserveStockInput struct {
	NodeID   string
	Stack    items.Stack
	Quantity int
}

// ReserveStockOutput reports the units taken. Insufficient is set when fewer
// than requested were available; it is not an error.
type ReserveStockOutput struct {
	Removed      items.Stack
	Insufficient bool
	Total        int
}

// ReleaseStockInput defines the request for returning units to a node's stock
type ReleaseStockInput struct {
	NodeID   string
	Stack    items.Stack
	Quantity int
}

// ReleaseStockOutput defines the response for returned units
type ReleaseStockOutput struct {
	Total int
}

// LearnFilterInput defines the request for editing a card. Reset clears the
// card first, then tags are removed and added, then the kinds held by
// ContainerID, when set, are learned.
type LearnFilterInput struct {
	ContainerID string
	Card        *filter.Card
	Reset       bool
	AddTags     []string
	RemoveTags  []string
}

// LearnFilterOutput returns the updated card. Added counts learned stacks.
type LearnFilterOutput struct {
	Card  *filter.Card
	Added int
}

// ExtractStockInput defines the request for pulling units out of a container.
// With a Stack, up to Stack.Count fungible units are pulled. Without one, a
// single unit of the first occupant the Filter admits is pulled. Unless
// simulating, the units are also taken out of NodeID's counts when it is set.
type ExtractStockInput struct {
	ContainerID string
	NodeID      string
	Stack       items.Stack
	Filter      *filter.Card
	Simulate    bool
}

// ExtractStockOutput reports the extracted units
type ExtractStockOutput struct {
	Extracted    items.Stack
	Insufficient bool
	// NodeTotal is the node's total after the extraction. It is only set
	// when the node's counts were updated.
	NodeTotal   int
	NodeUpdated bool
}
