// Package counts provides storage for per-node counter snapshots
package counts

//go:generate mockgen -destination=mock/mock_repository.go -package=countsrepomock github.com/KirkDiggler/logistics-api/internal/repositories/counts Repository

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/logistics-api/internal/counts"
	"github.com/KirkDiggler/logistics-api/internal/errors"
)

// Snapshot is the persisted counter of one logistics node
type Snapshot struct {
	NodeID    string          `json:"node_id"`
	Records   []counts.Record `json:"records"`
	Total     int             `json:"total"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GetInput contains parameters for loading a snapshot
type GetInput struct {
	NodeID string
}

// GetOutput contains the loaded snapshot
type GetOutput struct {
	Snapshot *Snapshot
}

// SaveInput contains the records to store for a node, replacing any previous snapshot
type SaveInput struct {
	NodeID  string
	Records []counts.Record
}

// SaveOutput contains the stored snapshot
type SaveOutput struct {
	Snapshot *Snapshot
}

// DeleteInput contains parameters for removing a snapshot
type DeleteInput struct {
	NodeID string
}

// DeleteOutput is empty; deleting a missing snapshot is not an error
type DeleteOutput struct{}

// ListInput is reserved for paging
type ListInput struct{}

// ListOutput contains the ids of every node with a snapshot, sorted
type ListOutput struct {
	NodeIDs []string
}

// Repository defines storage operations for counter snapshots
type Repository interface {
	// Get returns the snapshot for a node, NotFound if none was saved
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the snapshot for a node
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the snapshot for a node
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the nodes that have snapshots
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

const (
	errNodeIDEmpty = "node ID cannot be empty"
)

func validateRecords(records []counts.Record) error {
	vb := errors.NewValidationBuilder()
	for i, rec := range records {
		if len(rec.Identity) == 0 {
			vb.RequiredField(fmt.Sprintf("records[%d].identity", i))
		}
		errors.ValidateNonNegative(fmt.Sprintf("records[%d].count", i), rec.Count, vb)
	}
	return vb.Build()
}

func total(records []counts.Record) int {
	sum := 0
	for _, rec := range records {
		sum += rec.Count
	}
	return sum
}
