package counts

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/KirkDiggler/logistics-api/internal/counts"
	"github.com/KirkDiggler/logistics-api/internal/errors"
	"github.com/KirkDiggler/logistics-api/internal/pkg/clock"
)

type inMemoryRepository struct {
	mu        sync.RWMutex
	clock     clock.Clock
	snapshots map[string]*Snapshot
}

// NewInMemoryRepository creates a process-local snapshot repository. A nil
// clock uses the system clock.
func NewInMemoryRepository(clk clock.Clock) Repository {
	if clk == nil {
		clk = clock.New()
	}
	return &inMemoryRepository{
		clock:     clk,
		snapshots: make(map[string]*Snapshot),
	}
}

// Ensure inMemoryRepository implements Repository
var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.NodeID == "" {
		return nil, errors.InvalidArgument(errNodeIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[input.NodeID]
	if !ok {
		return nil, errors.NotFoundf("counts for node %s not found", input.NodeID)
	}
	return &GetOutput{Snapshot: cloneSnapshot(snapshot)}, nil
}

func (r *inMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.NodeID == "" {
		return nil, errors.InvalidArgument(errNodeIDEmpty)
	}
	if err := validateRecords(input.Records); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		NodeID:    input.NodeID,
		Records:   cloneRecords(input.Records),
		Total:     total(input.Records),
		UpdatedAt: r.clock.Now(),
	}

	r.mu.Lock()
	r.snapshots[input.NodeID] = snapshot
	r.mu.Unlock()

	return &SaveOutput{Snapshot: cloneSnapshot(snapshot)}, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.NodeID == "" {
		return nil, errors.InvalidArgument(errNodeIDEmpty)
	}

	r.mu.Lock()
	delete(r.snapshots, input.NodeID)
	r.mu.Unlock()

	return &DeleteOutput{}, nil
}

func (r *inMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &ListOutput{NodeIDs: slices.Sorted(maps.Keys(r.snapshots))}, nil
}

func cloneSnapshot(s *Snapshot) *Snapshot {
	out := *s
	out.Records = cloneRecords(s.Records)
	return &out
}

func cloneRecords(records []counts.Record) []counts.Record {
	out := make([]counts.Record, len(records))
	for i, rec := range records {
		out[i] = counts.Record{Identity: slices.Clone(rec.Identity), Count: rec.Count}
	}
	return out
}
