// Package routing implements the planning use cases of a logistics node:
// simulated and committed inserts, inventory counting, stock reservations
// and extractions.
package routing

//go:generate mockgen -destination=mock/mock_service.go -package=routingmock github.com/KirkDiggler/logistics-api/internal/orchestrators/routing Service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/logistics-api/internal/counts"
	"github.com/KirkDiggler/logistics-api/internal/engine"
	"github.com/KirkDiggler/logistics-api/internal/entities/filter"
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/errors"
	"github.com/KirkDiggler/logistics-api/internal/inventory"
	"github.com/KirkDiggler/logistics-api/internal/pkg/idgen"
	"github.com/KirkDiggler/logistics-api/internal/repositories/containers"
	countsrepo "github.com/KirkDiggler/logistics-api/internal/repositories/counts"
)

// Service defines the routing operations
type Service interface {
	// Inserts
	PlanInsert(ctx context.Context, input *PlanInsertInput) (*PlanInsertOutput, error)
	CommitInsert(ctx context.Context, input *CommitInsertInput) (*CommitInsertOutput, error)

	// Counting
	CountInventory(ctx context.Context, input *CountInventoryInput) (*CountInventoryOutput, error)
	SnapshotCounts(ctx context.Context, input *SnapshotCountsInput) (*SnapshotCountsOutput, error)
	GetCounts(ctx context.Context, input *GetCountsInput) (*GetCountsOutput, error)

	// Stock
	ReserveStock(ctx context.Context, input *ReserveStockInput) (*ReserveStockOutput, error)
	ReleaseStock(ctx context.Context, input *ReleaseStockInput) (*ReleaseStockOutput, error)
	ExtractStock(ctx context.Context, input *ExtractStockInput) (*ExtractStockOutput, error)

	// Filters
	LearnFilter(ctx context.Context, input *LearnFilterInput) (*LearnFilterOutput, error)
}

// Config holds the dependencies for the routing orchestrator
type Config struct {
	ContainerRepo containers.Repository
	CountsRepo    countsrepo.Repository
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ContainerRepo == nil {
		vb.RequiredField("ContainerRepo")
	}
	if c.CountsRepo == nil {
		vb.RequiredField("CountsRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	containerRepo containers.Repository
	countsRepo    countsrepo.Repository
	idGen         idgen.Generator

	// passes over one container, and read-modify-write of one node's
	// counts, are serialized
	containerLocks keyedMutex
	nodeLocks      keyedMutex
}

// NewOrchestrator creates a new routing orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		containerRepo: cfg.ContainerRepo,
		countsRepo:    cfg.CountsRepo,
		idGen:         cfg.IDGenerator,
	}, nil
}

// PlanInsert simulates inserting every candidate, in order, into one scratch
func (o *orchestrator) PlanInsert(ctx context.Context, input *PlanInsertInput) (*PlanInsertOutput, error) {
	if err := validateInsert(input.ContainerID, input.Candidates); err != nil {
		return nil, err
	}

	container, err := o.container(ctx, input.ContainerID)
	if err != nil {
		return nil, err
	}

	unlock := o.containerLocks.lock(input.ContainerID)
	defer unlock()

	out, err := o.plan(container, input.Candidates)
	if err != nil {
		return nil, err
	}

	slog.Info("Insert planned",
		"plan_id", out.PlanID,
		"container_id", input.ContainerID,
		"candidates", len(input.Candidates),
		"placements", len(out.Placements))

	return out, nil
}

// CommitInsert plans and then performs the real inserts the plan calls for
func (o *orchestrator) CommitInsert(ctx context.Context, input *CommitInsertInput) (*CommitInsertOutput, error) {
	if err := validateInsert(input.ContainerID, input.Candidates); err != nil {
		return nil, err
	}

	container, err := o.container(ctx, input.ContainerID)
	if err != nil {
		return nil, err
	}

	unlock := o.containerLocks.lock(input.ContainerID)
	defer unlock()

	plan, err := o.plan(container, input.Candidates)
	if err != nil {
		return nil, err
	}

	committed := make([]CandidateResult, len(plan.Results))
	for i, res := range plan.Results {
		committed[i] = CandidateResult{Stack: res.Stack, Leftover: res.Stack.Count}
	}
	for _, p := range plan.Placements {
		sample := input.Candidates[p.Candidate].Stack
		accepted := container.Insert(p.Slot, sample.WithCount(p.Count))
		committed[p.Candidate].Accepted += accepted
		committed[p.Candidate].Leftover -= accepted

		if accepted < p.Count {
			slog.Warn("Container took less than planned",
				"plan_id", plan.PlanID,
				"container_id", input.ContainerID,
				"slot", p.Slot,
				"planned", p.Count,
				"accepted", accepted)
		}
	}

	slog.Info("Insert committed",
		"plan_id", plan.PlanID,
		"container_id", input.ContainerID,
		"placements", len(plan.Placements))

	return &CommitInsertOutput{
		PlanID:    plan.PlanID,
		Planned:   plan.Results,
		Committed: committed,
	}, nil
}

// CountInventory aggregates the contents of one or more containers
func (o *orchestrator) CountInventory(ctx context.Context, input *CountInventoryInput) (*CountInventoryOutput, error) {
	counter, err := o.count(ctx, input.ContainerIDs, input.Filter)
	if err != nil {
		return nil, err
	}

	return &CountInventoryOutput{
		Buckets: counter.Buckets(),
		Total:   counter.Total(),
	}, nil
}

// SnapshotCounts counts containers and persists the result for a node
func (o *orchestrator) SnapshotCounts(ctx context.Context, input *SnapshotCountsInput) (*SnapshotCountsOutput, error) {
	if input.NodeID == "" {
		return nil, errors.InvalidArgument("node ID is required")
	}

	counter, err := o.count(ctx, input.ContainerIDs, input.Filter)
	if err != nil {
		return nil, err
	}

	records, err := counter.Serialize()
	if err != nil {
		return nil, err
	}

	unlock := o.nodeLocks.lock(input.NodeID)
	defer unlock()

	saved, err := o.countsRepo.Save(ctx, countsrepo.SaveInput{NodeID: input.NodeID, Records: records})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save counts for node %s", input.NodeID)
	}

	slog.Info("Counts snapshot saved",
		"node_id", input.NodeID,
		"containers", len(input.ContainerIDs),
		"buckets", len(records),
		"total", saved.Snapshot.Total)

	return &SnapshotCountsOutput{
		Snapshot: saved.Snapshot,
		Buckets:  counter.Buckets(),
	}, nil
}

// GetCounts rehydrates a node's persisted counter
func (o *orchestrator) GetCounts(ctx context.Context, input *GetCountsInput) (*GetCountsOutput, error) {
	counter, snapshot, err := o.load(ctx, input.NodeID)
	if err != nil {
		return nil, err
	}

	return &GetCountsOutput{
		Buckets:   counter.Buckets(),
		Total:     counter.Total(),
		UpdatedAt: snapshot.UpdatedAt,
	}, nil
}

// ReserveStock removes units from a node's persisted counter
func (o *orchestrator) ReserveStock(ctx context.Context, input *ReserveStockInput) (*ReserveStockOutput, error) {
	if err := validateStock(input.NodeID, input.Stack, input.Quantity); err != nil {
		return nil, err
	}

	unlock := o.nodeLocks.lock(input.NodeID)
	defer unlock()

	counter, _, err := o.load(ctx, input.NodeID)
	if err != nil {
		return nil, err
	}

	removed := counter.Remove(input.Stack, input.Quantity)
	if removed.Count > 0 {
		if err := o.save(ctx, input.NodeID, counter); err != nil {
			return nil, err
		}
	}

	insufficient := removed.Count < input.Quantity
	if insufficient {
		slog.Warn("Insufficient stock",
			"node_id", input.NodeID,
			"kind", input.Stack.Kind.ID,
			"requested", input.Quantity,
			"removed", removed.Count)
	}

	return &ReserveStockOutput{
		Removed:      removed,
		Insufficient: insufficient,
		Total:        counter.Total(),
	}, nil
}

// ReleaseStock adds units back to a node's persisted counter
func (o *orchestrator) ReleaseStock(ctx context.Context, input *ReleaseStockInput) (*ReleaseStockOutput, error) {
	if err := validateStock(input.NodeID, input.Stack, input.Quantity); err != nil {
		return nil, err
	}

	unlock := o.nodeLocks.lock(input.NodeID)
	defer unlock()

	counter, _, err := o.load(ctx, input.NodeID)
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, err
		}
		counter = counts.New()
	}

	counter.Add(input.Stack, input.Quantity)
	if err := o.save(ctx, input.NodeID, counter); err != nil {
		return nil, err
	}

	return &ReleaseStockOutput{Total: counter.Total()}, nil
}

// ExtractStock pulls units out of a container and, unless simulating, out of
// the node's persisted counts
func (o *orchestrator) ExtractStock(ctx context.Context, input *ExtractStockInput) (*ExtractStockOutput, error) {
	if err := validateExtract(input); err != nil {
		return nil, err
	}

	container, err := o.container(ctx, input.ContainerID)
	if err != nil {
		return nil, err
	}

	unlock := o.containerLocks.lock(input.ContainerID)
	defer unlock()

	out := &ExtractStockOutput{}
	if input.Stack.Kind.ID != "" {
		out.Extracted = inventory.ExtractStack(container, input.Stack, input.Simulate)
		out.Insufficient = out.Extracted.Count < input.Stack.Count
	} else {
		out.Extracted = inventory.ExtractMatching(container, input.Filter.Matches, input.Simulate)
		out.Insufficient = out.Extracted.IsEmpty()
	}

	slog.Info("Stock extracted",
		"container_id", input.ContainerID,
		"kind", out.Extracted.Kind.ID,
		"extracted", out.Extracted.Count,
		"simulate", input.Simulate)

	if input.Simulate || input.NodeID == "" || out.Extracted.IsEmpty() {
		return out, nil
	}

	nodeUnlock := o.nodeLocks.lock(input.NodeID)
	defer nodeUnlock()

	counter, _, err := o.load(ctx, input.NodeID)
	if err != nil {
		if errors.IsNotFound(err) {
			slog.Warn("No counts stored for node, skipping update",
				"node_id", input.NodeID,
				"container_id", input.ContainerID)
			return out, nil
		}
		return nil, err
	}

	removed := counter.Remove(out.Extracted, out.Extracted.Count)
	if removed.Count < out.Extracted.Count {
		slog.Warn("Node counts held less than was extracted",
			"node_id", input.NodeID,
			"kind", out.Extracted.Kind.ID,
			"extracted", out.Extracted.Count,
			"counted", removed.Count)
	}
	if removed.Count > 0 {
		if err := o.save(ctx, input.NodeID, counter); err != nil {
			return nil, err
		}
	}

	out.NodeTotal = counter.Total()
	out.NodeUpdated = true
	return out, nil
}

// LearnFilter edits a copy of a card: it is optionally cleared, its tags are
// edited, and then it learns every kind held by the container
func (o *orchestrator) LearnFilter(ctx context.Context, input *LearnFilterInput) (*LearnFilterOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.Card == nil {
		vb.RequiredField("card")
	} else if !input.Card.Mode.Valid() {
		vb.Fieldf("card.mode", "unknown mode %q", input.Card.Mode)
	}
	if input.ContainerID == "" && !input.Reset && len(input.AddTags) == 0 && len(input.RemoveTags) == 0 {
		vb.Field("container_id", "is required when the card is not otherwise edited")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	card := &filter.Card{
		Mode:      input.Card.Mode,
		MatchMeta: input.Card.MatchMeta,
		Stacks:    append([]items.Stack(nil), input.Card.Stacks...),
		Tags:      append([]string(nil), input.Card.Tags...),
	}
	if input.Reset {
		card.Clear()
	}
	for _, tag := range input.RemoveTags {
		card.RemoveTag(tag)
	}
	for _, tag := range input.AddTags {
		card.AddTag(tag)
	}

	added := 0
	if input.ContainerID != "" {
		container, err := o.container(ctx, input.ContainerID)
		if err != nil {
			return nil, err
		}
		added = card.Learn(container)
	}

	slog.Info("Filter learned",
		"container_id", input.ContainerID,
		"reset", input.Reset,
		"added", added,
		"listed", len(card.Stacks),
		"tags", len(card.Tags))

	return &LearnFilterOutput{Card: card, Added: added}, nil
}

func (o *orchestrator) plan(container inventory.Container, candidates []Candidate) (*PlanInsertOutput, error) {
	scratch, err := engine.NewScratch(container)
	if err != nil {
		return nil, err
	}

	out := &PlanInsertOutput{
		PlanID:  o.idGen.Generate(),
		Results: make([]CandidateResult, len(candidates)),
	}
	for i, cand := range candidates {
		before := scratch.Quantities()
		leftover := engine.ProbeInsert(container, scratch, cand.Stack, cand.Stack.Count, cand.InFlight)

		out.Results[i] = CandidateResult{
			Stack:    cand.Stack,
			Accepted: cand.Stack.Count - leftover,
			Leftover: leftover,
		}
		for slot, qty := range scratch.Quantities() {
			if delta := qty - before[slot]; delta > 0 {
				out.Placements = append(out.Placements, Placement{Candidate: i, Slot: slot, Count: delta})
			}
		}
	}
	return out, nil
}

func (o *orchestrator) count(ctx context.Context, ids []string, card *filter.Card) (*counts.Counter, error) {
	if len(ids) == 0 {
		return nil, errors.InvalidArgument("at least one container ID is required")
	}
	if card != nil && !card.Mode.Valid() {
		return nil, errors.InvalidArgumentf("unknown filter mode %q", card.Mode)
	}

	counter := counts.New()
	for _, id := range ids {
		container, err := o.container(ctx, id)
		if err != nil {
			return nil, err
		}
		if card == nil {
			counter.AddContainer(container)
			continue
		}
		counter.AddContainerFiltered(container, card.Matches)
	}
	return counter, nil
}

func (o *orchestrator) container(ctx context.Context, id string) (inventory.Store, error) {
	got, err := o.containerRepo.Get(ctx, containers.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return got.Container, nil
}

func (o *orchestrator) load(ctx context.Context, nodeID string) (*counts.Counter, *countsrepo.Snapshot, error) {
	if nodeID == "" {
		return nil, nil, errors.InvalidArgument("node ID is required")
	}

	got, err := o.countsRepo.Get(ctx, countsrepo.GetInput{NodeID: nodeID})
	if err != nil {
		return nil, nil, err
	}

	counter, err := counts.FromRecords(got.Snapshot.Records)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeDataLoss,
			fmt.Sprintf("stored counts for node %s are malformed", nodeID))
	}
	return counter, got.Snapshot, nil
}

func (o *orchestrator) save(ctx context.Context, nodeID string, counter *counts.Counter) error {
	records, err := counter.Serialize()
	if err != nil {
		return err
	}
	if _, err := o.countsRepo.Save(ctx, countsrepo.SaveInput{NodeID: nodeID, Records: records}); err != nil {
		return errors.Wrapf(err, "failed to save counts for node %s", nodeID)
	}
	return nil
}

func validateInsert(containerID string, candidates []Candidate) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("container_id", containerID, vb)
	if len(candidates) == 0 {
		vb.Field("candidates", "at least one candidate is required")
	}
	for i, cand := range candidates {
		errors.ValidateRequired(fmt.Sprintf("candidates[%d].kind", i), cand.Stack.Kind.ID, vb)
		errors.ValidateNonNegative(fmt.Sprintf("candidates[%d].count", i), cand.Stack.Count, vb)
	}
	return vb.Build()
}

func validateStock(nodeID string, stack items.Stack, quantity int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("node_id", nodeID, vb)
	errors.ValidateRequired("stack.kind", stack.Kind.ID, vb)
	errors.ValidatePositive("quantity", quantity, vb)
	return vb.Build()
}

func validateExtract(input *ExtractStockInput) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("container_id", input.ContainerID, vb)
	switch {
	case input.Stack.Kind.ID != "":
		errors.ValidatePositive("stack.count", input.Stack.Count, vb)
	case input.Filter == nil:
		vb.Field("stack", "a stack or a filter is required")
	case !input.Filter.Mode.Valid():
		vb.Fieldf("filter.mode", "unknown mode %q", input.Filter.Mode)
	}
	return vb.Build()
}

// keyedMutex hands out one mutex per key
type keyedMutex struct {
	locks sync.Map
}

func (k *keyedMutex) lock(key string) func() {
	mu, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
