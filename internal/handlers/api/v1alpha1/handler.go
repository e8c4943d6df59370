// Package v1alpha1 handles the planner gRPC service
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/logistics-api/internal/errors"
	"github.com/KirkDiggler/logistics-api/internal/orchestrators/routing"
)

// HandlerConfig holds dependencies for the planner handler
type HandlerConfig struct {
	RoutingService routing.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.RoutingService == nil {
		return errors.InvalidArgument("routing service is required")
	}
	return nil
}

// Handler implements PlannerServiceServer on top of the routing orchestrator
type Handler struct {
	UnimplementedPlannerServiceServer
	routing routing.Service
}

// Ensure Handler implements PlannerServiceServer
var _ PlannerServiceServer = (*Handler)(nil)

// NewHandler creates a new planner handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{routing: cfg.RoutingService}, nil
}

// PlanInsert simulates inserting candidates into a container
func (h *Handler) PlanInsert(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in InsertRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.routing.PlanInsert(ctx, &routing.PlanInsertInput{
		ContainerID: in.ContainerID,
		Candidates:  toCandidates(in.Candidates),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(PlanInsertResponse{
		PlanID:     out.PlanID,
		Results:    fromResults(out.Results),
		Placements: fromPlacements(out.Placements),
	})
}

// CommitInsert plans and performs the inserts
func (h *Handler) CommitInsert(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in InsertRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.routing.CommitInsert(ctx, &routing.CommitInsertInput{
		ContainerID: in.ContainerID,
		Candidates:  toCandidates(in.Candidates),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(CommitInsertResponse{
		PlanID:    out.PlanID,
		Planned:   fromResults(out.Planned),
		Committed: fromResults(out.Committed),
	})
}

// CountInventory counts one or more containers
func (h *Handler) CountInventory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CountRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.routing.CountInventory(ctx, &routing.CountInventoryInput{
		ContainerIDs: in.ContainerIDs,
		Filter:       in.Filter.ToCard(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(CountsResponse{
		Buckets: fromBuckets(out.Buckets),
		Total:   out.Total,
	})
}

// SnapshotCounts counts containers and persists the result for a node
func (h *Handler) SnapshotCounts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in CountRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.routing.SnapshotCounts(ctx, &routing.SnapshotCountsInput{
		NodeID:       in.NodeID,
		ContainerIDs: in.ContainerIDs,
		Filter:       in.Filter.ToCard(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(CountsResponse{
		NodeID:    out.Snapshot.NodeID,
		Buckets:   fromBuckets(out.Buckets),
		Total:     out.Snapshot.Total,
		UpdatedAt: formatTime(out.Snapshot.UpdatedAt),
	})
}

// GetCounts returns a node's persisted counts
func (h *Handler) GetCounts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in NodeRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.routing.GetCounts(ctx, &routing.GetCountsInput{NodeID: in.NodeID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(CountsResponse{
		NodeID:    in.NodeID,
		Buckets:   fromBuckets(out.Buckets),
		Total:     out.Total,
		UpdatedAt: formatTime(out.UpdatedAt),
	})
}

// ReserveStock takes units out of a node's counts
func (h *Handler) ReserveStock(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in StockRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.routing.ReserveStock(ctx, &routing.ReserveStockInput{
		NodeID:   in.NodeID,
		Stack:    in.Stack.ToStack(),
		Quantity: in.Quantity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(ReserveStockResponse{
		Removed:      FromStack(out.Removed),
		Insufficient: out.Insufficient,
		Total:        out.Total,
	})
}

// ReleaseStock returns units to a node's counts
func (h *Handler) ReleaseStock(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in StockRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.routing.ReleaseStock(ctx, &routing.ReleaseStockInput{
		NodeID:   in.NodeID,
		Stack:    in.Stack.ToStack(),
		Quantity: in.Quantity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(ReleaseStockResponse{Total: out.Total})
}

// ExtractStock pulls units out of a container
func (h *Handler) ExtractStock(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ExtractStockRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	input := &routing.ExtractStockInput{
		ContainerID: in.ContainerID,
		NodeID:      in.NodeID,
		Filter:      in.Filter.ToCard(),
		Simulate:    in.Simulate,
	}
	if in.Stack != nil {
		input.Stack = in.Stack.ToStack()
	}

	out, err := h.routing.ExtractStock(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(ExtractStockResponse{
		Extracted:    FromStack(out.Extracted),
		Insufficient: out.Insufficient,
		NodeUpdated:  out.NodeUpdated,
		NodeTotal:    out.NodeTotal,
	})
}

// LearnFilter edits a filter and adds a container's kinds to it
func (h *Handler) LearnFilter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in LearnFilterRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.routing.LearnFilter(ctx, &routing.LearnFilterInput{
		ContainerID: in.ContainerID,
		Card:        in.Filter.ToCard(),
		Reset:       in.Reset,
		AddTags:     in.AddTags,
		RemoveTags:  in.RemoveTags,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(LearnFilterResponse{
		Filter: FromCard(out.Card),
		Added:  out.Added,
	})
}

func respond(v any) (*structpb.Struct, error) {
	out, err := Encode(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
