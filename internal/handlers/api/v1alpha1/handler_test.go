package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/logistics-api/internal/counts"
	"github.com/KirkDiggler/logistics-api/internal/entities/filter"
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/logistics-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/logistics-api/internal/orchestrators/routing"
	routingmock "github.com/KirkDiggler/logistics-api/internal/orchestrators/routing/mock"
	countsrepo "github.com/KirkDiggler/logistics-api/internal/repositories/counts"
)

var cobble = items.Kind{ID: "minecraft:cobblestone", MaxStackSize: 64}

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRouting *routingmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRouting = routingmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RoutingService: s.mockRouting})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(v map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(v)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestPlanInsert() {
	s.mockRouting.EXPECT().
		PlanInsert(s.ctx, &routing.PlanInsertInput{
			ContainerID: "drawer-1",
			Candidates: []routing.Candidate{
				{Stack: items.Stack{Kind: cobble, Meta: items.Metadata{"name": "Rocky"}, Count: 50}, InFlight: true},
			},
		}).
		Return(&routing.PlanInsertOutput{
			PlanID: "plan_1",
			Results: []routing.CandidateResult{
				{Stack: items.New(cobble, 50), Accepted: 10, Leftover: 40},
			},
			Placements: []routing.Placement{{Candidate: 0, Slot: 0, Count: 10}},
		}, nil)

	resp, err := s.handler.PlanInsert(s.ctx, s.request(map[string]any{
		"container_id": "drawer-1",
		"candidates": []any{
			map[string]any{
				"stack":     map[string]any{"id": cobble.ID, "count": 50, "meta": map[string]any{"name": "Rocky"}},
				"in_flight": true,
			},
		},
	}))
	s.Require().NoError(err)

	var out v1alpha1.PlanInsertResponse
	s.Require().NoError(v1alpha1.Decode(resp, &out))
	s.Equal("plan_1", out.PlanID)
	s.Equal(10, out.Results[0].Accepted)
	s.Equal(40, out.Results[0].Leftover)
	s.Equal(64, out.Results[0].Stack.MaxStack)
	s.Equal([]v1alpha1.Placement{{Candidate: 0, Slot: 0, Count: 10}}, out.Placements)
}

func (s *HandlerTestSuite) TestPlanInsertMalformed() {
	resp, err := s.handler.PlanInsert(s.ctx, s.request(map[string]any{
		"candidates": "not a list",
	}))
	s.Nil(resp)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestPlanInsertError() {
	s.mockRouting.EXPECT().
		PlanInsert(s.ctx, gomock.Any()).
		Return(nil, errors.NotFoundf("container %s not found", "gone").WithMeta("container_id", "gone"))

	_, err := s.handler.PlanInsert(s.ctx, s.request(map[string]any{"container_id": "gone"}))
	s.Equal(codes.NotFound, status.Code(err))

	back := errors.FromGRPCError(err)
	s.True(errors.IsNotFound(back))
	s.Equal("gone", errors.GetMeta(back)["container_id"])
}

func (s *HandlerTestSuite) TestCommitInsert() {
	s.mockRouting.EXPECT().
		CommitInsert(s.ctx, gomock.Any()).
		Return(&routing.CommitInsertOutput{
			PlanID:    "plan_2",
			Planned:   []routing.CandidateResult{{Stack: items.New(cobble, 20), Accepted: 20}},
			Committed: []routing.CandidateResult{{Stack: items.New(cobble, 20), Accepted: 5, Leftover: 15}},
		}, nil)

	resp, err := s.handler.CommitInsert(s.ctx, s.request(map[string]any{"container_id": "chest-1"}))
	s.Require().NoError(err)

	var out v1alpha1.CommitInsertResponse
	s.Require().NoError(v1alpha1.Decode(resp, &out))
	s.Equal(20, out.Planned[0].Accepted)
	s.Equal(15, out.Committed[0].Leftover)
}

func (s *HandlerTestSuite) TestCountInventoryWithFilter() {
	s.mockRouting.EXPECT().
		CountInventory(s.ctx, &routing.CountInventoryInput{
			ContainerIDs: []string{"chest-1"},
			Filter: &filter.Card{
				Mode:   filter.ModeBlacklist,
				Stacks: []items.Stack{items.New(cobble, 1)},
			},
		}).
		Return(&routing.CountInventoryOutput{
			Buckets: []counts.Bucket{{Sample: items.New(cobble, 1), Count: 70}},
			Total:   70,
		}, nil)

	resp, err := s.handler.CountInventory(s.ctx, s.request(map[string]any{
		"container_ids": []any{"chest-1"},
		"filter": map[string]any{
			"mode":   "blacklist",
			"stacks": []any{map[string]any{"id": cobble.ID, "count": 1}},
		},
	}))
	s.Require().NoError(err)

	var out v1alpha1.CountsResponse
	s.Require().NoError(v1alpha1.Decode(resp, &out))
	s.Equal(70, out.Total)
	s.Equal(cobble.ID, out.Buckets[0].Stack.ID)
	s.Equal(70, out.Buckets[0].Count)
}

func (s *HandlerTestSuite) TestSnapshotCounts() {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockRouting.EXPECT().
		SnapshotCounts(s.ctx, &routing.SnapshotCountsInput{NodeID: "node-1", ContainerIDs: []string{"chest-1"}}).
		Return(&routing.SnapshotCountsOutput{
			Snapshot: &countsrepo.Snapshot{NodeID: "node-1", Total: 80, UpdatedAt: at},
		}, nil)

	resp, err := s.handler.SnapshotCounts(s.ctx, s.request(map[string]any{
		"node_id":       "node-1",
		"container_ids": []any{"chest-1"},
	}))
	s.Require().NoError(err)

	var out v1alpha1.CountsResponse
	s.Require().NoError(v1alpha1.Decode(resp, &out))
	s.Equal("node-1", out.NodeID)
	s.Equal(80, out.Total)
	s.Equal("2026-03-01T12:00:00Z", out.UpdatedAt)
}

func (s *HandlerTestSuite) TestReserveStock() {
	s.mockRouting.EXPECT().
		ReserveStock(s.ctx, &routing.ReserveStockInput{
			NodeID:   "node-1",
			Stack:    items.New(cobble, 0),
			Quantity: 90,
		}).
		Return(&routing.ReserveStockOutput{
			Removed:      items.New(cobble, 70),
			Insufficient: true,
			Total:        10,
		}, nil)

	resp, err := s.handler.ReserveStock(s.ctx, s.request(map[string]any{
		"node_id":  "node-1",
		"stack":    map[string]any{"id": cobble.ID},
		"quantity": 90,
	}))
	s.Require().NoError(err)

	var out v1alpha1.ReserveStockResponse
	s.Require().NoError(v1alpha1.Decode(resp, &out))
	s.Equal(70, out.Removed.Count)
	s.True(out.Insufficient)
	s.Equal(10, out.Total)
}

func (s *HandlerTestSuite) TestReleaseStockValidationError() {
	s.mockRouting.EXPECT().
		ReleaseStock(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("validation failed: quantity: must be positive, got 0"))

	_, err := s.handler.ReleaseStock(s.ctx, s.request(map[string]any{"node_id": "node-1"}))
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(status.Convert(err).Message(), "quantity")
}

func (s *HandlerTestSuite) TestLearnFilter() {
	s.mockRouting.EXPECT().
		LearnFilter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *routing.LearnFilterInput) (*routing.LearnFilterOutput, error) {
			s.Equal("chest-1", input.ContainerID)
			s.Equal(filter.ModeWhitelist, input.Card.Mode)
			return &routing.LearnFilterOutput{
				Card:  &filter.Card{Mode: filter.ModeWhitelist, Stacks: []items.Stack{items.New(cobble, 1)}},
				Added: 1,
			}, nil
		})

	resp, err := s.handler.LearnFilter(s.ctx, s.request(map[string]any{
		"container_id": "chest-1",
		"filter":       map[string]any{"mode": "whitelist"},
	}))
	s.Require().NoError(err)

	var out v1alpha1.LearnFilterResponse
	s.Require().NoError(v1alpha1.Decode(resp, &out))
	s.Equal(1, out.Added)
	s.Equal(cobble.ID, out.Filter.Stacks[0].ID)
}

func (s *HandlerTestSuite) TestLearnFilterResetAndTags() {
	s.mockRouting.EXPECT().
		LearnFilter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *routing.LearnFilterInput) (*routing.LearnFilterOutput, error) {
			s.Empty(input.ContainerID)
			s.True(input.Reset)
			s.Equal([]string{"forge:ores"}, input.Card.Tags)
			s.Equal([]string{"forge:gems"}, input.AddTags)
			s.Equal([]string{"forge:ores"}, input.RemoveTags)
			return &routing.LearnFilterOutput{
				Card: &filter.Card{Mode: filter.ModeBlacklist, Tags: []string{"forge:gems"}},
			}, nil
		})

	resp, err := s.handler.LearnFilter(s.ctx, s.request(map[string]any{
		"filter":      map[string]any{"mode": "blacklist", "tags": []any{"Forge:Ores"}},
		"reset":       true,
		"add_tags":    []any{"forge:gems"},
		"remove_tags": []any{"forge:ores"},
	}))
	s.Require().NoError(err)

	var out v1alpha1.LearnFilterResponse
	s.Require().NoError(v1alpha1.Decode(resp, &out))
	s.Equal("blacklist", out.Filter.Mode)
	s.Equal([]string{"forge:gems"}, out.Filter.Tags)
	s.Empty(out.Filter.Stacks)
}

func (s *HandlerTestSuite) TestExtractStock() {
	s.mockRouting.EXPECT().
		ExtractStock(s.ctx, &routing.ExtractStockInput{
			ContainerID: "chest-1",
			NodeID:      "node-1",
			Stack:       items.New(cobble, 66),
		}).
		Return(&routing.ExtractStockOutput{
			Extracted:   items.New(cobble, 66),
			NodeUpdated: true,
			NodeTotal:   14,
		}, nil)

	resp, err := s.handler.ExtractStock(s.ctx, s.request(map[string]any{
		"container_id": "chest-1",
		"node_id":      "node-1",
		"stack":        map[string]any{"id": cobble.ID, "count": 66},
	}))
	s.Require().NoError(err)

	var out v1alpha1.ExtractStockResponse
	s.Require().NoError(v1alpha1.Decode(resp, &out))
	s.Equal(cobble.ID, out.Extracted.ID)
	s.Equal(66, out.Extracted.Count)
	s.False(out.Insufficient)
	s.True(out.NodeUpdated)
	s.Equal(14, out.NodeTotal)
}

func (s *HandlerTestSuite) TestExtractStockByFilter() {
	ore := items.Kind{ID: "minecraft:iron_ore", MaxStackSize: 64, Tags: []string{"forge:ores"}}
	s.mockRouting.EXPECT().
		ExtractStock(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *routing.ExtractStockInput) (*routing.ExtractStockOutput, error) {
			s.True(input.Simulate)
			s.True(input.Stack.IsEmpty())
			s.Require().NotNil(input.Filter)
			s.Equal(filter.ModeWhitelist, input.Filter.Mode)
			s.True(input.Filter.Matches(items.New(ore, 1)))
			return &routing.ExtractStockOutput{Extracted: items.New(ore, 1)}, nil
		})

	resp, err := s.handler.ExtractStock(s.ctx, s.request(map[string]any{
		"container_id": "chest-1",
		"filter":       map[string]any{"mode": "whitelist", "tags": []any{"forge:ores"}},
		"simulate":     true,
	}))
	s.Require().NoError(err)

	var out v1alpha1.ExtractStockResponse
	s.Require().NoError(v1alpha1.Decode(resp, &out))
	s.Equal(1, out.Extracted.Count)
	s.Equal([]string{"forge:ores"}, out.Extracted.Tags)
	s.False(out.NodeUpdated)
}

func (s *HandlerTestSuite) TestExtractStockNotFound() {
	s.mockRouting.EXPECT().
		ExtractStock(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("container gone not found"))

	_, err := s.handler.ExtractStock(s.ctx, s.request(map[string]any{
		"container_id": "gone",
		"stack":        map[string]any{"id": cobble.ID, "count": 1},
	}))
	s.Equal(codes.NotFound, status.Code(err))
}
