package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/logistics-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/logistics-api/internal/orchestrators/routing"
	"github.com/KirkDiggler/logistics-api/internal/pkg/clock"
	"github.com/KirkDiggler/logistics-api/internal/pkg/idgen"
	"github.com/KirkDiggler/logistics-api/internal/repositories/containers"
	countsrepo "github.com/KirkDiggler/logistics-api/internal/repositories/counts"
	"github.com/KirkDiggler/logistics-api/internal/testutils"
)

// ServiceTestSuite drives the planner service over an in-process connection
type ServiceTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	client v1alpha1.PlannerServiceClient
	ctx    context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	containerRepo := containers.NewInMemoryRepository()
	_, err := containerRepo.Register(s.ctx, containers.RegisterInput{ID: testutils.ChestID, Container: testutils.CreateTestChest()})
	s.Require().NoError(err)
	_, err = containerRepo.Register(s.ctx, containers.RegisterInput{ID: testutils.DrawerID, Container: testutils.CreateTestDrawer()})
	s.Require().NoError(err)

	svc, err := routing.NewOrchestrator(&routing.Config{
		ContainerRepo: containerRepo,
		CountsRepo:    countsrepo.NewInMemoryRepository(&clock.Fixed{At: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}),
		IDGenerator:   idgen.NewSequential("plan"),
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RoutingService: svc})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterPlannerServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewPlannerServiceClient(s.conn)
}

func (s *ServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *ServiceTestSuite) call(fn func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error), req any, out any) error {
	in, err := v1alpha1.Encode(req)
	s.Require().NoError(err)

	resp, err := fn(s.ctx, in)
	if err != nil {
		return err
	}
	s.Require().NoError(v1alpha1.Decode(resp, out))
	return nil
}

func (s *ServiceTestSuite) cobble(count int) v1alpha1.Stack {
	return v1alpha1.Stack{ID: testutils.Cobblestone.ID, MaxStack: 64, Count: count}
}

func (s *ServiceTestSuite) TestPlanInsertHonorsHiddenCeiling() {
	var out v1alpha1.PlanInsertResponse
	err := s.call(s.client.PlanInsert, v1alpha1.InsertRequest{
		ContainerID: testutils.DrawerID,
		Candidates:  []v1alpha1.Candidate{{Stack: s.cobble(50)}},
	}, &out)
	s.Require().NoError(err)

	s.Equal("plan_1", out.PlanID)
	s.Require().Len(out.Results, 1)
	s.Equal(10, out.Results[0].Accepted)
	s.Equal(40, out.Results[0].Leftover)
}

func (s *ServiceTestSuite) TestPlanThenCommit() {
	req := v1alpha1.InsertRequest{
		ContainerID: testutils.ChestID,
		Candidates:  []v1alpha1.Candidate{{Stack: s.cobble(100)}},
	}

	var plan v1alpha1.PlanInsertResponse
	s.Require().NoError(s.call(s.client.PlanInsert, req, &plan))
	s.Equal(100, plan.Results[0].Accepted)

	var commit v1alpha1.CommitInsertResponse
	s.Require().NoError(s.call(s.client.CommitInsert, req, &commit))
	s.Equal(plan.Results, commit.Planned)
	s.Equal(100, commit.Committed[0].Accepted)

	var counted v1alpha1.CountsResponse
	s.Require().NoError(s.call(s.client.CountInventory, v1alpha1.CountRequest{
		ContainerIDs: []string{testutils.ChestID},
	}, &counted))
	s.Equal(180, counted.Total)
}

func (s *ServiceTestSuite) TestSnapshotReserveRelease() {
	var snap v1alpha1.CountsResponse
	s.Require().NoError(s.call(s.client.SnapshotCounts, v1alpha1.CountRequest{
		NodeID:       testutils.NodeID,
		ContainerIDs: []string{testutils.ChestID},
	}, &snap))
	s.Equal(80, snap.Total)
	s.Equal("2026-03-01T00:00:00Z", snap.UpdatedAt)

	var reserved v1alpha1.ReserveStockResponse
	s.Require().NoError(s.call(s.client.ReserveStock, v1alpha1.StockRequest{
		NodeID:   testutils.NodeID,
		Stack:    s.cobble(0),
		Quantity: 90,
	}, &reserved))
	s.Equal(70, reserved.Removed.Count)
	s.True(reserved.Insufficient)
	s.Equal(10, reserved.Total)

	var released v1alpha1.ReleaseStockResponse
	s.Require().NoError(s.call(s.client.ReleaseStock, v1alpha1.StockRequest{
		NodeID:   testutils.NodeID,
		Stack:    s.cobble(0),
		Quantity: 5,
	}, &released))
	s.Equal(15, released.Total)

	var stored v1alpha1.CountsResponse
	s.Require().NoError(s.call(s.client.GetCounts, v1alpha1.NodeRequest{NodeID: testutils.NodeID}, &stored))
	s.Equal(15, stored.Total)
}

func (s *ServiceTestSuite) TestExtractUpdatesNodeCounts() {
	var snap v1alpha1.CountsResponse
	s.Require().NoError(s.call(s.client.SnapshotCounts, v1alpha1.CountRequest{
		NodeID:       testutils.NodeID,
		ContainerIDs: []string{testutils.ChestID},
	}, &snap))
	s.Equal(80, snap.Total)

	stack := s.cobble(66)
	req := v1alpha1.ExtractStockRequest{
		ContainerID: testutils.ChestID,
		NodeID:      testutils.NodeID,
		Stack:       &stack,
		Simulate:    true,
	}

	var simulated v1alpha1.ExtractStockResponse
	s.Require().NoError(s.call(s.client.ExtractStock, req, &simulated))
	s.Equal(66, simulated.Extracted.Count)
	s.False(simulated.NodeUpdated)

	req.Simulate = false
	var extracted v1alpha1.ExtractStockResponse
	s.Require().NoError(s.call(s.client.ExtractStock, req, &extracted))
	s.Equal(66, extracted.Extracted.Count)
	s.True(extracted.NodeUpdated)
	s.Equal(14, extracted.NodeTotal)

	var counted v1alpha1.CountsResponse
	s.Require().NoError(s.call(s.client.CountInventory, v1alpha1.CountRequest{
		ContainerIDs: []string{testutils.ChestID},
	}, &counted))
	s.Equal(14, counted.Total)

	var stored v1alpha1.CountsResponse
	s.Require().NoError(s.call(s.client.GetCounts, v1alpha1.NodeRequest{NodeID: testutils.NodeID}, &stored))
	s.Equal(14, stored.Total)
}

func (s *ServiceTestSuite) TestLearnFilterThenCount() {
	var learned v1alpha1.LearnFilterResponse
	s.Require().NoError(s.call(s.client.LearnFilter, v1alpha1.LearnFilterRequest{
		ContainerID: testutils.ChestID,
		Filter:      v1alpha1.Filter{Mode: "blacklist"},
	}, &learned))
	s.Equal(2, learned.Added)

	var counted v1alpha1.CountsResponse
	s.Require().NoError(s.call(s.client.CountInventory, v1alpha1.CountRequest{
		ContainerIDs: []string{testutils.ChestID},
		Filter:       &learned.Filter,
	}, &counted))
	s.Equal(0, counted.Total)
}

func (s *ServiceTestSuite) TestUnknownContainer() {
	var out v1alpha1.PlanInsertResponse
	err := s.call(s.client.PlanInsert, v1alpha1.InsertRequest{
		ContainerID: "missing",
		Candidates:  []v1alpha1.Candidate{{Stack: s.cobble(1)}},
	}, &out)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *ServiceTestSuite) TestGetCountsUnknownNode() {
	var out v1alpha1.CountsResponse
	err := s.call(s.client.GetCounts, v1alpha1.NodeRequest{NodeID: "nobody"}, &out)
	s.Equal(codes.NotFound, status.Code(err))
}
