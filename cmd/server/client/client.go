// Package client provides test commands for the planner gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/logistics-api/internal/handlers/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the planner",
	Long:  `Client commands allow you to exercise the planner by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(planInsertCmd)
	ClientCmd.AddCommand(commitInsertCmd)
	ClientCmd.AddCommand(countCmd)
	ClientCmd.AddCommand(snapshotCmd)
	ClientCmd.AddCommand(getCountsCmd)
	ClientCmd.AddCommand(reserveCmd)
	ClientCmd.AddCommand(releaseCmd)
	ClientCmd.AddCommand(extractCmd)
	ClientCmd.AddCommand(learnFilterCmd)
}

// createPlannerClient creates a planner service client
func createPlannerClient() (v1alpha1.PlannerServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewPlannerServiceClient(conn), cleanup, nil
}

type method func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

// invoke encodes req, calls the selected method and prints the response
func invoke(name string, pick func(v1alpha1.PlannerServiceClient) method, req any) error {
	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	in, err := v1alpha1.Encode(req)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := pick(client)(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", name, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
