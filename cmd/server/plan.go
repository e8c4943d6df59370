package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/orchestrators/routing"
	"github.com/KirkDiggler/logistics-api/internal/pkg/clock"
	"github.com/KirkDiggler/logistics-api/internal/pkg/idgen"
	countsrepo "github.com/KirkDiggler/logistics-api/internal/repositories/counts"
)

var (
	planContainer string
	planMaxStack  int
	planInFlight  bool
	planCommit    bool
)

var planCmd = &cobra.Command{
	Use:   "plan [item-id:count]...",
	Short: "Simulate inserts against a fixture without a server",
	Long: `Plan inserts offline against the containers described by a fixture. Examples:

  plan --fixture drawers.yaml --container drawer-1 minecraft:cobblestone:50
  plan --fixture chests.yaml --container chest-1 --commit minecraft:sand:100 minecraft:dirt:20`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&fixturePath, "fixture", "", "YAML file describing the containers")
	planCmd.Flags().StringVar(&planContainer, "container", "", "Container to insert into")
	planCmd.Flags().IntVar(&planMaxStack, "max-stack", items.DefaultMaxStackSize, "Natural stack limit of the offered items")
	planCmd.Flags().BoolVar(&planInFlight, "in-flight", false, "Treat candidates as already travelling to the container")
	planCmd.Flags().BoolVar(&planCommit, "commit", false, "Insert into the fixture after planning and report what it took")
	_ = planCmd.MarkFlagRequired("fixture")
	_ = planCmd.MarkFlagRequired("container")
}

func runPlan(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	candidates, err := parseCandidates(args, planMaxStack, planInFlight)
	if err != nil {
		return err
	}

	containerRepo, err := loadContainers(ctx, fixturePath)
	if err != nil {
		return err
	}

	svc, err := routing.NewOrchestrator(&routing.Config{
		ContainerRepo: containerRepo,
		CountsRepo:    countsrepo.NewInMemoryRepository(clock.New()),
		IDGenerator:   idgen.NewSequential("plan"),
	})
	if err != nil {
		return fmt.Errorf("failed to create routing orchestrator: %w", err)
	}

	if !planCommit {
		out, err := svc.PlanInsert(ctx, &routing.PlanInsertInput{
			ContainerID: planContainer,
			Candidates:  candidates,
		})
		if err != nil {
			return fmt.Errorf("failed to plan insert: %w", err)
		}

		fmt.Printf("Plan %s for %s\n", out.PlanID, planContainer)
		printResults(out.Results)
		if len(out.Placements) > 0 {
			fmt.Printf("\nPlacements:\n")
			for _, p := range out.Placements {
				fmt.Printf("  candidate %d -> slot %d: %d\n", p.Candidate, p.Slot, p.Count)
			}
		}
		return nil
	}

	out, err := svc.CommitInsert(ctx, &routing.CommitInsertInput{
		ContainerID: planContainer,
		Candidates:  candidates,
	})
	if err != nil {
		return fmt.Errorf("failed to commit insert: %w", err)
	}

	fmt.Printf("Plan %s for %s\n", out.PlanID, planContainer)
	fmt.Printf("\nPlanned:\n")
	printResults(out.Planned)
	fmt.Printf("\nCommitted:\n")
	printResults(out.Committed)
	return nil
}

// parseCandidates reads item-id:count arguments. Item ids may contain colons.
func parseCandidates(args []string, maxStack int, inFlight bool) ([]routing.Candidate, error) {
	out := make([]routing.Candidate, 0, len(args))
	for _, arg := range args {
		idx := strings.LastIndex(arg, ":")
		if idx <= 0 || idx == len(arg)-1 {
			return nil, fmt.Errorf("candidate %q must look like item-id:count", arg)
		}

		count, err := strconv.Atoi(arg[idx+1:])
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("candidate %q has an invalid count", arg)
		}

		out = append(out, routing.Candidate{
			Stack:    items.New(items.Kind{ID: arg[:idx], MaxStackSize: maxStack}, count),
			InFlight: inFlight,
		})
	}
	return out, nil
}

func printResults(results []routing.CandidateResult) {
	for i, r := range results {
		fmt.Printf("  [%d] %s: accepted %d, leftover %d\n", i, r.Stack.Kind.ID, r.Accepted, r.Leftover)
	}
}
