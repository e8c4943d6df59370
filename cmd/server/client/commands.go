package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/logistics-api/internal/handlers/api/v1alpha1"
)

var (
	containerIDs []string
	maxStack     int
	inFlight     bool
	filterMode   string
	filterItems  []string
	filterTags   []string
	nodeID       string
	simulate     bool
	reset        bool
	addTags      []string
	removeTags   []string
)

var planInsertCmd = &cobra.Command{
	Use:   "plan-insert [container-id] [item-id] [count]",
	Short: "Simulate inserting a stack into a container",
	Long: `Simulate an insert and see how much the container would take. Examples:

  plan-insert drawer-1 minecraft:cobblestone 50
  plan-insert chest-1 minecraft:sand 100 --in-flight`,
	Args: cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		req, err := insertRequest(args)
		if err != nil {
			return err
		}
		return invoke("plan insert", func(c v1alpha1.PlannerServiceClient) method { return c.PlanInsert }, req)
	},
}

var commitInsertCmd = &cobra.Command{
	Use:   "commit-insert [container-id] [item-id] [count]",
	Short: "Plan an insert and perform it",
	Long: `Plan an insert, then really insert what the plan placed. Examples:

  commit-insert chest-1 minecraft:sand 100`,
	Args: cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		req, err := insertRequest(args)
		if err != nil {
			return err
		}
		return invoke("commit insert", func(c v1alpha1.PlannerServiceClient) method { return c.CommitInsert }, req)
	},
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count the units held by containers",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("count inventory", func(c v1alpha1.PlannerServiceClient) method { return c.CountInventory },
			v1alpha1.CountRequest{ContainerIDs: containerIDs, Filter: modeFilter()})
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [node-id]",
	Short: "Count containers and store the result for a node",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("snapshot counts", func(c v1alpha1.PlannerServiceClient) method { return c.SnapshotCounts },
			v1alpha1.CountRequest{NodeID: args[0], ContainerIDs: containerIDs, Filter: modeFilter()})
	},
}

var getCountsCmd = &cobra.Command{
	Use:   "get-counts [node-id]",
	Short: "Show a node's stored counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("get counts", func(c v1alpha1.PlannerServiceClient) method { return c.GetCounts },
			v1alpha1.NodeRequest{NodeID: args[0]})
	},
}

var reserveCmd = &cobra.Command{
	Use:   "reserve [node-id] [item-id] [quantity]",
	Short: "Take units out of a node's stored counts",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		req, err := stockRequest(args)
		if err != nil {
			return err
		}
		return invoke("reserve stock", func(c v1alpha1.PlannerServiceClient) method { return c.ReserveStock }, req)
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release [node-id] [item-id] [quantity]",
	Short: "Return units to a node's stored counts",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		req, err := stockRequest(args)
		if err != nil {
			return err
		}
		return invoke("release stock", func(c v1alpha1.PlannerServiceClient) method { return c.ReleaseStock }, req)
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [container-id] [item-id] [count]",
	Short: "Pull units out of a container",
	Long: `Pull units of an item out of a container, or one unit of whatever the
filter flags admit when no item is given. Examples:

  extract chest-1 minecraft:cobblestone 16 --node node-1
  extract chest-1 --filter-tags forge:ores --simulate`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(_ *cobra.Command, args []string) error {
		req := v1alpha1.ExtractStockRequest{
			ContainerID: args[0],
			NodeID:      nodeID,
			Simulate:    simulate,
		}
		switch len(args) {
		case 1:
			req.Filter = modeFilter()
			if req.Filter == nil {
				return fmt.Errorf("an item id or filter flags are required")
			}
		default:
			count := 1
			if len(args) == 3 {
				n, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("invalid count %q: %w", args[2], err)
				}
				count = n
			}
			req.Stack = &v1alpha1.Stack{ID: args[1], MaxStack: maxStack, Count: count}
		}
		return invoke("extract stock", func(c v1alpha1.PlannerServiceClient) method { return c.ExtractStock }, req)
	},
}

var learnFilterCmd = &cobra.Command{
	Use:   "learn-filter [container-id]",
	Short: "Edit a filter and teach it a container's items",
	Long: `Build a filter from flags, optionally clear and retag it, then add every
item the container holds. The resulting filter is printed. Examples:

  learn-filter chest-1 --filter-mode blacklist
  learn-filter --filter-tags forge:ores --add-tags forge:gems --remove-tags forge:ores
  learn-filter chest-1 --filter-items minecraft:dirt --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		req := v1alpha1.LearnFilterRequest{
			Filter:     flagFilter(),
			Reset:      reset,
			AddTags:    addTags,
			RemoveTags: removeTags,
		}
		if len(args) == 1 {
			req.ContainerID = args[0]
		}
		return invoke("learn filter", func(c v1alpha1.PlannerServiceClient) method { return c.LearnFilter }, req)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{planInsertCmd, commitInsertCmd} {
		cmd.Flags().IntVar(&maxStack, "max-stack", 64, "Natural stack limit of the item")
		cmd.Flags().BoolVar(&inFlight, "in-flight", false, "Treat the stack as already travelling to the container")
	}

	for _, cmd := range []*cobra.Command{countCmd, snapshotCmd} {
		cmd.Flags().StringSliceVar(&containerIDs, "containers", nil, "Containers to count")
		_ = cmd.MarkFlagRequired("containers")
	}

	for _, cmd := range []*cobra.Command{countCmd, snapshotCmd, extractCmd, learnFilterCmd} {
		cmd.Flags().StringVar(&filterMode, "filter-mode", "whitelist", "Filter mode, whitelist or blacklist")
		cmd.Flags().StringSliceVar(&filterItems, "filter-items", nil, "Item ids listed by the filter")
		cmd.Flags().StringSliceVar(&filterTags, "filter-tags", nil, "Tags listed by the filter")
	}

	for _, cmd := range []*cobra.Command{reserveCmd, releaseCmd, extractCmd} {
		cmd.Flags().IntVar(&maxStack, "max-stack", 64, "Natural stack limit of the item")
	}

	extractCmd.Flags().StringVar(&nodeID, "node", "", "Node whose stored counts the extraction is taken from")
	extractCmd.Flags().BoolVar(&simulate, "simulate", false, "Report what would be pulled without pulling it")

	learnFilterCmd.Flags().BoolVar(&reset, "reset", false, "Clear the filter's items and tags first")
	learnFilterCmd.Flags().StringSliceVar(&addTags, "add-tags", nil, "Tags to add to the filter")
	learnFilterCmd.Flags().StringSliceVar(&removeTags, "remove-tags", nil, "Tags to remove from the filter")
}

func insertRequest(args []string) (v1alpha1.InsertRequest, error) {
	count, err := strconv.Atoi(args[2])
	if err != nil {
		return v1alpha1.InsertRequest{}, fmt.Errorf("invalid count %q: %w", args[2], err)
	}
	return v1alpha1.InsertRequest{
		ContainerID: args[0],
		Candidates: []v1alpha1.Candidate{{
			Stack:    v1alpha1.Stack{ID: args[1], MaxStack: maxStack, Count: count},
			InFlight: inFlight,
		}},
	}, nil
}

func stockRequest(args []string) (v1alpha1.StockRequest, error) {
	quantity, err := strconv.Atoi(args[2])
	if err != nil {
		return v1alpha1.StockRequest{}, fmt.Errorf("invalid quantity %q: %w", args[2], err)
	}
	return v1alpha1.StockRequest{
		NodeID:   args[0],
		Stack:    v1alpha1.Stack{ID: args[1], MaxStack: maxStack, Count: 1},
		Quantity: quantity,
	}, nil
}

// modeFilter builds the filter from flags; nil when nothing is listed
func modeFilter() *v1alpha1.Filter {
	if len(filterItems) == 0 && len(filterTags) == 0 {
		return nil
	}
	f := flagFilter()
	return &f
}

func flagFilter() v1alpha1.Filter {
	f := v1alpha1.Filter{Mode: filterMode, Tags: filterTags}
	for _, id := range filterItems {
		f.Stacks = append(f.Stacks, v1alpha1.Stack{ID: id, Count: 1})
	}
	return f
}
