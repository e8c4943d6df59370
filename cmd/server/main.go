// Package main is the entry point for the logistics planner
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/logistics-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "logistics-api",
	Short: "Logistics planner gRPC server",
	Long:  `Logistics API simulates inserts into containers with hidden capacity and keeps per-node inventory counts.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
