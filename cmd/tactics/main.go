// Package main is the command line entry point for the tactics simulation
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tactics/internal/pkg/logger"
)

var (
	seed       int64
	difficulty string
)

var rootCmd = &cobra.Command{
	Use:   "tactics",
	Short: "Turn based tactics simulation",
	Long:  `Generates the dual overworld, plans routes across it and plays seeded sessions headless.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.PersistentFlags().StringVar(&difficulty, "difficulty", "NORMAL", "EASY, NORMAL or HARD")

	rootCmd.AddCommand(worldgenCmd)
	rootCmd.AddCommand(pathfindCmd)
	rootCmd.AddCommand(simulateCmd)
}
