package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/pathfinding"
	"github.com/KirkDiggler/rpg-tactics/internal/worldgen"
)

var (
	fromHex string
	toHex   string
)

var pathfindCmd = &cobra.Command{
	Use:   "pathfind",
	Short: "Plan an overworld route between two hexes",
	RunE:  runPathfind,
}

func init() {
	addWorldFlags(pathfindCmd)
	pathfindCmd.Flags().StringVar(&dimension, "dimension", string(entities.DimensionNormal), "NORMAL or SHADOW")
	pathfindCmd.Flags().StringVar(&fromHex, "from", fmt.Sprintf("%d,%d", worldgen.SpawnHex.Q, worldgen.SpawnHex.R), "start hex as q,r")
	pathfindCmd.Flags().StringVar(&toHex, "to", "", "goal hex as q,r")
	_ = pathfindCmd.MarkFlagRequired("to")
}

func parseHex(s string) (entities.Hex, error) {
	var h entities.Hex
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d,%d", &h.Q, &h.R); err != nil {
		return h, fmt.Errorf("hex %q is not q,r: %w", s, err)
	}
	return h, nil
}

func runPathfind(cmd *cobra.Command, args []string) error {
	from, err := parseHex(fromHex)
	if err != nil {
		return err
	}
	to, err := parseHex(toHex)
	if err != nil {
		return err
	}

	s := resolveSeed()
	worlds, err := generateWorlds(cmd.Context(), s)
	if err != nil {
		return err
	}
	m := worlds.Map(entities.Dimension(strings.ToUpper(dimension)))

	path, ok := pathfinding.FindHexPath(m, from, to)
	if !ok {
		fmt.Printf("seed %d: no route from %v to %v\n", s, from, to)
		return nil
	}

	cost := pathfinding.Cost[entities.Hex](pathfinding.NewHexGrid(m), from, path)
	fmt.Printf("seed %d: %d steps, cost %.1f\n\n", s, len(path), cost)
	fmt.Print(render(m, path))
	return nil
}
