package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/random"
	"github.com/KirkDiggler/rpg-tactics/internal/worldgen"
)

var (
	width     int
	height    int
	noiseKind string
	dimension string
)

var worldgenCmd = &cobra.Command{
	Use:   "worldgen",
	Short: "Generate both worlds and print one of them",
	RunE:  runWorldgen,
}

func init() {
	addWorldFlags(worldgenCmd)
	worldgenCmd.Flags().StringVar(&dimension, "dimension", string(entities.DimensionNormal), "NORMAL or SHADOW")
}

func addWorldFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", worldgen.DefaultWidth, "map width in hexes")
	cmd.Flags().IntVar(&height, "height", worldgen.DefaultHeight, "map height in hexes")
	cmd.Flags().StringVar(&noiseKind, "noise", string(worldgen.NoiseValue), "value or simplex")
}

// resolveSeed returns the --seed flag, or a fresh one when it is zero
func resolveSeed() int64 {
	if seed != 0 {
		return seed
	}
	return random.EntropySeed()
}

func generateWorlds(ctx context.Context, s int64) (*worldgen.GenerateOutput, error) {
	gen, err := worldgen.NewGenerator(&worldgen.Config{
		Noise:  worldgen.NewNoise(worldgen.NoiseKind(noiseKind), s),
		Random: random.NewSeeded(s),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	settings := entities.Difficulty(strings.ToUpper(difficulty)).Settings()
	return gen.Generate(ctx, &worldgen.GenerateInput{
		Width:            width,
		Height:           height,
		EncounterRateMod: settings.EncounterRateMod,
	})
}

func runWorldgen(cmd *cobra.Command, args []string) error {
	s := resolveSeed()
	worlds, err := generateWorlds(cmd.Context(), s)
	if err != nil {
		return err
	}

	m := worlds.Map(entities.Dimension(strings.ToUpper(dimension)))
	fmt.Printf("seed %d, %dx%d, %s\n\n", s, m.Width, m.Height, strings.ToUpper(dimension))
	fmt.Print(render(m, nil))
	fmt.Println()

	counts := map[entities.TerrainType]int{}
	portals, encounters := 0, 0
	for _, c := range m.Cells {
		counts[c.Terrain]++
		if c.HasPortal {
			portals++
		}
		if c.HasEncounter {
			encounters++
		}
	}
	terrains := make([]string, 0, len(counts))
	for t := range counts {
		terrains = append(terrains, string(t))
	}
	sort.Strings(terrains)
	for _, t := range terrains {
		fmt.Printf("%-12s %4d\n", t, counts[entities.TerrainType(t)])
	}
	fmt.Printf("%-12s %4d\n%-12s %4d\n", "portals", portals, "encounters", encounters)
	return nil
}

var glyphs = map[entities.TerrainType]byte{
	entities.TerrainWater:     '~',
	entities.TerrainPlains:    '.',
	entities.TerrainGrass:     ',',
	entities.TerrainDesert:    ':',
	entities.TerrainForest:    'f',
	entities.TerrainJungle:    'j',
	entities.TerrainSwamp:     's',
	entities.TerrainTundra:    '-',
	entities.TerrainTaiga:     't',
	entities.TerrainMountain:  '^',
	entities.TerrainVillage:   'V',
	entities.TerrainCastle:    'C',
	entities.TerrainRuins:     'R',
	entities.TerrainChasm:     ' ',
	entities.TerrainLava:      '%',
	entities.TerrainCaveFloor: '_',
	entities.TerrainFungus:    '*',
}

// render draws the map with odd rows shifted half a cell. Portals show as
// 'O' and path cells as '#'.
func render(m *entities.HexMap, path []entities.Hex) string {
	onPath := map[entities.Hex]bool{}
	for _, h := range path {
		onPath[h] = true
	}

	var b strings.Builder
	for r := 0; r < m.Height; r++ {
		if r%2 == 1 {
			b.WriteByte(' ')
		}
		for q := 0; q < m.Width; q++ {
			cell, _ := m.Cell(entities.Hex{Q: q, R: r})
			g, ok := glyphs[cell.Terrain]
			if !ok {
				g = '?'
			}
			switch {
			case onPath[cell.Hex()]:
				g = '#'
			case cell.HasPortal:
				g = 'O'
			}
			b.WriteByte(g)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
