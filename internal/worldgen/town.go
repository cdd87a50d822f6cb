package worldgen

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/random"
)

// TownSize is the edge length of a settlement map
const TownSize = 12

// TownEntrance is where the party appears when entering a settlement
var TownEntrance = entities.Hex{Q: 0, R: 6}

// GenerateTown lays out a settlement: a cobblestone plaza in the middle,
// dirt roads through it, random built up blocks holding shops and inns and
// an exit ring on the border. The whole town is explored and visible.
func GenerateTown(src random.Source) *entities.HexMap {
	town := &entities.HexMap{Width: TownSize, Height: TownSize, Cells: make([]entities.HexCell, 0, TownSize*TownSize)}

	for r := 0; r < TownSize; r++ {
		for q := 0; q < TownSize; q++ {
			terrain := entities.TerrainGrass
			poi := entities.POINone

			switch {
			case q >= 4 && q <= 7 && r >= 4 && r <= 7:
				terrain = entities.TerrainCobblestone
				if q == 5 && r == 5 {
					poi = entities.POIPlaza
				}
			case q == 5 || q == 6 || r == 5 || r == 6:
				terrain = entities.TerrainDirtRoad
			case random.Chance(src, 0.4):
				terrain = entities.TerrainCobblestone
				if random.Chance(src, 0.8) {
					poi = entities.POIShop
				} else if random.Chance(src, 0.9) {
					poi = entities.POIInn
				}
			}

			if q == 0 || r == 0 || q == TownSize-1 || r == TownSize-1 {
				terrain = entities.TerrainDirtRoad
				poi = entities.POIExit
			}

			town.Cells = append(town.Cells, entities.HexCell{
				Q:          q,
				R:          r,
				Terrain:    terrain,
				IsExplored: true,
				IsVisible:  true,
				Weather:    entities.WeatherNone,
				POI:        poi,
			})
		}
	}
	return town
}
