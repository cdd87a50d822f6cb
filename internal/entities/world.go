package entities

// TerrainType labels a map cell
type TerrainType string

// Overworld terrain
const (
	TerrainWater    TerrainType = "WATER"
	TerrainPlains   TerrainType = "PLAINS"
	TerrainDesert   TerrainType = "DESERT"
	TerrainGrass    TerrainType = "GRASS"
	TerrainForest   TerrainType = "FOREST"
	TerrainJungle   TerrainType = "JUNGLE"
	TerrainSwamp    TerrainType = "SWAMP"
	TerrainTundra   TerrainType = "TUNDRA"
	TerrainTaiga    TerrainType = "TAIGA"
	TerrainMountain TerrainType = "MOUNTAIN"
	TerrainVillage  TerrainType = "VILLAGE"
	TerrainCastle   TerrainType = "CASTLE"
	TerrainRuins    TerrainType = "RUINS"
)

// Shadow world terrain
const (
	TerrainChasm     TerrainType = "CHASM"
	TerrainLava      TerrainType = "LAVA"
	TerrainCaveFloor TerrainType = "CAVE_FLOOR"
	TerrainFungus    TerrainType = "FUNGUS"
)

// Settlement terrain
const (
	TerrainCobblestone TerrainType = "COBBLESTONE"
	TerrainDirtRoad    TerrainType = "DIRT_ROAD"
	TerrainWood        TerrainType = "WOOD"
	TerrainStoneFloor  TerrainType = "STONE_FLOOR"
	TerrainWallHouse   TerrainType = "WALL_HOUSE"
)

// IsUrban reports whether encounters are suppressed on this terrain
func (t TerrainType) IsUrban() bool {
	switch t {
	case TerrainVillage, TerrainCastle, TerrainCobblestone:
		return true
	}
	return false
}

// IsSettlement reports whether the party can enter a town here
func (t TerrainType) IsSettlement() bool {
	return t == TerrainVillage || t == TerrainCastle
}

// Weather over a cell
type Weather string

// Weather values
const (
	WeatherNone Weather = "NONE"
	WeatherRain Weather = "RAIN"
	WeatherSnow Weather = "SNOW"
	WeatherAsh  Weather = "ASH"
	WeatherFog  Weather = "FOG"
)

// POIType marks an interactive settlement tile
type POIType string

// Settlement points of interest
const (
	POINone  POIType = ""
	POIShop  POIType = "SHOP"
	POIInn   POIType = "INN"
	POIPlaza POIType = "PLAZA"
	POIExit  POIType = "EXIT"
)

// Dimension selects which of the two aligned worlds is active
type Dimension string

// Dimensions
const (
	DimensionNormal Dimension = "NORMAL"
	DimensionShadow Dimension = "SHADOW"
)

// Other returns the opposite dimension
func (d Dimension) Other() Dimension {
	if d == DimensionShadow {
		return DimensionNormal
	}
	return DimensionShadow
}

// Hex is an axial coordinate
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Distance is the axial hex distance between two coordinates
func (h Hex) Distance(o Hex) int {
	dq := h.Q - o.Q
	dr := h.R - o.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

// HexCell is one tile of an overworld or town map
type HexCell struct {
	Q            int         `json:"q"`
	R            int         `json:"r"`
	Terrain      TerrainType `json:"terrain"`
	IsExplored   bool        `json:"is_explored"`
	IsVisible    bool        `json:"is_visible"`
	Weather      Weather     `json:"weather"`
	HasEncounter bool        `json:"has_encounter"`
	HasPortal    bool        `json:"has_portal"`
	POI          POIType     `json:"poi,omitempty"`
}

// Hex returns the cell coordinate
func (c *HexCell) Hex() Hex {
	return Hex{Q: c.Q, R: c.R}
}

// HexMap is a rectangular block of cells stored row by row
type HexMap struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  []HexCell `json:"cells"`
}

// Index returns the slice index for (q, r) or -1 when outside the map
func (m *HexMap) Index(h Hex) int {
	if m == nil || h.Q < 0 || h.R < 0 || h.Q >= m.Width || h.R >= m.Height {
		return -1
	}
	return h.R*m.Width + h.Q
}

// Cell returns the cell at h
func (m *HexMap) Cell(h Hex) (*HexCell, bool) {
	i := m.Index(h)
	if i < 0 || i >= len(m.Cells) {
		return nil, false
	}
	return &m.Cells[i], true
}

// Clone deep-copies the map
func (m *HexMap) Clone() *HexMap {
	if m == nil {
		return nil
	}
	cells := make([]HexCell, len(m.Cells))
	copy(cells, m.Cells)
	return &HexMap{Width: m.Width, Height: m.Height, Cells: cells}
}

// Reveal marks every cell within radius of center explored and visible and
// hides the rest. Radius is compared as a float so the shadow world can use
// a fractional view distance.
func (m *HexMap) Reveal(center Hex, radius float64) {
	for i := range m.Cells {
		c := &m.Cells[i]
		if float64(c.Hex().Distance(center)) <= radius {
			c.IsExplored = true
			c.IsVisible = true
		} else {
			c.IsVisible = false
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ImpassableCost marks terrain that cannot be entered on foot
const ImpassableCost = 99.0

var movementCost = map[TerrainType]float64{
	TerrainGrass:       1.0,
	TerrainPlains:      1.0,
	TerrainDesert:      1.2,
	TerrainVillage:     0.8,
	TerrainCastle:      0.8,
	TerrainForest:      1.5,
	TerrainTaiga:       1.5,
	TerrainTundra:      1.5,
	TerrainFungus:      1.5,
	TerrainJungle:      2.0,
	TerrainSwamp:       2.5,
	TerrainMountain:    3.0,
	TerrainRuins:       1.5,
	TerrainCaveFloor:   1.0,
	TerrainCobblestone: 0.8,
	TerrainDirtRoad:    0.8,
	TerrainWood:        1.0,
	TerrainStoneFloor:  1.0,
	TerrainWater:       ImpassableCost,
	TerrainLava:        ImpassableCost,
	TerrainChasm:       ImpassableCost,
	TerrainWallHouse:   ImpassableCost,
}

// MovementCost is the cost of entering a cell of this terrain. Unknown
// terrain costs 1.
func (t TerrainType) MovementCost() float64 {
	if c, ok := movementCost[t]; ok {
		return c
	}
	return 1.0
}

// Passable reports a movement cost below ImpassableCost
func (t TerrainType) Passable() bool {
	return t.MovementCost() < ImpassableCost
}
