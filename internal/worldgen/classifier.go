// Package worldgen builds the paired overworld maps, settlement layouts and
// battle arenas.
package worldgen

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

// Classification is the terrain pair for one (q, r) in both worlds
type Classification struct {
	Normal entities.TerrainType
	Shadow entities.TerrainType
}

// Classify maps elevation e, moisture m and temperature t to the terrain of
// both worlds. Every branch has a result, so it never fails.
func Classify(e, m, t float64) Classification {
	switch {
	case e < 0.25:
		return Classification{entities.TerrainWater, entities.TerrainChasm}
	case e < 0.32:
		if t > 0.6 {
			return Classification{entities.TerrainDesert, entities.TerrainLava}
		}
		return Classification{entities.TerrainPlains, entities.TerrainLava}
	case e > 0.82:
		return Classification{entities.TerrainMountain, entities.TerrainMountain}
	}

	c := Classification{Shadow: entities.TerrainCaveFloor}
	switch {
	case t < 0.35:
		if m < 0.5 {
			c.Normal = entities.TerrainTundra
		} else {
			c.Normal, c.Shadow = entities.TerrainTaiga, entities.TerrainFungus
		}
	case t < 0.70:
		switch {
		case m < 0.3:
			c.Normal = entities.TerrainPlains
		case m < 0.65:
			c.Normal, c.Shadow = entities.TerrainGrass, entities.TerrainFungus
		default:
			c.Normal, c.Shadow = entities.TerrainForest, entities.TerrainFungus
		}
		if e < 0.45 && m > 0.6 {
			c.Normal, c.Shadow = entities.TerrainSwamp, entities.TerrainLava
		}
	default:
		if m < 0.4 {
			c.Normal = entities.TerrainDesert
		} else {
			c.Normal, c.Shadow = entities.TerrainJungle, entities.TerrainFungus
		}
	}
	return c
}

func oneOf(t entities.TerrainType, set ...entities.TerrainType) bool {
	for _, s := range set {
		if t == s {
			return true
		}
	}
	return false
}

// ApplyPOI overlays ruins, villages and castles using a single uniform roll.
// Civilization in the normal world is ruined in the shadow world.
func ApplyPOI(c Classification, roll float64) Classification {
	switch {
	case roll > 0.97 && oneOf(c.Normal, entities.TerrainJungle, entities.TerrainDesert, entities.TerrainSwamp, entities.TerrainTundra):
		c.Normal = entities.TerrainRuins
	case roll > 0.96 && oneOf(c.Normal, entities.TerrainGrass, entities.TerrainPlains):
		c.Normal = entities.TerrainVillage
	case roll > 0.975 && oneOf(c.Normal, entities.TerrainMountain, entities.TerrainForest, entities.TerrainTaiga):
		c.Normal = entities.TerrainCastle
	}

	if c.Normal == entities.TerrainVillage || c.Normal == entities.TerrainCastle {
		c.Shadow = entities.TerrainRuins
	}
	if roll > 0.94 && !oneOf(c.Shadow, entities.TerrainChasm, entities.TerrainLava) {
		c.Shadow = entities.TerrainRuins
	}
	return c
}

// NormalWeather picks snow on cold ground and rain on wet ground
func NormalWeather(terrain entities.TerrainType, m, t, roll float64) entities.Weather {
	switch {
	case oneOf(terrain, entities.TerrainTundra, entities.TerrainTaiga, entities.TerrainMountain) && t < 0.4:
		if roll > 0.7 {
			return entities.WeatherSnow
		}
	case oneOf(terrain, entities.TerrainJungle, entities.TerrainSwamp, entities.TerrainForest) && m > 0.6:
		if roll > 0.8 {
			return entities.WeatherRain
		}
	}
	return entities.WeatherNone
}

// ShadowWeather is ash everywhere except fog over lava and chasms
func ShadowWeather(terrain entities.TerrainType) entities.Weather {
	if oneOf(terrain, entities.TerrainLava, entities.TerrainChasm) {
		return entities.WeatherFog
	}
	return entities.WeatherAsh
}

// IsNormalLand excludes water and mountains
func IsNormalLand(t entities.TerrainType) bool {
	return !oneOf(t, entities.TerrainWater, entities.TerrainMountain)
}

// IsShadowLand excludes chasms, lava and mountains
func IsShadowLand(t entities.TerrainType) bool {
	return !oneOf(t, entities.TerrainChasm, entities.TerrainLava, entities.TerrainMountain)
}

// PortalAllowed reports whether a cell is land in both worlds
func PortalAllowed(c Classification) bool {
	return IsNormalLand(c.Normal) && IsShadowLand(c.Shadow)
}

// Base encounter probabilities before the difficulty multiplier
const (
	NormalEncounterRate = 0.15
	ShadowEncounterRate = 0.40
	PortalRate          = 0.015
)

// NormalEncounterAllowed excludes settlements, water and ruins
func NormalEncounterAllowed(t entities.TerrainType) bool {
	return !oneOf(t, entities.TerrainVillage, entities.TerrainCastle, entities.TerrainWater, entities.TerrainRuins)
}

// ShadowEncounterAllowed excludes chasms and lava
func ShadowEncounterAllowed(t entities.TerrainType) bool {
	return !oneOf(t, entities.TerrainChasm, entities.TerrainLava)
}
