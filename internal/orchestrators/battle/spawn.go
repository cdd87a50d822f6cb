package battle

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/entities/dnd5e"
)

// enemy template per world
type enemyKind struct {
	profile    engine.EnemyProfile
	baseHP     int
	hpPerLevel int
	baseAC     int
	initiative int
}

var (
	goblinKind     = enemyKind{profile: engine.ProfileGoblin, baseHP: 9, hpPerLevel: 5, baseAC: 13, initiative: 2}
	shadowlingKind = enemyKind{profile: engine.ProfileShadowling, baseHP: 22, hpPerLevel: 8, baseAC: 14, initiative: 3}
)

func kindFor(d entities.Dimension) enemyKind {
	if d == entities.DimensionShadow {
		return shadowlingKind
	}
	return goblinKind
}

// Reward constants
const (
	baseXP       = 100
	xpPerLevel   = 50
	goldMinBase  = 15
	goldMinLevel = 5
	goldMaxBase  = 30
	goldMaxLevel = 10
	// shadow victories drop an item when a draw exceeds this
	shadowLootThreshold = 0.7
)

type spawn struct {
	level        int
	enemies      []*entities.Combatant
	rewards      entities.Rewards
	runAvailable bool
}

// averageLevel is the floored mean over the whole party, fallen included
func averageLevel(party []*entities.Combatant) int {
	total, n := 0, 0
	for _, p := range party {
		if p == nil {
			continue
		}
		total += p.Stats.Level
		n++
	}
	if n == 0 {
		return 1
	}
	return total / n
}

// spawnEnemies rolls the enemy group and what beating it is worth
func (o *orchestrator) spawnEnemies(party []*entities.Combatant, dim entities.Dimension, diff entities.Difficulty) spawn {
	settings := diff.Settings()
	kind := kindFor(dim)
	shadow := dim == entities.DimensionShadow

	avg := averageLevel(party)
	level := max(1, avg+o.rng.Intn(3)-1)

	hp := int(math.Floor(float64(kind.baseHP+(level-1)*kind.hpPerLevel) * settings.EnemyStatMod))
	hp = max(1, hp)
	ac := kind.baseAC + (level-1)/2

	var count int
	switch {
	case avg >= 3 && shadow:
		count = 3
	case avg >= 3:
		count = 2
	case shadow:
		count = 2
	default:
		count = o.rng.Intn(2) + 1
	}

	xp := int(math.Floor(float64((baseXP+(level-1)*xpPerLevel)*count) * settings.XPMod))
	goldMin := float64(goldMinBase + (level-1)*goldMinLevel)
	goldMax := float64(goldMaxBase + (level-1)*goldMaxLevel)
	gold := int(math.Floor((goldMin + o.rng.Float64()*(goldMax-goldMin)) * settings.GoldMod))

	rewards := entities.Rewards{XP: xp, Gold: gold}
	if shadow && o.rng.Float64() > shadowLootThreshold {
		id := dnd5e.ShadowLoot[o.rng.Intn(len(dnd5e.ShadowLoot))]
		if item, ok := dnd5e.Item(id); ok {
			rewards.Items = append(rewards.Items, item)
		}
	}

	enemies := make([]*entities.Combatant, count)
	for i := range enemies {
		enemies[i] = &entities.Combatant{
			Name:      fmt.Sprintf("%s %d", kind.profile.Name, i+1),
			Type:      entities.EntityEnemy,
			Equipment: map[entities.EquipmentSlot]*entities.Item{},
			Stats: entities.CombatStats{
				Level:           level,
				HP:              hp,
				MaxHP:           hp,
				AC:              ac,
				InitiativeBonus: kind.initiative,
				Speed:           30,
				Attributes:      enemyAttributes,
				BaseAttributes:  enemyAttributes,
			},
		}
	}

	return spawn{
		level:        level,
		enemies:      enemies,
		rewards:      rewards,
		runAvailable: avg < level,
	}
}
