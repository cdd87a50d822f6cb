package dnd5e

import (
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

var xpTable = []int{
	0, 300, 900, 2700, 6500, 14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000, 195000, 225000, 265000, 305000, 355000,
}

// XPToNextLevel is the total xp needed to leave level
func XPToNextLevel(level int) int {
	if level < 1 {
		return xpTable[1]
	}
	if level >= len(xpTable) {
		return 999999
	}
	return xpTable[level]
}

var pointCost = map[int]int{8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9}

// PointBuyCost totals the cost of a score array
func PointBuyCost(a entities.Attributes) (int, error) {
	total := 0
	for _, ab := range entities.AllAbilities {
		cost, ok := pointCost[a.Get(ab)]
		if !ok {
			return 0, errors.InvalidArgumentf("%s score %d is outside %d-%d", ab, a.Get(ab), PointBuyMinScore, PointBuyMaxScore)
		}
		total += cost
	}
	return total, nil
}

// ValidatePointBuy checks a purchased array and the two floating bonuses.
// plusTwo and plusOne must name different abilities.
func ValidatePointBuy(a entities.Attributes, plusTwo, plusOne entities.Ability) error {
	vb := errors.NewValidationBuilder()
	cost, err := PointBuyCost(a)
	if err != nil {
		vb.InvalidField("Scores", err.Error())
	} else if cost > PointBuyBudget {
		vb.Fieldf("Scores", "cost %d exceeds budget %d", cost, PointBuyBudget)
	}
	if !validAbility(plusTwo) {
		vb.InvalidField("PlusTwo", string(plusTwo))
	}
	if !validAbility(plusOne) {
		vb.InvalidField("PlusOne", string(plusOne))
	}
	if plusTwo != "" && plusTwo == plusOne {
		vb.Field("PlusOne", "must differ from PlusTwo")
	}
	return vb.Build()
}

// ApplyFloatingBonus adds +2 and +1 to the chosen abilities
func ApplyFloatingBonus(a entities.Attributes, plusTwo, plusOne entities.Ability) entities.Attributes {
	return a.With(plusTwo, 2).With(plusOne, 1)
}

func validAbility(ab entities.Ability) bool {
	for _, a := range entities.AllAbilities {
		if a == ab {
			return true
		}
	}
	return false
}
