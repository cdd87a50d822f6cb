package dnd5e

import (
	"sort"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

func weapon(id, name string, count, sides int, finesse bool, mods entities.Attributes) *entities.Item {
	return &entities.Item{
		ID:   id,
		Name: name,
		Kind: entities.ItemWeapon,
		EquipmentStats: &entities.EquipmentStats{
			Slot:      entities.SlotMainHand,
			Damage:    &entities.Dice{Count: count, Sides: sides},
			Modifiers: mods,
			Finesse:   finesse,
		},
	}
}

func armor(id, name string, ac int) *entities.Item {
	return &entities.Item{
		ID:             id,
		Name:           name,
		Kind:           entities.ItemArmor,
		EquipmentStats: &entities.EquipmentStats{Slot: entities.SlotBody, AC: ac},
	}
}

func shield(id, name string, ac int) *entities.Item {
	return &entities.Item{
		ID:             id,
		Name:           name,
		Kind:           entities.ItemShield,
		EquipmentStats: &entities.EquipmentStats{Slot: entities.SlotOffHand, AC: ac},
	}
}

func consumable(id, name string, effect entities.Effect) *entities.Item {
	return &entities.Item{
		ID:     id,
		Name:   name,
		Kind:   entities.ItemConsumable,
		Effect: &effect,
	}
}

var none = entities.Attributes{}

var items = map[string]*entities.Item{
	ItemPotionHealing: consumable(ItemPotionHealing, "Potion of Healing",
		entities.Effect{Type: entities.EffectHealHP, Dice: &entities.Dice{Count: 2, Sides: 4, Bonus: 2}}),
	ItemPotionGreaterHealing: consumable(ItemPotionGreaterHealing, "Potion of Greater Healing",
		entities.Effect{Type: entities.EffectHealHP, Amount: 14}),
	ItemPotionMana: consumable(ItemPotionMana, "Potion of Mana",
		entities.Effect{Type: entities.EffectRestoreSlots, Amount: 1}),
	ItemRation: consumable(ItemRation, "Travel Ration",
		entities.Effect{Type: entities.EffectHealHP, Amount: 5}),
	ItemElixirStrength: consumable(ItemElixirStrength, "Elixir of Might",
		entities.Effect{Type: entities.EffectBuffSTR, Amount: 1}),

	ItemDagger:       weapon(ItemDagger, "Dagger", 1, 4, true, none),
	ItemShortsword:   weapon(ItemShortsword, "Shortsword", 1, 6, true, none),
	ItemLongsword:    weapon(ItemLongsword, "Longsword", 1, 8, false, none),
	ItemGreatsword:   weapon(ItemGreatsword, "Greatsword", 2, 6, false, none),
	ItemGreataxe:     weapon(ItemGreataxe, "Greataxe", 1, 12, false, none),
	ItemHandaxe:      weapon(ItemHandaxe, "Handaxe", 1, 6, false, none),
	ItemMace:         weapon(ItemMace, "Mace", 1, 6, false, none),
	ItemWarhammer:    weapon(ItemWarhammer, "Warhammer", 1, 8, false, none),
	ItemQuarterstaff: weapon(ItemQuarterstaff, "Quarterstaff", 1, 6, false, none),
	ItemRapier:       weapon(ItemRapier, "Rapier", 1, 8, true, none),
	ItemLongbow:      weapon(ItemLongbow, "Longbow", 1, 8, false, none),

	ItemShield:         shield(ItemShield, "Shield", 2),
	ItemLeatherArmor:   armor(ItemLeatherArmor, "Leather Armor", 11),
	ItemStuddedLeather: armor(ItemStuddedLeather, "Studded Leather", 12),
	ItemChainShirt:     armor(ItemChainShirt, "Chain Shirt", 13),
	ItemChainMail:      armor(ItemChainMail, "Chain Mail", 16),
	ItemPlateArmor:     armor(ItemPlateArmor, "Plate Armor", 18),

	ItemShadowDagger:  weapon(ItemShadowDagger, "Shadow Dagger", 1, 4, false, entities.Attributes{DEX: 1}),
	ItemNecroStaff:    weapon(ItemNecroStaff, "Staff of the Dead", 1, 8, false, entities.Attributes{INT: 1}),
	ItemObsidianPlate: armor(ItemObsidianPlate, "Obsidian Plate", 19),
	ItemBoneShield:    shield(ItemBoneShield, "Bone Shield", 2),
}

// Item looks up a catalog item
func Item(id string) (*entities.Item, bool) {
	item, ok := items[id]
	return item, ok
}

// ItemIDs lists the catalog in id order
func ItemIDs() []string {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ShadowLoot is the drop table for shadow world victories
var ShadowLoot = []string{ItemShadowDagger, ItemNecroStaff, ItemObsidianPlate, ItemBoneShield, ItemElixirStrength}

// UnarmedDamage is used when the main hand is empty
var UnarmedDamage = entities.Dice{Count: 1, Sides: 4}
