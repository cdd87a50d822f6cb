package entities

// ItemKind groups items by how they are used
type ItemKind string

// Item kinds
const (
	ItemWeapon     ItemKind = "WEAPON"
	ItemArmor      ItemKind = "ARMOR"
	ItemShield     ItemKind = "SHIELD"
	ItemConsumable ItemKind = "CONSUMABLE"
)

// EffectType is what a consumable does
type EffectType string

// Consumable effects
const (
	EffectNone         EffectType = ""
	EffectHealHP       EffectType = "HEAL_HP"
	EffectRestoreSlots EffectType = "RESTORE_MANA"
	EffectBuffSTR      EffectType = "BUFF_STR"
)

// Dice is an NdS+B expression
type Dice struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
	Bonus int `json:"bonus,omitempty"`
}

// Effect of a consumable. When Dice is set the amount is rolled, otherwise
// Amount is used as is.
type Effect struct {
	Type   EffectType `json:"type"`
	Amount int        `json:"amount,omitempty"`
	Dice   *Dice      `json:"dice,omitempty"`
}

// EquipmentStats is present on wearable items
type EquipmentStats struct {
	Slot      EquipmentSlot `json:"slot"`
	Damage    *Dice         `json:"damage,omitempty"`
	AC        int           `json:"ac,omitempty"`
	Modifiers Attributes    `json:"modifiers"`
	Finesse   bool          `json:"finesse,omitempty"`
}

// Item is an immutable catalog entry
type Item struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Kind           ItemKind        `json:"kind"`
	EquipmentStats *EquipmentStats `json:"equipment_stats,omitempty"`
	Effect         *Effect         `json:"effect,omitempty"`
}

// Equippable reports whether the item can be worn
func (i *Item) Equippable() bool {
	return i != nil && i.EquipmentStats != nil
}

// Consumable reports whether the item has a use effect
func (i *Item) Consumable() bool {
	return i != nil && i.Effect != nil && i.Effect.Type != EffectNone
}

// InventorySlot is a stack of one item
type InventorySlot struct {
	Item     *Item `json:"item"`
	Quantity int   `json:"quantity"`
}

// Inventory is the shared party pack
type Inventory []InventorySlot

// Add merges qty of item into the stack with the same id
func (inv Inventory) Add(item *Item, qty int) Inventory {
	if item == nil || qty <= 0 {
		return inv
	}
	for i := range inv {
		if inv[i].Item.ID == item.ID {
			inv[i].Quantity += qty
			return inv
		}
	}
	return append(inv, InventorySlot{Item: item, Quantity: qty})
}

// Find returns the stack index for id or -1
func (inv Inventory) Find(id string) int {
	for i := range inv {
		if inv[i].Item != nil && inv[i].Item.ID == id {
			return i
		}
	}
	return -1
}

// Take removes one of id, dropping the stack when it empties
func (inv Inventory) Take(id string) (Inventory, *Item, bool) {
	i := inv.Find(id)
	if i < 0 {
		return inv, nil, false
	}
	item := inv[i].Item
	if inv[i].Quantity > 1 {
		inv[i].Quantity--
		return inv, item, true
	}
	return append(inv[:i], inv[i+1:]...), item, true
}

// Clone copies the slice
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}
