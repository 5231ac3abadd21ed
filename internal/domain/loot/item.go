package loot

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

type EquipSlot string

const (
	SlotWeapon EquipSlot = "weapon"
	SlotArmor  EquipSlot = "armor"
	SlotHelm   EquipSlot = "helm"
	SlotBoots  EquipSlot = "boots"
	SlotRing   EquipSlot = "ring"
	SlotAmulet EquipSlot = "amulet"
)

type baseItem struct {
	Name    string
	Slot    EquipSlot
	Bonuses []StatBonus
}

var baseItems = []baseItem{
	{Name: "Shortsword", Slot: SlotWeapon, Bonuses: []StatBonus{{StatAttack, 4}}},
	{Name: "War Axe", Slot: SlotWeapon, Bonuses: []StatBonus{{StatAttack, 6}}},
	{Name: "Quarterstaff", Slot: SlotWeapon, Bonuses: []StatBonus{{StatAttack, 3}, {StatSpeed, 1}}},
	{Name: "Leather Cuirass", Slot: SlotArmor, Bonuses: []StatBonus{{StatDefense, 3}}},
	{Name: "Chainmail", Slot: SlotArmor, Bonuses: []StatBonus{{StatDefense, 5}}},
	{Name: "Iron Helm", Slot: SlotHelm, Bonuses: []StatBonus{{StatDefense, 2}}},
	{Name: "Hood", Slot: SlotHelm, Bonuses: []StatBonus{{StatDefense, 1}, {StatMagicFind, 5}}},
	{Name: "Sturdy Boots", Slot: SlotBoots, Bonuses: []StatBonus{{StatDefense, 1}, {StatSpeed, 1}}},
	{Name: "Band", Slot: SlotRing, Bonuses: []StatBonus{{StatMaxHP, 5}}},
	{Name: "Talisman", Slot: SlotAmulet, Bonuses: []StatBonus{{StatMagicFind, 5}}},
}

type Item struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Slot          EquipSlot   `json:"slot"`
	Rarity        Rarity      `json:"rarity"`
	ItemLevel     int         `json:"item_level"`
	RequiredLevel int         `json:"required_level"`
	Affixes       []Affix     `json:"affixes,omitempty"`
	Bonuses       []StatBonus `json:"bonuses,omitempty"`
	DamageType    string      `json:"damage_type,omitempty"`
	UniqueID      string      `json:"unique_id,omitempty"`
	SetID         string      `json:"set_id,omitempty"`
	Price         int         `json:"price"`
}

// TotalBonus sums a stat over base bonuses and every affix.
func (it Item) TotalBonus(stat Stat) int {
	total := 0
	for _, b := range it.Bonuses {
		if b.Stat == stat {
			total += b.Amount
		}
	}
	for _, a := range it.Affixes {
		for _, b := range a.Bonuses {
			if b.Stat == stat {
				total += b.Amount
			}
		}
	}
	return total
}

// GenerateItem rolls one equippable drop: rarity first, then a base
// template, then affixes against the rolled rarity and item level.
func GenerateItem(r *rand.Rand, ctx Context) Item {
	rarity := RollRarity(r, ctx)
	base := baseItems[r.Intn(len(baseItems))]

	itemLevel := ctx.Depth + r.Intn(ItemLevelJitter) - 1
	if itemLevel < 1 {
		itemLevel = 1
	}

	affixes := RollAffixes(r, rarity, itemLevel)

	it := Item{
		ID:            uuid.NewString(),
		Name:          composeName(base.Name, affixes),
		Slot:          base.Slot,
		Rarity:        rarity,
		ItemLevel:     itemLevel,
		RequiredLevel: requiredLevel(itemLevel),
		Affixes:       affixes,
		Bonuses:       append([]StatBonus(nil), base.Bonuses...),
		DamageType:    damageTypeFrom(affixes),
	}
	it.Price = priceFor(it)
	return it
}

// The first typed affix sets the item's damage type; later ones only keep
// their own tag.
func damageTypeFrom(affixes []Affix) string {
	for _, a := range affixes {
		if a.DamageType != "" {
			return a.DamageType
		}
	}
	return ""
}

func composeName(base string, affixes []Affix) string {
	var prefix, suffix string
	for _, a := range affixes {
		switch {
		case a.Slot == AffixPrefix && prefix == "":
			prefix = a.Name
		case a.Slot == AffixSuffix && suffix == "":
			suffix = a.Name
		}
	}
	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, base)
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}

func requiredLevel(itemLevel int) int {
	lvl := itemLevel - 2
	if lvl < 1 {
		lvl = 1
	}
	return lvl
}

func priceFor(it Item) int {
	return (it.Rarity.Index()+1)*it.ItemLevel*10 + len(it.Affixes)*15
}
