package loot

import (
	"math/rand"

	"github.com/google/uuid"

	"gloomhold/internal/rng"
)

type UniqueDefinition struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Slot     EquipSlot   `json:"slot"`
	MinDepth int         `json:"min_depth"`
	Weight   float64     `json:"weight"`
	Bonuses  []StatBonus `json:"bonuses"`
	SetID    string      `json:"set_id,omitempty"`
}

type SetBonus struct {
	Pieces  int         `json:"pieces"`
	Bonuses []StatBonus `json:"bonuses"`
}

type SetDefinition struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Pieces  []string   `json:"pieces"`
	Bonuses []SetBonus `json:"bonuses"`
}

var uniqueCatalog = []UniqueDefinition{
	{ID: "gravebite", Name: "Gravebite", Slot: SlotWeapon, MinDepth: 1, Weight: 10,
		Bonuses: []StatBonus{{StatAttack, 8}, {StatMaxHP, 10}}},
	{ID: "wardens_aegis", Name: "Warden's Aegis", Slot: SlotArmor, MinDepth: 2, Weight: 10,
		Bonuses: []StatBonus{{StatDefense, 8}, {StatMaxHP, 15}}},
	{ID: "lamplighters_band", Name: "Lamplighter's Band", Slot: SlotRing, MinDepth: 3, Weight: 8,
		Bonuses: []StatBonus{{StatMagicFind, 25}}},
	{ID: "emberclad_crown", Name: "Emberclad Crown", Slot: SlotHelm, MinDepth: 4, Weight: 8,
		Bonuses: []StatBonus{{StatAttack, 5}, {StatDefense, 4}}},
	{ID: "gloomstride", Name: "Gloomstride", Slot: SlotBoots, MinDepth: 4, Weight: 8,
		Bonuses: []StatBonus{{StatSpeed, 3}, {StatDefense, 3}},
		SetID:   "gloom_pact"},
	{ID: "gloomheart", Name: "Gloomheart", Slot: SlotAmulet, MinDepth: 5, Weight: 6,
		Bonuses: []StatBonus{{StatMaxHP, 20}, {StatMagicFind, 10}},
		SetID:   "gloom_pact"},
	{ID: "gloomfang", Name: "Gloomfang", Slot: SlotWeapon, MinDepth: 6, Weight: 5,
		Bonuses: []StatBonus{{StatAttack, 12}},
		SetID:   "gloom_pact"},
	{ID: "tyrants_maw", Name: "Tyrant's Maw", Slot: SlotWeapon, MinDepth: 8, Weight: 3,
		Bonuses: []StatBonus{{StatAttack, 18}, {StatMaxHP, 20}}},
	{ID: "pilgrims_step", Name: "Pilgrim's Step", Slot: SlotBoots, MinDepth: 2, Weight: 9,
		Bonuses: []StatBonus{{StatSpeed, 2}},
		SetID:   "pilgrim_vows"},
	{ID: "pilgrims_oath", Name: "Pilgrim's Oath", Slot: SlotAmulet, MinDepth: 3, Weight: 9,
		Bonuses: []StatBonus{{StatDefense, 3}, {StatMaxHP, 10}},
		SetID:   "pilgrim_vows"},
}

var setCatalog = []SetDefinition{
	{
		ID:     "gloom_pact",
		Name:   "The Gloom Pact",
		Pieces: []string{"gloomstride", "gloomheart", "gloomfang"},
		Bonuses: []SetBonus{
			{Pieces: 2, Bonuses: []StatBonus{{StatAttack, 5}, {StatSpeed, 1}}},
			{Pieces: 3, Bonuses: []StatBonus{{StatAttack, 10}, {StatMagicFind, 20}}},
		},
	},
	{
		ID:     "pilgrim_vows",
		Name:   "Pilgrim's Vows",
		Pieces: []string{"pilgrims_step", "pilgrims_oath"},
		Bonuses: []SetBonus{
			{Pieces: 2, Bonuses: []StatBonus{{StatMaxHP, 25}, {StatDefense, 3}}},
		},
	},
}

// AllUniques returns the unique catalog in declaration order.
func AllUniques() []UniqueDefinition {
	out := make([]UniqueDefinition, len(uniqueCatalog))
	copy(out, uniqueCatalog)
	return out
}

// AllSets returns the set catalog in declaration order.
func AllSets() []SetDefinition {
	out := make([]SetDefinition, len(setCatalog))
	copy(out, setCatalog)
	return out
}

func SetByID(id string) (SetDefinition, bool) {
	for _, s := range setCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return SetDefinition{}, false
}

func uniqueChance(ctx Context) float64 {
	chance := UniqueBaseChance
	if ctx.IsBoss {
		chance = UniqueBossChance
	}
	return chance + ctx.MagicFind*UniqueMagicFindBonus
}

// TryUnique rolls for a unique drop. The pool is gated to uniques whose
// MinDepth has been reached; the chance roll happens before the pool
// filter so deeper floors do not change stream consumption.
func TryUnique(r *rand.Rand, ctx Context) (Item, bool) {
	if r.Float64() >= uniqueChance(ctx) {
		return Item{}, false
	}
	def, ok := rng.PickWeighted(r, uniqueCatalog, func(u UniqueDefinition) float64 {
		if u.MinDepth > ctx.Depth {
			return 0
		}
		return u.Weight
	})
	if !ok {
		return Item{}, false
	}
	itemLevel := ctx.Depth
	if itemLevel < def.MinDepth {
		itemLevel = def.MinDepth
	}
	it := Item{
		ID:            uuid.NewString(),
		Name:          def.Name,
		Slot:          def.Slot,
		Rarity:        RarityUnique,
		ItemLevel:     itemLevel,
		RequiredLevel: requiredLevel(itemLevel),
		Bonuses:       append([]StatBonus(nil), def.Bonuses...),
		UniqueID:      def.ID,
		SetID:         def.SetID,
	}
	it.Price = priceFor(it)
	return it, true
}

// SetBonuses resolves the set bonuses active for an equipped loadout.
// Duplicate pieces of the same unique count once.
func SetBonuses(equipped []Item) []StatBonus {
	counts := map[string]map[string]bool{}
	for _, it := range equipped {
		if it.SetID == "" || it.UniqueID == "" {
			continue
		}
		if counts[it.SetID] == nil {
			counts[it.SetID] = map[string]bool{}
		}
		counts[it.SetID][it.UniqueID] = true
	}
	var out []StatBonus
	for _, set := range setCatalog {
		n := len(counts[set.ID])
		for _, b := range set.Bonuses {
			if n >= b.Pieces {
				out = append(out, b.Bonuses...)
			}
		}
	}
	return out
}
