package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"gloomhold/internal/domain/dungeon"
	"gloomhold/internal/domain/loot"
	"gloomhold/internal/rng"
)

// lootsim rolls a drop table many times and prints the resulting reward
// and rarity distribution, for tuning tables without playing runs.
func main() {
	var (
		runs      int
		depth     int
		level     int
		magicFind float64
		boost     float64
		zone      string
		table     string
		boss      bool
		seed      int64
	)
	flag.IntVar(&runs, "runs", 10000, "number of simulated drops")
	flag.IntVar(&depth, "depth", 5, "dungeon depth, 1-10")
	flag.IntVar(&level, "level", 5, "player level")
	flag.Float64Var(&magicFind, "magic-find", 0, "player magic find percent")
	flag.Float64Var(&boost, "boost", 0, "zone rarity boost, 0 means no zone")
	flag.StringVar(&zone, "zone", "", "zone type for zone materials, e.g. gilded_vault")
	flag.StringVar(&table, "table", "standard", "drop table: standard, boss or completion")
	flag.BoolVar(&boss, "boss", false, "treat every drop as a boss kill")
	flag.Int64Var(&seed, "seed", 1, "base seed")
	flag.Parse()

	if runs <= 0 {
		log.Fatal("runs must be positive")
	}
	dropTable, err := tableByName(table)
	if err != nil {
		log.Fatal(err)
	}

	difficulty := dungeon.DifficultyForDepth(depth)
	if boost > 0 {
		// Zone floors always run one tier above the base depth.
		difficulty = difficulty.NextTier()
	}
	ctx := loot.Context{
		DifficultyMultiplier: difficulty.Multiplier(),
		Depth:                depth,
		PlayerLevel:          level,
		MagicFind:            magicFind,
		ZoneRarityBoost:      boost,
		ZoneType:             zone,
		IsBoss:               boss,
	}

	provider := rng.NewProvider(seed)
	var (
		totalGold, totalXP, totalItems int
		rarities                       = map[loot.Rarity]int{}
		materials                      = map[string]int{}
	)
	for i := 0; i < runs; i++ {
		r := provider.Stream(fmt.Sprintf("lootsim:%d", i))
		drop := loot.GenerateFromTable(r, dropTable, ctx)
		totalGold += drop.Gold
		totalXP += drop.XP
		totalItems += len(drop.Items)
		for _, it := range drop.Items {
			rarities[it.Rarity]++
		}
		for _, m := range drop.Materials {
			materials[m.ID]++
		}
	}

	fmt.Printf("simulated %d %s drops at depth %d (%s, x%.2f)\n",
		runs, dropTable.ID, depth, difficulty, difficulty.Multiplier())
	if magicFind > 0 || boost > 0 {
		fmt.Printf("magic find %.0f%%, zone boost %.1f\n", magicFind, boost)
	}
	fmt.Printf("  avg gold  %.1f\n", float64(totalGold)/float64(runs))
	fmt.Printf("  avg xp    %.1f\n", float64(totalXP)/float64(runs))
	fmt.Printf("  avg items %.2f\n", float64(totalItems)/float64(runs))

	fmt.Printf("\n%-12s %8s %8s\n", "rarity", "count", "share")
	order := []loot.Rarity{
		loot.RarityCommon, loot.RarityUncommon, loot.RarityRare,
		loot.RarityEpic, loot.RarityLegendary, loot.RarityMythic, loot.RarityUnique,
	}
	for _, rarity := range order {
		count := rarities[rarity]
		share := 100 * float64(count) / float64(totalItems)
		fmt.Printf("%-12s %8d %7.2f%%\n", rarity, count, share)
	}

	if len(materials) > 0 {
		type matCount struct {
			id    string
			count int
		}
		sorted := make([]matCount, 0, len(materials))
		for id, count := range materials {
			sorted = append(sorted, matCount{id, count})
		}
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].count != sorted[j].count {
				return sorted[i].count > sorted[j].count
			}
			return sorted[i].id < sorted[j].id
		})
		fmt.Printf("\n%-20s %8s\n", "material", "count")
		for _, m := range sorted {
			fmt.Printf("%-20s %8d\n", m.id, m.count)
		}
	}
}

func tableByName(name string) (loot.Table, error) {
	switch strings.ToLower(name) {
	case "standard":
		return loot.TableStandard, nil
	case "boss":
		return loot.TableBoss, nil
	case "completion":
		return loot.TableCompletion, nil
	default:
		return loot.Table{}, fmt.Errorf("unknown drop table %q", name)
	}
}
