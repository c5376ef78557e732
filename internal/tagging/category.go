package tagging

import (
	"fmt"
	"strings"

	"item-tagger/internal/common"
)

// Category is the classification bucket that selects a tag prefix.
type Category int

const (
	CategoryNone Category = iota

	// ingestibles
	CategoryFood
	CategoryDrink
	CategoryLiquor
	CategoryNuka
	CategoryChem
	CategoryAid

	// books
	CategoryMagazine
	CategoryNote

	// keys
	CategoryKey
	CategoryKeycard

	// ammunition
	CategoryAmmo
	CategoryFusionCore

	// holotapes
	CategoryHolotape
	CategoryGame

	// misc items
	CategoryJunk
	CategoryResource
	CategoryMod
	CategoryCollectible
	CategoryCurrency
	CategoryQuest
	CategoryMisc

	// CategoryTotal is the number of categories including CategoryNone.
	CategoryTotal = int(iota)
)

var categoryNames = [...]string{
	CategoryNone:        "none",
	CategoryFood:        "food",
	CategoryDrink:       "drink",
	CategoryLiquor:      "liquor",
	CategoryNuka:        "nuka",
	CategoryChem:        "chem",
	CategoryAid:         "aid",
	CategoryMagazine:    "magazine",
	CategoryNote:        "note",
	CategoryKey:         "key",
	CategoryKeycard:     "keycard",
	CategoryAmmo:        "ammo",
	CategoryFusionCore:  "fusion_core",
	CategoryHolotape:    "holotape",
	CategoryGame:        "game",
	CategoryJunk:        "junk",
	CategoryResource:    "resource",
	CategoryMod:         "mod",
	CategoryCollectible: "collectible",
	CategoryCurrency:    "currency",
	CategoryQuest:       "quest",
	CategoryMisc:        "misc",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return common.UnknownStr
	}

	return categoryNames[c]
}

// ParseCategory parses a category name as used in settings files.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == s {
			return Category(i), nil
		}
	}

	return CategoryNone, fmt.Errorf("unknown category %q", s)
}

// DefaultPrefixes is the prefix table used when settings do not override it.
// CategoryMisc is deliberately untagged.
func DefaultPrefixes() map[Category]string {
	return map[Category]string{
		CategoryFood:        "[Food]",
		CategoryDrink:       "[Drink]",
		CategoryLiquor:      "[Liquor]",
		CategoryNuka:        "[Nuka]",
		CategoryChem:        "[Chem]",
		CategoryAid:         "[Aid]",
		CategoryMagazine:    "[Mag]",
		CategoryNote:        "[Note]",
		CategoryKey:         "[Key]",
		CategoryKeycard:     "[Keycard]",
		CategoryAmmo:        "[Ammo]",
		CategoryFusionCore:  "[Fusion]",
		CategoryHolotape:    "[Tape]",
		CategoryGame:        "[Game]",
		CategoryJunk:        "[Junk]",
		CategoryResource:    "[Resource]",
		CategoryMod:         "[Mod]",
		CategoryCollectible: "[Collectible]",
		CategoryCurrency:    "[Caps]",
		CategoryQuest:       "[Quest]",
		CategoryMisc:        "",
	}
}
