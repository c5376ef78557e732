package record

import (
	"fmt"
	"strings"

	"item-tagger/internal/common"
)

// Kind identifies which record type a Record represents.
type Kind int

const (
	_ Kind = iota // zero value is an invalid kind

	KindIngestible
	KindBook
	KindKey
	KindAmmunition
	KindHolotape
	KindMiscItem
	KindConstructibleObject
	KindObjectModification
	KindComponent
	KindKeyword
	KindMagicEffect

	// KindTotal is the number of defined kinds plus the invalid zero value.
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindIngestible:          "ingestible",
	KindBook:                "book",
	KindKey:                 "key",
	KindAmmunition:          "ammunition",
	KindHolotape:            "holotape",
	KindMiscItem:            "misc_item",
	KindConstructibleObject: "constructible_object",
	KindObjectModification:  "object_modification",
	KindComponent:           "component",
	KindKeyword:             "keyword",
	KindMagicEffect:         "magic_effect",
}

// String returns the snake_case name used in plugin files.
func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return common.UnknownStr
	}

	return kindNames[k]
}

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// ParseKind parses a kind name. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KindIngestible; int(k) < KindTotal; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown record kind %q", s)
}

// Flag is a bit set of record header and data flags the classifier reads.
type Flag uint32

const (
	FlagNonPlayable Flag = 1 << iota
	FlagQuestItem
	FlagMedicine
	FlagFoodItem
	FlagTeachesPerk
	FlagCantBeTaken

	FlagNone Flag = 0
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagNonPlayable, "non_playable"},
	{FlagQuestItem, "quest_item"},
	{FlagMedicine, "medicine"},
	{FlagFoodItem, "food_item"},
	{FlagTeachesPerk, "teaches_perk"},
	{FlagCantBeTaken, "cant_be_taken"},
}

// Has reports whether every bit of f2 is set in f.
func (f Flag) Has(f2 Flag) bool {
	return f&f2 == f2
}

// Names returns the names of the set flags in declaration order.
func (f Flag) Names() []string {
	var names []string

	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}

	return names
}

// ParseFlags combines named flags into a bit set.
func ParseFlags(names []string) (Flag, error) {
	var f Flag

outer:
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		for _, fn := range flagNames {
			if fn.name == n {
				f |= fn.flag
				continue outer
			}
		}

		return FlagNone, fmt.Errorf("unknown record flag %q", n)
	}

	return f, nil
}

// HolotapeType is the payload type of a holotape record.
type HolotapeType int

const (
	HolotapeSound HolotapeType = iota
	HolotapeVoice
	HolotapeProgram
	HolotapeTerminal
)

var holotapeTypeNames = [...]string{
	HolotapeSound:    "sound",
	HolotapeVoice:    "voice",
	HolotapeProgram:  "program",
	HolotapeTerminal: "terminal",
}

func (h HolotapeType) String() string {
	if h < 0 || int(h) >= len(holotapeTypeNames) {
		return common.UnknownStr
	}

	return holotapeTypeNames[h]
}

// ParseHolotapeType parses a holotape type name; the empty string is HolotapeSound.
func ParseHolotapeType(s string) (HolotapeType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return HolotapeSound, nil
	}

	for i, n := range holotapeTypeNames {
		if n == s {
			return HolotapeType(i), nil
		}
	}

	return 0, fmt.Errorf("unknown holotape type %q", s)
}
