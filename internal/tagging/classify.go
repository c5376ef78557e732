package tagging

import (
	"slices"
	"strings"

	"item-tagger/internal/record"
)

// Classifier maps records to categories. It only reads the record and the
// linked keyword and magic-effect records; it never looks at the name.
type Classifier struct {
	view record.View
	cfg  *Config
}

// NewClassifier creates a classifier that resolves links through view.
func NewClassifier(view record.View, cfg *Config) *Classifier {
	return &Classifier{view: view, cfg: cfg}
}

// Classify returns the category of rec, or CategoryNone when no rule matches
// or the kind is not tagged.
func (c *Classifier) Classify(rec *record.Record) Category {
	if rec == nil {
		return CategoryNone
	}

	s := c.signalsOf(rec)

	for _, kw := range s.keywords {
		if cat, ok := c.cfg.KeywordCategory(kw); ok {
			return cat
		}
	}

	switch rec.Kind {
	case record.KindIngestible:
		return classifyIngestible(s)
	case record.KindBook:
		return classifyBook(s)
	case record.KindKey:
		return classifyKey(s)
	case record.KindAmmunition:
		return classifyAmmo(s)
	case record.KindHolotape:
		return classifyHolotape(s)
	case record.KindMiscItem:
		return classifyMisc(s)
	default:
		return CategoryNone
	}
}

// signals is the structural view of a record the rules match against.
type signals struct {
	rec      *record.Record
	keywords []string
	effects  []string
}

func (c *Classifier) signalsOf(rec *record.Record) *signals {
	return &signals{
		rec:      rec,
		keywords: c.editorIDs(rec.Keywords, record.KindKeyword),
		effects:  c.editorIDs(rec.Effects, record.KindMagicEffect),
	}
}

func (c *Classifier) editorIDs(links []record.FormKey, kind record.Kind) []string {
	var ids []string

	for _, link := range links {
		target, ok := record.ResolveKind(c.view, link, kind)
		if !ok || target.EditorID == "" {
			continue
		}

		ids = append(ids, target.EditorID)
	}

	return ids
}

func (s *signals) hasKeyword(ids ...string) bool {
	for _, id := range ids {
		if slices.Contains(s.keywords, id) {
			return true
		}
	}

	return false
}

func (s *signals) hasEffectPrefix(prefix string) bool {
	return slices.ContainsFunc(s.effects, func(id string) bool {
		return strings.HasPrefix(id, prefix)
	})
}

func (s *signals) hasFlag(f record.Flag) bool {
	return s.rec.Flags.Has(f)
}

func (s *signals) editorIDContains(sub string) bool {
	return strings.Contains(strings.ToLower(s.rec.EditorID), strings.ToLower(sub))
}

// rule assigns category when match holds. Rule tables are evaluated in order
// and the first match wins.
type rule struct {
	category Category
	match    func(s *signals) bool
}

func firstMatch(rules []rule, s *signals, fallback Category) Category {
	for _, r := range rules {
		if r.match(s) {
			return r.category
		}
	}

	return fallback
}

func keyword(ids ...string) func(s *signals) bool {
	return func(s *signals) bool { return s.hasKeyword(ids...) }
}

func flag(f record.Flag) func(s *signals) bool {
	return func(s *signals) bool { return s.hasFlag(f) }
}

// chems carry the Medicine flag too, so they are matched before aid.
var ingestibleRules = []rule{
	{CategoryNuka, keyword("ObjectTypeNukaCola")},
	{CategoryLiquor, keyword("ObjectTypeAlcohol")},
	{CategoryChem, keyword("ObjectTypeChem")},
	{CategoryChem, func(s *signals) bool { return s.hasEffectPrefix("Addiction") }},
	{CategoryAid, keyword("ObjectTypeStimpak")},
	{CategoryAid, flag(record.FlagMedicine)},
	{CategoryDrink, keyword("ObjectTypeWater", "ObjectTypeDrink", "ObjectTypeCaffeinated")},
	{CategoryFood, keyword("ObjectTypeFood")},
	{CategoryFood, flag(record.FlagFoodItem)},
}

func classifyIngestible(s *signals) Category {
	if s.hasFlag(record.FlagNonPlayable) {
		return CategoryNone
	}

	return firstMatch(ingestibleRules, s, CategoryNone)
}

var bookRules = []rule{
	{CategoryMagazine, flag(record.FlagTeachesPerk)},
	{CategoryMagazine, keyword("PerkMagKeyword")},
}

func classifyBook(s *signals) Category {
	if s.hasFlag(record.FlagCantBeTaken) {
		return CategoryNone
	}

	return firstMatch(bookRules, s, CategoryNote)
}

var keyRules = []rule{
	{CategoryKeycard, keyword("ObjectTypeKeycard")},
	{CategoryKeycard, func(s *signals) bool { return s.editorIDContains("keycard") }},
}

func classifyKey(s *signals) Category {
	return firstMatch(keyRules, s, CategoryKey)
}

var ammoRules = []rule{
	{CategoryFusionCore, keyword("ObjectTypeFusionCore")},
	{CategoryFusionCore, func(s *signals) bool { return s.editorIDContains("FusionCore") }},
}

func classifyAmmo(s *signals) Category {
	if s.hasFlag(record.FlagNonPlayable) {
		return CategoryNone
	}

	return firstMatch(ammoRules, s, CategoryAmmo)
}

func classifyHolotape(s *signals) Category {
	if s.rec.HolotapeType == record.HolotapeProgram {
		return CategoryGame
	}

	return CategoryHolotape
}

var miscRules = []rule{
	{CategoryQuest, flag(record.FlagQuestItem)},
	{CategoryMod, keyword("ObjectTypeLooseMod")},
	{CategoryCollectible, keyword("BobbleheadKeyword", "ObjectTypeCollectible")},
	{CategoryCurrency, keyword("ObjectTypeCaps")},
	{CategoryResource, keyword("ObjectTypeResource")},
	{CategoryJunk, keyword("ObjectTypeJunk")},
	{CategoryJunk, func(s *signals) bool { return s.rec.HasComponents() }},
}

func classifyMisc(s *signals) Category {
	return firstMatch(miscRules, s, CategoryMisc)
}
