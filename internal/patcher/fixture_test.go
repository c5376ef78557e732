package patcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"item-tagger/internal/loadorder"
	"item-tagger/internal/record"
	"item-tagger/internal/scrap"
	"item-tagger/internal/tagging"
)

const fixtureYAML = `
name: Fallout4.esm
records:
  - {kind: keyword, form_key: "000010", editor_id: ObjectTypeJunk}
  - {kind: keyword, form_key: "000011", editor_id: ObjectTypeLooseMod}
  - {kind: keyword, form_key: "000012", editor_id: ObjectTypeStimpak}

  - {kind: component, form_key: "000020", editor_id: c_Steel, name: Steel}
  - {kind: component, form_key: "000021", editor_id: c_Screws, name: Screw}
  - {kind: component, form_key: "000022", editor_id: c_Adhesive, name: Adhesive}

  - {kind: misc_item, form_key: "000030", editor_id: FusionCoreJunk, name: Fusion Core, keywords: ["000010"]}
  - kind: misc_item
    form_key: "000031"
    editor_id: ToyTruck
    name: Toy Truck
    components:
      - {component: "000020", count: 2}
      - {component: "000021", count: 1}
  - {kind: misc_item, form_key: "000032", editor_id: DogTag, name: "[LOOT] Dog Tag", keywords: ["000010"]}
  - {kind: misc_item, form_key: "000033", editor_id: NoName, keywords: ["000010"]}
  - {kind: misc_item, form_key: "000034", editor_id: Pencil, name: Pencil}
  - {kind: misc_item, form_key: "000035", editor_id: Blank, name: "   ", keywords: ["000010"]}
  - {kind: misc_item, form_key: "000036", editor_id: Wrench, name: "[Scrap] Wrench", keywords: ["000010"]}
  - kind: misc_item
    form_key: "000040"
    editor_id: miscmod_LongBarrel
    name: Long Barrel
    keywords: ["000011"]
    components:
      - {component: "000021", count: 1}

  - {kind: key, form_key: "000050", editor_id: VaultKey, name: Vault Key}
  - {kind: ammunition, form_key: "000080", editor_id: Ammo10mm, name: 10mm Round}
  - {kind: book, form_key: "000090", editor_id: PerkMagGuns, name: Guns and Bullets, flags: [teaches_perk]}
  - {kind: holotape, form_key: "000070", editor_id: RedMenace, name: Red Menace, holotape_type: program}
  - {kind: ingestible, form_key: "000060", editor_id: Stimpak, name: Stimpak, keywords: ["000012"]}

  - {kind: object_modification, form_key: "000100", editor_id: mod_LongBarrel, loose_mod: "000040"}
  - {kind: object_modification, form_key: "000101", editor_id: mod_Broken, loose_mod: "000FFF"}
  - kind: constructible_object
    form_key: "000110"
    editor_id: co_mod_LongBarrel
    created_object: "000100"
    components:
      - {component: "000020", count: 10}
      - {component: "000022", count: 4}
      - {component: "000021", count: 1}
  - {kind: constructible_object, form_key: "000111", editor_id: co_ToyTruck, created_object: "000031", components: [{component: "000020", count: 3}]}
  - {kind: constructible_object, form_key: "000112", editor_id: co_mod_Broken, created_object: "000101", components: [{component: "000020", count: 3}]}
`

func fk(id string) record.FormKey {
	return record.MustFormKey(id + ":Fallout4.esm")
}

func fixturePlugin(t *testing.T) *loadorder.Plugin {
	t.Helper()

	p, err := loadorder.ParsePlugin([]byte(fixtureYAML))
	require.NoError(t, err)

	return p
}

func fixtureView(t *testing.T) *loadorder.LoadOrder {
	t.Helper()

	lo, err := loadorder.New(fixturePlugin(t))
	require.NoError(t, err)

	return lo
}

func fixtureTagging(useComponents bool) *tagging.Config {
	prefixes := tagging.DefaultPrefixes()
	prefixes[tagging.CategoryJunk] = "[JUNK]"

	return tagging.NewConfig(tagging.Options{
		Prefixes:           prefixes,
		ValidTags:          []string{"LOOT"},
		UseComponentString: useComponents,
	})
}

func fixturePolicy() scrap.Policy {
	return scrap.NewPolicy(0.5, scrap.RoundNormal, []record.FormKey{fk("000022")})
}

// failingPatch fails override creation for selected records.
type failingPatch struct {
	record.Patch
	fail map[record.FormKey]error
}

func (p *failingPatch) GetOrAddOverride(rec *record.Record) (*record.Record, error) {
	if err, ok := p.fail[rec.Key]; ok {
		return nil, err
	}

	return p.Patch.GetOrAddOverride(rec)
}
