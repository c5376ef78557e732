package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"item-tagger/internal/loadorder"
	"item-tagger/internal/record"
)

const basePlugin = `
name: Fallout4.esm
records:
  - {kind: keyword, form_key: "000010", editor_id: ObjectTypeJunk}
  - {kind: keyword, form_key: "000011", editor_id: ObjectTypeLooseMod}
  - {kind: component, form_key: "000020", editor_id: c_Steel, name: Steel}
  - {kind: component, form_key: "000021", editor_id: c_Screws, name: Screw}
  - {kind: misc_item, form_key: "000030", editor_id: FusionCoreJunk, name: Fusion Core, keywords: ["000010"]}
  - {kind: misc_item, form_key: "000040", editor_id: miscmod_LongBarrel, name: Long Barrel, keywords: ["000011"]}
  - {kind: object_modification, form_key: "000100", editor_id: mod_LongBarrel, loose_mod: "000040"}
  - kind: constructible_object
    form_key: "000110"
    editor_id: co_mod_LongBarrel
    created_object: "000100"
    components:
      - {component: "000020", count: 6}
      - {component: "000021", count: 3}
`

const settingsYAML = `
tagging:
  prefixes:
    junk: "[JUNK]"
scrap:
  loss_factor: 0.5
  round_mode: up
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCmd(&options{logger: zap.NewNop()})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestRunWritesPatch(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "Fallout4.esm.yaml", basePlugin)
	settings := writeFile(t, dir, "settings.yaml", settingsYAML)
	out := filepath.Join(dir, "patch.yaml")

	stdout, err := execute(t, "run", "--config", settings, "--patch-name", "Tagged.esp", "--out", out, base)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote 2 overrides")

	patch, err := loadorder.LoadPlugin(out)
	require.NoError(t, err)
	assert.Equal(t, "Tagged.esp", patch.Name)
	assert.Equal(t, []string{"Fallout4.esm"}, patch.Masters)
	require.Len(t, patch.Records, 2)

	// scrap runs first, so the loose mod leads
	barrel := patch.Records[0]
	assert.Equal(t, record.MustFormKey("000040:Fallout4.esm"), barrel.Key)
	assert.Equal(t, "[Mod] Long Barrel", barrel.DisplayName())
	assert.Equal(t, []record.ComponentCount{
		{Component: record.MustFormKey("000020:Fallout4.esm"), Count: 3},
		{Component: record.MustFormKey("000021:Fallout4.esm"), Count: 2},
	}, barrel.Components)

	assert.Equal(t, "[JUNK] Fusion Core", patch.Records[1].DisplayName())

	// feeding the patch back in changes nothing
	again := filepath.Join(dir, "again.yaml")
	stdout, err = execute(t, "run", "--config", settings, "--patch-name", "Again.esp", "--out", again, base, out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "no changes")
	assert.NoFileExists(t, again)
}

func TestTagOnlyLeavesScrap(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "Fallout4.esm.yaml", basePlugin)
	out := filepath.Join(dir, "patch.yaml")

	_, err := execute(t, "tag", "--out", out, base)
	require.NoError(t, err)

	patch, err := loadorder.LoadPlugin(out)
	require.NoError(t, err)
	assert.Equal(t, defaultPatchName, patch.Name)

	for _, rec := range patch.Records {
		assert.Empty(t, rec.Components, rec.EditorID)
	}
}

func TestRunRejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "Fallout4.esm.yaml", basePlugin)
	settings := writeFile(t, dir, "settings.yaml", "scrap:\n  loss_factor: 2\n")

	_, err := execute(t, "scrap", "--config", settings, "--out", filepath.Join(dir, "p.yaml"), base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loss_factor_out_of_range")
}

func TestRunRejectsPatchInLoadOrder(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "Fallout4.esm.yaml", basePlugin)

	_, err := execute(t, "run", "--patch-name", "Fallout4.esm", base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "part of the load order")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "Fallout4.esm.yaml", basePlugin)
	settings := writeFile(t, dir, "settings.yaml", settingsYAML)

	stdout, err := execute(t, "check", "--config", settings, base)
	require.NoError(t, err)
	assert.Contains(t, stdout, `junk         "[JUNK]"`)
	assert.Contains(t, stdout, "load order: 1 plugins, 8 records")

	bad := writeFile(t, dir, "bad.yaml", "scrap:\n  round_mode: sideways\n")

	stdout, err = execute(t, "check", "--config", bad)
	require.Error(t, err)
	assert.Contains(t, stdout, "unknown_round_mode")

	// settings and load order problems are reported together
	orphan := writeFile(t, dir, "Orphan.esp.yaml", "name: Orphan.esp\nmasters: [Missing.esm]\n")

	stdout, err = execute(t, "check", "--config", bad, orphan)
	require.Error(t, err)
	assert.Contains(t, stdout, "unknown_round_mode")
	assert.Contains(t, stdout, "load_order_invalid")
	assert.Contains(t, err.Error(), "Missing.esm")
	assert.NotContains(t, stdout, "prefixes:")
}
