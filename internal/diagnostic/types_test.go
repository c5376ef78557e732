package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("prefix_not_taggable", "prefix has no brackets", "tagging", "misc")
	assert.True(t, d.IsValid())

	d.AddError("loss_factor_out_of_range", "loss factor 1.5 not in (0, 1]", "scrap", "loss_factor")

	var other Diagnostics
	other.AddError("unknown_round_mode", `unknown round mode "sideways"`, "scrap", "round_mode")
	other.AddInfo("defaulted", "version defaulted to 1", "", "")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"loss_factor_out_of_range", "unknown_round_mode", "prefix_not_taggable", "defaulted"}, d.Codes())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[scrap] loss_factor: [loss_factor_out_of_range] loss factor 1.5 not in (0, 1]; `+
			`[scrap] round_mode: [unknown_round_mode] unknown round mode "sideways"`,
		err.Error())
}

func TestDiagnosticString(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[c] m", Diagnostic{Code: "c", Message: "m"}.String())
	assert.Equal(t, "[scrap]: m", Diagnostic{Section: "scrap", Message: "m"}.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
