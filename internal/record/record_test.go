package record

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormKey(t *testing.T) {
	tests := []struct {
		input    string
		expected FormKey
		wantErr  bool
	}{
		{"", NullFormKey, false},
		{"59b1e:Fallout4.esm", "059B1E:Fallout4.esm", false},
		{" 00059B1E:Fallout4.esm ", "059B1E:Fallout4.esm", false},
		{"000800:MyMod.esp", "000800:MyMod.esp", false},
		{"000800:Light.ESL", "000800:Light.ESL", false},
		{"000800", "", true},
		{"zz:Fallout4.esm", "", true},
		{"01000000:Fallout4.esm", "", true},
		{"000800:Fallout4.txt", "", true},
		{"000800:.esm", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			fk, err := ParseFormKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, fk)
		})
	}
}

func TestFormKeyAccessors(t *testing.T) {
	fk := MustFormKey("1:DLCRobot.esm")
	assert.Equal(t, "DLCRobot.esm", fk.Plugin())
	assert.Equal(t, "000001:DLCRobot.esm", fk.String())
	assert.False(t, fk.IsNull())
	assert.Equal(t, "null", NullFormKey.String())
	assert.Panics(t, func() { MustFormKey("bogus") })
}

func TestParseKind(t *testing.T) {
	for k := KindIngestible; int(k) < KindTotal; k++ {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
		assert.True(t, k.IsValid())
	}

	k, err := ParseKind(" Misc_Item ")
	require.NoError(t, err)
	assert.Equal(t, KindMiscItem, k)

	_, err = ParseKind("weapon")
	require.Error(t, err)

	assert.Equal(t, "unknown", Kind(0).String())
	assert.False(t, Kind(0).IsValid())
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags([]string{"quest_item", "NON_PLAYABLE"})
	require.NoError(t, err)
	assert.True(t, f.Has(FlagQuestItem))
	assert.True(t, f.Has(FlagNonPlayable))
	assert.False(t, f.Has(FlagMedicine))
	assert.Equal(t, []string{"non_playable", "quest_item"}, f.Names())

	_, err = ParseFlags([]string{"glowing"})
	require.Error(t, err)
}

func TestParseHolotapeType(t *testing.T) {
	h, err := ParseHolotapeType("")
	require.NoError(t, err)
	assert.Equal(t, HolotapeSound, h)

	h, err = ParseHolotapeType("Program")
	require.NoError(t, err)
	assert.Equal(t, HolotapeProgram, h)
	assert.Equal(t, "program", h.String())

	_, err = ParseHolotapeType("video")
	require.Error(t, err)
}

func TestRecordClone(t *testing.T) {
	orig := &Record{
		Kind:       KindMiscItem,
		Key:        MustFormKey("000A:Fallout4.esm"),
		Keywords:   []FormKey{MustFormKey("000B:Fallout4.esm")},
		Components: []ComponentCount{{Component: MustFormKey("000C:Fallout4.esm"), Count: 2}},
	}
	orig.SetName("Toy Truck")

	c := orig.Clone()
	c.SetName("[Junk] Toy Truck")
	c.Components[0].Count = 9
	c.Keywords[0] = NullFormKey

	assert.Equal(t, "Toy Truck", orig.DisplayName())
	assert.Equal(t, 2, orig.Components[0].Count)
	assert.Equal(t, MustFormKey("000B:Fallout4.esm"), orig.Keywords[0])
	assert.Equal(t, "[Junk] Toy Truck", c.DisplayName())

	var nilRec *Record
	assert.Nil(t, nilRec.Clone())
	assert.Equal(t, "", nilRec.DisplayName())
}

func TestEnrich(t *testing.T) {
	rec := &Record{Kind: KindBook, Key: MustFormKey("0010:Fallout4.esm"), EditorID: "PerkMagGuns01"}
	base := errors.New("boom")

	assert.NoError(t, Enrich(nil, rec))

	err := Enrich(base, rec)

	var re *RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, rec.Key, re.Key)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "book 000010:Fallout4.esm (PerkMagGuns01): boom", err.Error())

	other := &Record{Kind: KindKey, Key: MustFormKey("0020:Fallout4.esm")}
	wrapped := fmt.Errorf("outer: %w", err)
	assert.Same(t, wrapped, Enrich(wrapped, other))
}
