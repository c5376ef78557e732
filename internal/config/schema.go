package config

import (
	"fmt"
	"maps"

	"item-tagger/internal/record"
	"item-tagger/internal/scrap"
	"item-tagger/internal/tagging"
)

const (
	DefaultLossFactor = 0.5
	DefaultRoundMode  = "normal"
)

// Settings is the root of a settings document.
type Settings struct {
	// Version of the settings schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	Tagging TaggingSettings `yaml:"tagging"`
	Scrap   ScrapSettings   `yaml:"scrap"`
}

// TaggingSettings configures the name tagger.
type TaggingSettings struct {
	UseComponentString bool `yaml:"use_component_string"`

	// Prefixes maps category names to prefixes. Entries override the
	// defaults one by one.
	Prefixes map[string]string `yaml:"prefixes,omitempty"`

	ValidTags []string `yaml:"valid_tags,omitempty"`

	KeywordCategories map[string]string `yaml:"keyword_categories,omitempty"`
}

// ScrapSettings configures the scrap recalculator.
type ScrapSettings struct {
	Exclude    []string `yaml:"exclude,omitempty"`
	LossFactor *float64 `yaml:"loss_factor,omitempty"`
	RoundMode  string   `yaml:"round_mode,omitempty"`
}

// Default returns the settings used when no document is given.
func Default() *Settings {
	s := &Settings{}
	applyDefaults(s)

	return s
}

// TaggingConfig builds the tagging configuration. Settings must be valid.
func (s *Settings) TaggingConfig() (*tagging.Config, error) {
	prefixes := tagging.DefaultPrefixes()
	for name, prefix := range s.Tagging.Prefixes {
		cat, err := tagging.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("tagging.prefixes: %w", err)
		}

		prefixes[cat] = prefix
	}

	keywords := make(map[string]tagging.Category, len(s.Tagging.KeywordCategories))
	for kw, name := range s.Tagging.KeywordCategories {
		cat, err := tagging.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("tagging.keyword_categories.%s: %w", kw, err)
		}

		keywords[kw] = cat
	}

	return tagging.NewConfig(tagging.Options{
		Prefixes:           prefixes,
		ValidTags:          s.Tagging.ValidTags,
		UseComponentString: s.Tagging.UseComponentString,
		KeywordCategories:  keywords,
	}), nil
}

// ScrapPolicy builds the scrap policy. Settings must be valid.
func (s *Settings) ScrapPolicy() (scrap.Policy, error) {
	mode, err := scrap.ParseRoundMode(s.Scrap.RoundMode)
	if err != nil {
		return scrap.Policy{}, fmt.Errorf("scrap.round_mode: %w", err)
	}

	exclude := make([]record.FormKey, 0, len(s.Scrap.Exclude))
	for _, e := range s.Scrap.Exclude {
		fk, err := record.ParseFormKey(e)
		if err != nil {
			return scrap.Policy{}, fmt.Errorf("scrap.exclude: %w", err)
		}

		exclude = append(exclude, fk)
	}

	return scrap.NewPolicy(s.lossFactor(), mode, exclude), nil
}

func (s *Settings) lossFactor() float64 {
	if s.Scrap.LossFactor == nil {
		return DefaultLossFactor
	}

	return *s.Scrap.LossFactor
}

// EffectivePrefixes returns the prefix table after applying overrides, keyed
// by category name.
func (s *Settings) EffectivePrefixes() map[string]string {
	out := make(map[string]string)
	for cat, prefix := range tagging.DefaultPrefixes() {
		out[cat.String()] = prefix
	}

	maps.Copy(out, s.Tagging.Prefixes)

	return out
}
