package config

import (
	"fmt"
	"slices"

	"item-tagger/internal/common"
	"item-tagger/internal/diagnostic"
	"item-tagger/internal/record"
	"item-tagger/internal/scrap"
	"item-tagger/internal/tagging"
)

const (
	sectionTagging = "tagging"
	sectionScrap   = "scrap"
)

// Validate checks a settings document. It collects every problem instead of
// stopping at the first one.
func Validate(s *Settings) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("settings_is_nil", "settings document is nil", "", "")
		return res
	}

	if s.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported settings version %q", s.Version), "", "version")
	}

	validateTagging(res, &s.Tagging)
	validateScrap(res, &s.Scrap)

	return res
}

func validateTagging(res *diagnostic.Diagnostics, ts *TaggingSettings) {
	for _, name := range sortedKeys(ts.Prefixes) {
		cat, err := tagging.ParseCategory(name)
		if err != nil || cat == tagging.CategoryNone {
			res.AddError("unknown_category", fmt.Sprintf("prefix for unknown category %q", name), sectionTagging, "prefixes."+name)
			continue
		}

		prefix := ts.Prefixes[name]
		if prefix == "" {
			continue
		}

		if _, ok := tagging.ExtractTag(prefix + " x"); !ok {
			res.AddWarning("prefix_not_taggable",
				fmt.Sprintf("prefix %q is not a bracketed tag; tagged names will not be recognised on later runs", prefix),
				sectionTagging, "prefixes."+name)
		}
	}

	for i, tag := range ts.ValidTags {
		if tag == "" {
			res.AddWarning("empty_valid_tag", "empty valid tag is ignored", sectionTagging, fmt.Sprintf("valid_tags[%d]", i))
		}
	}

	for _, kw := range sortedKeys(ts.KeywordCategories) {
		if _, err := tagging.ParseCategory(ts.KeywordCategories[kw]); err != nil {
			res.AddError("unknown_category", fmt.Sprintf("keyword %s maps to unknown category %q", kw, ts.KeywordCategories[kw]),
				sectionTagging, "keyword_categories."+kw)
		}
	}
}

func validateScrap(res *diagnostic.Diagnostics, ss *ScrapSettings) {
	if ss.LossFactor != nil && !common.IsInLeftOpenRange(0, *ss.LossFactor, 1) {
		res.AddError("loss_factor_out_of_range", fmt.Sprintf("loss factor %v not in (0, 1]", *ss.LossFactor), sectionScrap, "loss_factor")
	}

	if _, err := scrap.ParseRoundMode(ss.RoundMode); err != nil {
		res.AddError("unknown_round_mode", err.Error(), sectionScrap, "round_mode")
	}

	seen := make(map[record.FormKey]struct{}, len(ss.Exclude))
	for i, e := range ss.Exclude {
		key := fmt.Sprintf("exclude[%d]", i)

		fk, err := record.ParseFormKey(e)
		if err != nil {
			res.AddError("invalid_form_key", err.Error(), sectionScrap, key)
			continue
		}

		if fk.IsNull() {
			res.AddWarning("empty_exclude", "empty exclude entry is ignored", sectionScrap, key)
			continue
		}

		if _, dup := seen[fk]; dup {
			res.AddInfo("duplicate_exclude", fmt.Sprintf("%s is excluded more than once", fk), sectionScrap, key)
		}

		seen[fk] = struct{}{}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
