// Package config provides the YAML settings document, its defaults and
// validation, and builds the immutable tagging and scrap values a run uses.
//
// # Schema Overview
//
//	version: "1"
//	tagging:
//	  use_component_string: true
//	  prefixes:              # category -> prefix; "" disables a category
//	    junk: "[JUNK]"
//	    misc: ""
//	  valid_tags: [LOOT]     # tags written by other mods that count as tagged
//	  keyword_categories:    # keyword editor id -> category, checked first
//	    MyModShinyKeyword: collectible
//	scrap:
//	  exclude:               # components never returned as scrap
//	    - 01FA8C:Fallout4.esm
//	  loss_factor: 0.5       # in (0, 1]
//	  round_mode: normal     # up | down | normal
//
// Prefixes that are not listed keep their default. Validation reports
// problems as coded diagnostics rather than failing on the first one.
package config
