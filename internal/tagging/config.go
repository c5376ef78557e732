package tagging

import (
	"maps"
	"slices"
	"strings"
)

// Options are the settings a Config is built from.
type Options struct {
	// Prefixes maps each category to its tag prefix. Missing or empty
	// entries leave records of that category untouched.
	Prefixes map[Category]string
	// ValidTags are extra tag texts (without brackets) that count as already
	// tagged, e.g. tags written by other sorting mods.
	ValidTags []string
	// UseComponentString appends " {{{a,b}}}" with the scrap component
	// names to tagged misc items.
	UseComponentString bool
	// KeywordCategories maps keyword editor IDs to categories. These take
	// precedence over the built-in rules.
	KeywordCategories map[string]Category
}

// Config is the immutable tagging configuration threaded through a run.
type Config struct {
	prefixes          map[Category]string
	validTags         map[string]struct{}
	stripPrefixes     []string
	keywordCategories map[string]Category
	useComponents     bool
}

// NewConfig builds a Config. The valid-tag set is opts.ValidTags plus the
// inner text of every bracketed prefix, so names written by a run are
// recognised as tagged on the next one.
func NewConfig(opts Options) *Config {
	c := &Config{
		prefixes:          make(map[Category]string, len(opts.Prefixes)),
		validTags:         make(map[string]struct{}, len(opts.ValidTags)+len(opts.Prefixes)),
		keywordCategories: maps.Clone(opts.KeywordCategories),
		useComponents:     opts.UseComponentString,
	}

	for cat, prefix := range opts.Prefixes {
		prefix = strings.TrimSpace(prefix)
		if cat == CategoryNone || prefix == "" {
			continue
		}

		c.prefixes[cat] = prefix
		c.stripPrefixes = append(c.stripPrefixes, prefix)

		if inner, _, ok := leadingToken(prefix); ok {
			c.validTags[inner] = struct{}{}
		}
	}

	for _, tag := range opts.ValidTags {
		if tag != "" {
			c.validTags[tag] = struct{}{}
		}
	}

	// longest first so "[Junk] -" wins over "[Junk]"
	slices.SortFunc(c.stripPrefixes, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}

		return strings.Compare(a, b)
	})
	c.stripPrefixes = slices.Compact(c.stripPrefixes)

	return c
}

// DefaultConfig returns a Config using DefaultPrefixes.
func DefaultConfig() *Config {
	return NewConfig(Options{Prefixes: DefaultPrefixes()})
}

// Prefix returns the configured prefix for cat, or "" when cat is not tagged.
func (c *Config) Prefix(cat Category) string {
	return c.prefixes[cat]
}

// IsTagValid reports whether tag (bracket-less) is a member of the valid-tag set.
func (c *Config) IsTagValid(tag string) bool {
	_, ok := c.validTags[tag]
	return ok
}

// UseComponentString reports whether misc items get a component annotation.
func (c *Config) UseComponentString() bool {
	return c.useComponents
}

// KeywordCategory returns the configured category for a keyword editor ID.
func (c *Config) KeywordCategory(editorID string) (Category, bool) {
	cat, ok := c.keywordCategories[editorID]
	return cat, ok && cat != CategoryNone
}
