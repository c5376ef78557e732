// Package tagging decides whether and how an item's display name is
// prefixed with a category tag.
//
// The pipeline for a single record is:
//
//  1. ShouldTag inspects the name for an existing bracketed tag. A name
//     already carrying a valid tag is left alone, so repeated runs are
//     no-ops; a stale or unknown tag makes the name eligible again.
//  2. Classifier.Classify maps the record's structural signals (keywords,
//     effects, flags, holotape type, components) to a single Category.
//  3. Rewrite composes "<prefix> <base>" and, for misc items, an optional
//     " {{{a,b}}}" component annotation. Rewriting its own output with the
//     same category returns the same string.
//
// # Tag syntax
//
// An existing tag is a leading bracket from the set [ ] ( ) | { }, one or
// more non-bracket runes, another bracket from the same set, and at least
// one further rune:
//
//	[Junk] Toy Truck     tag "Junk"
//	(Aid)Stimpak         tag "Aid"
//	|Note| Holotape      tag "Note"
//	[Junk]               no tag (nothing follows)
//	[] Toy Truck         no tag (empty)
package tagging
