// Package patcher drives the two record pipelines over a resolved view and
// writes their results into a patch.
//
// Tagger walks item kinds in a fixed order (misc items, keys, ammunition,
// books, holotapes, ingestibles) and renames records that need a category
// tag. Scrapper walks constructible objects and rewrites the scrap yield of
// the loose-mod misc item each recipe produces.
//
// Neither pipeline requests an override unless it changes something, so a
// second run over the first run's output produces no overrides at all.
//
// # Failure policy
//
// A fault while tagging a misc item is logged with the record identity and
// the run continues. Any other fault aborts the run with a
// *record.RecordError naming the record.
package patcher
