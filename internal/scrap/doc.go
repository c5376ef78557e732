// Package scrap recalculates the scrap yield of loose modifications from
// the components their crafting recipe consumes.
//
// Every recipe entry is scaled by a loss factor in (0, 1] and rounded to an
// integer. Entries that do not name a resolvable component, are excluded,
// or round to zero are dropped; the surviving entries keep their recipe
// order.
package scrap
