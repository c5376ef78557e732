package patcher

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"item-tagger/internal/common"
	"item-tagger/internal/record"
	"item-tagger/internal/scrap"
)

// Scrapper rewrites the scrap yield of loose mods from their recipes.
type Scrapper struct {
	view   record.View
	patch  record.Patch
	policy scrap.Policy
	logger *zap.Logger
}

// NewScrapper creates a scrapper. A nil logger disables logging.
func NewScrapper(view record.View, patch record.Patch, policy scrap.Policy, logger *zap.Logger) *Scrapper {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scrapper{
		view:   view,
		patch:  patch,
		policy: policy,
		logger: logger.Named("scrapper"),
	}
}

// scrapResult is the yield a recipe assigns to a loose mod's misc item.
type scrapResult struct {
	cobj  *record.Record
	misc  *record.Record
	yield []record.ComponentCount
}

// Run processes every constructible object. When several recipes create the
// same loose mod, the last one in record order decides its yield. The first
// fault stops the run and is returned as a *record.RecordError for the
// deciding recipe.
func (s *Scrapper) Run(ctx context.Context) (Stats, error) {
	stats := newStats()
	ks := stats.of(record.KindConstructibleObject)

	var order []record.FormKey
	results := make(map[record.FormKey]scrapResult)

	for _, cobj := range s.view.Records(record.KindConstructibleObject) {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		ks.Scanned++

		res, ok := s.resolveRecipe(cobj)
		if !ok {
			continue
		}

		if prev, seen := results[res.misc.Key]; seen {
			s.logger.Debug("recipe replaces earlier scrap", append(recordFields(cobj),
				zap.String("loose_mod", string(res.misc.Key)),
				zap.String("replaced", prev.cobj.EditorID),
			)...)
		} else {
			order = append(order, res.misc.Key)
		}

		results[res.misc.Key] = res
	}

	for _, key := range order {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		res := results[key]

		changed, err := s.apply(res)
		if err != nil {
			return stats, record.Enrich(err, res.cobj)
		}

		if changed {
			ks.Changed++
		}
	}

	s.logger.Debug("recipes done", zap.Object("stats", *ks))

	return stats, nil
}

// resolveRecipe handles one recipe: it must create an object modification
// whose loose mod is a misc item, and at least one component must survive
// the policy.
func (s *Scrapper) resolveRecipe(cobj *record.Record) (scrapResult, bool) {
	omod, ok := record.ResolveKind(s.view, cobj.CreatedObject, record.KindObjectModification)
	if !ok {
		return scrapResult{}, false
	}

	misc, ok := record.ResolveKind(s.view, omod.LooseMod, record.KindMiscItem)
	if !ok {
		return scrapResult{}, false
	}

	if !cobj.HasComponents() {
		return scrapResult{}, false
	}

	yield := scrap.Recompute(cobj.Components, s.policy, s.view)
	if common.IsEmpty(yield) {
		s.logger.Debug("no scrap survives", recordFields(cobj)...)
		return scrapResult{}, false
	}

	return scrapResult{cobj: cobj, misc: misc, yield: yield}, true
}

// apply writes the final yield. A loose mod that already scraps into it is
// left alone.
func (s *Scrapper) apply(res scrapResult) (bool, error) {
	if slices.Equal(res.misc.Components, res.yield) {
		return false, nil
	}

	override, err := s.patch.GetOrAddOverride(res.misc)
	if err != nil {
		return false, fmt.Errorf("failed to create override for %s: %w", res.misc, err)
	}

	override.Components = res.yield

	s.logger.Debug("scrap rewritten", append(recordFields(res.cobj),
		zap.String("loose_mod", string(res.misc.Key)),
		zap.Int("components", len(res.yield)),
	)...)

	return true, nil
}
