package patcher

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"item-tagger/internal/record"
	"item-tagger/internal/tagging"
)

// taggedKinds is the fixed processing order of the tagger.
var taggedKinds = []record.Kind{
	record.KindMiscItem,
	record.KindKey,
	record.KindAmmunition,
	record.KindBook,
	record.KindHolotape,
	record.KindIngestible,
}

// Tagger prefixes item names with their category tag.
type Tagger struct {
	view       record.View
	patch      record.Patch
	cfg        *tagging.Config
	classifier *tagging.Classifier
	logger     *zap.Logger
}

// NewTagger creates a tagger. A nil logger disables logging.
func NewTagger(view record.View, patch record.Patch, cfg *tagging.Config, logger *zap.Logger) *Tagger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Tagger{
		view:       view,
		patch:      patch,
		cfg:        cfg,
		classifier: tagging.NewClassifier(view, cfg),
		logger:     logger.Named("tagger"),
	}
}

// Run tags every eligible record. Misc-item faults are logged and skipped;
// any other fault stops the run.
func (t *Tagger) Run(ctx context.Context) (Stats, error) {
	stats := newStats()

	for _, kind := range taggedKinds {
		ks := stats.of(kind)

		for _, rec := range t.view.Records(kind) {
			if err := ctx.Err(); err != nil {
				return stats, err
			}

			ks.Scanned++

			changed, err := t.tagRecord(rec)
			if err != nil {
				if kind != record.KindMiscItem {
					return stats, record.Enrich(err, rec)
				}

				ks.Failed++
				t.logger.Warn("failed to tag record, skipping", append(recordFields(rec), zap.Error(err))...)

				continue
			}

			if changed {
				ks.Changed++
			}
		}

		t.logger.Debug("kind done", zap.Stringer("kind", kind), zap.Object("stats", *ks))
	}

	return stats, nil
}

func (t *Tagger) tagRecord(rec *record.Record) (bool, error) {
	if rec.Name == nil {
		return false, nil
	}

	name := *rec.Name
	if !t.cfg.ShouldTag(name) {
		return false, nil
	}

	cat := t.classifier.Classify(rec)
	if cat == tagging.CategoryNone || t.cfg.Prefix(cat) == "" {
		return false, nil
	}

	var components []string
	if rec.Kind == record.KindMiscItem && t.cfg.UseComponentString() {
		// an earlier stage of the run may have rewritten the scrap list
		src := rec
		if o, ok := t.patch.Lookup(rec.Key); ok {
			src = o
		}

		if src.HasComponents() {
			components = t.componentNames(src)
		}
	}

	newName, ok := t.cfg.Rewrite(name, cat, components)
	if !ok || newName == name {
		return false, nil
	}

	override, err := t.patch.GetOrAddOverride(rec)
	if err != nil {
		return false, fmt.Errorf("failed to create override: %w", err)
	}

	override.SetName(newName)

	t.logger.Debug("tagged record", append(recordFields(rec),
		zap.Stringer("category", cat),
		zap.String("name", newName),
	)...)

	return true, nil
}

// componentNames returns the display names of the components a misc item
// scraps into; unresolved links are skipped.
func (t *Tagger) componentNames(rec *record.Record) []string {
	names := make([]string, 0, len(rec.Components))
	for _, c := range rec.Components {
		comp, ok := record.ResolveKind(t.view, c.Component, record.KindComponent)
		if !ok || comp.Name == nil {
			continue
		}

		names = append(names, *comp.Name)
	}

	return names
}
