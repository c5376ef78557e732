package patcher

import (
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"item-tagger/internal/record"
)

// KindStats counts what happened to the records of one kind.
type KindStats struct {
	Scanned int
	Changed int
	Failed  int
}

// Skipped is the number of scanned records that were left alone.
func (k KindStats) Skipped() int {
	return k.Scanned - k.Changed - k.Failed
}

// Stats summarises a run per record kind.
type Stats struct {
	kinds map[record.Kind]*KindStats
}

func newStats() Stats {
	return Stats{kinds: make(map[record.Kind]*KindStats)}
}

func (s Stats) of(kind record.Kind) *KindStats {
	ks, ok := s.kinds[kind]
	if !ok {
		ks = &KindStats{}
		s.kinds[kind] = ks
	}

	return ks
}

// Kind returns the counters for kind.
func (s Stats) Kind(kind record.Kind) KindStats {
	if ks, ok := s.kinds[kind]; ok {
		return *ks
	}

	return KindStats{}
}

// Kinds returns the kinds that were scanned, in kind order.
func (s Stats) Kinds() []record.Kind {
	kinds := make([]record.Kind, 0, len(s.kinds))
	for k := range s.kinds {
		kinds = append(kinds, k)
	}

	slices.Sort(kinds)

	return kinds
}

// Total sums the counters over all kinds.
func (s Stats) Total() KindStats {
	var total KindStats
	for _, ks := range s.kinds {
		total.Scanned += ks.Scanned
		total.Changed += ks.Changed
		total.Failed += ks.Failed
	}

	return total
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (k KindStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("scanned", k.Scanned)
	enc.AddInt("changed", k.Changed)
	enc.AddInt("skipped", k.Skipped())
	enc.AddInt("failed", k.Failed)

	return nil
}

func recordFields(rec *record.Record) []zap.Field {
	return []zap.Field{
		zap.Stringer("kind", rec.Kind),
		zap.String("form_key", string(rec.Key)),
		zap.String("editor_id", rec.EditorID),
	}
}
