package loadorder

import (
	"errors"
	"fmt"
	"slices"

	"item-tagger/internal/record"
)

// ErrNilRecord is returned when an override is requested for no record.
var ErrNilRecord = errors.New("cannot override a nil record")

// PatchMod collects the overrides produced by a run. It implements
// record.Patch: the first request for a form key copies the record, later
// requests return that same copy.
type PatchMod struct {
	name      string
	overrides map[record.FormKey]*record.Record
	order     []record.FormKey
}

var _ record.Patch = (*PatchMod)(nil)

// NewPatch creates an empty patch plugin.
func NewPatch(name string) *PatchMod {
	return &PatchMod{
		name:      name,
		overrides: make(map[record.FormKey]*record.Record),
	}
}

// Name returns the plugin name of the patch.
func (p *PatchMod) Name() string {
	return p.name
}

// GetOrAddOverride implements record.Patch.
func (p *PatchMod) GetOrAddOverride(rec *record.Record) (*record.Record, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}

	if rec.Key.IsNull() {
		return nil, fmt.Errorf("cannot override %s: null form key", rec.Kind)
	}

	if existing, ok := p.overrides[rec.Key]; ok {
		if existing.Kind != rec.Kind {
			return nil, fmt.Errorf("cannot override %s as %s: already overridden as %s", rec.Key, rec.Kind, existing.Kind)
		}

		return existing, nil
	}

	override := rec.Clone()
	p.overrides[rec.Key] = override
	p.order = append(p.order, rec.Key)

	return override, nil
}

// Lookup implements record.Patch.
func (p *PatchMod) Lookup(key record.FormKey) (*record.Record, bool) {
	rec, ok := p.overrides[key]
	return rec, ok
}

// Overrides returns the overrides in creation order.
func (p *PatchMod) Overrides() []*record.Record {
	recs := make([]*record.Record, 0, len(p.order))
	for _, key := range p.order {
		recs = append(recs, p.overrides[key])
	}

	return recs
}

// Len returns the number of overrides.
func (p *PatchMod) Len() int {
	return len(p.order)
}

// Plugin converts the patch into a plugin whose masters are the plugins
// the overridden records originate from.
func (p *PatchMod) Plugin() *Plugin {
	var masters []string

	for _, key := range p.order {
		if m := key.Plugin(); m != p.name && !slices.Contains(masters, m) {
			masters = append(masters, m)
		}
	}

	return &Plugin{
		Name:    p.name,
		Masters: masters,
		Records: p.Overrides(),
	}
}
