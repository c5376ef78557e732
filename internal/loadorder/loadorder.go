package loadorder

import (
	"fmt"
	"slices"

	"item-tagger/internal/record"
)

// LoadOrder is a stack of plugins resolved to their winning records.
// It implements record.View and is read-only once built.
type LoadOrder struct {
	plugins []*Plugin
	winners map[record.FormKey]*record.Record
	byKind  map[record.Kind][]*record.Record
}

var _ record.View = (*LoadOrder)(nil)

// New stacks plugins, lowest priority first. Every master a plugin names
// must appear earlier in the order, and plugin names must be unique.
func New(plugins ...*Plugin) (*LoadOrder, error) {
	lo := &LoadOrder{
		plugins: slices.Clone(plugins),
		winners: make(map[record.FormKey]*record.Record),
		byKind:  make(map[record.Kind][]*record.Record),
	}

	loaded := make(map[string]struct{}, len(plugins))
	for _, p := range plugins {
		if _, dup := loaded[p.Name]; dup {
			return nil, fmt.Errorf("plugin %s is loaded twice", p.Name)
		}

		for _, m := range p.Masters {
			if _, ok := loaded[m]; !ok {
				return nil, fmt.Errorf("plugin %s: master %s is not loaded before it", p.Name, m)
			}
		}

		loaded[p.Name] = struct{}{}
	}

	// highest priority first: the first definition of a form key wins
	for i := len(plugins) - 1; i >= 0; i-- {
		for _, rec := range plugins[i].Records {
			if _, ok := lo.winners[rec.Key]; ok {
				continue
			}

			lo.winners[rec.Key] = rec
			lo.byKind[rec.Kind] = append(lo.byKind[rec.Kind], rec)
		}
	}

	return lo, nil
}

// Load reads plugin files in load order.
func Load(paths ...string) (*LoadOrder, error) {
	plugins := make([]*Plugin, 0, len(paths))
	for _, path := range paths {
		p, err := LoadPlugin(path)
		if err != nil {
			return nil, err
		}

		plugins = append(plugins, p)
	}

	return New(plugins...)
}

// Plugins returns the plugin names in load order.
func (lo *LoadOrder) Plugins() []string {
	names := make([]string, len(lo.plugins))
	for i, p := range lo.plugins {
		names[i] = p.Name
	}

	return names
}

// Records returns the winning records of kind, highest-priority plugin first
// and in file order within a plugin.
func (lo *LoadOrder) Records(kind record.Kind) []*record.Record {
	return slices.Clone(lo.byKind[kind])
}

// Resolve returns the winning definition of link.
func (lo *LoadOrder) Resolve(link record.FormKey) (*record.Record, bool) {
	if link.IsNull() {
		return nil, false
	}

	rec, ok := lo.winners[link]

	return rec, ok
}

// Len returns the number of distinct records.
func (lo *LoadOrder) Len() int {
	return len(lo.winners)
}
