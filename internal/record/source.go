package record

// View is the read-only, conflict-resolved record set.
type View interface {
	// Records returns the winning records of the given kind in a fixed order.
	Records(kind Kind) []*Record
	// Resolve dereferences a link. It returns false for the null link and
	// for links that point at no loaded record.
	Resolve(link FormKey) (*Record, bool)
}

// Patch collects the overrides a run produces.
type Patch interface {
	// GetOrAddOverride returns the writable override of rec. Repeated calls
	// for the same FormKey within a run return the same handle.
	GetOrAddOverride(rec *Record) (*Record, error)
	// Lookup returns the override already created for key, if any.
	Lookup(key FormKey) (*Record, bool)
}

// ResolveKind resolves link and reports whether it points at a record of
// the wanted kind.
func ResolveKind(v View, link FormKey, kind Kind) (*Record, bool) {
	rec, ok := v.Resolve(link)
	if !ok || rec == nil || rec.Kind != kind {
		return nil, false
	}

	return rec, true
}
