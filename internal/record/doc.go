// Package record defines the read-only record model the engine consumes
// and the collaborator interfaces it is driven through.
//
// A Record is a tagged union: Kind selects which of its fields carry
// meaning. The engine never mutates a Record obtained from a View; every
// rewrite goes to the writable copy returned by Patch.GetOrAddOverride.
//
// # Collaborators
//
//   - View.Records returns the winning (conflict-resolved) records of a kind.
//   - View.Resolve dereferences a link to another record.
//   - Patch.GetOrAddOverride returns the writable override for a record,
//     creating it on first use and returning the same handle afterwards.
//
// Loading, conflict resolution and persistence live behind these
// interfaces; see the loadorder package for the implementation the CLI uses.
package record
