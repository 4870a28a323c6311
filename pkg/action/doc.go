// Package action holds the action sets and actions an application creates,
// the bindings it suggests for each interaction profile, and the sources
// those bindings resolve to on the connected hardware.
//
// # Handles
//
// Action sets and actions live in an Arena. A Handle packs the arena slot
// index with a generation counter, so a handle to a destroyed object never
// resolves again even when its slot is reused. The zero Handle is null.
//
// # Binding
//
// Suggestions are stored per profile.Profile. A Binder turns them into
// sources on the live actions whenever a controller or tracker appears,
// disappears or changes type. Each Action keeps its sources ordered by
// binding path; state queries combine them against the action set's own
// copy of the hardware snapshot.
package action
