// Package profile is the catalog of interaction profiles and the mapping
// from application bindings to hardware inputs.
//
// A connected controller is classified into a Family. Each family prefers
// one interaction profile; Select picks the profile whose suggested bindings
// are actually used, Remap rewrites a binding of that profile into the
// preferred profile's namespace and Map resolves it to a Source, a symbolic
// selector of one field of hmd.InputState.
//
// The component tables in components_gen.go are generated from
// profiles.yaml by cmd/xrbridge-profilegen.
package profile
