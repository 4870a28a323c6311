// Package hmd describes the head-mounted-display SDK the runtime sits on.
//
// Session is the collaborator interface: every hardware query the input
// engine needs goes through it. InputState is the per-frame snapshot of all
// controller inputs; Field selects one value out of a snapshot symbolically so
// that bindings never hold references into a particular copy.
//
// Implementations:
//   - sim: an in-memory headset for tests and the simulator CLI
//   - record: a recorder/replayer of CBOR frame captures
//   - mocks: generated testify mocks
package hmd
