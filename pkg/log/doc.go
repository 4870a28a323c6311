// Package log provides a structured trace of the runtime for xrbridge.
//
// This package defines the Logger interface and Event types for capturing
// API calls, latched input snapshots, bindings and lifecycle changes. It is
// separate from operational logging (slog) - the trace is a complete
// machine-readable record for debugging applications against the runtime.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Trace = log.NewSlogAdapter(slog.Default())
//
//	// For capture: write to binary file
//	cfg.Trace, _ = log.NewFileLogger("/tmp/xrbridge.xlog")
//
//	// Both: use MultiLogger
//	cfg.Trace = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
//   - Call: an entry point with its arguments and result (CallEvent)
//   - Snapshot: the input latched by a sync (SnapshotEvent)
//   - State: session state and device hot-plug (StateChangeEvent)
//   - Binding: a source installed on an action (BindingEvent)
//   - Error: hardware failures (ErrorEventData)
//
// # File Format
//
// Trace files use CBOR encoding with the .xlog extension. The xrbridge-log
// CLI tool provides viewing, filtering, and export capabilities.
package log
