package log

// Logger receives the trace of a runtime: one Event per XR entry point
// call, plus snapshots, session state changes and binding changes.
// runtime.Config.Trace takes a Logger; a nil Trace disables tracing.
//
// Log is called with the runtime lock held, so implementations must not
// call back into the runtime and should return quickly. They must be safe
// for concurrent use.
type Logger interface {
	Log(event Event)
}

// NoopLogger drops every event. Its zero value is ready to use.
type NoopLogger struct{}

func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
