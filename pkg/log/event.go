package log

import (
	"time"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
)

// Event represents one runtime trace event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the runtime session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Type-specific payload (one of these will be set).
	Call        *CallEvent        `cbor:"10,keyasint,omitempty"` // API entry point
	Snapshot    *SnapshotEvent    `cbor:"11,keyasint,omitempty"` // Latched hardware input
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"` // Session/device state
	Binding     *BindingEvent     `cbor:"13,keyasint,omitempty"` // Installed action source
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"` // Hardware or internal errors
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCall indicates an API call and its result.
	CategoryCall Category = 0
	// CategorySnapshot indicates a hardware input snapshot.
	CategorySnapshot Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryBinding indicates a binding change.
	CategoryBinding Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCall:
		return "CALL"
	case CategorySnapshot:
		return "SNAPSHOT"
	case CategoryState:
		return "STATE"
	case CategoryBinding:
		return "BINDING"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, bool) {
	for c := CategoryCall; c <= CategoryError; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// CallEvent captures an API entry point.
type CallEvent struct {
	// Function is the API name, for example "xrSyncActions".
	Function string `cbor:"1,keyasint"`

	// Args are the printable call arguments.
	Args map[string]string `cbor:"2,keyasint,omitempty"`

	// Result is the numeric result code.
	Result int32 `cbor:"3,keyasint"`

	// ResultName is the XR_* name of Result.
	ResultName string `cbor:"4,keyasint,omitempty"`

	// Duration is the time spent in the call. Stored as nanoseconds.
	Duration *time.Duration `cbor:"5,keyasint,omitempty"`
}

// Failed reports whether the call returned a failure code.
func (c *CallEvent) Failed() bool {
	return c.Result < 0
}

// SnapshotEvent captures the hardware input latched by a sync.
type SnapshotEvent struct {
	// Input is the latched state.
	Input hmd.InputState `cbor:"1,keyasint"`

	// ControllerTypes are the controller types detected per hand.
	ControllerTypes [2]string `cbor:"2,keyasint"`

	// TrackerSerials are the connected tracker serials.
	TrackerSerials []string `cbor:"3,keyasint,omitempty"`
}

// StateChangeEvent captures session and device lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntitySession indicates a session state change.
	StateEntitySession StateEntity = 0
	// StateEntityController indicates a controller was connected, removed or
	// bound to a different profile.
	StateEntityController StateEntity = 1
	// StateEntityTracker indicates a tracker was connected or removed.
	StateEntityTracker StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntitySession:
		return "SESSION"
	case StateEntityController:
		return "CONTROLLER"
	case StateEntityTracker:
		return "TRACKER"
	default:
		return "UNKNOWN"
	}
}

// BindingEvent captures a source installed on an action.
type BindingEvent struct {
	// Action is the action name.
	Action string `cbor:"1,keyasint"`

	// BindingPath is the path the application suggested.
	BindingPath string `cbor:"2,keyasint"`

	// RealPath is the hardware input read.
	RealPath string `cbor:"3,keyasint"`

	// Field is the snapshot field read, empty for poses and haptics.
	Field string `cbor:"4,keyasint,omitempty"`

	// Profile is the interaction profile the binding was suggested for.
	Profile string `cbor:"5,keyasint,omitempty"`
}

// ErrorEventData captures errors.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Code is the result code (if applicable).
	Code *int `cbor:"2,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`

	// Fatal is set when the error poisoned the runtime.
	Fatal bool `cbor:"4,keyasint,omitempty"`
}
