package result

import "errors"

// Code represents an XR API result code.
type Code int32

const (
	// Success indicates the call completed.
	Success Code = 0

	// TimeoutExpired indicates a wait ran out of time.
	TimeoutExpired Code = 1

	// SessionLossPending indicates the session will be lost soon.
	SessionLossPending Code = 3

	// EventUnavailable indicates the event queue is empty.
	EventUnavailable Code = 4

	// SpaceBoundsUnavailable indicates the reference space has no known bounds.
	SpaceBoundsUnavailable Code = 7

	// SessionNotFocused indicates the call succeeded but input is withheld.
	SessionNotFocused Code = 8

	// FrameDiscarded indicates a frame was dropped.
	FrameDiscarded Code = 9
)

// Failure codes.
const (
	ValidationFailure                Code = -1
	RuntimeFailure                   Code = -2
	OutOfMemory                      Code = -3
	FunctionUnsupported              Code = -7
	FeatureUnsupported               Code = -8
	ExtensionNotPresent              Code = -9
	LimitReached                     Code = -10
	SizeInsufficient                 Code = -11
	HandleInvalid                    Code = -12
	InstanceLost                     Code = -13
	SessionRunning                   Code = -14
	SessionNotRunning                Code = -16
	SessionLost                      Code = -17
	SystemInvalid                    Code = -18
	PathInvalid                      Code = -19
	PathCountExceeded                Code = -20
	PathFormatInvalid                Code = -21
	PathUnsupported                  Code = -22
	ActionTypeMismatch               Code = -27
	SessionNotReady                  Code = -28
	SessionNotStopping               Code = -29
	TimeInvalid                      Code = -30
	ReferenceSpaceUnsupported        Code = -31
	CallOrderInvalid                 Code = -37
	PoseInvalid                      Code = -39
	IndexOutOfRange                  Code = -40
	ViewConfigurationTypeUnsupported Code = -41
	NameDuplicated                   Code = -44
	NameInvalid                      Code = -45
	ActionSetNotAttached             Code = -46
	ActionSetsAlreadyAttached        Code = -47
	LocalizedNameDuplicated          Code = -48
	LocalizedNameInvalid             Code = -49
)

var names = map[Code]string{
	Success:                          "XR_SUCCESS",
	TimeoutExpired:                   "XR_TIMEOUT_EXPIRED",
	SessionLossPending:               "XR_SESSION_LOSS_PENDING",
	EventUnavailable:                 "XR_EVENT_UNAVAILABLE",
	SpaceBoundsUnavailable:           "XR_SPACE_BOUNDS_UNAVAILABLE",
	SessionNotFocused:                "XR_SESSION_NOT_FOCUSED",
	FrameDiscarded:                   "XR_FRAME_DISCARDED",
	ValidationFailure:                "XR_ERROR_VALIDATION_FAILURE",
	RuntimeFailure:                   "XR_ERROR_RUNTIME_FAILURE",
	OutOfMemory:                      "XR_ERROR_OUT_OF_MEMORY",
	FunctionUnsupported:              "XR_ERROR_FUNCTION_UNSUPPORTED",
	FeatureUnsupported:               "XR_ERROR_FEATURE_UNSUPPORTED",
	ExtensionNotPresent:              "XR_ERROR_EXTENSION_NOT_PRESENT",
	LimitReached:                     "XR_ERROR_LIMIT_REACHED",
	SizeInsufficient:                 "XR_ERROR_SIZE_INSUFFICIENT",
	HandleInvalid:                    "XR_ERROR_HANDLE_INVALID",
	InstanceLost:                     "XR_ERROR_INSTANCE_LOST",
	SessionRunning:                   "XR_ERROR_SESSION_RUNNING",
	SessionNotRunning:                "XR_ERROR_SESSION_NOT_RUNNING",
	SessionLost:                      "XR_ERROR_SESSION_LOST",
	SystemInvalid:                    "XR_ERROR_SYSTEM_INVALID",
	PathInvalid:                      "XR_ERROR_PATH_INVALID",
	PathCountExceeded:                "XR_ERROR_PATH_COUNT_EXCEEDED",
	PathFormatInvalid:                "XR_ERROR_PATH_FORMAT_INVALID",
	PathUnsupported:                  "XR_ERROR_PATH_UNSUPPORTED",
	ActionTypeMismatch:               "XR_ERROR_ACTION_TYPE_MISMATCH",
	SessionNotReady:                  "XR_ERROR_SESSION_NOT_READY",
	SessionNotStopping:               "XR_ERROR_SESSION_NOT_STOPPING",
	TimeInvalid:                      "XR_ERROR_TIME_INVALID",
	ReferenceSpaceUnsupported:        "XR_ERROR_REFERENCE_SPACE_UNSUPPORTED",
	CallOrderInvalid:                 "XR_ERROR_CALL_ORDER_INVALID",
	PoseInvalid:                      "XR_ERROR_POSE_INVALID",
	IndexOutOfRange:                  "XR_ERROR_INDEX_OUT_OF_RANGE",
	ViewConfigurationTypeUnsupported: "XR_ERROR_VIEW_CONFIGURATION_TYPE_UNSUPPORTED",
	NameDuplicated:                   "XR_ERROR_NAME_DUPLICATED",
	NameInvalid:                      "XR_ERROR_NAME_INVALID",
	ActionSetNotAttached:             "XR_ERROR_ACTIONSET_NOT_ATTACHED",
	ActionSetsAlreadyAttached:        "XR_ERROR_ACTIONSETS_ALREADY_ATTACHED",
	LocalizedNameDuplicated:          "XR_ERROR_LOCALIZED_NAME_DUPLICATED",
	LocalizedNameInvalid:             "XR_ERROR_LOCALIZED_NAME_INVALID",
}

// String returns the XR_* name of the code.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	if c < 0 {
		return "XR_UNKNOWN_FAILURE"
	}
	return "XR_UNKNOWN_SUCCESS"
}

// Error implements error.
func (c Code) Error() string {
	return c.String()
}

// Succeeded returns true for success and qualified success codes.
func (c Code) Succeeded() bool {
	return c >= 0
}

// Failed returns true for failure codes.
func (c Code) Failed() bool {
	return c < 0
}

// Of maps an error returned by an entry point to its result code.
// nil maps to Success and a fatal error maps to RuntimeFailure.
func Of(err error) Code {
	if err == nil {
		return Success
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return RuntimeFailure
}
