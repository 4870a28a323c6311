package result

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Success, "XR_SUCCESS"},
		{SessionNotFocused, "XR_SESSION_NOT_FOCUSED"},
		{PathFormatInvalid, "XR_ERROR_PATH_FORMAT_INVALID"},
		{ActionSetsAlreadyAttached, "XR_ERROR_ACTIONSETS_ALREADY_ATTACHED"},
		{Code(-999), "XR_UNKNOWN_FAILURE"},
		{Code(999), "XR_UNKNOWN_SUCCESS"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodeSucceeded(t *testing.T) {
	if !SessionNotFocused.Succeeded() {
		t.Error("SessionNotFocused should be a qualified success")
	}
	if HandleInvalid.Succeeded() {
		t.Error("HandleInvalid should not succeed")
	}
	if !HandleInvalid.Failed() {
		t.Error("HandleInvalid should fail")
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != Success {
		t.Errorf("Of(nil) = %v, want %v", got, Success)
	}
	if got := Of(PathInvalid); got != PathInvalid {
		t.Errorf("Of(PathInvalid) = %v", got)
	}
	wrapped := fmt.Errorf("locate: %w", TimeInvalid)
	if got := Of(wrapped); got != TimeInvalid {
		t.Errorf("Of(wrapped) = %v, want %v", got, TimeInvalid)
	}
	if got := Of(Fatal("input state", errors.New("usb gone"))); got != RuntimeFailure {
		t.Errorf("Of(fatal) = %v, want %v", got, RuntimeFailure)
	}
}

func TestFatalError(t *testing.T) {
	cause := errors.New("device removed")
	err := fmt.Errorf("sync: %w", Fatal("get input state", cause))

	if !IsFatal(err) {
		t.Fatal("expected fatal error")
	}
	if !errors.Is(err, cause) {
		t.Error("fatal error should unwrap to its cause")
	}
	if IsFatal(HandleInvalid) {
		t.Error("result codes are not fatal")
	}
}
