package log

import (
	"testing"
	"time"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryCall, "CALL"},
		{CategorySnapshot, "SNAPSHOT"},
		{CategoryState, "STATE"},
		{CategoryBinding, "BINDING"},
		{CategoryError, "ERROR"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.cat.String()
		if got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
		if tt.want == "UNKNOWN" {
			continue
		}
		if parsed, ok := ParseCategory(tt.want); !ok || parsed != tt.cat {
			t.Errorf("ParseCategory(%q) = %v, %v", tt.want, parsed, ok)
		}
	}

	if _, ok := ParseCategory("MESSAGE"); ok {
		t.Error("ParseCategory accepted an unknown name")
	}
}

func TestStateEntityString(t *testing.T) {
	if got := StateEntityTracker.String(); got != "TRACKER" {
		t.Errorf("StateEntityTracker.String() = %q", got)
	}
	if got := StateEntity(42).String(); got != "UNKNOWN" {
		t.Errorf("StateEntity(42).String() = %q", got)
	}
}

func TestCallEventFailed(t *testing.T) {
	if (&CallEvent{Result: 8}).Failed() {
		t.Error("qualified success reported as failure")
	}
	if !(&CallEvent{Result: -12}).Failed() {
		t.Error("HANDLE_INVALID not reported as failure")
	}
}

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 10, 19, 10, 15, 32, 123456789, time.UTC)
	took := 1500 * time.Nanosecond

	var input hmd.InputState
	input.TimeInSeconds = 12.5
	input.HandButtons[1] = uint32(hmd.ButtonA)
	input.JoyStick[0] = xrmath.Vector2f{X: 0.25, Y: -1}

	events := []Event{
		{
			Timestamp: ts,
			SessionID: "abc12345-def6-7890-abcd-ef1234567890",
			Category:  CategoryCall,
			Call: &CallEvent{
				Function:   "xrGetActionStateBoolean",
				Args:       map[string]string{"action": "1:1", "subactionPath": "/user/hand/left"},
				Result:     -46,
				ResultName: "XR_ERROR_ACTIONSET_NOT_ATTACHED",
				Duration:   &took,
			},
		},
		{
			Timestamp: ts,
			Category:  CategorySnapshot,
			Snapshot: &SnapshotEvent{
				Input:           input,
				ControllerTypes: [2]string{"knuckles", "knuckles"},
				TrackerSerials:  []string{"lhr-1"},
			},
		},
		{
			Timestamp: ts,
			Category:  CategoryBinding,
			Binding: &BindingEvent{
				Action:      "fire",
				BindingPath: "/user/hand/right/input/x/click",
				RealPath:    "/user/hand/right/input/a/click",
				Field:       "HandButtons",
				Profile:     "/interaction_profiles/oculus/touch_controller",
			},
		},
	}

	for _, original := range events {
		data, err := EncodeEvent(original)
		if err != nil {
			t.Fatalf("EncodeEvent failed: %v", err)
		}
		decoded, err := DecodeEvent(data)
		if err != nil {
			t.Fatalf("DecodeEvent failed: %v", err)
		}

		if !decoded.Timestamp.Equal(original.Timestamp) {
			t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
		}
		if decoded.SessionID != original.SessionID || decoded.Category != original.Category {
			t.Errorf("header: got %q/%v, want %q/%v",
				decoded.SessionID, decoded.Category, original.SessionID, original.Category)
		}
		switch {
		case original.Call != nil:
			if decoded.Call == nil || decoded.Call.Function != original.Call.Function {
				t.Fatalf("Call: got %+v", decoded.Call)
			}
			if decoded.Call.Result != -46 || decoded.Call.Args["subactionPath"] != "/user/hand/left" {
				t.Errorf("Call: got %+v", decoded.Call)
			}
			if decoded.Call.Duration == nil || *decoded.Call.Duration != took {
				t.Errorf("Duration: got %v", decoded.Call.Duration)
			}
		case original.Snapshot != nil:
			if decoded.Snapshot == nil || decoded.Snapshot.Input != input {
				t.Fatalf("Snapshot: got %+v", decoded.Snapshot)
			}
			if decoded.Snapshot.ControllerTypes[1] != "knuckles" || len(decoded.Snapshot.TrackerSerials) != 1 {
				t.Errorf("Snapshot: got %+v", decoded.Snapshot)
			}
		case original.Binding != nil:
			if decoded.Binding == nil || *decoded.Binding != *original.Binding {
				t.Errorf("Binding: got %+v", decoded.Binding)
			}
		}
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	event := Event{
		Category: CategoryCall,
		Call: &CallEvent{
			Function: "xrLocateSpace",
			Args:     map[string]string{"space": "1:1", "baseSpace": "2:1", "time": "1000"},
		},
	}
	first, err := EncodeEvent(event)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, _ := EncodeEvent(event)
		if string(again) != string(first) {
			t.Fatal("encoding of the same event differs")
		}
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected an error decoding garbage")
	}
}
