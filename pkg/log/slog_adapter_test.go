package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func captureSlog(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestSlogAdapterLogsCall(t *testing.T) {
	took := 2 * time.Microsecond
	entry := captureSlog(t, Event{
		SessionID: "sess-1",
		Category:  CategoryCall,
		Call: &CallEvent{
			Function:   "xrStringToPath",
			Args:       map[string]string{"pathString": "/user/hand/left"},
			ResultName: "XR_SUCCESS",
			Duration:   &took,
		},
	})

	if entry["session"] != "sess-1" {
		t.Errorf("session: got %v", entry["session"])
	}
	if entry["fn"] != "xrStringToPath" {
		t.Errorf("fn: got %v", entry["fn"])
	}
	if entry["pathString"] != "/user/hand/left" {
		t.Errorf("pathString: got %v", entry["pathString"])
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("level: got %v", entry["level"])
	}
}

func TestSlogAdapterRaisesFailures(t *testing.T) {
	entry := captureSlog(t, Event{
		Category: CategoryCall,
		Call:     &CallEvent{Function: "xrAttachSessionActionSets", Result: -47},
	})
	if entry["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN", entry["level"])
	}

	code := -2
	entry = captureSlog(t, Event{
		Category: CategoryError,
		Error:    &ErrorEventData{Message: "device removed", Code: &code, Fatal: true},
	})
	if entry["level"] != "ERROR" {
		t.Errorf("level: got %v, want ERROR", entry["level"])
	}
	if entry["fatal"] != true || entry["error_code"] != float64(-2) {
		t.Errorf("error attrs: %v", entry)
	}
}

func TestSlogAdapterLogsBindingAndState(t *testing.T) {
	entry := captureSlog(t, Event{
		Category: CategoryBinding,
		Binding:  &BindingEvent{Action: "fire", BindingPath: "/user/hand/left/input/trigger/value", RealPath: "/user/hand/left/input/trigger/value", Field: "Trigger"},
	})
	if entry["action"] != "fire" || entry["field"] != "Trigger" {
		t.Errorf("binding attrs: %v", entry)
	}

	entry = captureSlog(t, Event{
		Category:    CategoryState,
		StateChange: &StateChangeEvent{Entity: StateEntitySession, OldState: "READY", NewState: "SYNCHRONIZED"},
	})
	if entry["entity"] != "SESSION" || entry["new_state"] != "SYNCHRONIZED" {
		t.Errorf("state attrs: %v", entry)
	}
}

func TestSlogAdapterWithLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Event{Category: CategorySnapshot, Snapshot: &SnapshotEvent{}})
	if buf.Len() != 0 {
		t.Fatal("debug event passed an info handler")
	}
	adapter.WithLevel(slog.LevelInfo).Log(Event{Category: CategorySnapshot, Snapshot: &SnapshotEvent{}})
	if buf.Len() == 0 {
		t.Error("info event was dropped")
	}
}
