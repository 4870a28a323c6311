package log

import (
	"bytes"
	"io"
	"testing"
	"time"
)

func streamOf(t *testing.T, events []Event) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger := NewStreamLogger(&buf)
	for _, e := range events {
		logger.Log(e)
	}
	return &buf
}

func sampleEvents(base time.Time) []Event {
	code := -2
	return []Event{
		{Timestamp: base, SessionID: "a", Category: CategoryCall,
			Call: &CallEvent{Function: "xrCreateSession", Result: 0}},
		{Timestamp: base.Add(time.Second), SessionID: "a", Category: CategoryCall,
			Call: &CallEvent{Function: "xrSyncActions", Result: -46}},
		{Timestamp: base.Add(2 * time.Second), SessionID: "a", Category: CategorySnapshot,
			Snapshot: &SnapshotEvent{}},
		{Timestamp: base.Add(3 * time.Second), SessionID: "b", Category: CategoryError,
			Error: &ErrorEventData{Message: "usb", Code: &code, Fatal: true}},
		{Timestamp: base.Add(4 * time.Second), SessionID: "b", Category: CategoryCall,
			Call: &CallEvent{Function: "xrSyncActions", Result: 8}},
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	base := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	r := NewStreamReader(streamOf(t, sampleEvents(base)), Filter{})

	var read []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
	if len(read) != 5 {
		t.Fatalf("got %d events, want 5", len(read))
	}
	if read[1].Call.Function != "xrSyncActions" {
		t.Errorf("second event = %+v", read[1].Call)
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	calls := CategoryCall
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 5},
		{"session", Filter{SessionID: "b"}, 2},
		{"category", Filter{Category: &calls}, 3},
		{"function", Filter{Function: "SYNC"}, 2},
		{"failed", Filter{FailedOnly: true}, 2},
		{"window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{SessionID: "a", Function: "sync", FailedOnly: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := NewStreamReader(streamOf(t, sampleEvents(base)), tt.filter).All()
			if err != nil {
				t.Fatalf("All failed: %v", err)
			}
			if len(events) != tt.want {
				t.Errorf("got %d events, want %d", len(events), tt.want)
			}
		})
	}
}

func TestReaderHandlesEmptyStream(t *testing.T) {
	r := NewStreamReader(&bytes.Buffer{}, Filter{})
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next on empty stream = %v, want io.EOF", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}

func TestReaderReportsCorruption(t *testing.T) {
	buf := streamOf(t, sampleEvents(time.Now())[:1])
	buf.Write([]byte{0xbf, 0x01})
	r := NewStreamReader(buf, Filter{})

	if _, err := r.Next(); err != nil {
		t.Fatalf("first event: %v", err)
	}
	if _, err := r.Next(); err == nil || err == io.EOF {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestReaderAllKeepsEventsBeforeTruncation(t *testing.T) {
	events := sampleEvents(time.Now())
	buf := streamOf(t, events)
	whole := buf.Len()
	last, err := EncodeEvent(events[len(events)-1])
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}
	buf.Truncate(whole - len(last)/2)

	got, err := NewStreamReader(buf, Filter{}).All()
	if err == nil {
		t.Error("expected an error for the cut event")
	}
	if len(got) != len(events)-1 {
		t.Fatalf("All returned %d events, want %d", len(got), len(events)-1)
	}
	if got[1].Call == nil || got[1].Call.Function != "xrSyncActions" {
		t.Errorf("second event = %+v", got[1])
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader("/nonexistent/trace.xlog"); err == nil {
		t.Error("expected error for missing file")
	}
}
