// Package commands implements the xrbridge-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/xrbridge/xrbridge-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category   *log.Category
	Function   string
	FailedOnly bool
}

func (f ViewFilter) toLogFilter() log.Filter {
	return log.Filter{Category: f.Category, Function: f.Function, FailedOnly: f.FailedOnly}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] CATEGORY label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sessionID := shortenSessionID(event.SessionID)

	var label string
	switch {
	case event.Call != nil:
		label = event.Call.Function
	case event.Snapshot != nil:
		label = "Snapshot"
	case event.StateChange != nil:
		label = event.StateChange.Entity.String()
	case event.Binding != nil:
		label = event.Binding.Action
	case event.Error != nil:
		label = "Error"
	default:
		label = "Unknown"
	}

	fmt.Fprintf(w, "%s [session:%s] %-8s %s\n", ts, sessionID, event.Category.String(), label)

	switch {
	case event.Call != nil:
		formatCallDetails(w, event.Call)
	case event.Snapshot != nil:
		formatSnapshotDetails(w, event.Snapshot)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Binding != nil:
		formatBindingDetails(w, event.Binding)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatCallDetails(w io.Writer, call *log.CallEvent) {
	if len(call.Args) > 0 {
		keys := make([]string, 0, len(call.Args))
		for k := range call.Args {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"="+call.Args[k])
		}
		fmt.Fprintf(w, "  Args: %s\n", strings.Join(parts, " "))
	}
	name := call.ResultName
	if name == "" {
		name = "?"
	}
	fmt.Fprintf(w, "  Result: %s (%d)\n", name, call.Result)
	if call.Duration != nil {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*call.Duration))
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatBindingDetails(w io.Writer, b *log.BindingEvent) {
	fmt.Fprintf(w, "  %s -> %s\n", b.BindingPath, b.RealPath)
	if b.Field != "" {
		fmt.Fprintf(w, "  Field: %s\n", b.Field)
	}
	if b.Profile != "" {
		fmt.Fprintf(w, "  Profile: %s\n", b.Profile)
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *e.Code)
	}
	if e.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", e.Context)
	}
	if e.Fatal {
		fmt.Fprintln(w, "  Fatal: true")
	}
}

func formatSnapshotDetails(w io.Writer, snap *log.SnapshotEvent) {
	in := snap.Input
	fmt.Fprintf(w, "  Time: %.3fs\n", in.TimeInSeconds)
	for side, name := range []string{"Left", "Right"} {
		typ := snap.ControllerTypes[side]
		if typ == "" {
			typ = "-"
		}
		fmt.Fprintf(w, "  %-5s %s buttons=0x%04x trigger=%.2f grip=%.2f stick=(%.2f, %.2f)\n",
			name, typ, in.HandButtons[side], in.Trigger[side], in.Grip[side],
			in.JoyStick[side].X, in.JoyStick[side].Y)
	}
	if len(snap.TrackerSerials) > 0 {
		fmt.Fprintf(w, "  Trackers: %s\n", strings.Join(snap.TrackerSerials, ", "))
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be call, snapshot, state, binding, or error)", s)
	}
	return c, nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.toLogFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
