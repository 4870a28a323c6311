package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/xrbridge/xrbridge-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Calls            map[string]*CallStats
	Sessions         map[string]*SessionStats
	Errors           int
	FatalErrors      int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// CallStats holds statistics for one API function.
type CallStats struct {
	Count    int
	Failed   int
	Total    time.Duration
	Longest  time.Duration
	Failures map[string]int
}

// SessionStats holds statistics for a single session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Snapshots int
}

// Collect reads every event from r into Stats.
func Collect(r *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Calls:            make(map[string]*CallStats),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.Snapshot != nil {
			sess.Snapshots++
		}

		if c := event.Call; c != nil {
			cs, ok := stats.Calls[c.Function]
			if !ok {
				cs = &CallStats{Failures: make(map[string]int)}
				stats.Calls[c.Function] = cs
			}
			cs.Count++
			if c.Failed() {
				cs.Failed++
				cs.Failures[c.ResultName]++
			}
			if c.Duration != nil {
				cs.Total += *c.Duration
				if *c.Duration > cs.Longest {
					cs.Longest = *c.Duration
				}
			}
		}

		if event.Error != nil {
			stats.Errors++
			if event.Error.Fatal {
				stats.FatalErrors++
			}
		}
	}
	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := Collect(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== xrbridge Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for cat := log.CategoryCall; cat <= log.CategoryError; cat++ {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Calls) > 0 {
		names := make([]string, 0, len(stats.Calls))
		for name := range stats.Calls {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "Calls:")
		for _, name := range names {
			cs := stats.Calls[name]
			line := fmt.Sprintf("  %-40s %6d", name, cs.Count)
			if cs.Count > 0 && cs.Total > 0 {
				line += fmt.Sprintf("  avg %s  max %s", formatDuration(cs.Total/time.Duration(cs.Count)), formatDuration(cs.Longest))
			}
			if cs.Failed > 0 {
				line += fmt.Sprintf("  failed %d", cs.Failed)
			}
			fmt.Fprintln(w, line)

			codes := make([]string, 0, len(cs.Failures))
			for code := range cs.Failures {
				codes = append(codes, code)
			}
			sort.Strings(codes)
			for _, code := range codes {
				fmt.Fprintf(w, "      %s: %d\n", code, cs.Failures[code])
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			id := shortenSessionID(s.id)
			if id == "" {
				id = "none"
			}
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", id, s.stats.Events, duration)
			if s.stats.Snapshots > 0 {
				fmt.Fprintf(w, "           Snapshots: %d\n", s.stats.Snapshots)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d (fatal: %d)\n", stats.Errors, stats.FatalErrors)
	}
}
