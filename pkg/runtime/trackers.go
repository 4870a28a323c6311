package runtime

import (
	"sort"
	"strings"
	"sync"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/log"
)

// trackerRegistry maps lower-cased tracker serials to their enumeration
// index. It has its own lock so that pose queries can read it while a
// sync replaces it.
type trackerRegistry struct {
	mu       sync.Mutex
	bySerial map[string]int
	pending  []string
}

func newTrackerRegistry() *trackerRegistry {
	return &trackerRegistry{bySerial: make(map[string]int)}
}

// index returns the index of the tracker whose serial maps to rolePath.
// When several trackers share the role the lowest enumeration index wins.
func (t *trackerRegistry) index(rolePath string, rolePathOf func(serial string) string) int {
	if rolePath == "" {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	found := -1
	for serial, i := range t.bySerial {
		if (found < 0 || i < found) && rolePathOf(serial) == rolePath {
			found = i
		}
	}
	return found
}

func (t *trackerRegistry) has(serial string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.bySerial[serial]
	return ok
}

func (t *trackerRegistry) indexOf(serial string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i, ok := t.bySerial[serial]; ok {
		return i
	}
	return -1
}

func (t *trackerRegistry) serials() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.bySerial))
	for serial := range t.bySerial {
		out = append(out, serial)
	}
	sort.Strings(out)
	return out
}

// replace installs the new serial map and returns the serials that
// vanished.
func (t *trackerRegistry) replace(next map[string]int) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var gone []string
	for serial := range t.bySerial {
		if _, ok := next[serial]; !ok {
			gone = append(gone, serial)
		}
	}
	sort.Strings(gone)
	t.bySerial = next
	return gone
}

func (t *trackerRegistry) notify(serial string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = append(t.pending, serial)
}

func (t *trackerRegistry) popNotification() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) == 0 {
		return "", false
	}
	serial := t.pending[0]
	t.pending = t.pending[1:]
	return serial, true
}

// syncTrackers enumerates the connected trackers, binds new ones and
// unbinds the ones that vanished. Callers hold mu.
func (r *Runtime) syncTrackers() error {
	count, err := r.hmd.TrackerCount()
	if err != nil {
		return r.fail("TrackerCount", err)
	}
	if count > hmd.MaxTrackers {
		count = hmd.MaxTrackers
	}

	next := make(map[string]int, count)
	for i := 0; i < count; i++ {
		serial, err := r.hmd.TrackerSerial(i)
		if err != nil {
			return r.fail("TrackerSerial", err)
		}
		if serial == "" {
			continue
		}
		serial = strings.ToLower(serial)
		if !r.trackers.has(serial) {
			rolePath := r.settings.TrackerRolePath(serial)
			r.logger.Info("tracker detected", "serial", serial, "role", rolePath)
			r.traceState(log.StateEntityTracker, "", "connected", serial)
			if r.extensions.ViveTrackerInteraction {
				r.trackers.notify(serial)
			}
			r.binder.RebindTracker(rolePath, true)
		}
		next[serial] = i
	}

	for _, serial := range r.trackers.replace(next) {
		r.logger.Info("tracker removed", "serial", serial)
		r.traceState(log.StateEntityTracker, "connected", "disconnected", serial)
		r.binder.RebindTracker(r.settings.TrackerRolePath(serial), false)
	}
	return nil
}
