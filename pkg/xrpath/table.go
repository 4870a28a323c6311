package xrpath

import (
	"strings"
	"sync"

	"github.com/xrbridge/xrbridge-go/pkg/result"
)

// MaxLength is the maximum size of a path, including the terminator.
const MaxLength = 256

// Path is an interned path handle. The zero value is the null path.
type Path uint64

// Null is the null path.
const Null Path = 0

// Table is a bidirectional path/string registry.
// It is safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	strings map[Path]string
	paths   map[string]Path
	next    Path
}

// NewTable creates an empty path table.
func NewTable() *Table {
	return &Table{
		strings: make(map[Path]string),
		paths:   make(map[string]Path),
		next:    1,
	}
}

// StringToPath returns the handle for s, interning it if it was not seen
// before. A previously interned string is returned without validation.
func (t *Table) StringToPath(s string) (Path, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if p, ok := t.paths[s]; ok {
		return p, nil
	}
	if !IsValid(s) {
		return Null, result.PathFormatInvalid
	}

	p := t.next
	t.next++
	t.paths[s] = p
	t.strings[p] = s
	return p, nil
}

// MustPath interns s and panics if it is malformed. Intended for constant paths.
func (t *Table) MustPath(s string) Path {
	p, err := t.StringToPath(s)
	if err != nil {
		panic("xrpath: invalid constant path " + s)
	}
	return p
}

// PathToString returns the string for p along with the buffer size a caller
// needs to hold it (length plus terminator). The size is reported even when
// capacity is too small. A zero capacity is a size query and always succeeds.
func (t *Table) PathToString(p Path, capacity uint32) (string, uint32, error) {
	t.mu.RLock()
	s, ok := t.strings[p]
	t.mu.RUnlock()

	if !ok {
		return "", 0, result.PathInvalid
	}

	count := uint32(len(s)) + 1
	if capacity != 0 && capacity < uint32(len(s)) {
		return "", count, result.SizeInsufficient
	}
	return s, count, nil
}

// Lookup returns the string for p.
func (t *Table) Lookup(p Path) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.strings[p]
	return s, ok
}

// Known reports whether p has been interned.
func (t *Table) Known(p Path) bool {
	_, ok := t.Lookup(p)
	return ok
}

// Describe returns a printable form of p: "" for the null path and
// "<unknown>" for handles that were never issued.
func (t *Table) Describe(p Path) string {
	if p == Null {
		return ""
	}
	if s, ok := t.Lookup(p); ok {
		return s
	}
	return "<unknown>"
}

// Find returns the handle of an already interned string without interning it.
func (t *Table) Find(s string) (Path, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.paths[s]
	return p, ok
}

// Len returns the number of interned paths.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.strings)
}

// IsValid reports whether s is a well-formed path.
func IsValid(s string) bool {
	if len(s) < 2 || len(s) >= MaxLength {
		return false
	}
	if s[0] != '/' || s[len(s)-1] == '/' {
		return false
	}
	for _, segment := range strings.Split(s[1:], "/") {
		if !isValidSegment(segment) {
			return false
		}
	}
	return true
}

// IsValidName reports whether s is usable as an action or action set name:
// a single, non-empty path segment.
func IsValidName(s string) bool {
	return len(s) < MaxLength && isValidSegment(s)
}

func isValidSegment(segment string) bool {
	if segment == "" {
		return false
	}
	onlyDots := true
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if c != '.' {
			onlyDots = false
		}
		if !isPathChar(c) {
			return false
		}
	}
	return !onlyDots
}

func isPathChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == '.'
}
