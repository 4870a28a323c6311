// Package space resolves reference and action spaces against the tracked
// devices of the headset.
package space

import (
	"errors"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// ErrStale is returned for handles that do not name a live space.
var ErrStale = errors.New("space: stale handle")

// ReferenceType is an XR reference space type.
type ReferenceType int32

const (
	// ReferenceNone marks an action space.
	ReferenceNone        ReferenceType = 0
	ReferenceView        ReferenceType = 1
	ReferenceLocal       ReferenceType = 2
	ReferenceStage       ReferenceType = 3
	ReferenceCombinedEye ReferenceType = 1000121000
)

// String returns the XR name of the type.
func (t ReferenceType) String() string {
	switch t {
	case ReferenceView:
		return "VIEW"
	case ReferenceLocal:
		return "LOCAL"
	case ReferenceStage:
		return "STAGE"
	case ReferenceCombinedEye:
		return "COMBINED_EYE_VARJO"
	case ReferenceNone:
		return "ACTION"
	default:
		return "UNKNOWN"
	}
}

// ReferenceTypes returns the supported reference space types in
// enumeration order.
func ReferenceTypes(combinedEye bool) []ReferenceType {
	types := []ReferenceType{ReferenceView, ReferenceLocal, ReferenceStage}
	if combinedEye {
		types = append(types, ReferenceCombinedEye)
	}
	return types
}

// HasBounds reports whether bounds queries accept t.
func HasBounds(t ReferenceType) bool {
	return t == ReferenceView || t == ReferenceLocal || t == ReferenceStage
}

// Space is a reference space or an action space.
type Space struct {
	Handle    action.Handle
	Reference ReferenceType

	// Action is set for action spaces. The space keeps resolving after the
	// action is destroyed.
	Action *action.Action

	// Subaction filters the action's sources. Null matches every source.
	Subaction     xrpath.Path
	SubactionPath string

	// Offset is the pose of the space in its reference or action space.
	Offset xrmath.Pose
}

// IsActionSpace reports whether s tracks an action.
func (s *Space) IsActionSpace() bool {
	return s.Action != nil
}

// sameClass reports whether locating s against base can skip tracking: both
// are the same reference type, or action spaces sharing their action or
// subaction path.
func sameClass(s, base *Space) bool {
	if s.Reference != base.Reference {
		return false
	}
	if s.Reference != ReferenceNone {
		return true
	}
	return s.Action == base.Action || s.Subaction == base.Subaction
}

// Table holds the live spaces of a session.
type Table struct {
	arena *action.Arena[Space]
}

// NewTable creates an empty space table.
func NewTable() *Table {
	return &Table{arena: action.NewArena[Space]()}
}

// AddReference creates a reference space.
func (t *Table) AddReference(ref ReferenceType, offset xrmath.Pose) *Space {
	s := &Space{Reference: ref, Offset: offset}
	s.Handle = t.arena.Insert(s)
	return s
}

// AddAction creates an action space. subactionPath is the string of
// subaction, or "" for the null path.
func (t *Table) AddAction(a *action.Action, subaction xrpath.Path, subactionPath string, offset xrmath.Pose) *Space {
	s := &Space{Action: a, Subaction: subaction, SubactionPath: subactionPath, Offset: offset}
	s.Handle = t.arena.Insert(s)
	return s
}

// Get returns the space of h.
func (t *Table) Get(h action.Handle) (*Space, bool) {
	return t.arena.Get(h)
}

// Remove destroys the space of h.
func (t *Table) Remove(h action.Handle) error {
	if _, ok := t.arena.Remove(h); !ok {
		return ErrStale
	}
	return nil
}

// Clear destroys every space.
func (t *Table) Clear() {
	for _, s := range t.arena.All() {
		t.arena.Remove(s.Handle)
	}
}

// Len returns the number of live spaces.
func (t *Table) Len() int {
	return t.arena.Len()
}

// All returns the live spaces.
func (t *Table) All() []*Space {
	return t.arena.All()
}
