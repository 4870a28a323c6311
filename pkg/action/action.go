package action

import (
	"sort"
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Type is the value type of an action.
type Type int32

const (
	TypeBooleanInput    Type = 1
	TypeFloatInput      Type = 2
	TypeVector2fInput   Type = 3
	TypePoseInput       Type = 4
	TypeVibrationOutput Type = 100
)

// IsValid reports whether t is one of the defined action types.
func (t Type) IsValid() bool {
	switch t {
	case TypeBooleanInput, TypeFloatInput, TypeVector2fInput, TypePoseInput, TypeVibrationOutput:
		return true
	}
	return false
}

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeBooleanInput:
		return "boolean"
	case TypeFloatInput:
		return "float"
	case TypeVector2fInput:
		return "vector2f"
	case TypePoseInput:
		return "pose"
	case TypeVibrationOutput:
		return "vibration"
	default:
		return "unknown"
	}
}

// ActionSet groups actions that are attached and synced together.
type ActionSet struct {
	Handle        Handle
	Name          string
	LocalizedName string
	Priority      uint32

	// SubactionPaths is the union of the subaction paths of the set's
	// actions, computed when the set is attached.
	SubactionPaths []xrpath.Path

	// Snapshot is the set's copy of the hardware input, replaced on sync.
	Snapshot hmd.InputState

	attached bool
}

// Attached reports whether the set was attached to the session.
func (s *ActionSet) Attached() bool {
	return s.attached
}

// HasSubactionPath reports whether p is among the set's subaction paths.
func (s *ActionSet) HasSubactionPath(p xrpath.Path) bool {
	for _, sp := range s.SubactionPaths {
		if sp == p {
			return true
		}
	}
	return false
}

// BoundSource is one source of an action with the binding path it was
// suggested under.
type BoundSource struct {
	Path   string
	Source profile.Source
}

// Action is one application action.
type Action struct {
	Handle         Handle
	Type           Type
	Name           string
	LocalizedName  string
	SubactionPaths []xrpath.Path
	Set            *ActionSet

	// sources is ordered by Path.
	sources []BoundSource

	lastBool   [2]bool
	lastFloat  [2]float32
	lastVector [2]xrmath.Vector2f
	lastChange [2]int64
}

// HasSubactionPath reports whether p was declared when the action was
// created.
func (a *Action) HasSubactionPath(p xrpath.Path) bool {
	for _, sp := range a.SubactionPaths {
		if sp == p {
			return true
		}
	}
	return false
}

// Sources returns a copy of the action's sources ordered by binding path.
func (a *Action) Sources() []BoundSource {
	out := make([]BoundSource, len(a.sources))
	copy(out, a.sources)
	return out
}

// SetSource binds path to src, replacing an existing source of path.
func (a *Action) SetSource(path string, src profile.Source) {
	i := sort.Search(len(a.sources), func(i int) bool { return a.sources[i].Path >= path })
	if i < len(a.sources) && a.sources[i].Path == path {
		a.sources[i].Source = src
		return
	}
	a.sources = append(a.sources, BoundSource{})
	copy(a.sources[i+1:], a.sources[i:])
	a.sources[i] = BoundSource{Path: path, Source: src}
}

// HasRealPath reports whether any source reads the hardware input real.
func (a *Action) HasRealPath(real string) bool {
	for _, bs := range a.sources {
		if bs.Source.RealPath == real {
			return true
		}
	}
	return false
}

// RemoveSources drops every source whose binding path matches and returns
// how many were removed.
func (a *Action) RemoveSources(match func(path string) bool) int {
	kept := a.sources[:0]
	for _, bs := range a.sources {
		if !match(bs.Path) {
			kept = append(kept, bs)
		}
	}
	removed := len(a.sources) - len(kept)
	for i := len(kept); i < len(a.sources); i++ {
		a.sources[i] = BoundSource{}
	}
	a.sources = kept
	return removed
}

// sourcesUnder returns the sources whose binding path starts with prefix.
// An empty prefix matches every source.
func (a *Action) sourcesUnder(prefix string) []BoundSource {
	if prefix == "" {
		return a.sources
	}
	var out []BoundSource
	for _, bs := range a.sources {
		if strings.HasPrefix(bs.Path, prefix) {
			out = append(out, bs)
		}
	}
	return out
}
