package inspect

import (
	"fmt"
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/runtime"
	"github.com/xrbridge/xrbridge-go/pkg/space"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowSources lists the installed sources under each action
	ShowSources bool

	// ShowHandles includes handles alongside names
	ShowHandles bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowSources: true,
		ShowHandles: false,
		IndentWidth: 2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatValue formats an action state value for display.
func (f *Formatter) FormatValue(value any) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"

	case string:
		return fmt.Sprintf("%q", v)

	case float32:
		return fmt.Sprintf("%.3f", v)

	case float64:
		return fmt.Sprintf("%.3f", v)

	case xrmath.Vector2f:
		return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)

	case xrmath.Vector3f:
		return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)

	case xrmath.Pose:
		return FormatPose(v)

	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatPose formats a pose as position and orientation.
func FormatPose(p xrmath.Pose) string {
	o := p.Orientation
	return fmt.Sprintf("pos=(%.3f, %.3f, %.3f) rot=(%.3f, %.3f, %.3f, %.3f)",
		p.Position.X, p.Position.Y, p.Position.Z, o.X, o.Y, o.Z, o.W)
}

// FormatLocationFlags formats location validity bits.
func FormatLocationFlags(flags space.LocationFlags) string {
	if flags == 0 {
		return "none"
	}
	var parts []string
	if flags&space.OrientationValid != 0 {
		parts = append(parts, "orientation-valid")
	}
	if flags&space.PositionValid != 0 {
		parts = append(parts, "position-valid")
	}
	if flags&space.OrientationTracked != 0 {
		parts = append(parts, "orientation-tracked")
	}
	if flags&space.PositionTracked != 0 {
		parts = append(parts, "position-tracked")
	}
	return strings.Join(parts, "|")
}

// FormatLocation formats a located space.
func FormatLocation(loc space.Location) string {
	out := FormatPose(loc.Pose) + " [" + FormatLocationFlags(loc.Flags) + "]"
	if loc.Velocity != nil {
		lv := loc.Velocity.Linear
		out += fmt.Sprintf(" vel=(%.3f, %.3f, %.3f)", lv.X, lv.Y, lv.Z)
	}
	return out
}

// FormatButtons formats a button mask.
func FormatButtons(mask uint32) string {
	if mask == 0 {
		return "none"
	}
	return strings.Join(GetButtonNames(mask), "+")
}

// FormatInput formats one field of the input snapshot for a hand.
func FormatInput(s *hmd.InputState, field hmd.Field, side xrpath.Side) string {
	switch field.Kind() {
	case hmd.KindMask:
		return FormatButtons(s.Mask(field, side))
	case hmd.KindScalar:
		return fmt.Sprintf("%.3f", s.Scalar(field, side))
	case hmd.KindVector:
		v := s.Vector(field, side)
		return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
	default:
		return "-"
	}
}

// FormatController formats the binding state of a hand.
func (f *Formatter) FormatController(c runtime.ControllerInfo) string {
	if !c.Active {
		return fmt.Sprintf("%s: disconnected", c.Side)
	}
	return fmt.Sprintf("%s: %s (%s, %s)", c.Side, c.Type, c.Family, c.Profile)
}

// FormatTracker formats a connected tracker.
func (f *Formatter) FormatTracker(t runtime.TrackerInfo) string {
	role := t.RolePath
	if role == "" {
		role = "(unmapped)"
	}
	return fmt.Sprintf("tracker %d: %s %s", t.Index, t.Serial, role)
}

// FormatSource formats an installed action source.
func (f *Formatter) FormatSource(src runtime.SourceInfo) string {
	return fmt.Sprintf("%s: %s", src.BindingPath, src.Source)
}
