package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/runtime"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Inspector errors.
var (
	ErrSetNotFound    = errors.New("action set not found")
	ErrActionNotFound = errors.New("action not found")
	ErrNotReadable    = errors.New("action has no readable state")
)

// Inspector provides inspection of a runtime's action graph.
type Inspector struct {
	rt *runtime.Runtime
}

// NewInspector creates a new Inspector for the given runtime.
func NewInspector(rt *runtime.Runtime) *Inspector {
	return &Inspector{rt: rt}
}

// Runtime returns the underlying runtime.
func (i *Inspector) Runtime() *runtime.Runtime {
	return i.rt
}

// StateInfo is the combined state of an action under one subaction path.
type StateInfo struct {
	Action    string
	Type      action.Type
	Subaction string
	Active    bool
	Changed   bool
	Value     any
}

// InspectGraph returns the complete binding graph.
func (i *Inspector) InspectGraph() *runtime.Graph {
	g := i.rt.Graph()
	return &g
}

// InspectSet returns information about an action set.
func (i *Inspector) InspectSet(name string) (*runtime.SetInfo, error) {
	g := i.rt.Graph()
	for _, s := range g.Sets {
		if strings.EqualFold(s.Name, name) {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrSetNotFound, name)
}

// InspectAction returns information about an action.
func (i *Inspector) InspectAction(path *Path) (*runtime.ActionInfo, error) {
	set, err := i.InspectSet(path.Set)
	if err != nil {
		return nil, err
	}
	for _, a := range set.Actions {
		if strings.EqualFold(a.Name, path.Action) {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrActionNotFound, path.Set, path.Action)
}

// ReadState queries the combined state of the action a path names. Reading
// counts as a query: the next query reports changes relative to it.
func (i *Inspector) ReadState(path *Path) (*StateInfo, error) {
	if path.IsPartial {
		return nil, fmt.Errorf("%w: %s", ErrActionNotFound, path.Raw)
	}
	info, err := i.InspectAction(path)
	if err != nil {
		return nil, err
	}

	sub := xrpath.Null
	if path.Subaction != "" {
		if sub, err = i.rt.StringToPath(path.Subaction); err != nil {
			return nil, err
		}
	}
	get := &runtime.ActionStateGetInfo{Type: runtime.TypeActionStateGetInfo, Action: info.Handle, SubactionPath: sub}
	st := &StateInfo{Action: info.Name, Type: info.Type, Subaction: path.Subaction}

	switch info.Type {
	case action.TypeBooleanInput:
		s, err := i.rt.GetActionStateBoolean(get)
		if err != nil {
			return nil, err
		}
		st.Active, st.Changed, st.Value = s.IsActive, s.ChangedSinceLastSync, s.CurrentState
	case action.TypeFloatInput:
		s, err := i.rt.GetActionStateFloat(get)
		if err != nil {
			return nil, err
		}
		st.Active, st.Changed, st.Value = s.IsActive, s.ChangedSinceLastSync, s.CurrentState
	case action.TypeVector2fInput:
		s, err := i.rt.GetActionStateVector2f(get)
		if err != nil {
			return nil, err
		}
		st.Active, st.Changed, st.Value = s.IsActive, s.ChangedSinceLastSync, s.CurrentState
	case action.TypePoseInput:
		s, err := i.rt.GetActionStatePose(get)
		if err != nil {
			return nil, err
		}
		st.Active = s.IsActive
	default:
		return nil, fmt.Errorf("%w: %s is %s", ErrNotReadable, info.Name, info.Type)
	}
	return st, nil
}

// FormatGraph formats the binding graph for display.
func (i *Inspector) FormatGraph(g *runtime.Graph, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}

	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("Session: %s (%s)\n", g.SessionID, g.State))
	for _, c := range g.Controllers {
		sb.WriteString(formatter.FormatController(c) + "\n")
	}
	for _, t := range g.Trackers {
		sb.WriteString(formatter.FormatTracker(t) + "\n")
	}
	if len(g.Suggested) > 0 {
		names := make([]string, 0, len(g.Suggested))
		for _, p := range g.Suggested {
			names = append(names, p.String())
		}
		sb.WriteString("Suggested: " + strings.Join(names, ", ") + "\n")
	}
	sb.WriteString("---\n")

	for _, s := range g.Sets {
		sb.WriteString(i.formatSet(&s, formatter, 0))
	}
	return sb.String()
}

// FormatSet formats an action set for display.
func (i *Inspector) FormatSet(set *runtime.SetInfo, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}
	return i.formatSet(set, formatter, 0)
}

func (i *Inspector) formatSet(set *runtime.SetInfo, f *Formatter, depth int) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s (%q, priority %d)", set.Name, set.LocalizedName, set.Priority)
	if f.ShowHandles {
		header = fmt.Sprintf("[%d] %s", set.Handle, header)
	}
	if set.Attached {
		header += " attached"
	}
	sb.WriteString(f.Indent(depth, header) + "\n")

	for _, a := range set.Actions {
		sb.WriteString(i.formatAction(&a, f, depth+1))
	}
	return sb.String()
}

// FormatAction formats an action for display.
func (i *Inspector) FormatAction(a *runtime.ActionInfo, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}
	return i.formatAction(a, formatter, 0)
}

func (i *Inspector) formatAction(a *runtime.ActionInfo, f *Formatter, depth int) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s: %s", a.Name, a.Type)
	if f.ShowHandles {
		header = fmt.Sprintf("[%d] %s", a.Handle, header)
	}
	if len(a.SubactionPaths) > 0 {
		header += " [" + strings.Join(a.SubactionPaths, " ") + "]"
	}
	sb.WriteString(f.Indent(depth, header) + "\n")

	if !f.ShowSources {
		return sb.String()
	}
	if len(a.Sources) == 0 {
		sb.WriteString(f.Indent(depth+1, "(unbound)") + "\n")
	}
	for _, src := range a.Sources {
		sb.WriteString(f.Indent(depth+1, f.FormatSource(src)) + "\n")
	}
	return sb.String()
}

// FormatState formats a state query result for display.
func (i *Inspector) FormatState(st *StateInfo, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}
	name := st.Action
	if st.Subaction != "" {
		name += "@" + st.Subaction
	}
	if !st.Active {
		return fmt.Sprintf("%s = inactive", name)
	}
	if st.Type == action.TypePoseInput {
		return fmt.Sprintf("%s = active", name)
	}
	out := fmt.Sprintf("%s = %s", name, formatter.FormatValue(st.Value))
	if st.Changed {
		out += " (changed)"
	}
	return out
}
