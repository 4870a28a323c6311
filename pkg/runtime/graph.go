package runtime

import (
	"sort"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// SourceInfo is one installed action source.
type SourceInfo struct {
	BindingPath string
	RealPath    string
	Source      profile.Source
}

// ActionInfo describes an action and its sources.
type ActionInfo struct {
	Handle         action.Handle
	Name           string
	LocalizedName  string
	Type           action.Type
	SubactionPaths []string
	Sources        []SourceInfo
}

// SetInfo describes an action set and its actions.
type SetInfo struct {
	Handle         action.Handle
	Name           string
	LocalizedName  string
	Priority       uint32
	Attached       bool
	SubactionPaths []string
	Actions        []ActionInfo
}

// ControllerInfo describes the binding state of a hand.
type ControllerInfo struct {
	Side    xrpath.Side
	Type    string
	Active  bool
	Family  profile.Family
	Profile profile.Profile
}

// TrackerInfo describes a connected tracker.
type TrackerInfo struct {
	Serial   string
	Index    int
	RolePath string
}

// Graph is a point-in-time copy of the binding state.
type Graph struct {
	SessionID   string
	State       SessionState
	Sets        []SetInfo
	Controllers [2]ControllerInfo
	Trackers    []TrackerInfo
	Suggested   []profile.Profile
}

// Graph returns a copy of the action sets, their sources and the devices
// they are bound to.
func (r *Runtime) Graph() Graph {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := Graph{
		SessionID: r.sessionID,
		State:     r.sessionState,
		Suggested: r.suggestions.Profiles(),
	}

	actions := r.registry.Actions()
	for _, set := range r.registry.Sets() {
		si := SetInfo{
			Handle:         set.Handle,
			Name:           set.Name,
			LocalizedName:  set.LocalizedName,
			Priority:       set.Priority,
			Attached:       set.Attached(),
			SubactionPaths: r.describePaths(set.SubactionPaths),
		}
		for _, a := range actions {
			if a.Set != set {
				continue
			}
			ai := ActionInfo{
				Handle:         a.Handle,
				Name:           a.Name,
				LocalizedName:  a.LocalizedName,
				Type:           a.Type,
				SubactionPaths: r.describePaths(a.SubactionPaths),
			}
			for _, bs := range a.Sources() {
				ai.Sources = append(ai.Sources, SourceInfo{
					BindingPath: bs.Path,
					RealPath:    bs.Source.RealPath,
					Source:      bs.Source,
				})
			}
			si.Actions = append(si.Actions, ai)
		}
		sort.Slice(si.Actions, func(i, j int) bool { return si.Actions[i].Name < si.Actions[j].Name })
		g.Sets = append(g.Sets, si)
	}
	sort.Slice(g.Sets, func(i, j int) bool { return g.Sets[i].Name < g.Sets[j].Name })

	for side := range g.Controllers {
		g.Controllers[side] = ControllerInfo{
			Side:    xrpath.Side(side),
			Type:    r.controllerType[side],
			Active:  r.controllerActive[side],
			Family:  r.bindings[side].Family,
			Profile: r.bindings[side].Profile,
		}
	}

	for _, serial := range r.trackers.serials() {
		g.Trackers = append(g.Trackers, TrackerInfo{
			Serial:   serial,
			Index:    r.trackers.indexOf(serial),
			RolePath: r.settings.TrackerRolePath(serial),
		})
	}
	return g
}

func (r *Runtime) describePaths(paths []xrpath.Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, r.paths.Describe(p))
	}
	return out
}
