package action

import (
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Registry owns every action set and action of an instance.
// It is not safe for concurrent use; the runtime serializes access.
type Registry struct {
	paths   *xrpath.Table
	sets    *Arena[ActionSet]
	actions *Arena[Action]
}

// NewRegistry creates an empty registry resolving subaction paths in paths.
func NewRegistry(paths *xrpath.Table) *Registry {
	return &Registry{
		paths:   paths,
		sets:    NewArena[ActionSet](),
		actions: NewArena[Action](),
	}
}

// checkNames validates a name pair. Errors come in the order the API
// reports them.
func checkNames(name, localizedName string) error {
	if name == "" {
		return result.NameInvalid
	}
	if !xrpath.IsValidName(name) {
		return result.PathFormatInvalid
	}
	if localizedName == "" {
		return result.LocalizedNameInvalid
	}
	return nil
}

// CreateSet creates an action set.
func (r *Registry) CreateSet(name, localizedName string, priority uint32) (*ActionSet, error) {
	if err := checkNames(name, localizedName); err != nil {
		return nil, err
	}
	for _, s := range r.sets.All() {
		if s.Name == name {
			return nil, result.NameDuplicated
		}
	}
	for _, s := range r.sets.All() {
		if s.LocalizedName == localizedName {
			return nil, result.LocalizedNameDuplicated
		}
	}

	s := &ActionSet{Name: name, LocalizedName: localizedName, Priority: priority}
	s.Handle = r.sets.Insert(s)
	return s, nil
}

// Set returns the live action set of h.
func (r *Registry) Set(h Handle) (*ActionSet, bool) {
	return r.sets.Get(h)
}

// Sets returns every live action set.
func (r *Registry) Sets() []*ActionSet {
	return r.sets.All()
}

// DestroySet destroys an action set and all of its actions.
func (r *Registry) DestroySet(h Handle) error {
	s, ok := r.sets.Remove(h)
	if !ok {
		return result.HandleInvalid
	}
	for _, a := range r.actions.All() {
		if a.Set == s {
			r.actions.Remove(a.Handle)
		}
	}
	s.attached = false
	return nil
}

// CreateAction creates an action in set.
func (r *Registry) CreateAction(set *ActionSet, typ Type, name, localizedName string, subactionPaths []xrpath.Path) (*Action, error) {
	if set.attached {
		return nil, result.ActionSetsAlreadyAttached
	}
	if !typ.IsValid() {
		return nil, result.ValidationFailure
	}
	if err := checkNames(name, localizedName); err != nil {
		return nil, err
	}
	actions := r.setActions(set)
	for _, a := range actions {
		if a.Name == name {
			return nil, result.NameDuplicated
		}
	}
	for _, a := range actions {
		if a.LocalizedName == localizedName {
			return nil, result.LocalizedNameDuplicated
		}
	}

	seen := make(map[xrpath.Path]bool, len(subactionPaths))
	for _, p := range subactionPaths {
		s, ok := r.paths.Lookup(p)
		if !ok {
			return nil, result.PathInvalid
		}
		if s != xrpath.UserHandLeft && s != xrpath.UserHandRight {
			return nil, result.PathUnsupported
		}
		if seen[p] {
			return nil, result.PathUnsupported
		}
		seen[p] = true
	}

	a := &Action{
		Type:           typ,
		Name:           name,
		LocalizedName:  localizedName,
		SubactionPaths: append([]xrpath.Path(nil), subactionPaths...),
		Set:            set,
	}
	a.Handle = r.actions.Insert(a)
	return a, nil
}

func (r *Registry) setActions(set *ActionSet) []*Action {
	var out []*Action
	for _, a := range r.actions.All() {
		if a.Set == set {
			out = append(out, a)
		}
	}
	return out
}

// Action returns the live action of h.
func (r *Registry) Action(h Handle) (*Action, bool) {
	return r.actions.Get(h)
}

// Actions returns every live action.
func (r *Registry) Actions() []*Action {
	return r.actions.All()
}

// DestroyAction removes an action from the registry. Holders of the
// *Action, such as action spaces, keep using it.
func (r *Registry) DestroyAction(h Handle) error {
	if _, ok := r.actions.Remove(h); !ok {
		return result.HandleInvalid
	}
	return nil
}

// Attach attaches sets to the session. It fails without side effects when
// anything is attached already or a handle is stale.
func (r *Registry) Attach(handles []Handle) error {
	if r.AnyAttached() {
		return result.ActionSetsAlreadyAttached
	}
	sets := make([]*ActionSet, 0, len(handles))
	for _, h := range handles {
		s, ok := r.sets.Get(h)
		if !ok {
			return result.HandleInvalid
		}
		sets = append(sets, s)
	}

	for _, s := range sets {
		s.attached = true
		s.SubactionPaths = nil
		for _, a := range r.setActions(s) {
			for _, p := range a.SubactionPaths {
				if !s.HasSubactionPath(p) {
					s.SubactionPaths = append(s.SubactionPaths, p)
				}
			}
		}
	}
	return nil
}

// AnyAttached reports whether a live set is attached.
func (r *Registry) AnyAttached() bool {
	for _, s := range r.sets.All() {
		if s.attached {
			return true
		}
	}
	return false
}

// Attached returns the attached sets.
func (r *Registry) Attached() []*ActionSet {
	var out []*ActionSet
	for _, s := range r.sets.All() {
		if s.attached {
			out = append(out, s)
		}
	}
	return out
}

// DetachAll forgets every attachment. Used when a new session starts.
func (r *Registry) DetachAll() {
	for _, s := range r.sets.All() {
		s.attached = false
		s.SubactionPaths = nil
	}
}
