package action

import "github.com/xrbridge/xrbridge-go/pkg/profile"

// Binding is one suggested binding of an action.
type Binding struct {
	Action Handle
	Path   string
}

// SuggestionStore keeps the latest suggested bindings per profile.
type SuggestionStore struct {
	bindings map[profile.Profile][]Binding
}

// NewSuggestionStore creates an empty store.
func NewSuggestionStore() *SuggestionStore {
	return &SuggestionStore{bindings: make(map[profile.Profile][]Binding)}
}

// Replace sets the bindings of p, dropping earlier suggestions for it.
func (s *SuggestionStore) Replace(p profile.Profile, bindings []Binding) {
	s.bindings[p] = append([]Binding(nil), bindings...)
}

// Has reports whether bindings were suggested for p.
func (s *SuggestionStore) Has(p profile.Profile) bool {
	_, ok := s.bindings[p]
	return ok
}

// Get returns the bindings suggested for p.
func (s *SuggestionStore) Get(p profile.Profile) []Binding {
	return s.bindings[p]
}

// Profiles returns the profiles that have suggestions, in enum order.
func (s *SuggestionStore) Profiles() []profile.Profile {
	var out []profile.Profile
	for _, p := range profile.Profiles() {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}
