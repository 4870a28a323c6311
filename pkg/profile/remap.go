package profile

import (
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// rewrite replaces the component prefix from with to. A rewrite with users
// set only applies to those hands.
type rewrite struct {
	from, to string
	users    userMask
}

func (r rewrite) apply(comp string, mask userMask) (string, bool) {
	if r.users != 0 && r.users&mask == 0 {
		return "", false
	}
	if comp == r.from {
		return r.to, true
	}
	if strings.HasPrefix(comp, r.from+"/") {
		return r.to + comp[len(r.from):], true
	}
	return "", false
}

var (
	touchToVive = []rewrite{
		{from: "/input/a/click", to: "/input/trackpad/click"},
		{from: "/input/x/click", to: "/input/trackpad/click"},
		{from: "/input/b/click", to: "/input/menu/click"},
		{from: "/input/y/click", to: "/input/menu/click"},
		{from: "/input/squeeze/value", to: "/input/squeeze/click"},
		{from: "/input/thumbstick", to: "/input/trackpad"},
	}
	motionToVive = []rewrite{
		{from: "/input/thumbstick", to: "/input/trackpad"},
	}
	indexToVive = []rewrite{
		{from: "/input/a/click", to: "/input/trackpad/click"},
		{from: "/input/b/click", to: "/input/menu/click"},
		{from: "/input/squeeze/value", to: "/input/squeeze/click"},
		{from: "/input/squeeze/force", to: "/input/squeeze/click"},
		{from: "/input/thumbstick", to: "/input/trackpad"},
	}
	simpleToVive = []rewrite{
		{from: "/input/select/click", to: "/input/trigger/click"},
	}

	viveToIndex = []rewrite{
		{from: "/input/menu/click", to: "/input/b/click"},
		{from: "/input/squeeze/click", to: "/input/squeeze/value"},
		{from: "/input/trackpad/click", to: "/input/thumbstick/click"},
	}
	touchToIndex = []rewrite{
		{from: "/input/x", to: "/input/a"},
		{from: "/input/y", to: "/input/b"},
		{from: "/input/menu/click", to: "/input/b/click"},
		{from: "/input/thumbrest/touch", to: "/input/trackpad/touch"},
	}
	motionToIndex = []rewrite{
		{from: "/input/menu/click", to: "/input/b/click"},
		{from: "/input/squeeze/click", to: "/input/squeeze/value"},
		{from: "/input/trackpad/click", to: "/input/a/click"},
	}
	simpleToIndex = []rewrite{
		{from: "/input/select/click", to: "/input/trigger/click"},
		{from: "/input/menu/click", to: "/input/b/click"},
	}

	viveToCrystal = []rewrite{
		{from: "/input/squeeze/click", to: "/input/squeeze/value"},
		{from: "/input/trigger/click", to: "/input/trigger/value"},
		{from: "/input/menu/click", to: "/input/b/click", users: usersRight},
		{from: "/input/trackpad", to: "/input/thumbstick"},
	}
	indexToCrystal = []rewrite{
		{from: "/input/a", to: "/input/x", users: usersLeft},
		{from: "/input/b", to: "/input/y", users: usersLeft},
		{from: "/input/squeeze/force", to: "/input/squeeze/value"},
		{from: "/input/trigger/click", to: "/input/trigger/value"},
		{from: "/input/trackpad/touch", to: "/input/thumbstick/touch"},
	}
	motionToCrystal = []rewrite{
		{from: "/input/squeeze/click", to: "/input/squeeze/value"},
		{from: "/input/menu/click", to: "/input/b/click", users: usersRight},
		{from: "/input/trackpad", to: "/input/thumbstick"},
	}
	simpleToCrystal = []rewrite{
		{from: "/input/select/click", to: "/input/trigger/value"},
		{from: "/input/menu/click", to: "/input/b/click", users: usersRight},
	}

	toSimple = []rewrite{
		{from: "/input/trigger/click", to: "/input/select/click"},
		{from: "/input/trigger/value", to: "/input/select/click"},
		{from: "/input/b/click", to: "/input/menu/click"},
		{from: "/input/y/click", to: "/input/menu/click"},
	}
)

// rewrites returns the rules translating bindings of actual into the
// preferred profile of f.
func rewrites(actual Profile, f Family) []rewrite {
	switch f {
	case FamilyVive:
		switch actual {
		case ProfileTouch:
			return touchToVive
		case ProfileMSMotion:
			return motionToVive
		case ProfileIndex:
			return indexToVive
		case ProfileSimple:
			return simpleToVive
		}
	case FamilyIndex:
		switch actual {
		case ProfileVive:
			return viveToIndex
		case ProfileTouch:
			return touchToIndex
		case ProfileMSMotion:
			return motionToIndex
		case ProfileSimple:
			return simpleToIndex
		}
	case FamilyCrystal:
		switch actual {
		case ProfileVive:
			return viveToCrystal
		case ProfileIndex:
			return indexToCrystal
		case ProfileMSMotion:
			return motionToCrystal
		case ProfileSimple:
			return simpleToCrystal
		}
	case FamilySimple:
		if actual != ProfileSimple {
			return toSimple
		}
	}
	return nil
}

// Remap rewrites a binding of the actual profile into the namespace of the
// preferred profile of family f. ok is false when the controller has no
// equivalent input.
func Remap(actual Profile, f Family, fullPath string) (string, bool) {
	if !actual.IsController() || f == FamilyNone {
		return "", false
	}
	user, comp := xrpath.SplitUserPath(fullPath)
	mask := usersOf(user)
	if mask&usersHands == 0 || comp == "" {
		return "", false
	}
	if !HasComponent(actual, user, comp) {
		return "", false
	}

	out := comp
	for _, r := range rewrites(actual, f) {
		if to, ok := r.apply(comp, mask); ok {
			out = to
			break
		}
	}
	if !HasComponent(f.Preferred(), user, out) {
		return "", false
	}
	return user + out, true
}
