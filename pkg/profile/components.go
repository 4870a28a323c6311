package profile

import (
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

type userMask uint8

const (
	usersLeft userMask = 1 << iota
	usersRight
	usersRoles

	usersHands = usersLeft | usersRight
)

type component struct {
	path  string
	users userMask
}

type componentName struct {
	prefix string
	name   string
}

// TrackerRole is a role a tracker can be assigned to.
type TrackerRole struct {
	Role string
	Name string
}

// TrackerRoles returns every tracker role.
func TrackerRoles() []TrackerRole {
	out := make([]TrackerRole, len(trackerRoles))
	copy(out, trackerRoles)
	return out
}

// RoleName returns the localized name of a tracker role.
func RoleName(role string) (string, bool) {
	for _, r := range trackerRoles {
		if r.Role == role {
			return r.Name, true
		}
	}
	return "", false
}

func usersOf(user string) userMask {
	switch user {
	case xrpath.UserHandLeft:
		return usersLeft
	case xrpath.UserHandRight:
		return usersRight
	}
	if role := xrpath.TrackerRole(user); role != "" && xrpath.TrackerRolePath(role) == user {
		if _, ok := RoleName(role); ok {
			return usersRoles
		}
	}
	return 0
}

// HasComponent reports whether component is valid for p under user.
func HasComponent(p Profile, user, comp string) bool {
	mask := usersOf(user)
	if mask == 0 {
		return false
	}
	for _, c := range componentTable[p] {
		if c.path == comp && c.users&mask != 0 {
			return true
		}
	}
	return false
}

// IsValidBinding reports whether a full binding path can be suggested for p.
func IsValidBinding(p Profile, fullPath string) bool {
	if p == ProfileEyeGaze {
		return fullPath == xrpath.EyeGazePose
	}
	user, comp := xrpath.SplitUserPath(fullPath)
	if comp == "" {
		return false
	}
	return HasComponent(p, user, comp)
}

// Components returns the valid component paths of p for user.
func Components(p Profile, user string) []string {
	mask := usersOf(user)
	var out []string
	for _, c := range componentTable[p] {
		if c.users&mask != 0 {
			out = append(out, c.path)
		}
	}
	return out
}

func lookupName(names []componentName, comp string) string {
	best := -1
	for i, n := range names {
		if comp == n.prefix || strings.HasPrefix(comp, n.prefix+"/") {
			if best < 0 || len(n.prefix) > len(names[best].prefix) {
				best = i
			}
		}
	}
	if best < 0 {
		return ""
	}
	return names[best].name
}

// ComponentName returns the localized name of the component of fullPath
// on a controller of family f.
func ComponentName(f Family, fullPath string) string {
	_, comp := xrpath.SplitUserPath(fullPath)
	return lookupName(componentNames[f], comp)
}

// TrackerComponentName returns the localized name of the component of a
// tracker path.
func TrackerComponentName(fullPath string) string {
	_, comp := xrpath.SplitUserPath(fullPath)
	return lookupName(trackerComponentNames, comp)
}
