package action

import (
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Offsets are the user adjustments applied on top of a family's local
// controller poses, given for the left hand.
type Offsets struct {
	Grip xrmath.Pose
	Aim  xrmath.Pose
	Hand xrmath.Pose
}

// DefaultOffsets returns identity offsets.
func DefaultOffsets() Offsets {
	return Offsets{Grip: xrmath.IdentityPose(), Aim: xrmath.IdentityPose(), Hand: xrmath.IdentityPose()}
}

// ControllerBinding is the outcome of binding one hand.
type ControllerBinding struct {
	Family  profile.Family
	Profile profile.Profile

	// Local poses relative to the controller's tracked pose.
	Grip xrmath.Pose
	Aim  xrmath.Pose
	Hand xrmath.Pose
}

// Unbound returns the binding of a hand without a usable profile.
func Unbound(f profile.Family) ControllerBinding {
	return ControllerBinding{
		Family: f,
		Grip:   xrmath.IdentityPose(),
		Aim:    xrmath.IdentityPose(),
		Hand:   xrmath.IdentityPose(),
	}
}

// Binder installs sources on actions from the suggested bindings.
type Binder struct {
	reg   *Registry
	store *SuggestionStore

	// OnBind, when set, is called for every source installed.
	OnBind func(a *Action, bindingPath string, src profile.Source)
}

// NewBinder creates a binder over a registry and its suggestions.
func NewBinder(reg *Registry, store *SuggestionStore) *Binder {
	return &Binder{reg: reg, store: store}
}

// install adds src under path unless the action already reads the same
// hardware input.
func (b *Binder) install(a *Action, path string, src profile.Source) bool {
	if a.HasRealPath(src.RealPath) {
		return false
	}
	a.SetSource(path, src)
	if b.OnBind != nil {
		b.OnBind(a, path, src)
	}
	return true
}

// RebindController rebuilds the sources of one hand for the controller
// type reported by the SDK. An empty type unbinds the hand.
func (b *Binder) RebindController(side xrpath.Side, controllerType string, forced profile.Forced, off Offsets) ControllerBinding {
	for _, a := range b.reg.Actions() {
		a.RemoveSources(func(path string) bool { return xrpath.SideOf(path, false) == side })
	}

	family := profile.ParseFamily(controllerType)
	if family == profile.FamilyNone {
		return Unbound(family)
	}

	actual := profile.Select(family, forced, b.store.Has)
	if actual == profile.ProfileNone {
		return Unbound(family)
	}

	for _, binding := range b.store.Get(actual) {
		a, ok := b.reg.Action(binding.Action)
		if !ok || xrpath.SideOf(binding.Path, false) != side {
			continue
		}
		src, ok := profile.Resolve(actual, family, binding.Path)
		if !ok {
			continue
		}
		b.install(a, binding.Path, src)
	}

	cb := ControllerBinding{
		Family:  family,
		Profile: actual,
		Grip:    xrmath.Multiply(off.Grip, xrmath.IdentityPose()),
		Aim:     xrmath.Multiply(off.Aim, family.AimPose()),
		Hand:    xrmath.Multiply(off.Hand, family.HandPose()),
	}
	if side == xrpath.SideRight {
		cb.Grip = xrmath.Mirror(cb.Grip)
		cb.Aim = xrmath.Mirror(cb.Aim)
		cb.Hand = xrmath.Mirror(cb.Hand)
	}
	return cb
}

// RebindTracker rebuilds the sources of the tracker role at rolePath.
// A disconnected tracker only loses its sources.
func (b *Binder) RebindTracker(rolePath string, connected bool) {
	if rolePath == "" {
		return
	}
	under := func(path string) bool {
		return path == rolePath || strings.HasPrefix(path, rolePath+"/")
	}
	for _, a := range b.reg.Actions() {
		a.RemoveSources(under)
	}
	if !connected {
		return
	}

	for _, binding := range b.store.Get(profile.ProfileViveTracker) {
		a, ok := b.reg.Action(binding.Action)
		if !ok || !under(binding.Path) {
			continue
		}
		src, ok := profile.MapTracker(binding.Path)
		if !ok {
			continue
		}
		b.install(a, binding.Path, src)
	}
}
