package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

type fixture struct {
	reg    *Registry
	paths  *xrpath.Table
	store  *SuggestionStore
	binder *Binder
	set    *ActionSet
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	paths := xrpath.NewTable()
	reg := NewRegistry(paths)
	store := NewSuggestionStore()
	set, err := reg.CreateSet("gameplay", "Gameplay", 0)
	require.NoError(t, err)
	return &fixture{reg: reg, paths: paths, store: store, binder: NewBinder(reg, store), set: set}
}

func (f *fixture) action(t *testing.T, typ Type, name string) *Action {
	t.Helper()
	left := f.paths.MustPath(xrpath.UserHandLeft)
	right := f.paths.MustPath(xrpath.UserHandRight)
	a, err := f.reg.CreateAction(f.set, typ, name, name, []xrpath.Path{left, right})
	require.NoError(t, err)
	return a
}

func paths(a *Action) []string {
	var out []string
	for _, bs := range a.Sources() {
		out = append(out, bs.Path)
	}
	return out
}

func realPaths(a *Action) []string {
	var out []string
	for _, bs := range a.Sources() {
		out = append(out, bs.Source.RealPath)
	}
	return out
}

func TestRebindPreferredProfile(t *testing.T) {
	f := newFixture(t)
	fire := f.action(t, TypeBooleanInput, "fire")
	f.store.Replace(profile.ProfileIndex, []Binding{
		{fire.Handle, "/user/hand/left/input/a/click"},
		{fire.Handle, "/user/hand/right/input/a/click"},
	})
	f.store.Replace(profile.ProfileTouch, []Binding{
		{fire.Handle, "/user/hand/left/input/x/click"},
	})

	var bound []string
	f.binder.OnBind = func(a *Action, path string, src profile.Source) { bound = append(bound, path) }

	cb := f.binder.RebindController(xrpath.SideLeft, "knuckles", profile.ForcedNone, DefaultOffsets())
	assert.Equal(t, profile.FamilyIndex, cb.Family)
	assert.Equal(t, profile.ProfileIndex, cb.Profile)
	assert.Equal(t, []string{"/user/hand/left/input/a/click"}, paths(fire))
	assert.Equal(t, []string{"/user/hand/left/input/a/click"}, bound)

	src := fire.Sources()[0].Source
	assert.Equal(t, hmd.FieldButtons, src.Field)
	assert.Equal(t, hmd.ButtonA, src.Mask)
}

func TestRebindFallbackRemaps(t *testing.T) {
	f := newFixture(t)
	fire := f.action(t, TypeBooleanInput, "fire")
	f.store.Replace(profile.ProfileTouch, []Binding{
		{fire.Handle, "/user/hand/left/input/x/click"},
		{fire.Handle, "/user/hand/left/input/trigger/touch"},
	})

	cb := f.binder.RebindController(xrpath.SideLeft, "vive_controller", profile.ForcedNone, DefaultOffsets())
	assert.Equal(t, profile.ProfileTouch, cb.Profile)

	// x/click becomes the trackpad click; the Vive wand has no trigger touch
	require.Len(t, fire.Sources(), 1)
	bs := fire.Sources()[0]
	assert.Equal(t, "/user/hand/left/input/x/click", bs.Path)
	assert.Equal(t, "/user/hand/left/input/trackpad/click", bs.Source.RealPath)
	assert.Equal(t, hmd.ButtonTouchPad, bs.Source.Mask)
}

func TestRebindDeduplicatesRealPath(t *testing.T) {
	f := newFixture(t)
	move := f.action(t, TypeVector2fInput, "move")
	f.store.Replace(profile.ProfileMSMotion, []Binding{
		{move.Handle, "/user/hand/right/input/trackpad"},
		{move.Handle, "/user/hand/right/input/thumbstick"},
	})

	f.binder.RebindController(xrpath.SideRight, "vive_controller", profile.ForcedNone, DefaultOffsets())

	// both remap to the Vive trackpad; only the first survives
	assert.Equal(t, []string{"/user/hand/right/input/trackpad"}, paths(move))
	assert.Equal(t, []string{"/user/hand/right/input/trackpad"}, realPaths(move))
}

func TestRebindReplacesOnlyOwnSide(t *testing.T) {
	f := newFixture(t)
	fire := f.action(t, TypeBooleanInput, "fire")
	f.store.Replace(profile.ProfileSimple, []Binding{
		{fire.Handle, "/user/hand/left/input/select/click"},
		{fire.Handle, "/user/hand/right/input/select/click"},
	})

	f.binder.RebindController(xrpath.SideLeft, "pimax_sword", profile.ForcedNone, DefaultOffsets())
	f.binder.RebindController(xrpath.SideRight, "pimax_sword", profile.ForcedNone, DefaultOffsets())
	assert.Len(t, fire.Sources(), 2)

	cb := f.binder.RebindController(xrpath.SideRight, "", profile.ForcedNone, DefaultOffsets())
	assert.Equal(t, profile.ProfileNone, cb.Profile)
	assert.True(t, xrmath.Equals(xrmath.IdentityPose(), cb.Aim))
	assert.Equal(t, []string{"/user/hand/left/input/select/click"}, paths(fire))
}

func TestRebindSkipsDestroyedActions(t *testing.T) {
	f := newFixture(t)
	fire := f.action(t, TypeBooleanInput, "fire")
	f.store.Replace(profile.ProfileSimple, []Binding{
		{fire.Handle, "/user/hand/left/input/select/click"},
	})
	require.NoError(t, f.reg.DestroyAction(fire.Handle))

	cb := f.binder.RebindController(xrpath.SideLeft, "pimax_sword", profile.ForcedNone, DefaultOffsets())
	assert.Equal(t, profile.ProfileSimple, cb.Profile)
	assert.Empty(t, fire.Sources())
}

func TestRebindPoses(t *testing.T) {
	f := newFixture(t)
	f.store.Replace(profile.ProfileVive, nil)

	off := DefaultOffsets()
	off.Grip = xrmath.Translation(xrmath.Vector3f{X: 0.01, Y: 0.02})

	left := f.binder.RebindController(xrpath.SideLeft, "vive_controller", profile.ForcedNone, off)
	right := f.binder.RebindController(xrpath.SideRight, "vive_controller", profile.ForcedNone, off)

	assert.InDelta(t, 0.01, left.Grip.Position.X, 1e-6)
	assert.InDelta(t, -0.01, right.Grip.Position.X, 1e-6, "right hand is mirrored")
	assert.InDelta(t, 0.02, right.Grip.Position.Y, 1e-6)
	assert.True(t, xrmath.NearlyEqual(profile.FamilyVive.AimPose(), left.Aim, 1e-6))
	assert.True(t, xrmath.NearlyEqual(xrmath.Mirror(left.Aim), right.Aim, 1e-6))
	assert.InDelta(t, -0.03, right.Hand.Position.X, 1e-6)
}

func TestRebindTracker(t *testing.T) {
	f := newFixture(t)
	pose := f.action(t, TypePoseInput, "foot")
	f.store.Replace(profile.ProfileViveTracker, []Binding{
		{pose.Handle, "/user/vive_tracker_htcx/role/left_foot/input/grip/pose"},
		{pose.Handle, "/user/vive_tracker_htcx/role/right_foot/input/grip/pose"},
		{pose.Handle, "/user/vive_tracker_htcx/role/left_foot/input/trigger/value"},
	})

	f.binder.RebindTracker("", true)
	assert.Empty(t, pose.Sources())

	f.binder.RebindTracker("/user/vive_tracker_htcx/role/left_foot", true)
	assert.Equal(t, []string{"/user/vive_tracker_htcx/role/left_foot/input/grip/pose"}, paths(pose))

	f.binder.RebindTracker("/user/vive_tracker_htcx/role/right_foot", true)
	assert.Len(t, pose.Sources(), 2)

	f.binder.RebindTracker("/user/vive_tracker_htcx/role/left_foot", false)
	assert.Equal(t, []string{"/user/vive_tracker_htcx/role/right_foot/input/grip/pose"}, paths(pose))
}

func TestSourcesOrderedByBindingPath(t *testing.T) {
	a := &Action{}
	a.SetSource("/user/hand/right/input/a/click", profile.Source{RealPath: "r"})
	a.SetSource("/user/hand/left/input/b/click", profile.Source{RealPath: "lb"})
	a.SetSource("/user/hand/left/input/a/click", profile.Source{RealPath: "la"})
	a.SetSource("/user/hand/left/input/b/click", profile.Source{RealPath: "lb2"})

	assert.Equal(t, []string{
		"/user/hand/left/input/a/click",
		"/user/hand/left/input/b/click",
		"/user/hand/right/input/a/click",
	}, paths(a))
	assert.Equal(t, []string{"la", "lb2", "r"}, realPaths(a))

	n := a.RemoveSources(func(p string) bool { return xrpath.SideOf(p, false) == xrpath.SideLeft })
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"/user/hand/right/input/a/click"}, paths(a))
}
