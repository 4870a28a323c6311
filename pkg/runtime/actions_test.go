package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

func TestPathRoundTrip(t *testing.T) {
	h := newHarness(t, nil)
	p := h.path("/user/hand/left/input/a/click")

	_, count, err := h.rt.PathToString(p, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(len("/user/hand/left/input/a/click")+1), count)

	s, _, err := h.rt.PathToString(p, count)
	require.NoError(t, err)
	assert.Equal(t, "/user/hand/left/input/a/click", s)

	_, count, err = h.rt.PathToString(p, 4)
	assert.Equal(t, result.SizeInsufficient, err)
	assert.Equal(t, uint32(len(s)+1), count)

	_, err = h.rt.StringToPath("no/leading/slash")
	assert.Equal(t, result.PathFormatInvalid, err)
}

func TestCreateActionChecks(t *testing.T) {
	h := newHarness(t, nil)
	h.createActions()

	_, err := h.rt.CreateAction(action.NullHandle, &ActionCreateInfo{
		Type: TypeActionCreateInfo, ActionName: "jump", ActionType: action.TypeBooleanInput, LocalizedActionName: "Jump",
	})
	assert.Equal(t, result.HandleInvalid, err)

	_, err = h.rt.CreateAction(h.set, &ActionCreateInfo{
		Type: TypeActionCreateInfo, ActionName: "fire", ActionType: action.TypeBooleanInput, LocalizedActionName: "Fire!",
	})
	assert.Equal(t, result.NameDuplicated, err)

	_, err = h.rt.CreateAction(h.set, &ActionCreateInfo{
		Type: TypeActionCreateInfo, ActionName: "look", ActionType: action.TypeBooleanInput, LocalizedActionName: "Look",
		SubactionPaths: []xrpath.Path{h.path(xrpath.UserHead)},
	})
	assert.Equal(t, result.PathUnsupported, err)

	_, err = h.rt.CreateAction(h.set, nil)
	assert.Equal(t, result.ValidationFailure, err)

	h.createSession()
	h.attach()
	_, err = h.rt.CreateAction(h.set, &ActionCreateInfo{
		Type: TypeActionCreateInfo, ActionName: "late", ActionType: action.TypeBooleanInput, LocalizedActionName: "Late",
	})
	assert.Equal(t, result.ActionSetsAlreadyAttached, err)
}

func TestSuggestChecks(t *testing.T) {
	h := newHarness(t, nil)
	h.createActions()

	tests := []struct {
		name    string
		profile string
		binding string
		action  action.Handle
		want    error
	}{
		{"unknown profile", "/interaction_profiles/acme/stick", "/user/hand/left/input/a/click", h.fire, result.PathUnsupported},
		{"tracker without extension", profile.ProfileViveTracker.Path(), "/user/vive_tracker_htcx/role/waist/input/grip/pose", h.hand, result.PathUnsupported},
		{"eye gaze without extension", profile.ProfileEyeGaze.Path(), xrpath.EyeGazePose, h.hand, result.PathUnsupported},
		{"component of another profile", profile.ProfileIndex.Path(), "/user/hand/left/input/x/click", h.fire, result.PathUnsupported},
		{"stale action", profile.ProfileIndex.Path(), "/user/hand/left/input/a/click", action.Handle(9999), result.HandleInvalid},
		{"valid", profile.ProfileIndex.Path(), "/user/hand/left/input/a/click", h.fire, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.rt.SuggestInteractionProfileBindings(&InteractionProfileSuggestedBinding{
				Type:               TypeInteractionProfileSuggestedBinding,
				InteractionProfile: h.path(tt.profile),
				SuggestedBindings:  []ActionSuggestedBinding{{Action: tt.action, Binding: h.path(tt.binding)}},
			})
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.want, err)
			}
		})
	}

	err := h.rt.SuggestInteractionProfileBindings(&InteractionProfileSuggestedBinding{
		Type:               TypeInteractionProfileSuggestedBinding,
		InteractionProfile: h.path(profile.ProfileIndex.Path()),
	})
	assert.Equal(t, result.ValidationFailure, err)

	err = h.rt.SuggestInteractionProfileBindings(&InteractionProfileSuggestedBinding{
		Type:               TypeInteractionProfileSuggestedBinding,
		InteractionProfile: xrpath.Path(12345),
		SuggestedBindings:  []ActionSuggestedBinding{{Action: h.fire, Binding: h.path("/user/hand/left/input/a/click")}},
	})
	assert.Equal(t, result.PathInvalid, err)
}

func TestSuggestAfterAttachFails(t *testing.T) {
	h := newHarness(t, nil)
	h.createActions()
	h.createSession()
	h.attach()
	err := h.suggest(profile.ProfileIndex, map[string]action.Handle{"/user/hand/left/input/a/click": h.fire})
	assert.Equal(t, result.ActionSetsAlreadyAttached, err)
}

func TestSuggestEyeGazeValidatesFirst(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.Extensions.EyeGazeInteraction = true })
	h.createActions()

	err := h.rt.SuggestInteractionProfileBindings(&InteractionProfileSuggestedBinding{
		Type:               TypeInteractionProfileSuggestedBinding,
		InteractionProfile: h.path(profile.ProfileEyeGaze.Path()),
		SuggestedBindings: []ActionSuggestedBinding{
			{Action: h.hand, Binding: h.path(xrpath.EyeGazePose)},
			{Action: h.hand, Binding: h.path("/user/hand/left/input/grip/pose")},
		},
	})
	assert.Equal(t, result.PathUnsupported, err)
	g := h.rt.Graph()
	for _, a := range g.Sets[0].Actions {
		assert.Empty(t, a.Sources, a.Name)
	}

	require.NoError(t, h.suggest(profile.ProfileEyeGaze, map[string]action.Handle{xrpath.EyeGazePose: h.hand}))
	h.createSession()
	h.attach()

	st, err := h.rt.GetCurrentInteractionProfile(h.path(xrpath.UserEyes))
	require.NoError(t, err)
	assert.Equal(t, h.path(profile.ProfileEyeGaze.Path()), st.InteractionProfile)
}

func TestAttachChecks(t *testing.T) {
	h := newHarness(t, nil)
	h.createActions()

	info := &SessionActionSetsAttachInfo{Type: TypeSessionActionSetsAttachInfo, ActionSets: []action.Handle{h.set}}
	assert.Equal(t, result.HandleInvalid, h.rt.AttachSessionActionSets(info))

	h.createSession()
	assert.Equal(t, result.ValidationFailure, h.rt.AttachSessionActionSets(&SessionActionSetsAttachInfo{Type: TypeSessionActionSetsAttachInfo}))
	assert.Equal(t, result.HandleInvalid, h.rt.AttachSessionActionSets(&SessionActionSetsAttachInfo{
		Type:       TypeSessionActionSetsAttachInfo,
		ActionSets: []action.Handle{h.set, action.Handle(4242)},
	}))
	require.NoError(t, h.rt.AttachSessionActionSets(info))
	assert.Equal(t, result.ActionSetsAlreadyAttached, h.rt.AttachSessionActionSets(info))

	g := h.rt.Graph()
	assert.Equal(t, []string{xrpath.UserHandLeft, xrpath.UserHandRight}, g.Sets[0].SubactionPaths)
}

func TestCurrentInteractionProfile(t *testing.T) {
	h := newHarness(t, nil)
	h.createActions()
	h.suggestIndex()
	h.createSession()

	_, err := h.rt.GetCurrentInteractionProfile(h.path(xrpath.UserHandLeft))
	assert.Equal(t, result.ActionSetNotAttached, err)

	h.attach()
	h.focus()
	h.dev.SetControllerType(xrpath.SideLeft, profile.ControllerIndex)
	require.NoError(t, h.sync())

	st, err := h.rt.GetCurrentInteractionProfile(h.path(xrpath.UserHandLeft))
	require.NoError(t, err)
	assert.Equal(t, h.path(profile.ProfileIndex.Path()), st.InteractionProfile)

	st, err = h.rt.GetCurrentInteractionProfile(h.path(xrpath.UserHandRight))
	require.NoError(t, err)
	assert.Equal(t, xrpath.Null, st.InteractionProfile)

	st, err = h.rt.GetCurrentInteractionProfile(h.path(xrpath.UserHead))
	require.NoError(t, err)
	assert.Equal(t, xrpath.Null, st.InteractionProfile)

	_, err = h.rt.GetCurrentInteractionProfile(h.path("/user/hand/left/input"))
	assert.Equal(t, result.PathUnsupported, err)
	_, err = h.rt.GetCurrentInteractionProfile(xrpath.Null)
	assert.Equal(t, result.PathInvalid, err)
}

func TestProfileChangedEvent(t *testing.T) {
	h := newHarness(t, nil)
	h.createActions()
	h.suggestIndex()
	h.createSession()
	h.attach()
	h.focus()
	drain(t, h.rt)

	h.dev.SetControllerType(xrpath.SideLeft, profile.ControllerIndex)
	require.NoError(t, h.sync())
	events := drain(t, h.rt)
	require.Len(t, events, 1)
	assert.Equal(t, TypeEventDataInteractionProfileChanged, events[0].Type)

	// the same controller again raises nothing
	require.NoError(t, h.sync())
	assert.Empty(t, drain(t, h.rt))

	h.dev.SetControllerType(xrpath.SideLeft, "")
	require.NoError(t, h.sync())
	events = drain(t, h.rt)
	require.Len(t, events, 1)
	assert.Equal(t, TypeEventDataInteractionProfileChanged, events[0].Type)
}

func TestEnumerateBoundSources(t *testing.T) {
	h := newHarness(t, nil)
	h.ready()

	info := &BoundSourcesForActionEnumerateInfo{Type: TypeBoundSourcesForActionEnumerateInfo, Action: h.fire}
	_, count, err := h.rt.EnumerateBoundSourcesForAction(info, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), count)

	_, _, err = h.rt.EnumerateBoundSourcesForAction(info, 1)
	assert.Equal(t, result.SizeInsufficient, err)

	sources, _, err := h.rt.EnumerateBoundSourcesForAction(info, count)
	require.NoError(t, err)
	assert.ElementsMatch(t, []xrpath.Path{
		h.path("/user/hand/left/input/a/click"),
		h.path("/user/hand/right/input/a/click"),
	}, sources)

	_, _, err = h.rt.EnumerateBoundSourcesForAction(&BoundSourcesForActionEnumerateInfo{
		Type: TypeBoundSourcesForActionEnumerateInfo, Action: action.Handle(777),
	}, 0)
	assert.Equal(t, result.HandleInvalid, err)
}

func TestLocalizedNames(t *testing.T) {
	h := newHarness(t, nil)
	h.ready()

	name := func(path string, which LocalizedNameFlags) string {
		t.Helper()
		s, count, err := h.rt.GetInputSourceLocalizedName(&InputSourceLocalizedNameGetInfo{
			Type:            TypeInputSourceLocalizedNameGetInfo,
			SourcePath:      h.path(path),
			WhichComponents: which,
		}, 256)
		require.NoError(t, err)
		assert.Equal(t, uint32(len(s)+1), count)
		return s
	}

	all := LocalizedNameUserPath | LocalizedNameInteractionProfile | LocalizedNameComponent
	assert.Equal(t, "Left Hand Index Controller A Button", name("/user/hand/left/input/a/click", all))
	assert.Equal(t, "Right Hand", name("/user/hand/right/input/a/click", LocalizedNameUserPath))
	assert.Equal(t, "Waist Vive Tracker Pose", name("/user/vive_tracker_htcx/role/waist/input/grip/pose", all))
	assert.Equal(t, "Eye Gaze Interaction Eye Tracker", name(xrpath.EyeGazePose, all))
	assert.Equal(t, "", name("/user/head/input/volume_up/click", all))

	_, _, err := h.rt.GetInputSourceLocalizedName(&InputSourceLocalizedNameGetInfo{
		Type:       TypeInputSourceLocalizedNameGetInfo,
		SourcePath: h.path(xrpath.UserHandLeft),
	}, 0)
	assert.Equal(t, result.ValidationFailure, err)

	_, count, err := h.rt.GetInputSourceLocalizedName(&InputSourceLocalizedNameGetInfo{
		Type:            TypeInputSourceLocalizedNameGetInfo,
		SourcePath:      h.path("/user/hand/left/input/a/click"),
		WhichComponents: LocalizedNameUserPath,
	}, 3)
	assert.Equal(t, result.SizeInsufficient, err)
	assert.Equal(t, uint32(len("Left Hand")+1), count)
}

func TestDestroyActionSet(t *testing.T) {
	h := newHarness(t, nil)
	h.createActions()
	require.NoError(t, h.rt.DestroyActionSet(h.set))
	assert.Equal(t, result.HandleInvalid, h.rt.DestroyActionSet(h.set))
	assert.Equal(t, result.HandleInvalid, h.rt.DestroyAction(h.fire))
	assert.Empty(t, h.rt.Graph().Sets)
}
