package runtime

import (
	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/space"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// StructureType tags every info structure passed to an entry point.
type StructureType int32

const (
	TypeUnknown                            StructureType = 0
	TypeSessionCreateInfo                  StructureType = 8
	TypeSessionBeginInfo                   StructureType = 10
	TypeHapticVibration                    StructureType = 13
	TypeEventDataSessionStateChanged       StructureType = 18
	TypeActionStateBoolean                 StructureType = 23
	TypeActionStateFloat                   StructureType = 24
	TypeActionStateVector2f                StructureType = 25
	TypeActionStatePose                    StructureType = 27
	TypeActionSetCreateInfo                StructureType = 28
	TypeActionCreateInfo                   StructureType = 29
	TypeReferenceSpaceCreateInfo           StructureType = 37
	TypeActionSpaceCreateInfo              StructureType = 38
	TypeSpaceLocation                      StructureType = 42
	TypeSpaceVelocity                      StructureType = 43
	TypeInteractionProfileSuggestedBinding StructureType = 51
	TypeEventDataInteractionProfileChanged StructureType = 52
	TypeInteractionProfileState            StructureType = 53
	TypeActionStateGetInfo                 StructureType = 58
	TypeHapticActionInfo                   StructureType = 59
	TypeSessionActionSetsAttachInfo        StructureType = 60
	TypeActionsSyncInfo                    StructureType = 61
	TypeBoundSourcesForActionEnumerateInfo StructureType = 62
	TypeInputSourceLocalizedNameGetInfo    StructureType = 63
	TypeEventDataViveTrackerConnected      StructureType = 1000103001
)

// ViewConfigurationType selects the primary view layout of a session.
type ViewConfigurationType int32

const (
	ViewConfigurationStereo ViewConfigurationType = 2
	ViewConfigurationQuad   ViewConfigurationType = 1000037000
)

// SystemID is the identifier of the single headset system.
const SystemID uint64 = 1

// LocalizedNameFlags select the parts of a localized source name.
type LocalizedNameFlags uint64

const (
	LocalizedNameUserPath           LocalizedNameFlags = 1 << 0
	LocalizedNameInteractionProfile LocalizedNameFlags = 1 << 1
	LocalizedNameComponent          LocalizedNameFlags = 1 << 2
)

// ActionSetCreateInfo describes an action set to create.
type ActionSetCreateInfo struct {
	Type                   StructureType
	ActionSetName          string
	LocalizedActionSetName string
	Priority               uint32
}

// ActionCreateInfo describes an action to create.
type ActionCreateInfo struct {
	Type                StructureType
	ActionName          string
	ActionType          action.Type
	SubactionPaths      []xrpath.Path
	LocalizedActionName string
}

// ActionSuggestedBinding pairs an action with a binding path.
type ActionSuggestedBinding struct {
	Action  action.Handle
	Binding xrpath.Path
}

// InteractionProfileSuggestedBinding is the application's suggestion list
// for one interaction profile.
type InteractionProfileSuggestedBinding struct {
	Type               StructureType
	InteractionProfile xrpath.Path
	SuggestedBindings  []ActionSuggestedBinding
}

// SessionActionSetsAttachInfo lists the action sets to attach.
type SessionActionSetsAttachInfo struct {
	Type       StructureType
	ActionSets []action.Handle
}

// ActiveActionSet selects an action set and optional subaction path to sync.
type ActiveActionSet struct {
	ActionSet     action.Handle
	SubactionPath xrpath.Path
}

// ActionsSyncInfo lists the action sets to sync.
type ActionsSyncInfo struct {
	Type             StructureType
	ActiveActionSets []ActiveActionSet
}

// ActionStateGetInfo selects the action and subaction path to query.
type ActionStateGetInfo struct {
	Type          StructureType
	Action        action.Handle
	SubactionPath xrpath.Path
}

// ActionStatePose is the state of a pose action.
type ActionStatePose struct {
	IsActive bool
}

// InteractionProfileState is the interaction profile bound to a top-level
// user path.
type InteractionProfileState struct {
	InteractionProfile xrpath.Path
}

// BoundSourcesForActionEnumerateInfo selects the action whose sources are
// enumerated.
type BoundSourcesForActionEnumerateInfo struct {
	Type   StructureType
	Action action.Handle
}

// InputSourceLocalizedNameGetInfo selects a source path and the parts of
// its name.
type InputSourceLocalizedNameGetInfo struct {
	Type            StructureType
	SourcePath      xrpath.Path
	WhichComponents LocalizedNameFlags
}

// HapticActionInfo selects the haptic action and subaction path.
type HapticActionInfo struct {
	Type          StructureType
	Action        action.Handle
	SubactionPath xrpath.Path
}

// HapticVibration describes a vibration. Only the amplitude reaches the
// hardware.
type HapticVibration struct {
	Type      StructureType
	Duration  int64
	Frequency float32
	Amplitude float32
}

// SessionCreateInfo selects the system of a new session.
type SessionCreateInfo struct {
	Type     StructureType
	SystemID uint64
}

// SessionBeginInfo selects the primary view configuration.
type SessionBeginInfo struct {
	Type                         StructureType
	PrimaryViewConfigurationType ViewConfigurationType
}

// ReferenceSpaceCreateInfo describes a reference space to create.
type ReferenceSpaceCreateInfo struct {
	Type                 StructureType
	ReferenceSpaceType   space.ReferenceType
	PoseInReferenceSpace xrmath.Pose
}

// ActionSpaceCreateInfo describes an action space to create.
type ActionSpaceCreateInfo struct {
	Type              StructureType
	Action            action.Handle
	SubactionPath     xrpath.Path
	PoseInActionSpace xrmath.Pose
}

// Extent2Df is the size of a rectangle in meters.
type Extent2Df struct {
	Width  float32
	Height float32
}

// SessionState is the lifecycle state of the session.
type SessionState int32

const (
	SessionStateUnknown      SessionState = 0
	SessionStateIdle         SessionState = 1
	SessionStateReady        SessionState = 2
	SessionStateSynchronized SessionState = 3
	SessionStateVisible      SessionState = 4
	SessionStateFocused      SessionState = 5
	SessionStateStopping     SessionState = 6
	SessionStateLossPending  SessionState = 7
	SessionStateExiting      SessionState = 8
)

var sessionStateNames = map[SessionState]string{
	SessionStateUnknown:      "UNKNOWN",
	SessionStateIdle:         "IDLE",
	SessionStateReady:        "READY",
	SessionStateSynchronized: "SYNCHRONIZED",
	SessionStateVisible:      "VISIBLE",
	SessionStateFocused:      "FOCUSED",
	SessionStateStopping:     "STOPPING",
	SessionStateLossPending:  "LOSS_PENDING",
	SessionStateExiting:      "EXITING",
}

// String returns the state name without the XR_SESSION_STATE_ prefix.
func (s SessionState) String() string {
	if name, ok := sessionStateNames[s]; ok {
		return name
	}
	return "INVALID"
}

// Event is an entry of the event queue. Type selects which fields are set.
type Event struct {
	Type StructureType

	// State and Time are set for session state changes.
	State SessionState
	Time  int64

	// Serial and RolePath are set for tracker connections.
	Serial   string
	RolePath string
}

func checkType(got, want StructureType) error {
	if got != want {
		return result.ValidationFailure
	}
	return nil
}
