package interactive

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/hmd/sim"
	"github.com/xrbridge/xrbridge-go/pkg/inspect"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/runtime"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// ErrQuit is returned by Exec for the quit command.
var ErrQuit = errors.New("quit")

// ErrUsage is returned for malformed commands.
var ErrUsage = errors.New("usage")

// demoActions are the actions the demo command creates, with the
// components tried in order on every controller profile.
var demoActions = []struct {
	name       string
	typ        action.Type
	components []string
}{
	{"fire", action.TypeBooleanInput, []string{"/input/trigger/click", "/input/a/click", "/input/select/click"}},
	{"squeeze", action.TypeFloatInput, []string{"/input/squeeze/value", "/input/trigger/value"}},
	{"move", action.TypeVector2fInput, []string{"/input/thumbstick", "/input/trackpad"}},
	{"hand", action.TypePoseInput, []string{"/input/grip/pose"}},
	{"aim", action.TypePoseInput, []string{"/input/aim/pose"}},
	{"buzz", action.TypeVibrationOutput, []string{"/output/haptic"}},
}

// App plays the application side of a session against the runtime, and
// the user side against the simulated headset.
type App struct {
	rt        *runtime.Runtime
	dev       *sim.Device
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	out       io.Writer

	sets   map[string]action.Handle
	spaces map[string]action.Handle
	active []string
}

// NewApp creates an App writing its output to out.
func NewApp(rt *runtime.Runtime, dev *sim.Device, out io.Writer) *App {
	return &App{
		rt:        rt,
		dev:       dev,
		inspector: inspect.NewInspector(rt),
		formatter: inspect.NewFormatter(),
		out:       out,
		sets:      make(map[string]action.Handle),
		spaces:    make(map[string]action.Handle),
	}
}

// Exec runs one command line.
func (a *App) Exec(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		a.printHelp()
		return nil
	case "quit", "exit", "q":
		return ErrQuit

	// Application side
	case "demo":
		return a.cmdDemo()
	case "session":
		return a.cmdSession(args)
	case "sync", "s":
		return a.cmdSync()
	case "state":
		return a.cmdState(args)
	case "graph", "g":
		return a.cmdGraph(args)
	case "events", "e":
		return a.cmdEvents()
	case "profile":
		return a.cmdProfile(args)
	case "locate", "l":
		return a.cmdLocate(args)
	case "haptic":
		return a.cmdHaptic(args)

	// User side
	case "controller", "c":
		return a.cmdController(args)
	case "press", "release":
		return a.cmdButtons(cmd == "press", args)
	case "touch", "untouch":
		return a.cmdTouch(cmd == "touch", args)
	case "axis":
		return a.cmdAxis(args)
	case "pose":
		return a.cmdPose(args)
	case "tracker":
		return a.cmdTracker(args)
	case "mount", "unmount":
		return a.cmdMount(cmd == "mount")
	case "input":
		return a.cmdInput(args)
	case "pulses":
		return a.cmdPulses()

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `
xrbridge Simulator Commands:
  Application:
    demo                       - Create the demo action set and suggest bindings for every controller
    session create|begin|end|exit|destroy
                               - Drive the session lifecycle
    sync                       - Sync the active action sets
    state <set/action[@side]>  - Query the state of an action
    graph [set[/action]]       - Show the binding graph
    events                     - Drain the event queue
    profile <left|right|path>  - Show the current interaction profile of a user path
    locate <space> [base]      - Locate a space (view, local, stage or set/action@side)
    haptic <set/action[@side]> <amplitude>
                               - Apply a vibration

  Headset:
    controller <side> <type>   - Connect a controller (vive_controller, knuckles, ...) or "none"
    press <side> <buttons>     - Press buttons, e.g. "press r a+trigger"
    release <side> <buttons>   - Release buttons
    touch/untouch <side> <buttons>
    axis <side> <field> <x> [y]
                               - Set an analog input, e.g. "axis l thumbstick 0 1"
    pose <device> <x> <y> <z>  - Move hmd, left, right or tracker<N>
    tracker connect|disconnect <serial>
    mount / unmount            - Put the headset on or take it off
    input [side]               - Show the latched input
    pulses                     - Show the haptic pulses sent

  General:
    help                       - Show this help
    quit                       - Exit`)
}

func (a *App) path(s string) (xrpath.Path, error) {
	return a.rt.StringToPath(s)
}

// cmdDemo creates the demo action set and suggests bindings for it on
// every controller profile that has a matching component.
func (a *App) cmdDemo() error {
	if _, ok := a.sets["demo"]; ok {
		return errors.New("demo set already created")
	}
	left, err := a.path(xrpath.UserHandLeft)
	if err != nil {
		return err
	}
	right, err := a.path(xrpath.UserHandRight)
	if err != nil {
		return err
	}

	set, err := a.rt.CreateActionSet(&runtime.ActionSetCreateInfo{
		Type:                   runtime.TypeActionSetCreateInfo,
		ActionSetName:          "demo",
		LocalizedActionSetName: "Demo",
	})
	if err != nil {
		return fmt.Errorf("create action set: %w", err)
	}

	handles := make([]action.Handle, len(demoActions))
	for i, da := range demoActions {
		h, err := a.rt.CreateAction(set, &runtime.ActionCreateInfo{
			Type:                runtime.TypeActionCreateInfo,
			ActionName:          da.name,
			ActionType:          da.typ,
			SubactionPaths:      []xrpath.Path{left, right},
			LocalizedActionName: da.name,
		})
		if err != nil {
			return fmt.Errorf("create action %s: %w", da.name, err)
		}
		handles[i] = h
	}

	for _, p := range profile.Profiles() {
		if !p.IsController() {
			continue
		}
		info := &runtime.InteractionProfileSuggestedBinding{
			Type: runtime.TypeInteractionProfileSuggestedBinding,
		}
		if info.InteractionProfile, err = a.path(p.Path()); err != nil {
			return err
		}
		for i, da := range demoActions {
			for _, user := range []string{xrpath.UserHandLeft, xrpath.UserHandRight} {
				comp := firstComponent(p, user, da.components)
				if comp == "" {
					continue
				}
				binding, err := a.path(user + comp)
				if err != nil {
					return err
				}
				info.SuggestedBindings = append(info.SuggestedBindings, runtime.ActionSuggestedBinding{Action: handles[i], Binding: binding})
			}
		}
		if err := a.rt.SuggestInteractionProfileBindings(info); err != nil {
			return fmt.Errorf("suggest %s: %w", p, err)
		}
		fmt.Fprintf(a.out, "Suggested %d bindings for %s\n", len(info.SuggestedBindings), p)
	}

	a.sets["demo"] = set
	a.active = append(a.active, "demo")
	return nil
}

func firstComponent(p profile.Profile, user string, candidates []string) string {
	for _, c := range candidates {
		if profile.HasComponent(p, user, c) {
			return c
		}
	}
	return ""
}

func (a *App) cmdSession(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: session create|begin|end|exit|destroy", ErrUsage)
	}
	var err error
	switch args[0] {
	case "create":
		if err = a.rt.CreateSession(&runtime.SessionCreateInfo{Type: runtime.TypeSessionCreateInfo, SystemID: runtime.SystemID}); err != nil {
			return err
		}
		if len(a.sets) > 0 {
			sets := make([]action.Handle, 0, len(a.sets))
			for _, name := range a.active {
				sets = append(sets, a.sets[name])
			}
			err = a.rt.AttachSessionActionSets(&runtime.SessionActionSetsAttachInfo{
				Type:       runtime.TypeSessionActionSetsAttachInfo,
				ActionSets: sets,
			})
		}
	case "begin":
		err = a.rt.BeginSession(&runtime.SessionBeginInfo{
			Type:                         runtime.TypeSessionBeginInfo,
			PrimaryViewConfigurationType: runtime.ViewConfigurationStereo,
		})
		if err == nil {
			err = a.rt.FrameCompleted()
		}
	case "end":
		err = a.rt.EndSession()
	case "exit":
		err = a.rt.RequestExitSession()
	case "destroy":
		err = a.rt.DestroySession()
		clear(a.spaces)
	default:
		return fmt.Errorf("%w: session create|begin|end|exit|destroy", ErrUsage)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Session %s\n", a.rt.State())
	return nil
}

func (a *App) cmdSync() error {
	info := &runtime.ActionsSyncInfo{Type: runtime.TypeActionsSyncInfo}
	for _, name := range a.active {
		info.ActiveActionSets = append(info.ActiveActionSets, runtime.ActiveActionSet{ActionSet: a.sets[name]})
	}
	if err := a.rt.SyncActions(info); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Synced")
	return nil
}

func (a *App) cmdState(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: state <set/action[@side]>", ErrUsage)
	}
	p, err := inspect.ParsePath(args[0])
	if err != nil {
		return err
	}
	st, err := a.inspector.ReadState(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.inspector.FormatState(st, a.formatter))
	return nil
}

func (a *App) cmdGraph(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, a.inspector.FormatGraph(a.inspector.InspectGraph(), a.formatter))
		return nil
	}
	p, err := inspect.ParsePath(args[0])
	if err != nil {
		return err
	}
	if p.IsPartial {
		set, err := a.inspector.InspectSet(p.Set)
		if err != nil {
			return err
		}
		fmt.Fprint(a.out, a.inspector.FormatSet(set, a.formatter))
		return nil
	}
	info, err := a.inspector.InspectAction(p)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, a.inspector.FormatAction(info, a.formatter))
	return nil
}

func (a *App) cmdEvents() error {
	n := 0
	for {
		ev, err := a.rt.PollEvent()
		if err == result.EventUnavailable {
			break
		}
		if err != nil {
			return err
		}
		n++
		switch ev.Type {
		case runtime.TypeEventDataSessionStateChanged:
			fmt.Fprintf(a.out, "  session state -> %s\n", ev.State)
		case runtime.TypeEventDataInteractionProfileChanged:
			fmt.Fprintln(a.out, "  interaction profile changed")
		case runtime.TypeEventDataViveTrackerConnected:
			role := ev.RolePath
			if role == "" {
				role = "(unmapped)"
			}
			fmt.Fprintf(a.out, "  tracker connected: %s %s\n", ev.Serial, role)
		}
	}
	if n == 0 {
		fmt.Fprintln(a.out, "No events")
	}
	return nil
}

func (a *App) cmdProfile(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: profile <left|right|user path>", ErrUsage)
	}
	user := args[0]
	if side, ok := inspect.ResolveSide(user); ok {
		user = xrpath.HandPath(side)
	}
	top, err := a.path(user)
	if err != nil {
		return err
	}
	st, err := a.rt.GetCurrentInteractionProfile(top)
	if err != nil {
		return err
	}
	if st.InteractionProfile == xrpath.Null {
		fmt.Fprintf(a.out, "%s: none\n", user)
		return nil
	}
	s, _, err := a.rt.PathToString(st.InteractionProfile, xrpath.MaxLength)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: %s\n", user, s)
	return nil
}

// space returns the handle of a named space, creating it on first use.
func (a *App) space(name string) (action.Handle, error) {
	if h, ok := a.spaces[name]; ok {
		return h, nil
	}

	var (
		h   action.Handle
		err error
	)
	if t, ok := inspect.ResolveReferenceType(name); ok {
		h, err = a.rt.CreateReferenceSpace(&runtime.ReferenceSpaceCreateInfo{
			Type:                 runtime.TypeReferenceSpaceCreateInfo,
			ReferenceSpaceType:   t,
			PoseInReferenceSpace: xrmath.IdentityPose(),
		})
	} else {
		h, err = a.actionSpace(name)
	}
	if err != nil {
		return 0, err
	}
	a.spaces[name] = h
	return h, nil
}

func (a *App) actionSpace(query string) (action.Handle, error) {
	p, err := inspect.ParsePath(query)
	if err != nil {
		return 0, err
	}
	info, err := a.inspector.InspectAction(p)
	if err != nil {
		return 0, err
	}
	sub := xrpath.Null
	if p.Subaction != "" {
		if sub, err = a.path(p.Subaction); err != nil {
			return 0, err
		}
	}
	return a.rt.CreateActionSpace(&runtime.ActionSpaceCreateInfo{
		Type:              runtime.TypeActionSpaceCreateInfo,
		Action:            info.Handle,
		SubactionPath:     sub,
		PoseInActionSpace: xrmath.IdentityPose(),
	})
}

func (a *App) cmdLocate(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: locate <space> [base]", ErrUsage)
	}
	baseName := "local"
	if len(args) == 2 {
		baseName = args[1]
	}
	h, err := a.space(args[0])
	if err != nil {
		return err
	}
	base, err := a.space(strings.ToLower(baseName))
	if err != nil {
		return err
	}
	loc, err := a.rt.LocateSpace(h, base, hmd.SecondsToTime(a.dev.TimeSeconds()), true)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, inspect.FormatLocation(loc))
	return nil
}

func (a *App) cmdHaptic(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: haptic <set/action[@side]> <amplitude>", ErrUsage)
	}
	p, err := inspect.ParsePath(args[0])
	if err != nil {
		return err
	}
	info, err := a.inspector.InspectAction(p)
	if err != nil {
		return err
	}
	amp, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("invalid amplitude: %w", err)
	}
	sub := xrpath.Null
	if p.Subaction != "" {
		if sub, err = a.path(p.Subaction); err != nil {
			return err
		}
	}
	return a.rt.ApplyHapticFeedback(
		&runtime.HapticActionInfo{Type: runtime.TypeHapticActionInfo, Action: info.Handle, SubactionPath: sub},
		&runtime.HapticVibration{Type: runtime.TypeHapticVibration, Amplitude: float32(amp)},
	)
}
