package runtime

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/config"
	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/log"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/space"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// Errors returned by New.
var (
	ErrNoDevice      = errors.New("runtime: no hardware session")
	ErrInvalidConfig = errors.New("runtime: invalid configuration")
)

// RecenterHold is how long the recenter combination must be held.
const RecenterHold = 2 * time.Second

// Extensions are the optional API extensions enabled by the application.
type Extensions struct {
	// EyeGazeInteraction enables the eye gaze interaction profile.
	EyeGazeInteraction bool

	// ViveTrackerInteraction enables the Vive tracker profile and its
	// connection events.
	ViveTrackerInteraction bool

	// FoveatedRendering enables the COMBINED_EYE reference space.
	FoveatedRendering bool

	// QuadViews enables the quad view configuration.
	QuadViews bool
}

// Config configures a Runtime.
type Config struct {
	// Logger is the optional logger for debug output. If nil, logging is disabled.
	Logger *slog.Logger

	// Trace receives a record of every API call. If nil, tracing is disabled.
	Trace log.Logger

	Extensions Extensions

	// Settings are the initial runtime settings.
	Settings config.Settings
}

// DefaultConfig returns a configuration with default settings and no
// extensions.
func DefaultConfig() Config {
	return Config{Settings: config.Default()}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Runtime is the single instance of the input runtime. It owns the path
// table, the action registry, the bindings and the single session. All
// methods are safe for concurrent use.
type Runtime struct {
	hmd        hmd.Session
	extensions Extensions
	logger     *slog.Logger
	trace      log.Logger

	paths *xrpath.Table

	// mu guards everything below.
	mu    sync.Mutex
	fatal error

	settings    config.Settings
	registry    *action.Registry
	suggestions *action.SuggestionStore
	binder      *action.Binder
	spaces      *space.Table

	sessionID       string
	sessionCreated  bool
	sessionState    SessionState
	sessionBegun    bool
	sessionStopping bool
	sessionExiting  bool
	framesCompleted uint64
	status          hmd.Status
	sessionEvents   []Event

	input            hmd.InputState
	controllerType   [2]string
	controllerActive [2]bool
	bindings         [2]action.ControllerBinding
	lastForced       profile.Forced
	profileDirty     bool
	eyeGazeBound     bool
	trackersBound    bool

	recenterPressedAt float64
	recenterHeld      bool
	recenterFired     bool

	trackers *trackerRegistry
}

// New creates a runtime on top of a hardware session.
func New(session hmd.Session, cfg Config) (*Runtime, error) {
	if session == nil {
		return nil, ErrNoDevice
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := &Runtime{
		hmd:         session,
		extensions:  cfg.Extensions,
		logger:      logger,
		trace:       cfg.Trace,
		paths:       xrpath.NewTable(),
		settings:    cfg.Settings.Clone(),
		suggestions: action.NewSuggestionStore(),
		spaces:      space.NewTable(),
		sessionID:   uuid.NewString(),
		trackers:    newTrackerRegistry(),
	}
	r.registry = action.NewRegistry(r.paths)
	r.binder = action.NewBinder(r.registry, r.suggestions)
	r.binder.OnBind = r.traceBinding
	r.lastForced = r.settings.Forced()
	for side := range r.bindings {
		r.bindings[side] = action.Unbound(profile.FamilyNone)
	}
	return r, nil
}

// Paths returns the path table.
func (r *Runtime) Paths() *xrpath.Table {
	return r.paths
}

// SessionID returns the identifier of the current session, or of the
// instance before the first session.
func (r *Runtime) SessionID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionID
}

// Err returns the fatal error that poisoned the runtime, or nil.
func (r *Runtime) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fatal
}

// fail records a hardware failure. The first failure poisons the runtime.
// Callers hold mu.
func (r *Runtime) fail(op string, err error) error {
	fe := result.Fatal(op, err)
	if r.fatal == nil {
		r.fatal = fe
		r.logger.Error("hardware failure", "op", op, "error", err)
		r.traceError(fe, true)
	}
	return r.fatal
}

// requireSession checks the session handle.
func (r *Runtime) requireSession() error {
	if !r.sessionCreated {
		return result.HandleInvalid
	}
	return nil
}

// pathString returns the string of a known path.
func (r *Runtime) pathString(p xrpath.Path) (string, bool) {
	return r.paths.Lookup(p)
}

// subactionString validates a subaction path against the paths an entity
// declares. Null is always accepted and maps to "".
func (r *Runtime) subactionString(p xrpath.Path, declared func(xrpath.Path) bool) (string, error) {
	if p == xrpath.Null {
		return "", nil
	}
	s, ok := r.pathString(p)
	if !ok {
		return "", result.PathInvalid
	}
	if !declared(p) {
		return "", result.PathUnsupported
	}
	return s, nil
}

// eyeTrackingAvailable reports whether the eye gaze may be queried.
func (r *Runtime) eyeTrackingAvailable() bool {
	return r.extensions.EyeGazeInteraction
}

// trackerIndex returns the enumeration index of the tracker serving role.
func (r *Runtime) trackerIndex(role string) int {
	return r.trackers.index(xrpath.TrackerRolePath(role), r.settings.TrackerRolePath)
}

// presence answers the state combinator's device queries. Callers hold mu.
type presence struct {
	r *Runtime
}

func (p presence) ControllerActive(side xrpath.Side) bool {
	return side.IsHand() && p.r.controllerActive[side]
}

func (p presence) EyeTrackingAvailable() bool {
	return p.r.eyeTrackingAvailable()
}

func (p presence) TrackerConnected(role string) bool {
	return p.r.trackerIndex(role) >= 0
}

// resolver returns a space resolver over the current state. Callers hold mu.
func (r *Runtime) resolver() *space.Resolver {
	res := &space.Resolver{
		Session:      r.hmd,
		FloorHeight:  r.settings.FloorHeight,
		SwapGripAim:  r.settings.SwapGripAimPoses,
		EyeTracking:  r.eyeTrackingAvailable(),
		TrackerIndex: r.trackerIndex,
	}
	for side, b := range r.bindings {
		res.Grip[side] = b.Grip
		res.Aim[side] = b.Aim
	}
	return res
}
