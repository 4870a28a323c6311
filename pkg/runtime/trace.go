package runtime

import (
	"fmt"
	"time"

	"github.com/xrbridge/xrbridge-go/pkg/action"
	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/log"
	"github.com/xrbridge/xrbridge-go/pkg/profile"
	"github.com/xrbridge/xrbridge-go/pkg/result"
)

// call records one entry point invocation for the trace and debug log.
type call struct {
	r     *Runtime
	fn    string
	start time.Time
	args  map[string]string
}

// begin starts recording an entry point. Callers hold mu and end the call
// before releasing it.
func (r *Runtime) begin(fn string) *call {
	return &call{r: r, fn: fn, start: time.Now()}
}

func (c *call) arg(key string, value any) {
	if c.args == nil {
		c.args = make(map[string]string)
	}
	c.args[key] = fmt.Sprint(value)
}

func (c *call) end(err error) {
	code := result.Of(err)
	d := time.Since(c.start)

	if code.Failed() {
		c.r.logger.Debug(c.fn, "result", code.String(), "error", err)
	} else {
		c.r.logger.Debug(c.fn, "result", code.String())
	}

	if c.r.trace == nil {
		return
	}
	c.r.trace.Log(log.Event{
		Timestamp: c.start,
		SessionID: c.r.sessionID,
		Category:  log.CategoryCall,
		Call: &log.CallEvent{
			Function:   c.fn,
			Args:       c.args,
			Result:     int32(code),
			ResultName: code.String(),
			Duration:   &d,
		},
	})
}

func (r *Runtime) traceSnapshot() {
	if r.trace == nil {
		return
	}
	r.trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: r.sessionID,
		Category:  log.CategorySnapshot,
		Snapshot: &log.SnapshotEvent{
			Input:           r.input,
			ControllerTypes: r.controllerType,
			TrackerSerials:  r.trackers.serials(),
		},
	})
}

func (r *Runtime) traceState(entity log.StateEntity, oldState, newState, reason string) {
	if r.trace == nil {
		return
	}
	r.trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: r.sessionID,
		Category:  log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   entity,
			OldState: oldState,
			NewState: newState,
			Reason:   reason,
		},
	})
}

// traceBinding is the binder's OnBind hook.
func (r *Runtime) traceBinding(a *action.Action, bindingPath string, src profile.Source) {
	r.logger.Debug("bound source", "action", a.Name, "binding", bindingPath, "real", src.RealPath)
	if r.trace == nil {
		return
	}
	ev := &log.BindingEvent{
		Action:      a.Name,
		BindingPath: bindingPath,
		RealPath:    src.RealPath,
	}
	if src.Kind() != hmd.KindNone {
		ev.Field = src.String()
	}
	r.trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: r.sessionID,
		Category:  log.CategoryBinding,
		Binding:   ev,
	})
}

func (r *Runtime) traceError(err *result.FatalError, fatal bool) {
	if r.trace == nil {
		return
	}
	code := int(result.RuntimeFailure)
	r.trace.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: r.sessionID,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Message: err.Err.Error(),
			Code:    &code,
			Context: err.Op,
			Fatal:   fatal,
		},
	})
}
