// Package runtime is the input runtime behind the XR entry points.
//
// A Runtime owns the path table, the action sets and actions, the
// suggested bindings and the single session. Every entry point checks its
// arguments in the order the API defines and returns a result.Code on
// failure. SyncActions latches the headset input into the attached action
// sets; the state queries read that snapshot through the bound sources.
//
// A hardware error poisons the runtime: the failing call and every later
// call return the same *result.FatalError.
//
// Basic usage:
//
//	dev := sim.New()
//	rt, err := runtime.New(dev, runtime.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	err = rt.CreateSession(&runtime.SessionCreateInfo{
//		Type:     runtime.TypeSessionCreateInfo,
//		SystemID: runtime.SystemID,
//	})
package runtime
