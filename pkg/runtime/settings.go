package runtime

import (
	"github.com/xrbridge/xrbridge-go/pkg/config"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
)

// ApplySettings installs new settings. Deadzone, grip/aim swap and floor
// height apply to the next query. A forced profile change rebinds at the
// next sync. A change of the controller pose offsets clears the cached
// controller types so that the next sync rebinds both hands.
func (r *Runtime) ApplySettings(s config.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	oldOffsets := r.settings.Offsets()
	r.settings = s.Clone()
	newOffsets := r.settings.Offsets()

	if !xrmath.Equals(oldOffsets.Aim, newOffsets.Aim) ||
		!xrmath.Equals(oldOffsets.Grip, newOffsets.Grip) ||
		!xrmath.Equals(oldOffsets.Hand, newOffsets.Hand) {
		r.controllerType[0] = ""
		r.controllerType[1] = ""
	}

	r.logger.Info("settings applied",
		"deadzone", r.settings.Deadzone(),
		"swapGripAim", r.settings.SwapGripAimPoses,
		"forced", r.settings.Forced().String(),
		"debugController", r.settings.DebugController())
	return nil
}

// Settings returns the current settings.
func (r *Runtime) Settings() config.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings.Clone()
}
