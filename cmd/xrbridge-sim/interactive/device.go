package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/inspect"
	"github.com/xrbridge/xrbridge-go/pkg/xrmath"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

func parseSide(s string) (xrpath.Side, error) {
	side, ok := inspect.ResolveSide(s)
	if !ok {
		return xrpath.SideNone, fmt.Errorf("invalid side: %s (must be left or right)", s)
	}
	return side, nil
}

// parseDevice accepts hmd, left, right or trackerN.
func parseDevice(s string) (hmd.Device, error) {
	s = strings.ToLower(s)
	if s == "hmd" || s == "head" {
		return hmd.DeviceHMD, nil
	}
	if side, ok := inspect.ResolveSide(s); ok {
		return hmd.Controller(side), nil
	}
	if n, ok := strings.CutPrefix(s, "tracker"); ok {
		i, err := strconv.Atoi(n)
		if err != nil || i < 0 || i >= hmd.MaxTrackers {
			return 0, fmt.Errorf("invalid tracker index: %s", n)
		}
		return hmd.Tracker(i), nil
	}
	return 0, fmt.Errorf("invalid device: %s", s)
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func (a *App) cmdController(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: controller <side> <type|none>", ErrUsage)
	}
	side, err := parseSide(args[0])
	if err != nil {
		return err
	}
	typ := args[1]
	if typ == "none" {
		typ = ""
	}
	a.dev.SetControllerType(side, typ)
	if typ == "" {
		fmt.Fprintf(a.out, "%s controller disconnected\n", side)
	} else {
		fmt.Fprintf(a.out, "%s controller: %s\n", side, typ)
	}
	return nil
}

func (a *App) cmdButtons(press bool, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: press|release <side> <button[+button...]>", ErrUsage)
	}
	side, err := parseSide(args[0])
	if err != nil {
		return err
	}
	mask, ok := inspect.ResolveButton(args[1])
	if !ok {
		return fmt.Errorf("unknown button: %s", args[1])
	}
	if press {
		a.dev.Press(side, mask)
	} else {
		a.dev.Release(side, mask)
	}
	return nil
}

func (a *App) cmdTouch(touched bool, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: touch|untouch <side> <button[+button...]>", ErrUsage)
	}
	side, err := parseSide(args[0])
	if err != nil {
		return err
	}
	mask, ok := inspect.ResolveButton(args[1])
	if !ok {
		return fmt.Errorf("unknown button: %s", args[1])
	}
	a.dev.Touch(side, mask, touched)
	return nil
}

func (a *App) cmdAxis(args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("%w: axis <side> <field> <x> [y]", ErrUsage)
	}
	side, err := parseSide(args[0])
	if err != nil {
		return err
	}
	field, ok := inspect.ResolveField(args[1])
	if !ok {
		return fmt.Errorf("unknown field: %s", args[1])
	}
	vals, err := parseFloats(args[2:])
	if err != nil {
		return err
	}

	switch field.Kind() {
	case hmd.KindScalar:
		if len(vals) != 1 {
			return fmt.Errorf("%s takes one value", field)
		}
		a.dev.SetScalar(side, field, vals[0])
	case hmd.KindVector:
		if len(vals) != 2 {
			return fmt.Errorf("%s takes two values", field)
		}
		a.dev.SetVector(side, field, xrmath.Vector2f{X: vals[0], Y: vals[1]})
	default:
		return fmt.Errorf("%s is not an analog input", field)
	}
	return nil
}

func (a *App) cmdPose(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("%w: pose <device> <x> <y> <z>", ErrUsage)
	}
	dev, err := parseDevice(args[0])
	if err != nil {
		return err
	}
	vals, err := parseFloats(args[1:])
	if err != nil {
		return err
	}
	a.dev.SetPose(dev, hmd.PoseState{
		Pose:        xrmath.Translation(xrmath.Vector3f{X: vals[0], Y: vals[1], Z: vals[2]}),
		StatusFlags: hmd.StatusOrientationTracked | hmd.StatusPositionTracked,
	})
	return nil
}

func (a *App) cmdTracker(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: tracker connect|disconnect <serial>", ErrUsage)
	}
	switch args[0] {
	case "connect":
		i, err := a.dev.ConnectTracker(args[1], hmd.PoseState{
			Pose:        xrmath.IdentityPose(),
			StatusFlags: hmd.StatusOrientationTracked | hmd.StatusPositionTracked,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Tracker %s connected as tracker%d\n", args[1], i)
	case "disconnect":
		if err := a.dev.DisconnectTracker(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Tracker %s disconnected\n", args[1])
	default:
		return fmt.Errorf("%w: tracker connect|disconnect <serial>", ErrUsage)
	}
	return nil
}

func (a *App) cmdMount(mounted bool) error {
	a.dev.SetStatus(hmd.Status{IsVisible: mounted, HmdMounted: mounted})
	return nil
}

func (a *App) cmdInput(args []string) error {
	sides := []xrpath.Side{xrpath.SideLeft, xrpath.SideRight}
	if len(args) == 1 {
		side, err := parseSide(args[0])
		if err != nil {
			return err
		}
		sides = []xrpath.Side{side}
	}

	s := a.dev.Snapshot()
	fields := []hmd.Field{
		hmd.FieldButtons, hmd.FieldTouches, hmd.FieldTrigger, hmd.FieldGrip,
		hmd.FieldJoyStick, hmd.FieldTouchPad,
	}
	for _, side := range sides {
		fmt.Fprintf(a.out, "%s:\n", side)
		for _, f := range fields {
			fmt.Fprintf(a.out, "  %-14s %s\n", f.String()+":", inspect.FormatInput(&s, f, side))
		}
	}
	return nil
}

func (a *App) cmdPulses() error {
	pulses := a.dev.Pulses()
	if len(pulses) == 0 {
		fmt.Fprintln(a.out, "No pulses")
		return nil
	}
	for _, p := range pulses {
		fmt.Fprintf(a.out, "  %.3fs %s amplitude %.2f\n", p.Time, p.Device, p.Amplitude)
	}
	return nil
}
