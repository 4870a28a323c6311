package action

import (
	"strings"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

// HapticTargets returns the devices that a vibration of the action under
// the subaction path reaches, in source order. trackerIndex returns the
// enumeration index of the tracker serving a role, or -1.
func (a *Action) HapticTargets(subaction string, trackerIndex func(role string) int) []hmd.Device {
	var out []hmd.Device
	for _, bs := range a.sourcesUnder(subaction) {
		if !strings.HasSuffix(bs.Path, xrpath.HapticSuffix) {
			continue
		}
		if side := xrpath.SideOf(bs.Path, false); side.IsHand() {
			out = append(out, hmd.Controller(side))
			continue
		}
		if role := xrpath.TrackerRole(bs.Path); role != "" {
			if i := trackerIndex(role); i >= 0 && i < hmd.MaxTrackers {
				out = append(out, hmd.Tracker(i))
			}
		}
	}
	return out
}
