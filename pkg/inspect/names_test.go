package inspect_test

import (
	"reflect"
	"testing"

	"github.com/xrbridge/xrbridge-go/pkg/hmd"
	"github.com/xrbridge/xrbridge-go/pkg/inspect"
	"github.com/xrbridge/xrbridge-go/pkg/space"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

func TestResolveSide(t *testing.T) {
	tests := []struct {
		name      string
		want      xrpath.Side
		wantFound bool
	}{
		{"left", xrpath.SideLeft, true},
		{"L", xrpath.SideLeft, true},
		{"Right", xrpath.SideRight, true},
		{"r", xrpath.SideRight, true},
		{"head", xrpath.SideNone, false},
		{"", xrpath.SideNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := inspect.ResolveSide(tt.name)
			if found != tt.wantFound {
				t.Errorf("ResolveSide(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
			if got != tt.want {
				t.Errorf("ResolveSide(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveButton(t *testing.T) {
	tests := []struct {
		name      string
		want      hmd.Button
		wantFound bool
	}{
		{"a", hmd.ButtonA, true},
		{"Trigger", hmd.ButtonTrigger, true},
		{"menu", hmd.ButtonApplicationMenu, true},
		{"app", hmd.ButtonApplicationMenu, true},
		{"squeeze", hmd.ButtonGrip, true},
		{"stick", hmd.ButtonJoyStick, true},
		{"trackpad", hmd.ButtonTouchPad, true},
		{"dpad_up", hmd.ButtonDpadUp, true},
		{"a+b", hmd.ButtonA | hmd.ButtonB, true},
		{"system+trigger", hmd.ButtonSystem | hmd.ButtonTrigger, true},
		{"a+nope", 0, false},
		{"nonexistent", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := inspect.ResolveButton(tt.name)
			if found != tt.wantFound {
				t.Errorf("ResolveButton(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
			if got != tt.want {
				t.Errorf("ResolveButton(%q) = 0x%x, want 0x%x", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveField(t *testing.T) {
	tests := []struct {
		name      string
		want      hmd.Field
		wantFound bool
	}{
		{"trigger", hmd.FieldTrigger, true},
		{"squeeze", hmd.FieldGrip, true},
		{"ThumbStick", hmd.FieldJoyStick, true},
		{"trackpad", hmd.FieldTouchPad, true},
		{"buttons", hmd.FieldButtons, true},
		{"pinky", hmd.FieldFingerPinky, true},
		{"elbow", hmd.FieldNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := inspect.ResolveField(tt.name)
			if found != tt.wantFound {
				t.Errorf("ResolveField(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
			if got != tt.want {
				t.Errorf("ResolveField(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveReferenceType(t *testing.T) {
	if got, ok := inspect.ResolveReferenceType("STAGE"); !ok || got != space.ReferenceStage {
		t.Errorf("ResolveReferenceType(STAGE) = %v, %v", got, ok)
	}
	if got, ok := inspect.ResolveReferenceType("combined_eye"); !ok || got != space.ReferenceCombinedEye {
		t.Errorf("ResolveReferenceType(combined_eye) = %v, %v", got, ok)
	}
	if _, ok := inspect.ResolveReferenceType("unbounded"); ok {
		t.Error("ResolveReferenceType(unbounded) should not resolve")
	}
}

func TestGetButtonNames(t *testing.T) {
	mask := uint32(hmd.ButtonTrigger | hmd.ButtonSystem | hmd.ButtonA)
	want := []string{"system", "a", "trigger"}
	if got := inspect.GetButtonNames(mask); !reflect.DeepEqual(got, want) {
		t.Errorf("GetButtonNames(0x%x) = %v, want %v", mask, got, want)
	}
	if got := inspect.GetButtonNames(0); len(got) != 0 {
		t.Errorf("GetButtonNames(0) = %v, want empty", got)
	}
}
