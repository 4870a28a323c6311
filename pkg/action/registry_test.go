package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrbridge/xrbridge-go/pkg/result"
	"github.com/xrbridge/xrbridge-go/pkg/xrpath"
)

func newTestRegistry(t *testing.T) (*Registry, *xrpath.Table) {
	t.Helper()
	paths := xrpath.NewTable()
	return NewRegistry(paths), paths
}

func TestCreateSetChecks(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.CreateSet("gameplay", "Gameplay", 0)
	require.NoError(t, err)

	tests := []struct {
		name, localized string
		want            result.Code
	}{
		{"", "X", result.NameInvalid},
		{"Game Play", "X", result.PathFormatInvalid},
		{"other", "", result.LocalizedNameInvalid},
		{"gameplay", "Other", result.NameDuplicated},
		{"other", "Gameplay", result.LocalizedNameDuplicated},
		// name errors win over localized-name errors
		{"gameplay", "Gameplay", result.NameDuplicated},
	}
	for _, tt := range tests {
		_, err := reg.CreateSet(tt.name, tt.localized, 0)
		assert.Equal(t, tt.want, result.Of(err), "%q/%q", tt.name, tt.localized)
	}
	assert.Len(t, reg.Sets(), 1)
}

func TestCreateActionChecks(t *testing.T) {
	reg, paths := newTestRegistry(t)
	set, err := reg.CreateSet("gameplay", "Gameplay", 0)
	require.NoError(t, err)

	left := paths.MustPath(xrpath.UserHandLeft)
	right := paths.MustPath(xrpath.UserHandRight)
	head := paths.MustPath(xrpath.UserHead)

	fire, err := reg.CreateAction(set, TypeBooleanInput, "fire", "Fire", []xrpath.Path{left, right})
	require.NoError(t, err)
	assert.Equal(t, set, fire.Set)
	assert.True(t, fire.HasSubactionPath(right))

	tests := []struct {
		name       string
		typ        Type
		action     string
		localized  string
		subactions []xrpath.Path
		want       result.Code
	}{
		{"bad type", Type(7), "jump", "Jump", nil, result.ValidationFailure},
		{"empty name", TypeFloatInput, "", "Jump", nil, result.NameInvalid},
		{"bad name", TypeFloatInput, "Jump", "Jump", nil, result.PathFormatInvalid},
		{"empty localized", TypeFloatInput, "jump", "", nil, result.LocalizedNameInvalid},
		{"dup name", TypeFloatInput, "fire", "Jump", nil, result.NameDuplicated},
		{"dup localized", TypeFloatInput, "jump", "Fire", nil, result.LocalizedNameDuplicated},
		{"unknown path", TypeFloatInput, "jump", "Jump", []xrpath.Path{xrpath.Path(999)}, result.PathInvalid},
		{"head path", TypeFloatInput, "jump", "Jump", []xrpath.Path{head}, result.PathUnsupported},
		{"dup path", TypeFloatInput, "jump", "Jump", []xrpath.Path{left, left}, result.PathUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.CreateAction(set, tt.typ, tt.action, tt.localized, tt.subactions)
			assert.Equal(t, tt.want, result.Of(err))
		})
	}

	// same names are fine in another set
	other, err := reg.CreateSet("menu", "Menu", 0)
	require.NoError(t, err)
	_, err = reg.CreateAction(other, TypeBooleanInput, "fire", "Fire", nil)
	assert.NoError(t, err)
}

func TestAttach(t *testing.T) {
	reg, paths := newTestRegistry(t)
	left := paths.MustPath(xrpath.UserHandLeft)
	right := paths.MustPath(xrpath.UserHandRight)

	set, _ := reg.CreateSet("gameplay", "Gameplay", 0)
	_, err := reg.CreateAction(set, TypeBooleanInput, "fire", "Fire", []xrpath.Path{left})
	require.NoError(t, err)
	_, err = reg.CreateAction(set, TypePoseInput, "hand", "Hand", []xrpath.Path{right, left})
	require.NoError(t, err)
	other, _ := reg.CreateSet("menu", "Menu", 0)

	assert.Equal(t, result.HandleInvalid, result.Of(reg.Attach([]Handle{set.Handle, makeHandle(40, 1)})))
	assert.False(t, reg.AnyAttached(), "failed attach has no effect")

	require.NoError(t, reg.Attach([]Handle{set.Handle}))
	assert.True(t, set.Attached())
	assert.False(t, other.Attached())
	assert.Equal(t, []xrpath.Path{left, right}, set.SubactionPaths)

	assert.Equal(t, result.ActionSetsAlreadyAttached, result.Of(reg.Attach([]Handle{other.Handle})))

	_, err = reg.CreateAction(set, TypeBooleanInput, "late", "Late", nil)
	assert.Equal(t, result.ActionSetsAlreadyAttached, result.Of(err))
	_, err = reg.CreateAction(other, TypeBooleanInput, "late", "Late", nil)
	assert.NoError(t, err, "unattached sets still accept actions")

	reg.DetachAll()
	assert.False(t, reg.AnyAttached())
}

func TestDestroy(t *testing.T) {
	reg, _ := newTestRegistry(t)
	set, _ := reg.CreateSet("gameplay", "Gameplay", 0)
	a, _ := reg.CreateAction(set, TypeBooleanInput, "fire", "Fire", nil)
	b, _ := reg.CreateAction(set, TypeFloatInput, "throttle", "Throttle", nil)

	require.NoError(t, reg.DestroyAction(a.Handle))
	assert.Equal(t, result.HandleInvalid, result.Of(reg.DestroyAction(a.Handle)))
	_, ok := reg.Action(a.Handle)
	assert.False(t, ok)

	// the name is free again
	_, err := reg.CreateAction(set, TypeBooleanInput, "fire", "Fire", nil)
	require.NoError(t, err)

	require.NoError(t, reg.Attach([]Handle{set.Handle}))
	require.NoError(t, reg.DestroySet(set.Handle))
	assert.Empty(t, reg.Actions(), "destroying a set destroys its actions")
	_, ok = reg.Action(b.Handle)
	assert.False(t, ok)
	assert.False(t, reg.AnyAttached())
	assert.Equal(t, result.HandleInvalid, result.Of(reg.DestroySet(set.Handle)))

	// set names are free again
	_, err = reg.CreateSet("gameplay", "Gameplay", 0)
	assert.NoError(t, err)
}
