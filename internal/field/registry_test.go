package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	descriptors := []Field{
		Section{Label: "General"},
		Checkbox{Key: "useBank", Label: "Use bank", Default: true},
		Separator{},
		Slider{Key: "eatAt", Label: "Eat at", Default: 50, Min: 1, Max: 99},
		Spacing{},
		Combo{Key: "food", Label: "Food", Default: 1, Options: []string{"Shark", "Karambwan"}},
		Input{Key: "name", Label: "Display name", Default: "anon", MaxLen: 12},
	}

	for _, d := range descriptors {
		require.NoError(t, r.Register(d))
	}

	got := r.Fields()
	require.Len(t, got, len(descriptors))
	for i := range descriptors {
		assert.Equal(t, descriptors[i], got[i])
	}
}

func TestRegisterSeedsDefaultsWithMatchingKinds(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	require.NoError(t, r.Register(Checkbox{Key: "useBank", Label: "Use bank", Default: true}))
	require.NoError(t, r.Register(Slider{Key: "eatAt", Label: "Eat at", Default: 50, Min: 1, Max: 99}))
	require.NoError(t, r.Register(Input{Key: "name", Label: "Name", Default: "anon", MaxLen: 12}))

	v, ok := r.Get("useBank")
	require.True(t, ok)
	assert.Equal(t, KindBool, v.Kind())
	assert.True(t, v.Bool())

	v, ok = r.Get("eatAt")
	require.True(t, ok)
	assert.Equal(t, KindInt, v.Kind())
	assert.Equal(t, 50, v.Int())

	v, ok = r.Get("name")
	require.True(t, ok)
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "anon", v.Str())
}

func TestRegisterDuplicateKeyClobbersDefault(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	require.NoError(t, r.Register(Slider{Key: "eatAt", Label: "Eat at", Default: 50, Min: 1, Max: 99}))
	require.NoError(t, r.Register(Slider{Key: "eatAt", Label: "Eat at again", Default: 70, Min: 1, Max: 99}))

	// Both fields stay in the order; the last default wins in the map.
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 70, r.GetInt("eatAt"))
}

func TestSetRespectsKindAndRegisteredKeys(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	require.NoError(t, r.Register(Checkbox{Key: "useBank", Label: "Use bank"}))

	r.Set("useBank", BoolValue(true))
	assert.True(t, r.GetBool("useBank"))

	// Kind mismatch is ignored, not coerced.
	r.Set("useBank", IntValue(1))
	assert.True(t, r.GetBool("useBank"))
	v, _ := r.Get("useBank")
	assert.Equal(t, KindBool, v.Kind())

	// Unknown keys never enter the map.
	r.Set("ghost", BoolValue(true))
	_, ok := r.Get("ghost")
	assert.False(t, ok)
}

func TestSnapshotProjectsOnlyDeclaredKeys(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	require.NoError(t, r.Register(Section{Label: "General"}))
	require.NoError(t, r.Register(Checkbox{Key: "useBank", Label: "Use bank", Default: true}))
	require.NoError(t, r.Register(Slider{Key: "eatAt", Label: "Eat at", Default: 50, Min: 1, Max: 99}))

	snap := r.Snapshot()
	require.Len(t, snap, 2)
	assert.True(t, snap["useBank"].Bool())
	assert.Equal(t, 50, snap["eatAt"].Int())
}

func TestDescribeFormatsCurrentValues(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	checkbox := Checkbox{Key: "useBank", Label: "Use bank", Default: true}
	slider := Slider{Key: "eatAt", Label: "Eat at", Default: 50, Min: 1, Max: 99, Format: "%d%%"}
	combo := Combo{Key: "food", Label: "Food", Default: 1, Options: []string{"Shark", "Karambwan"}}
	input := Input{Key: "name", Label: "Name", Default: "anon", MaxLen: 12}

	for _, f := range []Field{checkbox, slider, combo, input} {
		require.NoError(t, r.Register(f))
	}

	assert.Equal(t, "on", r.Describe(checkbox))
	assert.Equal(t, "50%", r.Describe(slider))
	assert.Equal(t, "Karambwan", r.Describe(combo))
	assert.Equal(t, "anon", r.Describe(input))
}

func TestRegisterRejectsInvalidDescriptors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		f    Field
	}{
		{"missing key", Checkbox{Label: "Use bank"}},
		{"bad key charset", Checkbox{Key: "use bank", Label: "Use bank"}},
		{"key starting with digit", Checkbox{Key: "1bank", Label: "Use bank"}},
		{"slider min not below max", Slider{Key: "eatAt", Label: "Eat at", Default: 5, Min: 9, Max: 9}},
		{"slider default below min", Slider{Key: "eatAt", Label: "Eat at", Default: 0, Min: 1, Max: 99}},
		{"combo without options", Combo{Key: "food", Label: "Food"}},
		{"combo default out of range", Combo{Key: "food", Label: "Food", Default: 2, Options: []string{"Shark", "Karambwan"}}},
		{"input without max length", Input{Key: "name", Label: "Name"}},
		{"section without label", Section{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := NewRegistry(nil)
			assert.Error(t, r.Register(tc.f))
		})
	}
}

func TestCoerceJSONTypeGate(t *testing.T) {
	t.Parallel()

	v, ok := CoerceJSON(KindBool, true)
	require.True(t, ok)
	assert.True(t, v.Bool())

	v, ok = CoerceJSON(KindInt, float64(42))
	require.True(t, ok)
	assert.Equal(t, 42, v.Int())

	v, ok = CoerceJSON(KindString, "shark")
	require.True(t, ok)
	assert.Equal(t, "shark", v.Str())

	// Mismatches and fractional numbers are rejected.
	_, ok = CoerceJSON(KindInt, "42")
	assert.False(t, ok)
	_, ok = CoerceJSON(KindInt, 42.5)
	assert.False(t, ok)
	_, ok = CoerceJSON(KindBool, float64(1))
	assert.False(t, ok)
	_, ok = CoerceJSON(KindString, nil)
	assert.False(t, ok)
}
