package hypview

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_ClampsToRange(t *testing.T) {
	dict := UniformDict{"fillings": Vec2List([]mgl64.Vec2{{0, 0}})}
	c := NewController(dict, KeyIndexComponent("fillings", 0, 0), -15, 15)

	require.NoError(t, c.Set(20))
	v, _ := c.Value()
	assert.Equal(t, 15.0, v)

	require.NoError(t, c.Set(-20))
	v, _ = c.Value()
	assert.Equal(t, -15.0, v)

	require.NoError(t, c.Set(3.5))
	v, _ = c.Value()
	assert.Equal(t, 3.5, v)
}

func TestController_SetFiresCallbackUpdateDoesNot(t *testing.T) {
	dict := UniformDict{"fov": Float(90)}
	c := NewController(dict, Key("fov"), 20, 120)

	calls := 0
	c.UpdateFunction = func() { calls++ }

	require.NoError(t, c.Set(60))
	assert.Equal(t, 1, calls)

	// Pulling from the model must not re-trigger the callback, otherwise a
	// recompute that rewrites the dict would loop forever.
	dict["fov"] = Float(75)
	require.NoError(t, c.Update())
	assert.Equal(t, 1, calls)
}

func TestController_DisplayFormatting(t *testing.T) {
	dict := UniformDict{"fov": Float(90)}
	c := NewController(dict, Key("fov"), 20, 120)
	c.FormatString = "%.1f"

	var shown string
	c.Display = func(text string) { shown = text }

	require.NoError(t, c.Set(62.34))
	assert.Equal(t, "62.3", shown)

	dict["fov"] = Float(80)
	require.NoError(t, c.Update())
	assert.Equal(t, "80.0", shown)
}

func TestController_ErrorOnBrokenBinding(t *testing.T) {
	c := NewController(UniformDict{}, Key("missing"), 0, 1)
	assert.Error(t, c.Set(0.5))
	assert.Error(t, c.Update())
}

func TestBoolController(t *testing.T) {
	dict := UniformDict{"perspectiveType": Bool(false)}

	calls := 0
	c := &BoolController{
		Dict:           dict,
		Key:            "perspectiveType",
		UpdateFunction: func() { calls++ },
	}

	c.Set(true)
	assert.True(t, c.Get())
	assert.True(t, dict["perspectiveType"].Bool)
	assert.Equal(t, 1, calls)
}
