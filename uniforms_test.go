package hypview

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_ScalarRoundTrip(t *testing.T) {
	dict := UniformDict{
		"fov":      Float(90),
		"maxSteps": Int(20),
		"ideal":    Bool(true),
	}

	v, err := Key("fov").Get(dict)
	require.NoError(t, err)
	assert.Equal(t, 90.0, v)

	require.NoError(t, Key("fov").Set(dict, 60))
	assert.Equal(t, 60.0, dict["fov"].Float)

	require.NoError(t, Key("maxSteps").Set(dict, 35.0))
	assert.Equal(t, 35, dict["maxSteps"].Int)

	v, err = Key("ideal").Get(dict)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	require.NoError(t, Key("ideal").Set(dict, 0))
	assert.False(t, dict["ideal"].Bool)
}

func TestPath_IndexedAccess(t *testing.T) {
	dict := UniformDict{
		"cuspAreas": FloatList([]float64{1.5, 2.5}),
	}

	v, err := KeyIndex("cuspAreas", 1).Get(dict)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	require.NoError(t, KeyIndex("cuspAreas", 0).Set(dict, 4.0))
	assert.Equal(t, []float64{4.0, 2.5}, dict["cuspAreas"].FloatList)
}

func TestPath_ComponentAccess(t *testing.T) {
	dict := UniformDict{
		"fillings": Vec2List([]mgl64.Vec2{{1, 2}, {3, 4}}),
	}

	v, err := KeyIndexComponent("fillings", 1, 0).Get(dict)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	require.NoError(t, KeyIndexComponent("fillings", 0, 1).Set(dict, 7.0))
	assert.Equal(t, mgl64.Vec2{1, 7}, dict["fillings"].Vec2List[0])
}

func TestPath_ShapeMismatches(t *testing.T) {
	dict := UniformDict{
		"fov":       Float(90),
		"cuspAreas": FloatList([]float64{1}),
		"fillings":  Vec2List([]mgl64.Vec2{{0, 0}}),
	}

	cases := []Path{
		Key("missing"),
		KeyIndex("fov", 0),
		KeyIndex("cuspAreas", 5),
		KeyIndexComponent("cuspAreas", 0, 0),
		KeyIndex("fillings", 0),
		KeyIndexComponent("fillings", 0, 2),
	}
	for _, p := range cases {
		_, err := p.Get(dict)
		assert.Error(t, err, "path %+v", p)
		assert.Error(t, p.Set(dict, 1), "path %+v", p)
	}
}
