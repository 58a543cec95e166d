//go:build !lanes_noserial

package vec

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/lanes"
)

func TestJSONFieldOrder(t *testing.T) {
	out, err := json.Marshal(Vec3f{1, 2.5, -3})
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2.5, -3]`, string(out))

	out, err = json.Marshal(Vec2fx4{X: lanes.F32x4{1, 2, 3, 4}})
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2,3,4],[0,0,0,0]]`, string(out))
}

func TestJSONRoundTrip(t *testing.T) {
	v3 := Vec3f{0.1, 1.0 / 3, -7e-20}
	out, err := json.Marshal(v3)
	require.NoError(t, err)
	var g3 Vec3f
	require.NoError(t, json.Unmarshal(out, &g3))
	assert.Equal(t, v3, g3)

	v4 := Vec4d{math.Pi, math.E, -0.1, 1e300}
	out, err = json.Marshal(v4)
	require.NoError(t, err)
	var g4 Vec4d
	require.NoError(t, json.Unmarshal(out, &g4))
	assert.Equal(t, v4, g4)

	w := Vec3fx8{X: lanes.F32x8{0.1, 0.2, 0.3}, Z: lanes.F32x8{7: 9.5}}
	out, err = json.Marshal(w)
	require.NoError(t, err)
	var gw Vec3fx8
	require.NoError(t, json.Unmarshal(out, &gw))
	assert.Equal(t, w, gw)

	// JSON numbers cannot carry NaN.
	_, err = json.Marshal(Vec2f{lanes.F32(math.NaN()), 0})
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	v := Vec4f{0.1, lanes.F32(math.Inf(1)), -2, 1e-30}
	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	var got Vec4f
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, v, got)

	var g2 Vec2d
	require.NoError(t, yaml.Unmarshal([]byte("[1.5, -2]"), &g2))
	assert.Equal(t, Vec2d{1.5, -2}, g2)
}

func TestDecodeWrongCount(t *testing.T) {
	var v Vec3f
	err := json.Unmarshal([]byte(`[1, 2]`), &v)
	require.ErrorIs(t, err, ErrComponents)
	assert.Contains(t, err.Error(), "vec.Vec3")

	err = yaml.Unmarshal([]byte("[1, 2, 3, 4, 5]"), &v)
	require.ErrorIs(t, err, ErrComponents)

	err = yaml.Unmarshal([]byte("x: 1"), &v)
	require.Error(t, err)
}
