//go:build !lanes_noserial

package mat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/vec"
)

func TestMatrixJSONColumns(t *testing.T) {
	m := FromCols2(vec.Vec2f{X: 1, Y: 2}, vec.Vec2f{X: 3, Y: 4})
	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[3,4]]`, string(out))

	var got Mat2f
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, m, got)
}

func TestMatrixRoundTrip(t *testing.T) {
	m4 := FromTranslation(vec.Vec3f{X: 0.1, Y: 0.2, Z: 0.3}).Mul(FromRotationY4[lanes.F32](1.234))
	out, err := json.Marshal(m4)
	require.NoError(t, err)
	var j4 Mat4f
	require.NoError(t, json.Unmarshal(out, &j4))
	assert.Equal(t, m4, j4)

	y, err := yaml.Marshal(m4)
	require.NoError(t, err)
	var y4 Mat4f
	require.NoError(t, yaml.Unmarshal(y, &y4))
	assert.Equal(t, m4, y4)

	m3 := FromAxisAngle3(vec.Vec3d{X: 0.6, Z: 0.8}, 2)
	y, err = yaml.Marshal(m3)
	require.NoError(t, err)
	var y3 Mat3d
	require.NoError(t, yaml.Unmarshal(y, &y3))
	assert.Equal(t, m3, y3)

	w := Splat3[lanes.F32, lanes.F32x4](FromScale3(vec.Vec3f{X: 0.5, Y: 1.5, Z: 2.5}))
	out, err = json.Marshal(w)
	require.NoError(t, err)
	var jw Mat3fx4
	require.NoError(t, json.Unmarshal(out, &jw))
	assert.Equal(t, w, jw)
}

func TestMatrixDecodeErrors(t *testing.T) {
	var m Mat3f
	err := json.Unmarshal([]byte(`[[1,0,0],[0,1,0]]`), &m)
	require.ErrorIs(t, err, vec.ErrComponents)
	assert.Contains(t, err.Error(), "mat.Mat3")

	err = json.Unmarshal([]byte(`[[1,0,0],[0,1],[0,0,1]]`), &m)
	require.ErrorIs(t, err, vec.ErrComponents)
	assert.Contains(t, err.Error(), "vec.Vec3")

	var m2 Mat2d
	require.NoError(t, yaml.Unmarshal([]byte("- [1, 0]\n- [0, 1]\n"), &m2))
	assert.Equal(t, Identity2[lanes.F64](), m2)
	require.ErrorIs(t, yaml.Unmarshal([]byte("[[1, 0]]"), &m2), vec.ErrComponents)
}
