//go:build !lanes_noserial

package rot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/internal/fields"
	"github.com/ajroetker/go-lanes/lanes"
)

func TestQuatJSON(t *testing.T) {
	q := Quatf{X: 0.5, Y: -0.5, Z: 0.25, W: 1}
	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `[0.5, -0.5, 0.25, 1]`, string(out))

	var back Quatf
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, q, back)

	err = json.Unmarshal([]byte(`[1, 2, 3]`), &back)
	assert.ErrorIs(t, err, fields.ErrComponents)
}

func TestRotorComponentOrder(t *testing.T) {
	r := Rotor3d{S: 1, B: Bivec3[lanes.F64]{XY: 2, XZ: 3, YZ: 4}}
	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3, 4]`, string(out))

	var back Rotor3d
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, r, back)

	y, err := yaml.Marshal(r)
	require.NoError(t, err)
	var fromYAML Rotor3d
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	assert.Equal(t, r, fromYAML)
}

func TestQuatYAML(t *testing.T) {
	var q Quatd
	require.NoError(t, yaml.Unmarshal([]byte("[0, 0, 0.6, 0.8]"), &q))
	assert.Equal(t, Quatd{Z: 0.6, W: 0.8}, q)

	err := yaml.Unmarshal([]byte("{x: 1}"), &q)
	assert.Error(t, err)
}

func TestBivecSequence(t *testing.T) {
	b := Bivec3[lanes.F32]{XY: 1, XZ: -2, YZ: 0.5}
	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, -2, 0.5]`, string(out))

	var back Bivec3[lanes.F32]
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, b, back)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[1, 2]`), &back), fields.ErrComponents)

	y, err := yaml.Marshal(b)
	require.NoError(t, err)
	var seq []float64
	require.NoError(t, yaml.Unmarshal(y, &seq))
	assert.Equal(t, []float64{1, -2, 0.5}, seq)

	var fromYAML Bivec3[lanes.F32]
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	assert.Equal(t, b, fromYAML)
	assert.Error(t, yaml.Unmarshal([]byte("{xy: 1}"), &fromYAML))
}
