//go:build !lanes_noserial

package unit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/lanes"
)

func TestLengthJSON(t *testing.T) {
	type shelf struct {
		Width Length[millimeter, lanes.F32] `json:"width"`
	}
	in := shelf{Width: New[millimeter](lanes.F32(304.8))}
	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"width": 304.8}`, string(out))

	var back shelf
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, in, back)

	assert.Error(t, json.Unmarshal([]byte(`{"width": "wide"}`), &back))
}

func TestLengthYAML(t *testing.T) {
	l := New[meter](lanes.F64x2{1.5, -2})
	out, err := yaml.Marshal(l)
	require.NoError(t, err)

	var seq []float64
	require.NoError(t, yaml.Unmarshal(out, &seq))
	assert.Equal(t, []float64{1.5, -2}, seq)

	var back Length[meter, lanes.F64x2]
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, l, back)

	var s Scale[inch, millimeter, lanes.F32]
	require.NoError(t, yaml.Unmarshal([]byte("25.4"), &s))
	assert.Equal(t, lanes.F32(25.4), s.Get())
	j, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "25.4", string(j))
}
