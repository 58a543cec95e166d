//go:build !lanes_noserial

package lanes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLRoundTrip(t *testing.T) {
	for _, v := range []F32{0.1, 1.0 / 3, -2.5e-38, 16777217, F32(math.MaxFloat32)} {
		out, err := yaml.Marshal(v)
		require.NoError(t, err)
		var got F32
		require.NoError(t, yaml.Unmarshal(out, &got))
		assert.Equal(t, bits32(v), bits32(got), "F32 %v encoded as %q", v, out)
	}
	for _, v := range []F64{0.1, 1.0 / 3, math.Pi, -1e300} {
		out, err := yaml.Marshal(v)
		require.NoError(t, err)
		var got F64
		require.NoError(t, yaml.Unmarshal(out, &got))
		assert.Equal(t, bits64(v), bits64(got))
	}
}

func TestYAMLWideAndSpecial(t *testing.T) {
	v := F32x4{0.1, F32(math.Inf(1)), F32(math.Inf(-1)), 3}
	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), ".inf")

	var got F32x4
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, v, got)

	var nan F64
	require.NoError(t, yaml.Unmarshal([]byte(".nan"), &nan))
	assert.True(t, math.IsNaN(float64(nan)))

	var bad F32
	require.Error(t, yaml.Unmarshal([]byte("[1, 2]"), &bad))
	require.Error(t, yaml.Unmarshal([]byte("abc"), &bad))
}
