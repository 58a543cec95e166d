package rot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/vec"
)

func TestRotorPlanes(t *testing.T) {
	x, y, z := vec.Vec3d{X: 1}, vec.Vec3d{Y: 1}, vec.Vec3d{Z: 1}
	tests := []struct {
		name     string
		r        Rotor3d
		from, to vec.Vec3d
	}{
		{"XY", FromRotationXY[lanes.F64](math.Pi / 2), x, y},
		{"XZ", FromRotationXZ[lanes.F64](math.Pi / 2), x, z},
		{"YZ", FromRotationYZ[lanes.F64](math.Pi / 2), y, z},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.to, tt.r.Rotate(tt.from), approx(1e-15)); diff != "" {
				t.Errorf("Rotate (-want +got):\n%s", diff)
			}
		})
	}

	assert.Equal(t, FromRotationXY[lanes.F64](0.7), FromAnglePlane(0.7, Bivec3[lanes.F64]{XY: 1}))
	assert.Equal(t, FromRotationZ[lanes.F64](0.7), FromRotationXY[lanes.F64](0.7).ToQuat())
	assert.Equal(t, FromRotationX[lanes.F64](0.7), FromRotationYZ[lanes.F64](0.7).ToQuat())
	assert.Equal(t, FromRotationY[lanes.F64](-0.7), FromRotationXZ[lanes.F64](0.7).ToQuat())
}

func TestRotorMatchesQuat(t *testing.T) {
	qs := randomQuats(40)
	v := vec.Vec3d{X: -0.5, Y: 2, Z: 0.25}
	for i := 0; i+1 < len(qs); i += 2 {
		p, q := qs[i], qs[i+1]
		rp, rq := FromQuat(p), FromQuat(q)

		assert.Equal(t, p, rp.ToQuat(), "round trip")
		if diff := cmp.Diff(p.Rotate(v), rp.Rotate(v), approx(1e-14)); diff != "" {
			t.Errorf("Rotate (-quat +rotor):\n%s", diff)
		}
		if diff := cmp.Diff(p.ToMat3(), rp.ToMat3(), approx(1e-14)); diff != "" {
			t.Errorf("ToMat3 (-quat +rotor):\n%s", diff)
		}
		if diff := cmp.Diff(p.Mul(q), rp.Mul(rq).ToQuat(), approx(1e-14)); diff != "" {
			t.Errorf("Mul (-quat +rotor):\n%s", diff)
		}
		for _, tt := range []lanes.F64{0, 0.3, 0.5, 1} {
			if diff := cmp.Diff(p.Slerp(q, tt), rp.Slerp(rq, tt).ToQuat(), approx(1e-14)); diff != "" {
				t.Errorf("Slerp t=%v (-quat +rotor):\n%s", tt, diff)
			}
			if diff := cmp.Diff(p.Nlerp(q, tt), rp.Nlerp(rq, tt).ToQuat(), approx(1e-14)); diff != "" {
				t.Errorf("Nlerp t=%v (-quat +rotor):\n%s", tt, diff)
			}
		}
	}
}

func TestRotorReverse(t *testing.T) {
	r := FromAnglePlane(1.3, Bivec3[lanes.F64]{XY: 0.6, YZ: 0.8})
	if diff := cmp.Diff(IdentityRotor[lanes.F64](), r.Mul(r.Reverse()), approx(1e-14)); diff != "" {
		t.Errorf("r * reverse(r) (-want +got):\n%s", diff)
	}
	v := vec.Vec3d{X: 1, Y: 2, Z: 3}
	if diff := cmp.Diff(v, r.Reverse().Rotate(r.Rotate(v)), approx(1e-14)); diff != "" {
		t.Errorf("reverse undoes rotate (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 1, r.Length().Float(), 1e-15)
	assert.InDelta(t, 1, r.Scale(4).Normalize().Length().Float(), 1e-15)
}

func TestWideRotor(t *testing.T) {
	rs := []Rotor3f{
		FromRotationXY[lanes.F32](0.4),
		FromRotationXZ[lanes.F32](-1.2),
		FromRotationYZ[lanes.F32](2),
		IdentityRotor[lanes.F32](),
	}
	var w Rotor3fx4
	for i, r := range rs {
		v := r.Vec4()
		w.S = w.S.WithLane(i, v.X)
		w.B.XY = w.B.XY.WithLane(i, v.Y)
		w.B.XZ = w.B.XZ.WithLane(i, v.Z)
		w.B.YZ = w.B.YZ.WithLane(i, v.W)
	}
	p := vec.Broadcast3[lanes.F32, lanes.F32x4](vec.Vec3f{X: 1, Y: -2, Z: 0.5})
	got := w.Rotate(p)
	for i, r := range rs {
		assert.Equal(t, r, ExtractRotor[lanes.F32](w, i))
		assert.Equal(t, r.Rotate(vec.Vec3f{X: 1, Y: -2, Z: 0.5}), vec.Extract3[lanes.F32](got, i))
	}
	b := BroadcastRotor[lanes.F32, lanes.F32x4](rs[1])
	assert.Equal(t, rs[1], ExtractRotor[lanes.F32](b, 2))
}
