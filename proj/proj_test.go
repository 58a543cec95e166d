package proj

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/mat"
	"github.com/ajroetker/go-lanes/vec"
)

func withDebug(t *testing.T, on bool) {
	t.Helper()
	prev := lanes.SetDebugAssertions(on)
	t.Cleanup(func() { lanes.SetDebugAssertions(prev) })
}

func depth(m mat.Mat4d, z lanes.F64) float64 {
	return m.ProjectPoint3(vec.Vec3d{Z: z}).Z.Float()
}

func TestPerspectiveDepthRange(t *testing.T) {
	const near, far = 0.1, 100.0
	tests := []struct {
		name     string
		m        mat.Mat4d
		min, max float64
	}{
		{"ZeroToOne", Perspective[lanes.F64](1, 1.5, near, far), 0, 1},
		{"GL", PerspectiveGL[lanes.F64](1, 1.5, near, far), -1, 1},
		{"Infinite", PerspectiveInfinite[lanes.F64](1, 1.5, near), 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.min, depth(tt.m, -near), 1e-12)
			if tt.name != "Infinite" {
				assert.InDelta(t, tt.max, depth(tt.m, -far), 1e-12)
			} else {
				assert.InDelta(t, tt.max, depth(tt.m, -1e12), 1e-12)
			}
			// depth increases monotonically with distance
			assert.Less(t, depth(tt.m, -1), depth(tt.m, -10))
			// points behind the camera get w < 0
			assert.Less(t, tt.m.MulVec(vec.Vec4d{Z: 1, W: 1}).W.Float(), 0.0)
		})
	}
}

func TestPerspectiveFrustumEdges(t *testing.T) {
	m := Perspective[lanes.F64](math.Pi/2, 2, 1, 10)
	// with a 90° vertical fov the top edge at distance d is y = d, and the
	// right edge is x = aspect*d
	p := m.ProjectPoint3(vec.Vec3d{X: 10, Y: 5, Z: -5})
	assert.InDelta(t, 1, p.X.Float(), 1e-15)
	assert.InDelta(t, 1, p.Y.Float(), 1e-15)

	gl := PerspectiveGL[lanes.F64](math.Pi/2, 2, 1, 10)
	q := gl.ProjectPoint3(vec.Vec3d{X: -4, Y: -2, Z: -2})
	assert.InDelta(t, -1, q.X.Float(), 1e-15)
	assert.InDelta(t, -1, q.Y.Float(), 1e-15)
}

func TestOrthographic(t *testing.T) {
	m := Orthographic[lanes.F32](-2, 6, -1, 3, 1, 11)
	tests := []struct {
		in, want vec.Vec3f
	}{
		{vec.Vec3f{X: -2, Y: -1, Z: -1}, vec.Vec3f{X: -1, Y: -1, Z: 0}},
		{vec.Vec3f{X: 6, Y: 3, Z: -11}, vec.Vec3f{X: 1, Y: 1, Z: 1}},
		{vec.Vec3f{X: 2, Y: 1, Z: -6}, vec.Vec3f{X: 0, Y: 0, Z: 0.5}},
	}
	for _, tt := range tests {
		got := m.TransformPoint3(tt.in)
		for i, g := range got.Array() {
			assert.InDelta(t, tt.want.Array()[i].Float(), g.Float(), 1e-6, "%v component %d", tt.in, i)
		}
	}

	gl := OrthographicGL[lanes.F64](-1, 1, -1, 1, 2, 4)
	assert.InDelta(t, -1, gl.TransformPoint3(vec.Vec3d{Z: -2}).Z.Float(), 1e-15)
	assert.InDelta(t, 1, gl.TransformPoint3(vec.Vec3d{Z: -4}).Z.Float(), 1e-15)
	assert.Equal(t, lanes.F64(1), gl.Cols[3].W)
}

func TestAssertionsInDebug(t *testing.T) {
	withDebug(t, true)
	tests := []struct {
		name string
		op   string
		fn   func()
	}{
		{"ZeroFov", "proj.Perspective", func() { Perspective[lanes.F64](0, 1, 0.1, 10) }},
		{"ZeroAspect", "proj.Perspective", func() { Perspective[lanes.F64](1, 0, 0.1, 10) }},
		{"NearEqualsFar", "proj.PerspectiveGL", func() { PerspectiveGL[lanes.F64](1, 1, 5, 5) }},
		{"NearBeyondFar", "proj.Perspective", func() { Perspective[lanes.F64](1, 1, 10, 1) }},
		{"InfiniteNegativeFov", "proj.PerspectiveInfinite", func() { PerspectiveInfinite[lanes.F64](-1, 1, 1) }},
		{"FlatX", "proj.Orthographic", func() { Orthographic[lanes.F64](1, 1, 0, 1, 0, 1) }},
		{"FlatY", "proj.OrthographicGL", func() { OrthographicGL[lanes.F64](0, 1, 2, 2, 0, 1) }},
		{"FlatZ", "proj.Orthographic", func() { Orthographic[lanes.F64](0, 1, 0, 1, 3, 3) }},
		{"OneWideLane", "proj.Perspective", func() {
			Perspective(lanes.F32x4{1, 1, 1, 1}, lanes.F32x4{1, 1, 0, 1}, lanes.Splat[lanes.F32x4](1), lanes.Splat[lanes.F32x4](9))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected a panic")
				err, ok := r.(error)
				require.True(t, ok, "panic value %T is not an error", r)
				var ae *lanes.AssertionError
				require.True(t, errors.As(err, &ae))
				assert.Equal(t, tt.op, ae.Op)
			}()
			tt.fn()
		})
	}

	assert.NotPanics(t, func() { Perspective[lanes.F32](1, 1, 0.1, 10) })
	assert.NotPanics(t, func() { Orthographic[lanes.F32](1, -1, 1, -1, 1, -1) }, "mirrored boxes are valid")
}

func TestNoAssertionsInRelease(t *testing.T) {
	withDebug(t, false)
	var m mat.Mat4d
	require.NotPanics(t, func() { m = Perspective[lanes.F64](1, 1, 5, 5) })
	assert.True(t, math.IsInf(m.Cols[2].Z.Float(), 0))

	require.NotPanics(t, func() { m = Orthographic[lanes.F64](1, 1, 0, 1, 0, 1) })
	assert.True(t, math.IsInf(m.Cols[0].X.Float(), 0))
}

func TestWideMatchesScalar(t *testing.T) {
	fov := lanes.F32x4{0.5, 1, 1.5, 2}
	aspect := lanes.F32x4{1, 1.5, 16.0 / 9, 0.5}
	near := lanes.Splat[lanes.F32x4](0.25)
	far := lanes.F32x4{10, 100, 1000, 50}
	w := Perspective(fov, aspect, near, far)
	for i := range 4 {
		want := Perspective(fov[i], aspect[i], near[i], far[i])
		assert.Equal(t, want, mat.Extract4[lanes.F32](w, i), "lane %d", i)
	}
}
