package bulk

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/mat"
	"github.com/ajroetker/go-lanes/rot"
	"github.com/ajroetker/go-lanes/vec"
)

var sizes = []int{0, 1, 3, 7, 8, 9, 15, 16, 17, 31, 64, 100}

func randomSlice[S Element[S]](r *rand.Rand, n int) []S {
	s := make([]S, n)
	var z S
	for i := range s {
		s[i] = z.Splat(r.Float64()*200 - 100)
	}
	return s
}

func testElementWise[S Element[S]](t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range sizes {
		a, b := randomSlice[S](r, n), randomSlice[S](r, n)
		tests := []struct {
			name   string
			kernel func(dst, s []S)
			scalar func(x, y S) S
		}{
			{"Add", Add[S], func(x, y S) S { return x.Add(y) }},
			{"Sub", Sub[S], func(x, y S) S { return x.Sub(y) }},
			{"Mul", Mul[S], func(x, y S) S { return x.Mul(y) }},
		}
		for _, tt := range tests {
			dst := append([]S(nil), a...)
			tt.kernel(dst, b)
			for i := range dst {
				if want := tt.scalar(a[i], b[i]); dst[i] != want {
					t.Errorf("%s n=%d [%d]: got %v, want %v", tt.name, n, i, dst[i], want)
				}
			}
		}

		var z S
		factor := z.Splat(-0.37)
		dst := append([]S(nil), a...)
		Scale(dst, factor)
		for i := range dst {
			if want := a[i].Mul(factor); dst[i] != want {
				t.Errorf("Scale n=%d [%d]: got %v, want %v", n, i, dst[i], want)
			}
		}
	}
}

func TestElementWise(t *testing.T) {
	t.Run("F32", testElementWise[lanes.F32])
	t.Run("F64", testElementWise[lanes.F64])
}

func TestMismatchedLengthsPanic(t *testing.T) {
	a := make([]lanes.F32, 4)
	b := make([]lanes.F32, 5)
	assert.Panics(t, func() { Add(a, b) })
	assert.Panics(t, func() { Mul(b, a) })

	v := MakeVec3s[lanes.F64](3)
	v.Z = v.Z[:2]
	assert.Panics(t, func() { v.Len() })
	assert.Panics(t, func() { Dot3(make([]lanes.F64, 3), v, MakeVec3s[lanes.F64](3)) })
	assert.Panics(t, func() { Normalize3(MakeVec3s[lanes.F64](4), MakeVec3s[lanes.F64](3)) })
}

func TestSumOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range sizes {
		s := randomSlice[lanes.F32](r, n)
		var acc [8]lanes.F32
		for i, x := range s {
			acc[i%8] += x
		}
		want := ((acc[0] + acc[1]) + (acc[2] + acc[3])) + ((acc[4] + acc[5]) + (acc[6] + acc[7]))
		assert.Equal(t, want, Sum(s), "n=%d", n)
	}

	assert.Equal(t, lanes.F64(0), Sum([]lanes.F64(nil)))
}

func randomVec3s[S Element[S]](r *rand.Rand, n int) Vec3s[S] {
	return Vec3s[S]{X: randomSlice[S](r, n), Y: randomSlice[S](r, n), Z: randomSlice[S](r, n)}
}

func clone3[S Element[S]](v Vec3s[S]) Vec3s[S] {
	return Vec3s[S]{
		X: append([]S(nil), v.X...),
		Y: append([]S(nil), v.Y...),
		Z: append([]S(nil), v.Z...),
	}
}

func testGeometry[S Element[S]](t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	var z S
	m := mat.FromTranslation(vec.Vec3[S]{X: z.Splat(1), Y: z.Splat(-2), Z: z.Splat(3)}).
		Mul(mat.FromAxisAngle4(vec.Vec3[S]{X: z.Splat(0.6), Z: z.Splat(0.8)}, z.Splat(0.9)))
	q := rot.FromAxisAngle(vec.Vec3[S]{Y: z.Splat(1)}, z.Splat(2.1))

	for _, n := range sizes {
		a, b := randomVec3s[S](r, n), randomVec3s[S](r, n)

		dots := make([]S, n)
		Dot3(dots, a, b)
		cross := MakeVec3s[S](n)
		Cross3(cross, a, b)
		unit := MakeVec3s[S](n)
		Normalize3(unit, a)
		moved := clone3(a)
		TransformPoints3(m, moved)
		turned := clone3(a)
		RotateVectors3(q, turned)

		for i := range n {
			ai, bi := a.At(i), b.At(i)
			assert.Equal(t, ai.Dot(bi), dots[i], "Dot3 n=%d [%d]", n, i)
			assert.Equal(t, ai.Cross(bi), cross.At(i), "Cross3 n=%d [%d]", n, i)
			assert.Equal(t, ai.Normalize(), unit.At(i), "Normalize3 n=%d [%d]", n, i)
			assert.Equal(t, m.TransformPoint3(ai), moved.At(i), "TransformPoints3 n=%d [%d]", n, i)
			assert.Equal(t, q.Rotate(ai), turned.At(i), "RotateVectors3 n=%d [%d]", n, i)
		}
	}
}

func TestGeometry(t *testing.T) {
	t.Run("F32", testGeometry[lanes.F32])
	t.Run("F64", testGeometry[lanes.F64])
}

func TestCrossAliasing(t *testing.T) {
	a := Vec3sOf([]vec.Vec3f{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1}})
	b := Vec3sOf([]vec.Vec3f{{Y: 1}, {Z: 1}, {X: 1}, {Z: 1}})
	Cross3(a, a, b)
	assert.Equal(t, vec.Vec3f{Z: 1}, a.At(0))
	assert.Equal(t, vec.Vec3f{X: 1}, a.At(1))
	assert.Equal(t, vec.Vec3f{Y: 1}, a.At(2))
	assert.Equal(t, vec.Vec3f{X: 1, Y: -1}, a.At(3))
}

func TestNormalizeZero(t *testing.T) {
	v := MakeVec3s[lanes.F32](9)
	Normalize3(v, v)
	for i := range 9 {
		require.True(t, math.IsNaN(v.At(i).X.Float()), "element %d", i)
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Contains(t, []string{"vek", "archsimd", "generic"}, info.Backend)
	if lanes.Backend == "purego" || lanes.NoSimdEnv() {
		assert.Equal(t, "generic", info.Backend)
	}
}

func BenchmarkRotateVectors3(b *testing.B) {
	r := rand.New(rand.NewPCG(7, 8))
	v := randomVec3s[lanes.F32](r, 4096)
	q := rot.FromRotationZ[lanes.F32](0.01)
	for b.Loop() {
		RotateVectors3(q, v)
	}
}

func BenchmarkAdd(b *testing.B) {
	r := rand.New(rand.NewPCG(9, 10))
	x, y := randomSlice[lanes.F32](r, 4096), randomSlice[lanes.F32](r, 4096)
	for b.Loop() {
		Add(x, y)
	}
}
