package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/lanes"
)

func sampleVecs(n int) []Vec3f {
	vs := make([]Vec3f, n)
	for i := range vs {
		f := float64(i)
		vs[i] = Vec3f{
			X: lanes.F32(math.Sin(f*1.3) * 10),
			Y: lanes.F32(math.Cos(f*0.7) - 0.5),
			Z: lanes.F32(f*0.25 - 1),
		}
	}
	return vs
}

// Every lockstep method on a wide vector must produce, in lane i, exactly
// what the scalar method produces for instance i.
func TestWideLockstepMatchesScalar(t *testing.T) {
	as := sampleVecs(8)
	bs := sampleVecs(16)[8:]
	a := Pack3[lanes.F32, lanes.F32x8](as)
	b := Pack3[lanes.F32, lanes.F32x8](bs)
	tw := lanes.F32x8{0, 0.25, 0.5, 1, -1, 2, 0.1, 0.9}

	for i := range 8 {
		sa, sb, st := as[i], bs[i], tw[i]
		checks := []struct {
			name string
			wide Vec3f
			want Vec3f
		}{
			{"Add", Extract3[lanes.F32](a.Add(b), i), sa.Add(sb)},
			{"Cross", Extract3[lanes.F32](a.Cross(b), i), sa.Cross(sb)},
			{"Normalize", Extract3[lanes.F32](a.Normalize(), i), sa.Normalize()},
			{"Lerp", Extract3[lanes.F32](a.Lerp(b, tw), i), sa.Lerp(sb, st)},
			{"Reflect", Extract3[lanes.F32](a.Reflect(b.Normalize()), i), sa.Reflect(sb.Normalize())},
			{"MulAdd", Extract3[lanes.F32](a.MulAdd(b, a), i), sa.MulAdd(sb, sa)},
		}
		for _, c := range checks {
			if c.wide != c.want {
				t.Errorf("%s lane %d: wide %v, scalar %v", c.name, i, c.wide, c.want)
			}
		}
		if got, want := a.Dot(b).Lane(i), sa.Dot(sb); got != want {
			t.Errorf("Dot lane %d: wide %v, scalar %v", i, got, want)
		}
		if got, want := a.Length().Lane(i), sa.Length(); got != want {
			t.Errorf("Length lane %d: wide %v, scalar %v", i, got, want)
		}
	}
}

func TestWideLockstep64(t *testing.T) {
	a := Vec4dx2{X: lanes.F64x2{1, 5}, Y: lanes.F64x2{2, 6}, Z: lanes.F64x2{3, 7}, W: lanes.F64x2{4, 8}}
	n := a.Normalize()
	for i := range 2 {
		want := Extract4[lanes.F64](a, i).Normalize()
		assert.Equal(t, want, Extract4[lanes.F64](n, i), "lane %d", i)
	}
	d := Vec2dx4{X: lanes.F64x4{1, 2, 3, 4}, Y: lanes.F64x4{0, 1, 0, 1}}
	assert.Equal(t, lanes.F64x4{1, 3, 3, 5}, d.Dot(Splat2(lanes.Splat[lanes.F64x4](1))))
}

func TestPackExtract(t *testing.T) {
	vs := sampleVecs(3)
	w := Pack3[lanes.F32, lanes.F32x4](vs)
	for i, v := range vs {
		assert.Equal(t, v, Extract3[lanes.F32](w, i))
	}
	assert.Equal(t, Vec3f{}, Extract3[lanes.F32](w, 3), "missing lanes are zero")

	out := make([]Vec3f, 8)
	require.Equal(t, 4, Unpack3[lanes.F32](w, out))
	assert.Equal(t, vs, out[:3])

	// more inputs than lanes: the extra ones are ignored
	big := Pack3[lanes.F32, lanes.F32x4](sampleVecs(6))
	assert.Equal(t, sampleVecs(6)[3], Extract3[lanes.F32](big, 3))

	v4 := []Vec4d{{1, 2, 3, 4}, {5, 6, 7, 8}}
	w4 := Pack4[lanes.F64, lanes.F64x2](v4)
	got := make([]Vec4d, 2)
	Unpack4[lanes.F64](w4, got)
	assert.Equal(t, v4, got)

	w2 := Pack2[lanes.F32, lanes.F32x8]([]Vec2f{{1, 2}, {3, 4}})
	assert.Equal(t, Vec2f{3, 4}, Extract2[lanes.F32](w2, 1))
}

func TestBroadcast(t *testing.T) {
	p := Vec3f{1, -2, 3}
	w := Broadcast3[lanes.F32, lanes.F32x8](p)
	for i := range 8 {
		assert.Equal(t, p, Extract3[lanes.F32](w, i))
	}
	b4 := Broadcast4[lanes.F64, lanes.F64x4](Vec4d{1, 2, 3, 4})
	assert.Equal(t, lanes.F64x4{4, 4, 4, 4}, b4.W)
	b2 := Broadcast2[lanes.F32, lanes.F32x4](Vec2f{5, 6})
	assert.Equal(t, lanes.F32x4{6, 6, 6, 6}, b2.Y)
}

func TestHorizontalReductions(t *testing.T) {
	vs := []Vec3f{{1, 5, -1}, {2, -6, 0}, {3, 7, 4}, {4, 8, 2}}
	w := Pack3[lanes.F32, lanes.F32x4](vs)

	assert.Equal(t, Vec3f{10, 14, 5}, HorizontalSum3[lanes.F32](w))
	assert.Equal(t, Vec3f{1, -6, -1}, HorizontalMin3[lanes.F32](w))
	assert.Equal(t, Vec3f{4, 8, 4}, HorizontalMax3[lanes.F32](w))

	// Dot stays per lane; only HorizontalSum mixes lanes.
	d := w.Dot(w)
	for i, v := range vs {
		assert.Equal(t, v.Dot(v), d.Lane(i))
	}

	w2 := Pack2[lanes.F64, lanes.F64x2]([]Vec2d{{1, 2}, {3, -4}})
	assert.Equal(t, Vec2d{4, -2}, HorizontalSum2[lanes.F64](w2))
	assert.Equal(t, Vec2d{1, -4}, HorizontalMin2[lanes.F64](w2))
	assert.Equal(t, Vec2d{3, 2}, HorizontalMax2[lanes.F64](w2))

	w4 := Pack4[lanes.F32, lanes.F32x4]([]Vec4f{{1, 1, 1, 1}, {2, 2, 2, 2}})
	assert.Equal(t, Vec4f{3, 3, 3, 3}, HorizontalSum4[lanes.F32](w4))
	assert.Equal(t, Vec4f{0, 0, 0, 0}, HorizontalMin4[lanes.F32](w4))
	assert.Equal(t, Vec4f{2, 2, 2, 2}, HorizontalMax4[lanes.F32](w4))
}

func BenchmarkNormalize3x8(b *testing.B) {
	v := Pack3[lanes.F32, lanes.F32x8](sampleVecs(8))
	var out Vec3fx8
	for b.Loop() {
		out = v.Normalize()
	}
	_ = out
}

func BenchmarkNormalize3Scalar(b *testing.B) {
	vs := sampleVecs(8)
	var out Vec3f
	for b.Loop() {
		for _, v := range vs {
			out = v.Normalize()
		}
	}
	_ = out
}
