package interop

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/mat"
	"github.com/ajroetker/go-lanes/rot"
	"github.com/ajroetker/go-lanes/vec"
)

func TestLayoutSizes(t *testing.T) {
	sizes32 := map[string]int{
		"Vec2":   SizeOf[vec.Vec2f](),
		"Vec3":   SizeOf[vec.Vec3f](),
		"Vec4":   SizeOf[vec.Vec4f](),
		"Mat2":   SizeOf[mat.Mat2f](),
		"Mat3":   SizeOf[mat.Mat3f](),
		"Mat4":   SizeOf[mat.Mat4f](),
		"Quat":   SizeOf[rot.Quatf](),
		"Rotor3": SizeOf[rot.Rotor3f](),
	}
	sizes64x4 := map[string]int{
		"Vec2":   SizeOf[vec.Vec2dx4](),
		"Vec3":   SizeOf[vec.Vec3dx4](),
		"Vec4":   SizeOf[vec.Vec4dx4](),
		"Mat2":   SizeOf[mat.Mat2dx4](),
		"Mat3":   SizeOf[mat.Mat3dx4](),
		"Mat4":   SizeOf[mat.Mat4dx4](),
		"Quat":   SizeOf[rot.Quatdx4](),
		"Rotor3": SizeOf[rot.Rotor3dx4](),
	}
	require.Len(t, Layout, len(sizes32))
	for _, s := range Layout {
		assert.Equal(t, 4*s.Components, sizes32[s.Name], "%s float32 size", s.Name)
		assert.Equal(t, 32*s.Components, sizes64x4[s.Name], "%s float64x4 size", s.Name)
	}

	// every exported lane batch is a Pod, including the 2-lane float32 and
	// 8-lane float64 shapes
	assert.Equal(t, 3*64, SizeOf[vec.Vec3dx8]())
	assert.Equal(t, 16*8, SizeOf[mat.Mat4fx2]())
	assert.Equal(t, 4*64, SizeOf[rot.Rotor3dx8]())
	w := vec.Vec3dx8{X: lanes.Splat[lanes.F64x8](1), Z: lanes.Splat[lanes.F64x8](2)}
	wb := Bytes(&w)
	require.Len(t, wb, 192)
	assert.Equal(t, 2.0, math.Float64frombits(binary.NativeEndian.Uint64(wb[128+56:])), "z lane 7")
	back, err := FromBytes[vec.Vec3dx8](wb)
	require.NoError(t, err)
	assert.Equal(t, w, back)

	assert.Equal(t, uintptr(4), unsafe.Alignof(vec.Vec3f{}))
	assert.Equal(t, uintptr(8), unsafe.Alignof(mat.Mat4d{}))
}

func TestBytesOrder(t *testing.T) {
	v := vec.Vec3f{X: 1, Y: 2, Z: 3}
	b := Bytes(&v)
	require.Len(t, b, 12)
	for i, want := range []float32{1, 2, 3} {
		got := math.Float32frombits(binary.NativeEndian.Uint32(b[4*i:]))
		assert.Equal(t, want, got, "component %d", i)
	}

	// the view aliases the value
	binary.NativeEndian.PutUint32(b[4:], math.Float32bits(-7))
	assert.Equal(t, lanes.F32(-7), v.Y)

	r := rot.Rotor3d{S: 1, B: rot.Bivec3[lanes.F64]{XY: 2, XZ: 3, YZ: 4}}
	rb := Bytes(&r)
	assert.Equal(t, 3.0, math.Float64frombits(binary.NativeEndian.Uint64(rb[16:])), "xz is third")

	m := mat.FromCols2(vec.Vec2d{X: 1, Y: 2}, vec.Vec2d{X: 3, Y: 4})
	mb := Bytes(&m)
	assert.Equal(t, 2.0, math.Float64frombits(binary.NativeEndian.Uint64(mb[8:])), "column major")
}

func TestBytesRoundTripBitExact(t *testing.T) {
	nan := lanes.F64(math.Float64frombits(0x7ff8_0000_dead_beef))
	m := mat.Mat4d{Cols: [4]vec.Vec4d{
		{X: 1, Y: lanes.F64(math.Copysign(0, -1)), Z: nan, W: lanes.F64(math.Inf(-1))},
		{X: 5e-324, Y: 1e308},
		{Z: 0.1},
		{W: 1},
	}}
	back, err := FromBytes[mat.Mat4d](Bytes(&m))
	require.NoError(t, err)
	assert.Equal(t, SliceBytes([]mat.Mat4d{m}), SliceBytes([]mat.Mat4d{back}))
	assert.Equal(t, uint64(0x7ff8_0000_dead_beef), math.Float64bits(back.Cols[0].Z.Float()))
	assert.True(t, math.Signbit(back.Cols[0].Y.Float()))

	w := vec.Vec4fx8{X: lanes.F32x8{1, 2, 3, 4, 5, 6, 7, 8}, W: lanes.Splat[lanes.F32x8](-1)}
	wb, err := FromBytes[vec.Vec4fx8](Bytes(&w))
	require.NoError(t, err)
	assert.Equal(t, w, wb)
}

func TestFromBytesSize(t *testing.T) {
	_, err := FromBytes[vec.Vec3f](make([]byte, 11))
	assert.ErrorIs(t, err, ErrSize)
	_, err = FromBytes[rot.Quatd](make([]byte, 64))
	assert.ErrorIs(t, err, ErrSize)

	// any alignment is accepted
	buf := make([]byte, 17)
	q, err := FromBytes[rot.Quatf](buf[1:])
	require.NoError(t, err)
	assert.Equal(t, rot.Quatf{}, q)
}

func TestSliceBytesAndCast(t *testing.T) {
	vs := []vec.Vec2f{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	b := SliceBytes(vs)
	require.Len(t, b, 24)
	assert.Nil(t, SliceBytes([]vec.Vec2f(nil)))

	back, err := CastSlice[vec.Vec2f](b)
	require.NoError(t, err)
	assert.Equal(t, vs, back)
	back[1].X = 30
	assert.Equal(t, lanes.F32(30), vs[1].X, "CastSlice shares memory")

	_, err = CastSlice[vec.Vec2f](b[:20])
	assert.ErrorIs(t, err, ErrSize)

	// a whole number of Vec2d that does not start on an 8-byte boundary
	words := make([]float64, 5)
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), 40)
	_, err = CastSlice[vec.Vec2d](raw[4:36])
	assert.ErrorIs(t, err, ErrAlign)
	ok, err := CastSlice[vec.Vec2d](raw[8:40])
	require.NoError(t, err)
	assert.Len(t, ok, 2)

	empty, err := CastSlice[vec.Vec3d](nil)
	assert.NoError(t, err)
	assert.Nil(t, empty)
}

func TestComponents(t *testing.T) {
	vs := []vec.Vec3f{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}
	cs := Components[lanes.F32](vs)
	assert.Equal(t, []lanes.F32{1, 2, 3, 4, 5, 6}, cs)
	cs[5] = 60
	assert.Equal(t, lanes.F32(60), vs[1].Z)

	ms := []mat.Mat4d{mat.Identity4[lanes.F64]()}
	flat := Components[lanes.F64](ms)
	require.Len(t, flat, 16)
	for i, c := range flat {
		want := lanes.F64(0)
		if i%5 == 0 {
			want = 1
		}
		assert.Equal(t, want, c, "component %d", i)
	}

	wide := []vec.Vec2fx4{{X: lanes.F32x4{1, 2, 3, 4}}}
	assert.Equal(t, []lanes.F32x4{{1, 2, 3, 4}, {}}, Components[lanes.F32x4](wide))
	assert.Nil(t, Components[lanes.F32]([]rot.Quatf{}))
}

func TestFromComponents(t *testing.T) {
	es := []lanes.F64{0, 0, 0, 1, 0.6, 0, 0, 0.8}
	qs, err := FromComponents[rot.Quatd](es)
	require.NoError(t, err)
	assert.Equal(t, []rot.Quatd{rot.IdentityQuat[lanes.F64](), {X: 0.6, W: 0.8}}, qs)

	_, err = FromComponents[mat.Mat3d](es)
	assert.ErrorIs(t, err, ErrSize)
}
