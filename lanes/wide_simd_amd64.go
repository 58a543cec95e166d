//go:build amd64 && !purego && goexperiment.simd

package lanes

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

func init() {
	if NoSimdEnv() || !cpu.X86.HasAVX2 {
		return
	}
	f32x8Add = func(a, b [8]float32) [8]float32 {
		return store8(archsimd.LoadFloat32x8Slice(a[:]).Add(archsimd.LoadFloat32x8Slice(b[:])))
	}
	f32x8Sub = func(a, b [8]float32) [8]float32 {
		return store8(archsimd.LoadFloat32x8Slice(a[:]).Sub(archsimd.LoadFloat32x8Slice(b[:])))
	}
	f32x8Mul = func(a, b [8]float32) [8]float32 {
		return store8(archsimd.LoadFloat32x8Slice(a[:]).Mul(archsimd.LoadFloat32x8Slice(b[:])))
	}
	f32x8Sqrt = func(a [8]float32) [8]float32 {
		return store8(archsimd.LoadFloat32x8Slice(a[:]).Sqrt())
	}

	f64x4Add = func(a, b [4]float64) [4]float64 {
		return store4(archsimd.LoadFloat64x4Slice(a[:]).Add(archsimd.LoadFloat64x4Slice(b[:])))
	}
	f64x4Sub = func(a, b [4]float64) [4]float64 {
		return store4(archsimd.LoadFloat64x4Slice(a[:]).Sub(archsimd.LoadFloat64x4Slice(b[:])))
	}
	f64x4Mul = func(a, b [4]float64) [4]float64 {
		return store4(archsimd.LoadFloat64x4Slice(a[:]).Mul(archsimd.LoadFloat64x4Slice(b[:])))
	}
	f64x4Sqrt = func(a [4]float64) [4]float64 {
		return store4(archsimd.LoadFloat64x4Slice(a[:]).Sqrt())
	}
}

func store8(v archsimd.Float32x8) [8]float32 {
	var r [8]float32
	v.StoreSlice(r[:])
	return r
}

func store4(v archsimd.Float64x4) [4]float64 {
	var r [4]float64
	v.StoreSlice(r[:])
	return r
}
