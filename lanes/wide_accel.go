package lanes

import "unsafe"

// Hardware paths for the two 256-bit batch shapes, F32x8 and F64x4. They are
// nil unless wide_simd_amd64.go installs them, and each returns exactly what
// the per-lane loop returns: only correctly rounded operations are covered.
var (
	f32x8Add, f32x8Sub, f32x8Mul func(a, b [8]float32) [8]float32
	f32x8Sqrt                    func(a [8]float32) [8]float32

	f64x4Add, f64x4Sub, f64x4Mul func(a, b [4]float64) [4]float64
	f64x4Sqrt                    func(a [4]float64) [4]float64
)

// WideAccelerated reports whether F32x8 and F64x4 arithmetic runs on
// hardware vector instructions.
func WideAccelerated() bool { return f32x8Add != nil }

func isF32[S any]() bool {
	var z S
	_, ok := any(z).(F32)
	return ok
}

func isF64[S any]() bool {
	var z S
	_, ok := any(z).(F64)
	return ok
}

// The casts below are only reached after isF32/isF64 has matched S.

func asF32x8[S Scalar[S]](a *X8[S]) [8]float32 { return *(*[8]float32)(unsafe.Pointer(a)) }
func asF64x4[S Scalar[S]](a *X4[S]) [4]float64 { return *(*[4]float64)(unsafe.Pointer(a)) }

func fromF32x8[S Scalar[S]](r [8]float32) X8[S] { return *(*X8[S])(unsafe.Pointer(&r)) }
func fromF64x4[S Scalar[S]](r [4]float64) X4[S] { return *(*X4[S])(unsafe.Pointer(&r)) }
