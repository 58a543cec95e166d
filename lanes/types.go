// Package lanes provides the arithmetic kernel shared by every vector, matrix
// and rotation type in go-lanes.
//
// The kernel is a capability contract, [Scalar], implemented identically by
// plain floating-point values ([F32], [F64]) and by fixed-width lane batches
// ([X2], [X4], [X8]). Algorithms written against [Scalar] run unchanged on one
// instance or on several independent instances in lockstep:
//
//	func length[S lanes.Scalar[S]](x, y S) S {
//	    return x.Mul(x).Add(y.Mul(y)).Sqrt()
//	}
//
//	length(lanes.F32(3), lanes.F32(4))                         // 5
//	length(lanes.F32x4{3, 6, 0, 1}, lanes.F32x4{4, 8, 2, 0})   // {5, 10, 2, 1}
//
// A wide method always applies the scalar method of its lane type to each
// lane, so op(wide)[i] == op(scalar_i) holds bit for bit. Only the explicitly
// named cross-lane operations (ReduceSum, ReduceMin, ReduceMax, Lane,
// WithLane, Broadcast, Any, All) look at more than one lane.
//
// Wide values are layout batches, plain arrays of lanes, rather than
// hardware vector registers. With GOEXPERIMENT=simd on AVX2 machines, F32x8
// and F64x4 Add, Sub, Mul and Sqrt run on archsimd instructions, which round
// exactly like the scalar methods; every other operation and shape is a
// per-lane loop. See WideAccelerated.
//
// Arithmetic never panics: invalid results (0/0, sqrt of a negative number,
// 1/0) propagate as IEEE-754 NaN or infinity.
package lanes

// Floats is a constraint for the floating-point element kinds stored in lanes.
type Floats interface {
	~float32 | ~float64
}

// Scalar is the arithmetic capability set of the kernel. S is the
// implementing type itself: F32 implements Scalar[F32], X4[F32] implements
// Scalar[X4[F32]].
//
// Masks are Scalar values too. Comparison results hold an all-ones bit pattern
// in true lanes and zero in false lanes; Select, And, Or, Not, Any and All
// expect masks in that canonical form.
type Scalar[S any] interface {
	// Splat returns x converted to S in every lane. The receiver is ignored.
	Splat(x float64) S

	Add(b S) S
	Sub(b S) S
	Mul(b S) S
	Div(b S) S
	Neg() S

	// MulAdd returns s*b + c with at most one rounding step beyond the
	// element precision; see F32.MulAdd and F64.MulAdd.
	MulAdd(b, c S) S

	// Recip returns 1/s, correctly rounded.
	Recip() S
	// RecipApprox returns an estimate of 1/s with relative error at most
	// 2^-17 for finite non-zero normal inputs with a normal result.
	RecipApprox() S
	// Sqrt returns the correctly rounded square root.
	Sqrt() S
	// RSqrt returns 1/sqrt(s) within 1 ULP.
	RSqrt() S
	// RSqrtApprox returns an estimate of 1/sqrt(s) with relative error at
	// most 2^-17 for positive finite normal inputs.
	RSqrtApprox() S

	Abs() S
	// Min and Max propagate NaN: if either operand is NaN the result is NaN.
	// -0 is treated as less than +0.
	Min(b S) S
	Max(b S) S

	Eq(b S) S
	Ne(b S) S
	Lt(b S) S
	Le(b S) S
	Gt(b S) S
	Ge(b S) S
	IsNaN() S
	IsFinite() S

	And(b S) S
	Or(b S) S
	Not() S
	// Select returns a in lanes where the receiver mask is set, b elsewhere.
	Select(a, b S) S
	// Any reports whether any lane of the receiver mask is set.
	Any() bool
	// All reports whether every lane of the receiver mask is set.
	All() bool

	// Sin, Cos, Acos and Atan2 are within 1 ULP of the exact result for
	// every finite argument, in both precisions.
	Sin() S
	Cos() S
	Acos() S
	// Atan2 returns atan2(s, x).
	Atan2(x S) S
}

// Wide is implemented by lane batches W whose lanes have type E.
type Wide[W any, E any] interface {
	Scalar[W]

	// NumLanes returns the fixed number of lanes.
	NumLanes() int
	// Lane returns lane i. It panics if i is out of range.
	Lane(i int) E
	// WithLane returns a copy of the receiver with lane i replaced by e.
	WithLane(i int, e E) W
	// Broadcast returns e in every lane. The receiver is ignored.
	Broadcast(e E) W

	// ReduceSum adds lanes pairwise: (l0+l1)+(l2+l3) and so on.
	ReduceSum() E
	ReduceMin() E
	ReduceMax() E
}

// Splat returns x broadcast to every lane of S.
func Splat[S Scalar[S]](x float64) S {
	var zero S
	return zero.Splat(x)
}

// Zero returns the zero value of S.
func Zero[S Scalar[S]]() S {
	var zero S
	return zero
}

// Clamp returns v limited to [lo, hi] per lane. NaN lanes stay NaN.
func Clamp[S Scalar[S]](v, lo, hi S) S {
	return v.Max(lo).Min(hi)
}

// True returns the all-set mask of S.
func True[S Scalar[S]]() S {
	var zero S
	return zero.Eq(zero)
}

// False returns the all-clear mask of S.
func False[S Scalar[S]]() S {
	var zero S
	return zero.Ne(zero)
}
