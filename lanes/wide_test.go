package lanes

import (
	"math"
	"testing"
)

type unary32 struct {
	name string
	s    func(F32) F32
	w    func(F32x4) F32x4
	w8   func(F32x8) F32x8
}

type binary32 struct {
	name string
	s    func(a, b F32) F32
	w    func(a, b F32x4) F32x4
}

func TestWideUnaryMatchesScalar(t *testing.T) {
	ops := []unary32{
		{"Neg", F32.Neg, F32x4.Neg, F32x8.Neg},
		{"Recip", F32.Recip, F32x4.Recip, F32x8.Recip},
		{"RecipApprox", F32.RecipApprox, F32x4.RecipApprox, F32x8.RecipApprox},
		{"Sqrt", F32.Sqrt, F32x4.Sqrt, F32x8.Sqrt},
		{"RSqrt", F32.RSqrt, F32x4.RSqrt, F32x8.RSqrt},
		{"RSqrtApprox", F32.RSqrtApprox, F32x4.RSqrtApprox, F32x8.RSqrtApprox},
		{"Abs", F32.Abs, F32x4.Abs, F32x8.Abs},
		{"IsNaN", F32.IsNaN, F32x4.IsNaN, F32x8.IsNaN},
		{"IsFinite", F32.IsFinite, F32x4.IsFinite, F32x8.IsFinite},
		{"Not", F32.Not, F32x4.Not, F32x8.Not},
		{"Sin", F32.Sin, F32x4.Sin, F32x8.Sin},
		{"Cos", F32.Cos, F32x4.Cos, F32x8.Cos},
		{"Acos", F32.Acos, F32x4.Acos, F32x8.Acos},
	}
	for _, op := range ops {
		ProcessWithTail(len(samples32), 4,
			func(offset int) {
				in := LoadX4(samples32[offset:])
				got := op.w(in)
				for i := range 4 {
					if want := op.s(in[i]); !same32(got[i], want) {
						t.Errorf("%s x4 lane %d (%v): got %v, want %v", op.name, i, in[i], got[i], want)
					}
				}
			},
			func(offset, count int) {},
		)
		ProcessWithTail(len(samples32), 8,
			func(offset int) {
				in := LoadX8(samples32[offset:])
				got := op.w8(in)
				for i := range 8 {
					if want := op.s(in[i]); !same32(got[i], want) {
						t.Errorf("%s x8 lane %d (%v): got %v, want %v", op.name, i, in[i], got[i], want)
					}
				}
			},
			func(offset, count int) {},
		)
	}
}

func TestWideBinaryMatchesScalar(t *testing.T) {
	ops := []binary32{
		{"Add", F32.Add, F32x4.Add},
		{"Sub", F32.Sub, F32x4.Sub},
		{"Mul", F32.Mul, F32x4.Mul},
		{"Div", F32.Div, F32x4.Div},
		{"Min", F32.Min, F32x4.Min},
		{"Max", F32.Max, F32x4.Max},
		{"Eq", F32.Eq, F32x4.Eq},
		{"Ne", F32.Ne, F32x4.Ne},
		{"Lt", F32.Lt, F32x4.Lt},
		{"Le", F32.Le, F32x4.Le},
		{"Gt", F32.Gt, F32x4.Gt},
		{"Ge", F32.Ge, F32x4.Ge},
		{"And", F32.And, F32x4.And},
		{"Or", F32.Or, F32x4.Or},
		{"Atan2", F32.Atan2, F32x4.Atan2},
	}
	n := len(samples32)
	for _, op := range ops {
		for off := 0; off+4 <= n; off += 4 {
			a := LoadX4(samples32[off:])
			// pair every sample with a rotated partner
			var b F32x4
			for i := range b {
				b[i] = samples32[(off+i*5+3)%n]
			}
			got := op.w(a, b)
			for i := range 4 {
				if want := op.s(a[i], b[i]); !same32(got[i], want) {
					t.Errorf("%s lane %d (%v, %v): got %v, want %v", op.name, i, a[i], b[i], got[i], want)
				}
			}
		}
	}
}

func TestWideMulAddAndSelect64(t *testing.T) {
	a := F64x4{1.5, -2, 1e300, 0.1}
	b := F64x4{3, 0.25, 1e10, 0.2}
	c := F64x4{-1, 4, F64(-math.Inf(1)), 0.3}
	got := a.MulAdd(b, c)
	for i := range 4 {
		if want := a[i].MulAdd(b[i], c[i]); !same64(got[i], want) {
			t.Errorf("MulAdd lane %d: got %v, want %v", i, got[i], want)
		}
	}

	m := a.Lt(b)
	sel := m.Select(a, b)
	for i := range 4 {
		if want := m[i].Select(a[i], b[i]); !same64(sel[i], want) {
			t.Errorf("Select lane %d: got %v, want %v", i, sel[i], want)
		}
	}

	x2 := F64x2{samples64[2], samples64[12]}
	for i, v := range x2.Sqrt() {
		if want := x2[i].Sqrt(); !same64(v, want) {
			t.Errorf("x2 Sqrt lane %d: got %v, want %v", i, v, want)
		}
	}
}

func TestReduceSumOrder(t *testing.T) {
	// Pairwise: (1e8+1) + (-1e8+1) rounds both halves away from the ones.
	v := F32x4{1e8, 1, -1e8, 1}
	if got := v.ReduceSum(); got != 0 {
		t.Errorf("ReduceSum = %v, want 0 from pairwise order", got)
	}

	v8 := F32x8{1, 2, 3, 4, 5, 6, 7, 8}
	if got := v8.ReduceSum(); got != 36 {
		t.Errorf("x8 ReduceSum = %v, want 36", got)
	}
	if got := (F64x2{0.5, 0.25}).ReduceSum(); got != 0.75 {
		t.Errorf("x2 ReduceSum = %v, want 0.75", got)
	}
}

func TestReduceMinMax(t *testing.T) {
	v := F32x8{3, -1, 7, 2, 9, -4, 0, 5}
	if got := v.ReduceMin(); got != -4 {
		t.Errorf("ReduceMin = %v, want -4", got)
	}
	if got := v.ReduceMax(); got != 9 {
		t.Errorf("ReduceMax = %v, want 9", got)
	}
	v = v.WithLane(3, F32(math.NaN()))
	if got := v.ReduceMax(); !math.IsNaN(float64(got)) {
		t.Errorf("ReduceMax with NaN lane = %v, want NaN", got)
	}
}

func TestAnyAll(t *testing.T) {
	a := F32x4{1, 2, 3, 4}
	if !a.Gt(Splat[F32x4](0)).All() {
		t.Error("all lanes > 0")
	}
	m := a.Gt(Splat[F32x4](3))
	if !m.Any() || m.All() {
		t.Errorf("one lane > 3: Any=%v All=%v", m.Any(), m.All())
	}
	if a.Gt(Splat[F32x4](10)).Any() {
		t.Error("no lane > 10")
	}
}

func TestLoadStoreLanes(t *testing.T) {
	src := []F32{1, 2, 3}
	v := LoadX4(src)
	if v != (F32x4{1, 2, 3, 0}) {
		t.Errorf("LoadX4 short slice: %v", v)
	}
	dst := make([]F32, 8)
	if n := v.Store(dst); n != 4 {
		t.Errorf("Store copied %d lanes, want 4", n)
	}
	if v.NumLanes() != 4 || (F32x8{}).NumLanes() != 8 || (F64x2{}).NumLanes() != 2 {
		t.Error("NumLanes mismatch")
	}
	b := v.Broadcast(7)
	if b.Lane(2) != 7 || b.WithLane(2, 1).Lane(2) != 1 || b.Lane(2) != 7 {
		t.Error("Broadcast/WithLane returned aliased storage")
	}
}

func BenchmarkX8Dot3(b *testing.B) {
	x := Splat[F32x8](1.5)
	y := Splat[F32x8](2.5)
	z := Splat[F32x8](3.5)
	var acc F32x8
	for b.Loop() {
		acc = x.Mul(x).Add(y.Mul(y)).Add(z.Mul(z)).Add(acc)
	}
	_ = acc
}

func TestWideHookRouting(t *testing.T) {
	saved := f32x8Add
	t.Cleanup(func() { f32x8Add = saved })

	var calls int
	f32x8Add = func(a, b [8]float32) [8]float32 {
		calls++
		var r [8]float32
		for i := range r {
			r[i] = a[i] + b[i]
		}
		return r
	}
	a := F32x8{1, 2, 3, 4, 5, 6, 7, 8}
	if got, want := a.Add(a), (F32x8{2, 4, 6, 8, 10, 12, 14, 16}); got != want {
		t.Errorf("F32x8 Add through hook = %v, want %v", got, want)
	}
	if calls != 1 {
		t.Errorf("hook called %d times, want 1", calls)
	}

	// other lane types keep the per-lane loop
	_ = X8[F64]{1}.Add(X8[F64]{2})
	_ = F32x4{1}.Add(F32x4{2})
	if calls != 1 {
		t.Errorf("hook called for a non-F32x8 batch")
	}
}

func TestWideAcceleratedMatchesScalar(t *testing.T) {
	t.Logf("wide accelerated: %v", WideAccelerated())
	negZero := math.Copysign(0, -1)
	a32 := F32x8{1.5, F32(negZero), F32(math.Inf(1)), F32(math.NaN()), 1e-40, 3, -7.25, F32(math.MaxFloat32)}
	b32 := F32x8{0.1, 0, F32(math.Inf(-1)), 1, 1e-40, -3, 1e30, 2}
	type op32 struct {
		name string
		wide func(F32x8) F32x8
		one  func(F32, F32) F32
	}
	for _, op := range []op32{
		{"Add", func(v F32x8) F32x8 { return v.Add(b32) }, F32.Add},
		{"Sub", func(v F32x8) F32x8 { return v.Sub(b32) }, F32.Sub},
		{"Mul", func(v F32x8) F32x8 { return v.Mul(b32) }, F32.Mul},
		{"Sqrt", F32x8.Sqrt, func(x, _ F32) F32 { return x.Sqrt() }},
	} {
		got := op.wide(a32)
		for i := range 8 {
			if want := op.one(a32[i], b32[i]); !same32(got[i], want) {
				t.Errorf("F32x8 %s lane %d: got %v, want %v", op.name, i, got[i], want)
			}
		}
	}

	a64 := F64x4{F64(negZero), 1e-310, F64(math.NaN()), 2}
	b64 := F64x4{0, 3, 1, F64(math.Inf(1))}
	sums, diffs, prods, roots := a64.Add(b64), a64.Sub(b64), a64.Mul(b64), a64.Sqrt()
	for i := range 4 {
		if !same64(sums[i], a64[i].Add(b64[i])) || !same64(diffs[i], a64[i].Sub(b64[i])) ||
			!same64(prods[i], a64[i].Mul(b64[i])) || !same64(roots[i], a64[i].Sqrt()) {
			t.Errorf("F64x4 lane %d differs from scalar", i)
		}
	}
}
