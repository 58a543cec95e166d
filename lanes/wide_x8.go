// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

// X8 is a batch of eight independent lanes of S. Each method applies the
// corresponding S method to every lane.
type X8[S Scalar[S]] [8]S

type (
	// F32x8 holds eight float32 lanes (256 bits).
	F32x8 = X8[F32]
	// F64x8 holds eight float64 lanes (512 bits).
	F64x8 = X8[F64]
)

// LoadX8 copies up to 8 lanes from src. Missing lanes are zero.
func LoadX8[S Scalar[S]](src []S) X8[S] {
	var r X8[S]
	copy(r[:], src)
	return r
}

// Store copies the lanes into dst and returns the number copied.
func (a X8[S]) Store(dst []S) int {
	return copy(dst, a[:])
}

func (X8[S]) NumLanes() int { return 8 }

func (a X8[S]) Lane(i int) S { return a[i] }

func (a X8[S]) WithLane(i int, e S) X8[S] {
	a[i] = e
	return a
}

func (X8[S]) Broadcast(e S) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = e
	}
	return r
}

func (X8[S]) Splat(x float64) X8[S] {
	var zero S
	var r X8[S]
	e := zero.Splat(x)
	for i := range r {
		r[i] = e
	}
	return r
}

func (a X8[S]) Add(b X8[S]) X8[S] {
	if f32x8Add != nil && isF32[S]() {
		return fromF32x8[S](f32x8Add(asF32x8(&a), asF32x8(&b)))
	}
	var r X8[S]
	for i := range r {
		r[i] = a[i].Add(b[i])
	}
	return r
}

func (a X8[S]) Sub(b X8[S]) X8[S] {
	if f32x8Sub != nil && isF32[S]() {
		return fromF32x8[S](f32x8Sub(asF32x8(&a), asF32x8(&b)))
	}
	var r X8[S]
	for i := range r {
		r[i] = a[i].Sub(b[i])
	}
	return r
}

func (a X8[S]) Mul(b X8[S]) X8[S] {
	if f32x8Mul != nil && isF32[S]() {
		return fromF32x8[S](f32x8Mul(asF32x8(&a), asF32x8(&b)))
	}
	var r X8[S]
	for i := range r {
		r[i] = a[i].Mul(b[i])
	}
	return r
}

func (a X8[S]) Div(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Div(b[i])
	}
	return r
}

func (a X8[S]) Neg() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Neg()
	}
	return r
}

func (a X8[S]) MulAdd(b, c X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].MulAdd(b[i], c[i])
	}
	return r
}

func (a X8[S]) Recip() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Recip()
	}
	return r
}

func (a X8[S]) RecipApprox() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].RecipApprox()
	}
	return r
}

func (a X8[S]) Sqrt() X8[S] {
	if f32x8Sqrt != nil && isF32[S]() {
		return fromF32x8[S](f32x8Sqrt(asF32x8(&a)))
	}
	var r X8[S]
	for i := range r {
		r[i] = a[i].Sqrt()
	}
	return r
}

func (a X8[S]) RSqrt() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].RSqrt()
	}
	return r
}

func (a X8[S]) RSqrtApprox() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].RSqrtApprox()
	}
	return r
}

func (a X8[S]) Abs() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Abs()
	}
	return r
}

func (a X8[S]) Min(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Min(b[i])
	}
	return r
}

func (a X8[S]) Max(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Max(b[i])
	}
	return r
}

func (a X8[S]) Eq(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Eq(b[i])
	}
	return r
}

func (a X8[S]) Ne(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Ne(b[i])
	}
	return r
}

func (a X8[S]) Lt(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Lt(b[i])
	}
	return r
}

func (a X8[S]) Le(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Le(b[i])
	}
	return r
}

func (a X8[S]) Gt(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Gt(b[i])
	}
	return r
}

func (a X8[S]) Ge(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Ge(b[i])
	}
	return r
}

func (a X8[S]) IsNaN() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].IsNaN()
	}
	return r
}

func (a X8[S]) IsFinite() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].IsFinite()
	}
	return r
}

func (a X8[S]) And(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].And(b[i])
	}
	return r
}

func (a X8[S]) Or(b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Or(b[i])
	}
	return r
}

func (a X8[S]) Not() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Not()
	}
	return r
}

func (m X8[S]) Select(a, b X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = m[i].Select(a[i], b[i])
	}
	return r
}

func (m X8[S]) Any() bool {
	for i := range m {
		if m[i].Any() {
			return true
		}
	}
	return false
}

func (m X8[S]) All() bool {
	for i := range m {
		if !m[i].All() {
			return false
		}
	}
	return true
}

func (a X8[S]) Sin() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Sin()
	}
	return r
}

func (a X8[S]) Cos() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Cos()
	}
	return r
}

func (a X8[S]) Acos() X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Acos()
	}
	return r
}

func (a X8[S]) Atan2(x X8[S]) X8[S] {
	var r X8[S]
	for i := range r {
		r[i] = a[i].Atan2(x[i])
	}
	return r
}

// ReduceSum adds lanes pairwise: ((a0+a1)+(a2+a3)) + ((a4+a5)+(a6+a7)).
func (a X8[S]) ReduceSum() S {
	lo := a[0].Add(a[1]).Add(a[2].Add(a[3]))
	hi := a[4].Add(a[5]).Add(a[6].Add(a[7]))
	return lo.Add(hi)
}

func (a X8[S]) ReduceMin() S {
	r := a[0]
	for i := 1; i < 8; i++ {
		r = r.Min(a[i])
	}
	return r
}

func (a X8[S]) ReduceMax() S {
	r := a[0]
	for i := 1; i < 8; i++ {
		r = r.Max(a[i])
	}
	return r
}
