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

// X4 is a batch of four independent lanes of S. Each method applies the
// corresponding S method to every lane.
type X4[S Scalar[S]] [4]S

type (
	// F32x4 holds four float32 lanes (128 bits).
	F32x4 = X4[F32]
	// F64x4 holds four float64 lanes (256 bits).
	F64x4 = X4[F64]
)

// LoadX4 copies up to 4 lanes from src. Missing lanes are zero.
func LoadX4[S Scalar[S]](src []S) X4[S] {
	var r X4[S]
	copy(r[:], src)
	return r
}

// Store copies the lanes into dst and returns the number copied.
func (a X4[S]) Store(dst []S) int {
	return copy(dst, a[:])
}

func (X4[S]) NumLanes() int { return 4 }

func (a X4[S]) Lane(i int) S { return a[i] }

func (a X4[S]) WithLane(i int, e S) X4[S] {
	a[i] = e
	return a
}

func (X4[S]) Broadcast(e S) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = e
	}
	return r
}

func (X4[S]) Splat(x float64) X4[S] {
	var zero S
	var r X4[S]
	e := zero.Splat(x)
	for i := range r {
		r[i] = e
	}
	return r
}

func (a X4[S]) Add(b X4[S]) X4[S] {
	if f64x4Add != nil && isF64[S]() {
		return fromF64x4[S](f64x4Add(asF64x4(&a), asF64x4(&b)))
	}
	var r X4[S]
	for i := range r {
		r[i] = a[i].Add(b[i])
	}
	return r
}

func (a X4[S]) Sub(b X4[S]) X4[S] {
	if f64x4Sub != nil && isF64[S]() {
		return fromF64x4[S](f64x4Sub(asF64x4(&a), asF64x4(&b)))
	}
	var r X4[S]
	for i := range r {
		r[i] = a[i].Sub(b[i])
	}
	return r
}

func (a X4[S]) Mul(b X4[S]) X4[S] {
	if f64x4Mul != nil && isF64[S]() {
		return fromF64x4[S](f64x4Mul(asF64x4(&a), asF64x4(&b)))
	}
	var r X4[S]
	for i := range r {
		r[i] = a[i].Mul(b[i])
	}
	return r
}

func (a X4[S]) Div(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Div(b[i])
	}
	return r
}

func (a X4[S]) Neg() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Neg()
	}
	return r
}

func (a X4[S]) MulAdd(b, c X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].MulAdd(b[i], c[i])
	}
	return r
}

func (a X4[S]) Recip() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Recip()
	}
	return r
}

func (a X4[S]) RecipApprox() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].RecipApprox()
	}
	return r
}

func (a X4[S]) Sqrt() X4[S] {
	if f64x4Sqrt != nil && isF64[S]() {
		return fromF64x4[S](f64x4Sqrt(asF64x4(&a)))
	}
	var r X4[S]
	for i := range r {
		r[i] = a[i].Sqrt()
	}
	return r
}

func (a X4[S]) RSqrt() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].RSqrt()
	}
	return r
}

func (a X4[S]) RSqrtApprox() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].RSqrtApprox()
	}
	return r
}

func (a X4[S]) Abs() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Abs()
	}
	return r
}

func (a X4[S]) Min(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Min(b[i])
	}
	return r
}

func (a X4[S]) Max(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Max(b[i])
	}
	return r
}

func (a X4[S]) Eq(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Eq(b[i])
	}
	return r
}

func (a X4[S]) Ne(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Ne(b[i])
	}
	return r
}

func (a X4[S]) Lt(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Lt(b[i])
	}
	return r
}

func (a X4[S]) Le(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Le(b[i])
	}
	return r
}

func (a X4[S]) Gt(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Gt(b[i])
	}
	return r
}

func (a X4[S]) Ge(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Ge(b[i])
	}
	return r
}

func (a X4[S]) IsNaN() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].IsNaN()
	}
	return r
}

func (a X4[S]) IsFinite() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].IsFinite()
	}
	return r
}

func (a X4[S]) And(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].And(b[i])
	}
	return r
}

func (a X4[S]) Or(b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Or(b[i])
	}
	return r
}

func (a X4[S]) Not() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Not()
	}
	return r
}

func (m X4[S]) Select(a, b X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = m[i].Select(a[i], b[i])
	}
	return r
}

func (m X4[S]) Any() bool {
	for i := range m {
		if m[i].Any() {
			return true
		}
	}
	return false
}

func (m X4[S]) All() bool {
	for i := range m {
		if !m[i].All() {
			return false
		}
	}
	return true
}

func (a X4[S]) Sin() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Sin()
	}
	return r
}

func (a X4[S]) Cos() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Cos()
	}
	return r
}

func (a X4[S]) Acos() X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Acos()
	}
	return r
}

func (a X4[S]) Atan2(x X4[S]) X4[S] {
	var r X4[S]
	for i := range r {
		r[i] = a[i].Atan2(x[i])
	}
	return r
}

// ReduceSum returns (a[0]+a[1]) + (a[2]+a[3]).
func (a X4[S]) ReduceSum() S {
	return a[0].Add(a[1]).Add(a[2].Add(a[3]))
}

func (a X4[S]) ReduceMin() S {
	r := a[0]
	for i := 1; i < 4; i++ {
		r = r.Min(a[i])
	}
	return r
}

func (a X4[S]) ReduceMax() S {
	r := a[0]
	for i := 1; i < 4; i++ {
		r = r.Max(a[i])
	}
	return r
}
