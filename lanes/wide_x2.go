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

// X2 is a batch of two independent lanes of S. Each method applies the
// corresponding S method to every lane.
type X2[S Scalar[S]] [2]S

type (
	// F64x2 holds two float64 lanes (128 bits).
	F64x2 = X2[F64]
	// F32x2 holds two float32 lanes (64 bits).
	F32x2 = X2[F32]
)

// LoadX2 copies up to 2 lanes from src. Missing lanes are zero.
func LoadX2[S Scalar[S]](src []S) X2[S] {
	var r X2[S]
	copy(r[:], src)
	return r
}

// Store copies the lanes into dst and returns the number copied.
func (a X2[S]) Store(dst []S) int {
	return copy(dst, a[:])
}

func (X2[S]) NumLanes() int { return 2 }

func (a X2[S]) Lane(i int) S { return a[i] }

func (a X2[S]) WithLane(i int, e S) X2[S] {
	a[i] = e
	return a
}

func (X2[S]) Broadcast(e S) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = e
	}
	return r
}

func (X2[S]) Splat(x float64) X2[S] {
	var zero S
	var r X2[S]
	e := zero.Splat(x)
	for i := range r {
		r[i] = e
	}
	return r
}

func (a X2[S]) Add(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Add(b[i])
	}
	return r
}

func (a X2[S]) Sub(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Sub(b[i])
	}
	return r
}

func (a X2[S]) Mul(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Mul(b[i])
	}
	return r
}

func (a X2[S]) Div(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Div(b[i])
	}
	return r
}

func (a X2[S]) Neg() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Neg()
	}
	return r
}

func (a X2[S]) MulAdd(b, c X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].MulAdd(b[i], c[i])
	}
	return r
}

func (a X2[S]) Recip() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Recip()
	}
	return r
}

func (a X2[S]) RecipApprox() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].RecipApprox()
	}
	return r
}

func (a X2[S]) Sqrt() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Sqrt()
	}
	return r
}

func (a X2[S]) RSqrt() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].RSqrt()
	}
	return r
}

func (a X2[S]) RSqrtApprox() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].RSqrtApprox()
	}
	return r
}

func (a X2[S]) Abs() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Abs()
	}
	return r
}

func (a X2[S]) Min(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Min(b[i])
	}
	return r
}

func (a X2[S]) Max(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Max(b[i])
	}
	return r
}

func (a X2[S]) Eq(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Eq(b[i])
	}
	return r
}

func (a X2[S]) Ne(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Ne(b[i])
	}
	return r
}

func (a X2[S]) Lt(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Lt(b[i])
	}
	return r
}

func (a X2[S]) Le(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Le(b[i])
	}
	return r
}

func (a X2[S]) Gt(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Gt(b[i])
	}
	return r
}

func (a X2[S]) Ge(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Ge(b[i])
	}
	return r
}

func (a X2[S]) IsNaN() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].IsNaN()
	}
	return r
}

func (a X2[S]) IsFinite() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].IsFinite()
	}
	return r
}

func (a X2[S]) And(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].And(b[i])
	}
	return r
}

func (a X2[S]) Or(b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Or(b[i])
	}
	return r
}

func (a X2[S]) Not() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Not()
	}
	return r
}

func (m X2[S]) Select(a, b X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = m[i].Select(a[i], b[i])
	}
	return r
}

func (m X2[S]) Any() bool {
	for i := range m {
		if m[i].Any() {
			return true
		}
	}
	return false
}

func (m X2[S]) All() bool {
	for i := range m {
		if !m[i].All() {
			return false
		}
	}
	return true
}

func (a X2[S]) Sin() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Sin()
	}
	return r
}

func (a X2[S]) Cos() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Cos()
	}
	return r
}

func (a X2[S]) Acos() X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Acos()
	}
	return r
}

func (a X2[S]) Atan2(x X2[S]) X2[S] {
	var r X2[S]
	for i := range r {
		r[i] = a[i].Atan2(x[i])
	}
	return r
}

// ReduceSum returns a[0] + a[1].
func (a X2[S]) ReduceSum() S {
	return a[0].Add(a[1])
}

func (a X2[S]) ReduceMin() S {
	r := a[0]
	for i := 1; i < 2; i++ {
		r = r.Min(a[i])
	}
	return r
}

func (a X2[S]) ReduceMax() S {
	r := a[0]
	for i := 1; i < 2; i++ {
		r = r.Max(a[i])
	}
	return r
}
