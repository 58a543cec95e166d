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

package rot

import (
	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/vec"
)

// SlerpThreshold is the cosine above which Slerp uses Nlerp. At 0.9995 the
// angle between the two 4-vectors is at most 1.82° and Nlerp's angular
// error along the arc stays below 5.1e-7 radians.
const SlerpThreshold = 0.9995

// shortest returns b, or -b in lanes where it is in the opposite hemisphere
// from a, together with the (now non-negative) cosine.
func shortest[S lanes.Scalar[S]](a, b vec.Vec4[S]) (vec.Vec4[S], S) {
	d := a.Dot(b)
	var z S
	neg := d.Lt(z)
	return vec.Select4(neg, b.Neg(), b), neg.Select(d.Neg(), d)
}

func nlerp4[S lanes.Scalar[S]](a, b vec.Vec4[S], t S) vec.Vec4[S] {
	b, _ = shortest(a, b)
	return a.Lerp(b, t).Normalize()
}

// slerp4 computes both the nlerp and the sine-weighted result and selects
// per lane, so it has no data-dependent branches.
func slerp4[S lanes.Scalar[S]](a, b vec.Vec4[S], t S) vec.Vec4[S] {
	b, d := shortest(a, b)
	one := t.Splat(1)

	near := a.Lerp(b, t).Normalize()

	theta := d.Min(one).Acos()
	sin := theta.Sin()
	wa := one.Sub(t).Mul(theta).Sin().Div(sin)
	wb := t.Mul(theta).Sin().Div(sin)
	far := a.Scale(wa).Add(b.Scale(wb))

	return vec.Select4(d.Gt(t.Splat(SlerpThreshold)), near, far)
}
