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

import "math"

// F64 is a single float64 lane.
type F64 float64

var (
	mask64True = F64(math.Float64frombits(0xFFFFFFFFFFFFFFFF))

	recipMagic64 uint64 = 0x7FDE623822FC16E6
	rsqrtMagic64 uint64 = 0x5FE6EB50C7B537A9
)

func mask64(b bool) F64 {
	if b {
		return mask64True
	}
	return 0
}

func bits64(a F64) uint64 { return math.Float64bits(float64(a)) }

func from64(u uint64) F64 { return F64(math.Float64frombits(u)) }

func (F64) Splat(x float64) F64 { return F64(x) }

func (a F64) Float() float64 { return float64(a) }

func (a F64) Add(b F64) F64 { return F64(float64(a) + float64(b)) }
func (a F64) Sub(b F64) F64 { return F64(float64(a) - float64(b)) }
func (a F64) Mul(b F64) F64 { return F64(float64(a) * float64(b)) }
func (a F64) Div(b F64) F64 { return F64(float64(a) / float64(b)) }
func (a F64) Neg() F64      { return -a }

// MulAdd returns a*b + c computed with a single rounding.
func (a F64) MulAdd(b, c F64) F64 {
	return F64(math.FMA(float64(a), float64(b), float64(c)))
}

func (a F64) Recip() F64 { return F64(1 / float64(a)) }

// RecipApprox uses the same three-step refinement as F32.RecipApprox; the
// relative error stays below 2^-17.
func (a F64) RecipApprox() F64 {
	x := float64(a)
	sign := math.Float64bits(x) & (1 << 63)
	ax := math.Float64frombits(math.Float64bits(x) &^ (1 << 63))
	y := math.Float64frombits(recipMagic64 - math.Float64bits(ax))
	y = float64(y * float64(2-float64(ax*y)))
	y = float64(y * float64(2-float64(ax*y)))
	y = float64(y * float64(2-float64(ax*y)))
	return from64(math.Float64bits(y) | sign)
}

func (a F64) Sqrt() F64 { return F64(math.Sqrt(float64(a))) }

// RSqrt is within 1 ULP: the quotient is correctly rounded from a correctly
// rounded square root.
func (a F64) RSqrt() F64 { return F64(1 / math.Sqrt(float64(a))) }

// RSqrtApprox refines a bit-level estimate with two Newton-Raphson steps,
// matching the F32 error bound.
func (a F64) RSqrtApprox() F64 {
	x := float64(a)
	half := float64(0.5 * x)
	y := math.Float64frombits(rsqrtMagic64 - math.Float64bits(x)>>1)
	y = float64(y * float64(1.5-float64(half*float64(y*y))))
	y = float64(y * float64(1.5-float64(half*float64(y*y))))
	return F64(y)
}

func (a F64) Abs() F64 { return F64(math.Abs(float64(a))) }

func (a F64) Min(b F64) F64 { return F64(min(float64(a), float64(b))) }
func (a F64) Max(b F64) F64 { return F64(max(float64(a), float64(b))) }

func (a F64) Eq(b F64) F64 { return mask64(a == b) }
func (a F64) Ne(b F64) F64 { return mask64(a != b) }
func (a F64) Lt(b F64) F64 { return mask64(a < b) }
func (a F64) Le(b F64) F64 { return mask64(a <= b) }
func (a F64) Gt(b F64) F64 { return mask64(a > b) }
func (a F64) Ge(b F64) F64 { return mask64(a >= b) }

func (a F64) IsNaN() F64    { return mask64(a != a) }
func (a F64) IsFinite() F64 { return mask64(float64(a)-float64(a) == 0) }

func (a F64) And(b F64) F64 { return from64(bits64(a) & bits64(b)) }
func (a F64) Or(b F64) F64  { return from64(bits64(a) | bits64(b)) }
func (a F64) Not() F64      { return from64(^bits64(a)) }

func (m F64) Select(a, b F64) F64 {
	mb := bits64(m)
	return from64(bits64(a)&mb | bits64(b)&^mb)
}

func (m F64) Any() bool { return bits64(m) != 0 }
func (m F64) All() bool { return bits64(m) != 0 }

func (a F64) Sin() F64        { return F64(math.Sin(float64(a))) }
func (a F64) Cos() F64        { return F64(math.Cos(float64(a))) }
func (a F64) Acos() F64       { return F64(math.Acos(float64(a))) }
func (a F64) Atan2(x F64) F64 { return F64(math.Atan2(float64(a), float64(x))) }
