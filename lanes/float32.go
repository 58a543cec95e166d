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

import (
	"math"

	"github.com/chewxy/math32"
)

// F32 is a single float32 lane.
//
// Products are wrapped in explicit conversions so the compiler never fuses a
// Mul followed by an Add into one instruction. That keeps every F32 result
// identical whether the method runs alone or inlined into a wide loop.
type F32 float32

var (
	mask32True = F32(math.Float32frombits(0xFFFFFFFF))

	// magic estimates for the approximate reciprocal paths
	recipMagic32 uint32 = 0x7EF311C7
	rsqrtMagic32 uint32 = 0x5F375A86
)

func mask32(b bool) F32 {
	if b {
		return mask32True
	}
	return 0
}

func bits32(a F32) uint32 { return math.Float32bits(float32(a)) }

func from32(u uint32) F32 { return F32(math.Float32frombits(u)) }

func (F32) Splat(x float64) F32 { return F32(x) }

// Float returns a as a float64.
func (a F32) Float() float64 { return float64(a) }

func (a F32) Add(b F32) F32 { return F32(float32(a) + float32(b)) }
func (a F32) Sub(b F32) F32 { return F32(float32(a) - float32(b)) }
func (a F32) Mul(b F32) F32 { return F32(float32(a) * float32(b)) }
func (a F32) Div(b F32) F32 { return F32(float32(a) / float32(b)) }
func (a F32) Neg() F32      { return -a }

// MulAdd returns a*b + c. The product of two float32 values is exact in
// float64, so the only roundings are float64(a*b+c) and the final conversion
// to float32: the error is at most 0.5 ULP plus 2^-29 relative.
func (a F32) MulAdd(b, c F32) F32 {
	return F32(math.FMA(float64(a), float64(b), float64(c)))
}

func (a F32) Recip() F32 { return F32(1 / float32(a)) }

// RecipApprox refines a bit-level estimate with three Newton-Raphson steps.
// The initial estimate is within 12.5%, so the relative error after the
// steps is below 2^-17 once float32 rounding is included.
func (a F32) RecipApprox() F32 {
	x := float32(a)
	sign := math.Float32bits(x) & (1 << 31)
	ax := math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
	y := math.Float32frombits(recipMagic32 - math.Float32bits(ax))
	y = float32(y * float32(2-float32(ax*y)))
	y = float32(y * float32(2-float32(ax*y)))
	y = float32(y * float32(2-float32(ax*y)))
	return from32(math.Float32bits(y) | sign)
}

func (a F32) Sqrt() F32 { return F32(math32.Sqrt(float32(a))) }

func (a F32) RSqrt() F32 { return F32(1 / math.Sqrt(float64(a))) }

// RSqrtApprox refines the 0x5F375A86 estimate with two Newton-Raphson
// steps. One step leaves 1.76e-3 relative error, two leave under 5e-6.
func (a F32) RSqrtApprox() F32 {
	x := float32(a)
	half := float32(0.5 * x)
	y := math.Float32frombits(rsqrtMagic32 - math.Float32bits(x)>>1)
	y = float32(y * float32(1.5-float32(half*float32(y*y))))
	y = float32(y * float32(1.5-float32(half*float32(y*y))))
	return F32(y)
}

func (a F32) Abs() F32 { return F32(math32.Abs(float32(a))) }

func (a F32) Min(b F32) F32 { return F32(min(float32(a), float32(b))) }
func (a F32) Max(b F32) F32 { return F32(max(float32(a), float32(b))) }

func (a F32) Eq(b F32) F32 { return mask32(a == b) }
func (a F32) Ne(b F32) F32 { return mask32(a != b) }
func (a F32) Lt(b F32) F32 { return mask32(a < b) }
func (a F32) Le(b F32) F32 { return mask32(a <= b) }
func (a F32) Gt(b F32) F32 { return mask32(a > b) }
func (a F32) Ge(b F32) F32 { return mask32(a >= b) }

func (a F32) IsNaN() F32 { return mask32(a != a) }

// IsFinite is set unless a is NaN or an infinity.
func (a F32) IsFinite() F32 { return mask32(float32(a)-float32(a) == 0) }

func (a F32) And(b F32) F32 { return from32(bits32(a) & bits32(b)) }
func (a F32) Or(b F32) F32  { return from32(bits32(a) | bits32(b)) }
func (a F32) Not() F32      { return from32(^bits32(a)) }

func (m F32) Select(a, b F32) F32 {
	mb := bits32(m)
	return from32(bits32(a)&mb | bits32(b)&^mb)
}

func (m F32) Any() bool { return bits32(m) != 0 }
func (m F32) All() bool { return bits32(m) != 0 }

// The transcendentals evaluate in float64 and round once, so each result is
// within 1 ULP of the true value for every finite float32 argument,
// including large Sin and Cos arguments and Acos near ±1.

func (a F32) Sin() F32        { return F32(math.Sin(float64(a))) }
func (a F32) Cos() F32        { return F32(math.Cos(float64(a))) }
func (a F32) Acos() F32       { return F32(math.Acos(float64(a))) }
func (a F32) Atan2(x F32) F32 { return F32(math.Atan2(float64(a), float64(x))) }
