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

package vec

import "github.com/ajroetker/go-lanes/lanes"

// Vec4 is a 4-component vector stored in X, Y, Z, W order. It doubles as
// a homogeneous point (W = 1) or direction (W = 0).
type Vec4[S lanes.Scalar[S]] struct {
	X, Y, Z, W S
}

type (
	Vec4f   = Vec4[lanes.F32]
	Vec4d   = Vec4[lanes.F64]
	Vec4fx2 = Vec4[lanes.F32x2]
	Vec4fx4 = Vec4[lanes.F32x4]
	Vec4fx8 = Vec4[lanes.F32x8]
	Vec4dx2 = Vec4[lanes.F64x2]
	Vec4dx4 = Vec4[lanes.F64x4]
	Vec4dx8 = Vec4[lanes.F64x8]
)

func Splat4[S lanes.Scalar[S]](s S) Vec4[S] {
	return Vec4[S]{s, s, s, s}
}

func Select4[S lanes.Scalar[S]](m S, a, b Vec4[S]) Vec4[S] {
	return Vec4[S]{m.Select(a.X, b.X), m.Select(a.Y, b.Y), m.Select(a.Z, b.Z), m.Select(a.W, b.W)}
}

func (a Vec4[S]) Add(b Vec4[S]) Vec4[S] {
	return Vec4[S]{a.X.Add(b.X), a.Y.Add(b.Y), a.Z.Add(b.Z), a.W.Add(b.W)}
}

func (a Vec4[S]) Sub(b Vec4[S]) Vec4[S] {
	return Vec4[S]{a.X.Sub(b.X), a.Y.Sub(b.Y), a.Z.Sub(b.Z), a.W.Sub(b.W)}
}

func (a Vec4[S]) Mul(b Vec4[S]) Vec4[S] {
	return Vec4[S]{a.X.Mul(b.X), a.Y.Mul(b.Y), a.Z.Mul(b.Z), a.W.Mul(b.W)}
}

func (a Vec4[S]) Div(b Vec4[S]) Vec4[S] {
	return Vec4[S]{a.X.Div(b.X), a.Y.Div(b.Y), a.Z.Div(b.Z), a.W.Div(b.W)}
}

func (a Vec4[S]) MulAdd(b, c Vec4[S]) Vec4[S] {
	return Vec4[S]{a.X.MulAdd(b.X, c.X), a.Y.MulAdd(b.Y, c.Y), a.Z.MulAdd(b.Z, c.Z), a.W.MulAdd(b.W, c.W)}
}

func (a Vec4[S]) Scale(s S) Vec4[S] {
	return Vec4[S]{a.X.Mul(s), a.Y.Mul(s), a.Z.Mul(s), a.W.Mul(s)}
}

func (a Vec4[S]) Neg() Vec4[S] {
	return Vec4[S]{a.X.Neg(), a.Y.Neg(), a.Z.Neg(), a.W.Neg()}
}

func (a Vec4[S]) Abs() Vec4[S] {
	return Vec4[S]{a.X.Abs(), a.Y.Abs(), a.Z.Abs(), a.W.Abs()}
}

func (a Vec4[S]) Min(b Vec4[S]) Vec4[S] {
	return Vec4[S]{a.X.Min(b.X), a.Y.Min(b.Y), a.Z.Min(b.Z), a.W.Min(b.W)}
}

func (a Vec4[S]) Max(b Vec4[S]) Vec4[S] {
	return Vec4[S]{a.X.Max(b.X), a.Y.Max(b.Y), a.Z.Max(b.Z), a.W.Max(b.W)}
}

func (a Vec4[S]) MinComponent() S { return a.X.Min(a.Y).Min(a.Z).Min(a.W) }
func (a Vec4[S]) MaxComponent() S { return a.X.Max(a.Y).Max(a.Z).Max(a.W) }

// Dot sums the four component products left to right.
func (a Vec4[S]) Dot(b Vec4[S]) S {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z)).Add(a.W.Mul(b.W))
}

func (a Vec4[S]) LengthSquared() S { return a.Dot(a) }
func (a Vec4[S]) Length() S        { return a.Dot(a).Sqrt() }

func (a Vec4[S]) Distance(b Vec4[S]) S { return b.Sub(a).Length() }

// Normalize divides a by its length; zero vectors become NaN.
func (a Vec4[S]) Normalize() Vec4[S] {
	l := a.Length()
	return Vec4[S]{a.X.Div(l), a.Y.Div(l), a.Z.Div(l), a.W.Div(l)}
}

// Lerp is a*(1-t) + b*t, unclamped; the endpoints are exact.
func (a Vec4[S]) Lerp(b Vec4[S], t S) Vec4[S] {
	u := t.Splat(1).Sub(t)
	return a.Scale(u).Add(b.Scale(t))
}

func (a Vec4[S]) Eq(b Vec4[S]) S {
	return a.X.Eq(b.X).And(a.Y.Eq(b.Y)).And(a.Z.Eq(b.Z)).And(a.W.Eq(b.W))
}

// XYZ drops W without dividing by it.
func (a Vec4[S]) XYZ() Vec3[S] {
	return Vec3[S]{a.X, a.Y, a.Z}
}

func (a Vec4[S]) XY() Vec2[S] {
	return Vec2[S]{a.X, a.Y}
}

func (a Vec4[S]) Array() [4]S {
	return [4]S{a.X, a.Y, a.Z, a.W}
}
