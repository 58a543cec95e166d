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

// Vec2 is a 2-component vector stored in X, Y order.
type Vec2[S lanes.Scalar[S]] struct {
	X, Y S
}

type (
	Vec2f   = Vec2[lanes.F32]
	Vec2d   = Vec2[lanes.F64]
	Vec2fx2 = Vec2[lanes.F32x2]
	Vec2fx4 = Vec2[lanes.F32x4]
	Vec2fx8 = Vec2[lanes.F32x8]
	Vec2dx2 = Vec2[lanes.F64x2]
	Vec2dx4 = Vec2[lanes.F64x4]
	Vec2dx8 = Vec2[lanes.F64x8]
)

func Splat2[S lanes.Scalar[S]](s S) Vec2[S] {
	return Vec2[S]{s, s}
}

func Select2[S lanes.Scalar[S]](m S, a, b Vec2[S]) Vec2[S] {
	return Vec2[S]{m.Select(a.X, b.X), m.Select(a.Y, b.Y)}
}

func (a Vec2[S]) Add(b Vec2[S]) Vec2[S] { return Vec2[S]{a.X.Add(b.X), a.Y.Add(b.Y)} }
func (a Vec2[S]) Sub(b Vec2[S]) Vec2[S] { return Vec2[S]{a.X.Sub(b.X), a.Y.Sub(b.Y)} }
func (a Vec2[S]) Mul(b Vec2[S]) Vec2[S] { return Vec2[S]{a.X.Mul(b.X), a.Y.Mul(b.Y)} }
func (a Vec2[S]) Div(b Vec2[S]) Vec2[S] { return Vec2[S]{a.X.Div(b.X), a.Y.Div(b.Y)} }
func (a Vec2[S]) Min(b Vec2[S]) Vec2[S] { return Vec2[S]{a.X.Min(b.X), a.Y.Min(b.Y)} }
func (a Vec2[S]) Max(b Vec2[S]) Vec2[S] { return Vec2[S]{a.X.Max(b.X), a.Y.Max(b.Y)} }
func (a Vec2[S]) Scale(s S) Vec2[S]     { return Vec2[S]{a.X.Mul(s), a.Y.Mul(s)} }
func (a Vec2[S]) Neg() Vec2[S]          { return Vec2[S]{a.X.Neg(), a.Y.Neg()} }
func (a Vec2[S]) Abs() Vec2[S]          { return Vec2[S]{a.X.Abs(), a.Y.Abs()} }

func (a Vec2[S]) MulAdd(b, c Vec2[S]) Vec2[S] {
	return Vec2[S]{a.X.MulAdd(b.X, c.X), a.Y.MulAdd(b.Y, c.Y)}
}

func (a Vec2[S]) Dot(b Vec2[S]) S {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y))
}

// PerpDot returns the z component of the 3-D cross product of a and b,
// positive when b is counter-clockwise from a.
func (a Vec2[S]) PerpDot(b Vec2[S]) S {
	return a.X.Mul(b.Y).Sub(a.Y.Mul(b.X))
}

// Perp returns a rotated a quarter turn counter-clockwise.
func (a Vec2[S]) Perp() Vec2[S] {
	return Vec2[S]{a.Y.Neg(), a.X}
}

func (a Vec2[S]) LengthSquared() S     { return a.Dot(a) }
func (a Vec2[S]) Length() S            { return a.Dot(a).Sqrt() }
func (a Vec2[S]) Distance(b Vec2[S]) S { return b.Sub(a).Length() }
func (a Vec2[S]) MinComponent() S      { return a.X.Min(a.Y) }
func (a Vec2[S]) MaxComponent() S      { return a.X.Max(a.Y) }
func (a Vec2[S]) Array() [2]S          { return [2]S{a.X, a.Y} }
func (a Vec2[S]) Extend(z S) Vec3[S]   { return Vec3[S]{a.X, a.Y, z} }
func (a Vec2[S]) Eq(b Vec2[S]) S       { return a.X.Eq(b.X).And(a.Y.Eq(b.Y)) }

func (a Vec2[S]) Reflect(n Vec2[S]) Vec2[S] {
	d := a.Dot(n)
	return a.Sub(n.Scale(d.Add(d)))
}

// Normalize divides a by its length; zero vectors become NaN.
func (a Vec2[S]) Normalize() Vec2[S] {
	l := a.Length()
	return Vec2[S]{a.X.Div(l), a.Y.Div(l)}
}

// Lerp is a*(1-t) + b*t, unclamped.
func (a Vec2[S]) Lerp(b Vec2[S], t S) Vec2[S] {
	u := t.Splat(1).Sub(t)
	return a.Scale(u).Add(b.Scale(t))
}
