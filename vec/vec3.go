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

// Vec3 is a 3-component vector. Components are stored in X, Y, Z order with
// no padding.
type Vec3[S lanes.Scalar[S]] struct {
	X, Y, Z S
}

type (
	Vec3f   = Vec3[lanes.F32]
	Vec3d   = Vec3[lanes.F64]
	Vec3fx2 = Vec3[lanes.F32x2]
	Vec3fx4 = Vec3[lanes.F32x4]
	Vec3fx8 = Vec3[lanes.F32x8]
	Vec3dx2 = Vec3[lanes.F64x2]
	Vec3dx4 = Vec3[lanes.F64x4]
	Vec3dx8 = Vec3[lanes.F64x8]
)

// Splat3 returns {s, s, s}.
func Splat3[S lanes.Scalar[S]](s S) Vec3[S] {
	return Vec3[S]{s, s, s}
}

// Select3 returns a in lanes where m is set and b elsewhere, per component.
func Select3[S lanes.Scalar[S]](m S, a, b Vec3[S]) Vec3[S] {
	return Vec3[S]{m.Select(a.X, b.X), m.Select(a.Y, b.Y), m.Select(a.Z, b.Z)}
}

func (a Vec3[S]) Add(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a.X.Add(b.X), a.Y.Add(b.Y), a.Z.Add(b.Z)}
}

func (a Vec3[S]) Sub(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a.X.Sub(b.X), a.Y.Sub(b.Y), a.Z.Sub(b.Z)}
}

// Mul multiplies component-wise.
func (a Vec3[S]) Mul(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a.X.Mul(b.X), a.Y.Mul(b.Y), a.Z.Mul(b.Z)}
}

// Div divides component-wise.
func (a Vec3[S]) Div(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a.X.Div(b.X), a.Y.Div(b.Y), a.Z.Div(b.Z)}
}

// MulAdd returns a*b + c component-wise using the kernel's fused MulAdd.
func (a Vec3[S]) MulAdd(b, c Vec3[S]) Vec3[S] {
	return Vec3[S]{a.X.MulAdd(b.X, c.X), a.Y.MulAdd(b.Y, c.Y), a.Z.MulAdd(b.Z, c.Z)}
}

// Scale multiplies every component by s.
func (a Vec3[S]) Scale(s S) Vec3[S] {
	return Vec3[S]{a.X.Mul(s), a.Y.Mul(s), a.Z.Mul(s)}
}

func (a Vec3[S]) Neg() Vec3[S] {
	return Vec3[S]{a.X.Neg(), a.Y.Neg(), a.Z.Neg()}
}

func (a Vec3[S]) Abs() Vec3[S] {
	return Vec3[S]{a.X.Abs(), a.Y.Abs(), a.Z.Abs()}
}

// Min returns the component-wise minimum. NaN components propagate.
func (a Vec3[S]) Min(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a.X.Min(b.X), a.Y.Min(b.Y), a.Z.Min(b.Z)}
}

// Max returns the component-wise maximum. NaN components propagate.
func (a Vec3[S]) Max(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a.X.Max(b.X), a.Y.Max(b.Y), a.Z.Max(b.Z)}
}

// MinComponent returns min(X, Y, Z) per lane.
func (a Vec3[S]) MinComponent() S {
	return a.X.Min(a.Y).Min(a.Z)
}

// MaxComponent returns max(X, Y, Z) per lane.
func (a Vec3[S]) MaxComponent() S {
	return a.X.Max(a.Y).Max(a.Z)
}

// Dot returns x*x' + y*y' + z*z', evaluated left to right. For wide S the
// result holds one dot product per lane.
func (a Vec3[S]) Dot(b Vec3[S]) S {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
}

// Cross returns the right-handed cross product a × b, so X × Y = Z.
func (a Vec3[S]) Cross(b Vec3[S]) Vec3[S] {
	return Vec3[S]{
		a.Y.Mul(b.Z).Sub(a.Z.Mul(b.Y)),
		a.Z.Mul(b.X).Sub(a.X.Mul(b.Z)),
		a.X.Mul(b.Y).Sub(a.Y.Mul(b.X)),
	}
}

func (a Vec3[S]) LengthSquared() S {
	return a.Dot(a)
}

func (a Vec3[S]) Length() S {
	return a.Dot(a).Sqrt()
}

// Distance returns the length of b - a.
func (a Vec3[S]) Distance(b Vec3[S]) S {
	return b.Sub(a).Length()
}

func (a Vec3[S]) DistanceSquared(b Vec3[S]) S {
	return b.Sub(a).LengthSquared()
}

// Normalize divides a by its length. A zero vector yields NaN components
// (0/0); an infinite component yields NaN or zero components.
func (a Vec3[S]) Normalize() Vec3[S] {
	l := a.Length()
	return Vec3[S]{a.X.Div(l), a.Y.Div(l), a.Z.Div(l)}
}

// Lerp interpolates between a and b without clamping t. It evaluates
// a*(1-t) + b*t so that t = 0 returns a and t = 1 returns b exactly.
func (a Vec3[S]) Lerp(b Vec3[S], t S) Vec3[S] {
	u := t.Splat(1).Sub(t)
	return a.Scale(u).Add(b.Scale(t))
}

// Reflect returns a reflected about the plane with unit normal n:
// a - 2*dot(a, n)*n.
func (a Vec3[S]) Reflect(n Vec3[S]) Vec3[S] {
	d := a.Dot(n)
	return a.Sub(n.Scale(d.Add(d)))
}

// Eq returns a mask set in lanes where all three components are equal.
func (a Vec3[S]) Eq(b Vec3[S]) S {
	return a.X.Eq(b.X).And(a.Y.Eq(b.Y)).And(a.Z.Eq(b.Z))
}

// Extend returns {X, Y, Z, w}.
func (a Vec3[S]) Extend(w S) Vec4[S] {
	return Vec4[S]{a.X, a.Y, a.Z, w}
}

// XY drops Z.
func (a Vec3[S]) XY() Vec2[S] {
	return Vec2[S]{a.X, a.Y}
}

// Array returns the components in storage order.
func (a Vec3[S]) Array() [3]S {
	return [3]S{a.X, a.Y, a.Z}
}
