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

package mat

import (
	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/vec"
)

// Mat3 is a 3×3 matrix stored as three columns.
type Mat3[S lanes.Scalar[S]] struct {
	Cols [3]vec.Vec3[S]
}

type (
	Mat3f   = Mat3[lanes.F32]
	Mat3d   = Mat3[lanes.F64]
	Mat3fx2 = Mat3[lanes.F32x2]
	Mat3fx4 = Mat3[lanes.F32x4]
	Mat3fx8 = Mat3[lanes.F32x8]
	Mat3dx2 = Mat3[lanes.F64x2]
	Mat3dx4 = Mat3[lanes.F64x4]
	Mat3dx8 = Mat3[lanes.F64x8]
)

// Identity3 returns the 3×3 identity.
func Identity3[S lanes.Scalar[S]]() Mat3[S] {
	var z S
	o := z.Splat(1)
	return Mat3[S]{Cols: [3]vec.Vec3[S]{{X: o}, {Y: o}, {Z: o}}}
}

// FromCols3 builds a matrix from its columns.
func FromCols3[S lanes.Scalar[S]](c0, c1, c2 vec.Vec3[S]) Mat3[S] {
	return Mat3[S]{Cols: [3]vec.Vec3[S]{c0, c1, c2}}
}

// FromScale3 returns diag(s.X, s.Y, s.Z).
func FromScale3[S lanes.Scalar[S]](s vec.Vec3[S]) Mat3[S] {
	return Mat3[S]{Cols: [3]vec.Vec3[S]{{X: s.X}, {Y: s.Y}, {Z: s.Z}}}
}

// FromAxisAngle3 returns the rotation by angle radians about the unit
// vector axis, counter-clockwise when looking down the axis toward the
// origin. A non-unit axis gives an unspecified (non-rotation) matrix.
func FromAxisAngle3[S lanes.Scalar[S]](axis vec.Vec3[S], angle S) Mat3[S] {
	s, c := angle.Sin(), angle.Cos()
	t := c.Splat(1).Sub(c)
	x, y, z := axis.X, axis.Y, axis.Z
	tx, ty, tz := t.Mul(x), t.Mul(y), t.Mul(z)
	sx, sy, sz := s.Mul(x), s.Mul(y), s.Mul(z)
	txy, txz, tyz := tx.Mul(y), tx.Mul(z), ty.Mul(z)
	return Mat3[S]{Cols: [3]vec.Vec3[S]{
		{X: tx.Mul(x).Add(c), Y: txy.Add(sz), Z: txz.Sub(sy)},
		{X: txy.Sub(sz), Y: ty.Mul(y).Add(c), Z: tyz.Add(sx)},
		{X: txz.Add(sy), Y: tyz.Sub(sx), Z: tz.Mul(z).Add(c)},
	}}
}

// FromRotationX3 rotates about +X: Y turns toward Z.
func FromRotationX3[S lanes.Scalar[S]](angle S) Mat3[S] {
	s, c := angle.Sin(), angle.Cos()
	o := c.Splat(1)
	var z S
	return Mat3[S]{Cols: [3]vec.Vec3[S]{
		{X: o, Y: z, Z: z},
		{X: z, Y: c, Z: s},
		{X: z, Y: s.Neg(), Z: c},
	}}
}

// FromRotationY3 rotates about +Y: Z turns toward X.
func FromRotationY3[S lanes.Scalar[S]](angle S) Mat3[S] {
	s, c := angle.Sin(), angle.Cos()
	o := c.Splat(1)
	var z S
	return Mat3[S]{Cols: [3]vec.Vec3[S]{
		{X: c, Y: z, Z: s.Neg()},
		{X: z, Y: o, Z: z},
		{X: s, Y: z, Z: c},
	}}
}

// FromRotationZ3 rotates about +Z: X turns toward Y.
func FromRotationZ3[S lanes.Scalar[S]](angle S) Mat3[S] {
	s, c := angle.Sin(), angle.Cos()
	o := c.Splat(1)
	var z S
	return Mat3[S]{Cols: [3]vec.Vec3[S]{
		{X: c, Y: s, Z: z},
		{X: s.Neg(), Y: c, Z: z},
		{X: z, Y: z, Z: o},
	}}
}

// FromMat4 returns the upper-left 3×3 block of m.
func FromMat4[S lanes.Scalar[S]](m Mat4[S]) Mat3[S] {
	return Mat3[S]{Cols: [3]vec.Vec3[S]{m.Cols[0].XYZ(), m.Cols[1].XYZ(), m.Cols[2].XYZ()}}
}

func (m Mat3[S]) Col(i int) vec.Vec3[S] { return m.Cols[i] }

func (m Mat3[S]) Row(i int) vec.Vec3[S] {
	return vec.Vec3[S]{X: comp3(m.Cols[0], i), Y: comp3(m.Cols[1], i), Z: comp3(m.Cols[2], i)}
}

func (m Mat3[S]) Diagonal() vec.Vec3[S] {
	return vec.Vec3[S]{X: m.Cols[0].X, Y: m.Cols[1].Y, Z: m.Cols[2].Z}
}

// MulVec returns m·v.
func (m Mat3[S]) MulVec(v vec.Vec3[S]) vec.Vec3[S] {
	return m.Cols[0].Scale(v.X).Add(m.Cols[1].Scale(v.Y)).Add(m.Cols[2].Scale(v.Z))
}

// Mul returns the composition m·b, which applies b first.
func (m Mat3[S]) Mul(b Mat3[S]) Mat3[S] {
	return Mat3[S]{Cols: [3]vec.Vec3[S]{m.MulVec(b.Cols[0]), m.MulVec(b.Cols[1]), m.MulVec(b.Cols[2])}}
}

func (m Mat3[S]) Transpose() Mat3[S] {
	return Mat3[S]{Cols: [3]vec.Vec3[S]{m.Row(0), m.Row(1), m.Row(2)}}
}

// Determinant returns c0 · (c1 × c2).
func (m Mat3[S]) Determinant() S {
	return m.Cols[0].Dot(m.Cols[1].Cross(m.Cols[2]))
}

// Inverse returns the adjugate scaled by 1/det. Singular input yields
// non-finite components.
func (m Mat3[S]) Inverse() Mat3[S] {
	r0 := m.Cols[1].Cross(m.Cols[2])
	r1 := m.Cols[2].Cross(m.Cols[0])
	r2 := m.Cols[0].Cross(m.Cols[1])
	inv := m.Cols[0].Dot(r0).Recip()
	return Mat3[S]{Cols: [3]vec.Vec3[S]{r0, r1, r2}}.Transpose().Scale(inv)
}

func (m Mat3[S]) Add(b Mat3[S]) Mat3[S] {
	return Mat3[S]{Cols: [3]vec.Vec3[S]{m.Cols[0].Add(b.Cols[0]), m.Cols[1].Add(b.Cols[1]), m.Cols[2].Add(b.Cols[2])}}
}

func (m Mat3[S]) Sub(b Mat3[S]) Mat3[S] {
	return Mat3[S]{Cols: [3]vec.Vec3[S]{m.Cols[0].Sub(b.Cols[0]), m.Cols[1].Sub(b.Cols[1]), m.Cols[2].Sub(b.Cols[2])}}
}

func (m Mat3[S]) Scale(s S) Mat3[S] {
	return Mat3[S]{Cols: [3]vec.Vec3[S]{m.Cols[0].Scale(s), m.Cols[1].Scale(s), m.Cols[2].Scale(s)}}
}

// Lerp interpolates every element; t = 0 and t = 1 return m and b exactly.
func (m Mat3[S]) Lerp(b Mat3[S], t S) Mat3[S] {
	return Mat3[S]{Cols: [3]vec.Vec3[S]{m.Cols[0].Lerp(b.Cols[0], t), m.Cols[1].Lerp(b.Cols[1], t), m.Cols[2].Lerp(b.Cols[2], t)}}
}

func comp3[S lanes.Scalar[S]](v vec.Vec3[S], i int) S {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("mat: row index out of range")
}
