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

// Mat4 is a 4×4 matrix stored as four columns. For affine transforms
// Cols[3] is the translation and the bottom row is (0, 0, 0, 1).
type Mat4[S lanes.Scalar[S]] struct {
	Cols [4]vec.Vec4[S]
}

type (
	Mat4f   = Mat4[lanes.F32]
	Mat4d   = Mat4[lanes.F64]
	Mat4fx2 = Mat4[lanes.F32x2]
	Mat4fx4 = Mat4[lanes.F32x4]
	Mat4fx8 = Mat4[lanes.F32x8]
	Mat4dx2 = Mat4[lanes.F64x2]
	Mat4dx4 = Mat4[lanes.F64x4]
	Mat4dx8 = Mat4[lanes.F64x8]
)

// Identity4 returns the 4×4 identity.
func Identity4[S lanes.Scalar[S]]() Mat4[S] {
	var z S
	o := z.Splat(1)
	return Mat4[S]{Cols: [4]vec.Vec4[S]{{X: o}, {Y: o}, {Z: o}, {W: o}}}
}

// FromCols4 builds a matrix from its columns.
func FromCols4[S lanes.Scalar[S]](c0, c1, c2, c3 vec.Vec4[S]) Mat4[S] {
	return Mat4[S]{Cols: [4]vec.Vec4[S]{c0, c1, c2, c3}}
}

func (m Mat4[S]) Col(i int) vec.Vec4[S] { return m.Cols[i] }

// Row returns row i. It panics if i is not in [0, 3].
func (m Mat4[S]) Row(i int) vec.Vec4[S] {
	c0, c1, c2, c3 := m.Cols[0].Array(), m.Cols[1].Array(), m.Cols[2].Array(), m.Cols[3].Array()
	return vec.Vec4[S]{X: c0[i], Y: c1[i], Z: c2[i], W: c3[i]}
}

func (m Mat4[S]) Diagonal() vec.Vec4[S] {
	return vec.Vec4[S]{X: m.Cols[0].X, Y: m.Cols[1].Y, Z: m.Cols[2].Z, W: m.Cols[3].W}
}

// MulVec returns m·v.
func (m Mat4[S]) MulVec(v vec.Vec4[S]) vec.Vec4[S] {
	return m.Cols[0].Scale(v.X).
		Add(m.Cols[1].Scale(v.Y)).
		Add(m.Cols[2].Scale(v.Z)).
		Add(m.Cols[3].Scale(v.W))
}

// Mul returns the composition m·b: the result applies b first, then m.
func (m Mat4[S]) Mul(b Mat4[S]) Mat4[S] {
	return Mat4[S]{Cols: [4]vec.Vec4[S]{
		m.MulVec(b.Cols[0]),
		m.MulVec(b.Cols[1]),
		m.MulVec(b.Cols[2]),
		m.MulVec(b.Cols[3]),
	}}
}

// Transpose swaps rows and columns without arithmetic.
func (m Mat4[S]) Transpose() Mat4[S] {
	return Mat4[S]{Cols: [4]vec.Vec4[S]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}}
}

// TransformPoint3 applies m to p with w = 1 and drops w without dividing.
// Use ProjectPoint3 for projective matrices.
func (m Mat4[S]) TransformPoint3(p vec.Vec3[S]) vec.Vec3[S] {
	return m.Cols[0].Scale(p.X).
		Add(m.Cols[1].Scale(p.Y)).
		Add(m.Cols[2].Scale(p.Z)).
		Add(m.Cols[3]).XYZ()
}

// TransformVector3 applies m to v with w = 0, ignoring translation.
func (m Mat4[S]) TransformVector3(v vec.Vec3[S]) vec.Vec3[S] {
	return m.Cols[0].Scale(v.X).
		Add(m.Cols[1].Scale(v.Y)).
		Add(m.Cols[2].Scale(v.Z)).XYZ()
}

// ProjectPoint3 applies m to p with w = 1 and divides by the resulting w.
// Points on the camera plane (w = 0) come out infinite or NaN.
func (m Mat4[S]) ProjectPoint3(p vec.Vec3[S]) vec.Vec3[S] {
	h := m.MulVec(p.Extend(p.X.Splat(1)))
	return h.XYZ().Div(vec.Splat3(h.W))
}

func (m Mat4[S]) Add(b Mat4[S]) Mat4[S] {
	var r Mat4[S]
	for i := range r.Cols {
		r.Cols[i] = m.Cols[i].Add(b.Cols[i])
	}
	return r
}

func (m Mat4[S]) Sub(b Mat4[S]) Mat4[S] {
	var r Mat4[S]
	for i := range r.Cols {
		r.Cols[i] = m.Cols[i].Sub(b.Cols[i])
	}
	return r
}

func (m Mat4[S]) Scale(s S) Mat4[S] {
	var r Mat4[S]
	for i := range r.Cols {
		r.Cols[i] = m.Cols[i].Scale(s)
	}
	return r
}

// Lerp interpolates every element; t = 0 and t = 1 return m and b exactly.
func (m Mat4[S]) Lerp(b Mat4[S], t S) Mat4[S] {
	var r Mat4[S]
	for i := range r.Cols {
		r.Cols[i] = m.Cols[i].Lerp(b.Cols[i], t)
	}
	return r
}

// minors holds the twelve 2×2 determinants shared by Determinant and
// Inverse. s* pair columns 0 and 1, c* pair columns 2 and 3.
type minors[S lanes.Scalar[S]] struct {
	s0, s1, s2, s3, s4, s5 S
	c0, c1, c2, c3, c4, c5 S
}

func (m Mat4[S]) cofactors() ([4][4]S, minors[S]) {
	a := [4][4]S{m.Cols[0].Array(), m.Cols[1].Array(), m.Cols[2].Array(), m.Cols[3].Array()}
	d := func(w, x, y, z S) S { return w.Mul(x).Sub(y.Mul(z)) }
	return a, minors[S]{
		s0: d(a[0][0], a[1][1], a[1][0], a[0][1]),
		s1: d(a[0][0], a[1][2], a[1][0], a[0][2]),
		s2: d(a[0][0], a[1][3], a[1][0], a[0][3]),
		s3: d(a[0][1], a[1][2], a[1][1], a[0][2]),
		s4: d(a[0][1], a[1][3], a[1][1], a[0][3]),
		s5: d(a[0][2], a[1][3], a[1][2], a[0][3]),
		c5: d(a[2][2], a[3][3], a[3][2], a[2][3]),
		c4: d(a[2][1], a[3][3], a[3][1], a[2][3]),
		c3: d(a[2][1], a[3][2], a[3][1], a[2][2]),
		c2: d(a[2][0], a[3][3], a[3][0], a[2][3]),
		c1: d(a[2][0], a[3][2], a[3][0], a[2][2]),
		c0: d(a[2][0], a[3][1], a[3][0], a[2][1]),
	}
}

func (k minors[S]) det() S {
	return k.s0.Mul(k.c5).
		Sub(k.s1.Mul(k.c4)).
		Add(k.s2.Mul(k.c3)).
		Add(k.s3.Mul(k.c2)).
		Sub(k.s4.Mul(k.c1)).
		Add(k.s5.Mul(k.c0))
}

// Determinant returns det(m) by Laplace expansion over 2×2 minors.
func (m Mat4[S]) Determinant() S {
	_, k := m.cofactors()
	return k.det()
}

// Inverse returns the adjugate of m scaled by 1/det(m). The determinant is
// not checked: a singular matrix yields Inf or NaN components.
func (m Mat4[S]) Inverse() Mat4[S] {
	a, k := m.cofactors()
	inv := k.det().Recip()

	// e computes (p*x - q*y + r*z) * inv
	e := func(p, x, q, y, r, z S) S {
		return p.Mul(x).Sub(q.Mul(y)).Add(r.Mul(z)).Mul(inv)
	}
	return Mat4[S]{Cols: [4]vec.Vec4[S]{
		{
			X: e(a[1][1], k.c5, a[1][2], k.c4, a[1][3], k.c3),
			Y: e(a[0][1].Neg(), k.c5, a[0][2].Neg(), k.c4, a[0][3].Neg(), k.c3),
			Z: e(a[3][1], k.s5, a[3][2], k.s4, a[3][3], k.s3),
			W: e(a[2][1].Neg(), k.s5, a[2][2].Neg(), k.s4, a[2][3].Neg(), k.s3),
		},
		{
			X: e(a[1][0].Neg(), k.c5, a[1][2].Neg(), k.c2, a[1][3].Neg(), k.c1),
			Y: e(a[0][0], k.c5, a[0][2], k.c2, a[0][3], k.c1),
			Z: e(a[3][0].Neg(), k.s5, a[3][2].Neg(), k.s2, a[3][3].Neg(), k.s1),
			W: e(a[2][0], k.s5, a[2][2], k.s2, a[2][3], k.s1),
		},
		{
			X: e(a[1][0], k.c4, a[1][1], k.c2, a[1][3], k.c0),
			Y: e(a[0][0].Neg(), k.c4, a[0][1].Neg(), k.c2, a[0][3].Neg(), k.c0),
			Z: e(a[3][0], k.s4, a[3][1], k.s2, a[3][3], k.s0),
			W: e(a[2][0].Neg(), k.s4, a[2][1].Neg(), k.s2, a[2][3].Neg(), k.s0),
		},
		{
			X: e(a[1][0].Neg(), k.c3, a[1][1].Neg(), k.c1, a[1][2].Neg(), k.c0),
			Y: e(a[0][0], k.c3, a[0][1], k.c1, a[0][2], k.c0),
			Z: e(a[3][0].Neg(), k.s3, a[3][1].Neg(), k.s1, a[3][2].Neg(), k.s0),
			W: e(a[2][0], k.s3, a[2][1], k.s1, a[2][2], k.s0),
		},
	}}
}
