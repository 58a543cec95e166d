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

// Mat2 is a 2×2 matrix stored as two columns.
type Mat2[S lanes.Scalar[S]] struct {
	Cols [2]vec.Vec2[S]
}

type (
	Mat2f   = Mat2[lanes.F32]
	Mat2d   = Mat2[lanes.F64]
	Mat2fx2 = Mat2[lanes.F32x2]
	Mat2fx4 = Mat2[lanes.F32x4]
	Mat2fx8 = Mat2[lanes.F32x8]
	Mat2dx2 = Mat2[lanes.F64x2]
	Mat2dx4 = Mat2[lanes.F64x4]
	Mat2dx8 = Mat2[lanes.F64x8]
)

func Identity2[S lanes.Scalar[S]]() Mat2[S] {
	var z S
	o := z.Splat(1)
	return Mat2[S]{Cols: [2]vec.Vec2[S]{{X: o}, {Y: o}}}
}

func FromCols2[S lanes.Scalar[S]](c0, c1 vec.Vec2[S]) Mat2[S] {
	return Mat2[S]{Cols: [2]vec.Vec2[S]{c0, c1}}
}

// FromAngle2 returns the counter-clockwise rotation by angle radians.
func FromAngle2[S lanes.Scalar[S]](angle S) Mat2[S] {
	s, c := angle.Sin(), angle.Cos()
	return Mat2[S]{Cols: [2]vec.Vec2[S]{{X: c, Y: s}, {X: s.Neg(), Y: c}}}
}

// FromScale2 returns diag(s.X, s.Y).
func FromScale2[S lanes.Scalar[S]](s vec.Vec2[S]) Mat2[S] {
	return Mat2[S]{Cols: [2]vec.Vec2[S]{{X: s.X}, {Y: s.Y}}}
}

func (m Mat2[S]) Col(i int) vec.Vec2[S] { return m.Cols[i] }

func (m Mat2[S]) Row(i int) vec.Vec2[S] {
	if i == 0 {
		return vec.Vec2[S]{X: m.Cols[0].X, Y: m.Cols[1].X}
	}
	if i == 1 {
		return vec.Vec2[S]{X: m.Cols[0].Y, Y: m.Cols[1].Y}
	}
	panic("mat: row index out of range")
}

func (m Mat2[S]) Diagonal() vec.Vec2[S] {
	return vec.Vec2[S]{X: m.Cols[0].X, Y: m.Cols[1].Y}
}

func (m Mat2[S]) MulVec(v vec.Vec2[S]) vec.Vec2[S] {
	return m.Cols[0].Scale(v.X).Add(m.Cols[1].Scale(v.Y))
}

// Mul returns m·b, applying b first.
func (m Mat2[S]) Mul(b Mat2[S]) Mat2[S] {
	return Mat2[S]{Cols: [2]vec.Vec2[S]{m.MulVec(b.Cols[0]), m.MulVec(b.Cols[1])}}
}

func (m Mat2[S]) Transpose() Mat2[S] {
	return Mat2[S]{Cols: [2]vec.Vec2[S]{m.Row(0), m.Row(1)}}
}

func (m Mat2[S]) Determinant() S {
	return m.Cols[0].PerpDot(m.Cols[1])
}

func (m Mat2[S]) Inverse() Mat2[S] {
	inv := m.Determinant().Recip()
	a, b := m.Cols[0], m.Cols[1]
	return Mat2[S]{Cols: [2]vec.Vec2[S]{
		{X: b.Y.Mul(inv), Y: a.Y.Neg().Mul(inv)},
		{X: b.X.Neg().Mul(inv), Y: a.X.Mul(inv)},
	}}
}

func (m Mat2[S]) Add(b Mat2[S]) Mat2[S] {
	return Mat2[S]{Cols: [2]vec.Vec2[S]{m.Cols[0].Add(b.Cols[0]), m.Cols[1].Add(b.Cols[1])}}
}

func (m Mat2[S]) Sub(b Mat2[S]) Mat2[S] {
	return Mat2[S]{Cols: [2]vec.Vec2[S]{m.Cols[0].Sub(b.Cols[0]), m.Cols[1].Sub(b.Cols[1])}}
}

func (m Mat2[S]) Scale(s S) Mat2[S] {
	return Mat2[S]{Cols: [2]vec.Vec2[S]{m.Cols[0].Scale(s), m.Cols[1].Scale(s)}}
}

func (m Mat2[S]) Lerp(b Mat2[S], t S) Mat2[S] {
	return Mat2[S]{Cols: [2]vec.Vec2[S]{m.Cols[0].Lerp(b.Cols[0], t), m.Cols[1].Lerp(b.Cols[1], t)}}
}
