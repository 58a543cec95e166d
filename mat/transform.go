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

// FromTranslation returns the affine translation by t.
func FromTranslation[S lanes.Scalar[S]](t vec.Vec3[S]) Mat4[S] {
	m := Identity4[S]()
	m.Cols[3] = t.Extend(t.X.Splat(1))
	return m
}

// FromScale4 returns the uniform scale diag(s, s, s, 1).
func FromScale4[S lanes.Scalar[S]](s S) Mat4[S] {
	return FromNonUniformScale4(vec.Splat3(s))
}

// FromNonUniformScale4 returns diag(s.X, s.Y, s.Z, 1).
func FromNonUniformScale4[S lanes.Scalar[S]](s vec.Vec3[S]) Mat4[S] {
	return Mat4[S]{Cols: [4]vec.Vec4[S]{{X: s.X}, {Y: s.Y}, {Z: s.Z}, {W: s.X.Splat(1)}}}
}

// FromMat3 embeds m as the linear part of an affine Mat4.
func FromMat3[S lanes.Scalar[S]](m Mat3[S]) Mat4[S] {
	var z S
	return Mat4[S]{Cols: [4]vec.Vec4[S]{
		m.Cols[0].Extend(z),
		m.Cols[1].Extend(z),
		m.Cols[2].Extend(z),
		{W: z.Splat(1)},
	}}
}

// FromAxisAngle4 is FromAxisAngle3 embedded in a Mat4.
func FromAxisAngle4[S lanes.Scalar[S]](axis vec.Vec3[S], angle S) Mat4[S] {
	return FromMat3(FromAxisAngle3(axis, angle))
}

func FromRotationX4[S lanes.Scalar[S]](angle S) Mat4[S] { return FromMat3(FromRotationX3(angle)) }
func FromRotationY4[S lanes.Scalar[S]](angle S) Mat4[S] { return FromMat3(FromRotationY3(angle)) }
func FromRotationZ4[S lanes.Scalar[S]](angle S) Mat4[S] { return FromMat3(FromRotationZ3(angle)) }

// LookAt returns a right-handed view matrix for a camera at eye looking at
// center. The camera looks down its local -Z with up close to +Y. up must
// not be parallel to center - eye; if it is the result is NaN.
func LookAt[S lanes.Scalar[S]](eye, center, up vec.Vec3[S]) Mat4[S] {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	var z S
	return Mat4[S]{Cols: [4]vec.Vec4[S]{
		{X: s.X, Y: u.X, Z: f.X.Neg(), W: z},
		{X: s.Y, Y: u.Y, Z: f.Y.Neg(), W: z},
		{X: s.Z, Y: u.Z, Z: f.Z.Neg(), W: z},
		{X: s.Dot(eye).Neg(), Y: u.Dot(eye).Neg(), Z: f.Dot(eye), W: z.Splat(1)},
	}}
}
