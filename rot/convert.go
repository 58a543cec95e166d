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
	"github.com/ajroetker/go-lanes/mat"
	"github.com/ajroetker/go-lanes/vec"
)

// FromMat3 returns a unit quaternion for the rotation matrix m. It uses
// Shepperd's method: four candidate solutions are computed and the one
// built from the largest diagonal combination is selected per lane. A
// matrix that is not a rotation gives an unspecified result.
func FromMat3[S lanes.Scalar[S]](m mat.Mat3[S]) Quat[S] {
	c0, c1, c2 := m.Cols[0], m.Cols[1], m.Cols[2]
	m00, m11, m22 := c0.X, c1.Y, c2.Z
	one := m00.Splat(1)
	half := m00.Splat(0.5)

	// scaled divides the candidate by 2*sqrt(t)
	scaled := func(x, y, z, w, t S) vec.Vec4[S] {
		return vec.Vec4[S]{X: x, Y: y, Z: z, W: w}.Scale(half.Mul(t.RSqrt()))
	}

	tw := one.Add(m00).Add(m11).Add(m22)
	qw := scaled(c1.Z.Sub(c2.Y), c2.X.Sub(c0.Z), c0.Y.Sub(c1.X), tw, tw)

	tx := one.Add(m00).Sub(m11).Sub(m22)
	qx := scaled(tx, c0.Y.Add(c1.X), c2.X.Add(c0.Z), c1.Z.Sub(c2.Y), tx)

	ty := one.Sub(m00).Add(m11).Sub(m22)
	qy := scaled(c0.Y.Add(c1.X), ty, c1.Z.Add(c2.Y), c2.X.Sub(c0.Z), ty)

	tz := one.Sub(m00).Sub(m11).Add(m22)
	qz := scaled(c2.X.Add(c0.Z), c1.Z.Add(c2.Y), tz, c0.Y.Sub(c1.X), tz)

	var zero S
	xy := vec.Select4(m00.Gt(m11), qx, qy)
	zw := vec.Select4(m00.Lt(m11.Neg()), qz, qw)
	return FromVec4(vec.Select4(m22.Lt(zero), xy, zw))
}

// FromMat4 reads the rotation from the upper-left 3×3 block of m.
func FromMat4[S lanes.Scalar[S]](m mat.Mat4[S]) Quat[S] {
	return FromMat3(mat.FromMat4(m))
}
