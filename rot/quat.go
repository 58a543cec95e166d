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

// Quat is a quaternion x*i + y*j + z*k + w, stored vector part first.
type Quat[S lanes.Scalar[S]] struct {
	X, Y, Z, W S
}

type (
	Quatf   = Quat[lanes.F32]
	Quatd   = Quat[lanes.F64]
	Quatfx2 = Quat[lanes.F32x2]
	Quatfx4 = Quat[lanes.F32x4]
	Quatfx8 = Quat[lanes.F32x8]
	Quatdx2 = Quat[lanes.F64x2]
	Quatdx4 = Quat[lanes.F64x4]
	Quatdx8 = Quat[lanes.F64x8]
)

// IdentityQuat returns the rotation by zero.
func IdentityQuat[S lanes.Scalar[S]]() Quat[S] {
	var z S
	return Quat[S]{W: z.Splat(1)}
}

// FromAxisAngle returns the rotation by angle radians about the unit vector
// axis, counter-clockwise when looking down the axis toward the origin.
func FromAxisAngle[S lanes.Scalar[S]](axis vec.Vec3[S], angle S) Quat[S] {
	half := angle.Mul(angle.Splat(0.5))
	s, c := half.Sin(), half.Cos()
	return Quat[S]{X: axis.X.Mul(s), Y: axis.Y.Mul(s), Z: axis.Z.Mul(s), W: c}
}

func FromRotationX[S lanes.Scalar[S]](angle S) Quat[S] {
	half := angle.Mul(angle.Splat(0.5))
	return Quat[S]{X: half.Sin(), W: half.Cos()}
}

func FromRotationY[S lanes.Scalar[S]](angle S) Quat[S] {
	half := angle.Mul(angle.Splat(0.5))
	return Quat[S]{Y: half.Sin(), W: half.Cos()}
}

func FromRotationZ[S lanes.Scalar[S]](angle S) Quat[S] {
	half := angle.Mul(angle.Splat(0.5))
	return Quat[S]{Z: half.Sin(), W: half.Cos()}
}

// FromVec4 reinterprets (x, y, z, w) as a quaternion.
func FromVec4[S lanes.Scalar[S]](v vec.Vec4[S]) Quat[S] {
	return Quat[S]{v.X, v.Y, v.Z, v.W}
}

// Vec4 returns the components as (x, y, z, w).
func (q Quat[S]) Vec4() vec.Vec4[S] {
	return vec.Vec4[S]{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// Vector returns the imaginary part (x, y, z).
func (q Quat[S]) Vector() vec.Vec3[S] {
	return vec.Vec3[S]{X: q.X, Y: q.Y, Z: q.Z}
}

// Mul returns the Hamilton product q*r: the rotation that applies r first,
// then q.
func (q Quat[S]) Mul(r Quat[S]) Quat[S] {
	return Quat[S]{
		X: q.W.Mul(r.X).Add(q.X.Mul(r.W)).Add(q.Y.Mul(r.Z)).Sub(q.Z.Mul(r.Y)),
		Y: q.W.Mul(r.Y).Sub(q.X.Mul(r.Z)).Add(q.Y.Mul(r.W)).Add(q.Z.Mul(r.X)),
		Z: q.W.Mul(r.Z).Add(q.X.Mul(r.Y)).Sub(q.Y.Mul(r.X)).Add(q.Z.Mul(r.W)),
		W: q.W.Mul(r.W).Sub(q.X.Mul(r.X)).Sub(q.Y.Mul(r.Y)).Sub(q.Z.Mul(r.Z)),
	}
}

func (q Quat[S]) Add(r Quat[S]) Quat[S] { return FromVec4(q.Vec4().Add(r.Vec4())) }
func (q Quat[S]) Sub(r Quat[S]) Quat[S] { return FromVec4(q.Vec4().Sub(r.Vec4())) }
func (q Quat[S]) Scale(s S) Quat[S]     { return FromVec4(q.Vec4().Scale(s)) }
func (q Quat[S]) Neg() Quat[S]          { return FromVec4(q.Vec4().Neg()) }

// Conjugate negates the vector part. For a unit quaternion this is the
// inverse rotation.
func (q Quat[S]) Conjugate() Quat[S] {
	return Quat[S]{X: q.X.Neg(), Y: q.Y.Neg(), Z: q.Z.Neg(), W: q.W}
}

// Inverse returns the conjugate divided by the squared length, which is
// defined for non-unit quaternions too. Zero yields NaN.
func (q Quat[S]) Inverse() Quat[S] {
	return FromVec4(q.Conjugate().Vec4().Div(vec.Splat4(q.LengthSquared())))
}

func (q Quat[S]) Dot(r Quat[S]) S    { return q.Vec4().Dot(r.Vec4()) }
func (q Quat[S]) LengthSquared() S   { return q.Vec4().LengthSquared() }
func (q Quat[S]) Length() S          { return q.Vec4().Length() }
func (q Quat[S]) Normalize() Quat[S] { return FromVec4(q.Vec4().Normalize()) }

// Rotate applies q to v as q*v*q⁻¹, evaluated without forming the
// products: t = 2(u × v), v' = v + w*t + u × t.
func (q Quat[S]) Rotate(v vec.Vec3[S]) vec.Vec3[S] {
	u := q.Vector()
	t := u.Cross(v)
	t = t.Add(t)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ToMat3 returns the rotation matrix of a unit quaternion.
func (q Quat[S]) ToMat3() mat.Mat3[S] {
	x2, y2, z2 := q.X.Add(q.X), q.Y.Add(q.Y), q.Z.Add(q.Z)
	xx, yy, zz := q.X.Mul(x2), q.Y.Mul(y2), q.Z.Mul(z2)
	xy, xz, yz := q.X.Mul(y2), q.X.Mul(z2), q.Y.Mul(z2)
	wx, wy, wz := q.W.Mul(x2), q.W.Mul(y2), q.W.Mul(z2)
	one := q.W.Splat(1)
	return mat.FromCols3(
		vec.Vec3[S]{X: one.Sub(yy.Add(zz)), Y: xy.Add(wz), Z: xz.Sub(wy)},
		vec.Vec3[S]{X: xy.Sub(wz), Y: one.Sub(xx.Add(zz)), Z: yz.Add(wx)},
		vec.Vec3[S]{X: xz.Add(wy), Y: yz.Sub(wx), Z: one.Sub(xx.Add(yy))},
	)
}

// ToMat4 returns ToMat3 embedded in an affine Mat4.
func (q Quat[S]) ToMat4() mat.Mat4[S] {
	return mat.FromMat3(q.ToMat3())
}

// ToAxisAngle returns a unit axis and an angle in [0, 2π]. For the
// identity, where the axis is undefined, it returns +X and 0.
func (q Quat[S]) ToAxisAngle() (vec.Vec3[S], S) {
	u := q.Vector()
	l := u.Length()
	angle := l.Atan2(q.W)
	angle = angle.Add(angle)
	var z S
	axis := vec.Select3(l.Gt(z), u.Div(vec.Splat3(l)), vec.Vec3[S]{X: z.Splat(1)})
	return axis, angle
}

// Lerp interpolates the components without normalizing or correcting the
// sign, so the result is generally not a unit quaternion.
func (q Quat[S]) Lerp(r Quat[S], t S) Quat[S] {
	return FromVec4(q.Vec4().Lerp(r.Vec4(), t))
}

// Nlerp interpolates along the shortest path and normalizes.
func (q Quat[S]) Nlerp(r Quat[S], t S) Quat[S] {
	return FromVec4(nlerp4(q.Vec4(), r.Vec4(), t))
}

// Slerp interpolates along the shortest great arc at constant angular
// velocity. t is not clamped.
func (q Quat[S]) Slerp(r Quat[S], t S) Quat[S] {
	return FromVec4(slerp4(q.Vec4(), r.Vec4(), t))
}

// ToRotor returns the equivalent rotor.
func (q Quat[S]) ToRotor() Rotor3[S] {
	return Rotor3[S]{S: q.W, B: Bivec3[S]{XY: q.Z.Neg(), XZ: q.Y, YZ: q.X.Neg()}}
}
