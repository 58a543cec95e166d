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

// Bivec3 is an oriented plane element XY*e12 + XZ*e13 + YZ*e23.
type Bivec3[T lanes.Scalar[T]] struct {
	XY, XZ, YZ T
}

// Rotor3 is the even-grade element S + B of 3-D geometric algebra. A unit
// rotor rotates vectors by the sandwich R v R̃.
//
// A rotor and the quaternion with (x, y, z, w) = (-YZ, XZ, -XY, S) describe
// the same rotation; see Quat.ToRotor and Rotor3.ToQuat.
type Rotor3[T lanes.Scalar[T]] struct {
	S T
	B Bivec3[T]
}

type (
	Rotor3f   = Rotor3[lanes.F32]
	Rotor3d   = Rotor3[lanes.F64]
	Rotor3fx2 = Rotor3[lanes.F32x2]
	Rotor3fx4 = Rotor3[lanes.F32x4]
	Rotor3fx8 = Rotor3[lanes.F32x8]
	Rotor3dx2 = Rotor3[lanes.F64x2]
	Rotor3dx4 = Rotor3[lanes.F64x4]
	Rotor3dx8 = Rotor3[lanes.F64x8]
)

func IdentityRotor[T lanes.Scalar[T]]() Rotor3[T] {
	var z T
	return Rotor3[T]{S: z.Splat(1)}
}

// FromAnglePlane returns the rotation by angle radians in the unit plane p,
// turning the first basis direction of p toward the second: a positive
// angle in the XY plane turns X toward Y.
func FromAnglePlane[T lanes.Scalar[T]](angle T, p Bivec3[T]) Rotor3[T] {
	half := angle.Mul(angle.Splat(0.5))
	s := half.Sin().Neg()
	return Rotor3[T]{S: half.Cos(), B: Bivec3[T]{XY: p.XY.Mul(s), XZ: p.XZ.Mul(s), YZ: p.YZ.Mul(s)}}
}

// FromRotationXY turns X toward Y (about +Z).
func FromRotationXY[T lanes.Scalar[T]](angle T) Rotor3[T] {
	half := angle.Mul(angle.Splat(0.5))
	return Rotor3[T]{S: half.Cos(), B: Bivec3[T]{XY: half.Sin().Neg()}}
}

// FromRotationXZ turns X toward Z (about -Y).
func FromRotationXZ[T lanes.Scalar[T]](angle T) Rotor3[T] {
	half := angle.Mul(angle.Splat(0.5))
	return Rotor3[T]{S: half.Cos(), B: Bivec3[T]{XZ: half.Sin().Neg()}}
}

// FromRotationYZ turns Y toward Z (about +X).
func FromRotationYZ[T lanes.Scalar[T]](angle T) Rotor3[T] {
	half := angle.Mul(angle.Splat(0.5))
	return Rotor3[T]{S: half.Cos(), B: Bivec3[T]{YZ: half.Sin().Neg()}}
}

// FromQuat returns the rotor equivalent to q.
func FromQuat[T lanes.Scalar[T]](q Quat[T]) Rotor3[T] {
	return q.ToRotor()
}

// ToQuat returns the equivalent quaternion.
func (r Rotor3[T]) ToQuat() Quat[T] {
	return Quat[T]{X: r.B.YZ.Neg(), Y: r.B.XZ, Z: r.B.XY.Neg(), W: r.S}
}

// Vec4 returns (S, XY, XZ, YZ).
func (r Rotor3[T]) Vec4() vec.Vec4[T] {
	return vec.Vec4[T]{X: r.S, Y: r.B.XY, Z: r.B.XZ, W: r.B.YZ}
}

// RotorFromVec4 is the inverse of Rotor3.Vec4.
func RotorFromVec4[T lanes.Scalar[T]](v vec.Vec4[T]) Rotor3[T] {
	return Rotor3[T]{S: v.X, B: Bivec3[T]{XY: v.Y, XZ: v.Z, YZ: v.W}}
}

// Mul returns the geometric product r*q: the rotation applying q first,
// then r.
func (r Rotor3[T]) Mul(q Rotor3[T]) Rotor3[T] {
	a0, a12, a13, a23 := r.S, r.B.XY, r.B.XZ, r.B.YZ
	b0, b12, b13, b23 := q.S, q.B.XY, q.B.XZ, q.B.YZ
	return Rotor3[T]{
		S: a0.Mul(b0).Sub(a12.Mul(b12)).Sub(a13.Mul(b13)).Sub(a23.Mul(b23)),
		B: Bivec3[T]{
			XY: a0.Mul(b12).Add(a12.Mul(b0)).Sub(a13.Mul(b23)).Add(a23.Mul(b13)),
			XZ: a0.Mul(b13).Add(a13.Mul(b0)).Add(a12.Mul(b23)).Sub(a23.Mul(b12)),
			YZ: a0.Mul(b23).Add(a23.Mul(b0)).Sub(a12.Mul(b13)).Add(a13.Mul(b12)),
		},
	}
}

// Reverse negates the bivector part; for a unit rotor it is the inverse.
func (r Rotor3[T]) Reverse() Rotor3[T] {
	return Rotor3[T]{S: r.S, B: Bivec3[T]{XY: r.B.XY.Neg(), XZ: r.B.XZ.Neg(), YZ: r.B.YZ.Neg()}}
}

func (r Rotor3[T]) Dot(q Rotor3[T]) T         { return r.Vec4().Dot(q.Vec4()) }
func (r Rotor3[T]) LengthSquared() T          { return r.Vec4().LengthSquared() }
func (r Rotor3[T]) Length() T                 { return r.Vec4().Length() }
func (r Rotor3[T]) Normalize() Rotor3[T]      { return RotorFromVec4(r.Vec4().Normalize()) }
func (r Rotor3[T]) Scale(s T) Rotor3[T]       { return RotorFromVec4(r.Vec4().Scale(s)) }
func (r Rotor3[T]) Add(q Rotor3[T]) Rotor3[T] { return RotorFromVec4(r.Vec4().Add(q.Vec4())) }
func (r Rotor3[T]) Sub(q Rotor3[T]) Rotor3[T] { return RotorFromVec4(r.Vec4().Sub(q.Vec4())) }

// Rotate applies the sandwich product R v R̃. The intermediate R v has a
// vector part f and a trivector part fw.
func (r Rotor3[T]) Rotate(v vec.Vec3[T]) vec.Vec3[T] {
	s, xy, xz, yz := r.S, r.B.XY, r.B.XZ, r.B.YZ
	fx := s.Mul(v.X).Add(xy.Mul(v.Y)).Add(xz.Mul(v.Z))
	fy := s.Mul(v.Y).Sub(xy.Mul(v.X)).Add(yz.Mul(v.Z))
	fz := s.Mul(v.Z).Sub(xz.Mul(v.X)).Sub(yz.Mul(v.Y))
	fw := xy.Mul(v.Z).Sub(xz.Mul(v.Y)).Add(yz.Mul(v.X))
	return vec.Vec3[T]{
		X: s.Mul(fx).Add(xy.Mul(fy)).Add(xz.Mul(fz)).Add(yz.Mul(fw)),
		Y: s.Mul(fy).Sub(xy.Mul(fx)).Sub(xz.Mul(fw)).Add(yz.Mul(fz)),
		Z: s.Mul(fz).Add(xy.Mul(fw)).Sub(xz.Mul(fx)).Sub(yz.Mul(fy)),
	}
}

// ToMat3 returns the matrix whose columns are the rotated basis vectors.
func (r Rotor3[T]) ToMat3() mat.Mat3[T] {
	var z T
	o := z.Splat(1)
	return mat.FromCols3(
		r.Rotate(vec.Vec3[T]{X: o, Y: z, Z: z}),
		r.Rotate(vec.Vec3[T]{X: z, Y: o, Z: z}),
		r.Rotate(vec.Vec3[T]{X: z, Y: z, Z: o}),
	)
}

func (r Rotor3[T]) ToMat4() mat.Mat4[T] {
	return mat.FromMat3(r.ToMat3())
}

// Lerp interpolates the components; the result is not normalized.
func (r Rotor3[T]) Lerp(q Rotor3[T], t T) Rotor3[T] {
	return RotorFromVec4(r.Vec4().Lerp(q.Vec4(), t))
}

// Nlerp interpolates along the shortest path and normalizes.
func (r Rotor3[T]) Nlerp(q Rotor3[T], t T) Rotor3[T] {
	return RotorFromVec4(nlerp4(r.Vec4(), q.Vec4(), t))
}

// Slerp interpolates along the shortest great arc. It agrees with
// Quat.Slerp on the equivalent quaternions.
func (r Rotor3[T]) Slerp(q Rotor3[T], t T) Rotor3[T] {
	return RotorFromVec4(slerp4(r.Vec4(), q.Vec4(), t))
}
