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

// Package interp provides interpolation helpers generic over every type
// with a Lerp, Slerp or Nlerp method: vectors, matrices, quaternions and
// rotors, scalar or wide. None of them clamp t, so callers can extrapolate.
package interp

import "github.com/ajroetker/go-lanes/lanes"

// Lerper is implemented by types that interpolate linearly with a
// parameter of type S: vec.Vec3[S], mat.Mat4[S], rot.Quat[S] and so on.
type Lerper[T, S any] interface {
	Lerp(b T, t S) T
}

// Spherical is implemented by rotation types: rot.Quat and rot.Rotor3.
type Spherical[T, S any] interface {
	Lerper[T, S]
	Slerp(b T, t S) T
	Nlerp(b T, t S) T
}

// Lerp returns a.Lerp(b, t). The result is exactly a at t = 0 and exactly b
// at t = 1.
func Lerp[T Lerper[T, S], S lanes.Scalar[S]](a, b T, t S) T {
	return a.Lerp(b, t)
}

// LerpScalar interpolates two scalars as a*(1-t) + b*t.
func LerpScalar[S lanes.Scalar[S]](a, b, t S) S {
	return a.Mul(t.Splat(1).Sub(t)).Add(b.Mul(t))
}

// InverseLerp returns the t for which LerpScalar(a, b, t) == v. a == b
// yields NaN or infinity.
func InverseLerp[S lanes.Scalar[S]](a, b, v S) S {
	return v.Sub(a).Div(b.Sub(a))
}

// Remap maps v from the range [a0, a1] onto [b0, b1] without clamping.
func Remap[S lanes.Scalar[S]](a0, a1, b0, b1, v S) S {
	return LerpScalar(b0, b1, InverseLerp(a0, a1, v))
}

// Slerp interpolates two unit rotations along the shortest arc.
func Slerp[T Spherical[T, S], S lanes.Scalar[S]](a, b T, t S) T {
	return a.Slerp(b, t)
}

// Nlerp interpolates two unit rotations linearly and renormalizes.
func Nlerp[T Spherical[T, S], S lanes.Scalar[S]](a, b T, t S) T {
	return a.Nlerp(b, t)
}

// Smoothstep returns 0 below edge0, 1 above edge1 and the Hermite curve
// 3t² - 2t³ in between. NaN input stays NaN.
func Smoothstep[S lanes.Scalar[S]](edge0, edge1, x S) S {
	var z S
	t := lanes.Clamp(InverseLerp(edge0, edge1, x), z, z.Splat(1))
	return t.Mul(t).Mul(z.Splat(3).Sub(t.Add(t)))
}
