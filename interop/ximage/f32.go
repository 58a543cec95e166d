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

// Package ximage converts between go-lanes values and the array types of
// golang.org/x/image/math/f32 and f64.
//
// The conversions only relabel components. x/image matrices are row-major
// (m[r*n+c]) while mat matrices are column-major, so matrix conversions
// re-index; they never round or rescale. Quaternions map to Vec4 as
// (x, y, z, w) and rotors as (s, xy, xz, yz).
package ximage

import (
	"golang.org/x/image/math/f32"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/mat"
	"github.com/ajroetker/go-lanes/rot"
	"github.com/ajroetker/go-lanes/vec"
)

func Vec2FromF32(v f32.Vec2) vec.Vec2f { return vec.Vec2f{X: lanes.F32(v[0]), Y: lanes.F32(v[1])} }
func Vec3FromF32(v f32.Vec3) vec.Vec3f { return vec.Vec3f{X: lanes.F32(v[0]), Y: lanes.F32(v[1]), Z: lanes.F32(v[2])} }
func Vec4FromF32(v f32.Vec4) vec.Vec4f {
	return vec.Vec4f{X: lanes.F32(v[0]), Y: lanes.F32(v[1]), Z: lanes.F32(v[2]), W: lanes.F32(v[3])}
}

func Vec2ToF32(v vec.Vec2f) f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }
func Vec3ToF32(v vec.Vec3f) f32.Vec3 { return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }
func Vec4ToF32(v vec.Vec4f) f32.Vec4 { return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)} }

// Mat3FromF32 converts a row-major f32.Mat3.
func Mat3FromF32(m f32.Mat3) mat.Mat3f {
	var r mat.Mat3f
	for c := range 3 {
		r.Cols[c] = vec.Vec3f{X: lanes.F32(m[c]), Y: lanes.F32(m[3+c]), Z: lanes.F32(m[6+c])}
	}
	return r
}

func Mat3ToF32(m mat.Mat3f) f32.Mat3 {
	var r f32.Mat3
	for c, col := range m.Cols {
		r[c], r[3+c], r[6+c] = float32(col.X), float32(col.Y), float32(col.Z)
	}
	return r
}

// Mat4FromF32 converts a row-major f32.Mat4.
func Mat4FromF32(m f32.Mat4) mat.Mat4f {
	var r mat.Mat4f
	for c := range 4 {
		r.Cols[c] = vec.Vec4f{X: lanes.F32(m[c]), Y: lanes.F32(m[4+c]), Z: lanes.F32(m[8+c]), W: lanes.F32(m[12+c])}
	}
	return r
}

func Mat4ToF32(m mat.Mat4f) f32.Mat4 {
	var r f32.Mat4
	for c, col := range m.Cols {
		r[c], r[4+c], r[8+c], r[12+c] = float32(col.X), float32(col.Y), float32(col.Z), float32(col.W)
	}
	return r
}

// Aff3FromF32 expands a 2D affine transform to a Mat3 with last row
// (0, 0, 1).
func Aff3FromF32(a f32.Aff3) mat.Mat3f {
	return mat.FromCols3(
		vec.Vec3f{X: lanes.F32(a[0]), Y: lanes.F32(a[3])},
		vec.Vec3f{X: lanes.F32(a[1]), Y: lanes.F32(a[4])},
		vec.Vec3f{X: lanes.F32(a[2]), Y: lanes.F32(a[5]), Z: 1},
	)
}

// Aff3ToF32 drops the last row of m, which is assumed to be (0, 0, 1).
func Aff3ToF32(m mat.Mat3f) f32.Aff3 {
	c := m.Cols
	return f32.Aff3{
		float32(c[0].X), float32(c[1].X), float32(c[2].X),
		float32(c[0].Y), float32(c[1].Y), float32(c[2].Y),
	}
}

func QuatFromF32(v f32.Vec4) rot.Quatf { return rot.FromVec4(Vec4FromF32(v)) }
func QuatToF32(q rot.Quatf) f32.Vec4   { return Vec4ToF32(q.Vec4()) }

func RotorFromF32(v f32.Vec4) rot.Rotor3f { return rot.RotorFromVec4(Vec4FromF32(v)) }
func RotorToF32(r rot.Rotor3f) f32.Vec4   { return Vec4ToF32(r.Vec4()) }
