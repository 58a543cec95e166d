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

package ximage

import (
	"golang.org/x/image/math/f64"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/mat"
	"github.com/ajroetker/go-lanes/rot"
	"github.com/ajroetker/go-lanes/vec"
)

func Vec2FromF64(v f64.Vec2) vec.Vec2d { return vec.Vec2d{X: lanes.F64(v[0]), Y: lanes.F64(v[1])} }
func Vec3FromF64(v f64.Vec3) vec.Vec3d { return vec.Vec3d{X: lanes.F64(v[0]), Y: lanes.F64(v[1]), Z: lanes.F64(v[2])} }
func Vec4FromF64(v f64.Vec4) vec.Vec4d {
	return vec.Vec4d{X: lanes.F64(v[0]), Y: lanes.F64(v[1]), Z: lanes.F64(v[2]), W: lanes.F64(v[3])}
}

func Vec2ToF64(v vec.Vec2d) f64.Vec2 { return f64.Vec2{float64(v.X), float64(v.Y)} }
func Vec3ToF64(v vec.Vec3d) f64.Vec3 { return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)} }
func Vec4ToF64(v vec.Vec4d) f64.Vec4 { return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)} }

// Mat3FromF64 converts a row-major f64.Mat3.
func Mat3FromF64(m f64.Mat3) mat.Mat3d {
	var r mat.Mat3d
	for c := range 3 {
		r.Cols[c] = vec.Vec3d{X: lanes.F64(m[c]), Y: lanes.F64(m[3+c]), Z: lanes.F64(m[6+c])}
	}
	return r
}

func Mat3ToF64(m mat.Mat3d) f64.Mat3 {
	var r f64.Mat3
	for c, col := range m.Cols {
		r[c], r[3+c], r[6+c] = float64(col.X), float64(col.Y), float64(col.Z)
	}
	return r
}

// Mat4FromF64 converts a row-major f64.Mat4.
func Mat4FromF64(m f64.Mat4) mat.Mat4d {
	var r mat.Mat4d
	for c := range 4 {
		r.Cols[c] = vec.Vec4d{X: lanes.F64(m[c]), Y: lanes.F64(m[4+c]), Z: lanes.F64(m[8+c]), W: lanes.F64(m[12+c])}
	}
	return r
}

func Mat4ToF64(m mat.Mat4d) f64.Mat4 {
	var r f64.Mat4
	for c, col := range m.Cols {
		r[c], r[4+c], r[8+c], r[12+c] = float64(col.X), float64(col.Y), float64(col.Z), float64(col.W)
	}
	return r
}

// Aff3FromF64 expands a 2D affine transform to a Mat3 with last row
// (0, 0, 1).
func Aff3FromF64(a f64.Aff3) mat.Mat3d {
	return mat.FromCols3(
		vec.Vec3d{X: lanes.F64(a[0]), Y: lanes.F64(a[3])},
		vec.Vec3d{X: lanes.F64(a[1]), Y: lanes.F64(a[4])},
		vec.Vec3d{X: lanes.F64(a[2]), Y: lanes.F64(a[5]), Z: 1},
	)
}

// Aff3ToF64 drops the last row of m, which is assumed to be (0, 0, 1).
func Aff3ToF64(m mat.Mat3d) f64.Aff3 {
	c := m.Cols
	return f64.Aff3{
		float64(c[0].X), float64(c[1].X), float64(c[2].X),
		float64(c[0].Y), float64(c[1].Y), float64(c[2].Y),
	}
}

func QuatFromF64(v f64.Vec4) rot.Quatd { return rot.FromVec4(Vec4FromF64(v)) }
func QuatToF64(q rot.Quatd) f64.Vec4   { return Vec4ToF64(q.Vec4()) }

func RotorFromF64(v f64.Vec4) rot.Rotor3d { return rot.RotorFromVec4(Vec4FromF64(v)) }
func RotorToF64(r rot.Rotor3d) f64.Vec4   { return Vec4ToF64(r.Vec4()) }
