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

// Package proj builds right-handed projection matrices for cameras that
// look down -Z.
//
// Perspective and Orthographic map view-space depth to [0, 1] (Vulkan,
// Metal, Direct3D, WebGPU). The GL variants map it to [-1, 1]. Every builder
// is pure and returns a new mat.Mat4.
//
// Invalid parameters are caller errors. With lanes debug assertions enabled
// the builders panic with a *lanes.AssertionError; otherwise they return
// whatever the arithmetic produces, usually NaN or infinite entries.
package proj

import (
	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/mat"
	"github.com/ajroetker/go-lanes/vec"
)

func checkPerspective[S lanes.Scalar[S]](op string, fovY, aspect, near, far S) {
	if !lanes.DebugAssertions() {
		return
	}
	var z S
	lanes.Assert(fovY.Gt(z).All(), op, "field of view must be positive")
	lanes.Assert(aspect.Ne(z).All(), op, "aspect ratio must be non-zero")
	lanes.Assert(near.Lt(far).All(), op, "near must be less than far")
}

func checkOrthographic[S lanes.Scalar[S]](op string, left, right, bottom, top, near, far S) {
	if !lanes.DebugAssertions() {
		return
	}
	lanes.Assert(left.Ne(right).All(), op, "left and right must differ")
	lanes.Assert(bottom.Ne(top).All(), op, "bottom and top must differ")
	lanes.Assert(near.Ne(far).All(), op, "near and far must differ")
}

// focal returns cot(fovY/2).
func focal[S lanes.Scalar[S]](fovY S) S {
	h := fovY.Mul(fovY.Splat(0.5))
	return h.Cos().Div(h.Sin())
}

// Perspective returns a projection with vertical field of view fovY
// radians, aspect = width/height and clip planes at distances near and far,
// mapping depth near..far to 0..1.
func Perspective[S lanes.Scalar[S]](fovY, aspect, near, far S) mat.Mat4[S] {
	checkPerspective("proj.Perspective", fovY, aspect, near, far)
	f := focal(fovY)
	var z S
	nf := near.Sub(far).Recip()
	return mat.Mat4[S]{Cols: [4]vec.Vec4[S]{
		{X: f.Div(aspect), Y: z, Z: z, W: z},
		{X: z, Y: f, Z: z, W: z},
		{X: z, Y: z, Z: far.Mul(nf), W: z.Splat(-1)},
		{X: z, Y: z, Z: near.Mul(far).Mul(nf), W: z},
	}}
}

// PerspectiveGL is Perspective with depth mapped to -1..1.
func PerspectiveGL[S lanes.Scalar[S]](fovY, aspect, near, far S) mat.Mat4[S] {
	checkPerspective("proj.PerspectiveGL", fovY, aspect, near, far)
	f := focal(fovY)
	var z S
	nf := near.Sub(far).Recip()
	return mat.Mat4[S]{Cols: [4]vec.Vec4[S]{
		{X: f.Div(aspect), Y: z, Z: z, W: z},
		{X: z, Y: f, Z: z, W: z},
		{X: z, Y: z, Z: far.Add(near).Mul(nf), W: z.Splat(-1)},
		{X: z, Y: z, Z: far.Add(far).Mul(near).Mul(nf), W: z},
	}}
}

// PerspectiveInfinite is Perspective with the far plane at infinity:
// depth near..∞ maps to 0..1.
func PerspectiveInfinite[S lanes.Scalar[S]](fovY, aspect, near S) mat.Mat4[S] {
	var z S
	inf := z.Splat(1).Div(z)
	checkPerspective("proj.PerspectiveInfinite", fovY, aspect, near, inf)
	f := focal(fovY)
	return mat.Mat4[S]{Cols: [4]vec.Vec4[S]{
		{X: f.Div(aspect), Y: z, Z: z, W: z},
		{X: z, Y: f, Z: z, W: z},
		{X: z, Y: z, Z: z.Splat(-1), W: z.Splat(-1)},
		{X: z, Y: z, Z: near.Neg(), W: z},
	}}
}

// Orthographic returns a parallel projection of the box [left, right] x
// [bottom, top] x [-near, -far] onto the unit cube with depth 0..1.
func Orthographic[S lanes.Scalar[S]](left, right, bottom, top, near, far S) mat.Mat4[S] {
	checkOrthographic("proj.Orthographic", left, right, bottom, top, near, far)
	var z S
	nf := near.Sub(far).Recip()
	c0, c1, c3 := orthoXY(left, right, bottom, top)
	return mat.Mat4[S]{Cols: [4]vec.Vec4[S]{
		c0,
		c1,
		{X: z, Y: z, Z: nf, W: z},
		{X: c3.X, Y: c3.Y, Z: near.Mul(nf), W: z.Splat(1)},
	}}
}

// OrthographicGL is Orthographic with depth mapped to -1..1.
func OrthographicGL[S lanes.Scalar[S]](left, right, bottom, top, near, far S) mat.Mat4[S] {
	checkOrthographic("proj.OrthographicGL", left, right, bottom, top, near, far)
	var z S
	nf := near.Sub(far).Recip()
	c0, c1, c3 := orthoXY(left, right, bottom, top)
	return mat.Mat4[S]{Cols: [4]vec.Vec4[S]{
		c0,
		c1,
		{X: z, Y: z, Z: nf.Add(nf), W: z},
		{X: c3.X, Y: c3.Y, Z: far.Add(near).Mul(nf), W: z.Splat(1)},
	}}
}

// orthoXY returns the x and y columns and the x, y translation shared by
// both depth conventions.
func orthoXY[S lanes.Scalar[S]](left, right, bottom, top S) (c0, c1 vec.Vec4[S], t vec.Vec2[S]) {
	var z S
	rl := right.Sub(left).Recip()
	tb := top.Sub(bottom).Recip()
	c0 = vec.Vec4[S]{X: rl.Add(rl), Y: z, Z: z, W: z}
	c1 = vec.Vec4[S]{X: z, Y: tb.Add(tb), Z: z, W: z}
	t = vec.Vec2[S]{
		X: right.Add(left).Mul(rl).Neg(),
		Y: top.Add(bottom).Mul(tb).Neg(),
	}
	return c0, c1, t
}
