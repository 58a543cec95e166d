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

package bulk

import (
	"fmt"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/mat"
	"github.com/ajroetker/go-lanes/rot"
	"github.com/ajroetker/go-lanes/vec"
)

// Vec3s is a structure-of-arrays slice of 3-vectors: element i is
// (X[i], Y[i], Z[i]).
type Vec3s[S Element[S]] struct {
	X, Y, Z []S
}

// MakeVec3s allocates n zero vectors.
func MakeVec3s[S Element[S]](n int) Vec3s[S] {
	return Vec3s[S]{X: make([]S, n), Y: make([]S, n), Z: make([]S, n)}
}

// Vec3sOf copies vs into a new Vec3s.
func Vec3sOf[S Element[S]](vs []vec.Vec3[S]) Vec3s[S] {
	r := MakeVec3s[S](len(vs))
	for i, v := range vs {
		r.Set(i, v)
	}
	return r
}

// Len returns the number of vectors. It panics if the component slices
// differ in length.
func (v Vec3s[S]) Len() int {
	checkLen("bulk.Vec3s", len(v.X), len(v.Y), len(v.Z))
	return len(v.X)
}

func (v Vec3s[S]) At(i int) vec.Vec3[S] {
	return vec.Vec3[S]{X: v.X[i], Y: v.Y[i], Z: v.Z[i]}
}

func (v Vec3s[S]) Set(i int, e vec.Vec3[S]) {
	v.X[i], v.Y[i], v.Z[i] = e.X, e.Y, e.Z
}

// batch is a lanes batch that can be stored back to a slice.
type batch[W any, S any] interface {
	lanes.Wide[W, S]
	Store(dst []S) int
}

// kernel binds a batch width to its loader.
type kernel[S Element[S], W batch[W, S]] struct {
	load func([]S) W
}

func (k kernel[S, W]) vec3(v Vec3s[S], off int) vec.Vec3[W] {
	return vec.Vec3[W]{X: k.load(v.X[off:]), Y: k.load(v.Y[off:]), Z: k.load(v.Z[off:])}
}

func store3[S Element[S], W batch[W, S]](dst Vec3s[S], off int, v vec.Vec3[W]) {
	v.X.Store(dst.X[off:])
	v.Y.Store(dst.Y[off:])
	v.Z.Store(dst.Z[off:])
}

// width returns the PreferredLanes count for S.
func width[S Element[S]]() int {
	var z S
	if _, ok := any(z).(lanes.F32); ok {
		return lanes.PreferredLanes32()
	}
	return lanes.PreferredLanes64()
}

// dispatch runs f with the widest kernel the current target prefers for S.
// The block loop lives in the kernel so the per-width code is generic.
func dispatch[S Element[S]](x8 func(kernel[S, lanes.X8[S]]), x4 func(kernel[S, lanes.X4[S]]), x2 func(kernel[S, lanes.X2[S]])) {
	switch w := width[S](); w {
	case 8:
		x8(kernel[S, lanes.X8[S]]{load: lanes.LoadX8[S]})
	case 4:
		x4(kernel[S, lanes.X4[S]]{load: lanes.LoadX4[S]})
	case 2:
		x2(kernel[S, lanes.X2[S]]{load: lanes.LoadX2[S]})
	default:
		panic(fmt.Sprintf("bulk: unsupported batch width %d", w))
	}
}

func (k kernel[S, W]) dot3(dst []S, a, b Vec3s[S]) {
	var w W
	lanes.ProcessWithTail(len(dst), w.NumLanes(),
		func(off int) {
			k.vec3(a, off).Dot(k.vec3(b, off)).Store(dst[off:])
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				dst[i] = a.At(i).Dot(b.At(i))
			}
		},
	)
}

// Dot3 stores a[i]·b[i] in dst[i].
func Dot3[S Element[S]](dst []S, a, b Vec3s[S]) {
	checkLen("bulk.Dot3", len(dst), a.Len(), b.Len())
	dispatch(
		func(k kernel[S, lanes.X8[S]]) { k.dot3(dst, a, b) },
		func(k kernel[S, lanes.X4[S]]) { k.dot3(dst, a, b) },
		func(k kernel[S, lanes.X2[S]]) { k.dot3(dst, a, b) },
	)
}

func (k kernel[S, W]) cross3(dst, a, b Vec3s[S]) {
	var w W
	lanes.ProcessWithTail(len(dst.X), w.NumLanes(),
		func(off int) {
			store3(dst, off, k.vec3(a, off).Cross(k.vec3(b, off)))
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				dst.Set(i, a.At(i).Cross(b.At(i)))
			}
		},
	)
}

// Cross3 stores a[i]×b[i] in dst. dst may alias a or b.
func Cross3[S Element[S]](dst, a, b Vec3s[S]) {
	checkLen("bulk.Cross3", dst.Len(), a.Len(), b.Len())
	dispatch(
		func(k kernel[S, lanes.X8[S]]) { k.cross3(dst, a, b) },
		func(k kernel[S, lanes.X4[S]]) { k.cross3(dst, a, b) },
		func(k kernel[S, lanes.X2[S]]) { k.cross3(dst, a, b) },
	)
}

func (k kernel[S, W]) normalize3(dst, a Vec3s[S]) {
	var w W
	lanes.ProcessWithTail(len(dst.X), w.NumLanes(),
		func(off int) {
			store3(dst, off, k.vec3(a, off).Normalize())
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				dst.Set(i, a.At(i).Normalize())
			}
		},
	)
}

// Normalize3 stores a[i] scaled to unit length in dst. Zero vectors become
// NaN. dst may alias a.
func Normalize3[S Element[S]](dst, a Vec3s[S]) {
	checkLen("bulk.Normalize3", dst.Len(), a.Len())
	dispatch(
		func(k kernel[S, lanes.X8[S]]) { k.normalize3(dst, a) },
		func(k kernel[S, lanes.X4[S]]) { k.normalize3(dst, a) },
		func(k kernel[S, lanes.X2[S]]) { k.normalize3(dst, a) },
	)
}

func transformPoints3[S Element[S], W batch[W, S]](k kernel[S, W], m mat.Mat4[S], v Vec3s[S]) {
	wm := mat.Splat4[S, W](m)
	lanes.ProcessWithTail(v.Len(), wm.Cols[0].X.NumLanes(),
		func(off int) {
			store3(v, off, wm.TransformPoint3(k.vec3(v, off)))
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				v.Set(i, m.TransformPoint3(v.At(i)))
			}
		},
	)
}

// TransformPoints3 replaces every v[i] with m applied to the point v[i]
// (w = 1, no perspective divide).
func TransformPoints3[S Element[S]](m mat.Mat4[S], v Vec3s[S]) {
	dispatch(
		func(k kernel[S, lanes.X8[S]]) { transformPoints3(k, m, v) },
		func(k kernel[S, lanes.X4[S]]) { transformPoints3(k, m, v) },
		func(k kernel[S, lanes.X2[S]]) { transformPoints3(k, m, v) },
	)
}

func rotateVectors3[S Element[S], W batch[W, S]](k kernel[S, W], q rot.Quat[S], v Vec3s[S]) {
	wq := rot.BroadcastQuat[S, W](q)
	lanes.ProcessWithTail(v.Len(), wq.W.NumLanes(),
		func(off int) {
			store3(v, off, wq.Rotate(k.vec3(v, off)))
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				v.Set(i, q.Rotate(v.At(i)))
			}
		},
	)
}

// RotateVectors3 replaces every v[i] with q.Rotate(v[i]).
func RotateVectors3[S Element[S]](q rot.Quat[S], v Vec3s[S]) {
	dispatch(
		func(k kernel[S, lanes.X8[S]]) { rotateVectors3(k, q, v) },
		func(k kernel[S, lanes.X4[S]]) { rotateVectors3(k, q, v) },
		func(k kernel[S, lanes.X2[S]]) { rotateVectors3(k, q, v) },
	)
}
