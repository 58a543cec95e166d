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

package vec

import "github.com/ajroetker/go-lanes/lanes"

// Cross-lane helpers for wide vectors. These are the only functions in the
// package whose results mix lanes. E is the lane element type and W the
// batch type, so W is inferred from the argument:
//
//	v := vec.Broadcast3[lanes.F32, lanes.F32x8](p)
//	p2 := vec.Extract3[lanes.F32](v, 5)
//	total := vec.HorizontalSum3[lanes.F32](v)

// Extract2 returns instance i of v.
func Extract2[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec2[W], i int) Vec2[E] {
	return Vec2[E]{v.X.Lane(i), v.Y.Lane(i)}
}

// Extract3 returns instance i of v. It panics if i is not a lane index.
func Extract3[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec3[W], i int) Vec3[E] {
	return Vec3[E]{v.X.Lane(i), v.Y.Lane(i), v.Z.Lane(i)}
}

// Extract4 returns instance i of v.
func Extract4[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec4[W], i int) Vec4[E] {
	return Vec4[E]{v.X.Lane(i), v.Y.Lane(i), v.Z.Lane(i), v.W.Lane(i)}
}

// Broadcast2 returns v copied into every lane.
func Broadcast2[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec2[E]) Vec2[W] {
	var w W
	return Vec2[W]{w.Broadcast(v.X), w.Broadcast(v.Y)}
}

// Broadcast3 returns v copied into every lane.
func Broadcast3[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec3[E]) Vec3[W] {
	var w W
	return Vec3[W]{w.Broadcast(v.X), w.Broadcast(v.Y), w.Broadcast(v.Z)}
}

// Broadcast4 returns v copied into every lane.
func Broadcast4[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec4[E]) Vec4[W] {
	var w W
	return Vec4[W]{w.Broadcast(v.X), w.Broadcast(v.Y), w.Broadcast(v.Z), w.Broadcast(v.W)}
}

// Pack2 places vs[i] in lane i. Lanes beyond len(vs) are zero and
// elements beyond the lane count are ignored.
func Pack2[E lanes.Scalar[E], W lanes.Wide[W, E]](vs []Vec2[E]) Vec2[W] {
	var r Vec2[W]
	for i := range min(len(vs), r.X.NumLanes()) {
		r.X = r.X.WithLane(i, vs[i].X)
		r.Y = r.Y.WithLane(i, vs[i].Y)
	}
	return r
}

// Pack3 places vs[i] in lane i (array-of-structures to
// structure-of-arrays). Lanes beyond len(vs) are zero and elements beyond
// the lane count are ignored.
func Pack3[E lanes.Scalar[E], W lanes.Wide[W, E]](vs []Vec3[E]) Vec3[W] {
	var r Vec3[W]
	for i := range min(len(vs), r.X.NumLanes()) {
		r.X = r.X.WithLane(i, vs[i].X)
		r.Y = r.Y.WithLane(i, vs[i].Y)
		r.Z = r.Z.WithLane(i, vs[i].Z)
	}
	return r
}

func Pack4[E lanes.Scalar[E], W lanes.Wide[W, E]](vs []Vec4[E]) Vec4[W] {
	var r Vec4[W]
	for i := range min(len(vs), r.X.NumLanes()) {
		r.X = r.X.WithLane(i, vs[i].X)
		r.Y = r.Y.WithLane(i, vs[i].Y)
		r.Z = r.Z.WithLane(i, vs[i].Z)
		r.W = r.W.WithLane(i, vs[i].W)
	}
	return r
}

// Unpack3 writes lane i of v to dst[i] and returns the number written.
func Unpack3[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec3[W], dst []Vec3[E]) int {
	n := min(len(dst), v.X.NumLanes())
	for i := range n {
		dst[i] = Extract3[E](v, i)
	}
	return n
}

func Unpack4[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec4[W], dst []Vec4[E]) int {
	n := min(len(dst), v.X.NumLanes())
	for i := range n {
		dst[i] = Extract4[E](v, i)
	}
	return n
}

// HorizontalSum2 returns the sum of all instances.
func HorizontalSum2[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec2[W]) Vec2[E] {
	return Vec2[E]{v.X.ReduceSum(), v.Y.ReduceSum()}
}

// HorizontalSum3 returns the sum of all instances, adding lanes pairwise.
func HorizontalSum3[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec3[W]) Vec3[E] {
	return Vec3[E]{v.X.ReduceSum(), v.Y.ReduceSum(), v.Z.ReduceSum()}
}

func HorizontalSum4[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec4[W]) Vec4[E] {
	return Vec4[E]{v.X.ReduceSum(), v.Y.ReduceSum(), v.Z.ReduceSum(), v.W.ReduceSum()}
}

// HorizontalMin3 returns the component-wise minimum over all instances,
// for example the lower corner of a bounding box.
func HorizontalMin3[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec3[W]) Vec3[E] {
	return Vec3[E]{v.X.ReduceMin(), v.Y.ReduceMin(), v.Z.ReduceMin()}
}

// HorizontalMax3 returns the component-wise maximum over all instances.
func HorizontalMax3[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec3[W]) Vec3[E] {
	return Vec3[E]{v.X.ReduceMax(), v.Y.ReduceMax(), v.Z.ReduceMax()}
}

func HorizontalMin2[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec2[W]) Vec2[E] {
	return Vec2[E]{v.X.ReduceMin(), v.Y.ReduceMin()}
}

func HorizontalMax2[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec2[W]) Vec2[E] {
	return Vec2[E]{v.X.ReduceMax(), v.Y.ReduceMax()}
}

func HorizontalMin4[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec4[W]) Vec4[E] {
	return Vec4[E]{v.X.ReduceMin(), v.Y.ReduceMin(), v.Z.ReduceMin(), v.W.ReduceMin()}
}

func HorizontalMax4[E lanes.Scalar[E], W lanes.Wide[W, E]](v Vec4[W]) Vec4[E] {
	return Vec4[E]{v.X.ReduceMax(), v.Y.ReduceMax(), v.Z.ReduceMax(), v.W.ReduceMax()}
}
