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
	"github.com/ajroetker/go-lanes/vec"
)

// ExtractQuat returns quaternion instance i of a wide quaternion.
func ExtractQuat[E lanes.Scalar[E], W lanes.Wide[W, E]](q Quat[W], i int) Quat[E] {
	return FromVec4(vec.Extract4[E](q.Vec4(), i))
}

// BroadcastQuat copies q into every lane.
func BroadcastQuat[E lanes.Scalar[E], W lanes.Wide[W, E]](q Quat[E]) Quat[W] {
	return FromVec4(vec.Broadcast4[E, W](q.Vec4()))
}

// PackQuat places qs[i] in lane i; missing lanes are zero.
func PackQuat[E lanes.Scalar[E], W lanes.Wide[W, E]](qs []Quat[E]) Quat[W] {
	var r Quat[W]
	for i := range min(len(qs), r.X.NumLanes()) {
		r.X = r.X.WithLane(i, qs[i].X)
		r.Y = r.Y.WithLane(i, qs[i].Y)
		r.Z = r.Z.WithLane(i, qs[i].Z)
		r.W = r.W.WithLane(i, qs[i].W)
	}
	return r
}

func ExtractRotor[E lanes.Scalar[E], W lanes.Wide[W, E]](r Rotor3[W], i int) Rotor3[E] {
	return RotorFromVec4(vec.Extract4[E](r.Vec4(), i))
}

func BroadcastRotor[E lanes.Scalar[E], W lanes.Wide[W, E]](r Rotor3[E]) Rotor3[W] {
	return RotorFromVec4(vec.Broadcast4[E, W](r.Vec4()))
}
