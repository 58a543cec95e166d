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

package mat

import (
	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/vec"
)

// Splat3 copies m into every lane of W, for example to apply one
// transform to a batch of vectors.
func Splat3[E lanes.Scalar[E], W lanes.Wide[W, E]](m Mat3[E]) Mat3[W] {
	var r Mat3[W]
	for i, c := range m.Cols {
		r.Cols[i] = vec.Broadcast3[E, W](c)
	}
	return r
}

// Splat4 copies m into every lane of W.
func Splat4[E lanes.Scalar[E], W lanes.Wide[W, E]](m Mat4[E]) Mat4[W] {
	var r Mat4[W]
	for i, c := range m.Cols {
		r.Cols[i] = vec.Broadcast4[E, W](c)
	}
	return r
}

// Extract3 returns matrix instance i of a wide matrix.
func Extract3[E lanes.Scalar[E], W lanes.Wide[W, E]](m Mat3[W], i int) Mat3[E] {
	var r Mat3[E]
	for j, c := range m.Cols {
		r.Cols[j] = vec.Extract3[E](c, i)
	}
	return r
}

// Extract4 returns matrix instance i of a wide matrix.
func Extract4[E lanes.Scalar[E], W lanes.Wide[W, E]](m Mat4[W], i int) Mat4[E] {
	var r Mat4[E]
	for j, c := range m.Cols {
		r.Cols[j] = vec.Extract4[E](c, i)
	}
	return r
}
