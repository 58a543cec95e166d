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

//go:build !lanes_noserial

package rot

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/internal/fields"
)

// Quaternions encode as [x, y, z, w]; rotors as [s, xy, xz, yz]; bivectors
// as [xy, xz, yz].

func (q Quat[S]) MarshalJSON() ([]byte, error) { return json.Marshal([4]S{q.X, q.Y, q.Z, q.W}) }
func (q Quat[S]) MarshalYAML() (any, error)    { return [4]S{q.X, q.Y, q.Z, q.W}, nil }

func (q *Quat[S]) UnmarshalJSON(data []byte) error {
	return fields.UnmarshalJSON("rot.Quat", data, &q.X, &q.Y, &q.Z, &q.W)
}

func (q *Quat[S]) UnmarshalYAML(n *yaml.Node) error {
	return fields.UnmarshalYAML("rot.Quat", n, &q.X, &q.Y, &q.Z, &q.W)
}

func (r Rotor3[T]) MarshalJSON() ([]byte, error) { return json.Marshal(r.components()) }
func (r Rotor3[T]) MarshalYAML() (any, error)    { return r.components(), nil }

func (r *Rotor3[T]) UnmarshalJSON(data []byte) error {
	return fields.UnmarshalJSON("rot.Rotor3", data, &r.S, &r.B.XY, &r.B.XZ, &r.B.YZ)
}

func (r *Rotor3[T]) UnmarshalYAML(n *yaml.Node) error {
	return fields.UnmarshalYAML("rot.Rotor3", n, &r.S, &r.B.XY, &r.B.XZ, &r.B.YZ)
}

func (r Rotor3[T]) components() [4]T {
	return [4]T{r.S, r.B.XY, r.B.XZ, r.B.YZ}
}

func (b Bivec3[T]) MarshalJSON() ([]byte, error) { return json.Marshal([3]T{b.XY, b.XZ, b.YZ}) }
func (b Bivec3[T]) MarshalYAML() (any, error)    { return [3]T{b.XY, b.XZ, b.YZ}, nil }

func (b *Bivec3[T]) UnmarshalJSON(data []byte) error {
	return fields.UnmarshalJSON("rot.Bivec3", data, &b.XY, &b.XZ, &b.YZ)
}

func (b *Bivec3[T]) UnmarshalYAML(n *yaml.Node) error {
	return fields.UnmarshalYAML("rot.Bivec3", n, &b.XY, &b.XZ, &b.YZ)
}
