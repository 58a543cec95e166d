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

package vec

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/internal/fields"
)

// Vectors encode as a bare sequence of components in storage order: [x, y]
// for Vec2, [x, y, z, w] for Vec4. Wide components encode as nested
// sequences of lanes.

func (a Vec2[S]) MarshalJSON() ([]byte, error) { return json.Marshal(a.Array()) }
func (a Vec3[S]) MarshalJSON() ([]byte, error) { return json.Marshal(a.Array()) }
func (a Vec4[S]) MarshalJSON() ([]byte, error) { return json.Marshal(a.Array()) }

func (a *Vec2[S]) UnmarshalJSON(data []byte) error {
	return fields.UnmarshalJSON("vec.Vec2", data, &a.X, &a.Y)
}

func (a *Vec3[S]) UnmarshalJSON(data []byte) error {
	return fields.UnmarshalJSON("vec.Vec3", data, &a.X, &a.Y, &a.Z)
}

func (a *Vec4[S]) UnmarshalJSON(data []byte) error {
	return fields.UnmarshalJSON("vec.Vec4", data, &a.X, &a.Y, &a.Z, &a.W)
}

func (a Vec2[S]) MarshalYAML() (any, error) { return a.Array(), nil }
func (a Vec3[S]) MarshalYAML() (any, error) { return a.Array(), nil }
func (a Vec4[S]) MarshalYAML() (any, error) { return a.Array(), nil }

func (a *Vec2[S]) UnmarshalYAML(n *yaml.Node) error {
	return fields.UnmarshalYAML("vec.Vec2", n, &a.X, &a.Y)
}

func (a *Vec3[S]) UnmarshalYAML(n *yaml.Node) error {
	return fields.UnmarshalYAML("vec.Vec3", n, &a.X, &a.Y, &a.Z)
}

func (a *Vec4[S]) UnmarshalYAML(n *yaml.Node) error {
	return fields.UnmarshalYAML("vec.Vec4", n, &a.X, &a.Y, &a.Z, &a.W)
}
