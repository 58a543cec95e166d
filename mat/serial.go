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

package mat

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/internal/fields"
	"github.com/ajroetker/go-lanes/vec"
)

// Matrices encode as a sequence of columns, each column a sequence of
// components: [[m00, m10], [m01, m11]] for Mat2.

func (m Mat2[S]) MarshalJSON() ([]byte, error) { return json.Marshal(m.Cols) }
func (m Mat3[S]) MarshalJSON() ([]byte, error) { return json.Marshal(m.Cols) }
func (m Mat4[S]) MarshalJSON() ([]byte, error) { return json.Marshal(m.Cols) }

func (m *Mat2[S]) UnmarshalJSON(data []byte) error {
	return fields.UnmarshalJSON[vec.Vec2[S]]("mat.Mat2", data, &m.Cols[0], &m.Cols[1])
}

func (m *Mat3[S]) UnmarshalJSON(data []byte) error {
	return fields.UnmarshalJSON[vec.Vec3[S]]("mat.Mat3", data, &m.Cols[0], &m.Cols[1], &m.Cols[2])
}

func (m *Mat4[S]) UnmarshalJSON(data []byte) error {
	return fields.UnmarshalJSON[vec.Vec4[S]]("mat.Mat4", data, &m.Cols[0], &m.Cols[1], &m.Cols[2], &m.Cols[3])
}

func (m Mat2[S]) MarshalYAML() (any, error) { return m.Cols, nil }
func (m Mat3[S]) MarshalYAML() (any, error) { return m.Cols, nil }
func (m Mat4[S]) MarshalYAML() (any, error) { return m.Cols, nil }

func (m *Mat2[S]) UnmarshalYAML(n *yaml.Node) error {
	return fields.UnmarshalYAML[vec.Vec2[S]]("mat.Mat2", n, &m.Cols[0], &m.Cols[1])
}

func (m *Mat3[S]) UnmarshalYAML(n *yaml.Node) error {
	return fields.UnmarshalYAML[vec.Vec3[S]]("mat.Mat3", n, &m.Cols[0], &m.Cols[1], &m.Cols[2])
}

func (m *Mat4[S]) UnmarshalYAML(n *yaml.Node) error {
	return fields.UnmarshalYAML[vec.Vec4[S]]("mat.Mat4", n, &m.Cols[0], &m.Cols[1], &m.Cols[2], &m.Cols[3])
}
