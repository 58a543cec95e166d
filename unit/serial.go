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

package unit

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Lengths and scale factors encode as their bare value; the unit is a type
// and is not written.

func (l Length[U, S]) MarshalJSON() ([]byte, error)      { return json.Marshal(l.v) }
func (l *Length[U, S]) UnmarshalJSON(data []byte) error  { return json.Unmarshal(data, &l.v) }
func (l Length[U, S]) MarshalYAML() (any, error)         { return l.v, nil }
func (l *Length[U, S]) UnmarshalYAML(n *yaml.Node) error { return n.Decode(&l.v) }

func (s Scale[Src, Dst, S]) MarshalJSON() ([]byte, error)      { return json.Marshal(s.v) }
func (s *Scale[Src, Dst, S]) UnmarshalJSON(data []byte) error  { return json.Unmarshal(data, &s.v) }
func (s Scale[Src, Dst, S]) MarshalYAML() (any, error)         { return s.v, nil }
func (s *Scale[Src, Dst, S]) UnmarshalYAML(n *yaml.Node) error { return n.Decode(&s.v) }
