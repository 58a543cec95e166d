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

package fields

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalJSON decodes a JSON array into dst in order. typ names the
// destination type in errors.
func UnmarshalJSON[T any](typ string, data []byte, dst ...*T) error {
	var c []T
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("%s: %w", typ, err)
	}
	return assign(typ, c, dst)
}

// UnmarshalYAML decodes a YAML sequence node into dst in order.
func UnmarshalYAML[T any](typ string, n *yaml.Node, dst ...*T) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("%s: line %d: expected a sequence", typ, n.Line)
	}
	var c []T
	if err := n.Decode(&c); err != nil {
		return fmt.Errorf("%s: %w", typ, err)
	}
	return assign(typ, c, dst)
}

func assign[T any](typ string, c []T, dst []*T) error {
	if len(c) != len(dst) {
		return fmt.Errorf("%s: %w: got %d, want %d", typ, ErrComponents, len(c), len(dst))
	}
	for i, p := range dst {
		*p = c[i]
	}
	return nil
}
