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

// Package fields holds the ordered-sequence encoding shared by the vector,
// matrix and rotation types.
package fields

import "errors"

// ErrComponents is returned when a decoded sequence has the wrong number
// of components for the target type.
var ErrComponents = errors.New("wrong number of components")
