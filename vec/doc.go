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

// Package vec provides 2-, 3- and 4-component vectors generic over the
// lanes scalar kernel.
//
// The same Vec3 code runs on one instance (Vec3[lanes.F32]) or on a batch
// of independent instances laid out structure-of-arrays (Vec3[lanes.F32x8]
// holds eight vectors: X holds the eight x components, and so on). Every
// method is lockstep: lane i of the result depends only on lane i of the
// operands. Dot on a wide vector returns eight dot products, not their sum.
//
// Cross-lane operations live in wide.go under explicit names
// (Extract3, Broadcast3, Pack3, HorizontalSum3, ...).
//
// # Error policy
//
// Vector math never panics and never returns an error. Normalizing a zero
// vector divides by zero and yields NaN components; callers that need a
// fallback check the length or use Select3 with a mask.
package vec
