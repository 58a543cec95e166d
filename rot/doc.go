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

// Package rot provides unit quaternions and 3-D rotors over the lanes
// scalar kernel.
//
// Quat and Rotor3 describe the same rotations in two algebras. Both
// compose the way matrices do: p.Mul(q) applies q first, and
// ToMat3(p.Mul(q)) equals ToMat3(p).Mul(ToMat3(q)) up to rounding.
//
// Rotation methods assume unit magnitude. Nothing in this package
// normalizes implicitly: Lerp, Add and Scale legitimately produce non-unit
// values, and converting one of those to a matrix or applying it to a
// vector gives an unspecified (scaled, sheared) result. Call Normalize
// explicitly where it is needed.
//
// Slerp and Nlerp take the shortest path: when the operands lie in opposite
// hemispheres the second operand is negated lane by lane before
// interpolating. Slerp switches to Nlerp where the cosine of the angle is
// above SlerpThreshold.
package rot
