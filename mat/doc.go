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

// Package mat provides 2×2, 3×3 and 4×4 column-major matrices over the
// lanes scalar kernel, plus the affine transform builders used by
// rendering code.
//
// # Conventions
//
// Matrices are stored as columns: Mat4.Cols[3] holds the translation of an
// affine transform. Vectors are columns and are multiplied on the right, so
// a.Mul(b) applies b first and a second:
//
//	model := mat.FromTranslation(pos).Mul(mat.FromAxisAngle4(axis, angle)).Mul(mat.FromScale4(s))
//	// scales, then rotates, then translates
//
// Every builder follows this order, including LookAt and the projection
// builders in package proj.
//
// Determinant and Inverse use closed-form cofactor expansion with no
// branches, so they run unchanged on wide lanes. Inverse divides by the
// determinant without checking it: a singular matrix produces Inf or NaN
// components rather than an error.
package mat
