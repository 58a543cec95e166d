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

// Package bulk provides slice kernels over structure-of-arrays data.
//
// Element-wise kernels (Add, Sub, Mul, Scale) run on the fastest backend the
// build allows: vek assembly by default, archsimd on amd64 with
// GOEXPERIMENT=simd, or a portable lanes loop with the purego tag or
// LANES_NO_SIMD set. Each of these rounds every element the same way, so the
// backend never changes results.
//
// Reductions and geometric kernels (Sum, Dot3, Cross3, Normalize3,
// TransformPoints3, RotateVectors3) always run on lanes batches of
// lanes.PreferredLanes32 or PreferredLanes64 instances with a scalar tail.
// Their results equal the per-element vec, mat and rot methods bit for bit.
//
// Kernels panic when slice lengths disagree.
package bulk
