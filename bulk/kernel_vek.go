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

//go:build !purego && !(amd64 && goexperiment.simd)

package bulk

import (
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-lanes/lanes"
)

func init() {
	if lanes.NoSimdEnv() {
		return
	}
	addF32 = func(dst, s []lanes.F32) { vek32.Add_Inplace(raw32(dst), raw32(s)) }
	addF64 = func(dst, s []lanes.F64) { vek.Add_Inplace(raw64(dst), raw64(s)) }
	subF32 = func(dst, s []lanes.F32) { vek32.Sub_Inplace(raw32(dst), raw32(s)) }
	subF64 = func(dst, s []lanes.F64) { vek.Sub_Inplace(raw64(dst), raw64(s)) }
	mulF32 = func(dst, s []lanes.F32) { vek32.Mul_Inplace(raw32(dst), raw32(s)) }
	mulF64 = func(dst, s []lanes.F64) { vek.Mul_Inplace(raw64(dst), raw64(s)) }
	scaleF32 = func(dst []lanes.F32, a lanes.F32) { vek32.MulNumber_Inplace(raw32(dst), float32(a)) }
	scaleF64 = func(dst []lanes.F64, a lanes.F64) { vek.MulNumber_Inplace(raw64(dst), float64(a)) }

	vi := vek32.Info()
	info = RuntimeInfo{Backend: "vek", Features: vi.CPUFeatures, Accelerated: vi.Acceleration}
	lanes.Logger().Debug("bulk: element-wise backend", "backend", info.Backend, "accelerated", info.Accelerated)
}
