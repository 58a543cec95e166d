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

//go:build !purego && amd64 && goexperiment.simd

package bulk

import (
	"simd/archsimd"

	"github.com/ajroetker/go-lanes/lanes"
)

func init() {
	if lanes.NoSimdEnv() || lanes.CurrentLevel() < lanes.DispatchAVX2 {
		return
	}
	addF32 = func(dst, s []lanes.F32) { add_AVX2_F32x8(raw32(dst), raw32(s)) }
	addF64 = func(dst, s []lanes.F64) { add_AVX2_F64x4(raw64(dst), raw64(s)) }
	subF32 = func(dst, s []lanes.F32) { sub_AVX2_F32x8(raw32(dst), raw32(s)) }
	subF64 = func(dst, s []lanes.F64) { sub_AVX2_F64x4(raw64(dst), raw64(s)) }
	mulF32 = func(dst, s []lanes.F32) { mul_AVX2_F32x8(raw32(dst), raw32(s)) }
	mulF64 = func(dst, s []lanes.F64) { mul_AVX2_F64x4(raw64(dst), raw64(s)) }
	scaleF32 = func(dst []lanes.F32, a lanes.F32) { scale_AVX2_F32x8(raw32(dst), float32(a)) }
	scaleF64 = func(dst []lanes.F64, a lanes.F64) { scale_AVX2_F64x4(raw64(dst), float64(a)) }

	info = RuntimeInfo{Backend: "archsimd", Features: []string{lanes.CurrentName()}, Accelerated: true}
	lanes.Logger().Debug("bulk: element-wise backend", "backend", info.Backend, "level", lanes.CurrentName())
}

func add_AVX2_F32x8(dst, s []float32) {
	n := len(dst)
	var i int
	for ; i+8 <= n; i += 8 {
		a := archsimd.LoadFloat32x8Slice(dst[i:])
		b := archsimd.LoadFloat32x8Slice(s[i:])
		a.Add(b).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] += s[i]
	}
}

func sub_AVX2_F32x8(dst, s []float32) {
	n := len(dst)
	var i int
	for ; i+8 <= n; i += 8 {
		a := archsimd.LoadFloat32x8Slice(dst[i:])
		b := archsimd.LoadFloat32x8Slice(s[i:])
		a.Sub(b).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] -= s[i]
	}
}

func mul_AVX2_F32x8(dst, s []float32) {
	n := len(dst)
	var i int
	for ; i+8 <= n; i += 8 {
		a := archsimd.LoadFloat32x8Slice(dst[i:])
		b := archsimd.LoadFloat32x8Slice(s[i:])
		a.Mul(b).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] *= s[i]
	}
}

func scale_AVX2_F32x8(dst []float32, a float32) {
	va := archsimd.BroadcastFloat32x8(a)
	n := len(dst)
	var i int
	for ; i+8 <= n; i += 8 {
		archsimd.LoadFloat32x8Slice(dst[i:]).Mul(va).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] *= a
	}
}

func add_AVX2_F64x4(dst, s []float64) {
	n := len(dst)
	var i int
	for ; i+4 <= n; i += 4 {
		a := archsimd.LoadFloat64x4Slice(dst[i:])
		b := archsimd.LoadFloat64x4Slice(s[i:])
		a.Add(b).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] += s[i]
	}
}

func sub_AVX2_F64x4(dst, s []float64) {
	n := len(dst)
	var i int
	for ; i+4 <= n; i += 4 {
		a := archsimd.LoadFloat64x4Slice(dst[i:])
		b := archsimd.LoadFloat64x4Slice(s[i:])
		a.Sub(b).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] -= s[i]
	}
}

func mul_AVX2_F64x4(dst, s []float64) {
	n := len(dst)
	var i int
	for ; i+4 <= n; i += 4 {
		a := archsimd.LoadFloat64x4Slice(dst[i:])
		b := archsimd.LoadFloat64x4Slice(s[i:])
		a.Mul(b).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] *= s[i]
	}
}

func scale_AVX2_F64x4(dst []float64, a float64) {
	va := archsimd.BroadcastFloat64x4(a)
	n := len(dst)
	var i int
	for ; i+4 <= n; i += 4 {
		archsimd.LoadFloat64x4Slice(dst[i:]).Mul(va).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] *= a
	}
}
