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

package bulk

import (
	"unsafe"

	"github.com/ajroetker/go-lanes/lanes"
)

// raw32 and raw64 view lane slices as the plain float slices external
// kernels take. The element types share their underlying type.
func raw32(s []lanes.F32) []float32 {
	return unsafe.Slice((*float32)(unsafe.SliceData(s)), len(s))
}

func raw64(s []lanes.F64) []float64 {
	return unsafe.Slice((*float64)(unsafe.SliceData(s)), len(s))
}
