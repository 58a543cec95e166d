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
	"fmt"

	"github.com/ajroetker/go-lanes/lanes"
)

// Element is the set of lane types bulk kernels accept.
type Element[S any] interface {
	lanes.Scalar[S]
	lanes.F32 | lanes.F64
}

// RuntimeInfo describes the element-wise backend chosen at init.
type RuntimeInfo struct {
	// Backend is "vek", "archsimd" or "generic".
	Backend string
	// Features lists CPU features the backend reports using.
	Features []string
	// Accelerated is true when the backend uses SIMD instructions.
	Accelerated bool
}

var info = RuntimeInfo{Backend: "generic"}

// Info returns the active element-wise backend.
func Info() RuntimeInfo {
	return info
}

// Element-wise kernels, replaced at init by faster backends.
var (
	addF32   = addGeneric[lanes.F32]
	addF64   = addGeneric[lanes.F64]
	subF32   = subGeneric[lanes.F32]
	subF64   = subGeneric[lanes.F64]
	mulF32   = mulGeneric[lanes.F32]
	mulF64   = mulGeneric[lanes.F64]
	scaleF32 = scaleGeneric[lanes.F32]
	scaleF64 = scaleGeneric[lanes.F64]
)

func checkLen(op string, want int, got ...int) {
	for _, n := range got {
		if n != want {
			panic(fmt.Sprintf("%s: slice length %d, want %d", op, n, want))
		}
	}
}

// Add performs dst[i] += s[i].
func Add[S Element[S]](dst, s []S) {
	checkLen("bulk.Add", len(dst), len(s))
	switch d := any(dst).(type) {
	case []lanes.F32:
		addF32(d, any(s).([]lanes.F32))
	case []lanes.F64:
		addF64(d, any(s).([]lanes.F64))
	}
}

// Sub performs dst[i] -= s[i].
func Sub[S Element[S]](dst, s []S) {
	checkLen("bulk.Sub", len(dst), len(s))
	switch d := any(dst).(type) {
	case []lanes.F32:
		subF32(d, any(s).([]lanes.F32))
	case []lanes.F64:
		subF64(d, any(s).([]lanes.F64))
	}
}

// Mul performs dst[i] *= s[i].
func Mul[S Element[S]](dst, s []S) {
	checkLen("bulk.Mul", len(dst), len(s))
	switch d := any(dst).(type) {
	case []lanes.F32:
		mulF32(d, any(s).([]lanes.F32))
	case []lanes.F64:
		mulF64(d, any(s).([]lanes.F64))
	}
}

// Scale performs dst[i] *= a.
func Scale[S Element[S]](dst []S, a S) {
	switch d := any(dst).(type) {
	case []lanes.F32:
		scaleF32(d, any(a).(lanes.F32))
	case []lanes.F64:
		scaleF64(d, any(a).(lanes.F64))
	}
}

// Sum adds s in eight interleaved accumulators, element i going to
// accumulator i%8, and combines them pairwise. The order is fixed, so the
// result is the same on every backend and platform.
func Sum[S Element[S]](s []S) S {
	var acc lanes.X8[S]
	lanes.ProcessWithTail(len(s), 8,
		func(off int) {
			acc = acc.Add(lanes.LoadX8(s[off:]))
		},
		func(off, count int) {
			acc = acc.Add(lanes.LoadX8(s[off : off+count]))
		},
	)
	return acc.ReduceSum()
}

func addGeneric[S Element[S]](dst, s []S) {
	lanes.ProcessWithTail(len(dst), 8,
		func(off int) {
			lanes.LoadX8(dst[off:]).Add(lanes.LoadX8(s[off:])).Store(dst[off:])
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				dst[i] = dst[i].Add(s[i])
			}
		},
	)
}

func subGeneric[S Element[S]](dst, s []S) {
	lanes.ProcessWithTail(len(dst), 8,
		func(off int) {
			lanes.LoadX8(dst[off:]).Sub(lanes.LoadX8(s[off:])).Store(dst[off:])
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				dst[i] = dst[i].Sub(s[i])
			}
		},
	)
}

func mulGeneric[S Element[S]](dst, s []S) {
	lanes.ProcessWithTail(len(dst), 8,
		func(off int) {
			lanes.LoadX8(dst[off:]).Mul(lanes.LoadX8(s[off:])).Store(dst[off:])
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				dst[i] = dst[i].Mul(s[i])
			}
		},
	)
}

func scaleGeneric[S Element[S]](dst []S, a S) {
	var w lanes.X8[S]
	w = w.Broadcast(a)
	lanes.ProcessWithTail(len(dst), 8,
		func(off int) {
			lanes.LoadX8(dst[off:]).Mul(w).Store(dst[off:])
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				dst[i] = dst[i].Mul(a)
			}
		},
	)
}
