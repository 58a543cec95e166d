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

package lanes

// ProcessWithTail is a helper for walking arrays in batches of n lanes that
// handles both full batches and the remainder.
//
// It calls:
//   - fullFn(offset) for each full batch (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of n
//
// Example:
//
//	lanes.ProcessWithTail(len(xs), 8,
//	    func(offset int) {
//	        v := lanes.LoadX8(xs[offset:])
//	        v.Mul(v).Store(out[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            out[i] = xs[i].Mul(xs[i])
//	        }
//	    },
//	)
func ProcessWithTail(size, n int, fullFn func(offset int), tailFn func(offset, count int)) {
	if n <= 0 {
		return
	}
	fullBatches := size / n
	for i := range fullBatches {
		fullFn(i * n)
	}

	remaining := size % n
	if remaining > 0 {
		tailFn(fullBatches*n, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of n.
// This is useful for allocating buffers that will be processed in batches.
func AlignedSize(size, n int) int {
	if n <= 0 {
		return size
	}
	return ((size + n - 1) / n) * n
}

// IsAligned returns true if size is a multiple of n.
func IsAligned(size, n int) bool {
	if n <= 0 {
		return true
	}
	return size%n == 0
}
