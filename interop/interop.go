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

// Package interop exposes the raw memory of go-lanes values.
//
// Every vector, matrix and rotation type is a struct of scalar components
// with no padding and no hidden fields, so its bytes can be handed to a GPU
// buffer, a file or another library without copying. The layout is part of
// the API:
//
//	Type        Components  Order
//	Vec2        2           x y
//	Vec3        3           x y z
//	Vec4        4           x y z w
//	Mat2        4           column 0 (x y), column 1
//	Mat3        9           columns 0..2, each x y z
//	Mat4        16          columns 0..3, each x y z w
//	Quat        4           x y z w
//	Rotor3      4           s xy xz yz
//
// A component is one lane value: 4 bytes for F32, 8 for F64, and the whole
// lane batch for wide types (32 bytes for F32x8). A wide Vec3[F32x8] is
// therefore 24 float32 values grouped as eight x, eight y, eight z.
// Alignment is that of the component. All data is in host byte order.
package interop

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/mat"
	"github.com/ajroetker/go-lanes/rot"
	"github.com/ajroetker/go-lanes/vec"
)

var (
	// ErrSize is returned when a byte or component slice does not hold a
	// whole number of values.
	ErrSize = errors.New("interop: size mismatch")

	// ErrAlign is returned when a byte slice is not aligned for zero-copy
	// reinterpretation.
	ErrAlign = errors.New("interop: misaligned data")
)

// PodOf is the set of public types built from components of type E.
type PodOf[E lanes.Scalar[E]] interface {
	vec.Vec2[E] | vec.Vec3[E] | vec.Vec4[E] |
		mat.Mat2[E] | mat.Mat3[E] | mat.Mat4[E] |
		rot.Quat[E] | rot.Rotor3[E]
}

// Pod is the set of every public instantiation, scalar and wide.
type Pod interface {
	PodOf[lanes.F32] | PodOf[lanes.F64] |
		PodOf[lanes.F32x2] | PodOf[lanes.F32x4] | PodOf[lanes.F32x8] |
		PodOf[lanes.F64x2] | PodOf[lanes.F64x4] | PodOf[lanes.F64x8]
}

// Shape is one row of the layout table.
type Shape struct {
	Name       string
	Components int
	Order      string
}

// Layout lists the component layout of every shape, in the order of the
// package documentation.
var Layout = []Shape{
	{"Vec2", 2, "x y"},
	{"Vec3", 3, "x y z"},
	{"Vec4", 4, "x y z w"},
	{"Mat2", 4, "c0.x c0.y c1.x c1.y"},
	{"Mat3", 9, "c0.xyz c1.xyz c2.xyz"},
	{"Mat4", 16, "c0.xyzw c1.xyzw c2.xyzw c3.xyzw"},
	{"Quat", 4, "x y z w"},
	{"Rotor3", 4, "s xy xz yz"},
}

// SizeOf returns the size of T in bytes.
func SizeOf[T Pod]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Bytes returns the memory of *v as a byte slice. Writes through the slice
// modify *v.
func Bytes[T Pod](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// FromBytes copies b into a new T. b may have any alignment.
func FromBytes[T Pod](b []byte) (T, error) {
	var v T
	if len(b) != int(unsafe.Sizeof(v)) {
		return v, fmt.Errorf("%w: %d bytes, want %d", ErrSize, len(b), unsafe.Sizeof(v))
	}
	copy(Bytes(&v), b)
	return v, nil
}

// SliceBytes returns the memory of vs as one contiguous byte slice.
func SliceBytes[T Pod](vs []T) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vs))), len(vs)*int(unsafe.Sizeof(vs[0])))
}

// CastSlice reinterprets b as a slice of T without copying. b must hold a
// whole number of values and be aligned for T.
func CastSlice[T Pod](b []byte) ([]T, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var v T
	size := int(unsafe.Sizeof(v))
	if len(b)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrSize, len(b), size)
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(v) != 0 {
		return nil, fmt.Errorf("%w: want %d-byte alignment", ErrAlign, unsafe.Alignof(v))
	}
	return unsafe.Slice((*T)(p), len(b)/size), nil
}

// Components returns vs as a flat slice of its components, sharing memory.
// For []vec.Vec3f it returns x0 y0 z0 x1 y1 z1 ...
func Components[E lanes.Scalar[E], T PodOf[E]](vs []T) []E {
	if len(vs) == 0 {
		return nil
	}
	var e E
	n := len(vs) * int(unsafe.Sizeof(vs[0])/unsafe.Sizeof(e))
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(vs))), n)
}

// FromComponents is the inverse of Components. len(es) must be a multiple
// of the component count of T.
func FromComponents[T PodOf[E], E lanes.Scalar[E]](es []E) ([]T, error) {
	if len(es) == 0 {
		return nil, nil
	}
	var v T
	n := int(unsafe.Sizeof(v) / unsafe.Sizeof(es[0]))
	if len(es)%n != 0 {
		return nil, fmt.Errorf("%w: %d components is not a multiple of %d", ErrSize, len(es), n)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(es))), len(es)/n), nil
}
