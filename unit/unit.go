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

// Package unit tags scalar lengths with a unit of measurement checked at
// compile time.
//
// A unit is any type, usually an empty struct:
//
//	type Inch struct{}
//	type Millimeter struct{}
//
//	foot := unit.New[Inch](lanes.F32(12))
//	mmPerInch := unit.NewScale[Inch, Millimeter](lanes.F32(25.4))
//	mm := unit.Convert(foot, mmPerInch) // Length[Millimeter, F32] of 304.8
//
// Adding a Length[Inch] to a Length[Millimeter] does not compile; the value
// has to go through a Scale first. The unit occupies no memory.
package unit

import (
	"cmp"

	"github.com/ajroetker/go-lanes/lanes"
)

// Length is a distance of value S measured in unit U.
type Length[U any, S lanes.Scalar[S]] struct {
	_ [0]U
	v S
}

// New returns the length v in unit U.
func New[U any, S lanes.Scalar[S]](v S) Length[U, S] {
	return Length[U, S]{v: v}
}

// Get returns the untagged value.
func (l Length[U, S]) Get() S { return l.v }

func (l Length[U, S]) Add(o Length[U, S]) Length[U, S] { return Length[U, S]{v: l.v.Add(o.v)} }
func (l Length[U, S]) Sub(o Length[U, S]) Length[U, S] { return Length[U, S]{v: l.v.Sub(o.v)} }
func (l Length[U, S]) Neg() Length[U, S]               { return Length[U, S]{v: l.v.Neg()} }

// Scale multiplies by a dimensionless factor, keeping the unit.
func (l Length[U, S]) Scale(f S) Length[U, S] { return Length[U, S]{v: l.v.Mul(f)} }

// The comparisons hold when they hold in every lane, so for wide lengths
// !a.Equal(b) does not mean every lane differs. NaN compares false.

func (l Length[U, S]) Equal(o Length[U, S]) bool        { return l.v.Eq(o.v).All() }
func (l Length[U, S]) Less(o Length[U, S]) bool         { return l.v.Lt(o.v).All() }
func (l Length[U, S]) LessEqual(o Length[U, S]) bool    { return l.v.Le(o.v).All() }
func (l Length[U, S]) Greater(o Length[U, S]) bool      { return l.v.Gt(o.v).All() }
func (l Length[U, S]) GreaterEqual(o Length[U, S]) bool { return l.v.Ge(o.v).All() }

// Min and Max follow the lanes NaN policy.
func (l Length[U, S]) Min(o Length[U, S]) Length[U, S] { return Length[U, S]{v: l.v.Min(o.v)} }
func (l Length[U, S]) Max(o Length[U, S]) Length[U, S] { return Length[U, S]{v: l.v.Max(o.v)} }

// Scale is a conversion factor from unit Src to unit Dst: one Src equals
// Get() Dst.
type Scale[Src, Dst any, S lanes.Scalar[S]] struct {
	_ [0]Src
	_ [0]Dst
	v S
}

// NewScale returns the factor v Dst per Src.
func NewScale[Src, Dst any, S lanes.Scalar[S]](v S) Scale[Src, Dst, S] {
	return Scale[Src, Dst, S]{v: v}
}

func (s Scale[Src, Dst, S]) Get() S { return s.v }

// Inverse returns the factor converting Dst back to Src.
func (s Scale[Src, Dst, S]) Inverse() Scale[Dst, Src, S] {
	return Scale[Dst, Src, S]{v: s.v.Recip()}
}

// Then composes a Src→Mid factor with a Mid→Dst factor.
func Then[Src, Mid, Dst any, S lanes.Scalar[S]](a Scale[Src, Mid, S], b Scale[Mid, Dst, S]) Scale[Src, Dst, S] {
	return Scale[Src, Dst, S]{v: a.v.Mul(b.v)}
}

// Convert multiplies l by s, changing its unit from Src to Dst.
func Convert[Src, Dst any, S lanes.Scalar[S]](l Length[Src, S], s Scale[Src, Dst, S]) Length[Dst, S] {
	return Length[Dst, S]{v: l.v.Mul(s.v)}
}

// Unconvert divides l by s, changing its unit from Dst back to Src.
func Unconvert[Src, Dst any, S lanes.Scalar[S]](l Length[Dst, S], s Scale[Src, Dst, S]) Length[Src, S] {
	return Length[Src, S]{v: l.v.Div(s.v)}
}

// Real is implemented by the scalar float types.
type Real[S any] interface {
	lanes.Scalar[S]
	lanes.F32 | lanes.F64
}

// Cast changes the numeric representation of l, keeping its unit. Narrowing
// to F32 rounds to nearest.
func Cast[D Real[D], U any, S Real[S]](l Length[U, S]) Length[U, D] {
	return Length[U, D]{v: D(l.v)}
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b,
// ordering NaN first like cmp.Compare. It suits slices.SortFunc.
func Compare[U any, S Real[S]](a, b Length[U, S]) int {
	return cmp.Compare(a.v, b.v)
}
