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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/interop/ximage"
	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/mat"
)

// scene is the input of the transform command:
//
//	transforms:
//	  - scale: [2, 2, 2]
//	  - rotate: {axis: [0, 0, 1], angle: 1.5707963267948966}
//	  - translate: [1, 0, 0]
//	points:
//	  - [1, 0, 0]
//
// Transforms apply in the order listed.
type scene struct {
	Transforms []step     `yaml:"transforms"`
	Points     []f64.Vec3 `yaml:"points"`
}

// step holds exactly one transform.
type step struct {
	Translate *f64.Vec3 `yaml:"translate,omitempty"`
	Scale     *f64.Vec3 `yaml:"scale,omitempty"`
	Rotate    *rotation `yaml:"rotate,omitempty"`
	Quat      *f64.Vec4 `yaml:"quat,omitempty"`
	// Matrix lists 16 numbers row by row, as written on paper.
	Matrix *f64.Mat4 `yaml:"matrix,omitempty"`
}

type rotation struct {
	Axis  f64.Vec3 `yaml:"axis"`
	Angle float64  `yaml:"angle"`
}

var errStep = errors.New("each transform needs exactly one of translate, scale, rotate, quat, matrix")

func (s step) matrix() (mat.Mat4d, error) {
	set := lo.Count([]bool{s.Translate != nil, s.Scale != nil, s.Rotate != nil, s.Quat != nil, s.Matrix != nil}, true)
	if set != 1 {
		return mat.Mat4d{}, errStep
	}
	switch {
	case s.Translate != nil:
		return mat.FromTranslation(ximage.Vec3FromF64(*s.Translate)), nil
	case s.Scale != nil:
		return mat.FromNonUniformScale4(ximage.Vec3FromF64(*s.Scale)), nil
	case s.Rotate != nil:
		axis := ximage.Vec3FromF64(s.Rotate.Axis)
		if axis.LengthSquared() == 0 {
			return mat.Mat4d{}, errors.New("rotate: zero axis")
		}
		return mat.FromAxisAngle4(axis.Normalize(), lanes.F64(s.Rotate.Angle)), nil
	case s.Quat != nil:
		return ximage.QuatFromF64(*s.Quat).Normalize().ToMat4(), nil
	default:
		return ximage.Mat4FromF64(*s.Matrix), nil
	}
}

// compose multiplies the steps so the first listed applies first.
func (sc scene) compose() (mat.Mat4d, error) {
	m := mat.Identity4[lanes.F64]()
	for i, s := range sc.Transforms {
		sm, err := s.matrix()
		if err != nil {
			return m, fmt.Errorf("transform %d: %w", i, err)
		}
		m = sm.Mul(m)
	}
	return m, nil
}

type transformResult struct {
	Matrix f64.Mat4   `yaml:"matrix"`
	Points []f64.Vec3 `yaml:"points"`
}

func runTransform(r io.Reader, w io.Writer) error {
	var sc scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return fmt.Errorf("decoding scene: %w", err)
	}
	m, err := sc.compose()
	if err != nil {
		return err
	}
	lanes.Logger().Debug("lanes: composed scene", "transforms", len(sc.Transforms), "points", len(sc.Points))

	out := transformResult{
		Matrix: ximage.Mat4ToF64(m),
		Points: lo.Map(sc.Points, func(p f64.Vec3, _ int) f64.Vec3 {
			return ximage.Vec3ToF64(m.TransformPoint3(ximage.Vec3FromF64(p)))
		}),
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

func newTransformCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Compose the transforms of a YAML scene and apply them to its points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runTransform(in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "Scene file, - for stdin")
	return cmd
}
