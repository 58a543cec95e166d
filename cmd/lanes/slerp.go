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
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/interp"
	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/rot"
)

// parseQuat parses "x,y,z,w".
func parseQuat(s string) (rot.Quatd, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return rot.Quatd{}, fmt.Errorf("quaternion %q: want 4 comma-separated components, got %d", s, len(parts))
	}
	var errs []error
	c := lo.Map(parts, func(p string, i int) lanes.F64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("component %d: %w", i, err))
		}
		return lanes.F64(v)
	})
	if len(errs) > 0 {
		return rot.Quatd{}, fmt.Errorf("quaternion %q: %w", s, errors.Join(errs...))
	}
	return rot.Quatd{X: c[0], Y: c[1], Z: c[2], W: c[3]}, nil
}

type slerpRow struct {
	T     float64
	Q     rot.Quatd
	Angle float64 // degrees from the start rotation
}

func slerpTable(from, to rot.Quatd, steps int, linear bool) []slerpRow {
	from, to = from.Normalize(), to.Normalize()
	return lo.Times(steps+1, func(k int) slerpRow {
		t := lanes.F64(float64(k) / float64(steps))
		var q rot.Quatd
		if linear {
			q = interp.Nlerp(from, to, t)
		} else {
			q = interp.Slerp(from, to, t)
		}
		_, angle := from.Conjugate().Mul(q).ToAxisAngle()
		deg := angle.Float() * 180 / math.Pi
		if deg > 180 {
			deg = 360 - deg
		}
		return slerpRow{T: t.Float(), Q: q, Angle: deg}
	})
}

func writeSlerpTable(w io.Writer, rows []slerpRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "t\tx\ty\tz\tw\tdegrees\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%.4f\t%.6f\t%.6f\t%.6f\t%.6f\t%.3f\t\n", r.T, r.Q.X.Float(), r.Q.Y.Float(), r.Q.Z.Float(), r.Q.W.Float(), r.Angle)
	}
	return tw.Flush()
}

func newSlerpCmd() *cobra.Command {
	var (
		from, to string
		steps    int
		linear   bool
	)
	cmd := &cobra.Command{
		Use:   "slerp",
		Short: "Print the spherical interpolation between two rotations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			a, err := parseQuat(from)
			if err != nil {
				return err
			}
			b, err := parseQuat(to)
			if err != nil {
				return err
			}
			if a.LengthSquared() == 0 || b.LengthSquared() == 0 {
				return errors.New("zero quaternion")
			}
			return writeSlerpTable(cmd.OutOrStdout(), slerpTable(a, b, steps, linear))
		},
	}
	cmd.Flags().StringVar(&from, "from", "0,0,0,1", "Start rotation x,y,z,w")
	cmd.Flags().StringVar(&to, "to", "0,0,0,1", "End rotation x,y,z,w")
	cmd.Flags().IntVar(&steps, "steps", 4, "Number of intervals")
	cmd.Flags().BoolVar(&linear, "nlerp", false, "Use normalized linear interpolation")
	return cmd
}
