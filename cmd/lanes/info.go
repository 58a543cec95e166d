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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lanes/bulk"
	"github.com/ajroetker/go-lanes/lanes"
)

type infoReport struct {
	lanes.Capabilities `yaml:",inline"`
	Bulk               bulkReport `yaml:"bulk"`
}

type bulkReport struct {
	Backend     string   `yaml:"backend"`
	Accelerated bool     `yaml:"accelerated"`
	Features    []string `yaml:"features,omitempty"`
}

func currentInfo() infoReport {
	bi := bulk.Info()
	return infoReport{
		Capabilities: lanes.CurrentCapabilities(),
		Bulk:         bulkReport{Backend: bi.Backend, Accelerated: bi.Accelerated, Features: bi.Features},
	}
}

func newInfoCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level, lane widths and enabled capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := currentInfo()
			switch format {
			case "text":
				return writeInfoText(cmd.OutOrStdout(), r)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(r); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")
	return cmd
}

func writeInfoText(w io.Writer, r infoReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "dispatch:\t%s\n", r.LevelName)
	fmt.Fprintf(tw, "width:\t%d bytes\n", r.Width)
	fmt.Fprintf(tw, "lanes:\t%d x float32, %d x float64\n", r.Lanes32, r.Lanes64)
	fmt.Fprintf(tw, "fma:\t%t\n", r.FMA)
	fmt.Fprintf(tw, "wide kernels:\t%t\n", r.WideKernels)
	fmt.Fprintf(tw, "backend:\t%s\n", r.Backend)
	fmt.Fprintf(tw, "debug assertions:\t%t\n", r.DebugAssertions)
	fmt.Fprintf(tw, "serialization:\t%t\n", r.Serialization)
	fmt.Fprintf(tw, "bulk:\t%s (accelerated: %t)\n", r.Bulk.Backend, r.Bulk.Accelerated)
	return tw.Flush()
}
