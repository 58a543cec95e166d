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

// Command lanes inspects the go-lanes build and evaluates small transform
// and interpolation problems from the command line.
//
// Usage:
//
//	lanes info --format yaml
//	lanes transform -f scene.yaml
//	lanes slerp --from 0,0,0,1 --to 0,0,1,0 --steps 4
//
// --verbose routes the library's debug logging to stderr.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/lanes"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "lanes",
		Short:         "Inspect go-lanes and evaluate transforms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				return
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
			lanes.SetLogger(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(newInfoCmd(), newTransformCmd(), newSlerpCmd())
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
