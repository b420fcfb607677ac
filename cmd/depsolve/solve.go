/*
Copyright SUSE LLC.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"

	"github.com/Masterminds/log-go"
	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/depsolve/internal/document"
)

const solveDesc = `
Compute the cheapest sequence of install/uninstall commands that
transforms the initial state into one satisfying the given constraints,
and print it as a JSON array to standard output.
`

func newSolveCmd(logger log.Logger) *cobra.Command {
	i := &solveInputs{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "compute a minimum-cost install plan",
		Long:  solveDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, res, _, err := loadAndSolve(cmd.Context(), logger, *i)
			if err != nil {
				return err
			}

			commands := make([]string, len(res.Commands))
			for idx, c := range res.Commands {
				commands[idx] = c.String()
			}

			out, err := document.EncodeOutput(commands)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	i.addFlags(cmd)
	return cmd
}
