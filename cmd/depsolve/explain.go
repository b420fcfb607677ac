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
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/rancher-sandbox/depsolve/internal/optimizer"
	"github.com/rancher-sandbox/depsolve/pkg/eyecandy"
)

const explainDesc = `
Like solve, but prints a human-readable breakdown of the chosen plan
instead of the bare JSON command array: the mode the Mode Selector picked,
the total cost, and the command order.
`

// explainReport is the YAML-serializable shape printed with --yaml.
type explainReport struct {
	Mode     string   `yaml:"mode"`
	Cost     int      `yaml:"cost"`
	Commands []string `yaml:"commands"`
}

func newExplainCmd(logger log.Logger) *cobra.Command {
	i := &solveInputs{}
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "print a human-readable breakdown of the chosen plan",
		Long:  explainDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, res, mode, err := loadAndSolve(cmd.Context(), logger, *i)
			if err != nil {
				return err
			}

			modeName := "optimize"
			if mode == optimizer.ModeFirstFeasible {
				modeName = "first-feasible"
			}

			commands := make([]string, len(res.Commands))
			for idx, c := range res.Commands {
				commands[idx] = c.String()
			}

			if asYAML {
				report := explainReport{Mode: modeName, Cost: res.Cost, Commands: commands}
				out, err := yaml.Marshal(report)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), eyecandy.ESPrintf(settings.NoEmojis, ":mag: mode=%s cost=%d", modeName, res.Cost))
			table := uitable.New()
			table.AddRow("#", "", "COMMAND")
			for idx, c := range res.Commands {
				icon := eyecandy.CommandIcon(settings.NoEmojis, c.Install)
				table.AddRow(idx+1, icon, commands[idx])
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	i.addFlags(cmd)
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the report as YAML instead of a table")
	return cmd
}
