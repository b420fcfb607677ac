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
	"errors"

	"github.com/Masterminds/log-go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/optimizer"
	"github.com/rancher-sandbox/depsolve/internal/oracle"
)

var globalUsage = `Usage: depsolve command

Computes a minimum-cost sequence of package install/uninstall commands
that satisfies a set of constraints against a package catalog.
`

func newRootCmd(logger log.Logger, args []string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:          "depsolve",
		Short:        "compute a minimum-cost package install plan",
		Long:         globalUsage,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	settings.AddFlags(flags)

	cmd.AddCommand(
		newSolveCmd(logger),
		newExplainCmd(logger),
		newVersionCmd(),
	)

	flags.ParseErrorsWhitelist.UnknownFlags = true
	if err := flags.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		return nil, err
	}

	return cmd, nil
}

// exitCodeFor maps an error returned by a subcommand to one of the three
// codes spec.md §6.4 requires: 0 is never reached here (a nil error
// returns before exitCodeFor is called), 1 is "no feasible solution", 2 is
// everything else (parse/document/usage errors).
func exitCodeFor(err error) int {
	if errors.Is(err, oracle.ErrUnsatisfiable) || errors.Is(err, optimizer.ErrInfeasible) {
		return 1
	}
	if errors.Is(err, catalog.ErrParse) || errors.Is(err, catalog.ErrUnknownPackage) {
		return 2
	}
	return 2
}
