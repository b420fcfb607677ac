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
	"os"

	logcli "github.com/Masterminds/log-go/impl/cli"
	"github.com/fatih/color"

	"github.com/rancher-sandbox/depsolve/pkg/cli"
)

var settings = cli.New()

var red = color.New(color.FgRed).SprintFunc()
var magenta = color.New(color.FgMagenta).SprintFunc()

func debug(format string, v ...interface{}) {
	if settings.Debug {
		format = fmt.Sprintf("[debug] %s\n", magenta(format))
		fmt.Fprintf(os.Stderr, format, v...)
	}
}

func main() {
	logger := logcli.NewStandard()

	cmd, err := newRootCmd(logger, os.Args[1:])
	if err != nil {
		debug("%v", err)
		fmt.Fprintln(os.Stderr, red(err))
		os.Exit(2)
	}

	// newRootCmd has parsed the persistent flags into settings by now.
	if settings.Debug {
		logger.Level = 1 // DebugLevel
	}
	if settings.NoColors {
		color.NoColor = true
	}

	if err := cmd.Execute(); err != nil {
		debug("%+v", err)
		os.Exit(exitCodeFor(err))
	}
}
