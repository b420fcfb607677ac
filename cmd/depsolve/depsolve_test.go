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
	"bytes"
	"os"
	"strings"

	logcli "github.com/Masterminds/log-go/impl/cli"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/depsolve/pkg/cli"
)

// executeCommandStdinC runs cmd as if typed at the depsolve CLI, capturing
// both its cobra stdout/stderr and its final error, the way the teacher's
// own cmd-level tests drive hypper end-to-end.
func executeCommandStdinC(cmd string) (*cobra.Command, string, error) {
	args, err := shellwords.Parse(cmd)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	logger := logcli.NewStandard()
	logger.WarnOut = buf
	logger.ErrorOut = buf

	root, err := newRootCmd(logger, args)
	if err != nil {
		return nil, "", err
	}

	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err := root.ExecuteC()
	result := buf.String()
	return c, result, err
}

func resetEnv() func() {
	origEnv := os.Environ()
	for k := range settings.EnvVars() {
		os.Unsetenv(k)
	}
	return func() {
		os.Clearenv()
		for _, pair := range origEnv {
			kv := strings.SplitN(pair, "=", 2)
			os.Setenv(kv[0], kv[1])
		}
		settings = cli.New()
	}
}
