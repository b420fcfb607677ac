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

package oracle

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/cnf"
)

// SubprocessOracle solves a formula by feeding it, in DIMACS CNF text, to
// the stdin of an external solver process and reading its response from
// stdout, per the wire protocol: a first line of "SAT" followed by signed
// literals terminated by " 0" means satisfiable; anything else means
// unsatisfiable. Path/Args name the executable to run (a minisat/cadical/
// kissat-compatible CNF solver that reads DIMACS on stdin).
type SubprocessOracle struct {
	Path string
	Args []string
	// Runner is overridable for tests; it must behave like exec.Command's
	// Run/Output, writing stdin and returning combined stdout.
	Runner func(ctx context.Context, path string, args []string, stdin string) (stdout string, err error)
}

// NewSubprocessOracle returns a SubprocessOracle invoking the named
// executable with args, using os/exec to actually run it.
func NewSubprocessOracle(path string, args ...string) *SubprocessOracle {
	return &SubprocessOracle{Path: path, Args: args, Runner: runSubprocess}
}

func (o *SubprocessOracle) Solve(ctx context.Context, f *cnf.Formula) (Assignment, error) {
	if f.TriviallyUnsat {
		return nil, ErrUnsatisfiable
	}

	run := o.Runner
	if run == nil {
		run = runSubprocess
	}

	out, err := run(ctx, o.Path, o.Args, f.String())
	if err != nil {
		return nil, errors.Wrapf(err, "invoking SAT oracle %q", o.Path)
	}

	a, sat := ParseDIMACSResponse(out, f.NumVars)
	if !sat {
		return nil, ErrUnsatisfiable
	}
	return a, nil
}

// ParseDIMACSResponse parses the oracle's response per §6: a first non-blank
// line beginning with "SAT" followed by space-separated signed integers terminated by a
// "0" means satisfiable, and the returned Assignment covers every ID
// 1..numVars (any ID absent from the literal list is not-installed).
// Anything else means unsatisfiable.
func ParseDIMACSResponse(output string, numVars int) (Assignment, bool) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	sat := false
	var lits []int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "SAT" {
			sat = true
			fields = fields[1:]
		} else if fields[0] == "UNSAT" {
			return nil, false
		} else if !sat {
			return nil, false
		}
		for _, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				continue
			}
			if n == 0 {
				continue
			}
			lits = append(lits, n)
		}
	}
	if !sat {
		return nil, false
	}

	a := make(Assignment, numVars)
	for id := 1; id <= numVars; id++ {
		a[catalog.ID(id)] = false
	}
	for _, lit := range lits {
		id := lit
		if id < 0 {
			id = -id
		}
		if id < 1 || id > numVars {
			continue
		}
		a[catalog.ID(id)] = lit > 0
	}
	return a, true
}

func runSubprocess(ctx context.Context, path string, args []string, stdin string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Solver binaries following the DIMACS convention commonly signal
		// SAT/UNSAT via a non-zero exit code (e.g. 10/20), not process
		// failure. Trust stdout content over the exit code.
		if stdout.Len() == 0 {
			return "", errors.Wrapf(err, "stderr: %s", stderr.String())
		}
	}
	return stdout.String(), nil
}
