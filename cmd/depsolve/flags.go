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
	"context"
	"os"

	"github.com/Masterminds/log-go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/cnf"
	"github.com/rancher-sandbox/depsolve/internal/document"
	"github.com/rancher-sandbox/depsolve/internal/optimizer"
	"github.com/rancher-sandbox/depsolve/internal/oracle"
	"github.com/rancher-sandbox/depsolve/internal/planner"
	"github.com/rancher-sandbox/depsolve/internal/request"
)

// solveInputs holds the three document paths every subcommand that runs
// the solver needs.
type solveInputs struct {
	catalogPath     string
	initialPath     string
	constraintsPath string
}

func (i *solveInputs) addFlags(fs *cobra.Command) {
	f := fs.Flags()
	f.StringVar(&i.catalogPath, "catalog", "", "path to the catalog document (required)")
	f.StringVar(&i.initialPath, "initial", "", "path to the initial-state document")
	f.StringVar(&i.constraintsPath, "constraints", "", "path to the constraints document (required)")
}

func openOrEmpty(path string, empty string) (*os.File, func(), error) {
	if path == "" {
		f, err := os.CreateTemp("", "depsolve-empty-*.json")
		if err != nil {
			return nil, func() {}, err
		}
		if _, err := f.WriteString(empty); err != nil {
			f.Close()
			return nil, func() {}, err
		}
		if _, err := f.Seek(0, 0); err != nil {
			f.Close()
			return nil, func() {}, err
		}
		return f, func() { f.Close(); os.Remove(f.Name()) }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, err
	}
	return f, func() { f.Close() }, nil
}

// loadAndSolve runs the full pipeline (§4.B-§4.H) against the document
// paths in i, returning the chosen plan, the mode the selector used, the
// catalog/request for callers that want to render a richer report (e.g.
// explain), or an error.
func loadAndSolve(ctx context.Context, logger log.Logger, i solveInputs) (*catalog.Catalog, *request.Request, *planner.Result, optimizer.Mode, error) {
	if i.catalogPath == "" || i.constraintsPath == "" {
		return nil, nil, nil, 0, errors.New("--catalog and --constraints are required")
	}

	cf, err := os.Open(i.catalogPath)
	if err != nil {
		return nil, nil, nil, 0, errors.Wrap(err, "opening catalog document")
	}
	defer cf.Close()

	cat, err := document.LoadCatalog(cf, logger)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	initialFile, closeInitial, err := openOrEmpty(i.initialPath, "[]")
	if err != nil {
		return nil, nil, nil, 0, errors.Wrap(err, "opening initial document")
	}
	defer closeInitial()
	initialRefs, err := document.LoadInitial(initialFile)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	constraintsFile, err := os.Open(i.constraintsPath)
	if err != nil {
		return nil, nil, nil, 0, errors.Wrap(err, "opening constraints document")
	}
	defer constraintsFile.Close()
	constraints, err := document.LoadConstraints(constraintsFile)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	req, err := request.Parse(cat, initialRefs, constraints)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	f := cnf.Encode(cat, req)

	var opts []optimizer.Option
	if settings.OraclePath != "" {
		opts = append(opts, optimizer.WithOracle(oracle.NewSubprocessOracle(settings.OraclePath)))
	}
	opts = append(opts,
		optimizer.WithOptimizeThreshold(settings.OptimizeThreshold),
		optimizer.WithAlwaysOptimize(settings.AlwaysOptimize),
	)

	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	res, mode, err := optimizer.Run(ctx, cat, req.Initial, f, opts...)
	if err != nil {
		return cat, req, nil, mode, err
	}
	return cat, req, res, mode, nil
}
