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

package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/cnf"
	"github.com/rancher-sandbox/depsolve/internal/oracle"
	"github.com/rancher-sandbox/depsolve/internal/planner"
	"github.com/rancher-sandbox/depsolve/internal/request"
)

// buildAndSolve is a small end-to-end harness: build a catalog from raw
// AddPackage calls, parse a request against it, encode and run the
// optimizer, and return the result.
func buildAndSolve(t *testing.T, add func(b *catalog.Builder), initialRefs, constraints []string, opts ...Option) (*catalog.Catalog, *request.Request, *planner.Result, Mode, error) {
	t.Helper()
	b := catalog.NewBuilder()
	add(b)
	cat, err := b.Build()
	require.NoError(t, err)

	req, err := request.Parse(cat, initialRefs, constraints)
	require.NoError(t, err)

	f := cnf.Encode(cat, req)
	res, mode, err := Run(context.Background(), cat, req.Initial, f, opts...)
	return cat, req, res, mode, err
}

func TestOptimizerPrefersCheaperOfTwoSuppliers(t *testing.T) {
	// a depends on (light|heavy); nothing installed yet; request +a.
	_, _, res, mode, err := buildAndSolve(t, func(b *catalog.Builder) {
		mustAdd(t, b, "a", "1.0", 1, [][]string{{"light", "heavy"}}, nil)
		mustAdd(t, b, "light", "1.0", 5, nil, nil)
		mustAdd(t, b, "heavy", "1.0", 500, nil, nil)
	}, nil, []string{"+a"})
	require.NoError(t, err)
	assert.Equal(t, ModeOptimize, mode)

	names := commandNames(res)
	assert.Contains(t, names, "light")
	assert.NotContains(t, names, "heavy")
}

func TestOptimizerForcesUninstallOnConflict(t *testing.T) {
	// already have "old" installed; requesting +new, and new conflicts old.
	_, _, res, _, err := buildAndSolve(t, func(b *catalog.Builder) {
		mustAdd(t, b, "old", "1.0", 10, nil, []string{"new"})
		mustAdd(t, b, "new", "1.0", 10, nil, []string{"old"})
	}, []string{"old"}, []string{"+new"})
	require.NoError(t, err)

	names := commandNames(res)
	assert.Contains(t, names, "old")
	assert.Contains(t, names, "new")
	assert.False(t, res.Commands[0].Install) // uninstall comes first
}

func TestOptimizerUnsatisfiableInstallReference(t *testing.T) {
	_, _, _, _, err := buildAndSolve(t, func(b *catalog.Builder) {
		mustAdd(t, b, "a", "1.0", 10, nil, nil)
	}, nil, []string{"+ghost"})
	assert.ErrorIs(t, err, oracle.ErrUnsatisfiable)
}

func TestOptimizerFirstFeasibleModeSkipsEnumeration(t *testing.T) {
	_, _, res, mode, err := buildAndSolve(t, func(b *catalog.Builder) {
		mustAdd(t, b, "a", "1.0", 1, [][]string{{"light", "heavy"}}, nil)
		mustAdd(t, b, "light", "1.0", 5, nil, nil)
		mustAdd(t, b, "heavy", "1.0", 500, nil, nil)
	}, nil, []string{"+a"}, WithOptimizeThreshold(0))
	require.NoError(t, err)
	assert.Equal(t, ModeFirstFeasible, mode)
	assert.NotNil(t, res)
}

func TestOptimizerAlwaysOptimizeOverridesThreshold(t *testing.T) {
	_, _, _, mode, err := buildAndSolve(t, func(b *catalog.Builder) {
		mustAdd(t, b, "a", "1.0", 1, nil, nil)
	}, nil, []string{"+a"}, WithOptimizeThreshold(0), WithAlwaysOptimize(true))
	require.NoError(t, err)
	assert.Equal(t, ModeOptimize, mode)
}

// TestOptimizerUninstallsChainOfDependents drives a multi-hop removal DAG
// (p depends on q, q depends on r) through the full pipeline: requesting
// -r with nothing else to supply q or p's dependency group forces all
// three out, and every dependent must be removed before the thing it
// depends on.
func TestOptimizerUninstallsChainOfDependents(t *testing.T) {
	_, _, res, _, err := buildAndSolve(t, func(b *catalog.Builder) {
		mustAdd(t, b, "p", "1.0", 1, [][]string{{"q"}}, nil)
		mustAdd(t, b, "q", "1.0", 1, [][]string{{"r"}}, nil)
		mustAdd(t, b, "r", "1.0", 1, nil, nil)
	}, []string{"p", "q", "r"}, []string{"-r"})
	require.NoError(t, err)

	names := commandNames(res)
	require.ElementsMatch(t, []string{"p", "q", "r"}, names)
	for _, c := range res.Commands {
		assert.False(t, c.Install)
	}

	idx := indexOf(names)
	assert.Less(t, idx["p"], idx["q"])
	assert.Less(t, idx["q"], idx["r"])
}

// TestOptimizerInstallsAroundMixedSupplier drives a dependency group whose
// pre-existing member is forced out (by a conflict) at the same time its
// real, newly-installed supplier comes in: B is initially installed and
// conflicts with C; requesting +C and +A (A depends on B|C) forces B's
// removal, leaving C as A's only surviving supplier.
func TestOptimizerInstallsAroundMixedSupplier(t *testing.T) {
	_, _, res, _, err := buildAndSolve(t, func(b *catalog.Builder) {
		mustAdd(t, b, "A", "1.0", 1, [][]string{{"B", "C"}}, nil)
		mustAdd(t, b, "B", "1.0", 1, nil, []string{"C"})
		mustAdd(t, b, "C", "1.0", 1, nil, []string{"B"})
	}, []string{"B"}, []string{"+A", "+C"})
	require.NoError(t, err)

	names := commandNames(res)
	require.Contains(t, names, "B")
	require.Contains(t, names, "C")
	require.Contains(t, names, "A")

	idx := indexOf(names)
	assert.Less(t, idx["B"], idx["C"]) // uninstall before any install
	assert.Less(t, idx["C"], idx["A"]) // real supplier before dependent
}

func indexOf(names []string) map[string]int {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}
	return idx
}

func mustAdd(t *testing.T, b *catalog.Builder, name, version string, size int, depends [][]string, conflicts []string) {
	t.Helper()
	_, err := b.AddPackage(name, version, size, depends, conflicts)
	require.NoError(t, err)
}

func commandNames(res *planner.Result) []string {
	var names []string
	for _, c := range res.Commands {
		names = append(names, c.Name)
	}
	return names
}
