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

Package optimizer drives the oracle in a loop, appending a blocking clause
after every candidate so the next call is forced to find a different
install set, and keeps the cheapest feasible plan seen. Above a catalog
size threshold it instead returns the first feasible plan, trading
optimality for a bounded number of oracle calls.
*/
package optimizer

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/cnf"
	"github.com/rancher-sandbox/depsolve/internal/oracle"
	"github.com/rancher-sandbox/depsolve/internal/planner"
)

// DefaultOptimizeThreshold is the catalog size above which the Mode
// Selector switches to first-feasible mode unless AlwaysOptimize is set.
const DefaultOptimizeThreshold = 50_000

// ErrInfeasible is returned when the formula is satisfiable but every
// assignment found fails to produce a valid command ordering (cycles or
// missing suppliers), so no usable plan exists at all.
var ErrInfeasible = errors.New("no feasible install order exists for any satisfying assignment")

// Options configures the optimizer loop. Run starts from
// DefaultOptimizeThreshold and GophersatOracle and applies its Option
// arguments on top; a zero Options value has no oracle set.
type Options struct {
	Oracle            oracle.Oracle
	OptimizeThreshold int
	AlwaysOptimize    bool
}

// Option mutates an Options.
type Option func(*Options)

// WithOracle overrides the default in-process gophersat oracle.
func WithOracle(o oracle.Oracle) Option {
	return func(opt *Options) { opt.Oracle = o }
}

// WithOptimizeThreshold overrides DefaultOptimizeThreshold.
func WithOptimizeThreshold(n int) Option {
	return func(opt *Options) { opt.OptimizeThreshold = n }
}

// WithAlwaysOptimize forces full enumeration regardless of catalog size.
func WithAlwaysOptimize(always bool) Option {
	return func(opt *Options) { opt.AlwaysOptimize = always }
}

func newOptions(opts ...Option) Options {
	o := Options{
		Oracle:            oracle.GophersatOracle{},
		OptimizeThreshold: DefaultOptimizeThreshold,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Mode reports which strategy Run used for a given catalog size, purely
// for diagnostics/logging.
type Mode int

const (
	// ModeOptimize enumerates candidates via blocking clauses and keeps the
	// cheapest feasible plan.
	ModeOptimize Mode = iota
	// ModeFirstFeasible returns the first feasible plan the oracle finds,
	// skipping enumeration. Selected when the catalog exceeds the optimize
	// threshold and AlwaysOptimize is not set.
	ModeFirstFeasible
)

func selectMode(catalogLen int, o Options) Mode {
	if o.AlwaysOptimize || catalogLen <= o.OptimizeThreshold {
		return ModeOptimize
	}
	return ModeFirstFeasible
}

// Run solves f for cat/initial, returning the cheapest feasible plan (mode
// selector permitting) or an error. f is mutated (blocking clauses are
// appended) as part of enumeration; callers that need the original formula
// should pass a copy.
func Run(ctx context.Context, cat *catalog.Catalog, initial map[catalog.ID]struct{}, f *cnf.Formula, opts ...Option) (*planner.Result, Mode, error) {
	o := newOptions(opts...)
	mode := selectMode(cat.Len(), o)

	if mode == ModeFirstFeasible {
		res, err := runFirstFeasible(ctx, cat, initial, f, o)
		return res, mode, err
	}
	res, err := runOptimize(ctx, cat, initial, f, o)
	return res, mode, err
}

// runFirstFeasible makes a single Oracle call and hands its assignment
// straight to the planner, per spec.md §4.H: "one pass through Oracle →
// Command Builder → output", with no blocking-clause retry even if that
// one candidate turns out infeasible.
func runFirstFeasible(ctx context.Context, cat *catalog.Catalog, initial map[catalog.ID]struct{}, f *cnf.Formula, o Options) (*planner.Result, error) {
	assignment, err := o.Oracle.Solve(ctx, f)
	if err != nil {
		return nil, err
	}
	res, err := planner.Build(cat, initial, assignment)
	if err != nil {
		return nil, errors.Wrap(ErrInfeasible, err.Error())
	}
	return res, nil
}

// runOptimize enumerates every candidate install set via blocking clauses
// (§4.G), skipping but still blocking infeasible/cyclic candidates, and
// keeps the cheapest feasible plan.
func runOptimize(ctx context.Context, cat *catalog.Catalog, initial map[catalog.ID]struct{}, f *cnf.Formula, o Options) (*planner.Result, error) {
	var best *planner.Result
	sawSAT := false
	sawFeasible := false

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		assignment, err := o.Oracle.Solve(ctx, f)
		if errors.Is(err, oracle.ErrUnsatisfiable) {
			break
		}
		if err != nil {
			return nil, err
		}
		sawSAT = true

		installed := assignment.Installed()
		res, err := planner.Build(cat, initial, assignment)
		if err != nil {
			// This candidate has no valid command ordering (a dependency
			// cycle, or no supplier for one of its dep groups); block it
			// and keep looking, it does not count as a solution.
			f.Block(installed)
			continue
		}
		sawFeasible = true

		if best == nil || res.Cost < best.Cost {
			best = res
		}
		f.Block(installed)
	}

	if !sawSAT {
		return nil, oracle.ErrUnsatisfiable
	}
	if !sawFeasible {
		return nil, ErrInfeasible
	}
	return best, nil
}
