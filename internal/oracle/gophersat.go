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
	"context"

	"github.com/crillab/gophersat/solver"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/cnf"
)

// GophersatOracle solves formulas in-process with github.com/crillab/
// gophersat, so the CLI has a working default without an external solver
// binary installed. It feeds the formula's clauses to solver.ParseSlice
// directly rather than round-tripping through DIMACS text.
type GophersatOracle struct{}

func (GophersatOracle) Solve(ctx context.Context, f *cnf.Formula) (Assignment, error) {
	if f.TriviallyUnsat {
		return nil, ErrUnsatisfiable
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clauses := make([][]int, len(f.Clauses))
	for i, c := range f.Clauses {
		lits := make([]int, len(c))
		for j, lit := range c {
			lits[j] = int(lit)
		}
		clauses[i] = lits
	}

	pb := solver.ParseSlice(clauses)
	s := solver.New(pb)
	if s.Solve() != solver.Sat {
		return nil, ErrUnsatisfiable
	}

	model := s.Model()
	a := make(Assignment, f.NumVars)
	for i := 0; i < f.NumVars; i++ {
		id := catalog.ID(i + 1)
		installed := false
		if i < len(model) {
			installed = model[i]
		}
		a[id] = installed
	}
	return a, nil
}
