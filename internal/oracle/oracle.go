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

Package oracle defines the boundary between the solver core and an actual
SAT solver. The core depends only on the Oracle interface; two real
adapters are provided, a subprocess speaking the DIMACS wire protocol and
an in-process one backed by github.com/crillab/gophersat, because the spec
explicitly allows either.
*/
package oracle

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/cnf"
)

// ErrUnsatisfiable is returned by Oracle.Solve when the formula has no
// satisfying assignment.
var ErrUnsatisfiable = errors.New("formula is unsatisfiable")

// Assignment maps every catalog ID to whether it is installed in a
// satisfying model. A complete Oracle implementation covers every ID 1..N;
// any ID the underlying solver doesn't report is treated as not-installed.
type Assignment map[catalog.ID]bool

// Installed returns, in ascending ID order, every ID a holds installed.
func (a Assignment) Installed() []catalog.ID {
	var ids []catalog.ID
	for id, v := range a {
		if v {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Oracle solves a CNF formula, returning a full assignment over 1..N or
// ErrUnsatisfiable.
type Oracle interface {
	Solve(ctx context.Context, f *cnf.Formula) (Assignment, error)
}
