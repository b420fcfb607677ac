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

Package cnf reduces dependency resolution to boolean satisfiability: one
variable per catalog package ID, a positive literal meaning "installed in
the final state". Clause order is deterministic so re-encoding after the
optimizer appends blocking clauses is reproducible.
*/
package cnf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/request"
)

// Literal is a signed package ID: positive means "installed", negative
// means "not installed".
type Literal int

// Of returns the positive literal for id.
func Of(id catalog.ID) Literal { return Literal(id) }

// Not returns the negative literal for id.
func Not(id catalog.ID) Literal { return Literal(-id) }

// ID returns the package ID a literal refers to, regardless of sign.
func (l Literal) ID() catalog.ID {
	if l < 0 {
		return catalog.ID(-l)
	}
	return catalog.ID(l)
}

// Positive reports whether l asserts its package installed.
func (l Literal) Positive() bool { return l > 0 }

// Clause is a disjunction of literals.
type Clause []Literal

// Formula is a CNF formula over package IDs 1..NumVars.
type Formula struct {
	NumVars int
	Clauses []Clause

	// TriviallyUnsat is set when an install requirement matched nothing in
	// the catalog: no assignment of literals can satisfy the empty
	// disjunction that would otherwise be emitted, so the oracle step can
	// be skipped entirely.
	TriviallyUnsat bool
}

// AddClause appends c to the formula.
func (f *Formula) AddClause(c Clause) {
	f.Clauses = append(f.Clauses, c)
}

// Encode builds the CNF formula for cat and req, per spec:
//  1. conflicts: (¬p ∨ ¬q) for every q in p.Conflicts
//  2. dependencies: (¬p ∨ q1 ∨ q2 ∨ ...) for every dep group of p
//  3. uninstall requirements: unit clause (¬u) for every id in req.Uninstall
//  4. install requirements: (q1 ∨ q2 ∨ ...) for every reference in req.Install
func Encode(cat *catalog.Catalog, req *request.Request) *Formula {
	f := &Formula{NumVars: cat.Len()}

	for _, p := range cat.All() {
		conflicts := make([]catalog.ID, 0, len(p.Conflicts))
		for q := range p.Conflicts {
			conflicts = append(conflicts, q)
		}
		sort.Slice(conflicts, func(i, j int) bool { return conflicts[i] < conflicts[j] })
		for _, q := range conflicts {
			f.AddClause(Clause{Not(p.ID), Not(q)})
		}
	}

	for _, p := range cat.All() {
		for _, group := range p.DepGroups {
			clause := make(Clause, 0, len(group)+1)
			clause = append(clause, Not(p.ID))
			for _, q := range group {
				clause = append(clause, Of(q))
			}
			f.AddClause(clause)
		}
	}

	uninstall := make([]catalog.ID, 0, len(req.Uninstall))
	for u := range req.Uninstall {
		uninstall = append(uninstall, u)
	}
	sort.Slice(uninstall, func(i, j int) bool { return uninstall[i] < uninstall[j] })
	for _, u := range uninstall {
		f.AddClause(Clause{Not(u)})
	}

	for _, ref := range req.Install {
		matches := cat.Match(ref)
		if len(matches) == 0 {
			f.TriviallyUnsat = true
			f.AddClause(Clause{})
			continue
		}
		clause := make(Clause, 0, len(matches))
		for _, q := range matches {
			clause = append(clause, Of(q))
		}
		f.AddClause(clause)
	}

	return f
}

// Block appends a blocking clause that forbids exactly the positive
// (installed) literals in installed from recurring together: ⋁ ¬p for every p
// installed by the assignment being blocked. This is narrower than blocking
// on every literal (see DESIGN.md): two assignments that agree on their
// install set are equivalent for cost and command purposes, so blocking
// only the install set collapses them into one candidate instead of
// enumerating both.
func (f *Formula) Block(installed []catalog.ID) {
	clause := make(Clause, 0, len(installed))
	for _, id := range installed {
		clause = append(clause, Not(id))
	}
	f.AddClause(clause)
}

// String renders the formula in DIMACS CNF text form: a header line
// followed by one line per clause, each terminated by a trailing 0.
func (f *Formula) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", f.NumVars, len(f.Clauses))
	for _, c := range f.Clauses {
		for _, lit := range c {
			fmt.Fprintf(&sb, "%d ", int(lit))
		}
		sb.WriteString("0\n")
	}
	return sb.String()
}
