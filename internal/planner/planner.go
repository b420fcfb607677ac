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

Package planner turns a chosen SAT assignment plus the currently installed
state into a topologically ordered list of install/uninstall commands and
their cost. It is the "Command Builder" of the pipeline: removal order
keeps dependents ahead of the packages they (would) depend on; install
order keeps suppliers ahead of their dependents.
*/
package planner

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/oracle"
)

// UninstallCost is the fixed price of removing one package.
const UninstallCost = 1_000_000

// ErrInfeasible is returned when a candidate assignment cannot be realized
// as an ordered install sequence: some package slated for install has a
// dependency group with no pre-existing and no to-be-installed supplier.
var ErrInfeasible = errors.New("candidate assignment has no valid install order")

// Command is a single "+name=version" (install) or "-name=version"
// (uninstall) step.
type Command struct {
	Install bool
	Name    string
	Version string
}

func (c Command) String() string {
	sign := "-"
	if c.Install {
		sign = "+"
	}
	return fmt.Sprintf("%s%s=%s", sign, c.Name, c.Version)
}

// Result is the ordered command sequence synthesized for one candidate
// assignment, plus its cost.
type Result struct {
	Commands []Command
	Cost     int
}

// Build synthesizes commands that transform the installed set S into the
// one described by assignment A, ordered so every intermediate state
// remains consistent.
func Build(cat *catalog.Catalog, initial map[catalog.ID]struct{}, a oracle.Assignment) (*Result, error) {
	toInstall, toRemove := splitAssignment(cat, initial, a)

	removeOrder, err := orderRemovals(cat, toRemove)
	if err != nil {
		return nil, err
	}
	installOrder, err := orderInstalls(cat, initial, toInstall, toRemove)
	if err != nil {
		return nil, err
	}

	res := &Result{Cost: len(removeOrder) * UninstallCost}
	for _, id := range removeOrder {
		p, _ := cat.ByID(id)
		res.Commands = append(res.Commands, Command{Install: false, Name: p.Name, Version: p.RawVersion})
	}
	for _, id := range installOrder {
		p, _ := cat.ByID(id)
		res.Commands = append(res.Commands, Command{Install: true, Name: p.Name, Version: p.RawVersion})
		res.Cost += p.Size
	}
	return res, nil
}

// splitAssignment partitions the assignment relative to the currently
// installed set: toInstall is newly installed, toRemove is newly absent.
func splitAssignment(cat *catalog.Catalog, initial map[catalog.ID]struct{}, a oracle.Assignment) (toInstall, toRemove map[catalog.ID]struct{}) {
	toInstall = make(map[catalog.ID]struct{})
	toRemove = make(map[catalog.ID]struct{})
	for _, p := range cat.All() {
		installed := a[p.ID]
		_, wasInstalled := initial[p.ID]
		switch {
		case installed && !wasInstalled:
			toInstall[p.ID] = struct{}{}
		case !installed && wasInstalled:
			toRemove[p.ID] = struct{}{}
		}
	}
	return toInstall, toRemove
}

// orderRemovals builds a DAG over toRemove where p->q whenever q appears in
// one of p's dependency groups and q is also in toRemove (p depends on q,
// so p must be removed before q), then topologically sorts it: dependents
// first, their dependencies last.
func orderRemovals(cat *catalog.Catalog, toRemove map[catalog.ID]struct{}) ([]catalog.ID, error) {
	nodes := idsInOrder(cat, toRemove)
	edges := make(map[catalog.ID][]catalog.ID, len(nodes))

	for _, id := range nodes {
		p, _ := cat.ByID(id)
		for _, group := range p.DepGroups {
			for _, q := range group {
				if _, ok := toRemove[q]; ok {
					edges[p.ID] = append(edges[p.ID], q)
				}
			}
		}
	}

	order, err := topoSort(nodes, edges)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// orderInstalls builds a DAG over toInstall where, for each package p and
// each of its dependency groups G: if G is already satisfied by a
// pre-existing package that survives this candidate, no edge is added;
// otherwise exactly one element of G that is also in toInstall is chosen as
// p's supplier and an edge supplier->p is added. A group satisfied by
// neither is infeasible.
func orderInstalls(cat *catalog.Catalog, initial, toInstall map[catalog.ID]struct{}, toRemove map[catalog.ID]struct{}) ([]catalog.ID, error) {
	nodes := idsInOrder(cat, toInstall)
	edges := make(map[catalog.ID][]catalog.ID, len(nodes))

	for _, id := range nodes {
		p, _ := cat.ByID(id)
		for _, group := range p.DepGroups {
			if groupSatisfiedByExisting(group, initial, toRemove) {
				continue
			}
			supplier, ok := pickSupplier(group, toInstall)
			if !ok {
				return nil, errors.Wrapf(ErrInfeasible, "%s has no supplier for a dependency group", p)
			}
			edges[supplier] = append(edges[supplier], p.ID)
		}
	}

	order, err := topoSort(nodes, edges)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// groupSatisfiedByExisting reports whether group contains a pre-existing
// package that is not itself being removed by this candidate. A member
// that is in initial but also in toRemove will be gone by the time p is
// installed, so it cannot satisfy the group.
func groupSatisfiedByExisting(group []catalog.ID, initial, toRemove map[catalog.ID]struct{}) bool {
	for _, q := range group {
		if _, ok := initial[q]; ok {
			if _, removed := toRemove[q]; !removed {
				return true
			}
		}
	}
	return false
}

func pickSupplier(group []catalog.ID, toInstall map[catalog.ID]struct{}) (catalog.ID, bool) {
	for _, q := range group {
		if _, ok := toInstall[q]; ok {
			return q, true
		}
	}
	return 0, false
}

// idsInOrder returns the IDs present in set, in catalog (insertion) order,
// for deterministic topoSort tie-breaking.
func idsInOrder(cat *catalog.Catalog, set map[catalog.ID]struct{}) []catalog.ID {
	var ids []catalog.ID
	for _, p := range cat.All() {
		if _, ok := set[p.ID]; ok {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
