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

package catalog

import "fmt"

// ID uniquely identifies a Package within a Catalog. IDs are assigned in
// insertion order starting at 1 (0 is never a valid ID, so literals can use
// it as a sentinel the way DIMACS reserves it).
type ID int

// Package is one catalog entry: a unique (name, raw version) pair plus its
// resolved dependency and conflict sets.
//
// DepGroups and Conflicts hold resolved IDs, not raw reference strings.
// Resolution happens once, after every package in the catalog has been
// assigned an ID (see Builder.Build).
type Package struct {
	ID         ID
	Name       string
	RawVersion string
	Version    Version
	Size       int

	// DepGroups is an ordered list of disjunctive dependency groups. Every
	// group is non-empty; a group that resolves to no candidates is dropped
	// entirely rather than kept as an unsatisfiable empty group.
	DepGroups [][]ID

	// Conflicts is the set of package IDs that must never be co-installed
	// with this package.
	Conflicts map[ID]struct{}

	// rawDepends and rawConflicts hold the unresolved source reference
	// strings until Builder.Build performs resolution.
	rawDepends   [][]string
	rawConflicts []string
}

func (p *Package) String() string {
	return fmt.Sprintf("%s=%s", p.Name, p.RawVersion)
}

// Fingerprint returns a string uniquely identifying p within its Catalog,
// usable as a map key or log field.
func (p *Package) Fingerprint() string {
	return fmt.Sprintf("%s@%s", p.Name, p.RawVersion)
}

// HasConflict reports whether p conflicts with the package identified by id.
func (p *Package) HasConflict(id ID) bool {
	_, ok := p.Conflicts[id]
	return ok
}
