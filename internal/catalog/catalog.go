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

Package catalog holds the universe of known packages: their versions,
declared dependency groups and conflicts, resolved once against the whole
catalog so every later stage of the solver pipeline reasons purely in terms
of package IDs.
*/
package catalog

import (
	"github.com/pkg/errors"
)

// Catalog is an immutable, fully resolved set of packages.
type Catalog struct {
	variants map[string][]*Package
	byID     map[ID]*Package
	order    []*Package
}

// ErrDuplicatePackage is returned by Builder.AddPackage when the same
// (name, version) pair is added twice. The teacher's package database
// silently merged duplicate entries; this catalog requires the caller be
// explicit instead (see DESIGN.md).
var ErrDuplicatePackage = errors.New("duplicate package name+version")

// ErrUnknownPackage names the case of a reference whose name has no
// variants in the catalog. No function in this package returns it: Build
// drops dependency groups that resolve to nothing and ignores conflicts
// that match nothing.
var ErrUnknownPackage = errors.New("unknown package")

// Variants returns every variant known for name, in insertion order. For a
// name with no variants the returned slice is nil.
func (c *Catalog) Variants(name string) []*Package {
	return c.variants[name]
}

// ByID returns the package with the given ID, or (nil, false) if no such
// package exists in the catalog.
func (c *Catalog) ByID(id ID) (*Package, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns every package in the catalog, in insertion (ID) order.
func (c *Catalog) All() []*Package {
	return c.order
}

// Len returns the number of packages in the catalog. It is the N referenced
// throughout the solver pipeline ("variables are exactly the package ids
// 1..N") and also what the mode selector compares against its threshold.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Match returns the IDs of every package matching Reference r, in catalog
// (insertion) order.
func (c *Catalog) Match(r Reference) []ID {
	var ids []ID
	for _, p := range c.variants[r.Name] {
		if r.Matches(p) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// FirstMatch returns the first variant of r.Name matching r, or (0, false).
func (c *Catalog) FirstMatch(r Reference) (ID, bool) {
	for _, p := range c.variants[r.Name] {
		if r.Matches(p) {
			return p.ID, true
		}
	}
	return 0, false
}
