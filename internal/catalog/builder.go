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

import "github.com/pkg/errors"

// Builder assembles a Catalog in two passes: every package is added (and
// assigned its ID) first, then Build resolves every package's raw
// dependency/conflict reference strings against the now-complete set of
// variants. This mirrors the teacher's PkgDB, which likewise only resolves
// relations once all packages are present, but a Builder is one-shot and
// produces an immutable Catalog instead of a long-lived mutable database.
type Builder struct {
	variants map[string][]*Package
	byID     map[ID]*Package
	order    []*Package
	nextID   ID
	seen     map[string]struct{} // name+raw_version, dup detection
}

// NewBuilder returns an empty Builder ready to accept packages.
func NewBuilder() *Builder {
	return &Builder{
		variants: make(map[string][]*Package),
		byID:     make(map[ID]*Package),
		seen:     make(map[string]struct{}),
		nextID:   1,
	}
}

// AddPackage registers one catalog entry. depends is an ordered list of
// dependency groups, each a list of raw reference strings (the disjunction);
// conflicts is a list of raw reference strings. Both are resolved later, in
// Build. Returns the freshly allocated ID.
func (b *Builder) AddPackage(name, rawVersion string, size int, depends [][]string, conflicts []string) (ID, error) {
	key := name + "\x00" + rawVersion
	if _, ok := b.seen[key]; ok {
		return 0, errors.Wrapf(ErrDuplicatePackage, "%s=%s", name, rawVersion)
	}
	b.seen[key] = struct{}{}

	p := &Package{
		ID:           b.nextID,
		Name:         name,
		RawVersion:   rawVersion,
		Version:      NewVersion(rawVersion),
		Size:         size,
		Conflicts:    make(map[ID]struct{}),
		rawDepends:   depends,
		rawConflicts: conflicts,
	}
	b.nextID++

	b.variants[name] = append(b.variants[name], p)
	b.byID[p.ID] = p
	b.order = append(b.order, p)

	return p.ID, nil
}

// Build resolves every package's dependency groups and conflicts against
// the complete set of added packages, and returns the resulting immutable
// Catalog.
//
// Per spec: an ID that is both in a dep group and in the same package's
// conflict set is stripped from that dep group; if doing so empties the
// group, the group is dropped instead of kept as an unsatisfiable
// requirement.
func (b *Builder) Build() (*Catalog, error) {
	c := &Catalog{
		variants: b.variants,
		byID:     b.byID,
		order:    b.order,
	}

	for _, p := range b.order {
		for _, ref := range p.rawConflicts {
			r, err := ParseReference(ref)
			if err != nil {
				return nil, err
			}
			for _, id := range c.Match(r) {
				if id == p.ID {
					continue
				}
				p.Conflicts[id] = struct{}{}
			}
		}
	}

	for _, p := range b.order {
		for _, group := range p.rawDepends {
			ids, err := resolveGroup(c, group, p)
			if err != nil {
				return nil, err
			}
			if len(ids) == 0 {
				continue
			}
			p.DepGroups = append(p.DepGroups, ids)
		}
		p.rawDepends = nil
		p.rawConflicts = nil
	}

	return c, nil
}

// resolveGroup expands every reference in a dependency group to the union
// of matching catalog IDs, then strips any ID that is also in owner's
// conflict set.
func resolveGroup(c *Catalog, group []string, owner *Package) ([]ID, error) {
	dedup := make(map[ID]struct{})
	var ids []ID
	for _, ref := range group {
		r, err := ParseReference(ref)
		if err != nil {
			return nil, err
		}
		for _, id := range c.Match(r) {
			if owner.HasConflict(id) {
				continue
			}
			if _, ok := dedup[id]; ok {
				continue
			}
			dedup[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
