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

Package document defines the JSON shapes at depsolve's boundary (catalog,
initial state, constraints, output command list). The catalog document is
built into a catalog.Catalog; the initial-state and constraints documents
are returned as raw reference strings, which request.Parse turns into a
request.Request. This is the "external collaborator" spec.md explicitly scopes out of
the algorithmic core.
*/
package document

import (
	"encoding/json"
	"io"

	"github.com/Masterminds/log-go"
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
)

// CatalogDoc is the top-level JSON shape of a catalog document.
type CatalogDoc struct {
	Packages []PackageDoc `json:"packages"`
}

// PackageDoc is one catalog entry as it appears on the wire.
type PackageDoc struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Size      int        `json:"size"`
	Depends   [][]string `json:"depends"`
	Conflicts []string   `json:"conflicts"`
}

// ErrEmptyCatalog is returned when a catalog document declares zero
// packages; nothing downstream can usefully run against it.
var ErrEmptyCatalog = errors.New("catalog document declares no packages")

// LoadCatalog decodes a catalog document from r and builds a
// catalog.Catalog from it. logger receives a warning (never an error) for
// every package version that github.com/Masterminds/semver/v3 rejects as
// not valid semantic versioning: the solver's own Version comparison is
// textual per spec.md and does not require semver, but a loud warning
// helps an operator notice a typo before it silently misorders.
func LoadCatalog(r io.Reader, logger log.Logger) (*catalog.Catalog, error) {
	var doc CatalogDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding catalog document")
	}
	if len(doc.Packages) == 0 {
		return nil, ErrEmptyCatalog
	}

	b := catalog.NewBuilder()
	for _, pkg := range doc.Packages {
		if logger != nil {
			if _, err := semver.NewVersion(pkg.Version); err != nil {
				logger.Warnf("package %s: version %q is not valid semver (%v); using it as-is", pkg.Name, pkg.Version, err)
			}
		}
		if _, err := b.AddPackage(pkg.Name, pkg.Version, pkg.Size, pkg.Depends, pkg.Conflicts); err != nil {
			return nil, errors.Wrapf(err, "package %s=%s", pkg.Name, pkg.Version)
		}
	}

	return b.Build()
}

// LoadInitial decodes an initial-state document (an array of reference
// strings) from r.
func LoadInitial(r io.Reader) ([]string, error) {
	var refs []string
	if err := json.NewDecoder(r).Decode(&refs); err != nil {
		return nil, errors.Wrap(err, "decoding initial state document")
	}
	return refs, nil
}

// LoadConstraints decodes a constraints document (an array of
// '+'/'-'-prefixed reference strings) from r.
func LoadConstraints(r io.Reader) ([]string, error) {
	var constraints []string
	if err := json.NewDecoder(r).Decode(&constraints); err != nil {
		return nil, errors.Wrap(err, "decoding constraints document")
	}
	return constraints, nil
}

// EncodeOutput marshals a command list to the wire output shape: a JSON
// array of "+name=version"/"-name=version" strings.
func EncodeOutput(commands []string) ([]byte, error) {
	out, err := json.Marshal(commands)
	if err != nil {
		return nil, errors.Wrap(err, "encoding output document")
	}
	return out, nil
}
