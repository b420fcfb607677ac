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

Package request turns the user's raw initial-state and constraint strings
into a catalog.Catalog-relative Request: concrete package-id sets for the
initial state and uninstalls, plus an unresolved-reference disjunction list
for installs.
*/
package request

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
)

// Request is the tuple (initial, install, uninstall) that the CNF encoder
// turns into clauses.
type Request struct {
	Initial   map[catalog.ID]struct{}
	Install   []catalog.Reference
	Uninstall map[catalog.ID]struct{}
}

// ErrUnknownPrefix is returned when a constraint string does not start with
// '+' or '-'.
var ErrUnknownPrefix = errors.New("constraint must start with '+' or '-'")

// Parse builds a Request from raw initial-state reference strings and raw
// prefixed constraint strings, resolving every reference against cat.
//
// Initial references that match no package are silently skipped (per
// spec); a malformed reference or constraint is a parse error and aborts
// the whole request.
func Parse(cat *catalog.Catalog, initialRefs, constraints []string) (*Request, error) {
	req := &Request{
		Initial:   make(map[catalog.ID]struct{}),
		Uninstall: make(map[catalog.ID]struct{}),
	}

	for _, raw := range initialRefs {
		r, err := catalog.ParseReference(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "initial %q", raw)
		}
		if id, ok := cat.FirstMatch(r); ok {
			req.Initial[id] = struct{}{}
		}
	}

	for _, raw := range constraints {
		if len(raw) == 0 {
			return nil, errors.Wrapf(ErrUnknownPrefix, "%q", raw)
		}
		prefix, rest := raw[0], raw[1:]
		if prefix != '+' && prefix != '-' {
			return nil, errors.Wrapf(ErrUnknownPrefix, "%q", raw)
		}
		r, err := catalog.ParseReference(rest)
		if err != nil {
			return nil, errors.Wrapf(err, "constraint %q", raw)
		}
		switch prefix {
		case '-':
			for _, id := range cat.Match(r) {
				req.Uninstall[id] = struct{}{}
			}
		case '+':
			req.Install = append(req.Install, r)
		default:
			return nil, errors.Wrapf(ErrUnknownPrefix, "%q", raw)
		}
	}

	return req, nil
}

// String renders req as a debug-friendly one-liner.
func (req *Request) String() string {
	var sb strings.Builder
	sb.WriteString("initial=")
	sb.WriteString(idSetString(req.Initial))
	sb.WriteString(" uninstall=")
	sb.WriteString(idSetString(req.Uninstall))
	sb.WriteString(" install=[")
	for i, r := range req.Install {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(r.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func idSetString(set map[catalog.ID]struct{}) string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for id := range set {
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(strconv.Itoa(int(id)))
	}
	sb.WriteString("}")
	return sb.String()
}
