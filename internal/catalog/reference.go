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

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

// Operator is one of the five version-comparison operators a Reference may
// carry. The zero value means no operator: match any version of the name.
type Operator string

const (
	OpEQ Operator = "="
	OpLT Operator = "<"
	OpGT Operator = ">"
	OpLE Operator = "<="
	OpGE Operator = ">="
)

// nameRE matches the characters a package name may be built from: letters,
// digits, '.', '+', '-'.
var nameRE = regexp.MustCompile(`^[A-Za-z0-9.+-]+$`)

// ErrParse is returned by ParseReference when the raw string is not a valid
// reference. It is fatal to the pipeline: the request must be corrected and
// resolving continues nowhere until then.
var ErrParse = errors.New("malformed reference")

// Reference is a (name, optional operator, optional version) predicate over
// catalog packages.
type Reference struct {
	Name     string
	Operator Operator
	Version  Version
}

// operators, longest prefix first so "<=" is tried before "<".
var operatorsByLength = []Operator{OpLE, OpGE, OpEQ, OpLT, OpGT}

// ParseReference parses one of: name, name=ver, name<ver, name>ver,
// name<=ver, name>=ver.
func ParseReference(raw string) (Reference, error) {
	for _, op := range operatorsByLength {
		idx := indexOperator(raw, string(op))
		if idx < 0 {
			continue
		}
		name := raw[:idx]
		verStr := raw[idx+len(op):]
		if !nameRE.MatchString(name) || verStr == "" {
			return Reference{}, errors.Wrapf(ErrParse, "%q", raw)
		}
		return Reference{Name: name, Operator: op, Version: NewVersion(verStr)}, nil
	}
	if !nameRE.MatchString(raw) {
		return Reference{}, errors.Wrapf(ErrParse, "%q", raw)
	}
	return Reference{Name: raw}, nil
}

// indexOperator returns the first index at which op occurs in raw, after the
// first character (a reference always starts with at least one name byte),
// or -1 if op does not occur.
func indexOperator(raw, op string) int {
	for i := 1; i+len(op) <= len(raw); i++ {
		if raw[i:i+len(op)] == op {
			return i
		}
	}
	return -1
}

func (r Reference) String() string {
	if r.Operator == "" {
		return r.Name
	}
	return fmt.Sprintf("%s%s%s", r.Name, r.Operator, r.Version.Raw)
}

// Matches reports whether Reference r is satisfied by package p: names must
// be equal, and if r carries an operator, p's canonical version must compare
// against r's canonical version per that operator.
func (r Reference) Matches(p *Package) bool {
	if r.Name != p.Name {
		return false
	}
	if r.Operator == "" {
		return true
	}
	cmp := p.Version.Compare(r.Version)
	switch r.Operator {
	case OpEQ:
		return cmp == 0
	case OpLT:
		return cmp < 0
	case OpGT:
		return cmp > 0
	case OpLE:
		return cmp <= 0
	case OpGE:
		return cmp >= 0
	default:
		return false
	}
}
