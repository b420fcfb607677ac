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

package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
	"github.com/rancher-sandbox/depsolve/internal/request"
)

func TestEncodeDependencyAndConflictClauses(t *testing.T) {
	b := catalog.NewBuilder()
	bID, err := b.AddPackage("B", "1", 3, nil, nil)
	require.NoError(t, err)
	cID, err := b.AddPackage("C", "1", 3, nil, nil)
	require.NoError(t, err)
	_, err = b.AddPackage("A", "1", 10, [][]string{{"B", "C"}}, []string{"C"})
	require.NoError(t, err)

	cat, err := b.Build()
	require.NoError(t, err)

	req, err := request.Parse(cat, nil, []string{"+A"})
	require.NoError(t, err)

	f := Encode(cat, req)
	assert.Equal(t, 3, f.NumVars)

	// A's dep group on {B,C} had C stripped (conflict), so only B remains.
	aID := catalog.ID(3)
	foundDep := false
	for _, c := range f.Clauses {
		if len(c) == 2 && c[0] == Not(aID) && c[1] == Of(bID) {
			foundDep = true
		}
	}
	assert.True(t, foundDep, "expected dependency clause (¬A ∨ B)")

	foundConflict := false
	for _, c := range f.Clauses {
		if len(c) == 2 && c[0] == Not(aID) && c[1] == Not(cID) {
			foundConflict = true
		}
	}
	assert.True(t, foundConflict, "expected conflict clause (¬A ∨ ¬C)")
}

func TestEncodeInstallWithNoMatchIsTriviallyUnsat(t *testing.T) {
	b := catalog.NewBuilder()
	_, err := b.AddPackage("A", "1", 1, nil, nil)
	require.NoError(t, err)
	cat, err := b.Build()
	require.NoError(t, err)

	req := &request.Request{Install: []catalog.Reference{{Name: "Ghost"}}}
	f := Encode(cat, req)
	assert.True(t, f.TriviallyUnsat)
}

func TestBlockForbidsExactInstallSet(t *testing.T) {
	f := &Formula{NumVars: 2}
	f.Block([]catalog.ID{1, 2})
	require.Len(t, f.Clauses, 1)
	assert.ElementsMatch(t, Clause{Not(1), Not(2)}, f.Clauses[0])
}

func TestFormulaDIMACSHeader(t *testing.T) {
	f := &Formula{NumVars: 2, Clauses: []Clause{{Of(1), Of(2)}}}
	s := f.String()
	assert.Contains(t, s, "p cnf 2 1\n")
	assert.Contains(t, s, "1 2 0\n")
}
