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

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
)

func buildCatalog(t *testing.T) *catalog.Catalog {
	b := catalog.NewBuilder()
	_, err := b.AddPackage("A", "1", 10, nil, nil)
	require.NoError(t, err)
	_, err = b.AddPackage("A", "2", 5, nil, nil)
	require.NoError(t, err)
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestParseInitialSkipsUnmatched(t *testing.T) {
	c := buildCatalog(t)
	req, err := Parse(c, []string{"A=1", "Ghost=1"}, nil)
	require.NoError(t, err)
	assert.Len(t, req.Initial, 1)
	a1, _ := c.FirstMatch(mustRef(t, "A=1"))
	assert.Contains(t, req.Initial, a1)
}

func TestParseUninstallResolvesAllVariants(t *testing.T) {
	c := buildCatalog(t)
	req, err := Parse(c, nil, []string{"-A"})
	require.NoError(t, err)
	assert.Len(t, req.Uninstall, 2)
}

func TestParseInstallStaysUnresolved(t *testing.T) {
	c := buildCatalog(t)
	req, err := Parse(c, nil, []string{"+A"})
	require.NoError(t, err)
	require.Len(t, req.Install, 1)
	assert.Equal(t, "A", req.Install[0].Name)
}

func TestParseRejectsBadPrefix(t *testing.T) {
	c := buildCatalog(t)
	_, err := Parse(c, nil, []string{"A=1"})
	assert.ErrorIs(t, err, ErrUnknownPrefix)
}

func mustRef(t *testing.T, raw string) catalog.Reference {
	r, err := catalog.ParseReference(raw)
	require.NoError(t, err)
	return r
}
