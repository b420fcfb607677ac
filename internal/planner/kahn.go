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

package planner

import (
	"github.com/pkg/errors"

	"github.com/rancher-sandbox/depsolve/internal/catalog"
)

// ErrCycle is returned by topoSort when the given edge set has no valid
// linear order.
var ErrCycle = errors.New("dependency subgraph contains a cycle")

// topoSort runs Kahn's algorithm over nodes with edges[from] = list of
// "from must come before to" successors. Tie-breaking within the ready set
// follows nodes' input order, which keeps output deterministic without
// being semantically required.
func topoSort(nodes []catalog.ID, edges map[catalog.ID][]catalog.ID) ([]catalog.ID, error) {
	indegree := make(map[catalog.ID]int, len(nodes))
	for _, n := range nodes {
		indegree[n] = 0
	}
	for _, successors := range edges {
		for _, to := range successors {
			if _, ok := indegree[to]; ok {
				indegree[to]++
			}
		}
	}

	var ready []catalog.ID
	for _, n := range nodes {
		if indegree[n] == 0 {
			ready = append(ready, n)
		}
	}

	out := make([]catalog.ID, 0, len(nodes))
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		out = append(out, n)
		for _, to := range edges[n] {
			if _, ok := indegree[to]; !ok {
				continue
			}
			indegree[to]--
			if indegree[to] == 0 {
				ready = append(ready, to)
			}
		}
	}

	if len(out) != len(nodes) {
		return nil, ErrCycle
	}
	return out, nil
}
