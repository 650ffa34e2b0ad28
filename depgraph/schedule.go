package depgraph

import (
	"sort"

	"github.com/trueform/compiler/ir"
)

// Schedule returns a topological ordering of g's nodes via Kahn's
// algorithm with a sorted-insertion frontier: at each step the
// lexicographically smallest zero-indegree id is emitted next. This
// makes the result depend only on the graph's node/edge set, never on
// the order features were declared in, so rebuilding the same part
// always yields the same schedule (the "topo stability" guarantee).
//
// If any nodes remain unscheduled once the frontier is exhausted, the
// graph has a cycle; the returned error carries every such id, sorted,
// as a single comma-joined referenceId for reproducible diagnostics.
func Schedule(g *Graph) ([]string, error) {
	indegree := make(map[string]int, len(g.nodes))
	for _, n := range g.nodes {
		indegree[n] = 0
	}
	for _, e := range g.edges {
		indegree[e.To]++
	}

	frontier := make([]string, 0, len(g.nodes))
	for _, n := range g.sortedNodes() {
		if indegree[n] == 0 {
			frontier = append(frontier, n)
		}
	}
	sort.Strings(frontier)

	order := make([]string, 0, len(g.nodes))
	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		order = append(order, next)

		for _, to := range g.out[next] {
			indegree[to]--
			if indegree[to] == 0 {
				frontier = insertSorted(frontier, to)
			}
		}
	}

	if len(order) < len(g.nodes) {
		scheduled := make(map[string]struct{}, len(order))
		for _, id := range order {
			scheduled[id] = struct{}{}
		}
		var stuck []string
		for _, n := range g.sortedNodes() {
			if _, ok := scheduled[n]; !ok {
				stuck = append(stuck, n)
			}
		}
		return nil, cycleError(stuck)
	}

	return order, nil
}

// insertSorted inserts id into the already-sorted slice s, keeping it
// sorted, and returns the result.
func insertSorted(s []string, id string) []string {
	i := sort.SearchStrings(s, id)
	s = append(s, "")
	copy(s[i+1:], s[i:])
	s[i] = id
	return s
}

func cycleError(ids []string) error {
	joined := ""
	for i, id := range ids {
		if i > 0 {
			joined += ","
		}
		joined += id
	}
	return ir.NewError(ir.CodeCycle, "feature dependency graph contains a cycle", "referenceId", joined)
}
