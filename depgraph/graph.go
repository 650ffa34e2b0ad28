package depgraph

import "sort"

// Edge is one producer→consumer dependency: From must be scheduled
// before To.
type Edge struct {
	From string
	To   string
}

// Graph is a directed adjacency structure over feature ids. Zero value
// is not useful; construct with New.
type Graph struct {
	nodes []string            // insertion order, for diagnostics only
	seen  map[string]struct{} // node existence
	out   map[string][]string // From -> []To, insertion order
	edges []Edge              // all edges, insertion order
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		seen: make(map[string]struct{}),
		out:  make(map[string][]string),
	}
}

// AddNode registers id if not already present. Idempotent.
func (g *Graph) AddNode(id string) {
	if _, ok := g.seen[id]; ok {
		return
	}
	g.seen[id] = struct{}{}
	g.nodes = append(g.nodes, id)
}

// AddEdge records a From→To dependency, adding both endpoints as nodes
// if needed. Duplicate edges are recorded once.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	for _, existing := range g.out[from] {
		if existing == to {
			return
		}
	}
	g.out[from] = append(g.out[from], to)
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// Nodes returns every node id in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns every edge in insertion order, for diagnostics.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// sortedNodes returns every node id in ascending lexicographic order,
// the tie-break Schedule uses to stay deterministic across differently
// ordered inputs with identical node/edge sets.
func (g *Graph) sortedNodes() []string {
	out := g.Nodes()
	sort.Strings(out)
	return out
}
