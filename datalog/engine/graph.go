package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arnegard/datalogo/datalog/lang"
)

// Graph is the rule dependency graph of spec.md §4.6: a directed graph on
// node set {0,...,len(rules)-1} with edge i -> j iff some body atom of
// rule i names the head predicate of rule j. It is informational only —
// the fixed-point driver does not consult it.
type Graph struct {
	adjacency [][]int
}

// BuildDependencyGraph constructs the dependency graph for rules.
func BuildDependencyGraph(rules []lang.Rule) *Graph {
	g := &Graph{adjacency: make([][]int, len(rules))}

	headIndex := make(map[string][]int, len(rules))
	for j, r := range rules {
		headIndex[r.Head.Name] = append(headIndex[r.Head.Name], j)
	}

	for i, r := range rules {
		edges := make(map[int]struct{})
		for _, atom := range r.Body {
			for _, j := range headIndex[atom.Name] {
				edges[j] = struct{}{}
			}
		}
		adj := make([]int, 0, len(edges))
		for j := range edges {
			adj = append(adj, j)
		}
		sort.Ints(adj)
		g.adjacency[i] = adj
	}
	return g
}

// Adjacency returns the ascending adjacency list for node i.
func (g *Graph) Adjacency(i int) []int {
	return g.adjacency[i]
}

// Size returns the number of nodes in the graph.
func (g *Graph) Size() int {
	return len(g.adjacency)
}

// String renders the graph as one line per node, `R<i>:R<j0>,R<j1>,...`,
// with ascending adjacency indices, comma-separated without spaces.
func (g *Graph) String() string {
	var b strings.Builder
	for i, adj := range g.adjacency {
		targets := make([]string, len(adj))
		for k, j := range adj {
			targets[k] = fmt.Sprintf("R%d", j)
		}
		fmt.Fprintf(&b, "R%d:%s\n", i, strings.Join(targets, ","))
	}
	return b.String()
}
