package graph

import "github.com/samber/lo"

// reversePostorder runs depth-first search over every vertex and
// records the order in which vertices finish, reversed. On a DAG this
// is a topological order.
func reversePostorder(g *Digraph) []int {
	postorder := make([]int, 0, g.V())
	marked := make([]bool, g.V())
	var dfs func(v int)
	dfs = func(v int) {
		marked[v] = true
		for _, w := range g.Adj(v) {
			if !marked[w] {
				dfs(w)
			}
		}
		postorder = append(postorder, v)
	}
	for v := 0; v < g.V(); v++ {
		if !marked[v] {
			dfs(v)
		}
	}
	return lo.Reverse(postorder)
}

// Topological returns a topological order of the digraph, or
// ErrCyclicGraph when none exists.
func Topological(g *Digraph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cycle, err := NewDirectedCycle(g)
	if err != nil {
		return nil, err
	}
	if cycle.HasCycle() {
		return nil, ErrCyclicGraph
	}
	return reversePostorder(g), nil
}
