package graph

// StronglyConnectedComponents groups a digraph's vertices into
// components that are mutually reachable, via Kosaraju-Sharir: run
// depth-first search in the reverse postorder of the reverse digraph.
// Component ids are assigned in reverse topological order of the
// kernel DAG.
type StronglyConnectedComponents struct {
	id    []int
	count int
}

func NewStronglyConnectedComponents(g *Digraph) (*StronglyConnectedComponents, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	scc := &StronglyConnectedComponents{
		id: make([]int, g.V()),
	}
	marked := make([]bool, g.V())
	var dfs func(v int)
	dfs = func(v int) {
		marked[v] = true
		scc.id[v] = scc.count
		for _, w := range g.Adj(v) {
			if !marked[w] {
				dfs(w)
			}
		}
	}
	for _, v := range reversePostorder(g.Reverse()) {
		if !marked[v] {
			dfs(v)
			scc.count++
		}
	}
	return scc, nil
}

func (scc *StronglyConnectedComponents) Count() int {
	return scc.count
}

func (scc *StronglyConnectedComponents) ID(v int) (int, error) {
	if v < 0 || v >= len(scc.id) {
		return 0, ErrVertexOutOfRange
	}
	return scc.id[v], nil
}

func (scc *StronglyConnectedComponents) StronglyConnected(v, w int) (bool, error) {
	vid, err := scc.ID(v)
	if err != nil {
		return false, err
	}
	wid, err := scc.ID(w)
	if err != nil {
		return false, err
	}
	return vid == wid, nil
}
