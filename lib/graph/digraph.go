package graph

// Digraph is a directed graph over the fixed vertex set 0..V-1.
type Digraph struct {
	adj       [][]int
	indegree  []int
	edgeCount int64
}

func NewDigraph(vertices int) (*Digraph, error) {
	if vertices <= 0 {
		return nil, ErrNonPositiveVertices
	}
	return &Digraph{
		adj:      make([][]int, vertices),
		indegree: make([]int, vertices),
	}, nil
}

func (g *Digraph) V() int {
	return len(g.adj)
}

func (g *Digraph) E() int64 {
	return g.edgeCount
}

func (g *Digraph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return ErrVertexOutOfRange
	}
	return nil
}

func (g *Digraph) AddEdge(from, to int) error {
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}
	g.adj[from] = append(g.adj[from], to)
	g.indegree[to]++
	g.edgeCount++
	return nil
}

func (g *Digraph) Adj(v int) []int {
	if g.checkVertex(v) != nil {
		return nil
	}
	return g.adj[v]
}

func (g *Digraph) Outdegree(v int) int {
	return len(g.Adj(v))
}

func (g *Digraph) Indegree(v int) int {
	if g.checkVertex(v) != nil {
		return 0
	}
	return g.indegree[v]
}

// Reverse returns a copy of the digraph with every edge flipped.
func (g *Digraph) Reverse() *Digraph {
	reversed, _ := NewDigraph(g.V())
	for v := 0; v < g.V(); v++ {
		for _, w := range g.adj[v] {
			_ = reversed.AddEdge(w, v)
		}
	}
	return reversed
}
