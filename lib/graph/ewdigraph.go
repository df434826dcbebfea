package graph

// DirectedEdge is a weighted edge with a direction.
type DirectedEdge struct {
	from, to int
	weight   float64
}

func NewDirectedEdge(from, to int, weight float64) *DirectedEdge {
	return &DirectedEdge{from: from, to: to, weight: weight}
}

func (e *DirectedEdge) From() int {
	return e.from
}

func (e *DirectedEdge) To() int {
	return e.to
}

func (e *DirectedEdge) Weight() float64 {
	return e.weight
}

// EdgeWeightedDigraph is a digraph whose edges carry float64 weights.
type EdgeWeightedDigraph struct {
	adj       [][]*DirectedEdge
	edgeCount int64
}

func NewEdgeWeightedDigraph(vertices int) (*EdgeWeightedDigraph, error) {
	if vertices <= 0 {
		return nil, ErrNonPositiveVertices
	}
	return &EdgeWeightedDigraph{adj: make([][]*DirectedEdge, vertices)}, nil
}

func (g *EdgeWeightedDigraph) V() int {
	return len(g.adj)
}

func (g *EdgeWeightedDigraph) E() int64 {
	return g.edgeCount
}

func (g *EdgeWeightedDigraph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return ErrVertexOutOfRange
	}
	return nil
}

func (g *EdgeWeightedDigraph) AddEdge(e *DirectedEdge) error {
	if err := g.checkVertex(e.From()); err != nil {
		return err
	}
	if err := g.checkVertex(e.To()); err != nil {
		return err
	}
	g.adj[e.From()] = append(g.adj[e.From()], e)
	g.edgeCount++
	return nil
}

func (g *EdgeWeightedDigraph) Adj(v int) []*DirectedEdge {
	if g.checkVertex(v) != nil {
		return nil
	}
	return g.adj[v]
}

func (g *EdgeWeightedDigraph) Edges() []*DirectedEdge {
	edges := make([]*DirectedEdge, 0, g.edgeCount)
	for v := 0; v < g.V(); v++ {
		edges = append(edges, g.adj[v]...)
	}
	return edges
}
