package graph

// Edge is an undirected weighted edge.
type Edge struct {
	v, w   int
	weight float64
}

func NewEdge(v, w int, weight float64) *Edge {
	return &Edge{v: v, w: w, weight: weight}
}

func (e *Edge) Weight() float64 {
	return e.weight
}

// Either returns one endpoint; Other returns the opposite one.
func (e *Edge) Either() int {
	return e.v
}

func (e *Edge) Other(vertex int) (int, error) {
	switch vertex {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return 0, ErrVertexOutOfRange
	}
}

// EdgeWeightedGraph is an undirected graph whose edges carry float64
// weights, stored once and referenced from both endpoints' adjacency
// lists.
type EdgeWeightedGraph struct {
	adj       [][]*Edge
	edgeCount int64
}

func NewEdgeWeightedGraph(vertices int) (*EdgeWeightedGraph, error) {
	if vertices <= 0 {
		return nil, ErrNonPositiveVertices
	}
	return &EdgeWeightedGraph{adj: make([][]*Edge, vertices)}, nil
}

func (g *EdgeWeightedGraph) V() int {
	return len(g.adj)
}

func (g *EdgeWeightedGraph) E() int64 {
	return g.edgeCount
}

func (g *EdgeWeightedGraph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return ErrVertexOutOfRange
	}
	return nil
}

func (g *EdgeWeightedGraph) AddEdge(e *Edge) error {
	v := e.Either()
	w, _ := e.Other(v)
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if err := g.checkVertex(w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], e)
	g.adj[w] = append(g.adj[w], e)
	g.edgeCount++
	return nil
}

func (g *EdgeWeightedGraph) Adj(v int) []*Edge {
	if g.checkVertex(v) != nil {
		return nil
	}
	return g.adj[v]
}

// Edges returns every edge exactly once, reporting self-loops once as
// well.
func (g *EdgeWeightedGraph) Edges() []*Edge {
	edges := make([]*Edge, 0, g.edgeCount)
	for v := 0; v < g.V(); v++ {
		selfLoops := 0
		for _, e := range g.adj[v] {
			other, _ := e.Other(v)
			if other > v {
				edges = append(edges, e)
			} else if other == v {
				if selfLoops%2 == 0 {
					edges = append(edges, e)
				}
				selfLoops++
			}
		}
	}
	return edges
}
