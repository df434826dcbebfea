package graph

import "errors"

// Sentinel errors shared across the graph algorithms.
var (
	ErrNonPositiveVertices = errors.New("[graph] vertex count must be positive")
	ErrVertexOutOfRange    = errors.New("[graph] vertex out of range")
	ErrNilGraph            = errors.New("[graph] graph is nil")
	ErrCyclicGraph         = errors.New("[graph] graph contains a directed cycle")
	ErrNegativeCycle       = errors.New("[graph] negative cycle reachable from source")
	ErrNegativeWeight      = errors.New("[graph] negative edge weight encountered")
	ErrNotBipartite        = errors.New("[graph] graph is not two-colorable")
)

// Graph is an undirected graph over the fixed vertex set 0..V-1,
// stored as adjacency lists. Self-loops and parallel edges are
// allowed; both contribute to E and to vertex degrees.
type Graph struct {
	adj       [][]int
	edgeCount int64
}

func NewGraph(vertices int) (*Graph, error) {
	if vertices <= 0 {
		return nil, ErrNonPositiveVertices
	}
	return &Graph{adj: make([][]int, vertices)}, nil
}

// V returns the vertex count.
func (g *Graph) V() int {
	return len(g.adj)
}

// E returns the edge count.
func (g *Graph) E() int64 {
	return g.edgeCount
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return ErrVertexOutOfRange
	}
	return nil
}

func (g *Graph) AddEdge(v, w int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if err := g.checkVertex(w); err != nil {
		return err
	}
	g.adj[v] = append(g.adj[v], w)
	g.adj[w] = append(g.adj[w], v)
	g.edgeCount++
	return nil
}

// Adj returns the neighbors of v in insertion order. The returned
// slice is the live adjacency list and must not be mutated.
func (g *Graph) Adj(v int) []int {
	if g.checkVertex(v) != nil {
		return nil
	}
	return g.adj[v]
}

func (g *Graph) Degree(v int) int {
	return len(g.Adj(v))
}
