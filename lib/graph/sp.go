package graph

import (
	"math"

	"github.com/xalgo/xalgo/lib/queue"
	"github.com/xalgo/xalgo/lib/stack"
)

// ShortestPaths answers single-source shortest-path queries over a
// weighted digraph. Unreachable vertices report +Inf distance.
type ShortestPaths interface {
	DistTo(v int) (float64, error)
	HasPathTo(v int) bool
	// PathTo returns the edges from the source to v in order.
	PathTo(v int) ([]*DirectedEdge, bool)
}

type shortestPaths struct {
	distTo []float64
	edgeTo []*DirectedEdge
}

func newShortestPaths(vertices, source int) shortestPaths {
	sp := shortestPaths{
		distTo: make([]float64, vertices),
		edgeTo: make([]*DirectedEdge, vertices),
	}
	for v := range sp.distTo {
		sp.distTo[v] = math.Inf(1)
	}
	sp.distTo[source] = 0
	return sp
}

func (sp *shortestPaths) DistTo(v int) (float64, error) {
	if v < 0 || v >= len(sp.distTo) {
		return 0, ErrVertexOutOfRange
	}
	return sp.distTo[v], nil
}

func (sp *shortestPaths) HasPathTo(v int) bool {
	return v >= 0 && v < len(sp.distTo) && !math.IsInf(sp.distTo[v], 1)
}

func (sp *shortestPaths) PathTo(v int) ([]*DirectedEdge, bool) {
	if !sp.HasPathTo(v) {
		return nil, false
	}
	aux := stack.NewLinkedStack[*DirectedEdge]()
	for e := sp.edgeTo[v]; e != nil; e = sp.edgeTo[e.From()] {
		aux.Push(e)
	}
	path := make([]*DirectedEdge, 0, aux.Len())
	for {
		e, ok := aux.Pop()
		if !ok {
			break
		}
		path = append(path, e)
	}
	return path, true
}

type dijkstraSP struct {
	shortestPaths
}

// NewDijkstraSP computes shortest paths from source by relaxing
// vertices in ascending distance order off an indexed priority queue.
// Every edge weight must be non-negative.
func NewDijkstraSP(g *EdgeWeightedDigraph, source int) (ShortestPaths, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.checkVertex(source); err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if e.Weight() < 0 {
			return nil, ErrNegativeWeight
		}
	}
	sp := &dijkstraSP{shortestPaths: newShortestPaths(g.V(), source)}
	pq := queue.NewIndexMinPQ[float64](g.V())
	if err := pq.Insert(source, 0); err != nil {
		return nil, err
	}
	for !pq.IsEmpty() {
		v, err := pq.DelMin()
		if err != nil {
			return nil, err
		}
		for _, e := range g.Adj(v) {
			w := e.To()
			if sp.distTo[w] <= sp.distTo[v]+e.Weight() {
				continue
			}
			sp.distTo[w] = sp.distTo[v] + e.Weight()
			sp.edgeTo[w] = e
			if pq.Contains(w) {
				err = pq.DecreaseKey(w, sp.distTo[w])
			} else {
				err = pq.Insert(w, sp.distTo[w])
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return sp, nil
}

type acyclicSP struct {
	shortestPaths
}

// NewAcyclicSP relaxes vertices in topological order, which handles
// negative weights but requires a DAG.
func NewAcyclicSP(g *EdgeWeightedDigraph, source int) (ShortestPaths, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.checkVertex(source); err != nil {
		return nil, err
	}
	skeleton, err := NewDigraph(g.V())
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if err = skeleton.AddEdge(e.From(), e.To()); err != nil {
			return nil, err
		}
	}
	order, err := Topological(skeleton)
	if err != nil {
		return nil, err
	}
	sp := &acyclicSP{shortestPaths: newShortestPaths(g.V(), source)}
	for _, v := range order {
		for _, e := range g.Adj(v) {
			if w := e.To(); sp.distTo[w] > sp.distTo[v]+e.Weight() {
				sp.distTo[w] = sp.distTo[v] + e.Weight()
				sp.edgeTo[w] = e
			}
		}
	}
	return sp, nil
}

// BellmanFordSP computes shortest paths in the presence of negative
// weights by queue-based relaxation. When a negative cycle is
// reachable from the source, the constructor still succeeds; distance
// queries then fail with ErrNegativeCycle and NegativeCycle exposes
// one witness cycle.
type BellmanFordSP struct {
	shortestPaths
	negativeCycle []*DirectedEdge
}

func NewBellmanFordSP(g *EdgeWeightedDigraph, source int) (*BellmanFordSP, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.checkVertex(source); err != nil {
		return nil, err
	}
	sp := &BellmanFordSP{shortestPaths: newShortestPaths(g.V(), source)}
	onQueue := make([]bool, g.V())
	frontier := queue.NewLinkedQueue[int]()
	frontier.Enqueue(source)
	onQueue[source] = true
	var cost int64
	for sp.negativeCycle == nil {
		v, ok := frontier.Dequeue()
		if !ok {
			break
		}
		onQueue[v] = false
		for _, e := range g.Adj(v) {
			w := e.To()
			if sp.distTo[w] > sp.distTo[v]+e.Weight() {
				sp.distTo[w] = sp.distTo[v] + e.Weight()
				sp.edgeTo[w] = e
				if !onQueue[w] {
					frontier.Enqueue(w)
					onQueue[w] = true
				}
			}
			cost++
			if cost%int64(g.V()) == 0 {
				sp.findNegativeCycle(g.V())
				if sp.negativeCycle != nil {
					break
				}
			}
		}
	}
	return sp, nil
}

// findNegativeCycle looks for a cycle in the shortest-path tree built
// so far; one can only appear after relaxing a negative cycle.
func (sp *BellmanFordSP) findNegativeCycle(vertices int) {
	skeleton, _ := NewDigraph(vertices)
	for _, e := range sp.edgeTo {
		if e != nil {
			_ = skeleton.AddEdge(e.From(), e.To())
		}
	}
	finder, _ := NewDirectedCycle(skeleton)
	if !finder.HasCycle() {
		return
	}
	cycle := finder.Cycle()
	for i := 0; i+1 < len(cycle); i++ {
		sp.negativeCycle = append(sp.negativeCycle, sp.edgeTo[cycle[i+1]])
	}
}

func (sp *BellmanFordSP) HasNegativeCycle() bool {
	return sp.negativeCycle != nil
}

func (sp *BellmanFordSP) NegativeCycle() []*DirectedEdge {
	return sp.negativeCycle
}

func (sp *BellmanFordSP) DistTo(v int) (float64, error) {
	if sp.negativeCycle != nil {
		return 0, ErrNegativeCycle
	}
	return sp.shortestPaths.DistTo(v)
}
