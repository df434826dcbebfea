package graph

import (
	"github.com/xalgo/xalgo/lib/queue"
	"github.com/xalgo/xalgo/lib/stack"
)

// Paths answers single-source connectivity queries computed eagerly
// at construction time.
type Paths interface {
	HasPathTo(v int) bool
	// PathTo returns the vertices from the source to v inclusive.
	PathTo(v int) ([]int, bool)
}

type paths struct {
	marked []bool
	edgeTo []int
	source int
}

func (p *paths) HasPathTo(v int) bool {
	return v >= 0 && v < len(p.marked) && p.marked[v]
}

func (p *paths) PathTo(v int) ([]int, bool) {
	if !p.HasPathTo(v) {
		return nil, false
	}
	aux := stack.NewLinkedStack[int]()
	for x := v; x != p.source; x = p.edgeTo[x] {
		aux.Push(x)
	}
	aux.Push(p.source)
	path := make([]int, 0, aux.Len())
	for {
		x, ok := aux.Pop()
		if !ok {
			break
		}
		path = append(path, x)
	}
	return path, true
}

// NewDepthFirstPaths explores the graph by recursive depth-first
// search. Paths it finds are not necessarily shortest.
func NewDepthFirstPaths(g *Graph, source int) (Paths, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.checkVertex(source); err != nil {
		return nil, err
	}
	p := &paths{
		marked: make([]bool, g.V()),
		edgeTo: make([]int, g.V()),
		source: source,
	}
	var dfs func(v int)
	dfs = func(v int) {
		p.marked[v] = true
		for _, w := range g.Adj(v) {
			if !p.marked[w] {
				p.edgeTo[w] = v
				dfs(w)
			}
		}
	}
	dfs(source)
	return p, nil
}

// BreadthFirstPaths finds shortest paths in edge count from a single
// source.
type BreadthFirstPaths struct {
	paths
	distTo []int64
}

// DistTo returns the edge distance from the source to v, or -1 when v
// is unreachable.
func (p *BreadthFirstPaths) DistTo(v int) int64 {
	if !p.HasPathTo(v) {
		return -1
	}
	return p.distTo[v]
}

func NewBreadthFirstPaths(g *Graph, source int) (*BreadthFirstPaths, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.checkVertex(source); err != nil {
		return nil, err
	}
	p := &BreadthFirstPaths{
		paths: paths{
			marked: make([]bool, g.V()),
			edgeTo: make([]int, g.V()),
			source: source,
		},
		distTo: make([]int64, g.V()),
	}
	frontier := queue.NewLinkedQueue[int]()
	p.marked[source] = true
	frontier.Enqueue(source)
	for {
		v, ok := frontier.Dequeue()
		if !ok {
			break
		}
		for _, w := range g.Adj(v) {
			if !p.marked[w] {
				p.marked[w] = true
				p.edgeTo[w] = v
				p.distTo[w] = p.distTo[v] + 1
				frontier.Enqueue(w)
			}
		}
	}
	return p, nil
}
