package graph

import (
	"github.com/samber/lo"

	"github.com/xalgo/xalgo/lib/queue"
	"github.com/xalgo/xalgo/lib/unionfind"
)

// MST is a minimum spanning tree, or a minimum spanning forest when
// the graph is disconnected.
type MST interface {
	Edges() []*Edge
	Weight() float64
}

func newEdgeMinPQ() queue.PriorityQueue[*Edge] {
	return queue.NewArrayPriorityQueue[*Edge](
		queue.WithArrayPriorityQueueComparator[*Edge](func(i, j *Edge) queue.CmpEnum {
			switch {
			case i.Weight() < j.Weight():
				return -1
			case i.Weight() > j.Weight():
				return 1
			default:
				return 0
			}
		}),
	)
}

type lazyPrimMST struct {
	edges []*Edge
}

func (mst *lazyPrimMST) Edges() []*Edge {
	return mst.edges
}

func (mst *lazyPrimMST) Weight() float64 {
	return lo.SumBy(mst.edges, (*Edge).Weight)
}

// NewLazyPrimMST grows the tree one vertex at a time, keeping every
// crossing edge seen so far in a priority queue and discarding the
// stale ones lazily as they surface.
func NewLazyPrimMST(g *EdgeWeightedGraph) (MST, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	mst := &lazyPrimMST{}
	marked := make([]bool, g.V())
	pq := newEdgeMinPQ()
	visit := func(v int) {
		marked[v] = true
		for _, e := range g.Adj(v) {
			if other, _ := e.Other(v); !marked[other] {
				pq.Push(e)
			}
		}
	}
	for s := 0; s < g.V(); s++ {
		if marked[s] {
			continue
		}
		visit(s)
		for {
			e, ok := pq.Pop()
			if !ok {
				break
			}
			v := e.Either()
			w, _ := e.Other(v)
			if marked[v] && marked[w] {
				continue // stale crossing edge
			}
			mst.edges = append(mst.edges, e)
			if !marked[v] {
				visit(v)
			}
			if !marked[w] {
				visit(w)
			}
		}
	}
	return mst, nil
}

type kruskalMST struct {
	edges []*Edge
}

func (mst *kruskalMST) Edges() []*Edge {
	return mst.edges
}

func (mst *kruskalMST) Weight() float64 {
	return lo.SumBy(mst.edges, (*Edge).Weight)
}

// NewKruskalMST takes edges in ascending weight order and keeps each
// one that joins two distinct components of the union-find forest.
func NewKruskalMST(g *EdgeWeightedGraph) (MST, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	mst := &kruskalMST{}
	pq := newEdgeMinPQ()
	for _, e := range g.Edges() {
		pq.Push(e)
	}
	uf := unionfind.NewWeightedQuickUnionUF(g.V())
	for int64(len(mst.edges)) < int64(g.V())-1 {
		e, ok := pq.Pop()
		if !ok {
			break
		}
		v := e.Either()
		w, _ := e.Other(v)
		if uf.Connected(v, w) {
			continue
		}
		uf.Union(v, w)
		mst.edges = append(mst.edges, e)
	}
	return mst, nil
}
