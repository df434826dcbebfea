package graph

// ConnectedComponents partitions an undirected graph's vertices into
// maximal connected sets, identified by 0-based component ids in
// order of discovery.
type ConnectedComponents struct {
	id    []int
	sizes []int64
	count int
}

func NewConnectedComponents(g *Graph) (*ConnectedComponents, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cc := &ConnectedComponents{
		id: make([]int, g.V()),
	}
	marked := make([]bool, g.V())
	var dfs func(v int)
	dfs = func(v int) {
		marked[v] = true
		cc.id[v] = cc.count
		cc.sizes[cc.count]++
		for _, w := range g.Adj(v) {
			if !marked[w] {
				dfs(w)
			}
		}
	}
	for v := 0; v < g.V(); v++ {
		if !marked[v] {
			cc.sizes = append(cc.sizes, 0)
			dfs(v)
			cc.count++
		}
	}
	return cc, nil
}

func (cc *ConnectedComponents) Count() int {
	return cc.count
}

func (cc *ConnectedComponents) ID(v int) (int, error) {
	if v < 0 || v >= len(cc.id) {
		return 0, ErrVertexOutOfRange
	}
	return cc.id[v], nil
}

func (cc *ConnectedComponents) Size(v int) (int64, error) {
	id, err := cc.ID(v)
	if err != nil {
		return 0, err
	}
	return cc.sizes[id], nil
}

func (cc *ConnectedComponents) Connected(v, w int) (bool, error) {
	vid, err := cc.ID(v)
	if err != nil {
		return false, err
	}
	wid, err := cc.ID(w)
	if err != nil {
		return false, err
	}
	return vid == wid, nil
}
