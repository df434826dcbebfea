package graph

// Bipartite two-colors an undirected graph by depth-first search, or
// finds an odd-length cycle proving no two-coloring exists.
type Bipartite struct {
	color       []bool
	oddCycle    []int
	isBipartite bool
}

func NewBipartite(g *Graph) (*Bipartite, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	b := &Bipartite{
		color:       make([]bool, g.V()),
		isBipartite: true,
	}
	marked := make([]bool, g.V())
	edgeTo := make([]int, g.V())
	var dfs func(v int)
	dfs = func(v int) {
		marked[v] = true
		for _, w := range g.Adj(v) {
			if !b.isBipartite {
				return
			}
			if !marked[w] {
				edgeTo[w] = v
				b.color[w] = !b.color[v]
				dfs(w)
			} else if b.color[w] == b.color[v] {
				b.isBipartite = false
				b.oddCycle = []int{w}
				for x := v; x != w; x = edgeTo[x] {
					b.oddCycle = append(b.oddCycle, x)
				}
				b.oddCycle = append(b.oddCycle, w)
			}
		}
	}
	for v := 0; v < g.V(); v++ {
		if !marked[v] && b.isBipartite {
			dfs(v)
		}
	}
	return b, nil
}

func (b *Bipartite) IsBipartite() bool {
	return b.isBipartite
}

// Color reports v's side of the bipartition; meaningless when the
// graph is not bipartite.
func (b *Bipartite) Color(v int) (bool, error) {
	if v < 0 || v >= len(b.color) {
		return false, ErrVertexOutOfRange
	}
	if !b.isBipartite {
		return false, ErrNotBipartite
	}
	return b.color[v], nil
}

// OddCycle returns an odd-length cycle when the graph is not
// bipartite, nil otherwise.
func (b *Bipartite) OddCycle() []int {
	return b.oddCycle
}
