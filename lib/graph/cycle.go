package graph

import "github.com/samber/lo"

// Cycle reports whether an undirected graph has a cycle. Self-loops
// and parallel edges count as cycles.
type Cycle struct {
	cycle []int
}

func NewCycle(g *Graph) (*Cycle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	c := &Cycle{}
	if c.findSelfLoop(g) || c.findParallelEdges(g) {
		return c, nil
	}
	marked := make([]bool, g.V())
	edgeTo := make([]int, g.V())
	var dfs func(parent, v int) bool
	dfs = func(parent, v int) bool {
		marked[v] = true
		for _, w := range g.Adj(v) {
			if c.cycle != nil {
				return true
			}
			if !marked[w] {
				edgeTo[w] = v
				if dfs(v, w) {
					return true
				}
			} else if w != parent {
				for x := v; x != w; x = edgeTo[x] {
					c.cycle = append(c.cycle, x)
				}
				c.cycle = append(c.cycle, w, v)
				c.cycle = lo.Reverse(c.cycle)
				return true
			}
		}
		return false
	}
	for v := 0; v < g.V(); v++ {
		if !marked[v] && dfs(-1, v) {
			break
		}
	}
	return c, nil
}

func (c *Cycle) findSelfLoop(g *Graph) bool {
	for v := 0; v < g.V(); v++ {
		if lo.Contains(g.Adj(v), v) {
			c.cycle = []int{v, v}
			return true
		}
	}
	return false
}

func (c *Cycle) findParallelEdges(g *Graph) bool {
	marked := make([]bool, g.V())
	for v := 0; v < g.V(); v++ {
		for _, w := range g.Adj(v) {
			if marked[w] {
				c.cycle = []int{v, w, v}
				return true
			}
			marked[w] = true
		}
		for _, w := range g.Adj(v) {
			marked[w] = false
		}
	}
	return false
}

func (c *Cycle) HasCycle() bool {
	return c.cycle != nil
}

// Cycle returns one cycle as a vertex walk whose first and last
// vertices coincide, or nil when the graph is acyclic.
func (c *Cycle) Cycle() []int {
	return c.cycle
}

// DirectedCycle finds a cycle in a digraph, the precondition check
// behind topological sorting.
type DirectedCycle struct {
	cycle []int
}

func NewDirectedCycle(g *Digraph) (*DirectedCycle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	c := &DirectedCycle{}
	marked := make([]bool, g.V())
	onStack := make([]bool, g.V())
	edgeTo := make([]int, g.V())
	var dfs func(v int)
	dfs = func(v int) {
		marked[v] = true
		onStack[v] = true
		for _, w := range g.Adj(v) {
			if c.cycle != nil {
				return
			}
			if !marked[w] {
				edgeTo[w] = v
				dfs(w)
			} else if onStack[w] {
				for x := v; x != w; x = edgeTo[x] {
					c.cycle = append(c.cycle, x)
				}
				c.cycle = append(c.cycle, w, v)
				c.cycle = lo.Reverse(c.cycle)
				return
			}
		}
		onStack[v] = false
	}
	for v := 0; v < g.V(); v++ {
		if !marked[v] && c.cycle == nil {
			dfs(v)
		}
	}
	return c, nil
}

func (c *DirectedCycle) HasCycle() bool {
	return c.cycle != nil
}

func (c *DirectedCycle) Cycle() []int {
	return c.cycle
}
