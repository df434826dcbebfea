package unionfind

// quickFindUF keeps id[p] equal for every site in a component, so Find
// is O(1) but Union rewrites the whole id array, O(n).
type quickFindUF struct {
	id    []int
	count int
}

func (uf *quickFindUF) Count() int {
	return uf.count
}

func (uf *quickFindUF) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

func (uf *quickFindUF) Find(p int) int {
	return uf.id[p]
}

func (uf *quickFindUF) Union(p, q int) {
	pID, qID := uf.id[p], uf.id[q]
	if pID == qID {
		return
	}
	for i := range uf.id {
		if uf.id[i] == pID {
			uf.id[i] = qID
		}
	}
	uf.count--
}

func NewQuickFindUF(n int) UnionFind {
	uf := &quickFindUF{
		id:    make([]int, n),
		count: n,
	}
	for i := range uf.id {
		uf.id[i] = i
	}
	return uf
}

// quickUnionUF stores parent links; Find chases them to a root. Tall
// trees make the worst case linear.
type quickUnionUF struct {
	parent []int
	count  int
}

func (uf *quickUnionUF) Count() int {
	return uf.count
}

func (uf *quickUnionUF) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

func (uf *quickUnionUF) Find(p int) int {
	for p != uf.parent[p] {
		p = uf.parent[p]
	}
	return p
}

func (uf *quickUnionUF) Union(p, q int) {
	rootP, rootQ := uf.Find(p), uf.Find(q)
	if rootP == rootQ {
		return
	}
	uf.parent[rootP] = rootQ
	uf.count--
}

func NewQuickUnionUF(n int) UnionFind {
	uf := &quickUnionUF{
		parent: make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// weightedQuickUnionUF always hangs the smaller tree under the larger
// root, bounding tree height and Find at O(log n).
type weightedQuickUnionUF struct {
	parent []int
	size   []int // component size, maintained for roots only
	count  int
}

func (uf *weightedQuickUnionUF) Count() int {
	return uf.count
}

func (uf *weightedQuickUnionUF) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

func (uf *weightedQuickUnionUF) Find(p int) int {
	for p != uf.parent[p] {
		p = uf.parent[p]
	}
	return p
}

func (uf *weightedQuickUnionUF) Union(p, q int) {
	rootP, rootQ := uf.Find(p), uf.Find(q)
	if rootP == rootQ {
		return
	}
	if uf.size[rootP] < uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	uf.count--
}

func NewWeightedQuickUnionUF(n int) UnionFind {
	uf := &weightedQuickUnionUF{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}
