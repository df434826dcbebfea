package unionfind

// UnionFind tracks connectivity between sites named 0 through n-1.
// Implementations differ only in the cost model of Find and Union.
type UnionFind interface {
	// Count returns the number of components.
	Count() int
	Connected(p, q int) bool
	// Find returns the component identifier of site p.
	Find(p int) int
	// Union merges the components containing p and q.
	Union(p, q int)
}
