package unionfind

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// tinyUF.txt connections from the classic connectivity example.
var tinyUFPairs = [][2]int{
	{4, 3}, {3, 8}, {6, 5}, {9, 4}, {2, 1},
	{8, 9}, {5, 0}, {7, 2}, {6, 1}, {1, 0}, {6, 7},
}

func unionFindRunCore(t *testing.T, uf UnionFind) {
	require.Equal(t, 10, uf.Count())
	for _, pair := range tinyUFPairs {
		if uf.Connected(pair[0], pair[1]) {
			continue
		}
		uf.Union(pair[0], pair[1])
	}
	require.Equal(t, 2, uf.Count())
	require.True(t, uf.Connected(4, 8))
	require.True(t, uf.Connected(0, 7))
	require.False(t, uf.Connected(0, 3))

	// Already-connected unions do not change the component count.
	uf.Union(4, 8)
	require.Equal(t, 2, uf.Count())
}

func TestUnionFindVariants(t *testing.T) {
	type testcase struct {
		name    string
		factory func(n int) UnionFind
	}
	testcases := []testcase{
		{name: "quick find", factory: NewQuickFindUF},
		{name: "quick union", factory: NewQuickUnionUF},
		{name: "weighted quick union", factory: NewWeightedQuickUnionUF},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			unionFindRunCore(tt, tc.factory(10))
		})
	}
}

func TestUnionFindVariantsAgree(t *testing.T) {
	const sites = 500
	qf := NewQuickFindUF(sites)
	qu := NewQuickUnionUF(sites)
	wqu := NewWeightedQuickUnionUF(sites)

	for i := 0; i < 1000; i++ {
		p := int(randv2.Uint32() % sites)
		q := int(randv2.Uint32() % sites)
		qf.Union(p, q)
		qu.Union(p, q)
		wqu.Union(p, q)
	}
	require.Equal(t, qf.Count(), qu.Count())
	require.Equal(t, qf.Count(), wqu.Count())
	for i := 0; i < 1000; i++ {
		p := int(randv2.Uint32() % sites)
		q := int(randv2.Uint32() % sites)
		require.Equal(t, qf.Connected(p, q), qu.Connected(p, q))
		require.Equal(t, qf.Connected(p, q), wqu.Connected(p, q))
	}
}
