package tree

import (
	"sync"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"
)

// The ordered map is single-writer by contract: rotations rewrite
// several links non-atomically, so sharing one across goroutines needs
// an external reader-writer lock. This exercises that discipline with a
// pool of readers racing one writer.
func TestOrderedMapSharedWithReaderWriterLock(t *testing.T) {
	const (
		readers     = 16
		readsEach   = 2000
		writerOps   = 2000
		preloadKeys = 10000
	)

	tree := NewOrderedMap[uint64, uint64]()
	for i := uint64(0); i < preloadKeys; i++ {
		tree.Put(i, i)
	}

	var mu sync.RWMutex
	pool, err := ants.NewPool(readers)
	require.NoError(t, err)
	defer pool.Release()

	var wg sync.WaitGroup
	for r := 0; r < readers; r++ {
		wg.Add(1)
		seed := uint64(r)
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			for i := 0; i < readsEach; i++ {
				k := (seed*2654435761 + uint64(i)) % preloadKeys
				mu.RLock()
				_, _ = tree.Get(k)
				rank := tree.Rank(k)
				_, _ = tree.Select(rank)
				mu.RUnlock()
			}
		}))
	}

	for i := 0; i < writerOps; i++ {
		k := preloadKeys + uint64(i)
		mu.Lock()
		tree.Put(k, k)
		if i&0x1 == 1 {
			_, _ = tree.Remove(k - 1)
		}
		mu.Unlock()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NoError(t, Validate[uint64, uint64](tree))
}
