package search

import "github.com/xalgo/xalgo/lib/infra"

type bstNode[K infra.OrderedKey, V any] struct {
	left, right *bstNode[K, V]
	key         K
	val         V
	size        int64
}

func bstSize[K infra.OrderedKey, V any](x *bstNode[K, V]) int64 {
	if x == nil {
		return 0
	}
	return x.size
}

// bst is the plain unbalanced binary search tree. Its shape depends on
// the insertion order, so a sorted key stream degrades it to a linked
// list. Order queries mirror the red-black ordered map without the
// balancing discipline.
type bst[K infra.OrderedKey, V any] struct {
	root *bstNode[K, V]
}

func (st *bst[K, V]) Len() int64 {
	return bstSize(st.root)
}

func (st *bst[K, V]) IsEmpty() bool {
	return st.root == nil
}

func (st *bst[K, V]) Put(key K, val V) {
	st.root = st.put(st.root, key, val)
}

func (st *bst[K, V]) put(x *bstNode[K, V], key K, val V) *bstNode[K, V] {
	if x == nil {
		return &bstNode[K, V]{key: key, val: val, size: 1}
	}
	res := infra.OrderedKeyCompare(key, x.key)
	if res < 0 {
		x.left = st.put(x.left, key, val)
	} else if res > 0 {
		x.right = st.put(x.right, key, val)
	} else {
		x.val = val
	}
	x.size = 1 + bstSize(x.left) + bstSize(x.right)
	return x
}

func (st *bst[K, V]) Get(key K) (val V, exists bool) {
	x := st.root
	for x != nil {
		res := infra.OrderedKeyCompare(key, x.key)
		if res < 0 {
			x = x.left
		} else if res > 0 {
			x = x.right
		} else {
			return x.val, true
		}
	}
	return val, false
}

func (st *bst[K, V]) Contains(key K) bool {
	_, exists := st.Get(key)
	return exists
}

// Remove deletes by Hibbard's method: a node with two children is
// replaced by its in-order successor.
func (st *bst[K, V]) Remove(key K) (val V, removed bool) {
	val, removed = st.Get(key)
	if !removed {
		return val, false
	}
	st.root = st.remove(st.root, key)
	return val, true
}

func (st *bst[K, V]) remove(x *bstNode[K, V], key K) *bstNode[K, V] {
	res := infra.OrderedKeyCompare(key, x.key)
	if res < 0 {
		x.left = st.remove(x.left, key)
	} else if res > 0 {
		x.right = st.remove(x.right, key)
	} else {
		if x.right == nil {
			return x.left
		}
		if x.left == nil {
			return x.right
		}
		t := x
		x = bstMin(t.right)
		x.right = st.removeMin(t.right)
		x.left = t.left
	}
	x.size = 1 + bstSize(x.left) + bstSize(x.right)
	return x
}

func (st *bst[K, V]) removeMin(x *bstNode[K, V]) *bstNode[K, V] {
	if x.left == nil {
		return x.right
	}
	x.left = st.removeMin(x.left)
	x.size = 1 + bstSize(x.left) + bstSize(x.right)
	return x
}

func bstMin[K infra.OrderedKey, V any](x *bstNode[K, V]) *bstNode[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

func (st *bst[K, V]) Min() (key K, exists bool) {
	if st.root == nil {
		return key, false
	}
	return bstMin(st.root).key, true
}

func (st *bst[K, V]) Max() (key K, exists bool) {
	if st.root == nil {
		return key, false
	}
	x := st.root
	for x.right != nil {
		x = x.right
	}
	return x.key, true
}

func (st *bst[K, V]) Floor(key K) (floor K, exists bool) {
	x := st.root
	var best *bstNode[K, V]
	for x != nil {
		res := infra.OrderedKeyCompare(key, x.key)
		if res == 0 {
			return x.key, true
		}
		if res < 0 {
			x = x.left
		} else {
			best = x
			x = x.right
		}
	}
	if best == nil {
		return floor, false
	}
	return best.key, true
}

func (st *bst[K, V]) Ceiling(key K) (ceiling K, exists bool) {
	x := st.root
	var best *bstNode[K, V]
	for x != nil {
		res := infra.OrderedKeyCompare(key, x.key)
		if res == 0 {
			return x.key, true
		}
		if res > 0 {
			x = x.right
		} else {
			best = x
			x = x.left
		}
	}
	if best == nil {
		return ceiling, false
	}
	return best.key, true
}

func (st *bst[K, V]) Select(rank int64) (key K, exists bool) {
	if rank < 0 || rank >= bstSize(st.root) {
		return key, false
	}
	x := st.root
	for x != nil {
		leftSize := bstSize(x.left)
		if rank < leftSize {
			x = x.left
		} else if rank > leftSize {
			rank -= leftSize + 1
			x = x.right
		} else {
			return x.key, true
		}
	}
	// impossible run to here
	return key, false
}

func (st *bst[K, V]) Rank(key K) int64 {
	var rank int64
	x := st.root
	for x != nil {
		res := infra.OrderedKeyCompare(key, x.key)
		if res < 0 {
			x = x.left
		} else if res > 0 {
			rank += bstSize(x.left) + 1
			x = x.right
		} else {
			return rank + bstSize(x.left)
		}
	}
	return rank
}

func (st *bst[K, V]) Keys() []K {
	keys := make([]K, 0, bstSize(st.root))
	var inorder func(x *bstNode[K, V])
	inorder = func(x *bstNode[K, V]) {
		if x == nil {
			return
		}
		inorder(x.left)
		keys = append(keys, x.key)
		inorder(x.right)
	}
	inorder(st.root)
	return keys
}

func NewBST[K infra.OrderedKey, V any]() OrderedSymbolTable[K, V] {
	return &bst[K, V]{}
}
