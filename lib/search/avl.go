package search

import "github.com/xalgo/xalgo/lib/infra"

type avlNode[K infra.OrderedKey, V any] struct {
	left, right *avlNode[K, V]
	key         K
	val         V
	height      int64
	size        int64
}

func avlSize[K infra.OrderedKey, V any](x *avlNode[K, V]) int64 {
	if x == nil {
		return 0
	}
	return x.size
}

func avlHeight[K infra.OrderedKey, V any](x *avlNode[K, V]) int64 {
	if x == nil {
		return -1
	}
	return x.height
}

// avlTree rebalances on every insert and delete so the heights of the
// two subtrees of any node differ by at most one.
type avlTree[K infra.OrderedKey, V any] struct {
	root *avlNode[K, V]
}

func (st *avlTree[K, V]) Len() int64 {
	return avlSize(st.root)
}

func (st *avlTree[K, V]) IsEmpty() bool {
	return st.root == nil
}

func (st *avlTree[K, V]) update(x *avlNode[K, V]) {
	x.size = 1 + avlSize(x.left) + avlSize(x.right)
	hl, hr := avlHeight(x.left), avlHeight(x.right)
	if hl > hr {
		x.height = 1 + hl
	} else {
		x.height = 1 + hr
	}
}

func (st *avlTree[K, V]) balanceFactor(x *avlNode[K, V]) int64 {
	return avlHeight(x.left) - avlHeight(x.right)
}

func (st *avlTree[K, V]) rotateRight(x *avlNode[K, V]) *avlNode[K, V] {
	y := x.left
	x.left = y.right
	y.right = x
	st.update(x)
	st.update(y)
	return y
}

func (st *avlTree[K, V]) rotateLeft(x *avlNode[K, V]) *avlNode[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	st.update(x)
	st.update(y)
	return y
}

func (st *avlTree[K, V]) balance(x *avlNode[K, V]) *avlNode[K, V] {
	if st.balanceFactor(x) < -1 {
		if st.balanceFactor(x.right) > 0 {
			x.right = st.rotateRight(x.right)
		}
		x = st.rotateLeft(x)
	} else if st.balanceFactor(x) > 1 {
		if st.balanceFactor(x.left) < 0 {
			x.left = st.rotateLeft(x.left)
		}
		x = st.rotateRight(x)
	}
	return x
}

func (st *avlTree[K, V]) Put(key K, val V) {
	st.root = st.put(st.root, key, val)
}

func (st *avlTree[K, V]) put(x *avlNode[K, V], key K, val V) *avlNode[K, V] {
	if x == nil {
		return &avlNode[K, V]{key: key, val: val, size: 1}
	}
	res := infra.OrderedKeyCompare(key, x.key)
	if res < 0 {
		x.left = st.put(x.left, key, val)
	} else if res > 0 {
		x.right = st.put(x.right, key, val)
	} else {
		x.val = val
		return x
	}
	st.update(x)
	return st.balance(x)
}

func (st *avlTree[K, V]) Get(key K) (val V, exists bool) {
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

func (st *avlTree[K, V]) Contains(key K) bool {
	_, exists := st.Get(key)
	return exists
}

func (st *avlTree[K, V]) Remove(key K) (val V, removed bool) {
	val, removed = st.Get(key)
	if !removed {
		return val, false
	}
	st.root = st.remove(st.root, key)
	return val, true
}

func (st *avlTree[K, V]) remove(x *avlNode[K, V], key K) *avlNode[K, V] {
	res := infra.OrderedKeyCompare(key, x.key)
	if res < 0 {
		x.left = st.remove(x.left, key)
	} else if res > 0 {
		x.right = st.remove(x.right, key)
	} else {
		if x.left == nil {
			return x.right
		}
		if x.right == nil {
			return x.left
		}
		t := x
		x = avlMin(t.right)
		x.right = st.removeMin(t.right)
		x.left = t.left
	}
	st.update(x)
	return st.balance(x)
}

func (st *avlTree[K, V]) removeMin(x *avlNode[K, V]) *avlNode[K, V] {
	if x.left == nil {
		return x.right
	}
	x.left = st.removeMin(x.left)
	st.update(x)
	return st.balance(x)
}

func avlMin[K infra.OrderedKey, V any](x *avlNode[K, V]) *avlNode[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

func (st *avlTree[K, V]) Min() (key K, exists bool) {
	if st.root == nil {
		return key, false
	}
	return avlMin(st.root).key, true
}

func (st *avlTree[K, V]) Max() (key K, exists bool) {
	if st.root == nil {
		return key, false
	}
	x := st.root
	for x.right != nil {
		x = x.right
	}
	return x.key, true
}

func (st *avlTree[K, V]) Floor(key K) (floor K, exists bool) {
	x := st.root
	var best *avlNode[K, V]
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

func (st *avlTree[K, V]) Ceiling(key K) (ceiling K, exists bool) {
	x := st.root
	var best *avlNode[K, V]
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

func (st *avlTree[K, V]) Select(rank int64) (key K, exists bool) {
	if rank < 0 || rank >= avlSize(st.root) {
		return key, false
	}
	x := st.root
	for x != nil {
		leftSize := avlSize(x.left)
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

func (st *avlTree[K, V]) Rank(key K) int64 {
	var rank int64
	x := st.root
	for x != nil {
		res := infra.OrderedKeyCompare(key, x.key)
		if res < 0 {
			x = x.left
		} else if res > 0 {
			rank += avlSize(x.left) + 1
			x = x.right
		} else {
			return rank + avlSize(x.left)
		}
	}
	return rank
}

func (st *avlTree[K, V]) Keys() []K {
	keys := make([]K, 0, avlSize(st.root))
	var inorder func(x *avlNode[K, V])
	inorder = func(x *avlNode[K, V]) {
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

func NewAVL[K infra.OrderedKey, V any]() OrderedSymbolTable[K, V] {
	return &avlTree[K, V]{}
}
