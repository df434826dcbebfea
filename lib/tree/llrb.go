package tree

import (
	"errors"

	"go.uber.org/zap"

	"github.com/xalgo/xalgo/lib/infra"
	"github.com/xalgo/xalgo/lib/xlog"
)

// ErrUnderflow is returned by RemoveMin and RemoveMax on an empty map.
// Failing fast here instead of silently doing nothing keeps caller bugs
// from being masked.
var ErrUnderflow = errors.New("[llrb] remove from an empty ordered map")

// rbNode is exclusively owned by the link pointing at it; there is no
// parent pointer and no sharing. Every mutating call consumes a subtree
// and returns its (possibly restructured) replacement, so at any moment
// there is exactly one live mutable path into the tree.
type rbNode[K infra.OrderedKey, V any] struct {
	left  *rbNode[K, V]
	right *rbNode[K, V]
	key   K
	val   V
	color RBColor // color of the incoming parent link
	size  int64   // nodes in the subtree rooted here
}

func (node *rbNode[K, V]) isRed() bool {
	// Nil leaves are black.
	return node != nil && node.color == Red
}

func (node *rbNode[K, V]) Key() K {
	return node.key
}

func (node *rbNode[K, V]) Val() V {
	return node.val
}

func (node *rbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *rbNode[K, V]) Left() RBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K, V]) Right() RBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K, V]) Size() int64 {
	if node == nil {
		return 0
	}
	return node.size
}

func size[K infra.OrderedKey, V any](node *rbNode[K, V]) int64 {
	if node == nil {
		return 0
	}
	return node.size
}

func (node *rbNode[K, V]) minimum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K, V]) maximum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// References:
// https://algs4.cs.princeton.edu/33balanced/RedBlackBST.java.html
// LLRB properties, simulating a 2-3 tree:
// p1. Every link is either red or black; nil leaves are black.
// p2. No node has a red right link. (left-leaning)
// p3. No red node has a red left child. (no 4-node)
// p4. Every path from the root to a nil leaf crosses the same number
//   of black links. (perfect black balance)
// p5. The root link is always black.
// A red link binds two binary nodes into one 2-3 tree 3-node, so the
// black-link height is the 2-3 tree height and the total height is at
// most 2*log2(n+1).

type llrbTree[K infra.OrderedKey, V any] struct {
	root      *rbNode[K, V]
	count     int64
	selfCheck bool
	logger    xlog.XLogger
}

func (tree *llrbTree[K, V]) keyCompare(k1, k2 K) int64 {
	return infra.OrderedKeyCompare(k1, k2)
}

func (tree *llrbTree[K, V]) Len() int64 {
	return tree.count
}

func (tree *llrbTree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

func (tree *llrbTree[K, V]) Root() RBNode[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

/*
	     |                          |
	     X                          S
	    / \\     leftRotate(X)    // \
	(<X)    S    ============>    X   (>S)
	      /   \                  / \
	(>X,<S)   (>S)           (<X)   (>X,<S)

Turns a red right link into a red left link. X's subtree size moves to S,
X recounts its own.
*/
func (tree *llrbTree[K, V]) leftRotate(h *rbNode[K, V]) *rbNode[K, V] {
	if h == nil || !h.right.isRed() {
		// impossible run to here
		panic( /* debug assertion */ "[llrb] left rotate requires a red right link")
	}
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = Red
	x.size = h.size
	h.size = 1 + size(h.left) + size(h.right)
	return x
}

/*
	        |                          |
	        S                          X
	      // \     rightRotate(S)     / \\
	      X   (>S) ============>  (<X)    S
	     / \                            /   \
	 (<X)   (>X,<S)               (>X,<S)   (>S)

Mirror image of leftRotate, used to straighten two reds in a row or to
lean a red link right temporarily during RemoveMax.
*/
func (tree *llrbTree[K, V]) rightRotate(h *rbNode[K, V]) *rbNode[K, V] {
	if h == nil || !h.left.isRed() {
		// impossible run to here
		panic( /* debug assertion */ "[llrb] right rotate requires a red left link")
	}
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = Red
	x.size = h.size
	h.size = 1 + size(h.left) + size(h.right)
	return x
}

// flipColors toggles h and both children, representing a 2-3 node split
// (two red children) or merge (two black children). h must have the
// opposite color of its two children.
func (tree *llrbTree[K, V]) flipColors(h *rbNode[K, V]) {
	h.color ^= Red
	h.left.color ^= Red
	h.right.color ^= Red
}

// fixUp restores p2 and p3 on the way back up after a mutation below h
// and refreshes the cached subtree size.
func (tree *llrbTree[K, V]) fixUp(h *rbNode[K, V]) *rbNode[K, V] {
	if h.right.isRed() && !h.left.isRed() {
		h = tree.leftRotate(h)
	}
	if h.left.isRed() && h.left.left.isRed() {
		h = tree.rightRotate(h)
	}
	if h.left.isRed() && h.right.isRed() {
		tree.flipColors(h)
	}
	h.size = 1 + size(h.left) + size(h.right)
	return h
}

func (tree *llrbTree[K, V]) Put(key K, val V) {
	tree.root = tree.put(tree.root, key, val)
	tree.root.color = Black
	tree.mustValidate("put")
}

func (tree *llrbTree[K, V]) put(h *rbNode[K, V], key K, val V) *rbNode[K, V] {
	if h == nil {
		tree.count++
		return &rbNode[K, V]{key: key, val: val, color: Red, size: 1}
	}

	res := tree.keyCompare(key, h.key)
	if /* less */ res < 0 {
		h.left = tree.put(h.left, key, val)
	} else /* greater */ if res > 0 {
		h.right = tree.put(h.right, key, val)
	} else /* equal */ {
		h.val = val
	}
	return tree.fixUp(h)
}

// moveRedLeft borrows redness for h.left before the descent continues
// to the left: the 2-3 tree move that fuses h.left with its siblings
// (color flip) or steals a key from a richer right sibling (double
// rotation). Precondition: h is red, h.left and h.left.left are black.
func (tree *llrbTree[K, V]) moveRedLeft(h *rbNode[K, V]) *rbNode[K, V] {
	tree.flipColors(h)
	if h.right.left.isRed() {
		h.right = tree.rightRotate(h.right)
		h = tree.leftRotate(h)
		tree.flipColors(h)
	}
	return h
}

// moveRedRight is the mirror of moveRedLeft for descents to the right.
// Precondition: h is red, h.right and h.right.left are black.
func (tree *llrbTree[K, V]) moveRedRight(h *rbNode[K, V]) *rbNode[K, V] {
	tree.flipColors(h)
	if h.left.left.isRed() {
		h = tree.rightRotate(h)
		tree.flipColors(h)
	}
	return h
}

func (tree *llrbTree[K, V]) RemoveMin() (key K, val V, err error) {
	if tree.root == nil {
		return key, val, ErrUnderflow
	}
	_min := tree.root.minimum()
	key, val = _min.key, _min.val

	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = tree.removeMin(tree.root)
	if tree.root != nil {
		tree.root.color = Black
	}
	tree.count--
	tree.mustValidate("remove-min")
	return key, val, nil
}

func (tree *llrbTree[K, V]) removeMin(h *rbNode[K, V]) *rbNode[K, V] {
	if h.left == nil {
		// The minimum. Black balance forbids a lone black right child
		// and the left-leaning rule forbids a red one, so h.right is nil.
		return h.right
	}
	if !h.left.isRed() && !h.left.left.isRed() {
		h = tree.moveRedLeft(h)
	}
	h.left = tree.removeMin(h.left)
	return tree.fixUp(h)
}

func (tree *llrbTree[K, V]) RemoveMax() (key K, val V, err error) {
	if tree.root == nil {
		return key, val, ErrUnderflow
	}
	_max := tree.root.maximum()
	key, val = _max.key, _max.val

	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = tree.removeMax(tree.root)
	if tree.root != nil {
		tree.root.color = Black
	}
	tree.count--
	tree.mustValidate("remove-max")
	return key, val, nil
}

func (tree *llrbTree[K, V]) removeMax(h *rbNode[K, V]) *rbNode[K, V] {
	if h.left.isRed() {
		// Lean the red link right so the maximum can carry it down.
		h = tree.rightRotate(h)
	}
	if h.right == nil {
		return h.left
	}
	if !h.right.isRed() && !h.right.left.isRed() {
		h = tree.moveRedRight(h)
	}
	h.right = tree.removeMax(h.right)
	return tree.fixUp(h)
}

func (tree *llrbTree[K, V]) Remove(key K) (val V, removed bool) {
	val, removed = tree.Get(key)
	if !removed {
		// No-op, the map is untouched.
		return val, false
	}

	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = tree.remove(tree.root, key)
	if tree.root != nil {
		tree.root.color = Black
	}
	tree.count--
	tree.mustValidate("remove")
	return val, true
}

// remove descends toward key keeping the borrow invariant: before
// recursing into a child, the current node or that child holds a red
// link. At the target either splice (no left child) or copy the
// successor in and delete-min the right subtree.
func (tree *llrbTree[K, V]) remove(h *rbNode[K, V], key K) *rbNode[K, V] {
	if tree.keyCompare(key, h.key) < 0 {
		if !h.left.isRed() && !h.left.left.isRed() {
			h = tree.moveRedLeft(h)
		}
		h.left = tree.remove(h.left, key)
	} else {
		if h.left.isRed() {
			h = tree.rightRotate(h)
		}
		if tree.keyCompare(key, h.key) == 0 && h.right == nil {
			return h.left
		}
		if !h.right.isRed() && !h.right.left.isRed() {
			h = tree.moveRedRight(h)
		}
		if tree.keyCompare(key, h.key) == 0 {
			succ := h.right.minimum()
			h.key, h.val = succ.key, succ.val
			h.right = tree.removeMin(h.right)
		} else {
			h.right = tree.remove(h.right, key)
		}
	}
	return tree.fixUp(h)
}

func (tree *llrbTree[K, V]) Get(key K) (val V, exists bool) {
	aux := tree.root
	for aux != nil {
		res := tree.keyCompare(key, aux.key)
		if res == 0 {
			return aux.val, true
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return val, false
}

func (tree *llrbTree[K, V]) Contains(key K) bool {
	_, exists := tree.Get(key)
	return exists
}

func (tree *llrbTree[K, V]) Min() (key K, exists bool) {
	if tree.root == nil {
		return key, false
	}
	return tree.root.minimum().key, true
}

func (tree *llrbTree[K, V]) Max() (key K, exists bool) {
	if tree.root == nil {
		return key, false
	}
	return tree.root.maximum().key, true
}

func (tree *llrbTree[K, V]) Floor(key K) (floor K, exists bool) {
	aux := tree.root
	for aux != nil {
		res := tree.keyCompare(key, aux.key)
		if res == 0 {
			return aux.key, true
		} else if res < 0 {
			aux = aux.left
		} else {
			// aux.key is a candidate; a larger one may sit to the right.
			floor, exists = aux.key, true
			aux = aux.right
		}
	}
	return floor, exists
}

func (tree *llrbTree[K, V]) Ceiling(key K) (ceiling K, exists bool) {
	aux := tree.root
	for aux != nil {
		res := tree.keyCompare(key, aux.key)
		if res == 0 {
			return aux.key, true
		} else if res > 0 {
			aux = aux.right
		} else {
			ceiling, exists = aux.key, true
			aux = aux.left
		}
	}
	return ceiling, exists
}

func (tree *llrbTree[K, V]) Select(rank int64) (key K, exists bool) {
	if rank < 0 || rank >= tree.count {
		return key, false
	}
	aux := tree.root
	for aux != nil {
		leftSize := size(aux.left)
		if rank < leftSize {
			aux = aux.left
		} else if rank > leftSize {
			rank -= leftSize + 1
			aux = aux.right
		} else {
			return aux.key, true
		}
	}
	// impossible run to here
	panic( /* debug assertion */ "[llrb] select rank not found within size bounds")
}

func (tree *llrbTree[K, V]) Rank(key K) int64 {
	rank := int64(0)
	aux := tree.root
	for aux != nil {
		res := tree.keyCompare(key, aux.key)
		if res < 0 {
			aux = aux.left
		} else if res > 0 {
			rank += size(aux.left) + 1
			aux = aux.right
		} else {
			return rank + size(aux.left)
		}
	}
	return rank
}

func (tree *llrbTree[K, V]) Height() int64 {
	return height(tree.root)
}

func height[K infra.OrderedKey, V any](node *rbNode[K, V]) int64 {
	if node == nil {
		return -1
	}
	return 1 + max(height(node.left), height(node.right))
}

// Inorder traversal to implement the DFS.
func (tree *llrbTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	aux := tree.root
	if aux == nil {
		return
	}

	stack := make([]*rbNode[K, V], 0, tree.count>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for n := int64(len(stack)); n > 0; n = int64(len(stack)) {
		if aux = stack[n-1]; !action(idx, aux.color, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:n-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

func (tree *llrbTree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Foreach(func(idx int64, color RBColor, key K, val V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (tree *llrbTree[K, V]) Release() {
	tree.root = nil
	tree.count = 0
}

// mustValidate is the hard-fault path for the self-validation mode: a
// violated invariant after a mutation is an implementation defect, not
// a caller error. Walks the whole tree, so it stays off outside tests.
func (tree *llrbTree[K, V]) mustValidate(op string) {
	if !tree.selfCheck {
		return
	}
	if err := Validate[K, V](tree); err != nil {
		if tree.logger != nil {
			tree.logger.Error(err, "[llrb] ordered map invariant violation",
				zap.String("op", op), zap.Int64("len", tree.count))
		}
		panic(err)
	}
}

type OrderedMapOpt[K infra.OrderedKey, V any] func(*llrbTree[K, V])

// WithOrderedMapSelfValidation re-checks every tree invariant after each
// mutation and panics on the first violation. It turns O(log n)
// mutations into O(n) walks; test configurations only.
func WithOrderedMapSelfValidation[K infra.OrderedKey, V any]() OrderedMapOpt[K, V] {
	return func(tree *llrbTree[K, V]) {
		tree.selfCheck = true
	}
}

func WithOrderedMapLogger[K infra.OrderedKey, V any](logger xlog.XLogger) OrderedMapOpt[K, V] {
	return func(tree *llrbTree[K, V]) {
		tree.logger = logger
	}
}

func NewOrderedMap[K infra.OrderedKey, V any](opts ...OrderedMapOpt[K, V]) OrderedMap[K, V] {
	tree := &llrbTree[K, V]{}
	for _, o := range opts {
		if o != nil {
			o(tree)
		}
	}
	return tree
}
