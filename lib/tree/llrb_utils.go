package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/xalgo/xalgo/lib/infra"
)

// Diagnostic validators for the ordered map invariants. Each walks the
// whole tree, so none belongs on a production code path; they are the
// primary verification tool for the insertion and deletion fix-ups.

func isRedLink[K infra.OrderedKey, V any](node RBNode[K, V]) bool {
	return node != nil && node.Color() == Red
}

func nodeSize[K infra.OrderedKey, V any](node RBNode[K, V]) int64 {
	if node == nil {
		return 0
	}
	return node.Size()
}

// SymmetricOrderValidate checks that every node's left subtree holds
// strictly smaller keys and its right subtree strictly greater ones.
func SymmetricOrderValidate[K infra.OrderedKey, V any](tree OrderedMap[K, V]) error {
	var walk func(node RBNode[K, V], min, max *K) bool
	walk = func(node RBNode[K, V], min, max *K) bool {
		if node == nil {
			return true
		}
		key := node.Key()
		if min != nil && infra.OrderedKeyCompare(key, *min) <= 0 {
			return false
		}
		if max != nil && infra.OrderedKeyCompare(key, *max) >= 0 {
			return false
		}
		return walk(node.Left(), min, &key) && walk(node.Right(), &key, max)
	}
	if !walk(tree.Root(), nil, nil) {
		return errors.New("[llrb] not in symmetric order")
	}
	return nil
}

// SizeConsistencyValidate checks every cached subtree size against its
// children, and the root size against Len().
func SizeConsistencyValidate[K infra.OrderedKey, V any](tree OrderedMap[K, V]) error {
	var walk func(node RBNode[K, V]) bool
	walk = func(node RBNode[K, V]) bool {
		if node == nil {
			return true
		}
		if node.Size() != 1+nodeSize[K, V](node.Left())+nodeSize[K, V](node.Right()) {
			return false
		}
		return walk(node.Left()) && walk(node.Right())
	}
	if !walk(tree.Root()) {
		return errors.New("[llrb] subtree sizes not consistent")
	}
	if nodeSize[K, V](tree.Root()) != tree.Len() {
		return errors.New("[llrb] root size diverges from map length")
	}
	return nil
}

// BlackViolationValidate checks that every root-to-nil path crosses the
// same count of black links.
func BlackViolationValidate[K infra.OrderedKey, V any](tree OrderedMap[K, V]) error {
	blackDepth := int64(0)
	for aux := tree.Root(); aux != nil; aux = aux.Left() {
		if !isRedLink[K, V](aux) {
			blackDepth++
		}
	}

	var walk func(node RBNode[K, V], depth int64) bool
	walk = func(node RBNode[K, V], depth int64) bool {
		if node == nil {
			return depth == 0
		}
		if !isRedLink[K, V](node) {
			depth--
		}
		return walk(node.Left(), depth) && walk(node.Right(), depth)
	}
	if !walk(tree.Root(), blackDepth) {
		return errors.New("[llrb] black violation, unbalanced black links")
	}
	return nil
}

// LeftLeaningValidate checks the 2-3 shape: no red right link and no
// red node with a red left child anywhere in the tree.
func LeftLeaningValidate[K infra.OrderedKey, V any](tree OrderedMap[K, V]) error {
	if isRedLink[K, V](tree.Root()) {
		return errors.New("[llrb] red violation, root link must be black")
	}
	var walk func(node RBNode[K, V]) bool
	walk = func(node RBNode[K, V]) bool {
		if node == nil {
			return true
		}
		if isRedLink[K, V](node.Right()) {
			return false
		}
		if isRedLink[K, V](node) && isRedLink[K, V](node.Left()) {
			return false
		}
		return walk(node.Left()) && walk(node.Right())
	}
	if !walk(tree.Root()) {
		return errors.New("[llrb] red violation, not a left-leaning 2-3 tree")
	}
	return nil
}

// Validate runs all four invariant checks and combines their failures.
func Validate[K infra.OrderedKey, V any](tree OrderedMap[K, V]) error {
	if tree.Root() == nil {
		if tree.Len() != 0 {
			return errors.New("[llrb] nil root with non-zero length")
		}
		return nil
	}
	return multierr.Combine(
		SymmetricOrderValidate[K, V](tree),
		SizeConsistencyValidate[K, V](tree),
		BlackViolationValidate[K, V](tree),
		LeftLeaningValidate[K, V](tree),
	)
}
