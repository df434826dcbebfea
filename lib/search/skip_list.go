package search

import (
	randv2 "math/rand/v2"

	"github.com/xalgo/xalgo/lib/infra"
)

const (
	skipListMaxLevel    = 32   // enough for 2^32 - 1 elements
	skipListProbability = 0.25 // each node has a 1/4 chance per extra level
)

// randomLevel flips a biased coin from one random draw instead of one
// per level, and avoids the global mutex inside math/rand.
func randomLevel() int {
	level := 1
	for float64(randv2.Int64()&0xFFFF) < skipListProbability*0xFFFF {
		level++
	}
	if level < skipListMaxLevel {
		return level
	}
	return skipListMaxLevel
}

type skipListNode[K infra.OrderedKey, V any] struct {
	forward []*skipListNode[K, V]
	key     K
	val     V
}

// skipList is the probabilistic alternative to the balanced trees: an
// ordered linked list with express lanes, O(log n) search and insert
// in expectation.
type skipList[K infra.OrderedKey, V any] struct {
	head  *skipListNode[K, V]
	level int
	count int64
}

func (sl *skipList[K, V]) Len() int64 {
	return sl.count
}

func (sl *skipList[K, V]) IsEmpty() bool {
	return sl.count == 0
}

// findPredecessors walks the lanes top down and records, per level,
// the last node whose key is below key.
func (sl *skipList[K, V]) findPredecessors(key K) []*skipListNode[K, V] {
	predecessors := make([]*skipListNode[K, V], skipListMaxLevel)
	aux := sl.head
	for lvl := sl.level - 1; lvl >= 0; lvl-- {
		for aux.forward[lvl] != nil && infra.OrderedKeyCompare(aux.forward[lvl].key, key) < 0 {
			aux = aux.forward[lvl]
		}
		predecessors[lvl] = aux
	}
	return predecessors
}

func (sl *skipList[K, V]) Put(key K, val V) {
	predecessors := sl.findPredecessors(key)
	if next := predecessors[0].forward[0]; next != nil && next.key == key {
		next.val = val
		return
	}
	level := randomLevel()
	for lvl := sl.level; lvl < level; lvl++ {
		predecessors[lvl] = sl.head
	}
	if level > sl.level {
		sl.level = level
	}
	node := &skipListNode[K, V]{
		forward: make([]*skipListNode[K, V], level),
		key:     key,
		val:     val,
	}
	for lvl := 0; lvl < level; lvl++ {
		node.forward[lvl] = predecessors[lvl].forward[lvl]
		predecessors[lvl].forward[lvl] = node
	}
	sl.count++
}

func (sl *skipList[K, V]) Get(key K) (val V, exists bool) {
	aux := sl.head
	for lvl := sl.level - 1; lvl >= 0; lvl-- {
		for aux.forward[lvl] != nil && infra.OrderedKeyCompare(aux.forward[lvl].key, key) < 0 {
			aux = aux.forward[lvl]
		}
	}
	if next := aux.forward[0]; next != nil && next.key == key {
		return next.val, true
	}
	return val, false
}

func (sl *skipList[K, V]) Contains(key K) bool {
	_, exists := sl.Get(key)
	return exists
}

func (sl *skipList[K, V]) Remove(key K) (val V, removed bool) {
	predecessors := sl.findPredecessors(key)
	target := predecessors[0].forward[0]
	if target == nil || target.key != key {
		return val, false
	}
	for lvl := 0; lvl < sl.level; lvl++ {
		if predecessors[lvl].forward[lvl] == target {
			predecessors[lvl].forward[lvl] = target.forward[lvl]
		}
	}
	for sl.level > 1 && sl.head.forward[sl.level-1] == nil {
		sl.level--
	}
	sl.count--
	return target.val, true
}

func (sl *skipList[K, V]) Keys() []K {
	keys := make([]K, 0, sl.count)
	for aux := sl.head.forward[0]; aux != nil; aux = aux.forward[0] {
		keys = append(keys, aux.key)
	}
	return keys
}

func (sl *skipList[K, V]) Min() (key K, exists bool) {
	if first := sl.head.forward[0]; first != nil {
		return first.key, true
	}
	return key, false
}

func (sl *skipList[K, V]) Max() (key K, exists bool) {
	if sl.count == 0 {
		return key, false
	}
	aux := sl.head
	for lvl := sl.level - 1; lvl >= 0; lvl-- {
		for aux.forward[lvl] != nil {
			aux = aux.forward[lvl]
		}
	}
	return aux.key, true
}

func (sl *skipList[K, V]) Floor(key K) (floor K, exists bool) {
	predecessors := sl.findPredecessors(key)
	if next := predecessors[0].forward[0]; next != nil && next.key == key {
		return key, true
	}
	if predecessors[0] == sl.head {
		return floor, false
	}
	return predecessors[0].key, true
}

func (sl *skipList[K, V]) Ceiling(key K) (ceiling K, exists bool) {
	predecessors := sl.findPredecessors(key)
	if next := predecessors[0].forward[0]; next != nil {
		return next.key, true
	}
	return ceiling, false
}

// Select walks the base lane; the express lanes keep no span counts,
// so rank queries are linear here.
func (sl *skipList[K, V]) Select(rank int64) (key K, exists bool) {
	if rank < 0 || rank >= sl.count {
		return key, false
	}
	aux := sl.head.forward[0]
	for ; rank > 0; rank-- {
		aux = aux.forward[0]
	}
	return aux.key, true
}

func (sl *skipList[K, V]) Rank(key K) int64 {
	var rank int64
	for aux := sl.head.forward[0]; aux != nil && infra.OrderedKeyCompare(aux.key, key) < 0; aux = aux.forward[0] {
		rank++
	}
	return rank
}

func NewSkipList[K infra.OrderedKey, V any]() OrderedSymbolTable[K, V] {
	return &skipList[K, V]{
		head: &skipListNode[K, V]{
			forward: make([]*skipListNode[K, V], skipListMaxLevel),
		},
		level: 1,
	}
}
