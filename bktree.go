// Package bktree implements a Burkhard-Keller tree, a metric tree that
// answers range queries ("all keys within distance d of the query") over a
// caller-supplied discrete distance function without scanning every stored
// key. It is useful for spell checking, fuzzy string matching, and
// near-duplicate detection over Hamming distances.
package bktree

// Metric is a discrete distance function over keys of type T. It must
// return a non-negative integer and is assumed to satisfy dist(a, a) == 0,
// symmetry, and the triangle inequality. The tree never validates the
// metric; a metric that breaks the contract makes searches silently miss
// matches.
type Metric[T any] func(a, b T) int

// Match pairs a found key with its distance to the query.
type Match[T any] struct {
	Key      T
	Distance int
}

// Tree is a BK-tree for efficient similarity search using metric distances.
// It is an in-memory, append-only index: keys are never removed or
// relocated once inserted. A Tree is not safe for concurrent use; callers
// sharing one across goroutines must serialize access themselves.
type Tree[T any] struct {
	root     *node[T]
	distance Metric[T]
	size     int
}

type node[T any] struct {
	key      T
	children map[int]*node[T] // distance -> child node
}

// New creates an empty tree bound to the given distance function.
func New[T any](distance Metric[T]) *Tree[T] {
	return &Tree[T]{distance: distance}
}

// Insert adds a key to the tree. A key at distance 0 from an already
// stored key is a duplicate and is discarded silently.
func (t *Tree[T]) Insert(key T) {
	if t.root == nil {
		t.root = &node[T]{key: key, children: make(map[int]*node[T])}
		t.size++
		return
	}

	current := t.root
	for {
		dist := t.distance(current.key, key)
		if dist == 0 {
			return
		}
		child, ok := current.children[dist]
		if !ok {
			current.children[dist] = &node[T]{key: key, children: make(map[int]*node[T])}
			t.size++
			return
		}
		current = child
	}
}

// InsertAll inserts every key in order. Input order affects the internal
// tree shape but never the set of stored keys.
func (t *Tree[T]) InsertAll(keys ...T) {
	for _, key := range keys {
		t.Insert(key)
	}
}

// Find returns every stored key within radius of query, each paired with
// its distance. The result order is unspecified; callers wanting
// sorted-by-distance output must sort it themselves. An empty tree or a
// query with no neighbors yields an empty result.
func (t *Tree[T]) Find(query T, radius int) []Match[T] {
	if t.root == nil {
		return nil
	}

	var found []Match[T]
	worklist := []*node[T]{t.root}
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		dist := t.distance(n.key, query)
		if dist <= radius {
			found = append(found, Match[T]{Key: n.key, Distance: dist})
		}

		// Triangle inequality: a subtree hanging off the edge labeled
		// c can only hold matches when |c - dist| <= radius.
		for edge, child := range n.children {
			if edge >= dist-radius && edge <= dist+radius {
				worklist = append(worklist, child)
			}
		}
	}
	return found
}

// Walk visits every stored key in unspecified order, stopping early if fn
// returns false.
func (t *Tree[T]) Walk(fn func(key T) bool) {
	if t.root == nil {
		return
	}
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key) {
			return
		}
		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
}

// Keys returns all stored keys in unspecified order.
func (t *Tree[T]) Keys() []T {
	keys := make([]T, 0, t.size)
	t.Walk(func(key T) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Len returns the number of distinct keys in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}
