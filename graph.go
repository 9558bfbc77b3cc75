package graph

import (
	"iter"
	"maps"
)

// Graph owns a universe of nodes keyed by K and mediates edge creation
// between them. It delegates edge storage to the nodes themselves: every
// edge lives in its source node's edge map.
//
// Not safe for concurrent use; see the package documentation.
type Graph[K comparable, V any, W any] struct {
	nodes map[K]*Node[K, V, W]
}

// NewGraph creates an empty graph.
func NewGraph[K comparable, V any, W any]() *Graph[K, V, W] {
	return &Graph[K, V, W]{nodes: make(map[K]*Node[K, V, W])}
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph[K, V, W]) IsEmpty() bool { return len(g.nodes) == 0 }

// Size returns the number of nodes.
func (g *Graph[K, V, W]) Size() int { return len(g.nodes) }

// Clear removes all nodes. The graph itself remains usable.
func (g *Graph[K, V, W]) Clear() { clear(g.nodes) }

// All returns a restartable iterator over (key, node) pairs. Order is
// unspecified. Must not overlap with structural mutation.
func (g *Graph[K, V, W]) All() iter.Seq2[K, *Node[K, V, W]] {
	return maps.All(g.nodes)
}

// Ensure returns the node under key, default-constructing and inserting an
// empty node first if the key is absent (map access-or-create semantics).
func (g *Graph[K, V, W]) Ensure(key K) *Node[K, V, W] {
	n, ok := g.nodes[key]
	if !ok {
		n = &Node[K, V, W]{}
		g.ensureNodes()
		g.nodes[key] = n
	}
	return n
}

// At returns the node under key, or ErrKeyNotFound if key is absent.
func (g *Graph[K, V, W]) At(key K) (*Node[K, V, W], error) {
	n, ok := g.nodes[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return n, nil
}

// Find returns the node under key and whether it exists. It never fails.
func (g *Graph[K, V, W]) Find(key K) (*Node[K, V, W], bool) {
	n, ok := g.nodes[key]
	return n, ok
}

// DegreeIn counts, across all nodes, how many have an outgoing edge whose
// target is key. The key must itself be a node: a missing key yields
// ErrKeyNotFound even though the count would be computable without it.
// Complexity: O(total edges).
func (g *Graph[K, V, W]) DegreeIn(key K) (int, error) {
	if _, ok := g.nodes[key]; !ok {
		return 0, ErrKeyNotFound
	}
	count := 0
	for _, n := range g.nodes {
		if _, ok := n.edges[key]; ok {
			count++
		}
	}
	return count, nil
}

// DegreeOut returns the number of outgoing edges of the node under key, or
// ErrKeyNotFound if key is absent. Complexity: O(1).
func (g *Graph[K, V, W]) DegreeOut(key K) (int, error) {
	n, ok := g.nodes[key]
	if !ok {
		return 0, ErrKeyNotFound
	}
	return n.Size(), nil
}

// Loop reports whether the node under key has a self-loop (an edge whose
// target is key itself), or ErrKeyNotFound if key is absent.
func (g *Graph[K, V, W]) Loop(key K) (bool, error) {
	n, ok := g.nodes[key]
	if !ok {
		return false, ErrKeyNotFound
	}
	_, looped := n.edges[key]
	return looped, nil
}

// InsertNode inserts a new node holding value under key only if key is
// absent. On success it returns the new node and true; if key is already
// present the existing node is returned unmodified with false.
func (g *Graph[K, V, W]) InsertNode(key K, value V) (*Node[K, V, W], bool) {
	if existing, ok := g.nodes[key]; ok {
		return existing, false
	}
	n := NewNode[K, V, W](value)
	g.ensureNodes()
	g.nodes[key] = n
	return n, true
}

// InsertOrAssignNode inserts a new node holding value under key, replacing
// (not merging with) any node already there: edges of the prior node at that
// key are discarded. The returned flag is true iff key was newly inserted.
func (g *Graph[K, V, W]) InsertOrAssignNode(key K, value V) (*Node[K, V, W], bool) {
	_, existed := g.nodes[key]
	n := NewNode[K, V, W](value)
	g.ensureNodes()
	g.nodes[key] = n
	return n, !existed
}

// InsertEdge creates an edge from → to with the given weight, only if the
// source node has no edge to that target yet. Both endpoints must exist as
// nodes; otherwise ErrKeyNotFound is returned and nothing is inserted. The
// stored weight and the inserted flag follow Node.InsertEdge.
func (g *Graph[K, V, W]) InsertEdge(from, to K, weight W) (W, bool, error) {
	src, ok := g.nodes[from]
	if !ok {
		var zero W
		return zero, false, ErrKeyNotFound
	}
	if _, ok = g.nodes[to]; !ok {
		var zero W
		return zero, false, ErrKeyNotFound
	}
	w, inserted := src.InsertEdge(to, weight)
	return w, inserted, nil
}

// InsertOrAssignEdge creates an edge from → to or overwrites the weight of
// the existing one. Only the source endpoint is validated: a missing from
// yields ErrKeyNotFound, while to may be any key, existing node or not
// (unlike InsertEdge, which checks both). The flag is true iff the edge was
// newly created.
func (g *Graph[K, V, W]) InsertOrAssignEdge(from, to K, weight W) (W, bool, error) {
	src, ok := g.nodes[from]
	if !ok {
		var zero W
		return zero, false, ErrKeyNotFound
	}
	w, created := src.InsertOrAssignEdge(to, weight)
	return w, created, nil
}

// Swap exchanges the entire node-map state of g and other in O(1). It is the
// move primitive: swapping with a fresh graph leaves the source empty.
func (g *Graph[K, V, W]) Swap(other *Graph[K, V, W]) {
	g.nodes, other.nodes = other.nodes, g.nodes
}

// Clone returns a deep copy of the graph: fresh nodes with copied values and
// fresh edge maps. Mutating the clone never affects the source.
// Complexity: O(nodes + edges).
func (g *Graph[K, V, W]) Clone() *Graph[K, V, W] {
	clone := NewGraph[K, V, W]()
	for key, n := range g.nodes {
		c := NewNode[K, V, W](n.value)
		maps.Copy(c.edges, n.edges)
		clone.nodes[key] = c
	}
	return clone
}

// ensureNodes allocates the node map so zero-value graphs are usable.
func (g *Graph[K, V, W]) ensureNodes() {
	if g.nodes == nil {
		g.nodes = make(map[K]*Node[K, V, W])
	}
}

// Swap exchanges the state of two graphs in O(1).
func Swap[K comparable, V any, W any](a, b *Graph[K, V, W]) {
	a.Swap(b)
}
