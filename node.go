package graph

import (
	"iter"
	"maps"
)

// Node is a single graph vertex: one value plus the set of outgoing weighted
// edges, keyed by target. A Node never knows which Graph owns it and never
// checks that an edge target exists anywhere; it is a self-contained pair of
// payload and edge map.
//
// The zero value is an empty node with a zero payload and no edges; the edge
// map is allocated lazily on first insert.
type Node[K comparable, V any, W any] struct {
	value V
	edges map[K]W
}

// NewNode returns a node holding value and no edges.
func NewNode[K comparable, V any, W any](value V) *Node[K, V, W] {
	return &Node[K, V, W]{value: value, edges: make(map[K]W)}
}

// IsEmpty reports whether the node has no outgoing edges.
func (n *Node[K, V, W]) IsEmpty() bool { return len(n.edges) == 0 }

// Size returns the number of outgoing edges.
func (n *Node[K, V, W]) Size() int { return len(n.edges) }

// Value returns the stored payload.
func (n *Node[K, V, W]) Value() V { return n.value }

// SetValue replaces the stored payload.
func (n *Node[K, V, W]) SetValue(value V) { n.value = value }

// Clear removes all outgoing edges. The value is untouched.
func (n *Node[K, V, W]) Clear() { clear(n.edges) }

// Edges exposes the live edge map (target key → weight) for bulk inspection
// or mutation. Mutating the returned map mutates the node.
func (n *Node[K, V, W]) Edges() map[K]W {
	n.ensureEdges()
	return n.edges
}

// All returns a restartable iterator over (target key, weight) pairs.
// Order is unspecified. Must not overlap with edge mutation.
func (n *Node[K, V, W]) All() iter.Seq2[K, W] {
	return maps.All(n.edges)
}

// InsertEdge adds an edge to target with the given weight only if no edge to
// target exists yet. It returns the weight stored under target and true on
// insertion; if the edge already existed it is left unmodified and the
// existing weight is returned with false.
func (n *Node[K, V, W]) InsertEdge(target K, weight W) (W, bool) {
	if existing, ok := n.edges[target]; ok {
		return existing, false
	}
	n.ensureEdges()
	n.edges[target] = weight
	return weight, true
}

// InsertOrAssignEdge adds an edge to target or overwrites the weight of the
// existing one. The returned flag is true iff the edge was newly created.
func (n *Node[K, V, W]) InsertOrAssignEdge(target K, weight W) (W, bool) {
	_, existed := n.edges[target]
	n.ensureEdges()
	n.edges[target] = weight
	return weight, !existed
}

// ensureEdges allocates the edge map so zero-value nodes are usable.
func (n *Node[K, V, W]) ensureEdges() {
	if n.edges == nil {
		n.edges = make(map[K]W)
	}
}
