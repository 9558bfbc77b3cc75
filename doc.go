// Package graph provides a generic, embeddable, in-memory graph container:
// a map from unique keys to nodes, where each Node holds one value and a map
// of weighted directed edges to other keys.
//
// The package is a data structure, not an algorithm library. It offers
// map-like ergonomics (insert, lookup, iterate, degree queries) and leaves
// traversal, shortest paths and the rest to the caller.
//
// Type parameters:
//
//	K - node key; must be comparable (it is the map key on both levels).
//	V - per-node payload; any type whose zero value is a sensible default.
//	W - per-edge weight; stored and returned, never interpreted.
//
// Quick example:
//
//	g := graph.NewGraph[string, int, float64]()
//	g.InsertNode("A", 1)
//	g.InsertNode("B", 2)
//	g.InsertEdge("A", "B", 0.5)
//	n, _ := g.At("A")
//	fmt.Println(n.Size()) // 1
//
// Edges are directed and point at keys, not at nodes: an edge target need not
// exist in the graph, and nothing ever validates that it does after
// insertion. Dangling targets are permitted by design.
//
// Failure model: operations that require a key to be present return the
// sentinel ErrKeyNotFound (match with errors.Is) when it is not. Operations
// whose "failure" is a benign already-exists condition report it via a bool
// flag instead.
//
// Handles: lookups return *Node pointers aliasing the graph's own storage.
// A pointer stays usable on its own, but it stops tracking the graph once
// InsertOrAssignNode replaces the node under that key, or Clear or Swap
// detaches the node map. Iteration (All) walks live storage and must not
// overlap with structural mutation.
//
// The container performs no locking. Concurrent readers are fine; any writer
// requires external synchronization around the whole Graph, per the usual Go
// map rules.
package graph
