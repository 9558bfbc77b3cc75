package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tka4nik/graph"
)

func TestNode_ZeroValueUsable(t *testing.T) {
	require := require.New(t)

	var n graph.Node[string, int, int]
	require.True(n.IsEmpty(), "zero-value node must start empty")
	require.Zero(n.Size())
	require.Zero(n.Value(), "zero-value node must hold the payload zero value")

	_, inserted := n.InsertEdge("B", 3)
	require.True(inserted, "zero-value node must accept edges")
	require.Equal(1, n.Size())
}

func TestNode_ValueAccess(t *testing.T) {
	require := require.New(t)

	n := graph.NewNode[string, string, int]("payload")
	require.Equal("payload", n.Value())

	n.SetValue("updated")
	require.Equal("updated", n.Value())

	// Value survives edge churn.
	n.InsertEdge("X", 1)
	n.Clear()
	require.Equal("updated", n.Value(), "Clear must not touch the value")
	require.True(n.IsEmpty(), "Clear must drop all edges")
}

func TestNode_InsertEdge(t *testing.T) {
	require := require.New(t)

	n := graph.NewNode[string, int, int](0)
	w, inserted := n.InsertEdge("B", 5)
	require.True(inserted, "first insert must succeed")
	require.Equal(5, w)

	w, inserted = n.InsertEdge("B", 9)
	require.False(inserted, "duplicate insert must be rejected")
	require.Equal(5, w, "existing edge must be returned unmodified")
	require.Equal(5, n.Edges()["B"], "stored weight must be unchanged")
}

func TestNode_InsertOrAssignEdge(t *testing.T) {
	require := require.New(t)

	n := graph.NewNode[string, int, int](0)
	w, created := n.InsertOrAssignEdge("B", 5)
	require.True(created, "first insert-or-assign must report creation")
	require.Equal(5, w)

	w, created = n.InsertOrAssignEdge("B", 9)
	require.False(created, "overwrite must report created=false")
	require.Equal(9, w)
	require.Equal(9, n.Edges()["B"], "weight must be overwritten")
	require.Equal(1, n.Size(), "overwrite must not add an entry")
}

func TestNode_All(t *testing.T) {
	require := require.New(t)

	n := graph.NewNode[string, int, int](0)
	n.InsertEdge("A", 1)
	n.InsertEdge("B", 2)
	n.InsertEdge("C", 3)

	collect := func() map[string]int {
		seen := make(map[string]int)
		for target, weight := range n.All() {
			seen[target] = weight
		}
		return seen
	}

	want := map[string]int{"A": 1, "B": 2, "C": 3}
	require.Equal(want, collect())
	// Restartable: a second full pass sees the same pairs.
	require.Equal(want, collect())
}

func TestNode_EdgesIsLive(t *testing.T) {
	require := require.New(t)

	n := graph.NewNode[string, int, int](0)
	n.Edges()["B"] = 4
	require.Equal(1, n.Size(), "mutation through Edges() must be visible")

	w, inserted := n.InsertEdge("B", 7)
	require.False(inserted)
	require.Equal(4, w)
}
