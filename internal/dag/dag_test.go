package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.Zero(t, g.Len())
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a")
	assert.Equal(t, 1, g.Len())

	g.AddNode("a") // idempotent
	assert.Equal(t, 1, g.Len())

	g.AddNode("b")
	assert.Equal(t, 2, g.Len())
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		require.NoError(t, g.AddEdge("b", "a")) // b depends on a

		deps, err := g.Dependencies("b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, deps)
	})

	t.Run("duplicate edges collapse", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		require.NoError(t, g.AddEdge("b", "a"))
		require.NoError(t, g.AddEdge("b", "a"))

		deps, err := g.Dependencies("b")
		require.NoError(t, err)
		assert.Len(t, deps, 1)
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a")

		err := g.AddEdge("dne", "a")
		assert.ErrorContains(t, err, "node not found")

		err = g.AddEdge("a", "dne")
		assert.ErrorContains(t, err, "dependency node not found")

		err = g.AddEdge("a", "a")
		assert.ErrorContains(t, err, "self-referential edge")
	})
}

func TestFindCycle(t *testing.T) {
	t.Run("empty graph has no cycle", func(t *testing.T) {
		g := New()
		assert.Nil(t, g.FindCycle())
	})

	t.Run("valid dag has no cycle", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")
		g.AddNode("d")
		require.NoError(t, g.AddEdge("b", "a"))
		require.NoError(t, g.AddEdge("c", "b"))
		require.NoError(t, g.AddEdge("c", "a")) // transitive edge
		require.NoError(t, g.AddEdge("d", "c"))
		assert.Nil(t, g.FindCycle())
	})

	t.Run("two-node cycle is reported minimally", func(t *testing.T) {
		g := New()
		g.AddNode("x")
		g.AddNode("y")
		require.NoError(t, g.AddEdge("x", "y"))
		require.NoError(t, g.AddEdge("y", "x"))

		cycle := g.FindCycle()
		require.Len(t, cycle, 2)
		assert.ElementsMatch(t, []string{"x", "y"}, cycle)
	})

	t.Run("tail into a cycle is not part of the report", func(t *testing.T) {
		g := New()
		// a -> b -> c -> b: only b and c form the cycle.
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("c", "b"))

		cycle := g.FindCycle()
		require.Len(t, cycle, 2)
		assert.ElementsMatch(t, []string{"b", "c"}, cycle)
	})

	t.Run("cycle in a disjoint component is detected", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("b", "a"))

		g.AddNode("x")
		g.AddNode("y")
		g.AddNode("z")
		require.NoError(t, g.AddEdge("x", "y"))
		require.NoError(t, g.AddEdge("y", "z"))
		require.NoError(t, g.AddEdge("z", "y"))

		cycle := g.FindCycle()
		require.Len(t, cycle, 2)
		assert.ElementsMatch(t, []string{"y", "z"}, cycle)
	})
}

func TestTopoSort(t *testing.T) {
	t.Run("dependencies come before dependents", func(t *testing.T) {
		g := New()
		g.AddNode("app")
		g.AddNode("lib")
		g.AddNode("base")
		require.NoError(t, g.AddEdge("app", "lib"))
		require.NoError(t, g.AddEdge("lib", "base"))

		order, err := g.TopoSort()
		require.NoError(t, err)
		assert.Equal(t, []string{"base", "lib", "app"}, order)
	})

	t.Run("independent nodes keep insertion order", func(t *testing.T) {
		g := New()
		g.AddNode("c")
		g.AddNode("a")
		g.AddNode("b")

		order, err := g.TopoSort()
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, order)
	})

	t.Run("cycle yields an error", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a"))

		_, err := g.TopoSort()
		assert.ErrorContains(t, err, "cycle")
	})
}
