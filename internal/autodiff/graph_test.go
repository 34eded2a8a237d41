package autodiff_test

import (
	"testing"

	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_Structure(t *testing.T) {
	a := autodiff.NewLabeledValue(2, "a")
	b := autodiff.NewLabeledValue(-3, "b")
	c := a.Mul(b)
	d := c.Add(a)

	g := autodiff.NewGraph(d)

	assert.Same(t, d, g.Root())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 2, g.NumOps())
	assert.ElementsMatch(t, []*autodiff.Value{a, b}, g.Leaves())
	assert.Equal(t, -1, g.IndexOf(autodiff.NewValue(0)))

	edges := g.Edges()
	require.Len(t, edges, 4)
	for _, e := range edges {
		assert.Less(t, e.From, e.To)
	}
}

func TestGraph_SelfEdges(t *testing.T) {
	a := autodiff.NewValue(3)
	g := autodiff.NewGraph(a.Mul(a))

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, edges[0], edges[1])
}

func TestGraph_ZeroGradBackward(t *testing.T) {
	a := autodiff.NewValue(2)
	b := autodiff.NewValue(5)
	g := autodiff.NewGraph(a.Mul(b))

	g.Backward()
	g.Backward()
	assert.Equal(t, 10.0, a.Grad)

	g.ZeroGrad()
	for _, n := range g.Nodes() {
		assert.Zero(t, n.Grad)
	}

	g.Backward()
	assert.Equal(t, 5.0, a.Grad)
	assert.Equal(t, 2.0, b.Grad)
	assert.Equal(t, 1.0, g.Root().Grad)
}
