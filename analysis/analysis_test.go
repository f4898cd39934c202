// SPDX-License-Identifier: MIT
package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baranwa2/RandomWalkGCN/analysis"
	"github.com/baranwa2/RandomWalkGCN/blockmodel"
	"github.com/baranwa2/RandomWalkGCN/builder"
	"github.com/baranwa2/RandomWalkGCN/core"
)

var (
	base      = blockmodel.MustProbMatrix([][]float64{{0.6, 0.1}, {0.1, 0.3}})
	basePart  = blockmodel.Partition{80, 120}
	perturbed = func() *blockmodel.ProbMatrix {
		pm, err := blockmodel.Perturb(base, 0.05, 0.4, 0.6)
		if err != nil {
			panic(err)
		}
		return pm
	}()
)

func sample(t *testing.T, part blockmodel.Partition, pm *blockmodel.ProbMatrix, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.BlockModel(part, pm))
	require.NoError(t, err)
	return g
}

func TestInspect_BaseGraphPasses(t *testing.T) {
	t.Parallel()

	g := sample(t, basePart, base, 3)
	rep, err := analysis.Inspect(g, basePart, base)
	require.NoError(t, err)

	assert.Equal(t, 200, rep.Nodes)
	assert.Equal(t, []int{80, 120}, rep.BlockSizes)
	assert.Zero(t, rep.SelfLoops)
	assert.Empty(t, rep.Unassigned)
	require.Len(t, rep.Pairs, 3)
	assert.InDelta(t, 0.6, rep.Pairs[0].Density, 0.04)
	assert.Equal(t, int64(80*79/2), rep.Pairs[0].Trials)
	assert.Equal(t, int64(80*120), rep.Pairs[1].Trials)
	assert.InDelta(t, blockmodel.ExpectedEdges(basePart, base, blockmodel.Mode{}), rep.ExpectedEdges, 1e-9)
	assert.Less(t, math.Abs(rep.EdgeZ), 5.0)
	assert.GreaterOrEqual(t, rep.Components, 1)

	require.NoError(t, rep.Check(1e-6))
}

func TestInspect_PerturbedDensity(t *testing.T) {
	t.Parallel()

	g := sample(t, basePart, perturbed, 8)
	rep, err := analysis.Inspect(g, basePart, perturbed)
	require.NoError(t, err)

	s, ok := rep.Pair(0, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.725, s.Density, 0.04)
	cross, ok := rep.Pair(1, 0)
	require.True(t, ok)
	assert.Equal(t, 0, cross.A)
	assert.Equal(t, 1, cross.B)
	require.NoError(t, rep.Check(1e-6))

	againstBase, err := analysis.Inspect(g, basePart, base)
	require.NoError(t, err)
	require.ErrorIs(t, againstBase.Check(1e-6), analysis.ErrDensity)
}

func TestInspect_WrongPartition(t *testing.T) {
	t.Parallel()

	g := sample(t, basePart, base, 5)
	rep, err := analysis.Inspect(g, blockmodel.Partition{100, 100}, base)
	require.NoError(t, err)
	assert.Equal(t, []int{80, 120}, rep.BlockSizes)
	require.ErrorIs(t, rep.Check(0.001), analysis.ErrBlockSizes)
}

func TestInspect_MissingBlockAndEmptyGraph(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for i, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(id))
		if i < 3 {
			require.NoError(t, g.SetVertexAttr(id, analysis.DefaultBlockKey, 0))
		}
	}
	pm := blockmodel.MustProbMatrix([][]float64{{0.5}})
	rep, err := analysis.Inspect(g, blockmodel.Partition{4}, pm)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, rep.Unassigned)
	assert.Equal(t, 4, rep.Components)

	err = rep.Check(0.001)
	require.ErrorIs(t, err, analysis.ErrMissingBlock)
	require.ErrorIs(t, err, analysis.ErrBlockSizes)
}

func TestInspect_ExactProbabilities(t *testing.T) {
	t.Parallel()

	part := blockmodel.Partition{3, 2}
	pm := blockmodel.MustProbMatrix([][]float64{{1, 0}, {0, 1}})
	g := sample(t, part, pm, 1)

	rep, err := analysis.Inspect(g, part, pm)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Components)
	for _, s := range rep.Pairs {
		assert.Zero(t, s.Z)
		assert.Equal(t, 1.0, s.PValue)
	}
	require.NoError(t, rep.Check(0.05))

	_, _ = g.AddEdge("0", "3")
	rep, err = analysis.Inspect(g, part, pm)
	require.NoError(t, err)
	s, _ := rep.Pair(0, 1)
	assert.True(t, math.IsInf(s.Z, 1))
	require.ErrorIs(t, rep.Check(0.05), analysis.ErrDensity)
}

func TestInspect_Errors(t *testing.T) {
	t.Parallel()

	_, err := analysis.Inspect(nil, basePart, base)
	require.ErrorIs(t, err, analysis.ErrNilGraph)

	_, err = analysis.Inspect(core.NewGraph(), blockmodel.Partition{1, 1, 1}, base)
	require.ErrorIs(t, err, blockmodel.ErrDimensionMismatch)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	rep := &analysis.Report{SelfLoops: 2}
	require.ErrorIs(t, rep.Check(0.01), analysis.ErrSelfLoops)
	rep.LoopsOK = true
	require.NoError(t, rep.Check(0.01))

	for _, alpha := range []float64{0, 1, -0.1, math.NaN()} {
		require.ErrorIs(t, rep.Check(alpha), analysis.ErrBadAlpha)
		require.ErrorIs(t, analysis.ValidAlpha(alpha), analysis.ErrBadAlpha)
	}
	require.NoError(t, analysis.ValidAlpha(1e-9))
}

func TestCheck_EdgeCount(t *testing.T) {
	t.Parallel()

	// Pair statistics stay as sampled; only the total is pushed out.
	part := blockmodel.Partition{80, 120}
	rep, err := analysis.Inspect(sample(t, part, base, 4), part, base)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Tests())

	rep.EdgeZ = 6
	err = rep.Check(1e-6)
	require.ErrorIs(t, err, analysis.ErrEdgeCount)
	require.NotErrorIs(t, err, analysis.ErrDensity)

	rep.EdgeZ = -6
	require.ErrorIs(t, rep.Check(1e-6), analysis.ErrEdgeCount)

	rep.EdgeZ = 2
	require.NoError(t, rep.Check(1e-6))
	require.ErrorIs(t, rep.Check(0.05), analysis.ErrEdgeCount)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s, err := analysis.Summarize(analysis.Ints([]int{1, 2, 3, 4}))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.StdDev, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.InDelta(t, 2.5, s.Median, 1e-12)

	s, err = analysis.Summarize([]float64{7})
	require.NoError(t, err)
	assert.Zero(t, s.StdDev)

	_, err = analysis.Summarize(nil)
	require.ErrorIs(t, err, analysis.ErrEmptySeries)
}
