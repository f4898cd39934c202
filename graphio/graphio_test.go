// SPDX-License-Identifier: MIT
package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baranwa2/RandomWalkGCN/builder"
	"github.com/baranwa2/RandomWalkGCN/core"
	"github.com/baranwa2/RandomWalkGCN/graphio"
)

const blockKey = builder.DefaultBlockKey

func sampled(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.SBM([]int{4, 6}, [][]float64{{0.6, 0.1}, {0.1, 0.3}}, 21)
	require.NoError(t, err)
	return g
}

func edgePairs(g *core.Graph) [][2]string {
	var out [][2]string
	for _, e := range g.Edges() {
		out = append(out, [2]string{e.From, e.To})
	}
	return out
}

func TestFromGraph(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for i, id := range []string{"0", "1", "2"} {
		require.NoError(t, g.AddVertex(id))
		require.NoError(t, g.SetVertexAttr(id, blockKey, []int{0, 2, 0}[i]))
	}
	_, err := g.AddEdge("0", "1")
	require.NoError(t, err)
	g.SetName("tiny")

	doc, err := graphio.FromGraph(g, blockKey)
	require.NoError(t, err)
	assert.False(t, doc.Directed)
	assert.False(t, doc.Multigraph)
	assert.Equal(t, "tiny", doc.Graph.Name)
	assert.Equal(t, [][]string{{"0", "2"}, {}, {"1"}}, doc.Graph.Partition)
	assert.Equal(t, []graphio.Node{{ID: "0", Block: 0}, {ID: "1", Block: 2}, {ID: "2", Block: 0}}, doc.Nodes)
	assert.Equal(t, []graphio.Link{{Source: "0", Target: "1"}}, doc.Links)

	require.NoError(t, g.AddVertex("orphan"))
	_, err = graphio.FromGraph(g, blockKey)
	require.ErrorIs(t, err, graphio.ErrMissingBlock)

	_, err = graphio.FromGraph(nil, blockKey)
	require.ErrorIs(t, err, graphio.ErrNilGraph)
}

func TestJSONLayout(t *testing.T) {
	t.Parallel()

	g, err := builder.SBM([]int{1, 1}, [][]float64{{0, 1}, {1, 0}}, 1)
	require.NoError(t, err)
	doc, err := graphio.FromGraph(g, blockKey)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.JSON{}.Encode(&buf, doc))
	require.JSONEq(t, `{
		"directed": false,
		"multigraph": false,
		"graph": {"name": "stochastic_block_model", "partition": [["0"], ["1"]]},
		"nodes": [{"id": "0", "block": 0}, {"id": "1", "block": 1}],
		"links": [{"source": "0", "target": "1"}]
	}`, buf.String())
}

func TestCodecs_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []string{graphio.FormatJSON, graphio.FormatGob} {
		format := format
		t.Run(format, func(t *testing.T) {
			t.Parallel()
			c, err := graphio.CodecFor(format)
			require.NoError(t, err)
			require.Equal(t, format, c.Ext())

			g := sampled(t)
			path := graphio.Path(t.TempDir(), 7, c)
			require.Equal(t, "graph_7."+format, filepath.Base(path))
			require.NoError(t, graphio.WriteFile(path, g, blockKey, c))

			back, err := graphio.ReadFile(path, blockKey, c)
			require.NoError(t, err)
			require.Equal(t, g.Vertices(), back.Vertices())
			require.Equal(t, edgePairs(g), edgePairs(back))
			require.Equal(t, g.Name(), back.Name())
			for _, id := range g.Vertices() {
				want, _ := g.VertexIntAttr(id, blockKey)
				got, ok := back.VertexIntAttr(id, blockKey)
				require.True(t, ok)
				require.Equal(t, want, got)
			}
		})
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), graphio.FileName(1, graphio.FormatJSON))
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 1<<16), 0o644))
	require.NoError(t, graphio.WriteFile(path, sampled(t), blockKey, graphio.JSON{}))

	doc, err := graphio.ReadDocument(path, graphio.JSON{})
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 10)
}

func TestWriteFile_Errors(t *testing.T) {
	t.Parallel()

	missingDir := filepath.Join(t.TempDir(), "nope", "graph_1.json")
	require.Error(t, graphio.WriteFile(missingDir, sampled(t), blockKey, graphio.JSON{}))

	_, err := graphio.ReadFile(missingDir, blockKey, graphio.JSON{})
	require.Error(t, err)

	_, err = graphio.CodecFor("gpickle")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestToGraph_BadDocument(t *testing.T) {
	t.Parallel()

	dup := &graphio.Document{Nodes: []graphio.Node{{ID: "a"}, {ID: "a"}}}
	_, err := dup.ToGraph(blockKey)
	require.ErrorIs(t, err, graphio.ErrBadDocument)

	dangling := &graphio.Document{
		Nodes: []graphio.Node{{ID: "a"}},
		Links: []graphio.Link{{Source: "a", Target: "b"}},
	}
	_, err = dangling.ToGraph(blockKey)
	require.ErrorIs(t, err, graphio.ErrBadDocument)

	repeated := &graphio.Document{
		Nodes: []graphio.Node{{ID: "a"}, {ID: "b"}},
		Links: []graphio.Link{{Source: "a", Target: "b"}, {Source: "b", Target: "a"}},
	}
	_, err = repeated.ToGraph(blockKey)
	require.ErrorIs(t, err, graphio.ErrBadDocument)

	loop := &graphio.Document{
		Directed: true,
		Nodes:    []graphio.Node{{ID: "a"}},
		Links:    []graphio.Link{{Source: "a", Target: "a"}},
	}
	g, err := loop.ToGraph(blockKey)
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.Equal(t, 1, g.SelfLoopCount())
}
