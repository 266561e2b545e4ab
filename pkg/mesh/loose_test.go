package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/csvmesh/pkg/geometry"
)

func TestRemoveLooseEdgesTakesOrphanedVertices(t *testing.T) {
	m := Build("test", []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	})
	m.Vertices = append(m.Vertices, geometry.NewVector3(5, 5, 5))
	m.Edges = append(m.Edges, NewEdge(2, 3))

	removed := m.RemoveLooseEdges()

	assert.Equal(t, 1, removed)
	// Vertex 3 was held only by the loose edge and goes with it; the
	// face and its vertices are untouched.
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, []Face{{0, 1, 2}}, m.Faces)
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 0, m.LooseEdgeCount())
}

func TestRemoveLooseEdgesKeepsFaceVertices(t *testing.T) {
	// The loose edge connects two face vertices; removing it must not
	// remove either vertex.
	m := Build("test", []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(1, 1, 0),
		geometry.NewVector3(2, 0, 0),
		geometry.NewVector3(2, 1, 0),
	})
	m.Edges = append(m.Edges, NewEdge(0, 3))

	removed := m.RemoveLooseEdges()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 6, m.VertexCount())
	require.Len(t, m.Faces, 2)
	assert.Equal(t, 6, m.EdgeCount())
}

func TestRemoveLooseEdgesKeepsIsolatedVertices(t *testing.T) {
	// A vertex with no edges at all is not loose-edge territory.
	m := Build("test", []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(9, 9, 9),
	})

	assert.Equal(t, 0, m.RemoveLooseEdges())
	assert.Equal(t, 4, m.VertexCount())
}

func TestRemoveLooseEdgesCompactsIndices(t *testing.T) {
	// Vertex 0 is orphaned, so every surviving index shifts down.
	m := &Mesh{
		Vertices: []geometry.Vector3{
			geometry.NewVector3(9, 9, 9),
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(1, 0, 0),
			geometry.NewVector3(0, 1, 0),
		},
		Faces: []Face{{1, 2, 3}},
		Edges: []Edge{{0, 1}, {1, 2}, {2, 3}, {1, 3}},
	}

	removed := m.RemoveLooseEdges()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, []Face{{0, 1, 2}}, m.Faces)
	assert.ElementsMatch(t, []Edge{{0, 1}, {1, 2}, {0, 2}}, m.Edges)
	assert.Equal(t, geometry.NewVector3(0, 0, 0), m.Vertices[0])
}

func TestRemoveLooseEdgesEmptyMesh(t *testing.T) {
	m := Build("test", nil)
	assert.Equal(t, 0, m.RemoveLooseEdges())
}
