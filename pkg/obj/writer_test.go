package obj

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/csvmesh/pkg/geometry"
	"github.com/philipparndt/csvmesh/pkg/mesh"
)

func TestWrite(t *testing.T) {
	m := mesh.Build("CSV_Mesh", []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0.5),
	})

	var b strings.Builder
	require.NoError(t, Write(&b, m, "capture.mtl", "Material"))

	assert.Equal(t,
		"mtllib capture.mtl\n"+
			"o CSV_Mesh\n"+
			"v 0 0 0\n"+
			"v 1 0 0\n"+
			"v 0 1 0.5\n"+
			"usemtl Material\n"+
			"f 1 2 3\n",
		b.String())
}

func TestWriteWithoutMaterial(t *testing.T) {
	m := mesh.Build("plain", []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	})

	var b strings.Builder
	require.NoError(t, Write(&b, m, "", ""))

	assert.NotContains(t, b.String(), "mtllib")
	assert.NotContains(t, b.String(), "usemtl")
	assert.Contains(t, b.String(), "f 1 2 3\n")
}

func TestWriteLooseEdges(t *testing.T) {
	m := mesh.Build("test", []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(2, 2, 2),
	})
	m.Edges = append(m.Edges, mesh.NewEdge(0, 3))

	var b strings.Builder
	require.NoError(t, Write(&b, m, "", ""))

	assert.Contains(t, b.String(), "l 1 4\n")
	// Face edges are never written as line elements.
	assert.NotContains(t, b.String(), "l 1 2\n")
}

func TestWriteEmptyMesh(t *testing.T) {
	m := mesh.Build("empty", nil)

	var b strings.Builder
	require.NoError(t, Write(&b, m, "", ""))

	assert.Equal(t, "o empty\n", b.String())
}

func TestWriteMTL(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteMTL(&b, "Material", [4]float64{0.8, 0.5, 0.8, 1.0}))

	assert.Equal(t,
		"newmtl Material\n"+
			"Kd 0.8 0.5 0.8\n"+
			"d 1\n",
		b.String())
}
