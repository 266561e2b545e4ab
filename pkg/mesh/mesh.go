// Package mesh builds indexed triangle meshes from ordered point streams
// and carries the cleanup passes that run after construction.
package mesh

import (
	"github.com/philipparndt/csvmesh/pkg/geometry"
)

// Face is an ordered triple of vertex indices. The winding order carries
// the face orientation.
type Face [3]int

// Edges returns the three undirected edges of the face.
func (f Face) Edges() [3]Edge {
	return [3]Edge{
		NewEdge(f[0], f[1]),
		NewEdge(f[1], f[2]),
		NewEdge(f[2], f[0]),
	}
}

// Flipped returns the face with reversed winding. The first vertex is
// kept in place so the face identity stays recognizable.
func (f Face) Flipped() Face {
	return Face{f[0], f[2], f[1]}
}

// Edge is an undirected pair of vertex indices, stored low index first.
type Edge [2]int

// NewEdge normalizes the endpoint order.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Mesh is an indexed triangle mesh. The vertex table is dense, 0-based
// and ordered by first appearance. Edges holds every edge of every face
// plus any edge left behind by a collapsed face; after RemoveLooseEdges
// the two sets coincide.
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Faces    []Face
	Edges    []Edge
}

// Build creates a mesh from an ordered point stream. Every point becomes
// its own vertex, duplicates included; coalescing near-coincident
// vertices is a separate pass (MergeByDistance). Each consecutive run of
// three points forms one triangle. One or two trailing points do not
// form a triangle and stay behind as isolated vertices.
func Build(name string, points []geometry.Vector3) *Mesh {
	vertices := make([]geometry.Vector3, len(points))
	copy(vertices, points)

	var faces []Face
	for i := 0; i+2 < len(points); i += 3 {
		faces = append(faces, Face{i, i + 1, i + 2})
	}

	// Consecutive triples never share an index, so the face edges are
	// already unique.
	var edges []Edge
	for _, f := range faces {
		fe := f.Edges()
		edges = append(edges, fe[0], fe[1], fe[2])
	}

	return &Mesh{Name: name, Vertices: vertices, Faces: faces, Edges: edges}
}

// FromFaces assembles a mesh from an existing vertex table and face
// list, deriving the edge set from the faces. Hosts use it to rebuild a
// mesh from the handoff data.
func FromFaces(name string, vertices []geometry.Vector3, faces []Face) *Mesh {
	m := &Mesh{Name: name, Vertices: vertices, Faces: faces}
	seen := make(map[Edge]bool, len(faces)*3)
	for _, f := range faces {
		for _, e := range f.Edges() {
			if !seen[e] {
				seen[e] = true
				m.Edges = append(m.Edges, e)
			}
		}
	}
	return m
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// EdgeCount returns the number of edges.
func (m *Mesh) EdgeCount() int {
	return len(m.Edges)
}

// LooseEdges returns the edges that border no face, in edge-set order.
func (m *Mesh) LooseEdges() []Edge {
	covered := m.faceEdgeSet()
	var loose []Edge
	for _, e := range m.Edges {
		if !covered[e] {
			loose = append(loose, e)
		}
	}
	return loose
}

// LooseEdgeCount returns the number of edges that border no face.
func (m *Mesh) LooseEdgeCount() int {
	return len(m.LooseEdges())
}

// Triangle resolves face i into a triangle by value.
func (m *Mesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	return geometry.Triangle{
		V1: m.Vertices[f[0]],
		V2: m.Vertices[f[1]],
		V3: m.Vertices[f[2]],
	}
}

// BoundingBox returns the axis-aligned bounding box of all vertices.
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	box := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		box.Extend(v)
	}
	return box
}

// SurfaceArea returns the summed area of all faces.
func (m *Mesh) SurfaceArea() float64 {
	area := 0.0
	for i := range m.Faces {
		area += m.Triangle(i).Area()
	}
	return area
}

// ConnectedComponents counts the connected parts of the mesh, following
// edges. An isolated vertex is a component of its own.
func (m *Mesh) ConnectedComponents() int {
	if len(m.Vertices) == 0 {
		return 0
	}
	parent := make([]int, len(m.Vertices))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	for _, e := range m.Edges {
		ra, rb := find(e[0]), find(e[1])
		if ra != rb {
			parent[ra] = rb
		}
	}
	count := 0
	for i := range parent {
		if find(i) == i {
			count++
		}
	}
	return count
}

func (m *Mesh) faceEdgeSet() map[Edge]bool {
	covered := make(map[Edge]bool, len(m.Faces)*3)
	for _, f := range m.Faces {
		for _, e := range f.Edges() {
			covered[e] = true
		}
	}
	return covered
}
