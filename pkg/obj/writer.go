// Package obj writes meshes as Wavefront OBJ with an optional material
// library.
package obj

import (
	"bufio"
	"fmt"
	"io"

	"github.com/philipparndt/csvmesh/pkg/mesh"
)

// Write emits the mesh in OBJ text form. Vertex and face indices are
// 1-based per the format. Edges that border no face come out as line
// elements, so loose geometry survives the round trip. materialLib and
// materialName are emitted only when non-empty.
func Write(w io.Writer, m *mesh.Mesh, materialLib, materialName string) error {
	bw := bufio.NewWriter(w)

	if materialLib != "" {
		fmt.Fprintf(bw, "mtllib %s\n", materialLib)
	}
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	if materialName != "" && len(m.Faces) > 0 {
		fmt.Fprintf(bw, "usemtl %s\n", materialName)
	}
	for _, f := range m.Faces {
		fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}
	for _, e := range m.LooseEdges() {
		fmt.Fprintf(bw, "l %d %d\n", e[0]+1, e[1]+1)
	}

	return bw.Flush()
}

// WriteMTL emits a material library holding a single diffuse material.
// diffuse is RGBA; the alpha component becomes the dissolve factor.
func WriteMTL(w io.Writer, name string, diffuse [4]float64) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "newmtl %s\n", name)
	fmt.Fprintf(bw, "Kd %g %g %g\n", diffuse[0], diffuse[1], diffuse[2])
	fmt.Fprintf(bw, "d %g\n", diffuse[3])

	return bw.Flush()
}
