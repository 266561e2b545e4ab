// Package stl writes meshes in binary STL format.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/csvmesh/pkg/mesh"
)

// Write emits the mesh as binary STL: an 80-byte header carrying the
// mesh name, a triangle count, then 50 bytes per triangle. Normals are
// computed from the face winding. STL has no shared vertices and no
// explicit edges, so loose geometry is not representable and is left
// out.
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], m.Name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Faces))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i := range m.Faces {
		if err := writeTriangle(bw, m, i); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes the mesh as binary STL to the named file.
func WriteFile(filename string, m *mesh.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeTriangle(w io.Writer, m *mesh.Mesh, i int) error {
	t := m.Triangle(i)
	n := t.Normal()

	record := [12]float32{
		float32(n.X), float32(n.Y), float32(n.Z),
		float32(t.V1.X), float32(t.V1.Y), float32(t.V1.Z),
		float32(t.V2.X), float32(t.V2.Y), float32(t.V2.Z),
		float32(t.V3.X), float32(t.V3.Y), float32(t.V3.Z),
	}
	if err := binary.Write(w, binary.LittleEndian, record); err != nil {
		return err
	}

	// Attribute byte count, unused but required by the format.
	return binary.Write(w, binary.LittleEndian, uint16(0))
}
