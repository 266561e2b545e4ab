// Package scene provides the file-backed host for the import pipeline.
// The scene is a location on disk: creating a mesh buffers it, inserting
// it writes asset files, and the single status report goes to a writer.
package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/csvmesh/pkg/geometry"
	"github.com/philipparndt/csvmesh/pkg/importer"
	"github.com/philipparndt/csvmesh/pkg/mesh"
	"github.com/philipparndt/csvmesh/pkg/obj"
	"github.com/philipparndt/csvmesh/pkg/stl"
)

// DefaultMaterialName is the material imported meshes get in the OBJ
// output.
const DefaultMaterialName = "Material"

// DefaultDiffuse is the RGBA diffuse color of the default material.
var DefaultDiffuse = [4]float64{0.8, 0.5, 0.8, 1.0}

// Directory writes imported meshes as asset files. It implements
// importer.Host and can be reused across imports; a failed import
// removes whatever it had already written, so cancellation leaves no
// partial output behind.
type Directory struct {
	// OutputPath is the asset file to write. Its extension selects the
	// format: .obj, with a companion material library, or .stl.
	OutputPath string

	// ListingPath overrides where the vertex listing goes. Empty
	// derives "<output stem>.vertices.txt" next to the output.
	ListingPath string

	// DisableListing skips the vertex listing entirely.
	DisableListing bool

	// Center translates the mesh so its bounding-box center lands on
	// the origin before anything is written.
	Center bool

	// Out and Err receive the report lines. Nil means stdout and
	// stderr.
	Out io.Writer
	Err io.Writer

	written []string
}

var _ importer.Host = (*Directory)(nil)

// CreateMesh rebuilds an indexed mesh from the handoff data.
func (d *Directory) CreateMesh(name string, vertices []geometry.Vector3, faces []mesh.Face) (importer.MeshHandle, error) {
	return mesh.FromFaces(name, vertices, faces), nil
}

// InsertIntoScene writes the mesh in the format the output extension
// names and returns the written path.
func (d *Directory) InsertIntoScene(h importer.MeshHandle) (importer.ObjectHandle, error) {
	m, ok := h.(*mesh.Mesh)
	if !ok {
		return nil, fmt.Errorf("unexpected mesh handle %T", h)
	}

	if d.Center {
		centerAtOrigin(m)
	}

	ext := strings.ToLower(filepath.Ext(d.OutputPath))
	switch ext {
	case ".obj":
		if err := d.writeOBJ(m); err != nil {
			return nil, err
		}
	case ".stl":
		if err := d.writeSTL(m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %s", ext)
	}
	return d.OutputPath, nil
}

// Report prints the status line and settles the written files: a
// success hands them over, a failure removes them.
func (d *Directory) Report(level importer.Level, message string) {
	fmt.Fprintf(d.reportWriter(level), "%s: %s\n", level, message)

	if level == importer.LevelError {
		for _, path := range d.written {
			os.Remove(path)
		}
	}
	d.written = nil
}

// WriteDebugListing writes the final vertices as a text file, one
// "(x, y, z)" line per vertex.
func (d *Directory) WriteDebugListing(vertices []geometry.Vector3) error {
	if d.DisableListing {
		return nil
	}

	var b strings.Builder
	b.WriteString("Vertices:\n")
	for _, v := range vertices {
		b.WriteString(v.String())
		b.WriteByte('\n')
	}
	return d.writeFile(d.listingPath(), []byte(b.String()))
}

func (d *Directory) listingPath() string {
	if d.ListingPath != "" {
		return d.ListingPath
	}
	return withExt(d.OutputPath, ".vertices.txt")
}

func (d *Directory) writeOBJ(m *mesh.Mesh) error {
	mtlPath := withExt(d.OutputPath, ".mtl")

	var buf bytes.Buffer
	if err := obj.Write(&buf, m, filepath.Base(mtlPath), DefaultMaterialName); err != nil {
		return err
	}
	if err := d.writeFile(d.OutputPath, buf.Bytes()); err != nil {
		return err
	}

	buf.Reset()
	if err := obj.WriteMTL(&buf, DefaultMaterialName, DefaultDiffuse); err != nil {
		return err
	}
	return d.writeFile(mtlPath, buf.Bytes())
}

func (d *Directory) writeSTL(m *mesh.Mesh) error {
	var buf bytes.Buffer
	if err := stl.Write(&buf, m); err != nil {
		return err
	}
	return d.writeFile(d.OutputPath, buf.Bytes())
}

func (d *Directory) writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	d.written = append(d.written, path)
	return nil
}

func (d *Directory) reportWriter(level importer.Level) io.Writer {
	if level == importer.LevelError {
		if d.Err != nil {
			return d.Err
		}
		return os.Stderr
	}
	if d.Out != nil {
		return d.Out
	}
	return os.Stdout
}

// centerAtOrigin translates every vertex so the bounding-box center
// moves to the origin.
func centerAtOrigin(m *mesh.Mesh) {
	box := m.BoundingBox()
	if box.IsEmpty() {
		return
	}
	center := box.Center()
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Sub(center)
	}
}

// withExt swaps the path's extension.
func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
