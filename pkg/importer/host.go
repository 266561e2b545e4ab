package importer

import (
	"github.com/philipparndt/csvmesh/pkg/geometry"
	"github.com/philipparndt/csvmesh/pkg/mesh"
)

// Level classifies a host report.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "ERROR"
	}
	return "INFO"
}

// MeshHandle is an opaque host-owned reference to a created mesh.
type MeshHandle any

// ObjectHandle is an opaque host-owned reference to an inserted object.
type ObjectHandle any

// Host is the collaborator that receives the finished mesh. A scene
// host would create a datablock and link an object into its graph; the
// bundled file host writes asset files instead. The pipeline calls
// Report exactly once per import, INFO on success or ERROR on failure.
type Host interface {
	// CreateMesh turns the final vertex table and face list into a
	// host-side mesh.
	CreateMesh(name string, vertices []geometry.Vector3, faces []mesh.Face) (MeshHandle, error)

	// InsertIntoScene makes the created mesh part of the host's scene.
	InsertIntoScene(m MeshHandle) (ObjectHandle, error)

	// Report delivers the single status line of an import.
	Report(level Level, message string)

	// WriteDebugListing records the final vertices as a readable text
	// artifact, one "(x, y, z)" line per vertex under a "Vertices:"
	// header.
	WriteDebugListing(vertices []geometry.Vector3) error
}
