// Package importer runs the import pipeline: decode a CSV vertex
// capture, build a triangle mesh, clean it up and hand it to a host.
package importer

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/csvmesh/pkg/csv"
	"github.com/philipparndt/csvmesh/pkg/mesh"
)

// DefaultMeshName is the name given to imported meshes.
const DefaultMeshName = "CSV_Mesh"

// DefaultMergeThreshold is the merge-by-distance threshold applied
// during cleanup, in mesh units.
const DefaultMergeThreshold = 0.001

const successMessage = "Mesh imported successfully."

// Options control a single import. The zero value means defaults; a
// negative MergeThreshold restricts merging to exact duplicates.
type Options struct {
	MeshName       string
	Profile        csv.Profile
	MergeThreshold float64
}

// DefaultOptions returns the options an empty Options resolves to.
func DefaultOptions() Options {
	return Options{
		MeshName:       DefaultMeshName,
		Profile:        csv.DefaultProfile(),
		MergeThreshold: DefaultMergeThreshold,
	}
}

func (o Options) withDefaults() Options {
	if o.MeshName == "" {
		o.MeshName = DefaultMeshName
	}
	if o.Profile == (csv.Profile{}) {
		o.Profile = csv.DefaultProfile()
	}
	if o.MergeThreshold == 0 {
		o.MergeThreshold = DefaultMergeThreshold
	}
	return o
}

// Result describes a finished import.
type Result struct {
	Mesh              *mesh.Mesh
	Object            ObjectHandle
	VerticesMerged    int
	LooseEdgesRemoved int
	FacesFlipped      int
}

// Import reads the CSV file at path and runs the full pipeline against
// the host. Any error, in decoding or in the host, aborts the import:
// nothing further is handed over, the host gets exactly one ERROR
// report carrying the error's text, and the error is returned. On
// success the host gets exactly one INFO report.
func Import(path string, host Host, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return fail(host, fmt.Errorf("failed to open file: %w", err))
	}
	defer f.Close()

	return ImportReader(f, host, opts)
}

// ImportReader runs the pipeline on an already-open stream. Each call
// builds an independent mesh; nothing is shared between imports.
func ImportReader(r io.Reader, host Host, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	if err := opts.Profile.Validate(); err != nil {
		return fail(host, err)
	}

	points, err := csv.NewDecoderProfile(r, opts.Profile).All()
	if err != nil {
		return fail(host, err)
	}

	m := mesh.Build(opts.MeshName, points)
	result := &Result{Mesh: m}
	result.VerticesMerged = m.MergeByDistance(opts.MergeThreshold)
	result.LooseEdgesRemoved = m.RemoveLooseEdges()
	result.FacesFlipped = m.MakeNormalsConsistent()

	handle, err := host.CreateMesh(m.Name, m.Vertices, m.Faces)
	if err != nil {
		return fail(host, err)
	}
	object, err := host.InsertIntoScene(handle)
	if err != nil {
		return fail(host, err)
	}
	result.Object = object

	if err := host.WriteDebugListing(m.Vertices); err != nil {
		return fail(host, err)
	}

	host.Report(LevelInfo, successMessage)
	return result, nil
}

func fail(host Host, err error) (*Result, error) {
	host.Report(LevelError, err.Error())
	return nil, err
}
