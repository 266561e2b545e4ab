package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/csvmesh/pkg/csv"
	"github.com/philipparndt/csvmesh/pkg/geometry"
	"github.com/philipparndt/csvmesh/pkg/mesh"
)

type report struct {
	level   Level
	message string
}

// recorderHost records every Host call and can be told to fail any of
// them.
type recorderHost struct {
	meshName string
	vertices []geometry.Vector3
	faces    []mesh.Face
	created  bool
	inserted bool
	listing  []geometry.Vector3
	listed   bool
	reports  []report

	createErr  error
	insertErr  error
	listingErr error
}

func (h *recorderHost) CreateMesh(name string, vertices []geometry.Vector3, faces []mesh.Face) (MeshHandle, error) {
	if h.createErr != nil {
		return nil, h.createErr
	}
	h.created = true
	h.meshName = name
	h.vertices = vertices
	h.faces = faces
	return name, nil
}

func (h *recorderHost) InsertIntoScene(m MeshHandle) (ObjectHandle, error) {
	if h.insertErr != nil {
		return nil, h.insertErr
	}
	h.inserted = true
	return m, nil
}

func (h *recorderHost) Report(level Level, message string) {
	h.reports = append(h.reports, report{level, message})
}

func (h *recorderHost) WriteDebugListing(vertices []geometry.Vector3) error {
	if h.listingErr != nil {
		return h.listingErr
	}
	h.listed = true
	h.listing = vertices
	return nil
}

const testHeader = "VTX,IDX,SV_Position.x,SV_Position.y,SV_Position.z,SV_Position.w\n"

// nineRows returns a capture with nine valid data rows and no duplicate
// positions.
func nineRows() string {
	var b strings.Builder
	b.WriteString(testHeader)
	for i := 0; i < 9; i++ {
		fmt.Fprintf(&b, "%d,0,%d,%d,%d,1\n", i, i, i%3, i/3)
	}
	return b.String()
}

func TestImportReaderSuccess(t *testing.T) {
	host := &recorderHost{}

	result, err := ImportReader(strings.NewReader(nineRows()), host, Options{})
	require.NoError(t, err)

	assert.Equal(t, 9, result.Mesh.VertexCount())
	assert.Equal(t, 3, result.Mesh.TriangleCount())
	assert.Equal(t, 0, result.VerticesMerged)

	assert.True(t, host.created)
	assert.Equal(t, "CSV_Mesh", host.meshName)
	assert.Len(t, host.vertices, 9)
	assert.Len(t, host.faces, 3)
	assert.True(t, host.inserted)
	assert.True(t, host.listed)
	assert.Equal(t, result.Mesh.Vertices, host.listing)

	require.Equal(t, []report{{LevelInfo, "Mesh imported successfully."}}, host.reports)
}

func TestImportReaderDecodeErrorAborts(t *testing.T) {
	input := testHeader +
		"0,0,1,1,1,1\n" +
		"1,0,2,2,2,0\n"
	host := &recorderHost{}

	result, err := ImportReader(strings.NewReader(input), host, Options{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, csv.ErrZeroW)

	// Nothing reached the host except the single failure report.
	assert.False(t, host.created)
	assert.False(t, host.inserted)
	assert.False(t, host.listed)
	require.Len(t, host.reports, 1)
	assert.Equal(t, LevelError, host.reports[0].level)
	assert.Equal(t, err.Error(), host.reports[0].message)
	assert.Equal(t, "row 2: zero w divisor", host.reports[0].message)
}

func TestImportReaderEmptyInput(t *testing.T) {
	host := &recorderHost{}

	_, err := ImportReader(strings.NewReader(""), host, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, csv.ErrMissingHeader)
	require.Equal(t, []report{{LevelError, "missing header row"}}, host.reports)
}

func TestImportReaderHeaderOnly(t *testing.T) {
	host := &recorderHost{}

	result, err := ImportReader(strings.NewReader(testHeader), host, Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Mesh.VertexCount())
	assert.True(t, host.created)
	assert.Empty(t, host.vertices)
	require.Equal(t, []report{{LevelInfo, "Mesh imported successfully."}}, host.reports)
}

func TestImportReaderMergesDuplicateCorners(t *testing.T) {
	input := testHeader +
		"0,0,0,0,0,1\n" +
		"1,0,1,0,0,1\n" +
		"2,0,0,1,0,1\n" +
		"3,0,0,0,0,1\n" +
		"4,0,1,0,0,1\n" +
		"5,0,0,1,1,1\n"
	host := &recorderHost{}

	result, err := ImportReader(strings.NewReader(input), host, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.VerticesMerged)
	assert.Len(t, host.vertices, 4)
	assert.Len(t, host.faces, 2)
}

func TestImportReaderCreateMeshError(t *testing.T) {
	boom := errors.New("datablock exhausted")
	host := &recorderHost{createErr: boom}

	_, err := ImportReader(strings.NewReader(nineRows()), host, Options{})
	require.ErrorIs(t, err, boom)

	assert.False(t, host.inserted)
	assert.False(t, host.listed)
	require.Equal(t, []report{{LevelError, "datablock exhausted"}}, host.reports)
}

func TestImportReaderInsertError(t *testing.T) {
	boom := errors.New("scene is read-only")
	host := &recorderHost{insertErr: boom}

	_, err := ImportReader(strings.NewReader(nineRows()), host, Options{})
	require.ErrorIs(t, err, boom)

	assert.True(t, host.created)
	assert.False(t, host.listed)
	require.Equal(t, []report{{LevelError, "scene is read-only"}}, host.reports)
}

func TestImportReaderListingError(t *testing.T) {
	boom := errors.New("text artifact unavailable")
	host := &recorderHost{listingErr: boom}

	result, err := ImportReader(strings.NewReader(nineRows()), host, Options{})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, result)
	require.Equal(t, []report{{LevelError, "text artifact unavailable"}}, host.reports)
}

func TestImportReaderCustomOptions(t *testing.T) {
	input := "x;y;z;w\n2;0;0;2\n4;2;0;2\n0;2;0;2\n"
	host := &recorderHost{}

	opts := Options{
		MeshName: "Capture",
		Profile:  csv.Profile{Delimiter: ';', XColumn: 0, YColumn: 1, ZColumn: 2, WColumn: 3},
	}
	result, err := ImportReader(strings.NewReader(input), host, opts)
	require.NoError(t, err)

	assert.Equal(t, "Capture", host.meshName)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), result.Mesh.Vertices[0])
}

func TestImportReaderInvalidProfile(t *testing.T) {
	host := &recorderHost{}

	opts := Options{Profile: csv.Profile{XColumn: 1, YColumn: 1, ZColumn: 2, WColumn: 3}}
	_, err := ImportReader(strings.NewReader(testHeader), host, opts)
	require.Error(t, err)

	assert.False(t, host.created)
	require.Len(t, host.reports, 1)
	assert.Equal(t, LevelError, host.reports[0].level)
}

func TestImportFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.csv")
	require.NoError(t, os.WriteFile(path, []byte(nineRows()), 0o644))
	host := &recorderHost{}

	result, err := Import(path, host, Options{})
	require.NoError(t, err)
	assert.Equal(t, 9, result.Mesh.VertexCount())
	require.Len(t, host.reports, 1)
	assert.Equal(t, LevelInfo, host.reports[0].level)
}

func TestImportMissingFile(t *testing.T) {
	host := &recorderHost{}

	_, err := Import(filepath.Join(t.TempDir(), "absent.csv"), host, Options{})
	require.Error(t, err)

	require.Len(t, host.reports, 1)
	assert.Equal(t, LevelError, host.reports[0].level)
	assert.Contains(t, host.reports[0].message, "failed to open file")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "ERROR", LevelError.String())
}
