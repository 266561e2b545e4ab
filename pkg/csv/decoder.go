// Package csv decodes vertex-capture CSV files into 3D points.
//
// The input is one row per emitted vertex: a header row (discarded), then
// comma-separated data rows carrying a homogeneous position. Each data row
// is perspective-divided into a Euclidean point: x/w, y/w, z/w. Decoding
// is strict; the first bad row fails the whole decode.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/csvmesh/pkg/geometry"
)

var (
	// ErrMissingHeader means the input had no rows at all, so there was
	// no header to skip
	ErrMissingHeader = errors.New("missing header row")

	// ErrFieldCount means a data row had fewer fields than the profile needs
	ErrFieldCount = errors.New("too few fields")

	// ErrZeroW means the w field parsed to zero, which would make the
	// perspective divide blow up
	ErrZeroW = errors.New("zero w divisor")
)

// RowError reports a data row that could not be decoded. Row is 1-based
// and counts data rows only; the header is not row 0.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Decoder reads a capture stream and yields one point per data row.
// It is a forward-only, single-pass reader: once Next has returned an
// error (including io.EOF) it keeps returning that error.
type Decoder struct {
	reader  *csv.Reader
	profile Profile
	row     int // data rows consumed so far
	started bool
	err     error
}

// NewDecoder creates a decoder with the default capture column layout
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderProfile(r, DefaultProfile())
}

// NewDecoderProfile creates a decoder with an explicit column layout
func NewDecoderProfile(r io.Reader, profile Profile) *Decoder {
	if profile.Delimiter == 0 {
		profile.Delimiter = ','
	}
	reader := csv.NewReader(r)
	reader.Comma = profile.Delimiter
	// Field counts vary between capture tools; the profile enforces its
	// own minimum so short rows become RowError, not csv.ErrFieldCount.
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	return &Decoder{reader: reader, profile: profile}
}

// Next returns the next perspective-divided point. It returns io.EOF when
// the input is exhausted, ErrMissingHeader when the input had no rows at
// all, and a *RowError when a data row cannot be decoded.
func (d *Decoder) Next() (geometry.Vector3, error) {
	if d.err != nil {
		return geometry.Vector3{}, d.err
	}
	if !d.started {
		// The first row is always a header and is discarded unread.
		if _, err := d.reader.Read(); err != nil {
			if err == io.EOF {
				d.err = ErrMissingHeader
			} else {
				d.err = fmt.Errorf("header: %w", err)
			}
			return geometry.Vector3{}, d.err
		}
		d.started = true
	}

	record, err := d.reader.Read()
	if err == io.EOF {
		d.err = io.EOF
		return geometry.Vector3{}, io.EOF
	}
	d.row++
	if err != nil {
		d.err = &RowError{Row: d.row, Err: err}
		return geometry.Vector3{}, d.err
	}

	point, err := d.decodeRecord(record)
	if err != nil {
		d.err = &RowError{Row: d.row, Err: err}
		return geometry.Vector3{}, d.err
	}
	return point, nil
}

// Row returns the number of data rows consumed so far
func (d *Decoder) Row() int {
	return d.row
}

func (d *Decoder) decodeRecord(record []string) (geometry.Vector3, error) {
	if len(record) < d.profile.MinFields() {
		return geometry.Vector3{}, fmt.Errorf("%w: got %d, need %d",
			ErrFieldCount, len(record), d.profile.MinFields())
	}

	x, err := parseField(record, d.profile.XColumn)
	if err != nil {
		return geometry.Vector3{}, err
	}
	y, err := parseField(record, d.profile.YColumn)
	if err != nil {
		return geometry.Vector3{}, err
	}
	z, err := parseField(record, d.profile.ZColumn)
	if err != nil {
		return geometry.Vector3{}, err
	}
	w, err := parseField(record, d.profile.WColumn)
	if err != nil {
		return geometry.Vector3{}, err
	}
	if w == 0 {
		return geometry.Vector3{}, ErrZeroW
	}

	// The perspective divide is the only transformation applied; no
	// clamping, rounding or axis fixup.
	return geometry.NewVector3(x/w, y/w, z/w), nil
}

func parseField(record []string, column int) (float64, error) {
	// Capture tools pad numeric fields with spaces after the delimiter.
	value, err := strconv.ParseFloat(strings.TrimSpace(record[column]), 64)
	if err != nil {
		return 0, fmt.Errorf("field %d: %w", column, err)
	}
	return value, nil
}

// DecodeAll collects every point from r, strictly: any row error discards
// the points decoded so far and fails the whole decode
func DecodeAll(r io.Reader) ([]geometry.Vector3, error) {
	return NewDecoder(r).All()
}

// All drains the decoder. It returns the points decoded since the last
// call, so it composes with a partially consumed Decoder.
func (d *Decoder) All() ([]geometry.Vector3, error) {
	var points []geometry.Vector3
	for {
		point, err := d.Next()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
}

// Parse reads a vertex-capture CSV file and returns the decoded points
func Parse(filename string) ([]geometry.Vector3, error) {
	return ParseProfile(filename, DefaultProfile())
}

// ParseProfile reads a capture file using an explicit column layout
func ParseProfile(filename string, profile Profile) ([]geometry.Vector3, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return NewDecoderProfile(file, profile).All()
}
