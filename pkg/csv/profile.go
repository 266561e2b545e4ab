package csv

import "fmt"

// Profile describes where the homogeneous position lives in a capture row.
// The defaults match the column layout written by GPU frame-capture tools:
// SV_Position.x/y/z/w at fields 2..5, with two leading index columns that
// are ignored. Fields beyond the w column are ignored as well.
type Profile struct {
	Delimiter rune // field separator, ',' when unset
	XColumn   int
	YColumn   int
	ZColumn   int
	WColumn   int
}

// DefaultProfile returns the standard capture column layout
func DefaultProfile() Profile {
	return Profile{
		Delimiter: ',',
		XColumn:   2,
		YColumn:   3,
		ZColumn:   4,
		WColumn:   5,
	}
}

// MinFields returns the field count a row must have to cover all
// position columns (6 for the default profile)
func (p Profile) MinFields() int {
	maxColumn := p.XColumn
	for _, c := range []int{p.YColumn, p.ZColumn, p.WColumn} {
		if c > maxColumn {
			maxColumn = c
		}
	}
	return maxColumn + 1
}

// Validate reports whether the profile describes a usable column layout
func (p Profile) Validate() error {
	columns := []int{p.XColumn, p.YColumn, p.ZColumn, p.WColumn}
	seen := make(map[int]bool, len(columns))
	for _, c := range columns {
		if c < 0 {
			return fmt.Errorf("negative column index %d", c)
		}
		if seen[c] {
			return fmt.Errorf("column index %d used twice", c)
		}
		seen[c] = true
	}
	if p.Delimiter == '\r' || p.Delimiter == '\n' {
		return fmt.Errorf("delimiter cannot be a line ending")
	}
	return nil
}
