package ucd

import "regexp"

type SourceKind int

const (
	// KindBoolean sources define membership sets: the token of each line
	// names the property the code points belong to.
	KindBoolean SourceKind = iota
	// KindValued sources classify code points: all lines feed one table
	// and the token of each line is the value tag of its range.
	KindValued
)

func (k SourceKind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindValued:
		return "valued"
	}
	return "unknown"
}

// SourceSpec describes the parsing dialect of one UCD data file.
//
// Some files interleave several sub-tables, each announced by a header
// comment (e.g. `# General_Category=Spacing_Mark` in
// DerivedGeneralCategory.txt). For those, Marker is a pattern with one
// capture group extracting the sub-table name; lines matching it update
// the active grouping and yield no record.
type SourceSpec struct {
	Path string
	Kind SourceKind

	// Family names the implicit grouping for files without sub-table
	// markers, and the emitted enumeration of grouped files.
	Family string

	Marker *regexp.Regexp
}
