package table

import (
	"fmt"
	"sort"
)

const (
	// https://www.unicode.org/versions/Unicode13.0.0/ch03.pdf
	// 3.4  Characters and Encoding
	// > D9 Unicode codespace: A range of integers from 0 to 10FFFF16.
	CodePointMin rune = 0x0
	CodePointMax rune = 0x10FFFF
)

// Interval is an inclusive range of code points. A single code point is
// represented as Lo == Hi.
type Interval struct {
	Lo rune
	Hi rune
}

func (iv Interval) Contains(r rune) bool {
	return iv.Lo <= r && r <= iv.Hi
}

// Count returns the number of code points the interval spans.
func (iv Interval) Count() int {
	return int(iv.Hi-iv.Lo) + 1
}

func (iv Interval) String() string {
	if iv.Lo == iv.Hi {
		return fmt.Sprintf("%04X", iv.Lo)
	}
	return fmt.Sprintf("%04X..%04X", iv.Lo, iv.Hi)
}

// Entry is one row of a property table. The value is the classification
// outcome shared by every code point in the range; boolean membership
// tables instantiate V as struct{}. The comment is the trailing comment
// of the source line and has no effect on lookup.
type Entry[V any] struct {
	Range   Interval
	Value   V
	Comment string

	// Line is the source line the entry came from, when known. It only
	// feeds diagnostics.
	Line int
}

// Normalize sorts entries ascending by range start and returns the slice.
// The sort is stable: the UCD never legitimately produces two entries with
// the same start, so preserving input order on ties keeps malformed input
// observable instead of shuffling it.
func Normalize[V any](entries []Entry[V]) []Entry[V] {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Range.Lo < entries[j].Range.Lo
	})
	return entries
}

// Overlap describes two adjacent entries of a sorted table that violate
// the disjointness invariant.
type Overlap struct {
	Index              int // position of the second entry
	Prev, Next         Interval
	PrevLine, NextLine int
}

func (o Overlap) String() string {
	return fmt.Sprintf("entry #%v %v overlaps %v", o.Index, o.Next, o.Prev)
}

// Overlaps scans a sorted table for entries that overlap their predecessor.
// Duplicate starts are reported too since equal starts always overlap.
// Well-formed UCD input yields no overlaps; any finding is a data-quality
// defect in the source file.
func Overlaps[V any](entries []Entry[V]) []Overlap {
	var os []Overlap
	for i := 1; i < len(entries); i++ {
		if entries[i].Range.Lo <= entries[i-1].Range.Hi {
			os = append(os, Overlap{
				Index:    i,
				Prev:     entries[i-1].Range,
				Next:     entries[i].Range,
				PrevLine: entries[i-1].Line,
				NextLine: entries[i].Line,
			})
		}
	}
	return os
}

// Sorted reports whether the table is strictly ordered by range start.
func Sorted[V any](entries []Entry[V]) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i].Range.Lo <= entries[i-1].Range.Lo {
			return false
		}
	}
	return true
}
