package ucd

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Line grammar of UCD data files:
//
//	<hex> ; <token> # <comment>
//	<hex>..<hex> ; <token> # <comment>
//
// Whitespace around `;` and `#` is insignificant and the comment is
// optional. Everything else on a line is prose and yields nothing.
//
// https://www.unicode.org/reports/tr44/#Format_Conventions
var (
	reSingle = regexp.MustCompile(`^\s*([0-9A-Fa-f]+)\s*;\s*([\w-]+)\s*(?:#\s*(.*?))?\s*$`)
	reRange  = regexp.MustCompile(`^\s*([0-9A-Fa-f]+)\.\.([0-9A-Fa-f]+)\s*;\s*([\w-]+)\s*(?:#\s*(.*?))?\s*$`)
)

// record is one parsed data line. A single code point is a range with
// lo == hi.
type record struct {
	lo      rune
	hi      rune
	token   string
	comment string
	line    int
}

// parseLine matches one physical line against the two data-line forms.
// Lines that match neither, including hex tokens that do not fit in 32
// bits, are dropped; UCD files are full of prose and the format's own
// convention is that anything not matching the grammar is commentary.
func parseLine(line string) (record, bool) {
	if m := reRange.FindStringSubmatch(line); m != nil {
		lo, err1 := strconv.ParseUint(m[1], 16, 32)
		hi, err2 := strconv.ParseUint(m[2], 16, 32)
		if err1 != nil || err2 != nil {
			return record{}, false
		}
		return record{
			lo:      rune(lo),
			hi:      rune(hi),
			token:   m[3],
			comment: m[4],
		}, true
	}
	if m := reSingle.FindStringSubmatch(line); m != nil {
		cp, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			return record{}, false
		}
		return record{
			lo:      rune(cp),
			hi:      rune(cp),
			token:   m[2],
			comment: m[3],
		}, true
	}
	return record{}, false
}

// parser streams the data records of one UCD file and tracks the active
// sub-table announced by marker comment lines.
type parser struct {
	scanner *bufio.Scanner
	spec    SourceSpec

	rec     record
	group   string // active sub-table name, "" before the first marker
	line    int
	skipped int
	err     error
}

func newParser(r io.Reader, spec SourceSpec) *parser {
	return &parser{
		scanner: bufio.NewScanner(r),
		spec:    spec,
	}
}

// parse advances to the next data record. It returns false at end of
// input or on a read error, which is left in p.err.
func (p *parser) parse() bool {
	for p.scanner.Scan() {
		p.line++
		line := p.scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			if p.spec.Marker != nil {
				if m := p.spec.Marker.FindStringSubmatch(line); m != nil {
					p.group = m[1]
				}
			}
			continue
		}
		rec, ok := parseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				p.skipped++
			}
			continue
		}
		rec.line = p.line
		p.rec = rec
		return true
	}
	p.err = p.scanner.Err()
	return false
}
