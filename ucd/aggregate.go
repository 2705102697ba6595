package ucd

import "io"

// Record is one data line attributed to a grouping. Token is the raw
// second field: the property name of a boolean source, or the value tag
// of a valued one.
type Record struct {
	Lo      rune
	Hi      rune
	Token   string
	Comment string

	// Line is the 1-based physical line the record was parsed from, for
	// diagnostics.
	Line int
}

// Aggregation is the per-file result of one parsing pass: records grouped
// by property (or family) name. Names lists the groups in first-seen
// order; emission re-sorts, the order is kept only so callers can report
// on the file in source order.
type Aggregation struct {
	Names  []string
	Groups map[string][]Record

	// Skipped counts non-empty lines that matched neither the line
	// grammar nor a marker. Prose-heavy files legitimately skip a lot;
	// the count exists for diagnostics only.
	Skipped int
}

func (a *Aggregation) add(name string, rec record) {
	if _, ok := a.Groups[name]; !ok {
		a.Names = append(a.Names, name)
	}
	a.Groups[name] = append(a.Groups[name], Record{
		Lo:      rec.lo,
		Hi:      rec.hi,
		Token:   rec.token,
		Comment: rec.comment,
		Line:    rec.line,
	})
}

// Aggregate drives the line parser over one UCD source and groups its
// records according to the source's dialect:
//
//   - boolean sources group by the line's token;
//   - valued sources group everything under the configured family name;
//   - sources with a sub-table marker group by the active marker name
//     instead, falling back to the rules above until the first marker
//     has been seen.
//
// Groups are created lazily; a token never seen before simply starts a
// new list. The only error is a failure reading the input.
func Aggregate(r io.Reader, spec SourceSpec) (*Aggregation, error) {
	agg := &Aggregation{
		Groups: map[string][]Record{},
	}
	p := newParser(r, spec)
	for p.parse() {
		name := p.group
		if name == "" {
			if spec.Kind == KindValued {
				name = spec.Family
			} else {
				name = p.rec.token
			}
		}
		agg.add(name, p.rec)
	}
	if p.err != nil {
		return nil, p.err
	}
	agg.Skipped = p.skipped
	return agg, nil
}
