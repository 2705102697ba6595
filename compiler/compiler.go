// Package compiler turns the UCD data files a manifest lists into an
// immutable generation result ready for emission.
//
// The run is single-pass and sequential: every source is parsed,
// aggregated, and normalized on its own, and the families of all sources
// are sorted into one deterministic result at the end. An unreadable
// source aborts the run; nothing is emitted for partial input.
package compiler

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	verr "github.com/unitab/unitab/error"
	"github.com/unitab/unitab/table"
	"github.com/unitab/unitab/ucd"
)

type options struct {
	logger *zap.Logger
}

type Option func(*options)

// WithLogger routes compilation diagnostics, notably overlapping-range
// warnings, to l. The default discards them.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Compile reads every source the manifest lists and builds the
// generation result. Families are sorted lexicographically by name;
// given identical input files the result is identical across runs.
func Compile(cfg *Config, opts ...Option) (*table.GenerationResult, error) {
	o := options{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	res := &table.GenerationResult{
		Package: cfg.Package,
	}
	definedBy := map[string]string{}
	for i := range cfg.Sources {
		sc := &cfg.Sources[i]
		spec, err := sc.spec()
		if err != nil {
			return nil, err
		}
		path := cfg.resolve(sc.Path)
		agg, err := readSource(path, spec)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("parsed source",
			zap.String("path", sc.Path),
			zap.Int("groups", len(agg.Names)),
			zap.Int("skippedLines", agg.Skipped))

		for _, fam := range buildFamilies(spec, agg, path, o.logger) {
			if prev, ok := definedBy[fam.Name]; ok {
				return nil, fmt.Errorf("family %v of %v is already defined by %v", fam.Name, sc.Path, prev)
			}
			definedBy[fam.Name] = sc.Path
			res.Families = append(res.Families, fam)
		}
		res.Sources = append(res.Sources, sc.Path)
	}
	sort.Slice(res.Families, func(i, j int) bool {
		return res.Families[i].Name < res.Families[j].Name
	})
	return res, nil
}

func readSource(path string, spec ucd.SourceSpec) (*ucd.Aggregation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the data file %s: %w", path, err)
	}
	defer f.Close()

	agg, err := ucd.Aggregate(f, spec)
	if err != nil {
		return nil, &verr.SourceError{Cause: err, Path: path}
	}
	return agg, nil
}

// buildFamilies converts one file's aggregation into families. A boolean
// source defines a single family whose properties are the aggregation's
// groups; a valued source defines one family per group, since every
// group carries its own value enumeration.
func buildFamilies(spec ucd.SourceSpec, agg *ucd.Aggregation, path string, logger *zap.Logger) []table.Family {
	names := make([]string, len(agg.Names))
	copy(names, agg.Names)
	sort.Strings(names)

	if spec.Kind == ucd.KindBoolean {
		fam := table.Family{
			Name:   spec.Family,
			Kind:   table.Boolean,
			Source: path,
		}
		for _, name := range names {
			var entries []table.Entry[struct{}]
			for _, rec := range agg.Groups[name] {
				entries = append(entries, table.Entry[struct{}]{
					Range:   table.Interval{Lo: rec.Lo, Hi: rec.Hi},
					Comment: rec.Comment,
					Line:    rec.Line,
				})
			}
			table.Normalize(entries)
			warnOverlaps(logger, path, name, table.Overlaps(entries))
			fam.Properties = append(fam.Properties, table.Property{
				Name:    name,
				Entries: entries,
			})
		}
		return []table.Family{fam}
	}

	var fams []table.Family
	for _, name := range names {
		fam := table.Family{
			Name:   name,
			Kind:   table.Valued,
			Source: path,
		}
		values := map[string]struct{}{}
		var entries []table.Entry[string]
		for _, rec := range agg.Groups[name] {
			values[rec.Token] = struct{}{}
			entries = append(entries, table.Entry[string]{
				Range:   table.Interval{Lo: rec.Lo, Hi: rec.Hi},
				Value:   rec.Token,
				Comment: rec.Comment,
				Line:    rec.Line,
			})
		}
		for v := range values {
			fam.Values = append(fam.Values, v)
		}
		sort.Strings(fam.Values)
		table.Normalize(entries)
		warnOverlaps(logger, path, name, table.Overlaps(entries))
		fam.Entries = entries
		fams = append(fams, fam)
	}
	return fams
}

// warnOverlaps surfaces disjointness violations. The compiler has no
// authority to decide which of two conflicting authoritative entries is
// correct, so both are kept and the first-sorted one wins at lookup.
func warnOverlaps(logger *zap.Logger, path, property string, ovs []table.Overlap) {
	for _, ov := range ovs {
		logger.Warn("overlapping ranges, keeping both",
			zap.String("path", path),
			zap.String("property", property),
			zap.String("ranges", fmt.Sprintf("%v and %v", ov.Prev, ov.Next)),
			zap.Int("line", ov.NextLine))
	}
}
