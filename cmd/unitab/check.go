package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unitab/unitab/compiler"
	verr "github.com/unitab/unitab/error"
	"github.com/unitab/unitab/table"
)

var checkFlags = struct {
	verbose *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "check manifest",
		Short: "Validate the UCD files a manifest lists",
		Long: `check parses and normalizes every source the manifest lists, prints
per-property statistics, and fails when a table violates the sortedness
or disjointness invariants the binary search depends on.`,
		Example: `  unitab check ucd.toml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCheck,
	}
	checkFlags.verbose = cmd.Flags().BoolP("verbose", "v", false, "log per-source statistics")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := compiler.LoadConfig(args[0])
	if err != nil {
		return err
	}
	res, err := compiler.Compile(cfg, compiler.WithLogger(newLogger(*checkFlags.verbose)))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tPROPERTY\tENTRIES\tCODE POINTS\tSPAN")
	violations := 0
	for i := range res.Families {
		fam := &res.Families[i]
		if fam.Kind == table.Boolean {
			for _, p := range fam.Properties {
				fmt.Fprintf(w, "%v\t%v\t%v\n", fam.Name, p.Name, describe(p.Entries))
				violations += report(fam.Source, p.Name, p.Entries)
			}
		} else {
			fmt.Fprintf(w, "%v\t(%v values)\t%v\n", fam.Name, len(fam.Values), describe(fam.Entries))
			violations += report(fam.Source, fam.Name, fam.Entries)
		}
	}
	w.Flush()

	if violations > 0 {
		return fmt.Errorf("%v range(s) violate the table invariants", violations)
	}
	return nil
}

func describe[V any](entries []table.Entry[V]) string {
	if len(entries) == 0 {
		return "0\t0\t-"
	}
	cps := 0
	for _, e := range entries {
		cps += e.Range.Count()
	}
	span := table.Interval{
		Lo: entries[0].Range.Lo,
		Hi: entries[len(entries)-1].Range.Hi,
	}
	return fmt.Sprintf("%v\t%v\t%v", len(entries), cps, span)
}

func report[V any](path, property string, entries []table.Entry[V]) int {
	ovs := table.Overlaps(entries)
	for _, ov := range ovs {
		e := &verr.SourceError{
			Cause: fmt.Errorf("range %v of %v overlaps %v", ov.Next, property, ov.Prev),
			Path:  path,
			Row:   ov.NextLine,
		}
		fmt.Fprintln(os.Stderr, e)
	}
	return len(ovs)
}
