package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unitab/unitab/codegen"
	"github.com/unitab/unitab/compiler"
)

var generateFlags = struct {
	output  *string
	pkg     *string
	verbose *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate manifest",
		Short:   "Generate Go lookup tables from the UCD files a manifest lists",
		Example: `  unitab generate ucd.toml -o tables.go`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGenerate,
	}
	generateFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default: the manifest's output entry, or stdout)")
	generateFlags.pkg = cmd.Flags().StringP("package", "p", "", "package name of the generated file (default: the manifest's package entry)")
	generateFlags.verbose = cmd.Flags().BoolP("verbose", "v", false, "log per-source statistics")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := compiler.LoadConfig(args[0])
	if err != nil {
		return err
	}
	if *generateFlags.pkg != "" {
		cfg.Package = *generateFlags.pkg
	}

	res, err := compiler.Compile(cfg, compiler.WithLogger(newLogger(*generateFlags.verbose)))
	if err != nil {
		return err
	}
	src, err := codegen.Generate(res)
	if err != nil {
		return err
	}

	out := *generateFlags.output
	if out == "" {
		out = cfg.OutputPath()
	}
	if out == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	// The source is rendered fully before the file is touched, so a
	// failing run never leaves a truncated table file behind.
	err = os.WriteFile(out, src, 0644)
	if err != nil {
		return fmt.Errorf("cannot write the generated file: %w", err)
	}
	return nil
}
