package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wrecklore/internal/profile"
)

const (
	columnTypesFile  = "column_types.csv"
	uniqueValuesFile = "unique_values.txt"
)

func profileCmd() *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "profile <input.csv>",
		Short: "Inspect a source registry before conversion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(args[0], outputDir)
		},
	}
	cmd.Flags().StringVar(&outputDir, "output", "profile", "Output directory for profiling artifacts")
	return cmd
}

func runProfile(inputPath, outputDir string) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer input.Close()

	report, err := profile.Run(input)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	types, err := os.Create(filepath.Join(outputDir, columnTypesFile))
	if err != nil {
		return fmt.Errorf("creating %s: %w", columnTypesFile, err)
	}
	defer types.Close()
	if err := profile.WriteColumnTypes(types, report); err != nil {
		return err
	}

	values, err := os.Create(filepath.Join(outputDir, uniqueValuesFile))
	if err != nil {
		return fmt.Errorf("creating %s: %w", uniqueValuesFile, err)
	}
	defer values.Close()
	if err := profile.WriteUniqueValues(values, report); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Shape: %s\n", report.Shape())
	fmt.Fprintf(os.Stdout, "Wrote %s and %s to %s\n", columnTypesFile, uniqueValuesFile, outputDir)
	return nil
}
