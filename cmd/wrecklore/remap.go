package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wrecklore/internal/config"
	"wrecklore/internal/remap"
)

func remapCmd() *cobra.Command {
	var datasetName string
	var subset bool
	cmd := &cobra.Command{
		Use:   "remap <input.csv> <output.csv>",
		Short: "Rename registry headers to the canonical column vocabulary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemap(args[0], args[1], datasetName, subset)
		},
	}
	cmd.Flags().StringVar(&datasetName, "dataset", "", "Dataset name from the mappings file")
	cmd.Flags().BoolVar(&subset, "subset", false, "Extract the configured column subset instead of renaming")
	cmd.MarkFlagRequired("dataset")
	return cmd
}

func runRemap(inputPath, outputPath, datasetName string, subset bool) error {
	mappings, err := config.LoadMappings(config.DefaultMappingsFile)
	if err != nil {
		return err
	}

	dataset, ok := mappings.DatasetByName(datasetName)
	if !ok {
		return fmt.Errorf("dataset %q not found in %s", datasetName, config.DefaultMappingsFile)
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer input.Close()

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer output.Close()

	var result *remap.Result
	if subset {
		result, err = remap.Subset(input, output, dataset)
	} else {
		result, err = remap.Rename(input, output, dataset)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Wrote %d rows to %s\n", result.Rows, outputPath)
	if result.Dropped > 0 {
		fmt.Fprintf(os.Stdout, "Dropped %d rows missing required columns\n", result.Dropped)
	}
	return nil
}
