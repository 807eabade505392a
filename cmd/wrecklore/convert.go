package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wrecklore/internal/config"
	"wrecklore/internal/store"
	"wrecklore/internal/transform"
)

func convertCmd() *cobra.Command {
	var outputDir string
	var toStore bool
	cmd := &cobra.Command{
		Use:   "convert <registry.csv>",
		Short: "Convert a shipwreck registry to Linked Art collections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], outputDir, toStore)
		},
	}
	cmd.Flags().StringVar(&outputDir, "output", "linked-art", "Output directory for collections and report")
	cmd.Flags().BoolVar(&toStore, "store", false, "Load converted entities into the catalog database")
	return cmd
}

func runConvert(inputPath, outputDir string, toStore bool) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfigOrDefault(config.DefaultFile)
	if err != nil {
		return err
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening registry: %w", err)
	}
	defer input.Close()

	transformer := transform.New(cfg)
	result, err := transformer.Run(input)
	if err != nil {
		return err
	}

	if err := transformer.WriteOutputs(result, inputPath, outputDir); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Conversion complete.")
	fmt.Fprintf(os.Stdout, "  Events created: %d\n", len(result.Events))
	fmt.Fprintf(os.Stdout, "  Places created: %d\n", len(result.Places))
	fmt.Fprintf(os.Stdout, "  Rows skipped:   %d\n", result.Skipped)
	fmt.Fprintf(os.Stdout, "  Report: %s\n", transform.ReportFile)

	if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stdout, "\nRow errors (%d):\n", len(result.Errors))
		for _, rowErr := range result.Errors {
			fmt.Fprintf(os.Stdout, "  - %v\n", rowErr)
		}
	}

	if toStore {
		db, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close(ctx)

		if err := store.Load(ctx, db, result.Places, result.Events); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Loaded %d entities into the catalog.\n", len(result.Places)+len(result.Events))
	}

	return nil
}
