package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wrecklore/internal/config"
)

func querySearchCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search the catalog using the full-text index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuerySearch(args[0], kind)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Restrict to place or event records")
	return cmd
}

func runQuerySearch(query, kind string) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfigOrDefault(config.DefaultFile)
	if err != nil {
		return err
	}

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	results, err := db.Search(ctx, query, kind)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found.")
		return nil
	}

	for _, result := range results {
		fmt.Fprintf(os.Stdout, "%s (%s) score=%.2f %s\n", result.Label, result.Kind, result.Score, result.URI)
	}
	return nil
}
