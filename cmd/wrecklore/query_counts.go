package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"wrecklore/internal/config"
)

func queryCountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Count catalogued entities per kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCounts()
		},
	}
	return cmd
}

func runQueryCounts() error {
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

	counts, err := db.Counts(ctx)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		fmt.Fprintln(os.Stdout, "Catalog is empty.")
		return nil
	}

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(os.Stdout, "%s: %d\n", kind, counts[kind])
	}
	return nil
}
