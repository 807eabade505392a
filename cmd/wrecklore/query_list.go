package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wrecklore/internal/config"
)

func queryListCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogued entities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryList(kind)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Restrict to place or event records")
	return cmd
}

func runQueryList(kind string) error {
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

	entities, err := db.ListEntities(ctx, kind)
	if err != nil {
		return err
	}
	if len(entities) == 0 {
		fmt.Fprintln(os.Stdout, "No entities found.")
		return nil
	}

	for _, entity := range entities {
		if entity.Year > 0 {
			fmt.Fprintf(os.Stdout, "%s (%s, %d) %s\n", entity.Label, entity.Kind, entity.Year, entity.URI)
		} else {
			fmt.Fprintf(os.Stdout, "%s (%s) %s\n", entity.Label, entity.Kind, entity.URI)
		}
	}
	return nil
}
