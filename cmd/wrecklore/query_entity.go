package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wrecklore/internal/config"
)

func queryEntityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity <uri>",
		Short: "Display an entity's full Linked Art document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryEntity(args[0])
		},
	}
	return cmd
}

func runQueryEntity(uri string) error {
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

	entity, err := db.GetEntity(ctx, uri)
	if err != nil {
		return err
	}
	if entity == nil {
		fmt.Fprintf(os.Stdout, "No entity found for %q.\n", uri)
		return nil
	}

	var doc any
	if err := json.Unmarshal([]byte(entity.Document), &doc); err != nil {
		return fmt.Errorf("decoding stored document: %w", err)
	}
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(pretty))
	return nil
}
