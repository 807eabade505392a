package main

import "github.com/spf13/cobra"

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the wreck catalog from the CLI",
	}
	cmd.AddCommand(queryListCmd())
	cmd.AddCommand(querySearchCmd())
	cmd.AddCommand(queryEntityCmd())
	cmd.AddCommand(queryCountsCmd())
	return cmd
}
