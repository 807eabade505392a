package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wrecklore/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new wrecklore project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	return cmd
}

func runInit(projectName string) error {
	if _, err := os.Stat(config.DefaultFile); err == nil {
		return fmt.Errorf("%s already exists", config.DefaultFile)
	}
	if _, err := os.Stat(config.DefaultMappingsFile); err == nil {
		return fmt.Errorf("%s already exists", config.DefaultMappingsFile)
	}

	configContents := fmt.Sprintf(`project: %s
version: 1

base_uri: https://example.org/%s
context: https://linked.art/ns/v1/linked-art.json
sample_size: 50

region:
  name: New Jersey
  slug: new-jersey

database:
  dsn: sqlite://catalog.db
`, projectName, projectName)

	mappingContents := `version: 1

datasets:
  - name: registry
    columns:
      "Ship's Name": shipsName
      "AKA": aka
      "Location Lost": locationLost
      "Latitude": latitude
      "Longitude": longitude
      "Year": year
      "Month": month
      "Day": day
      "Date Lost": dateLost
      "Cause of Loss": causeOfLoss
      "Master": master
    subset:
      - shipsName
      - locationLost
      - year
    required:
      - shipsName
`

	if err := os.WriteFile(config.DefaultFile, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", config.DefaultFile, err)
	}
	if err := os.WriteFile(config.DefaultMappingsFile, []byte(mappingContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", config.DefaultMappingsFile, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s and %s\n", config.DefaultFile, config.DefaultMappingsFile)
	return nil
}
