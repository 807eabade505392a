package main

import (
	"context"
	"fmt"
	"strings"

	"wrecklore/internal/config"
	"wrecklore/internal/store"
	"wrecklore/internal/store/postgres"
	"wrecklore/internal/store/sqlite"
)

func openStore(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	dsn := cfg.Database.DSN
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("no catalog database configured; set database.dsn in %s", config.DefaultFile)
	}

	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.New(ctx, dsn)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.New(ctx, dsn)
	}
	return nil, fmt.Errorf("unsupported database DSN scheme in %q", dsn)
}
