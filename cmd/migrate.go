package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/manager-dashboard/internal/worker/sqlite"
)

var migrateCmd = &cobra.Command{
	RunE:  runMigration,
	Use:   "migrate",
	Short: "apply the embedded worker migrations to a scratch in-memory database and list them",
}

func runMigration(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	db, err := sqlite.Open(ctx, cfg.Storage.SQLiteDSN)
	if err != nil {
		return err
	}
	defer sqlite.Close(db)

	statuses, err := sqlite.Versions(ctx, db)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %05d %s\n", s.State, s.Source.Version, s.Source.Path)
	}
	return nil
}
