package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	databaseDSN   string
	migrationsDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "chamactl",
		Short:         "Administrative tool for the chama backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&databaseDSN, "dsn", "d", os.Getenv("DATABASE_URI"),
		"database connection string (default $DATABASE_URI)")
	rootCmd.PersistentFlags().StringVarP(&migrationsDir, "migrations", "m", "internal/db/migrations",
		"migrations directory")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(routingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func requireDSN() error {
	if databaseDSN == "" {
		return fmt.Errorf("database DSN is not set, use --dsn or DATABASE_URI")
	}
	return nil
}
