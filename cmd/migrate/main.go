package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tasktrack/config"
	"tasktrack/internal/errors"
	"tasktrack/internal/infra/persistence/migrations"
)

func main() {
	var databaseURL string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the tasktrack schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL != "" {
				return nil
			}

			cfg, err := config.New()
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			databaseURL = cfg.Postgres.URL()

			return nil
		},
	}
	root.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"),
		"postgres:// URL; defaults to the postgres section of the config (env DATABASE_URL)")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migrations.Up(databaseURL); err != nil {
				return err
			}
			fmt.Println("schema is up to date")

			return nil
		},
	}

	downCmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the given number of migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return errors.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}

			if err := migrations.Down(databaseURL, steps); err != nil {
				return err
			}
			fmt.Printf("rolled back %d migration(s)\n", steps)

			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, dirty, err := migrations.Version(databaseURL)
			if err != nil {
				return err
			}
			fmt.Printf("version=%d dirty=%t\n", version, dirty)

			return nil
		},
	}

	root.AddCommand(upCmd, downCmd, versionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %+v\n", err)
		os.Exit(1)
	}
}
