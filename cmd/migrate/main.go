package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"

	"storefront/config"
	"storefront/config/postgre"
)

var service string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the embedded schema of a service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&service, "service", string(config.ServiceOrder), "service whose database to migrate (order|user)")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withMigrator(func(cmd *cobra.Command, m *migrate.Migrate) error {
				if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
					return err
				}
				return printVersion(cmd, m)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: withMigrator(func(cmd *cobra.Command, m *migrate.Migrate) error {
				if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
					return err
				}
				return printVersion(cmd, m)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE:  withMigrator(printVersion),
		},
	)
	return root
}

func withMigrator(fn func(cmd *cobra.Command, m *migrate.Migrate) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := parseService(service)
		if err != nil {
			return err
		}
		cfg, err := config.Load(svc)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		m, err := postgre.NewMigrator(svc, cfg.Postgres)
		if err != nil {
			return err
		}
		defer m.Close()
		return fn(cmd, m)
	}
}

func printVersion(cmd *cobra.Command, m *migrate.Migrate) error {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		cmd.Println("no migrations applied")
		return nil
	}
	if err != nil {
		return err
	}
	cmd.Printf("version %d (dirty=%t)\n", v, dirty)
	return nil
}

func parseService(s string) (config.Service, error) {
	switch config.Service(s) {
	case config.ServiceOrder, config.ServiceUser:
		return config.Service(s), nil
	default:
		return "", fmt.Errorf("unknown service %q: want order or user", s)
	}
}
