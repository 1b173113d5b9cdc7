package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"Employee-Attendance-Portal/config"
	"Employee-Attendance-Portal/repository"
	"Employee-Attendance-Portal/seeder"
)

func seedCmd(cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the initial HR account when the users table is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.OpenStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			created, err := seeder.SeedAdmin(repository.NewEmployeeRepository(store), seeder.AdminAccount{
				Code:     cfg.SeedAdminCode,
				Name:     cfg.SeedAdminName,
				Password: cfg.SeedAdminPassword,
			})
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created HR account %s\n", cfg.SeedAdminCode)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Employees already exist, nothing to do")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "CSV data directory")
	cmd.Flags().StringVar(&cfg.SeedAdminCode, "code", cfg.SeedAdminCode, "Employee code")
	cmd.Flags().StringVar(&cfg.SeedAdminName, "name", cfg.SeedAdminName, "Name")
	cmd.Flags().StringVar(&cfg.SeedAdminPassword, "password", cfg.SeedAdminPassword, "Password (generated when empty)")
	return cmd
}
