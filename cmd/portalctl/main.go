// Package main provides portalctl, the operator CLI for the attendance portal.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"Employee-Attendance-Portal/config"
	util "Employee-Attendance-Portal/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd(config.FromEnv()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portalctl",
		Short: "Manage the attendance portal",
		Long: `Operator tooling for the attendance portal.

Examples:
  portalctl ip list                       # Show the allow-list
  portalctl ip add 10.0.0.12              # Allow an address
  portalctl ip disable                    # Turn restriction off in the file
  portalctl ip-report serve --port 5000   # Run the IP-report listener
  portalctl keygen                        # Print a PASETO_SECRET
  portalctl force-override                # Arm a one-shot override for the next start
`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&cfg.IPConfigPath, "ip-config", cfg.IPConfigPath, "Path of the IP allow-list file")

	cmd.AddCommand(ipCmd(cfg))
	cmd.AddCommand(ipReportCmd(cfg))
	cmd.AddCommand(keygenCmd())
	cmd.AddCommand(seedCmd(cfg))
	cmd.AddCommand(forceOverrideCmd(cfg))
	return cmd
}

func keygenCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a base64 key for PASETO_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := util.GenerateBase64Key(size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 32, "Key size in bytes")
	return cmd
}

func forceOverrideCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "force-override",
		Short: "Arm a one-shot admin override consumed at the next server start",
		RunE: func(cmd *cobra.Command, args []string) error {
			marker := cfg.ForceOverridePath()
			if err := os.MkdirAll(filepath.Dir(marker), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(marker, nil, 0o644); err != nil {
				return fmt.Errorf("failed to create %s: %w", marker, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Force override armed (%s). IP restriction will be bypassed for the next session.\n", marker)
			return nil
		},
	}
}
