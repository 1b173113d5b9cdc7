package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"Employee-Attendance-Portal/config"
	"Employee-Attendance-Portal/pkg/accessgate"
)

func ipCmd(cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ip",
		Short: "Manage the IP allow-list file",
	}

	// edit loads the file, applies fn and saves it back.
	edit := func(fn func(c *accessgate.Config) (string, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := accessgate.LoadConfig(cfg.IPConfigPath)
			if err != nil {
				return err
			}
			msg, err := fn(c)
			if err != nil {
				return err
			}
			if err := accessgate.SaveConfig(cfg.IPConfigPath, c); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show restriction state and allowed addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := accessgate.LoadConfig(cfg.IPConfigPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			state := "ENABLED"
			if !c.RestrictionEnabled() {
				state = "DISABLED"
			}
			fmt.Fprintf(out, "IP Restriction: %s\n", state)
			if c.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", c.Description)
			}
			fmt.Fprintln(out, "Allowed IP Addresses:")
			for _, ip := range c.AllowedIPs {
				fmt.Fprintf(out, "  - %s\n", ip)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <ip>",
		Short: "Allow an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(func(c *accessgate.Config) (string, error) {
				changed, err := c.AddIP(args[0])
				if err != nil {
					return "", err
				}
				if !changed {
					return fmt.Sprintf("IP address %s already in allowed list", args[0]), nil
				}
				return fmt.Sprintf("Added IP address: %s", args[0]), nil
			})(cmd, args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <ip>",
		Short: "Remove an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(func(c *accessgate.Config) (string, error) {
				if !c.RemoveIP(args[0]) {
					return fmt.Sprintf("IP address %s not in allowed list", args[0]), nil
				}
				return fmt.Sprintf("Removed IP address: %s", args[0]), nil
			})(cmd, args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Enable IP restriction in the file",
		RunE: edit(func(c *accessgate.Config) (string, error) {
			c.SetEnabled(true)
			return "IP restriction ENABLED", nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Disable IP restriction in the file",
		RunE: edit(func(c *accessgate.Config) (string, error) {
			c.SetEnabled(false)
			return "IP restriction DISABLED", nil
		}),
	})

	return cmd
}
