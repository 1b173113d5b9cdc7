package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"Employee-Attendance-Portal/config"
	"Employee-Attendance-Portal/pkg/accessgate"
	"Employee-Attendance-Portal/pkg/ipreport"
	"Employee-Attendance-Portal/pkg/metrics"
)

func ipReportCmd(cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ip-report",
		Short: "Run or call the private IP report listener",
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Listen for POST /api/ip-report and record reported addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := ipreport.NewServer(ipreport.NewStore(cfg.IPReportedPath), metrics.New())
			go func() {
				<-ctx.Done()
				app.Shutdown()
			}()
			log.Printf("IP report server listening on port %s (store: %s)", cfg.IPServerPort, cfg.IPReportedPath)
			return app.Listen(":" + cfg.IPServerPort)
		},
	}
	serve.Flags().StringVar(&cfg.IPServerPort, "port", cfg.IPServerPort, "Listen port")
	serve.Flags().StringVar(&cfg.IPReportedPath, "file", cfg.IPReportedPath, "Reported IPs file")

	var ip string
	send := &cobra.Command{
		Use:   "send",
		Short: "Report this machine's private address to an endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.IPReportingEndpoint == "" {
				return fmt.Errorf("no endpoint: set --endpoint or IP_REPORTING_ENDPOINT")
			}
			if ip == "" {
				ip = accessgate.OutboundIP()
			}
			if err := ipreport.NewSender(cfg.IPReportingEndpoint).Send(cmd.Context(), ip); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reported %s to %s\n", ip, cfg.IPReportingEndpoint)
			return nil
		},
	}
	send.Flags().StringVar(&cfg.IPReportingEndpoint, "endpoint", cfg.IPReportingEndpoint, "Report endpoint URL")
	send.Flags().StringVar(&ip, "ip", "", "Address to report (default: outbound private address)")

	cmd.AddCommand(serve, send)
	return cmd
}
