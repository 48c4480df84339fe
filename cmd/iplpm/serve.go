package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/gaissmai/iplpm/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lookups, metrics and health over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		cmp, _, _, err := newComparator(reg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(opts.Server.Address, cmp, reg).Run(ctx)
	},
}

func initServeFlags() {
	serveCmd.Flags().StringVar(&opts.Server.Address, "server.address", ":8080", "HTTP listen address")
}
