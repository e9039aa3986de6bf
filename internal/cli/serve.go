package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wjlenhart/minLPsolver/internal/config"
	"github.com/wjlenhart/minLPsolver/internal/server"
	"github.com/wjlenhart/minLPsolver/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

The server exposes the pipeline under /api/v1 (encode, solve, check, run)
plus a /healthz endpoint. The cache backend and default listen address come
from the config file; --addr overrides the address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			cch, err := newCache(cmd.Context(), cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}
			runner := pipeline.NewRunner(cch, newKeyer(cfg), c.Logger)
			defer runner.Close()

			srv := server.New(runner, c.Logger)
			printInfo("Listening on %s", cfg.Server.Addr)
			return srv.ListenAndServe(cmd.Context(), cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
