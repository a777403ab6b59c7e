// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kanjipath/internal/server"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve learning-path queries over HTTP",
		Long:  "Load the data, build the table once and answer /v1/path and /v1/kanji/{id} requests until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, v)
		},
	}

	cmd.Flags().String("listen", "", "override listen address (host:port)")
	cmd.Flags().StringSlice("cors-origin", nil, "allowed CORS origins (default any)")
	_ = v.BindPFlag("server.listen", cmd.Flags().Lookup("listen"))

	return cmd
}

func runServe(cmd *cobra.Command, v *viper.Viper) error {
	a, err := wire(cmd, v)
	if err != nil {
		return err
	}
	origins, _ := cmd.Flags().GetStringSlice("cors-origin")

	srv, err := server.New(server.Config{
		ListenAddr:   a.cfg.Server.Listen,
		CORSOrigins:  origins,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}, a.svc, server.WithLogger(a.logger), server.WithGatherer(a.registry))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
