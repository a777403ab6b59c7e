// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/kanjipath/builder"
	"github.com/katalvlaran/kanjipath/core"
	"github.com/katalvlaran/kanjipath/internal/config"
	"github.com/katalvlaran/kanjipath/internal/loader"
	"github.com/katalvlaran/kanjipath/internal/logging"
	"github.com/katalvlaran/kanjipath/learnpath"
)

const tracerName = "github.com/katalvlaran/kanjipath/cmd/kanjipath"

// app is everything a command needs after startup.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	table    *core.Table
	report   *builder.Report
	svc      *learnpath.Service
	registry *prometheus.Registry
}

// wire loads configuration and data, builds the table and the service.
//
// Steps:
//  1. Decode and validate the configuration resolved by v.
//  2. Build the logger on the command's stderr.
//  3. Load metrics and decomposition; malformed input is fatal.
//  4. Build the frozen table under the configured weight policy.
//  5. Create the service with metrics, tracing and engine options.
func wire(cmd *cobra.Command, v *viper.Viper) (*app, error) {
	// 1. Configuration.
	cfg, err := config.FromViper(v)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Data.Metrics == "" || cfg.Data.Decomposition == "" {
		return nil, oops.Code(config.CodeValidateInvalidValue).
			Errorf("data.metrics and data.decomposition are required (use --metrics and --decomposition or a config file)")
	}

	// 2. Logger.
	logger := logging.New(cmd.ErrOrStderr(), cfg.Log)

	// 3. Input files.
	in, err := loader.Load(cmd.Context(), loader.Sources{
		Metrics:       cfg.Data.Metrics,
		MetricsTable:  cfg.Data.MetricsTable,
		Decomposition: cfg.Data.Decomposition,
	})
	if err != nil {
		return nil, fmt.Errorf("loading data: %w", err)
	}

	// 4. Table.
	policy, err := cfg.Policy()
	if err != nil {
		return nil, fmt.Errorf("selecting weight policy: %w", err)
	}
	tb, rep, err := builder.Build(in, builder.WithPolicy(policy), builder.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("building table: %w", err)
	}
	logger.Info("table built",
		"policy", rep.Policy,
		"characters", rep.Vertices,
		"relations", rep.Edges,
		"dropped", len(rep.Dropped),
	)

	// 5. Service.
	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		return nil, fmt.Errorf("engine options: %w", err)
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	svc, err := learnpath.NewService(tb,
		learnpath.WithLogger(logger),
		learnpath.WithMetrics(learnpath.NewMetrics(reg)),
		learnpath.WithTracer(otel.Tracer(tracerName)),
		learnpath.WithEngineOptions(engineOpts...),
	)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		table:    tb,
		report:   rep,
		svc:      svc,
		registry: reg,
	}, nil
}
