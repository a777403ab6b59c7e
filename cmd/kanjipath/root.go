// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kanjipath/internal/config"
)

// CodeCLISetupFailure marks errors raised while preparing flags and config.
const CodeCLISetupFailure = "cli.setup.failure"

// globalFlags maps persistent flag names to config keys.
var globalFlags = map[string]string{
	"metrics":       "data.metrics",
	"metrics-table": "data.metrics_table",
	"decomposition": "data.decomposition",
	"policy":        "weight.policy",
	"seeding":       "engine.seeding",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

// NewRootCmd creates the root kanjipath command with all subcommands
// registered. Each root owns its viper instance so commands built in tests
// never share state.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "kanjipath",
		Short:         "kanjipath finds optimal kanji learning paths",
		Long:          "kanjipath builds the composed-by graph of kanji and answers cheapest learning-path queries between characters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initViper(cmd, v)
		},
	}

	// Global flags; initViper binds them to config keys.
	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "path to config file")
	pf.String("metrics", "", "character metrics (.csv or SQLite .db/.sqlite)")
	pf.String("metrics-table", "", "SQLite table holding the metrics")
	pf.String("decomposition", "", "decomposition list (.json or .yaml)")
	pf.String("policy", "", "edge weight policy (quartic, difficulty)")
	pf.String("seeding", "", "priority queue seeding (lazy, eager)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json)")

	root.AddCommand(
		newPathCmd(v),
		newExamplesCmd(v),
		newInspectCmd(v),
		newOrderCmd(v),
		newCheckCmd(v),
		newServeCmd(v),
		newImportCmd(v),
		newVersionCmd(),
	)

	return root
}

// initViper sets up v with defaults, env bindings, flag bindings, and an
// optional config file so the standard precedence
// (flag > env > file > defaults) is handled uniformly.
func initViper(cmd *cobra.Command, v *viper.Viper) error {
	config.SetDefaults(v)
	config.SetupEnv(v)

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return oops.Code(config.CodeLoadReadFailure).Errorf("reading config file: %w", err)
		}
	} else {
		// Auto-discover kanjipath.yaml. SetConfigType is omitted so viper
		// never mistakes the ./kanjipath binary for a config file.
		v.SetConfigName("kanjipath")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/kanjipath")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return oops.Code(config.CodeLoadReadFailure).Errorf("reading config: %w", err)
			}
		}
	}

	for flag, key := range globalFlags {
		f := cmd.Root().PersistentFlags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return oops.Code(CodeCLISetupFailure).Errorf("binding %s flag: %w", flag, err)
		}
	}

	return nil
}

// exactArgs is cobra.ExactArgs with a usage hint naming the arguments.
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%s: expected %s, got %d argument(s)", cmd.Name(), usage, len(args))
		}

		return nil
	}
}
