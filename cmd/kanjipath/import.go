// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kanjipath/internal/loader"
)

func newImportCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "import CSV DATABASE",
		Short: "Copy a metrics CSV into a SQLite database",
		Long: "Read the character metrics CSV and write it into DATABASE under data.metrics_table " +
			"(--metrics-table), replacing rows for characters already present.",
		Args: exactArgs(2, "CSV and DATABASE"),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := v.GetString("data.metrics_table")
			attrs, err := loader.LoadMetrics(cmd.Context(), args[0], "")
			if err != nil {
				return err
			}
			if err := loader.WriteMetricsSQLite(cmd.Context(), args[1], table, attrs); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d characters into %s (table %s)\n",
				len(attrs), args[1], table)

			return err
		},
	}
}
