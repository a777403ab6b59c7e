// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kanjipath/dfs"
)

func newOrderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [CHAR...]",
		Short: "Print a learning order in which every component precedes what it builds",
		Long: "Topologically sort the composed-by graph. With CHAR arguments only the " +
			"characters they unlock are ordered; without, the whole table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, v, args)
		},
	}
	cmd.Flags().Int("limit", 0, "print at most this many characters (0 = all)")

	return cmd
}

func runOrder(cmd *cobra.Command, v *viper.Viper, roots []string) error {
	a, err := wire(cmd, v)
	if err != nil {
		return err
	}

	order, err := dfs.TopologicalSort(a.table,
		dfs.WithCancelContext(cmd.Context()),
		dfs.WithRoots(roots...),
	)
	if err != nil {
		return err
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && limit < len(order) {
		order = order[:limit]
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(order, " "))

	return err
}
