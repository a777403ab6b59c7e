// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kanjipath/builder"
	"github.com/katalvlaran/kanjipath/dfs"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Summarize the built table: dropped relations and composition cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, v)
		},
	}
}

func runCheck(cmd *cobra.Command, v *viper.Viper) error {
	a, err := wire(cmd, v)
	if err != nil {
		return err
	}
	cycles, err := dfs.DetectCycles(cmd.Context(), a.table)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rep := a.report
	fmt.Fprintf(out, "policy: %s\ncharacters: %d\nrelations: %d\n", rep.Policy, rep.Vertices, rep.Edges)

	fmt.Fprintf(out, "dropped: %d\n", len(rep.Dropped))
	for _, reason := range []builder.DropReason{
		builder.DropUnknownComponent,
		builder.DropUnknownComposed,
		builder.DropSelfRelation,
		builder.DropDuplicate,
	} {
		if n := rep.DroppedBy(reason); n > 0 {
			fmt.Fprintf(out, "  %s: %d\n", reason, n)
		}
	}

	fmt.Fprintf(out, "cycles: %d\n", len(cycles))
	for _, c := range cycles {
		fmt.Fprintf(out, "  %s\n", strings.Join(c, " → "))
	}

	return nil
}
