// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kanjipath/learnpath"
)

// examplePairs are the demonstration queries: one unknown target, two
// unreachable targets, one found path and one unknown source.
var examplePairs = []learnpath.Pair{
	{Source: "一", Target: "謝"},
	{Source: "人", Target: "働"},
	{Source: "口", Target: "話"},
	{Source: "森", Target: "鑑"},
	{Source: "醸", Target: "森"},
}

func newExamplesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Run the demonstration queries and summarize the characters they touch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExamples(cmd, v)
		},
	}
}

func runExamples(cmd *cobra.Command, v *viper.Viper) error {
	a, err := wire(cmd, v)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	seen := make(map[string]bool)
	var unique []string
	found := 0

	for _, o := range a.svc.FindPaths(cmd.Context(), examplePairs) {
		fmt.Fprintf(out, "%s → %s: %s\n", o.Pair.Source, o.Pair.Target, describe(o))
		if o.Err != nil {
			continue
		}
		found++
		for _, id := range o.Path.IDs {
			if !seen[id] {
				seen[id] = true
				unique = append(unique, id)
			}
		}
	}

	_, err = fmt.Fprintf(out, "\n%d of %d paths found; %d unique characters: %s\n",
		found, len(examplePairs), len(unique), strings.Join(unique, " "))

	return err
}

// describe renders one outcome on a single line.
func describe(o learnpath.Outcome) string {
	switch {
	case o.Err == nil:
		return fmt.Sprintf("%s (weight %g)", o.Path, o.Path.Weight)
	case errors.Is(o.Err, learnpath.ErrNotFound):
		return "not found"
	case errors.Is(o.Err, learnpath.ErrUnreachable):
		return "unreachable"
	default:
		return fmt.Sprintf("error: %v", o.Err)
	}
}
