// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kanjipath/bfs"
)

func newInspectCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect CHAR",
		Short: "Show a character's attributes, outgoing edges and reach",
		Args:  exactArgs(1, "CHAR"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, v, args[0])
		},
	}
	cmd.Flags().Int("depth", 0, "limit reach to this many hops (0 = unlimited)")

	return cmd
}

func runInspect(cmd *cobra.Command, v *viper.Viper, id string) error {
	a, err := wire(cmd, v)
	if err != nil {
		return err
	}

	vx, err := a.table.Vertex(id)
	if err != nil {
		return fmt.Errorf("inspect %q: %w", id, err)
	}
	depth, _ := cmd.Flags().GetInt("depth")
	res, err := bfs.BFS(a.table, id, bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(depth))
	if err != nil {
		return fmt.Errorf("inspect %q: %w", id, err)
	}

	out := cmd.OutOrStdout()
	at := vx.Attrs
	fmt.Fprintf(out, "%s\n", vx.ID)
	fmt.Fprintf(out, "  strokes: %d  grade: %d  jlpt: %d  radical freq: %d  usage freq: %d\n",
		at.Strokes, at.Grade, at.JLPT, at.RadicalFreq, at.UsageFreq)

	fmt.Fprintf(out, "  edges (%d):\n", len(vx.Edges))
	for _, e := range vx.Edges {
		fmt.Fprintf(out, "    → %s  %g\n", e.To, e.Weight)
	}

	fmt.Fprintf(out, "  reach: %d characters, max depth %d\n", res.Reached(), res.MaxDepth())
	for d, layer := range res.Layers() {
		if d == 0 {
			continue
		}
		fmt.Fprintf(out, "    %d: %s\n", d, strings.Join(layer, " "))
	}

	return nil
}
