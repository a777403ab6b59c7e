// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// pathJSON is the --json rendering of a found path.
type pathJSON struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Path   []string `json:"path"`
	Weight float64  `json:"weight"`
	Steps  int      `json:"steps"`
}

func newPathCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path SOURCE TARGET",
		Short: "Print the cheapest learning path between two characters",
		Args:  exactArgs(2, "SOURCE and TARGET"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, v, args[0], args[1])
		},
	}
	cmd.Flags().Bool("json", false, "print the path as JSON")

	return cmd
}

func runPath(cmd *cobra.Command, v *viper.Viper, source, target string) error {
	a, err := wire(cmd, v)
	if err != nil {
		return err
	}

	p, err := a.svc.FindPath(cmd.Context(), source, target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(pathJSON{
			Source: source,
			Target: target,
			Path:   p.IDs,
			Weight: p.Weight,
			Steps:  p.Steps(),
		})
	}

	_, err = fmt.Fprintf(out, "%s\nweight: %g\nsteps: %d\n", p, p.Weight, p.Steps())

	return err
}
